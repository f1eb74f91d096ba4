package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"teamsync/views/models"
)

// SiteHeader renders the fixed top bar. It re-fetches itself on scroll so
// the server can apply the scrolled style, and on menu toggle.
func SiteHeader(h models.HeaderView) g.Node {
	self := withQuery("/fragments/header", "path", h.Path, "open", strconv.FormatBool(h.MenuOpen))
	toggle := withQuery("/fragments/header", "path", h.Path, "open", strconv.FormatBool(!h.MenuOpen))

	return Div(
		ID("site-header"),
		Header(
			c.Classes{
				"fixed top-0 left-0 right-0 z-50 transition-all duration-500": true,
				"bg-neutral-900/80 backdrop-blur-xl border-b border-neutral-800 scrolled": h.Scrolled,
				"bg-transparent": !h.Scrolled,
			},
			hxGet(self, "#site-header"),
			g.Attr("hx-trigger", "scroll from:window throttle:250ms"),
			g.Attr("hx-vals", "js:{scroll: window.scrollY}"),
			Nav(
				Class("container mx-auto px-4 h-20 flex items-center justify-between"),
				A(Href("/"), Class("brand text-2xl font-bold text-white"), g.Text(h.Brand)),
				Div(
					Class("desktop-nav hidden md:flex items-center space-x-1"),
					g.Map(h.Nav, navLink),
				),
				Div(
					Class("hidden md:flex items-center space-x-4"),
					Btn(ButtonProps{Variant: VariantOutline, Size: SizeSm}, g.Text("Sign In")),
					Btn(ButtonProps{Size: SizeSm}, g.Text("Get Started")),
				),
				Button(
					Type("button"),
					Class("menu-toggle md:hidden p-2 text-neutral-300 hover:text-white"),
					Aria("label", "Toggle menu"),
					Aria("expanded", strconv.FormatBool(h.MenuOpen)),
					hxGet(toggle, "#site-header"),
					g.Attr("hx-trigger", "click"),
					menuBars(h.MenuOpen),
				),
			),
		),
		g.If(h.MenuOpen, mobileMenu(h.Nav)),
	)
}

func navLink(item models.NavItemView) g.Node {
	return A(
		Href(item.Href),
		c.Classes{
			"nav-link relative px-4 py-2 text-sm font-medium transition-all duration-300": true,
			"active text-brand-400":             item.Active,
			"text-neutral-300 hover:text-white": !item.Active,
		},
		g.If(item.Active, Aria("current", "page")),
		g.Text(item.Name),
	)
}

func menuBars(open bool) g.Node {
	bar := func(openClass string) g.Node {
		return Span(c.Classes{
			"block w-6 h-0.5 bg-current transform transition-all duration-300": true,
			openClass: open,
		})
	}
	return Div(
		Class("space-y-1.5"),
		bar("rotate-45 translate-y-2"),
		bar("opacity-0"),
		bar("-rotate-45 -translate-y-2"),
	)
}

func mobileMenu(items []models.NavItemView) g.Node {
	return Div(
		ID("mobile-menu"),
		Class("fixed inset-x-0 top-20 z-40 md:hidden bg-neutral-900/95 backdrop-blur-xl border-b border-neutral-800"),
		Nav(
			Class("container mx-auto px-4 py-6 flex flex-col space-y-2"),
			g.Map(items, func(item models.NavItemView) g.Node {
				return A(
					Href(item.Href),
					c.Classes{
						"mobile-link px-4 py-3 text-lg font-medium rounded-lg transition-colors": true,
						"active text-brand-400 bg-brand-500/10":                                 item.Active,
						"text-neutral-300 hover:text-white hover:bg-neutral-800/50":              !item.Active,
					},
					g.Text(item.Name),
				)
			}),
			Div(
				Class("pt-4 flex flex-col space-y-3"),
				Btn(ButtonProps{Variant: VariantOutline, FullWidth: true}, g.Text("Sign In")),
				Btn(ButtonProps{FullWidth: true}, g.Text("Get Started")),
			),
		),
	)
}
