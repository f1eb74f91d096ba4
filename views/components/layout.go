package components

import (
	"time"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"teamsync/views/models"
)

// PageProps describes the document around a page body.
type PageProps struct {
	Title       string
	Description string
	Header      models.HeaderView
}

// Page wraps body in the HTML document, header and footer.
func Page(p PageProps, body ...g.Node) g.Node {
	title := p.Header.Brand
	if p.Title != "" {
		title = p.Title + " | " + p.Header.Brand
	}

	return c.HTML5(c.HTML5Props{
		Title:       title,
		Description: p.Description,
		Language:    "en",
		Head: []g.Node{
			Script(Src("https://cdn.tailwindcss.com")),
			Script(Src("https://unpkg.com/htmx.org@1.9.12"), Defer()),
			Link(Rel("stylesheet"), Href("/static/site.css")),
		},
		Body: []g.Node{
			Class("antialiased text-gray-900 bg-white"),
			SiteHeader(p.Header),
			Main(g.Group(body)),
			siteFooter(p.Header.Brand),
		},
	})
}

func siteFooter(brand string) g.Node {
	return Footer(
		Class("py-12 bg-neutral-950 text-neutral-400 text-sm"),
		Div(
			Class("container mx-auto px-4 flex flex-col md:flex-row justify-between gap-4"),
			Span(g.Textf("© %d %s", time.Now().Year(), brand)),
			Span(g.Text("Team building that sticks.")),
		),
	)
}
