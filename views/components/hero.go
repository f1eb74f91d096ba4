package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"teamsync/views/models"
)

func HeroSection(h models.HeroView) g.Node {
	return Section(
		ID("hero"),
		Class("relative min-h-screen flex items-center overflow-hidden bg-neutral-950"),
		Div(
			Class("absolute inset-0"),
			g.If(h.Image != "", Img(Src(h.Image), Alt("Team collaboration"), Class("w-full h-full object-cover opacity-40"))),
			Div(Class("absolute inset-0 bg-gradient-to-b from-neutral-950/60 via-neutral-950/80 to-neutral-950")),
		),
		Div(
			Class("relative container mx-auto px-4 pt-32 pb-20 text-center"),
			g.If(h.Badge != "", Div(
				Class("inline-flex mb-8"),
				Span(Class("badge px-4 py-2 rounded-full text-sm font-medium bg-brand-500/10 text-brand-300 border border-brand-500/20"), g.Text(h.Badge)),
			)),
			H1(
				Class("text-5xl md:text-7xl font-bold text-white mb-8 leading-tight"),
				g.Text(h.Headline), g.Text(" "),
				Span(Class("highlight bg-clip-text text-transparent bg-gradient-to-r from-brand-400 to-accent-400"), g.Text(h.Highlight)),
			),
			P(Class("text-xl text-neutral-300 max-w-2xl mx-auto mb-12"), g.Text(h.Subheading)),
			Div(
				Class("flex flex-col sm:flex-row items-center justify-center gap-4 mb-20"),
				Btn(ButtonProps{Size: SizeLg, Href: "/activities"}, g.Text(h.PrimaryCTA)),
				g.If(h.SecondaryCTA != "", Btn(ButtonProps{Size: SizeLg, Variant: VariantOutline}, g.Text(h.SecondaryCTA))),
			),
			Div(
				Class("stats grid grid-cols-3 gap-8 max-w-3xl mx-auto"),
				g.Map(h.Stats, func(s models.StatView) g.Node {
					return Div(
						Class("stat text-center"),
						Div(Class("stat-value text-3xl md:text-4xl font-bold text-white mb-2"), g.Text(s.Value)),
						Div(Class("stat-label text-sm text-neutral-400"), g.Text(s.Label)),
					)
				}),
			),
		),
	)
}
