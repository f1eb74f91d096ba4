package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"teamsync/views/models"
)

// PricingSection renders the billing toggle and plan cards. The toggle
// fetches the section for the opposite period.
func PricingSection(p models.PricingView) g.Node {
	current, next := "monthly", "annual"
	if p.Annual {
		current, next = next, current
	}

	return Section(
		ID("pricing"),
		Class("py-24 bg-white"),
		Data("billing", current),
		Div(
			Class("container mx-auto px-4 max-w-6xl"),
			Div(
				Class("text-center mb-16"),
				H2(Class("text-4xl md:text-5xl font-bold mb-6"), g.Text("Choose Your Experience")),
				P(Class("text-xl text-gray-600 max-w-2xl mx-auto mb-10"), g.Text("Flexible plans designed to meet your team's unique needs.")),
				Div(
					Class("flex items-center justify-center gap-4"),
					Span(c.Classes{"period-monthly text-lg": true, "text-blue-600 font-medium": !p.Annual, "text-gray-600": p.Annual}, g.Text("Monthly")),
					Button(
						Type("button"),
						Class("billing-toggle relative w-16 h-8 rounded-full bg-blue-100 transition-colors"),
						Aria("label", "Toggle billing period"),
						Aria("pressed", strconv.FormatBool(p.Annual)),
						hxGet("/fragments/pricing?billing="+next, "#pricing"),
						Div(c.Classes{
							"absolute w-6 h-6 bg-blue-600 rounded-full top-1 transition-all": true,
							"left-8": p.Annual,
							"left-1": !p.Annual,
						}),
					),
					Span(
						c.Classes{"period-annual text-lg": true, "text-blue-600 font-medium": p.Annual, "text-gray-600": !p.Annual},
						g.Text("Annual"),
						g.If(p.SavingsPercent > 0, Span(Class("save-badge ml-2 text-sm text-green-600 font-medium"), g.Textf("Save %d%%", p.SavingsPercent))),
					),
				),
			),
			Div(Class("grid md:grid-cols-3 gap-8"), g.Map(p.Plans, planCard)),
		),
	)
}

func planCard(p models.PlanView) g.Node {
	return Div(
		c.Classes{
			"plan-card relative rounded-2xl p-8": true,
			"popular bg-gradient-to-b from-blue-50 to-white border-2 border-blue-600 shadow-xl": p.Popular,
			"bg-white border border-gray-200": !p.Popular,
		},
		Data("plan", p.Name),
		g.If(p.Popular, Div(
			Class("absolute top-0 left-1/2 transform -translate-x-1/2 -translate-y-1/2"),
			Span(Class("popular-badge bg-blue-600 text-white px-4 py-1 rounded-full text-sm font-medium"), g.Text("Most Popular")),
		)),
		Div(
			Class("mb-8"),
			H3(Class("text-2xl font-bold mb-2"), g.Text(p.Name)),
			P(Class("text-gray-600 mb-6"), g.Text(p.Description)),
			Div(
				Class("flex items-baseline gap-2"),
				Span(Class("price text-4xl font-bold"), g.Text(p.Display)),
				Span(Class("text-gray-600"), g.Text("/month")),
			),
			g.If(p.ShowSavings, P(Class("savings text-green-600 text-sm mt-2"), g.Textf("Save %s annually", p.Savings))),
		),
		Ul(
			Class("space-y-4 mb-8"),
			g.Map(p.Features, func(f string) g.Node {
				return Li(Class("feature flex items-center gap-3"), icon("w-5 h-5 text-blue-600", iconCheck), Span(Class("text-gray-600"), g.Text(f)))
			}),
		),
		Btn(ButtonProps{Variant: planVariant(p.Popular), FullWidth: true}, g.Text(p.CTA)),
	)
}

func planVariant(popular bool) ButtonVariant {
	if popular {
		return VariantPrimary
	}
	return VariantOutline
}
