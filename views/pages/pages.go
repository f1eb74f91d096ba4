// Package pages assembles full documents and htmx fragments.
package pages

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"teamsync/views/components"
	"teamsync/views/models"
)

// HomeData is everything the landing page shows.
type HomeData struct {
	Header   models.HeaderView
	Hero     models.HeroView
	Featured []models.ActivityView
	Pricing  models.PricingView
	Carousel models.CarouselView
}

func HomePage(d HomeData) templ.Component {
	return components.Component(components.Page(
		components.PageProps{
			Description: "Team building activities, events and workshops for remote and in-person teams.",
			Header:      d.Header,
		},
		components.HeroSection(d.Hero),
		components.FeaturedActivities(d.Featured),
		components.PricingSection(d.Pricing),
		components.TestimonialCarousel(d.Carousel),
	))
}

func ActivitiesPage(header models.HeaderView, f models.ActivityFilterView, items []models.ActivityView) templ.Component {
	return components.Component(components.Page(
		components.PageProps{
			Title:       "Activities",
			Description: "Browse team building activities by category, difficulty and keyword.",
			Header:      header,
		},
		listing(
			"Discover Team Building Activities",
			"Browse our collection of carefully crafted experiences designed to strengthen team bonds.",
			components.ActivityBrowser(f, items),
		),
	))
}

func ActivityDetailPage(header models.HeaderView, a models.ActivityView) templ.Component {
	return components.Component(components.Page(
		components.PageProps{Title: a.Title, Header: header},
		Div(
			Class("min-h-screen bg-gray-50 pt-24 pb-16"),
			Div(
				Class("container mx-auto px-4 max-w-3xl"),
				A(Href("/activities"), Class("back text-blue-600 hover:underline"), g.Text("← All activities")),
				Div(Class("mt-6"), components.ActivityCard(a)),
			),
		),
	))
}

func EventsPage(header models.HeaderView, f models.EventFilterView, items []models.EventView) templ.Component {
	return components.Component(components.Page(
		components.PageProps{
			Title:       "Events",
			Description: "Upcoming team building events and workshops.",
			Header:      header,
		},
		listing(
			"Upcoming Events",
			"Join our transformative team building events and workshops",
			components.EventBrowser(f, items),
		),
	))
}

func NotFoundPage(header models.HeaderView) templ.Component {
	return components.Component(components.Page(
		components.PageProps{Title: "Not found", Header: header},
		Div(
			Class("min-h-screen pt-32 text-center"),
			H1(Class("text-4xl font-bold mb-4"), g.Text("Page not found")),
			A(Href("/"), Class("text-blue-600 hover:underline"), g.Text("Back home")),
		),
	))
}

func listing(title, subtitle string, body g.Node) g.Node {
	return Div(
		Class("min-h-screen bg-gray-50 pt-24 pb-16"),
		Div(
			Class("container mx-auto px-4"),
			Div(
				Class("max-w-4xl mx-auto text-center mb-16"),
				H1(Class("text-4xl md:text-5xl font-bold mb-6"), g.Text(title)),
				P(Class("text-xl text-gray-600"), g.Text(subtitle)),
			),
			body,
		),
	)
}

// --- Fragments ---

func ActivityResults(f models.ActivityFilterView, items []models.ActivityView) templ.Component {
	return components.Component(components.ActivityBrowser(f, items))
}

func EventResults(f models.EventFilterView, items []models.EventView) templ.Component {
	return components.Component(components.EventBrowser(f, items))
}

func Pricing(p models.PricingView) templ.Component {
	return components.Component(components.PricingSection(p))
}

func Testimonials(cv models.CarouselView) templ.Component {
	return components.Component(components.TestimonialCarousel(cv))
}

func HeaderFragment(h models.HeaderView) templ.Component {
	return components.Component(components.SiteHeader(h))
}
