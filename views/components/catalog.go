package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"teamsync/views/models"
)

// ActivityCard renders one activity in the listing grid.
func ActivityCard(a models.ActivityView) g.Node {
	return Div(
		Class("activity-card bg-white rounded-xl overflow-hidden shadow-sm hover:shadow-md transition-shadow"),
		Data("id", strconv.Itoa(a.ID)),
		Div(
			Class("relative h-48"),
			Img(Src(a.Image), Alt(a.Title), Class("w-full h-full object-cover"), g.Attr("loading", "lazy")),
			Div(Class("category absolute top-4 left-4 bg-blue-600 text-white px-3 py-1 rounded-full text-sm"), g.Text(a.Category)),
			Div(Class("difficulty absolute top-4 right-4 bg-white text-gray-800 px-3 py-1 rounded-full text-sm"), g.Text(a.Difficulty)),
		),
		Div(
			Class("p-6"),
			H3(Class("text-xl font-bold mb-2"),
				A(Href("/activities/"+strconv.Itoa(a.ID)), g.Text(a.Title)),
			),
			Div(Class("description text-gray-600 mb-4"), g.Raw(a.DescriptionHTML)),
			Div(
				Class("tags flex flex-wrap gap-2 mb-4"),
				g.Map(a.Tags, func(tag string) g.Node {
					return Span(Class("tag bg-gray-100 text-gray-600 px-2 py-1 rounded-md text-sm"), g.Text(tag))
				}),
			),
			metaRow(a.Duration, a.Participants),
		),
	)
}

func metaRow(duration, participants string) g.Node {
	return Div(
		Class("flex items-center justify-between text-sm text-gray-500"),
		Div(Class("duration flex items-center"), icon("w-5 h-5 mr-2", iconClock), g.Text(duration)),
		Div(Class("participants flex items-center"), icon("w-5 h-5 mr-2", iconPeople), g.Text(participants)),
	)
}

// FeaturedCard is the landing-page variant of an activity card.
func FeaturedCard(a models.ActivityView) g.Node {
	return A(
		Href("/activities/"+strconv.Itoa(a.ID)),
		Class("featured-card group block bg-white rounded-2xl overflow-hidden shadow-sm hover:shadow-xl transition-all duration-300"),
		Div(
			Class("relative h-56 overflow-hidden"),
			Img(Src(a.Image), Alt(a.Title), Class("w-full h-full object-cover transition-transform duration-500 group-hover:scale-110")),
			Div(Class("category absolute top-4 left-4 bg-white/90 backdrop-blur-sm px-3 py-1 rounded-full text-sm font-medium"), g.Text(a.Category)),
		),
		Div(
			Class("p-6"),
			H3(Class("text-xl font-bold mb-2 group-hover:text-brand-600 transition-colors"), g.Text(a.Title)),
			Div(Class("description text-gray-600 mb-4"), g.Raw(a.DescriptionHTML)),
			metaRow(a.Duration, a.Participants),
		),
	)
}

// FeaturedActivities is the landing-page teaser grid.
func FeaturedActivities(items []models.ActivityView) g.Node {
	return Section(
		ID("featured"),
		Class("py-24 bg-gray-50"),
		Div(
			Class("container mx-auto px-4"),
			Div(
				Class("text-center mb-16"),
				H2(Class("text-4xl md:text-5xl font-bold mb-6"), g.Text("Popular Team Building Activities")),
				P(Class("text-xl text-gray-600 max-w-2xl mx-auto"),
					g.Text("Choose from our most successful team building experiences, perfect for any team size and industry.")),
			),
			Div(Class("grid md:grid-cols-3 gap-8 max-w-7xl mx-auto"), g.Map(items, FeaturedCard)),
			Div(
				Class("text-center mt-12"),
				A(Href("/activities"), Class("view-all inline-flex items-center text-brand-600 font-medium hover:text-brand-700"),
					g.Text("View All Activities"), icon("w-5 h-5 ml-2", iconArrow)),
			),
		),
	)
}

// ActivityBrowser renders the filter panel and the result grid together so
// a single swap keeps the pills and results consistent.
func ActivityBrowser(f models.ActivityFilterView, items []models.ActivityView) g.Node {
	return Div(
		ID("activity-browser"),
		Div(
			Class("max-w-6xl mx-auto mb-12"),
			Div(
				Class("bg-white rounded-xl shadow-sm p-6 space-y-6"),
				Form(
					ID("activity-search"),
					Class("relative"),
					Method("get"),
					Action("/activities"),
					g.Attr("onsubmit", "return false"),
					Input(Type("hidden"), Name("category"), Value(f.Category)),
					Input(Type("hidden"), Name("difficulty"), Value(f.Difficulty)),
					Input(
						ID("activity-query"),
						Type("search"),
						Name("q"),
						Value(f.Search),
						Placeholder("Search activities, tags, or keywords..."),
						Class("w-full pl-12 pr-4 py-3 rounded-lg border border-gray-200 focus:border-blue-500 focus:ring-2 focus:ring-blue-200 transition-colors"),
						hxGet("/fragments/activities", "#activity-browser"),
						g.Attr("hx-trigger", "input changed, search"),
						g.Attr("hx-include", "#activity-search"),
					),
					icon("absolute left-4 top-1/2 transform -translate-y-1/2 w-5 h-5 text-gray-400", iconSearch),
				),
				Div(
					Class("flex flex-wrap gap-6"),
					g.Map(f.Groups, func(grp models.FilterGroupView) g.Node {
						return filterGroup(grp, func(value string) string {
							params := map[string]string{"category": f.Category, "difficulty": f.Difficulty}
							params[grp.Param] = value
							return withQuery("", "category", params["category"], "difficulty", params["difficulty"], "q", f.Search)
						}, "/activities", "/fragments/activities", "#activity-browser")
					}),
				),
			),
		),
		g.If(len(items) == 0, emptyState("No activities match your filters.", "/activities")),
		g.If(len(items) > 0, Div(
			ID("activity-results"),
			Class("grid md:grid-cols-2 lg:grid-cols-3 gap-8 max-w-7xl mx-auto"),
			g.Map(items, ActivityCard),
		)),
	)
}

// filterGroup renders a labelled row of pills. query builds the query
// string (with leading "?" or empty) selecting value.
func filterGroup(grp models.FilterGroupView, query func(value string) string, page, fragment, target string) g.Node {
	return Div(
		Class("filter-group space-y-2"),
		Data("param", grp.Param),
		g.If(grp.Label != "", Label(Class("text-sm font-medium text-gray-700"), g.Text(grp.Label))),
		Div(
			Class("flex flex-wrap gap-2"),
			g.Map(grp.Options, func(opt models.FilterOptionView) g.Node {
				selected := opt.Value == grp.Selected
				qs := query(opt.Value)
				return A(
					Href(page+qs),
					hxGet(fragment+qs, target),
					c.Classes{
						"pill px-4 py-2 rounded-full text-sm font-medium transition-colors": true,
						"selected bg-blue-600 text-white":                                   selected,
						"bg-gray-100 text-gray-600 hover:bg-gray-200":                        !selected,
					},
					g.If(selected, Aria("pressed", "true")),
					Data("value", opt.Value),
					g.Text(opt.Label),
				)
			}),
		),
	)
}

func emptyState(message, reset string) g.Node {
	return Div(
		ID("empty-state"),
		Class("max-w-xl mx-auto text-center py-16 text-gray-500"),
		P(Class("text-lg mb-4"), g.Text(message)),
		A(Href(reset), Class("text-blue-600 hover:underline"), g.Text("Clear filters")),
	)
}

// EventCard renders one event in the listing grid.
func EventCard(e models.EventView) g.Node {
	return Div(
		Class("event-card group bg-surface-50 rounded-2xl overflow-hidden shadow-sm hover:shadow-md transition-shadow"),
		Data("id", strconv.Itoa(e.ID)),
		Div(
			Class("relative h-48"),
			Img(Src(e.Image), Alt(e.Title), Class("w-full h-full object-cover transition-transform duration-300 group-hover:scale-105"), g.Attr("loading", "lazy")),
			Div(Class("type absolute top-4 right-4 bg-surface-50/90 backdrop-blur-sm text-surface-900 px-3 py-1 rounded-full text-sm font-medium"), g.Text(e.Type)),
		),
		Div(
			Class("p-6"),
			Div(Class("when flex items-center text-sm text-surface-500 mb-3"),
				icon("w-4 h-4 mr-2", iconCal), g.Textf("%s • %s", e.Date, e.Time)),
			H3(Class("text-xl font-bold mb-2 group-hover:text-primary-600 transition-colors"), g.Text(e.Title)),
			Div(Class("description text-surface-600 mb-4"), g.Raw(e.DescriptionHTML)),
			Div(
				Class("flex items-center justify-between text-sm"),
				Span(Class("capacity text-surface-500"), g.Text(e.Capacity)),
				Span(Class("price font-semibold text-surface-900"), g.Text(e.Price)),
			),
		),
	)
}

// EventBrowser renders the type pills and the event grid.
func EventBrowser(f models.EventFilterView, items []models.EventView) g.Node {
	return Div(
		ID("event-browser"),
		Div(
			Class("max-w-6xl mx-auto mb-12 flex justify-center"),
			filterGroup(f.Group, func(value string) string {
				return withQuery("", "type", value, "q", f.Search)
			}, "/events", "/fragments/events", "#event-browser"),
		),
		g.If(len(items) == 0, emptyState("No events match your filters.", "/events")),
		g.If(len(items) > 0, Div(
			ID("event-results"),
			Class("grid md:grid-cols-2 lg:grid-cols-3 gap-8 max-w-7xl mx-auto"),
			g.Map(items, EventCard),
		)),
	)
}
