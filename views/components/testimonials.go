package components

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"teamsync/views/models"
)

const quoteGlyph = "M9.352 4C4.456 7.456 1 13.12 1 19.36c0 5.088 3.072 8.064 6.624 8.064 3.36 0 5.856-2.688 5.856-5.856 0-3.168-2.208-5.472-5.088-5.472-.576 0-1.344.096-1.536.192.48-3.264 3.552-7.104 6.624-9.024L9.352 4zm16.512 0c-4.8 3.456-8.256 9.12-8.256 15.36 0 5.088 3.072 8.064 6.624 8.064 3.264 0 5.856-2.688 5.856-5.856 0-3.168-2.304-5.472-5.184-5.472-.576 0-1.248.096-1.44.192.48-3.264 3.456-7.104 6.528-9.024L25.864 4z"

// TestimonialCarousel renders every slide, offset so the active one shows.
// Arrows and dots fetch the carousel for the target index.
func TestimonialCarousel(cv models.CarouselView) g.Node {
	slides := make([]g.Node, len(cv.Slides))
	dots := make([]g.Node, len(cv.Slides))
	for i, t := range cv.Slides {
		slides[i] = slide(t, i == cv.Index)
		dots[i] = Button(
			Type("button"),
			c.Classes{
				"dot w-3 h-3 rounded-full transition-colors duration-300": true,
				"active bg-blue-600": i == cv.Index,
				"bg-gray-300":        i != cv.Index,
			},
			Aria("label", fmt.Sprintf("Go to slide %d", i+1)),
			g.If(i == cv.Index, Aria("current", "true")),
			hxGet("/fragments/testimonials?goto="+strconv.Itoa(i), "#testimonials"),
		)
	}

	return Section(
		ID("testimonials"),
		Class("py-24 bg-gradient-to-b from-white to-gray-50"),
		Data("index", strconv.Itoa(cv.Index)),
		Div(
			Class("container mx-auto px-4 max-w-6xl"),
			Div(
				Class("text-center mb-16"),
				H2(Class("text-4xl md:text-5xl font-bold mb-6 bg-clip-text text-transparent bg-gradient-to-r from-blue-600 to-blue-800"), g.Text("Trusted by Industry Leaders")),
				P(Class("text-xl text-gray-600 max-w-2xl mx-auto"),
					g.Text("Join hundreds of forward-thinking companies transforming their teams with our innovative approach.")),
			),
			Div(
				Class("relative"),
				Div(
					Class("overflow-hidden"),
					Div(
						Class("flex transition-transform duration-500 ease-in-out"),
						Style(fmt.Sprintf("transform: translateX(-%d%%)", cv.Index*100)),
						g.Group(slides),
					),
				),
				Div(Class("flex justify-center mt-8 space-x-3"), g.Group(dots)),
				Button(
					Type("button"),
					Class("prev absolute top-1/2 -left-12 transform -translate-y-1/2 p-2 rounded-full bg-white shadow-lg text-gray-800 hover:bg-gray-50 transition-colors"),
					Aria("label", "Previous testimonial"),
					hxGet(fmt.Sprintf("/fragments/testimonials?index=%d&dir=prev", cv.Index), "#testimonials"),
					icon("w-6 h-6", iconLeft),
				),
				Button(
					Type("button"),
					Class("next absolute top-1/2 -right-12 transform -translate-y-1/2 p-2 rounded-full bg-white shadow-lg text-gray-800 hover:bg-gray-50 transition-colors"),
					Aria("label", "Next testimonial"),
					hxGet(fmt.Sprintf("/fragments/testimonials?index=%d&dir=next", cv.Index), "#testimonials"),
					icon("w-6 h-6", iconRight),
				),
			),
		),
	)
}

func slide(t models.TestimonialView, active bool) g.Node {
	return Div(
		c.Classes{"slide w-full flex-shrink-0 px-4": true, "active": active},
		g.If(!active, Aria("hidden", "true")),
		Div(
			Class("bg-white rounded-2xl p-8 md:p-12 shadow-lg flex flex-col md:flex-row items-center gap-8"),
			Div(
				Class("w-full md:w-1/3"),
				Img(Src(t.Image), Alt(t.Author), Class("w-24 h-24 mx-auto md:mx-0 object-cover rounded-full")),
				Div(
					Class("mt-6 text-center md:text-left"),
					H4(Class("author font-bold text-lg"), g.Text(t.Author)),
					P(Class("role text-gray-600"), g.Text(t.Role)),
				),
			),
			Div(
				Class("w-full md:w-2/3"),
				g.El("svg", Class("w-12 h-12 text-blue-100 mb-6"), g.Attr("fill", "currentColor"), g.Attr("viewBox", "0 0 32 32"),
					g.El("path", g.Attr("d", quoteGlyph))),
				P(Class("quote text-xl md:text-2xl leading-relaxed mb-6"), g.Text(t.Quote)),
				Img(Src(t.CompanyLogo), Alt("Company logo"), Class("w-24 h-12 object-contain")),
			),
		),
	)
}
