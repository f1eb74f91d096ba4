package site

import (
	"net/http"

	"teamsync/internal/carousel"
	"teamsync/internal/pricing"
	"teamsync/views/models"
)

// Header builds the header for path with the given menu and scroll state.
func (c *Content) Header(path string, menuOpen bool, scrollY float64) models.HeaderView {
	nav := make([]models.NavItemView, len(c.Navigation))
	for i, item := range c.Navigation {
		nav[i] = models.NavItemView{Name: item.Name, Href: item.Href, Active: item.IsActive(path)}
	}
	return models.HeaderView{
		Brand:    c.Brand,
		Path:     path,
		Nav:      nav,
		MenuOpen: menuOpen,
		Scrolled: Scrolled(scrollY),
	}
}

// HeaderView is the header of a freshly loaded page: menu closed, not
// scrolled.
func (c *Content) HeaderView(r *http.Request) models.HeaderView {
	return c.Header(r.URL.Path, false, 0)
}

func (c *Content) heroView() models.HeroView {
	stats := make([]models.StatView, len(c.Hero.Stats))
	for i, s := range c.Hero.Stats {
		stats[i] = models.StatView{Value: s.Value, Label: s.Label}
	}
	return models.HeroView{
		Badge:        c.Hero.Badge,
		Headline:     c.Hero.Headline,
		Highlight:    c.Hero.Highlight,
		Subheading:   c.Hero.Subheading,
		PrimaryCTA:   c.Hero.PrimaryCTA,
		SecondaryCTA: c.Hero.SecondaryCTA,
		Image:        c.Hero.Image,
		Stats:        stats,
	}
}

// PricingView quotes every plan for b.
func (c *Content) PricingView(b pricing.BillingPeriod) models.PricingView {
	quotes := pricing.QuotePlans(c.Plans, b)
	plans := make([]models.PlanView, len(c.Plans))
	for i, p := range c.Plans {
		plans[i] = models.PlanView{
			Name:        p.Name,
			Description: p.Description,
			Display:     quotes[i].Display,
			Savings:     quotes[i].SavingsText,
			ShowSavings: quotes[i].ShowSavings,
			Features:    p.Features,
			CTA:         p.CTA,
			Popular:     p.Popular,
		}
	}
	return models.PricingView{
		Annual:         b == pricing.Annual,
		SavingsPercent: c.PopularPlan().SavingsPercent(),
		Plans:          plans,
	}
}

// CarouselView shows the testimonial at index, normalized into range.
func (c *Content) CarouselView(index int) models.CarouselView {
	slides := make([]models.TestimonialView, len(c.Testimonials))
	for i, t := range c.Testimonials {
		slides[i] = models.TestimonialView{
			ID:          t.ID,
			Quote:       t.Quote,
			Author:      t.Author,
			Role:        t.Role,
			CompanyLogo: t.CompanyLogo,
			Image:       t.Image,
		}
	}
	return models.CarouselView{
		Index:  carousel.Normalize(index, len(slides)),
		Slides: slides,
	}
}
