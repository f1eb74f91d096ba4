package models

// NavItemView is one header navigation link
type NavItemView struct {
	Name   string
	Href   string
	Active bool
}

// HeaderView carries the header state for one render
type HeaderView struct {
	Brand    string
	Path     string
	Nav      []NavItemView
	MenuOpen bool
	Scrolled bool
}

// StatView is a hero statistic
type StatView struct {
	Value string
	Label string
}

// HeroView represents the landing hero section
type HeroView struct {
	Badge        string
	Headline     string
	Highlight    string
	Subheading   string
	PrimaryCTA   string
	SecondaryCTA string
	Image        string
	Stats        []StatView
}

// ActivityView represents an activity for template rendering
type ActivityView struct {
	ID              int
	Title           string
	DescriptionHTML string
	Image           string
	Category        string
	Duration        string
	Participants    string
	Tags            []string
	Difficulty      string
}

// EventView represents an event for template rendering
type EventView struct {
	ID              int
	Title           string
	Date            string
	Time            string
	Type            string
	Image           string
	DescriptionHTML string
	Capacity        string
	Price           string
}

// FilterGroupView is one row of filter pills
type FilterGroupView struct {
	Label    string
	Param    string
	Options  []FilterOptionView
	Selected string
}

// FilterOptionView is a single pill; Label may differ from Value ("All Events").
type FilterOptionView struct {
	Value string
	Label string
}

// ActivityFilterView is the current activities page state
type ActivityFilterView struct {
	Category   string
	Difficulty string
	Search     string
	Groups     []FilterGroupView
}

// EventFilterView is the current events page state
type EventFilterView struct {
	Type   string
	Search string
	Group  FilterGroupView
}

// PlanView represents a plan card under the selected billing period
type PlanView struct {
	Name        string
	Description string
	Display     string
	Savings     string
	ShowSavings bool
	Features    []string
	CTA         string
	Popular     bool
}

// PricingView is the pricing section state
type PricingView struct {
	Annual         bool
	SavingsPercent int64
	Plans          []PlanView
}

// TestimonialView represents a testimonial slide
type TestimonialView struct {
	ID          int
	Quote       string
	Author      string
	Role        string
	CompanyLogo string
	Image       string
}

// CarouselView is the testimonial carousel state
type CarouselView struct {
	Index  int
	Slides []TestimonialView
}
