package site

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"teamsync/internal/pricing"
)

//go:embed data/content.yaml
var embeddedContent []byte

var validate = validator.New()

// ScrollThreshold is the scroll offset (px) past which the header switches
// to its opaque style.
const ScrollThreshold = 20

type NavItem struct {
	Name string `yaml:"name" json:"name" validate:"required"`
	Href string `yaml:"href" json:"href" validate:"required,startswith=/"`
}

type Stat struct {
	Value string `yaml:"value" json:"value" validate:"required"`
	Label string `yaml:"label" json:"label" validate:"required"`
}

type Hero struct {
	Badge        string `yaml:"badge"`
	Headline     string `yaml:"headline" validate:"required"`
	Highlight    string `yaml:"highlight"`
	Subheading   string `yaml:"subheading"`
	PrimaryCTA   string `yaml:"primary_cta" validate:"required"`
	SecondaryCTA string `yaml:"secondary_cta"`
	Image        string `yaml:"image" validate:"omitempty,url"`
	Stats        []Stat `yaml:"stats" validate:"dive"`
}

type Testimonial struct {
	ID          int    `yaml:"id" json:"id" validate:"gt=0"`
	Quote       string `yaml:"quote" json:"quote" validate:"required"`
	Author      string `yaml:"author" json:"author" validate:"required"`
	Role        string `yaml:"role" json:"role"`
	CompanyLogo string `yaml:"company_logo" json:"companyLogo" validate:"omitempty,url"`
	Image       string `yaml:"image" json:"image" validate:"omitempty,url"`
}

// Content is the static copy of the marketing site.
type Content struct {
	Brand        string         `yaml:"brand" validate:"required"`
	Navigation   []NavItem      `yaml:"navigation" validate:"required,dive"`
	Hero         Hero           `yaml:"hero"`
	Plans        []pricing.Plan `yaml:"plans" validate:"required,dive"`
	Testimonials []Testimonial  `yaml:"testimonials" validate:"required,min=1,dive"`
}

// Load parses the embedded site content.
func Load() (*Content, error) {
	return Parse(embeddedContent)
}

// Parse decodes and validates a YAML content document.
func Parse(data []byte) (*Content, error) {
	var c Content
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode site content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the content, including that annual billing never costs
// more per month than monthly billing.
func (c *Content) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validate site content: %w", err)
	}
	return nil
}

// IsActive reports whether item is the page at path.
func (n NavItem) IsActive(path string) bool {
	return n.Href == path
}

// Scrolled reports whether the header should use its scrolled style.
func Scrolled(scrollY float64) bool {
	return scrollY > ScrollThreshold
}

// PopularPlan returns the plan flagged popular, or the first plan.
func (c *Content) PopularPlan() pricing.Plan {
	for _, p := range c.Plans {
		if p.Popular {
			return p
		}
	}
	return c.Plans[0]
}
