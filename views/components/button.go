package components

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

type ButtonVariant string

const (
	VariantPrimary ButtonVariant = "primary"
	VariantOutline ButtonVariant = "outline"
)

type ButtonSize string

const (
	SizeSm ButtonSize = "sm"
	SizeMd ButtonSize = "md"
	SizeLg ButtonSize = "lg"
)

// ButtonProps configures Btn. Zero values give a medium primary button.
type ButtonProps struct {
	Variant   ButtonVariant
	Size      ButtonSize
	FullWidth bool
	Href      string
	Attrs     []g.Node
}

var buttonSizes = map[ButtonSize]string{
	SizeSm: "px-4 py-2 text-sm",
	SizeMd: "px-6 py-3 text-base",
	SizeLg: "px-8 py-4 text-lg",
}

// Btn renders a button, or a link styled as one when Href is set.
func Btn(p ButtonProps, children ...g.Node) g.Node {
	if p.Variant == "" {
		p.Variant = VariantPrimary
	}
	size, ok := buttonSizes[p.Size]
	if !ok {
		size = buttonSizes[SizeMd]
	}

	classes := c.Classes{
		"btn inline-flex items-center justify-center rounded-full font-medium transition-all duration-300": true,
		size: true,
		"bg-brand-500 text-white hover:bg-brand-600":                         p.Variant == VariantPrimary,
		"border border-neutral-600 text-neutral-100 hover:border-neutral-400": p.Variant == VariantOutline,
		"w-full": p.FullWidth,
		"btn-" + string(p.Variant): true,
	}

	nodes := append([]g.Node{classes}, p.Attrs...)
	nodes = append(nodes, children...)
	if p.Href != "" {
		return A(append([]g.Node{Href(p.Href)}, nodes...)...)
	}
	return Button(append([]g.Node{Type("button")}, nodes...)...)
}
