// Package components holds the shared building blocks of the site pages.
package components

import (
	"context"
	"io"
	"net/url"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Component exposes a node tree as a templ component so handlers can render
// pages and fragments the same way.
func Component(n g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

// icon renders a 24x24 outline svg with a single path.
func icon(class, d string) g.Node {
	return g.El("svg",
		Class(class),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("aria-hidden", "true"),
		g.El("path",
			g.Attr("stroke-linecap", "round"),
			g.Attr("stroke-linejoin", "round"),
			g.Attr("stroke-width", "2"),
			g.Attr("d", d),
		),
	)
}

const (
	iconClock  = "M12 8v4l3 3m6-3a9 9 0 11-18 0 9 9 0 0118 0z"
	iconPeople = "M17 20h5v-2a3 3 0 00-5.356-1.857M17 20H7m10 0v-2c0-.656-.126-1.283-.356-1.857M7 20H2v-2a3 3 0 015.356-1.857M7 20v-2c0-.656.126-1.283.356-1.857m0 0a5.002 5.002 0 019.288 0M15 7a3 3 0 11-6 0 3 3 0 016 0zm6 3a2 2 0 11-4 0 2 2 0 014 0zM7 10a2 2 0 11-4 0 2 2 0 014 0z"
	iconSearch = "M21 21l-6-6m2-5a7 7 0 11-14 0 7 7 0 0114 0z"
	iconCal    = "M8 7V3m8 4V3m-9 8h10M5 21h14a2 2 0 002-2V7a2 2 0 00-2-2H5a2 2 0 00-2 2v12a2 2 0 002 2z"
	iconArrow  = "M17 8l4 4m0 0l-4 4m4-4H3"
	iconCheck  = "M5 13l4 4L19 7"
	iconLeft   = "M15 19l-7-7 7-7"
	iconRight  = "M9 5l7 7-7 7"
)

// hxGet wires an element to swap target with the response of path.
func hxGet(path, target string) g.Node {
	return g.Group{
		g.Attr("hx-get", path),
		g.Attr("hx-target", target),
		g.Attr("hx-swap", "outerHTML"),
	}
}

// withQuery appends the non-empty params to path.
func withQuery(path string, params ...string) string {
	v := url.Values{}
	for i := 0; i+1 < len(params); i += 2 {
		if params[i+1] != "" {
			v.Set(params[i], params[i+1])
		}
	}
	if len(v) == 0 {
		return path
	}
	return path + "?" + v.Encode()
}
