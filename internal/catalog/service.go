package catalog

import (
	"bytes"
	"context"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
)

// Service holds a loaded catalog snapshot. The snapshot is immutable and
// safe for concurrent readers.
type Service struct {
	activities []Activity
	events     []Event
	md         goldmark.Markdown
}

// NewService loads and validates the catalog from src.
func NewService(ctx context.Context, src Source) (*Service, error) {
	activities, err := src.Activities(ctx)
	if err != nil {
		return nil, err
	}
	events, err := src.Events(ctx)
	if err != nil {
		return nil, err
	}

	doc := &Document{Activities: activities, Events: events}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	return &Service{
		activities: activities,
		events:     events,
		md:         goldmark.New(),
	}, nil
}

// Activities returns the activities matching c in catalog order.
func (s *Service) Activities(c Criteria) []Activity {
	return FilterActivities(s.activities, c)
}

// Events returns the events matching c in catalog order.
func (s *Service) Events(c Criteria) []Event {
	return FilterEvents(s.events, c)
}

// Activity looks up an activity by id.
func (s *Service) Activity(id int) (Activity, error) {
	for _, a := range s.activities {
		if a.ID == id {
			return a, nil
		}
	}
	return Activity{}, fmt.Errorf("activity %d: %w", id, ErrNotFound)
}

// Featured returns up to n activities for the landing page.
func (s *Service) Featured(n int) []Activity {
	if n > len(s.activities) {
		n = len(s.activities)
	}
	if n < 0 {
		n = 0
	}
	return append([]Activity(nil), s.activities[:n]...)
}

// RenderMarkdown converts description markdown to HTML. Raw HTML in the
// source is dropped by goldmark's default renderer.
func (s *Service) RenderMarkdown(content string) string {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(content), &buf); err != nil {
		return html.EscapeString(content)
	}
	return buf.String()
}
