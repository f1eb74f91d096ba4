package catalog

import "strings"

// Predicate reports whether an item stays visible.
type Predicate[T any] func(T) bool

// Filter returns the items accepted by every predicate, in input order.
// The result is never nil.
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
next:
	for _, item := range items {
		for _, p := range preds {
			if !p(item) {
				continue next
			}
		}
		out = append(out, item)
	}
	return out
}

// equalsOrAll builds an exact-match clause; All (or empty) accepts anything.
func equalsOrAll[T any](want string, field func(T) string) Predicate[T] {
	if want == "" || want == All {
		return func(T) bool { return true }
	}
	return func(item T) bool { return field(item) == want }
}

// containsFold builds a case-insensitive substring clause over the given
// fields. Empty text accepts anything.
func containsFold[T any](text string, fields func(T) []string) Predicate[T] {
	if text == "" {
		return func(T) bool { return true }
	}
	needle := strings.ToLower(text)
	return func(item T) bool {
		for _, f := range fields(item) {
			if strings.Contains(strings.ToLower(f), needle) {
				return true
			}
		}
		return false
	}
}

// ActivityPredicates returns the category, difficulty and search clauses
// for activities, in that order.
func (c Criteria) ActivityPredicates() []Predicate[Activity] {
	return []Predicate[Activity]{
		equalsOrAll(c.Category, func(a Activity) string { return a.Category }),
		equalsOrAll(c.Difficulty, func(a Activity) string { return a.Difficulty }),
		containsFold(c.Search, activitySearchFields),
	}
}

// EventPredicates returns the type and search clauses for events.
// Difficulty does not apply to events.
func (c Criteria) EventPredicates() []Predicate[Event] {
	return []Predicate[Event]{
		equalsOrAll(c.Category, func(e Event) string { return e.Type }),
		containsFold(c.Search, func(e Event) []string { return []string{e.Title, e.Description} }),
	}
}

func activitySearchFields(a Activity) []string {
	fields := make([]string, 0, len(a.Tags)+2)
	fields = append(fields, a.Title, a.Description)
	return append(fields, a.Tags...)
}

// FilterActivities applies c to activities.
func FilterActivities(items []Activity, c Criteria) []Activity {
	return Filter(items, c.ActivityPredicates()...)
}

// FilterEvents applies c to events.
func FilterEvents(items []Event, c Criteria) []Event {
	return Filter(items, c.EventPredicates()...)
}
