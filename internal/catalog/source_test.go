package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDoc = `
activities:
  - id: 7
    title: Escape Room
    description: Solve puzzles **together**.
    category: Indoor
    difficulty: Challenging
    tags: [Puzzles]
events:
  - id: 9
    title: Hack Day
    date: "2024-03-01"
    type: Virtual
    description: Build something in a day.
`

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(validDoc))
	require.NoError(t, err)
	require.Len(t, doc.Activities, 1)
	require.Len(t, doc.Events, 1)
	assert.Equal(t, "Escape Room", doc.Activities[0].Title)
	assert.Equal(t, []string{"Puzzles"}, doc.Activities[0].Tags)
	assert.Equal(t, EventVirtual, doc.Events[0].Type)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		is   error
	}{
		{
			name: "unknown field",
			doc: `
activities:
  - id: 1
    title: A
    description: d
    category: Indoor
    difficulty: Easy
    colour: red
`,
		},
		{
			name: "bad category",
			doc: `
activities:
  - id: 1
    title: A
    description: d
    category: Underwater
    difficulty: Easy
`,
		},
		{
			name: "bad date",
			doc: `
events:
  - id: 1
    title: E
    date: next week
    type: Virtual
    description: d
`,
		},
		{
			name: "missing id",
			doc: `
activities:
  - title: A
    description: d
    category: Indoor
    difficulty: Easy
`,
		},
		{
			name: "duplicate activity id",
			doc: `
activities:
  - id: 1
    title: A
    description: d
    category: Indoor
    difficulty: Easy
  - id: 1
    title: B
    description: d
    category: Outdoor
    difficulty: Easy
`,
			is: ErrDuplicateID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestEmbeddedSource(t *testing.T) {
	src, err := NewEmbeddedSource()
	require.NoError(t, err)

	ctx := context.Background()
	activities, err := src.Activities(ctx)
	require.NoError(t, err)
	events, err := src.Events(ctx)
	require.NoError(t, err)

	assert.Len(t, activities, 3)
	assert.Len(t, events, 3)

	// Callers get their own copy.
	activities[0].Title = "changed"
	again, err := src.Activities(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Virtual Team Building", again[0].Title)
}

type failingSource struct{ err error }

func (f failingSource) Activities(context.Context) ([]Activity, error) { return nil, f.err }
func (f failingSource) Events(context.Context) ([]Event, error)       { return nil, f.err }

type staticSource struct {
	activities []Activity
	events     []Event
}

func (s staticSource) Activities(context.Context) ([]Activity, error) { return s.activities, nil }
func (s staticSource) Events(context.Context) ([]Event, error)       { return s.events, nil }

func TestNewServiceErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewService(context.Background(), failingSource{err: boom})
	assert.ErrorIs(t, err, boom)

	dup := staticSource{activities: []Activity{
		{ID: 1, Title: "A", Description: "d", Category: CategoryIndoor, Difficulty: DifficultyEasy},
		{ID: 1, Title: "B", Description: "d", Category: CategoryIndoor, Difficulty: DifficultyEasy},
	}}
	_, err = NewService(context.Background(), dup)
	assert.ErrorIs(t, err, ErrDuplicateID)
}
