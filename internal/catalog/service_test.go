package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	src, err := NewEmbeddedSource()
	require.NoError(t, err)
	svc, err := NewService(context.Background(), src)
	require.NoError(t, err)
	return svc
}

func TestServiceActivity(t *testing.T) {
	svc := newTestService(t)

	a, err := svc.Activity(2)
	require.NoError(t, err)
	assert.Equal(t, "Outdoor Adventure Challenge", a.Title)

	_, err = svc.Activity(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServiceFeatured(t *testing.T) {
	svc := newTestService(t)

	assert.Len(t, svc.Featured(2), 2)
	assert.Len(t, svc.Featured(10), 3)
	assert.Empty(t, svc.Featured(-1))
	assert.Equal(t, 1, svc.Featured(1)[0].ID)
}

func TestServiceFilters(t *testing.T) {
	svc := newTestService(t)

	assert.Len(t, svc.Activities(Criteria{Category: All, Difficulty: All}), 3)
	assert.Len(t, svc.Events(Criteria{Category: EventOutdoor}), 1)
}

func TestRenderMarkdown(t *testing.T) {
	svc := newTestService(t)

	assert.Equal(t, "<p>Solve <strong>puzzles</strong>.</p>\n", svc.RenderMarkdown("Solve **puzzles**."))

	out := svc.RenderMarkdown("<script>alert(1)</script>")
	assert.NotContains(t, out, "<script>")
}
