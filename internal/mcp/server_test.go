package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamsync/internal/catalog"
	"teamsync/internal/pricing"
	"teamsync/internal/site"
)

func fixtures(t *testing.T) (*catalog.Service, *site.Content) {
	t.Helper()
	src, err := catalog.NewEmbeddedSource()
	require.NoError(t, err)
	svc, err := catalog.NewService(context.Background(), src)
	require.NoError(t, err)
	content, err := site.Load()
	require.NoError(t, err)
	return svc, content
}

func call(t *testing.T, h server.ToolHandlerFunc, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	switch c := res.Content[0].(type) {
	case mcp.TextContent:
		return c.Text
	case *mcp.TextContent:
		return c.Text
	}
	t.Fatalf("unexpected content %T", res.Content[0])
	return ""
}

func decode[T any](t *testing.T, res *mcp.CallToolResult) T {
	t.Helper()
	require.False(t, res.IsError, resultText(t, res))
	var v T
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &v))
	return v
}

func TestNewServer(t *testing.T) {
	svc, content := fixtures(t)
	assert.NotNil(t, NewServer(svc, content))
}

func TestListActivities(t *testing.T) {
	svc, _ := fixtures(t)
	h := handleListActivities(svc)

	all := decode[[]catalog.Activity](t, call(t, h, nil))
	assert.Len(t, all, 3)

	easy := decode[[]catalog.Activity](t, call(t, h, map[string]any{"difficulty": "Easy", "search": "cook"}))
	require.Len(t, easy, 1)
	assert.Equal(t, 3, easy[0].ID)

	none := decode[[]catalog.Activity](t, call(t, h, map[string]any{"category": "Underwater"}))
	assert.Empty(t, none)
}

func TestGetActivity(t *testing.T) {
	svc, _ := fixtures(t)
	h := handleGetActivity(svc)

	a := decode[catalog.Activity](t, call(t, h, map[string]any{"id": 2}))
	assert.Equal(t, "Outdoor Adventure Challenge", a.Title)

	assert.True(t, call(t, h, map[string]any{"id": 42}).IsError)
	assert.True(t, call(t, h, map[string]any{}).IsError)
}

func TestListEventsAndFilters(t *testing.T) {
	svc, _ := fixtures(t)

	events := decode[[]catalog.Event](t, call(t, handleListEvents(svc), map[string]any{"type": "Virtual"}))
	require.Len(t, events, 1)
	assert.Equal(t, 1, events[0].ID)

	filters := decode[catalog.Filters](t, call(t, handleListFilters(), nil))
	assert.Equal(t, catalog.Options(), filters)
}

func TestGetPricing(t *testing.T) {
	_, content := fixtures(t)
	h := handleGetPricing(content)

	quotes := decode[[]pricing.Quote](t, call(t, h, nil))
	require.Len(t, quotes, 3)
	assert.Equal(t, "annual", quotes[1].Period)
	assert.Equal(t, "$24.00", quotes[1].SavingsText)

	monthly := decode[[]pricing.Quote](t, call(t, h, map[string]any{"billing": "monthly"}))
	assert.Equal(t, "$19.99", monthly[1].Display)

	assert.True(t, call(t, h, map[string]any{"billing": "weekly"}).IsError)
}

func TestGetTestimonial(t *testing.T) {
	_, content := fixtures(t)
	h := handleGetTestimonial(content)

	first := decode[TestimonialResult](t, call(t, h, nil))
	assert.Equal(t, 0, first.Index)
	assert.Equal(t, 3, first.Total)
	assert.Equal(t, "Sarah Chen", first.Slide.Author)

	prev := decode[TestimonialResult](t, call(t, h, map[string]any{"index": 0, "direction": "prev"}))
	assert.Equal(t, 2, prev.Index)

	next := decode[TestimonialResult](t, call(t, h, map[string]any{"index": 2, "direction": "next"}))
	assert.Equal(t, 0, next.Index)

	assert.True(t, call(t, h, map[string]any{"direction": "up"}).IsError)
}
