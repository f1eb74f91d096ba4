package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"teamsync/internal/carousel"
	"teamsync/internal/catalog"
	"teamsync/internal/pricing"
	"teamsync/internal/site"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewServer creates an MCP server with tools over the site catalog
func NewServer(svc *catalog.Service, content *site.Content) *server.MCPServer {
	s := server.NewMCPServer(
		"TeamSync",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Tool: list_filters - Filter options
	s.AddTool(
		mcp.NewTool("list_filters",
			mcp.WithDescription("List the categories, difficulties and event types that activities and events can be filtered by. \"All\" disables a filter."),
		),
		handleListFilters(),
	)

	// Tool: list_activities - Filtered activities
	s.AddTool(
		mcp.NewTool("list_activities",
			mcp.WithDescription("List team building activities matching a category, a difficulty and a case-insensitive search over title, description and tags. Results keep catalog order."),
			mcp.WithString("category",
				mcp.Description("Optional: Virtual, Outdoor, Indoor or All (default)"),
			),
			mcp.WithString("difficulty",
				mcp.Description("Optional: Easy, Moderate, Challenging or All (default)"),
			),
			mcp.WithString("search",
				mcp.Description("Optional: substring to look for in title, description or tags"),
			),
		),
		handleListActivities(svc),
	)

	// Tool: get_activity - One activity by ID
	s.AddTool(
		mcp.NewTool("get_activity",
			mcp.WithDescription("Get a single activity by its numeric ID."),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("The activity ID"),
			),
		),
		handleGetActivity(svc),
	)

	// Tool: list_events - Filtered events
	s.AddTool(
		mcp.NewTool("list_events",
			mcp.WithDescription("List upcoming events matching a type and a case-insensitive search over title and description."),
			mcp.WithString("type",
				mcp.Description("Optional: Virtual, In-Person, Outdoor or All (default)"),
			),
			mcp.WithString("search",
				mcp.Description("Optional: substring to look for in title or description"),
			),
		),
		handleListEvents(svc),
	)

	// Tool: get_pricing - Plan quotes
	s.AddTool(
		mcp.NewTool("get_pricing",
			mcp.WithDescription("Quote every subscription plan for a billing period. Annual quotes include the yearly savings over monthly billing."),
			mcp.WithString("billing",
				mcp.Description("Optional: monthly or annual (default)"),
				mcp.Enum("monthly", "annual"),
			),
		),
		handleGetPricing(content),
	)

	// Tool: get_testimonial - Carousel navigation
	s.AddTool(
		mcp.NewTool("get_testimonial",
			mcp.WithDescription("Get a customer testimonial. Pass an index, optionally with a direction to step to the next or previous one (wrapping around)."),
			mcp.WithNumber("index",
				mcp.Description("Current slide index (default: 0)"),
			),
			mcp.WithString("direction",
				mcp.Description("Optional: next or prev"),
				mcp.Enum("next", "prev"),
			),
		),
		handleGetTestimonial(content),
	)

	return s
}

// TestimonialResult is a testimonial with its carousel position
type TestimonialResult struct {
	Index int              `json:"index"`
	Total int              `json:"total"`
	Slide site.Testimonial `json:"testimonial"`
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func handleListFilters() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(catalog.Options())
	}
}

func handleListActivities(svc *catalog.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		c := catalog.Criteria{
			Category:   req.GetString("category", catalog.All),
			Difficulty: req.GetString("difficulty", catalog.All),
			Search:     req.GetString("search", ""),
		}
		return jsonResult(svc.Activities(c))
	}
}

func handleGetActivity(svc *catalog.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := req.RequireInt("id")
		if err != nil {
			return mcp.NewToolResultError("id is required"), nil
		}

		activity, err := svc.Activity(id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(activity)
	}
}

func handleListEvents(svc *catalog.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		c := catalog.Criteria{
			Category: req.GetString("type", catalog.All),
			Search:   req.GetString("search", ""),
		}
		return jsonResult(svc.Events(c))
	}
}

func handleGetPricing(content *site.Content) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		period, err := pricing.ParsePeriod(req.GetString("billing", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(pricing.QuotePlans(content.Plans, period))
	}
}

func handleGetTestimonial(content *site.Content) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		n := len(content.Testimonials)
		index := carousel.Normalize(req.GetInt("index", 0), n)

		if d := req.GetString("direction", ""); d != "" {
			dir, err := carousel.ParseDirection(d)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			index = carousel.Cycle(index, dir, n)
		}

		return jsonResult(TestimonialResult{
			Index: index,
			Total: n,
			Slide: content.Testimonials[index],
		})
	}
}
