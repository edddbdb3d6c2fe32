package mcp

import (
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dshills/fieldguide-mcp/pkg/types"
)

// Per-tool limit bounds. Values above the max clamp; non-positive values are
// rejected as invalid parameters.
const (
	searchDefaultLimit = 20
	searchMaxLimit     = 50

	categoryDefaultLimit = 15
	categoryMaxLimit     = 40

	mistakesDefaultLimit = 10
	mistakesMaxLimit     = 25
)

// categoryNames returns the fixed enumeration as a comma-separated string for
// tool descriptions and error payloads.
func categoryNames() string {
	cats := types.AllCategories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// searchPatternsTool returns the tool definition for search_patterns
func searchPatternsTool() mcp.Tool {
	return mcp.Tool{
		Name: "search_patterns",
		Description: "Search for agent patterns and learnings by keyword. " +
			"Returns the most relevant patterns from 499+ sessions of autonomous operation. " +
			"Use this when you want to know how to handle a specific situation, " +
			"e.g. 'How do I handle rate limits?', 'What's the pattern for health checks?', " +
			"'How do I debug a failing deployment?'",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search terms to find relevant patterns (e.g. 'rate limit', 'database migration', 'MCP server')",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results to return (default 20, max 50)",
					"default":     searchDefaultLimit,
					"minimum":     1,
					"maximum":     searchMaxLimit,
				},
			},
			Required: []string{"query"},
		},
	}
}

// getByCategoryTool returns the tool definition for get_by_category
func getByCategoryTool() mcp.Tool {
	return mcp.Tool{
		Name: "get_by_category",
		Description: "Browse patterns by category. Available categories: " + categoryNames() + ". " +
			"Use this when you want to explore all learnings in a domain area.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"category": map[string]interface{}{
					"type":        "string",
					"description": "Category name (e.g. 'deployment', 'security', 'mcp')",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results (default 15, max 40)",
					"default":     categoryDefaultLimit,
					"minimum":     1,
					"maximum":     categoryMaxLimit,
				},
			},
			Required: []string{"category"},
		},
	}
}

// getMistakesTool returns the tool definition for get_mistakes
func getMistakesTool() mcp.Tool {
	return mcp.Tool{
		Name: "get_mistakes",
		Description: "Get documented mistakes and anti-patterns: things that were tried, failed, " +
			"and why. Extremely useful before starting a new task to avoid known pitfalls. " +
			"Can optionally filter by category.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"category": map[string]interface{}{
					"type":        "string",
					"description": "Optional category filter (e.g. 'deployment', 'database')",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results (default 10, max 25)",
					"default":     mistakesDefaultLimit,
					"minimum":     1,
					"maximum":     mistakesMaxLimit,
				},
			},
		},
	}
}

// listCategoriesTool returns the tool definition for list_categories
func listCategoriesTool() mcp.Tool {
	return mcp.Tool{
		Name: "list_categories",
		Description: "List all available pattern categories with counts. " +
			"Use this to discover what domains the field guide covers before diving in.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// statsTool returns the tool definition for stats
func statsTool() mcp.Tool {
	return mcp.Tool{
		Name: "stats",
		Description: "Get statistics about the field guide: total patterns, breakdown by type " +
			"and category, and origin metadata.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}
