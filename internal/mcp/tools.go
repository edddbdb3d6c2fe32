package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/dshills/fieldguide-mcp/internal/query"
	"github.com/dshills/fieldguide-mcp/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams   = -32602 // Invalid method parameters
	ErrorCodeInternalError   = -32603 // Internal JSON-RPC error
	ErrorCodeUnknownCategory = -32001 // Category outside the fixed enumeration
)

// handleSearchPatterns handles the search_patterns tool invocation
func (s *Server) handleSearchPatterns(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	queryStr, ok := args["query"].(string)
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "query parameter is required", map[string]interface{}{
			"param":    "query",
			"expected": "string",
		})
	}

	limit, err := limitArg(args, searchDefaultLimit, searchMaxLimit)
	if err != nil {
		return nil, err
	}

	results := s.engine.Search(query.SearchRequest{Query: queryStr, Limit: limit})
	s.logger.Debug("search_patterns",
		zap.String("query", queryStr),
		zap.Int("results", len(results)),
	)

	text := formatSearchResults(results)
	if len(results) > 0 {
		text = fmt.Sprintf("Found %d pattern(s) for '%s':\n\n%s", len(results), queryStr, text)
	}

	return mcp.NewToolResultText(text), nil
}

// handleGetByCategory handles the get_by_category tool invocation
func (s *Server) handleGetByCategory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	category, ok := args["category"].(string)
	if !ok || category == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "category parameter is required", map[string]interface{}{
			"param":    "category",
			"expected": "string, one of: " + categoryNames(),
		})
	}

	limit, err := limitArg(args, categoryDefaultLimit, categoryMaxLimit)
	if err != nil {
		return nil, err
	}

	patterns, err := s.engine.ByCategory(category, limit)
	if err != nil {
		return nil, categoryError(category, err)
	}

	s.logger.Debug("get_by_category",
		zap.String("category", category),
		zap.Int("results", len(patterns)),
	)

	var text string
	if len(patterns) > 0 {
		text = fmt.Sprintf("**%s** — %d pattern(s):\n\n%s", category, len(patterns), formatPatterns(patterns))
	} else {
		text = fmt.Sprintf("No patterns found for category '%s'.\nAvailable categories: %s", category, categoryNames())
	}

	return mcp.NewToolResultText(text), nil
}

// handleGetMistakes handles the get_mistakes tool invocation
func (s *Server) handleGetMistakes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	// category is optional; absent and empty both mean "all categories"
	category := getStringDefault(args, "category", "")

	limit, err := limitArg(args, mistakesDefaultLimit, mistakesMaxLimit)
	if err != nil {
		return nil, err
	}

	mistakes, err := s.engine.Mistakes(category, limit)
	if err != nil {
		return nil, categoryError(category, err)
	}

	s.logger.Debug("get_mistakes",
		zap.String("category", category),
		zap.Int("results", len(mistakes)),
	)

	text := formatPatterns(mistakes)
	if len(mistakes) > 0 {
		header := "**Documented mistakes**"
		if category != "" {
			header += " in " + category
		}
		text = fmt.Sprintf("%s — %d entry(s):\n\n%s", header, len(mistakes), text)
	}

	return mcp.NewToolResultText(text), nil
}

// handleListCategories handles the list_categories tool invocation
func (s *Server) handleListCategories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	categories := s.engine.ListCategories()
	return mcp.NewToolResultText(formatCategories(categories)), nil
}

// handleStats handles the stats tool invocation
func (s *Server) handleStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats := s.engine.Stats()
	return mcp.NewToolResultText(formatStats(stats)), nil
}

// Helper functions

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// categoryError maps an engine error for a caller-supplied category to the
// proper MCP error. Anything other than an unknown category is internal.
func categoryError(category string, err error) error {
	if errors.Is(err, types.ErrInvalidCategory) {
		return newMCPError(ErrorCodeUnknownCategory, "unknown category", map[string]interface{}{
			"param":    "category",
			"value":    category,
			"expected": "one of: " + categoryNames(),
		})
	}
	return newMCPError(ErrorCodeInternalError, "query failed", map[string]interface{}{
		"error": err.Error(),
	})
}

// limitArg extracts the optional limit parameter. Absent limits use the
// default; explicit non-positive limits are invalid; oversized limits clamp.
func limitArg(args map[string]interface{}, def, max int) (int, error) {
	raw, present := args["limit"]
	if !present {
		return def, nil
	}

	limit, ok := intValue(raw)
	if !ok || limit < 1 {
		return 0, newMCPError(ErrorCodeInvalidParams, "limit must be a positive integer", map[string]interface{}{
			"param":    "limit",
			"value":    raw,
			"expected": fmt.Sprintf("integer between 1 and %d", max),
		})
	}
	if limit > max {
		limit = max
	}
	return limit, nil
}

// intValue coerces a JSON argument to int. JSON numbers arrive as float64.
func intValue(raw interface{}) (int, bool) {
	switch v := raw.(type) {
	case float64:
		if v != float64(int(v)) {
			return 0, false
		}
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}
