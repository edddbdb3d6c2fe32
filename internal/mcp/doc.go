// Package mcp implements the Model Context Protocol (MCP) server for the
// agent field guide.
//
// The server exposes five tools to AI assistants:
//   - search_patterns: Keyword search over the pattern corpus
//   - get_by_category: Browse all patterns in one category
//   - get_mistakes: Documented mistakes and anti-patterns, optionally by category
//   - list_categories: Every category with its pattern count
//   - stats: Aggregate corpus statistics and dataset metadata
//
// # Protocol Overview
//
// MCP is a JSON-RPC 2.0 protocol over stdio transport:
//
//	Client → Server: {"method": "tools/call", "params": {...}}
//	Server → Client: {"result": {...}}
//
// Tool discovery (tools/list) is served by the framework from the statically
// registered tool table; there is no runtime schema computation.
//
// # Request Lifecycle
//
// Every tool call is a single stateless request/response turn. The corpus is
// loaded once in NewServer and never mutated, so handlers hold no per-session
// state and concurrent calls are safe by construction.
//
// # Error Handling
//
// Parameter validation failures and unknown categories are returned as
// structured JSON-RPC errors and never crash the process:
//
//	{
//	  "error": {
//	    "code": -32602,
//	    "message": "limit must be a positive integer",
//	    "data": {"param": "limit", "expected": "integer between 1 and 50"}
//	  }
//	}
//
// Error codes:
//   - -32602: Invalid params (missing/invalid arguments)
//   - -32603: Internal error
//   - -32001: Category outside the fixed enumeration
//
// The only fatal error is a corrupt bundled dataset, which fails NewServer
// before the server ever accepts a request.
//
// # Logging
//
// All logging goes to stderr; stdout is reserved for the MCP wire.
package mcp
