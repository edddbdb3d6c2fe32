// Package types provides shared type definitions for the field guide MCP server.
//
// The central type is Pattern, a single curated record from the bundled
// corpus:
//
//	p := types.Pattern{
//	    ID:       42,
//	    Title:    "Health checks need retry with backoff",
//	    Body:     "A single failed probe right after deploy is noise...",
//	    Category: types.CategoryDeployment,
//	    Tags:     []string{"health-check", "retry"},
//	}
//
// Category is a closed enumeration fixed at dataset-authoring time. Use
// ParseCategory to validate caller-supplied names:
//
//	cat, err := types.ParseCategory("deployment")
//	if errors.Is(err, types.ErrInvalidCategory) { ... }
//
// # Validation
//
// Pattern.Validate enforces the per-record corpus invariants (positive id,
// non-empty title and body, known category). Corpus-level invariants such as
// id uniqueness are enforced by the corpus loader.
package types
