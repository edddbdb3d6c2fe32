// Package query implements the read-only query semantics over the corpus
// store: keyword search, category browsing, mistake filtering, category
// listing, and aggregate statistics.
//
// # Search Semantics
//
// Search tokenizes the query into distinct lowercase terms (split on any
// non-letter/non-digit rune) and matches each term as a case-insensitive
// substring of a pattern's title, body, or tags:
//
//	results := engine.Search(query.SearchRequest{
//	    Query: "rate limit backoff",
//	    Limit: 10,
//	})
//
// Ordering is fully deterministic:
//
//  1. Score descending (count of distinct matching terms)
//  2. Patterns with a title match above body/tag-only matches
//  3. Dataset order as the final tie-break
//
// An empty or whitespace-only query returns an empty result set, not an
// error. Limits default to 20 and cap at 50.
//
// # Determinism
//
// Every operation is a pure function of the immutable store and its
// parameters. Repeated identical calls return identical results. Search
// responses are memoized in a small LRU cache; because the corpus never
// changes within a process lifetime, cached entries never expire.
package query
