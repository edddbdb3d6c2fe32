package query

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"strings"
	"unicode"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dshills/fieldguide-mcp/internal/corpus"
	"github.com/dshills/fieldguide-mcp/pkg/types"
)

const (
	// DefaultSearchLimit is used when the caller omits limit
	DefaultSearchLimit = 20
	// MaxSearchLimit caps the result count for search_patterns
	MaxSearchLimit = 50
	// SnippetRunes bounds the body excerpt in search results
	SnippetRunes = 200

	searchCacheSize = 256
)

// SearchRequest contains parameters for a keyword search.
type SearchRequest struct {
	Query string
	Limit int
}

// SearchResult is one row of a search response: a pattern summary plus its
// relevance information.
type SearchResult struct {
	ID       int            `json:"id"`
	Title    string         `json:"title"`
	Category types.Category `json:"category"`
	Mistake  bool           `json:"is_mistake"`
	Snippet  string         `json:"snippet"`
	Score    int            `json:"score"`
	Rank     int            `json:"rank"` // 1-based position in the result set
}

// CategoryCount pairs a category with its pattern count.
type CategoryCount struct {
	Category types.Category `json:"category"`
	Count    int            `json:"count"`
}

// Stats holds aggregate corpus counts.
type Stats struct {
	TotalPatterns  int            `json:"total_patterns"`
	TotalMistakes  int            `json:"total_mistakes"`
	PerCategory    map[string]int `json:"per_category"`
	DatasetVersion string         `json:"dataset_version"`
	Source         string         `json:"source"`
}

// Engine implements all read-only query semantics over the corpus store.
// Every operation is a pure function of (store, parameters); the search memo
// cache is an optimization only and never changes observable results.
type Engine struct {
	store *corpus.Store
	cache *lru.Cache[[32]byte, []SearchResult]
}

// New creates an Engine over the given store.
func New(store *corpus.Store) *Engine {
	// The corpus is immutable, so cached responses never go stale and no
	// TTL or invalidation is needed.
	cache, err := lru.New[[32]byte, []SearchResult](searchCacheSize)
	if err != nil {
		// Only reachable with a non-positive size parameter
		panic(fmt.Sprintf("failed to create search cache: %v", err))
	}

	return &Engine{
		store: store,
		cache: cache,
	}
}

// Store returns the underlying corpus store.
func (e *Engine) Store() *corpus.Store {
	return e.store
}

// Search performs deterministic keyword search over the corpus.
//
// The query is tokenized into lowercase terms on non-letter/non-digit runes.
// A pattern matches when at least one term is a substring of its title, body,
// or tags (case-insensitive). Score is the count of distinct matching terms;
// ties break by title hit first, then dataset order. An empty or
// whitespace-only query returns an empty result set.
func (e *Engine) Search(req SearchRequest) []SearchResult {
	limit := clampLimit(req.Limit, DefaultSearchLimit, MaxSearchLimit)

	terms := tokenize(req.Query)
	if len(terms) == 0 {
		return []SearchResult{}
	}

	key := searchKey(terms, limit)
	if cached, ok := e.cache.Get(key); ok {
		return cached
	}

	type scored struct {
		index    int // dataset order, final tie-break
		score    int
		titleHit bool
	}

	var matches []scored
	for i, p := range e.store.All() {
		title := strings.ToLower(p.Title)
		body := strings.ToLower(p.Body)

		score := 0
		titleHit := false
		for _, term := range terms {
			inTitle := strings.Contains(title, term)
			if inTitle || strings.Contains(body, term) || tagMatch(p.Tags, term) {
				score++
				titleHit = titleHit || inTitle
			}
		}
		if score > 0 {
			matches = append(matches, scored{index: i, score: score, titleHit: titleHit})
		}
	}

	// Stable sort preserves dataset order within equal (score, titleHit)
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].titleHit && !matches[j].titleHit
	})

	if limit > len(matches) {
		limit = len(matches)
	}

	all := e.store.All()
	results := make([]SearchResult, limit)
	for i := 0; i < limit; i++ {
		p := all[matches[i].index]
		results[i] = SearchResult{
			ID:       p.ID,
			Title:    p.Title,
			Category: p.Category,
			Mistake:  p.Mistake,
			Snippet:  p.Snippet(SnippetRunes),
			Score:    matches[i].score,
			Rank:     i + 1,
		}
	}

	e.cache.Add(key, results)
	return results
}

// ByCategory returns the patterns in the named category, truncated to limit.
func (e *Engine) ByCategory(name string, limit int) ([]types.Pattern, error) {
	patterns, err := e.store.ByCategory(name)
	if err != nil {
		return nil, err
	}
	return truncate(patterns, limit), nil
}

// Mistakes returns all patterns flagged as mistakes, optionally filtered by
// category (empty name means no filter), truncated to limit.
func (e *Engine) Mistakes(name string, limit int) ([]types.Pattern, error) {
	source := e.store.All()
	if name != "" {
		var err error
		source, err = e.store.ByCategory(name)
		if err != nil {
			return nil, err
		}
	}

	var mistakes []types.Pattern
	for _, p := range source {
		if p.Mistake {
			mistakes = append(mistakes, p)
		}
	}
	return truncate(mistakes, limit), nil
}

// ListCategories returns every category in the fixed enumeration with its
// pattern count (zero allowed), sorted by count descending then name
// ascending.
func (e *Engine) ListCategories() []CategoryCount {
	counts := e.store.CategoryCounts()

	results := make([]CategoryCount, 0, len(types.AllCategories()))
	for _, cat := range types.AllCategories() {
		results = append(results, CategoryCount{Category: cat, Count: counts[cat]})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Count != results[j].Count {
			return results[i].Count > results[j].Count
		}
		return results[i].Category < results[j].Category
	})

	return results
}

// Stats returns aggregate counts for the whole corpus.
func (e *Engine) Stats() Stats {
	perCategory := make(map[string]int, len(types.AllCategories()))
	for cat, n := range e.store.CategoryCounts() {
		perCategory[string(cat)] = n
	}

	mistakes := 0
	for _, p := range e.store.All() {
		if p.Mistake {
			mistakes++
		}
	}

	return Stats{
		TotalPatterns:  e.store.Len(),
		TotalMistakes:  mistakes,
		PerCategory:    perCategory,
		DatasetVersion: e.store.Version(),
		Source:         e.store.Source(),
	}
}

// tokenize splits a query into distinct lowercase terms on any rune that is
// not a letter or digit.
func tokenize(query string) []string {
	fields := strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	seen := make(map[string]struct{}, len(fields))
	terms := fields[:0]
	for _, f := range fields {
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		terms = append(terms, f)
	}
	return terms
}

func tagMatch(tags []string, term string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// clampLimit applies the default for unset limits and the cap for oversized
// ones. Negative and zero limits fall back to the default; rejecting
// explicitly invalid caller values is the dispatcher's job.
func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

func truncate(patterns []types.Pattern, limit int) []types.Pattern {
	if patterns == nil {
		return []types.Pattern{}
	}
	if limit > 0 && limit < len(patterns) {
		return patterns[:limit]
	}
	return patterns
}

// searchKey computes a stable cache key for a normalized search request.
func searchKey(terms []string, limit int) [32]byte {
	var data strings.Builder
	data.WriteString(strings.Join(terms, " "))
	data.WriteString("|")
	fmt.Fprintf(&data, "%d", limit)
	return sha256.Sum256([]byte(data.String()))
}
