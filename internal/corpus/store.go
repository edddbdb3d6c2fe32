package corpus

import (
	"fmt"

	"github.com/dshills/fieldguide-mcp/pkg/types"
)

// Store holds the full corpus in memory. It is constructed once at startup
// and read-only afterwards, so it is safe for concurrent use without locking.
type Store struct {
	patterns   []types.Pattern
	byID       map[int]int                    // id -> index into patterns
	byCategory map[types.Category][]int       // category -> indices in dataset order
	version    string
	source     string
}

// All returns every pattern in dataset order. The returned slice is shared;
// callers must not modify it.
func (s *Store) All() []types.Pattern {
	return s.patterns
}

// Get returns the pattern with the given id.
func (s *Store) Get(id int) (types.Pattern, bool) {
	idx, ok := s.byID[id]
	if !ok {
		return types.Pattern{}, false
	}
	return s.patterns[idx], true
}

// ByCategory returns the patterns in the named category in dataset order.
// A valid category with no patterns yields an empty slice; a name outside the
// fixed enumeration yields an error wrapping types.ErrInvalidCategory.
func (s *Store) ByCategory(name string) ([]types.Pattern, error) {
	cat, err := types.ParseCategory(name)
	if err != nil {
		return nil, err
	}
	indices := s.byCategory[cat]
	results := make([]types.Pattern, len(indices))
	for i, idx := range indices {
		results[i] = s.patterns[idx]
	}
	return results, nil
}

// CategoryCounts returns the number of patterns per category, for categories
// actually present in the corpus.
func (s *Store) CategoryCounts() map[types.Category]int {
	counts := make(map[types.Category]int, len(s.byCategory))
	for cat, indices := range s.byCategory {
		counts[cat] = len(indices)
	}
	return counts
}

// Len returns the total number of patterns.
func (s *Store) Len() int {
	return len(s.patterns)
}

// Version returns the dataset version identifier.
func (s *Store) Version() string {
	return s.version
}

// Source returns the dataset origin descriptor.
func (s *Store) Source() string {
	return s.source
}

// index builds the lookup maps and enforces corpus-level invariants.
func (s *Store) index() error {
	s.byID = make(map[int]int, len(s.patterns))
	s.byCategory = make(map[types.Category][]int)

	for i := range s.patterns {
		p := &s.patterns[i]
		if err := p.Validate(); err != nil {
			return fmt.Errorf("%w: %v", types.ErrDataIntegrity, err)
		}
		if prev, dup := s.byID[p.ID]; dup {
			return fmt.Errorf("%w: duplicate id %d (records %d and %d)",
				types.ErrDataIntegrity, p.ID, prev, i)
		}
		s.byID[p.ID] = i
		s.byCategory[p.Category] = append(s.byCategory[p.Category], i)
	}

	return nil
}
