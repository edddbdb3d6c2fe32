package integration

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"

	"github.com/dshills/fieldguide-mcp/internal/corpus"
	"github.com/dshills/fieldguide-mcp/internal/query"
	"github.com/dshills/fieldguide-mcp/pkg/types"
)

// FieldGuideTestSuite exercises the full stack over the real bundled dataset:
// corpus load, every query operation, and the read-only concurrency model.
type FieldGuideTestSuite struct {
	suite.Suite
	store  *corpus.Store
	engine *query.Engine
}

func TestFieldGuideSuite(t *testing.T) {
	suite.Run(t, new(FieldGuideTestSuite))
}

func (s *FieldGuideTestSuite) SetupSuite() {
	store, err := corpus.Load()
	s.Require().NoError(err, "bundled dataset must load cleanly")
	s.store = store
	s.engine = query.New(store)
}

// TestCorpusInvariants checks the load-time guarantees over the real dataset.
func (s *FieldGuideTestSuite) TestCorpusInvariants() {
	s.Greater(s.store.Len(), 0)

	seen := make(map[int]bool)
	for _, p := range s.store.All() {
		s.NoError(p.Validate(), "pattern %d", p.ID)
		s.False(seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
	}
}

// TestCategoryCountsSumToTotal verifies the counting property end to end.
func (s *FieldGuideTestSuite) TestCategoryCountsSumToTotal() {
	total := 0
	for _, c := range s.engine.ListCategories() {
		total += c.Count
	}
	s.Equal(s.store.Len(), total)

	stats := s.engine.Stats()
	s.Equal(s.store.Len(), stats.TotalPatterns)

	perCategoryTotal := 0
	for _, n := range stats.PerCategory {
		perCategoryTotal += n
	}
	s.Equal(stats.TotalPatterns, perCategoryTotal)
	s.LessOrEqual(stats.TotalMistakes, stats.TotalPatterns)
}

// TestMistakesAreMistakes verifies the mistake filter over every category.
func (s *FieldGuideTestSuite) TestMistakesAreMistakes() {
	all, err := s.engine.Mistakes("", 0)
	s.Require().NoError(err)
	for _, p := range all {
		s.True(p.Mistake, "pattern %d returned by get_mistakes is not a mistake", p.ID)
	}

	for _, cat := range types.AllCategories() {
		filtered, err := s.engine.Mistakes(string(cat), 0)
		s.Require().NoError(err)
		for _, p := range filtered {
			s.True(p.Mistake)
			s.Equal(cat, p.Category)
		}
	}
}

// TestSearchFindsDatasetContent runs searches that must hit the bundled
// corpus and checks result shape.
func (s *FieldGuideTestSuite) TestSearchFindsDatasetContent() {
	results := s.engine.Search(query.SearchRequest{Query: "retry backoff"})
	s.Require().NotEmpty(results, "bundled corpus covers retries")

	for i, r := range results {
		s.Equal(i+1, r.Rank)
		s.NotEmpty(r.Title)
		s.NotEmpty(r.Snippet)
		if i > 0 {
			s.LessOrEqual(r.Score, results[i-1].Score)
		}
	}
}

// TestConcurrentQueriesAreSafe hammers every operation from many goroutines.
// The corpus is read-only after load, so concurrent invocations must be safe
// and return identical results.
func (s *FieldGuideTestSuite) TestConcurrentQueriesAreSafe() {
	const workers = 16

	baseline := s.engine.Search(query.SearchRequest{Query: "deploy database cache"})
	baselineStats := s.engine.Stats()
	baselineCats := s.engine.ListCategories()

	var g errgroup.Group
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for j := 0; j < 50; j++ {
				results := s.engine.Search(query.SearchRequest{Query: "deploy database cache"})
				if len(results) != len(baseline) {
					return errEqual("search result count", len(baseline), len(results))
				}
				for k := range results {
					if results[k] != baseline[k] {
						return errEqual("search result", baseline[k], results[k])
					}
				}

				if got := s.engine.Stats(); got.TotalPatterns != baselineStats.TotalPatterns {
					return errEqual("total patterns", baselineStats.TotalPatterns, got.TotalPatterns)
				}

				cats := s.engine.ListCategories()
				for k := range cats {
					if cats[k] != baselineCats[k] {
						return errEqual("category listing", baselineCats[k], cats[k])
					}
				}

				if _, err := s.engine.ByCategory("deployment", 0); err != nil {
					return err
				}
				if _, err := s.engine.Mistakes("security", 0); err != nil {
					return err
				}
			}
			return nil
		})
	}

	s.NoError(g.Wait())
}

// TestRepeatedCallsAreIdempotent verifies determinism across the whole API.
func (s *FieldGuideTestSuite) TestRepeatedCallsAreIdempotent() {
	first := s.engine.Search(query.SearchRequest{Query: "migration schema", Limit: 5})
	second := s.engine.Search(query.SearchRequest{Query: "migration schema", Limit: 5})
	s.Equal(first, second)

	s.Equal(s.engine.Stats(), s.engine.Stats())
	s.Equal(s.engine.ListCategories(), s.engine.ListCategories())
}

func errEqual(what string, want, got interface{}) error {
	return fmt.Errorf("%s mismatch under concurrency: want %v, got %v", what, want, got)
}
