package types

import (
	"fmt"
	"strings"
	"unicode"
)

// Category classifies a pattern's domain area. The set of valid categories is
// fixed at dataset-authoring time; anything else is a data error.
type Category string

const (
	CategoryDeployment   Category = "deployment"
	CategoryDatabase     Category = "database"
	CategoryAPIDesign    Category = "api-design"
	CategoryTesting      Category = "testing"
	CategorySecurity     Category = "security"
	CategoryAgentOps     Category = "agent-ops"
	CategoryMCP          Category = "mcp"
	CategoryProjectMgmt  Category = "project-mgmt"
	CategoryMetaPatterns Category = "meta-patterns"
	CategoryPerformance  Category = "performance"
	CategoryPython       Category = "python"
	CategoryContent      Category = "content"
	CategoryGeneral      Category = "general"
)

// AllCategories returns the fixed category enumeration in declaration order.
func AllCategories() []Category {
	return []Category{
		CategoryDeployment,
		CategoryDatabase,
		CategoryAPIDesign,
		CategoryTesting,
		CategorySecurity,
		CategoryAgentOps,
		CategoryMCP,
		CategoryProjectMgmt,
		CategoryMetaPatterns,
		CategoryPerformance,
		CategoryPython,
		CategoryContent,
		CategoryGeneral,
	}
}

// ParseCategory validates a caller-supplied category name against the fixed
// enumeration. Leading/trailing whitespace and letter case are forgiven.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range AllCategories() {
		if c == valid {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

// Pattern is a single curated record in the corpus: a learning, a positive
// pattern, or a documented mistake.
type Pattern struct {
	ID       int      `yaml:"id" json:"id"`
	Title    string   `yaml:"title" json:"title"`
	Body     string   `yaml:"body" json:"body"`
	Category Category `yaml:"category" json:"category"`
	Mistake  bool     `yaml:"mistake" json:"is_mistake"`
	Tags     []string `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// Validate checks a pattern satisfies the corpus invariants. Uniqueness of IDs
// is a corpus-level property checked at load time.
func (p *Pattern) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("%w (id %d)", ErrMissingID, p.ID)
	}
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("%w (id %d)", ErrMissingTitle, p.ID)
	}
	if strings.TrimSpace(p.Body) == "" {
		return fmt.Errorf("%w (id %d)", ErrMissingBody, p.ID)
	}
	if _, err := ParseCategory(string(p.Category)); err != nil {
		return fmt.Errorf("pattern %d: %w", p.ID, err)
	}
	return nil
}

// Snippet returns the pattern body truncated to at most max runes, cut at a
// word boundary with a trailing ellipsis.
func (p *Pattern) Snippet(max int) string {
	body := strings.Join(strings.Fields(p.Body), " ")
	runes := []rune(body)
	if max <= 0 || len(runes) <= max {
		return body
	}
	cut := max
	for cut > 0 && !unicode.IsSpace(runes[cut-1]) {
		cut--
	}
	if cut == 0 {
		cut = max
	}
	return strings.TrimRight(string(runes[:cut]), " ") + "..."
}
