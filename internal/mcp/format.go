package mcp

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/fieldguide-mcp/internal/query"
	"github.com/dshills/fieldguide-mcp/pkg/types"
)

// Tool results are rendered as markdown text for the calling model.

func patternBadge(mistake bool) string {
	if mistake {
		return "MISTAKE"
	}
	return "PATTERN"
}

// formatPattern renders one full pattern record.
func formatPattern(p types.Pattern, idx int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%d] **%s** — %s (id %d)\n\n", idx+1, patternBadge(p.Mistake), p.Category, p.ID)
	fmt.Fprintf(&b, "**%s**\n\n%s", p.Title, strings.TrimSpace(p.Body))
	if len(p.Tags) > 0 {
		fmt.Fprintf(&b, "\n\n_Tags: %s_", strings.Join(p.Tags, ", "))
	}
	return b.String()
}

// formatPatterns renders a pattern list separated by horizontal rules.
func formatPatterns(patterns []types.Pattern) string {
	if len(patterns) == 0 {
		return "No patterns found."
	}
	parts := make([]string, len(patterns))
	for i, p := range patterns {
		parts[i] = formatPattern(p, i)
	}
	return strings.Join(parts, "\n\n---\n\n")
}

// formatSearchResults renders search summaries: rank, badge, category, title,
// and a body snippet.
func formatSearchResults(results []query.SearchResult) string {
	if len(results) == 0 {
		return "No patterns found."
	}

	parts := make([]string, len(results))
	for i, r := range results {
		var b strings.Builder
		fmt.Fprintf(&b, "[%d] **%s** — %s (id %d)\n\n", r.Rank, patternBadge(r.Mistake), r.Category, r.ID)
		fmt.Fprintf(&b, "**%s**\n\n%s", r.Title, r.Snippet)
		parts[i] = b.String()
	}
	return strings.Join(parts, "\n\n---\n\n")
}

// formatCategories renders the category listing.
func formatCategories(categories []query.CategoryCount) string {
	var b strings.Builder
	b.WriteString("**Available categories:**\n")
	for _, c := range categories {
		fmt.Fprintf(&b, "\n- **%s** (%d patterns)", c.Category, c.Count)
	}
	return b.String()
}

// formatStats renders the aggregate statistics report.
func formatStats(stats query.Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Agent Field Guide** — dataset v%s\n", stats.DatasetVersion)
	fmt.Fprintf(&b, "Source: %s\n\n", stats.Source)
	fmt.Fprintf(&b, "**Total patterns:** %d\n\n", stats.TotalPatterns)
	b.WriteString("**By type:**\n")
	fmt.Fprintf(&b, "  - mistake: %d\n", stats.TotalMistakes)
	fmt.Fprintf(&b, "  - pattern: %d\n", stats.TotalPatterns-stats.TotalMistakes)
	b.WriteString("\n**By category:**\n")

	// Count descending, name ascending; the map needs explicit ordering
	names := make([]string, 0, len(stats.PerCategory))
	for name := range stats.PerCategory {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if stats.PerCategory[names[i]] != stats.PerCategory[names[j]] {
			return stats.PerCategory[names[i]] > stats.PerCategory[names[j]]
		}
		return names[i] < names[j]
	})
	for _, name := range names {
		fmt.Fprintf(&b, "  - %s: %d\n", name, stats.PerCategory[name])
	}

	return strings.TrimRight(b.String(), "\n")
}
