package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPattern() Pattern {
	return Pattern{
		ID:       1,
		Title:    "Health checks need retry with backoff",
		Body:     "Poll the endpoint with exponential backoff before declaring failure.",
		Category: CategoryDeployment,
		Tags:     []string{"health-check", "retry"},
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Category
		wantErr bool
	}{
		{"exact match", "deployment", CategoryDeployment, false},
		{"uppercase folds", "SECURITY", CategorySecurity, false},
		{"whitespace trimmed", "  mcp  ", CategoryMCP, false},
		{"hyphenated name", "api-design", CategoryAPIDesign, false},
		{"unknown name", "kubernetes", "", true},
		{"empty string", "", "", true},
		{"near miss", "deployments", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidCategory)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllCategories(t *testing.T) {
	cats := AllCategories()
	assert.Len(t, cats, 13)

	// Every member of the enumeration must round-trip through ParseCategory
	seen := make(map[Category]bool)
	for _, c := range cats {
		parsed, err := ParseCategory(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
		assert.False(t, seen[c], "duplicate category %s", c)
		seen[c] = true
	}
}

func TestPatternValidate(t *testing.T) {
	t.Run("valid pattern", func(t *testing.T) {
		p := validPattern()
		assert.NoError(t, p.Validate())
	})

	t.Run("zero id", func(t *testing.T) {
		p := validPattern()
		p.ID = 0
		assert.ErrorIs(t, p.Validate(), ErrMissingID)
	})

	t.Run("negative id", func(t *testing.T) {
		p := validPattern()
		p.ID = -3
		assert.ErrorIs(t, p.Validate(), ErrMissingID)
	})

	t.Run("blank title", func(t *testing.T) {
		p := validPattern()
		p.Title = "   "
		assert.ErrorIs(t, p.Validate(), ErrMissingTitle)
	})

	t.Run("empty body", func(t *testing.T) {
		p := validPattern()
		p.Body = ""
		assert.ErrorIs(t, p.Validate(), ErrMissingBody)
	})

	t.Run("unknown category", func(t *testing.T) {
		p := validPattern()
		p.Category = "devops"
		assert.ErrorIs(t, p.Validate(), ErrInvalidCategory)
	})

	t.Run("tags are optional", func(t *testing.T) {
		p := validPattern()
		p.Tags = nil
		assert.NoError(t, p.Validate())
	})
}

func TestPatternSnippet(t *testing.T) {
	t.Run("short body returned whole", func(t *testing.T) {
		p := validPattern()
		p.Body = "short body"
		assert.Equal(t, "short body", p.Snippet(200))
	})

	t.Run("long body truncates at word boundary", func(t *testing.T) {
		p := validPattern()
		p.Body = "alpha beta gamma delta epsilon"
		got := p.Snippet(13)
		assert.Equal(t, "alpha beta...", got)
	})

	t.Run("newlines collapse to spaces", func(t *testing.T) {
		p := validPattern()
		p.Body = "line one\nline two\n"
		assert.Equal(t, "line one line two", p.Snippet(200))
	})

	t.Run("non-positive max returns full body", func(t *testing.T) {
		p := validPattern()
		assert.Equal(t, p.Body, p.Snippet(0))
	})
}
