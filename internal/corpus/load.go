package corpus

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dshills/fieldguide-mcp/pkg/types"
)

//go:embed data/patterns.yaml
var datasetYAML []byte

// dataset mirrors the on-disk YAML layout.
type dataset struct {
	Version  string          `yaml:"version"`
	Source   string          `yaml:"source"`
	Patterns []types.Pattern `yaml:"patterns"`
}

// Load parses and validates the bundled dataset. Called exactly once at
// startup; any failure here is fatal and the process must not serve.
func Load() (*Store, error) {
	return Parse(datasetYAML)
}

// Parse builds a Store from raw dataset bytes. Exposed for tests that need
// corpora other than the bundled one.
func Parse(data []byte) (*Store, error) {
	var ds dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("%w: malformed dataset: %v", types.ErrDataIntegrity, err)
	}

	if ds.Version == "" {
		return nil, fmt.Errorf("%w: dataset version missing", types.ErrDataIntegrity)
	}
	if len(ds.Patterns) == 0 {
		return nil, fmt.Errorf("%w: dataset contains no patterns", types.ErrDataIntegrity)
	}

	store := &Store{
		patterns: ds.Patterns,
		version:  ds.Version,
		source:   ds.Source,
	}
	if err := store.index(); err != nil {
		return nil, err
	}

	return store, nil
}
