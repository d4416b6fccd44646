package catalog

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/m3rciful/teleshop/internal/logging"
)

//go:embed data/catalog.yaml
var embeddedCatalog []byte

// Load builds the provider from a YAML file, or from the embedded catalog
// when path is empty.
func Load(path string) (*Provider, error) {
	data := embeddedCatalog
	source := "embedded"
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("catalog: read %s: %w", path, err)
		}
		data = raw
		source = path
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", source, err)
	}

	p, err := New(doc)
	if err != nil {
		return nil, err
	}

	logging.Catalog.Info("catalog loaded",
		slog.String("event", "load"),
		slog.String("source", source),
		slog.Int("categories", len(p.categories)),
		slog.Int("count", p.Size()),
	)
	return p, nil
}
