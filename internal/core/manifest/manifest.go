// Package manifest loads the starting inventory from a YAML file.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/stockroom/internal/stock"
)

// Manifest is the on-disk description of the starting inventory.
type Manifest struct {
	Items []ItemSpec `yaml:"items"`
}

// ItemSpec is a single inventory entry. Quality and days_to_sell are
// unconstrained ints: legendary items legitimately start out of range.
type ItemSpec struct {
	Name       string `yaml:"name"`
	DaysToSell int    `yaml:"days_to_sell"`
	Quality    int    `yaml:"quality"`
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}

	return &m, nil
}

// Validate checks for structural problems only. An empty item list is
// allowed; the simulation over it is simply a no-op.
func (m *Manifest) Validate() error {
	for i, it := range m.Items {
		if it.Name == "" {
			return fmt.Errorf("item %d: name is required", i)
		}
	}
	return nil
}

// Build converts the manifest entries into engine items, preserving order.
func (m *Manifest) Build() []*stock.Item {
	items := make([]*stock.Item, 0, len(m.Items))
	for _, it := range m.Items {
		items = append(items, stock.NewItem(it.Name, it.DaysToSell, it.Quality))
	}
	return items
}
