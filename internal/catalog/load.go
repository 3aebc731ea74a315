package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// file is the on-disk catalog shape. Schema changes must stay additive:
// new optional fields, never renames or forks of the whole file.
type file struct {
	Version int               `yaml:"version"`
	Quests  []QuestDefinition `yaml:"quests"`
}

// LoadFile reads and validates a catalog YAML file.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(raw)
}

// Parse decodes and validates catalog YAML.
func Parse(raw []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if f.Version < 1 {
		return nil, fmt.Errorf("catalog version %d: must be >= 1", f.Version)
	}
	c, err := New(f.Version, f.Quests)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return c, nil
}
