package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest describes a directory dataset: which CSV file feeds each entity.
// Entities absent from the file map load as empty.
type Manifest struct {
	Version int               `yaml:"version"`
	Name    string            `yaml:"name"`
	Files   map[string]string `yaml:"files"`
}

// entityOrder lists the manifest keys in load order.
var entityOrder = []string{
	"brands",
	"categories",
	"stores",
	"customers",
	"products",
	"staffs",
	"stocks",
	"orders",
	"order_items",
}

// ReadManifest parses and validates a dataset manifest.
func ReadManifest(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if m.Version != 1 {
		return nil, fmt.Errorf("unsupported manifest version %d", m.Version)
	}
	for entity := range m.Files {
		if !knownEntity(entity) {
			return nil, fmt.Errorf("unknown entity %q in manifest", entity)
		}
	}
	return &m, nil
}

func knownEntity(name string) bool {
	for _, e := range entityOrder {
		if e == name {
			return true
		}
	}
	return false
}
