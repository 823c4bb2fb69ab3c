// Package catalog holds the fixed set of inhabitants the application ships
// with and loads them into an empty store.
package catalog

import (
	_ "embed"
	"fmt"
	"tierra-media/models"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type file struct {
	Inhabitants []models.Inhabitant `yaml:"inhabitants"`
}

// Store writes a whole catalog at once. It must leave the store untouched
// when it is not empty or when any entry fails.
type Store interface {
	SeedInhabitants(entries []models.Inhabitant) (int, error)
}

// Default returns the embedded catalog.
func Default() ([]models.Inhabitant, error) {
	return Parse(defaultCatalog)
}

// Parse decodes a YAML catalog and checks every entry against the known
// races and professions.
func Parse(data []byte) ([]models.Inhabitant, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	for i, h := range f.Inhabitants {
		if h.Name == "" || h.Surname == "" || h.Location == "" {
			return nil, fmt.Errorf("catalog entry %d: name, surname and location are required", i)
		}
		if !models.IsRace(h.Race) {
			return nil, fmt.Errorf("catalog entry %d (%s): unknown race %q", i, h.Name, h.Race)
		}
		if !models.IsProfession(h.Profession) {
			return nil, fmt.Errorf("catalog entry %d (%s): unknown profession %q", i, h.Name, h.Profession)
		}
	}

	return f.Inhabitants, nil
}

// Seed loads entries into an empty store and returns how many rows were
// written. A populated store yields 0.
func Seed(store Store, entries []models.Inhabitant) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}
	return store.SeedInhabitants(entries)
}
