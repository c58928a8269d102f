package therapy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Store exposes therapist retrieval for services and HTTP handlers.
type Store interface {
	List() []Therapist
	FindByID(id string) (Therapist, bool)
}

// MemoryStore implements Store with an in-memory slice seeded at startup.
type MemoryStore struct {
	items []Therapist
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied therapists.
func NewMemoryStore(items []Therapist) *MemoryStore {
	return &MemoryStore{items: append([]Therapist(nil), items...)}
}

// List returns the therapist directory.
func (s *MemoryStore) List() []Therapist {
	return append([]Therapist(nil), s.items...)
}

// FindByID looks up a therapist by identifier.
func (s *MemoryStore) FindByID(id string) (Therapist, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return Therapist{}, false
}

// LoadSeedFile reads a YAML therapist directory, letting deployments
// replace the built-in seed without a rebuild. An empty path returns the
// built-in seed.
func LoadSeedFile(path string) ([]Therapist, error) {
	if path == "" {
		return Seed(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read therapist seed file: %w", err)
	}
	var items []Therapist
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse therapist seed file: %w", err)
	}
	if len(items) == 0 {
		return Seed(), nil
	}
	return items, nil
}
