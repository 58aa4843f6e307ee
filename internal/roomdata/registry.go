package roomdata

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samdwyer/roomcarver/internal/generation"
)

// Registry holds parsed room templates and exposes them as generator
// inputs.
type Registry struct {
	defs      []RoomDef
	templates map[string]*generation.TemplateRoom
	order     []string
}

// NewRegistry parses every definition into a template. A malformed
// blueprint or non-positive weight is a configuration error.
func NewRegistry(defs []RoomDef) (*Registry, error) {
	r := &Registry{
		defs:      defs,
		templates: make(map[string]*generation.TemplateRoom),
	}
	for _, def := range defs {
		if def.Weight <= 0 {
			return nil, fmt.Errorf("room %q: weight %v is not positive", def.ID, def.Weight)
		}
		if _, dup := r.templates[def.ID]; dup {
			return nil, fmt.Errorf("room %q: duplicate id", def.ID)
		}
		tmpl, err := generation.ParseTemplate(strings.Join(def.Rows, "\n"), def.MaxHallway)
		if err != nil {
			return nil, fmt.Errorf("room %q: %w", def.ID, err)
		}
		r.templates[def.ID] = tmpl
		r.order = append(r.order, def.ID)
	}
	return r, nil
}

// LoadRegistry loads and parses the embedded rooms.json.
func LoadRegistry() (*Registry, error) {
	defs, err := LoadRooms()
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, errors.New("no rooms loaded from rooms.json")
	}
	return NewRegistry(defs)
}

// MustLoadRegistry loads the registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Gens returns a RoomGen per template, in definition order.
func (r *Registry) Gens() []generation.RoomGen {
	gens := make([]generation.RoomGen, 0, len(r.order))
	for _, id := range r.order {
		gens = append(gens, generation.Blueprint(r.templates[id]))
	}
	return gens
}

// Weights returns the spawn weight per template, parallel to Gens.
func (r *Registry) Weights() []float64 {
	weights := make([]float64, 0, len(r.defs))
	for _, def := range r.defs {
		weights = append(weights, def.Weight)
	}
	return weights
}

// GetByID returns the template with the given ID, or nil if not found.
func (r *Registry) GetByID(id string) *generation.TemplateRoom {
	return r.templates[id]
}

// Count returns the number of templates in the registry.
func (r *Registry) Count() int {
	return len(r.order)
}
