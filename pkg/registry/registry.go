package registry

import (
	"fmt"
	"slices"
	"sync"

	"github.com/aretw0/cubewalk/pkg/domain"
	"github.com/aretw0/cubewalk/pkg/ports"
)

// Factory builds an edge resolver for a net.
type Factory func(net ports.Occupancy) (ports.EdgeResolver, error)

// Registry manages the available resolution modes.
type Registry struct {
	mu        sync.RWMutex
	factories map[domain.Mode]Factory
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[domain.Mode]Factory),
	}
}

// Register adds a mode to the registry.
// If the mode already exists, it is overwritten.
func (r *Registry) Register(mode domain.Mode, fn Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[mode] = fn
}

// Build looks up a mode and builds its resolver for net.
// Returns domain.ErrUnknownMode if the mode is not registered.
func (r *Registry) Build(mode domain.Mode, net ports.Occupancy) (ports.EdgeResolver, error) {
	r.mu.RLock()
	fn, ok := r.factories[mode]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownMode, mode)
	}

	return fn(net)
}

// Modes lists the registered modes in lexical order.
func (r *Registry) Modes() []domain.Mode {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Mode, 0, len(r.factories))
	for m := range r.factories {
		out = append(out, m)
	}
	slices.Sort(out)
	return out
}
