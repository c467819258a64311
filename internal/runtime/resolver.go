package runtime

import (
	"github.com/aretw0/cubewalk/pkg/domain"
	"github.com/aretw0/cubewalk/pkg/ports"
	"github.com/aretw0/cubewalk/pkg/registry"
)

// Seams enumerates the full edge map, faces in row-major order and sides in
// facing-code order.
func Seams(net ports.Occupancy, r ports.EdgeResolver) []domain.Seam {
	faces := net.Faces()
	out := make([]domain.Seam, 0, len(faces)*len(domain.Directions))
	for _, f := range faces {
		for _, d := range domain.Directions {
			from := domain.Edge{Face: f, Side: d}
			to, ok := r.Resolve(from)
			if !ok {
				continue
			}
			out = append(out, domain.Seam{From: from, To: to})
		}
	}
	return out
}

// RegisterResolvers adds the flat and cube modes to reg.
func RegisterResolvers(reg *registry.Registry, opts ...ResolverOption) {
	reg.Register(domain.ModeFlat, func(net ports.Occupancy) (ports.EdgeResolver, error) {
		return NewFlatResolver(net), nil
	})
	reg.Register(domain.ModeCube, func(net ports.Occupancy) (ports.EdgeResolver, error) {
		return NewCubeResolver(net, opts...)
	})
}

// DefaultRegistry returns a registry holding the built-in modes.
func DefaultRegistry(opts ...ResolverOption) *registry.Registry {
	reg := registry.NewRegistry()
	RegisterResolvers(reg, opts...)
	return reg
}
