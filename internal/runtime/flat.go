package runtime

import (
	"github.com/aretw0/cubewalk/pkg/domain"
	"github.com/aretw0/cubewalk/pkg/ports"
)

// FlatResolver treats the occupied footprint of the net as a torus: leaving a
// face continues in the same direction, skipping holes and wrapping around
// the face matrix, until it lands on a present face.
type FlatResolver struct {
	net ports.Occupancy
}

func NewFlatResolver(net ports.Occupancy) *FlatResolver {
	return &FlatResolver{net: net}
}

func (r *FlatResolver) Mode() domain.Mode { return domain.ModeFlat }

func (r *FlatResolver) Resolve(e domain.Edge) (domain.Edge, bool) {
	if !r.net.Present(e.Face) {
		return domain.Edge{}, false
	}
	next := e.Face
	for {
		next = next.Step(e.Side).Wrap(r.net.Width(), r.net.Height())
		if r.net.Present(next) {
			return domain.Edge{Face: next, Side: e.Side.Opposite()}, true
		}
	}
}
