package tests

import (
	"testing"

	"github.com/aretw0/cubewalk/pkg/domain"
	"github.com/aretw0/cubewalk/pkg/ports"
)

// EdgeResolverContractTest is a reusable test suite that verifies if a resolver complies with ports.EdgeResolver.
func EdgeResolverContractTest(t *testing.T, net ports.Occupancy, resolver ports.EdgeResolver) {
	t.Helper()

	// 1. Every side of every present face resolves onto a present face
	t.Run("Total", func(t *testing.T) {
		for _, f := range net.Faces() {
			for _, d := range domain.Directions {
				to, ok := resolver.Resolve(domain.Edge{Face: f, Side: d})
				if !ok {
					t.Fatalf("edge %s:%s is unresolved", f, d)
				}
				if !net.Present(to.Face) {
					t.Errorf("edge %s:%s resolves into hole %s", f, d, to.Face)
				}
			}
		}
	})

	// 2. Resolving the destination leads back to the origin
	t.Run("RoundTrip", func(t *testing.T) {
		for _, f := range net.Faces() {
			for _, d := range domain.Directions {
				from := domain.Edge{Face: f, Side: d}
				to, _ := resolver.Resolve(from)
				back, ok := resolver.Resolve(to)
				if !ok || back != from {
					t.Errorf("round trip from %s went to %s and back to %s", from, to, back)
				}
			}
		}
	})

	// 3. Holes are not resolvable
	t.Run("Holes", func(t *testing.T) {
		for y := 0; y < net.Height(); y++ {
			for x := 0; x < net.Width(); x++ {
				p := domain.Position{X: x, Y: y}
				if net.Present(p) {
					continue
				}
				if _, ok := resolver.Resolve(domain.Edge{Face: p, Side: domain.Up}); ok {
					t.Errorf("hole %s resolved", p)
				}
			}
		}
	})

	if resolver.Mode() == "" {
		t.Error("resolver reports no mode")
	}
}
