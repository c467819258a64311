package runtime_test

import (
	"testing"

	"github.com/aretw0/cubewalk/internal/runtime"
	"github.com/aretw0/cubewalk/pkg/domain"
	"github.com/aretw0/cubewalk/pkg/dsl"
	"github.com/aretw0/cubewalk/pkg/ports"
	contract "github.com/aretw0/cubewalk/pkg/ports/tests"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertRoundTrip checks that every resolved edge resolves back to its origin.
func assertRoundTrip(t *testing.T, g *runtime.FaceGrid, r ports.EdgeResolver) {
	t.Helper()
	for _, f := range g.Faces() {
		for _, d := range domain.Directions {
			from := domain.Edge{Face: f, Side: d}
			to, ok := r.Resolve(from)
			require.True(t, ok, "edge %s is unresolved", from)
			require.True(t, g.Present(to.Face), "edge %s resolves into a hole", from)

			back, ok := r.Resolve(to)
			require.True(t, ok)
			assert.Equal(t, from, back, "round trip from %s", from)
		}
	}
}

func TestFlatResolver_SingleFaceIsTorus(t *testing.T) {
	g := mustGrid(t, dsl.New(3).Layout("#"))
	r := runtime.NewFlatResolver(g)

	for _, d := range domain.Directions {
		to, ok := r.Resolve(domain.Edge{Face: g.Origin(), Side: d})
		require.True(t, ok)
		assert.Equal(t, domain.Edge{Face: g.Origin(), Side: d.Opposite()}, to)
	}
	assertRoundTrip(t, g, r)
}

func TestFlatResolver_SkipsHoles(t *testing.T) {
	g := mustGrid(t, dsl.Sample())
	r := runtime.NewFlatResolver(g)

	tests := []struct {
		name string
		from domain.Edge
		want domain.Edge
	}{
		{"Top Face Up Wraps To Bottom Row", domain.Edge{Face: domain.Position{X: 2, Y: 0}, Side: domain.Up}, domain.Edge{Face: domain.Position{X: 2, Y: 2}, Side: domain.Down}},
		{"Top Face Left Wraps To Itself", domain.Edge{Face: domain.Position{X: 2, Y: 0}, Side: domain.Left}, domain.Edge{Face: domain.Position{X: 2, Y: 0}, Side: domain.Right}},
		{"Neighbour", domain.Edge{Face: domain.Position{X: 0, Y: 1}, Side: domain.Right}, domain.Edge{Face: domain.Position{X: 1, Y: 1}, Side: domain.Left}},
		{"Column With Gap", domain.Edge{Face: domain.Position{X: 3, Y: 2}, Side: domain.Down}, domain.Edge{Face: domain.Position{X: 3, Y: 2}, Side: domain.Up}},
		{"Row Wrap", domain.Edge{Face: domain.Position{X: 3, Y: 2}, Side: domain.Right}, domain.Edge{Face: domain.Position{X: 2, Y: 2}, Side: domain.Left}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Resolve(tt.from)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	assertRoundTrip(t, g, r)

	_, ok := r.Resolve(domain.Edge{Face: domain.Position{X: 0, Y: 0}, Side: domain.Up})
	assert.False(t, ok, "holes have no edges")
}

func TestCubeResolver_AllNets(t *testing.T) {
	for _, shape := range dsl.CubeNets {
		t.Run(shape.Name, func(t *testing.T) {
			g := mustGrid(t, dsl.New(2).Layout(shape.Layout...))
			r, err := runtime.NewCubeResolver(g)
			require.NoError(t, err)

			s := r.Stitching()
			for _, class := range s.Edges.Classes() {
				assert.Len(t, class, 2, "edge class %v", class)
			}
			for _, class := range s.Corners.Classes() {
				assert.Len(t, class, 3, "corner class %v", class)
			}
			assert.Equal(t, 12, s.Edges.Count(), "a cube has 12 edges")
			assert.Equal(t, 8, s.Corners.Count(), "a cube has 8 vertices")
			assert.Equal(t, 5, s.Adjacent, "a net of six faces is a tree of five seams")
			assert.Equal(t, 7, s.Closed)

			assertRoundTrip(t, g, r)
			assert.Empty(t, s.Problems())
		})
	}
}

func TestCubeResolver_SampleSeams(t *testing.T) {
	g := mustGrid(t, dsl.Sample())
	r, err := runtime.NewCubeResolver(g)
	require.NoError(t, err)

	pos := func(x, y int) domain.Position { return domain.Position{X: x, Y: y} }
	want := []domain.Seam{
		{From: domain.Edge{Face: pos(2, 0), Side: domain.Right}, To: domain.Edge{Face: pos(3, 2), Side: domain.Right}},
		{From: domain.Edge{Face: pos(2, 0), Side: domain.Down}, To: domain.Edge{Face: pos(2, 1), Side: domain.Up}},
		{From: domain.Edge{Face: pos(2, 0), Side: domain.Left}, To: domain.Edge{Face: pos(1, 1), Side: domain.Up}},
		{From: domain.Edge{Face: pos(2, 0), Side: domain.Up}, To: domain.Edge{Face: pos(0, 1), Side: domain.Up}},
	}

	got := runtime.Seams(g, r)[:4]
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("seams of the top face mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, runtime.Seams(g, r), 24)
}

func TestCubeResolver_TopologyErrors(t *testing.T) {
	tests := []struct {
		name   string
		layout []string
	}{
		{"Five Faces", []string{"#...", "####"}},
		{"Seven Faces", []string{"#...", "####", "##.."}},
		{"Rectangle", []string{"###", "###"}},
		{"Disconnected", []string{"##.##", "....#", "....#"}},
		{"Ring Around A Hole", []string{"###", "#.#", ".#."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGrid(t, dsl.New(1).Layout(tt.layout...))
			_, err := runtime.NewCubeResolver(g)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrTopology)

			var te *domain.TopologyError
			require.ErrorAs(t, err, &te)
		})
	}
}

func TestStitch_DuplicateFaces(t *testing.T) {
	g := mustGrid(t, dsl.New(1).Layout(dsl.CubeNets[0].Layout...))
	faces := append(g.Faces(), g.Faces()[2])

	s := runtime.Stitch(faces)
	assert.Equal(t, []domain.Position{g.Faces()[2]}, s.Duplicates)
	assert.Equal(t, 5, s.Adjacent)
	assert.Equal(t, 12, s.Edges.Count())

	problems := s.Problems()
	require.Len(t, problems, 1)
	require.NotNil(t, problems[0].Face)
	assert.Equal(t, g.Faces()[2], *problems[0].Face)
	assert.Equal(t, 6, problems[0].Faces)
	assert.ErrorIs(t, problems[0], domain.ErrTopology)
}

func TestDefaultRegistry(t *testing.T) {
	g := mustGrid(t, dsl.Sample())
	reg := runtime.DefaultRegistry()

	assert.Equal(t, []domain.Mode{domain.ModeCube, domain.ModeFlat}, reg.Modes())

	for _, mode := range reg.Modes() {
		t.Run(string(mode), func(t *testing.T) {
			r, err := reg.Build(mode, g)
			require.NoError(t, err)
			assert.Equal(t, mode, r.Mode())
			contract.EdgeResolverContractTest(t, g, r)
		})
	}

	_, err := reg.Build("sphere", g)
	assert.ErrorIs(t, err, domain.ErrUnknownMode)
}
