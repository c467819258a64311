package runtime_test

import (
	"math/rand"
	"testing"

	"github.com/aretw0/cubewalk/internal/runtime"
	"github.com/aretw0/cubewalk/pkg/domain"
	"github.com/aretw0/cubewalk/pkg/dsl"
	"github.com/aretw0/cubewalk/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgent_StartsAtOrigin(t *testing.T) {
	g := mustGrid(t, dsl.Sample())
	a := runtime.NewAgent(g, runtime.NewFlatResolver(g))

	assert.Equal(t, domain.Pose{Face: domain.Position{X: 2, Y: 0}, Facing: domain.Right}, a.Pose())
}

func TestAgent_WallBlocking(t *testing.T) {
	// Wall three tiles ahead on a single 6×6 face.
	g := mustGrid(t, dsl.New(6).Layout("#").Wall(domain.Position{}, 3, 0))
	a := runtime.NewAgent(g, runtime.NewFlatResolver(g))
	e := runtime.NewEngine()

	tally, err := e.Run(t.Context(), a, []domain.Instruction{{Distance: 5}})
	require.NoError(t, err)

	assert.Equal(t, domain.Pose{Offset: domain.Position{X: 2, Y: 0}, Facing: domain.Right}, a.Pose())
	assert.Equal(t, 2, tally.Steps)
	assert.Equal(t, 1, tally.Blocked)

	// Further attempts stay put.
	out := a.Step()
	assert.True(t, out.Blocked)
	assert.Equal(t, domain.Position{X: 3, Y: 0}, out.To.Offset)
	assert.Equal(t, domain.Position{X: 2, Y: 0}, a.Pose().Offset)
}

func TestAgent_WallAcrossSeam(t *testing.T) {
	// The flat torus of one face brings the agent back to x=0, which is a wall.
	g := mustGrid(t, dsl.New(3).Layout("#").Wall(domain.Position{}, 0, 1))
	a := runtime.NewAgent(g, runtime.NewFlatResolver(g))
	require.NoError(t, a.Place(domain.Pose{Offset: domain.Position{X: 2, Y: 1}, Facing: domain.Right}))

	out := a.Step()
	assert.True(t, out.Blocked)
	require.NotNil(t, out.Seam)
	assert.Equal(t, domain.Position{X: 2, Y: 1}, a.Pose().Offset)
}

func TestAgent_CubeCrossings(t *testing.T) {
	g := mustGrid(t, dsl.Sample())
	r, err := runtime.NewCubeResolver(g)
	require.NoError(t, err)
	a := runtime.NewAgent(g, r)

	tests := []struct {
		name string
		from domain.Pose
		want domain.Pose
	}{
		{
			name: "Right Edge Turns Down",
			from: domain.Pose{Face: domain.Position{X: 2, Y: 1}, Offset: domain.Position{X: 3, Y: 1}, Facing: domain.Right},
			want: domain.Pose{Face: domain.Position{X: 3, Y: 2}, Offset: domain.Position{X: 2, Y: 0}, Facing: domain.Down},
		},
		{
			name: "Bottom Edge Turns Up",
			from: domain.Pose{Face: domain.Position{X: 2, Y: 2}, Offset: domain.Position{X: 2, Y: 3}, Facing: domain.Down},
			want: domain.Pose{Face: domain.Position{X: 0, Y: 1}, Offset: domain.Position{X: 1, Y: 3}, Facing: domain.Up},
		},
		{
			name: "Straight Seam Keeps Frame",
			from: domain.Pose{Face: domain.Position{X: 0, Y: 1}, Offset: domain.Position{X: 3, Y: 2}, Facing: domain.Right},
			want: domain.Pose{Face: domain.Position{X: 1, Y: 1}, Offset: domain.Position{X: 0, Y: 2}, Facing: domain.Right},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, a.Place(tt.from))
			next, seam := a.Next()
			require.NotNil(t, seam)
			assert.Equal(t, tt.want, next)

			// Walking back across the seam returns to the start.
			back := next
			back.Facing = back.Facing.Opposite()
			require.NoError(t, a.Place(back))
			returned, _ := a.Next()
			assert.Equal(t, tt.from.Face, returned.Face)
			assert.Equal(t, tt.from.Offset, returned.Offset)
			assert.Equal(t, tt.from.Facing.Opposite(), returned.Facing)
		})
	}
}

func TestAgent_PlaceRejectsHoles(t *testing.T) {
	g := mustGrid(t, dsl.Sample())
	a := runtime.NewAgent(g, runtime.NewFlatResolver(g))

	assert.Error(t, a.Place(domain.Pose{Face: domain.Position{X: 0, Y: 0}}))
	assert.Error(t, a.Place(domain.Pose{Face: g.Origin(), Offset: domain.Position{X: 4, Y: 0}}))
}

func TestAgent_Containment(t *testing.T) {
	rng := rand.New(rand.NewSource(22))

	for _, shape := range dsl.CubeNets {
		g := mustGrid(t, dsl.New(3).Layout(shape.Layout...).Wall(domain.Position{X: 1, Y: 1}, 1, 1))
		cube, err := runtime.NewCubeResolver(g)
		require.NoError(t, err)

		for _, r := range []ports.EdgeResolver{runtime.NewFlatResolver(g), cube} {
			t.Run(shape.Name+" "+string(r.Mode()), func(t *testing.T) {
				a := runtime.NewAgent(g, r)
				for i := 0; i < 500; i++ {
					switch rng.Intn(4) {
					case 0:
						a.Turn(domain.TurnLeft)
					case 1:
						a.Turn(domain.TurnRight)
					default:
						a.Step()
					}
					p := a.Pose()
					require.True(t, g.Present(p.Face), "step %d left the net: %s", i, p)
					require.True(t, p.Offset.InBounds(g.Size()), "step %d left the face: %s", i, p)
					require.NotEqual(t, domain.Wall, g.Tile(p.Face, p.Offset))
				}
			})
		}
	}
}

func TestAgent_CubeLoopsCloseAfterFourFaces(t *testing.T) {
	const size = 3

	for _, shape := range dsl.CubeNets {
		t.Run(shape.Name, func(t *testing.T) {
			g := mustGrid(t, dsl.New(size).Layout(shape.Layout...))
			r, err := runtime.NewCubeResolver(g)
			require.NoError(t, err)
			a := runtime.NewAgent(g, r)

			for _, face := range g.Faces() {
				for y := 0; y < size; y++ {
					for x := 0; x < size; x++ {
						for _, facing := range domain.Directions {
							start := domain.Pose{Face: face, Offset: domain.Position{X: x, Y: y}, Facing: facing}
							require.NoError(t, a.Place(start))

							seen := make(map[domain.Pose]bool, 4*size)
							for i := 0; i < 4*size; i++ {
								seen[a.Pose()] = true
								out := a.Step()
								require.False(t, out.Blocked)
							}
							assert.Equal(t, start, a.Pose(), "loop from %s", start)
							assert.Len(t, seen, 4*size, "loop from %s", start)
						}
					}
				}
			}
		})
	}
}
