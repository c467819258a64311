package runtime

import (
	"fmt"

	"github.com/aretw0/cubewalk/pkg/domain"
	"github.com/aretw0/cubewalk/pkg/ports"
)

// StepOutcome describes one attempted step.
type StepOutcome struct {
	From domain.Pose
	To   domain.Pose

	// Blocked means To is a wall and the agent stayed at From.
	Blocked bool

	// Seam is set when the step left the face.
	Seam *domain.Seam
}

// Agent walks the surface described by a grid and a resolver.
type Agent struct {
	grid     *FaceGrid
	resolver ports.EdgeResolver
	pose     domain.Pose
}

// NewAgent places an agent at the top-left tile of the first face of the
// top row, facing right.
func NewAgent(grid *FaceGrid, resolver ports.EdgeResolver) *Agent {
	return &Agent{
		grid:     grid,
		resolver: resolver,
		pose:     domain.Pose{Face: grid.Origin(), Facing: domain.Right},
	}
}

// Pose returns the current pose.
func (a *Agent) Pose() domain.Pose { return a.pose }

// Place moves the agent to an arbitrary pose. The face must be present and
// the offset inside it.
func (a *Agent) Place(p domain.Pose) error {
	if !a.grid.Present(p.Face) || !p.Offset.InBounds(a.grid.Size()) {
		return fmt.Errorf("pose %s is off the net", p)
	}
	a.pose = p
	return nil
}

// Turn rotates the facing in place.
func (a *Agent) Turn(t domain.Turn) {
	a.pose.Facing = a.pose.Facing.Rotate(t)
}

// Next computes the pose one step ahead without looking at tiles.
func (a *Agent) Next() (domain.Pose, *domain.Seam) {
	p := a.pose
	size := a.grid.Size()

	offset := p.Offset.Step(p.Facing)
	if offset.InBounds(size) {
		return domain.Pose{Face: p.Face, Offset: offset, Facing: p.Facing}, nil
	}

	from := domain.Edge{Face: p.Face, Side: p.Facing}
	to, ok := a.resolver.Resolve(from)
	if !ok {
		// Resolvers are total over present faces.
		panic(fmt.Sprintf("no seam for edge %s", from))
	}

	facing := to.Side.Opposite()
	// Re-enter the same face from the far side, then turn the frame.
	entry := offset.MoveToEdge(p.Facing.Opposite(), size)
	next := domain.Pose{
		Face:   to.Face,
		Offset: entry.Rotate(p.Facing.TurnsTo(facing), size),
		Facing: facing,
	}
	return next, &domain.Seam{From: from, To: to}
}

// Step advances one tile unless a wall is in the way.
func (a *Agent) Step() StepOutcome {
	next, seam := a.Next()
	out := StepOutcome{From: a.pose, To: next, Seam: seam}
	if a.grid.Tile(next.Face, next.Offset) == domain.Wall {
		out.Blocked = true
		return out
	}
	a.pose = next
	return out
}
