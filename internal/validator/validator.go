package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/cubewalk/internal/runtime"
	"github.com/aretw0/cubewalk/pkg/domain"
)

// Severity ranks an issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one problem found in a net.
type Issue struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Report collects every issue in a net instead of stopping at the first.
type Report struct {
	Faces    int     `json:"faces"`
	FaceSize int     `json:"face_size"`
	Issues   []Issue `json:"issues"`
}

func (r *Report) add(s Severity, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{Severity: s, Message: fmt.Sprintf(format, args...)})
}

// Errors returns the error-level issues.
func (r Report) Errors() []Issue {
	var out []Issue
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			out = append(out, i)
		}
	}
	return out
}

// Err summarizes error-level issues, or returns nil for a foldable net.
func (r Report) Err() error {
	errs := r.Errors()
	if len(errs) == 0 {
		return nil
	}
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Message
	}
	return fmt.Errorf("%w: found %d errors:\n- %s", domain.ErrTopology, len(errs), strings.Join(msgs, "\n- "))
}

// ValidatePuzzle reads the puzzle's net and validates it.
func ValidatePuzzle(p *domain.Puzzle) Report {
	grid, err := runtime.NewFaceGrid(p.Rows, p.FaceSize)
	if err != nil {
		r := Report{FaceSize: p.FaceSize}
		r.add(SeverityError, "%v", err)
		return r
	}
	return ValidateNet(grid)
}

// ValidateNet checks that the net is connected and folds into a cube.
func ValidateNet(grid *runtime.FaceGrid) Report {
	faces := grid.Faces()
	r := Report{Faces: len(faces), FaceSize: grid.Size()}

	if origin := grid.Origin(); grid.Tile(origin, domain.Position{}) == domain.Wall {
		r.add(SeverityWarning, "start tile %s is a wall", origin)
	}

	for _, f := range unreachable(grid, faces) {
		r.add(SeverityError, "face %s is not connected to face %s", f, grid.Origin())
	}

	for _, p := range runtime.Stitch(faces).Problems() {
		r.add(SeverityError, "%v", p)
	}
	return r
}

// unreachable crawls side-adjacent faces from the origin.
func unreachable(grid *runtime.FaceGrid, faces []domain.Position) []domain.Position {
	visited := map[domain.Position]bool{}
	queue := []domain.Position{grid.Origin()}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if visited[current] {
			continue
		}
		visited[current] = true

		for _, d := range domain.Directions {
			next := current.Step(d)
			if grid.Present(next) && !visited[next] {
				queue = append(queue, next)
			}
		}
	}

	var out []domain.Position
	for _, f := range faces {
		if !visited[f] {
			out = append(out, f)
		}
	}
	return out
}
