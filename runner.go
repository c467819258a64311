package cubewalk

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/cubewalk/pkg/domain"
)

// Runner reads a puzzle from Input, solves it in every requested mode and
// prints a short report per mode. It keeps I/O out of the Solver so the CLI
// and tests can drive it with plain readers and writers.
type Runner struct {
	Input    io.Reader
	Output   io.Writer
	Headless bool
	Renderer ContentRenderer

	// FaceSize overrides face size detection when positive.
	FaceSize int
	Modes    []domain.Mode
}

// ContentRenderer transforms the markdown report before it is written.
// This allows TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)

// NewRunner creates a Runner that solves both built-in modes.
func NewRunner() *Runner {
	return &Runner{
		Modes: []domain.Mode{domain.ModeFlat, domain.ModeCube},
	}
}

// Run parses Input once and reports each mode in order.
func (r *Runner) Run(ctx context.Context, solver *Solver) ([]*domain.Result, error) {
	if r.Input == nil {
		return nil, fmt.Errorf("input reader must be set (use os.Stdin)")
	}
	if r.Output == nil {
		return nil, fmt.Errorf("output writer must be set (use os.Stdout)")
	}

	data, err := io.ReadAll(r.Input)
	if err != nil {
		return nil, fmt.Errorf("failed to read puzzle: %w", err)
	}
	puzzle, err := Parse(data, r.FaceSize)
	if err != nil {
		return nil, err
	}

	if !r.Headless {
		fmt.Fprintf(r.Output, "--- cubewalk %s ---\n", strings.TrimSpace(Version))
	}

	results := make([]*domain.Result, 0, len(r.Modes))
	for _, mode := range r.Modes {
		res, err := solver.Solve(ctx, puzzle, mode)
		if err != nil {
			return results, err
		}
		results = append(results, res)

		report := Report(res)
		if r.Renderer != nil {
			if rendered, err := r.Renderer(report); err == nil {
				report = rendered
			}
		}
		fmt.Fprintln(r.Output, strings.TrimSpace(report))
	}
	return results, nil
}

// Report formats a result as a small markdown section.
func Report(res *domain.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", res.Mode)
	fmt.Fprintf(&b, "- **password**: %d\n", res.Password)
	fmt.Fprintf(&b, "- final pose: %s\n", res.Final)
	fmt.Fprintf(&b, "- steps: %d, blocked runs: %d, seams crossed: %d\n", res.Steps, res.Blocked, res.Crossed)
	return b.String()
}
