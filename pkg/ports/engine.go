package ports

import (
	"context"

	"github.com/aretw0/cubewalk/pkg/domain"
)

// Solver is the interface used by adapters (HTTP, MCP) to walk puzzles.
type Solver interface {
	// Solve walks the puzzle's instructions over the net folded in mode.
	Solve(ctx context.Context, puzzle *domain.Puzzle, mode domain.Mode) (*domain.Result, error)

	// Seams returns the resolved edge map of the puzzle's net in mode.
	Seams(ctx context.Context, puzzle *domain.Puzzle, mode domain.Mode) ([]domain.Seam, error)
}
