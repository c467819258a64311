package ports

import (
	"context"

	"github.com/aretw0/cubewalk/pkg/domain"
)

// ResultStore caches solved puzzles by digest.
// Solving is deterministic, so a stored result never goes stale.
type ResultStore interface {
	// Save persists the result under digest.
	Save(ctx context.Context, digest string, result *domain.Result) error

	// Load retrieves a result.
	// Returns domain.ErrResultNotFound if the digest is unknown.
	Load(ctx context.Context, digest string) (*domain.Result, error)

	// Delete removes a result. Deleting an unknown digest is not an error.
	Delete(ctx context.Context, digest string) error

	// List returns every stored digest.
	List(ctx context.Context) ([]string, error)
}
