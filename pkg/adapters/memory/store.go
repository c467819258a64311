package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/aretw0/cubewalk/pkg/domain"
)

// Store implements ports.ResultStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Result
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Result),
	}
}

func clone(r *domain.Result) *domain.Result {
	c := *r
	c.Visited = slices.Clone(r.Visited)
	return &c
}

// Save keeps a copy of the result.
func (s *Store) Save(ctx context.Context, digest string, result *domain.Result) error {
	c := clone(result)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[digest] = c
	return nil
}

// Load returns a copy so callers can't mutate the cached result.
func (s *Store) Load(ctx context.Context, digest string) (*domain.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result, ok := s.data[digest]
	if !ok {
		return nil, domain.ErrResultNotFound
	}
	return clone(result), nil
}

// Delete removes the result.
func (s *Store) Delete(ctx context.Context, digest string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, digest)
	return nil
}

// List returns the stored digests.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	digests := make([]string, 0, len(s.data))
	for d := range s.data {
		digests = append(digests, d)
	}
	slices.Sort(digests)
	return digests, nil
}
