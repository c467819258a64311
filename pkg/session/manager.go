package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/cubewalk/internal/logging"
	"github.com/aretw0/cubewalk/pkg/domain"
	"github.com/aretw0/cubewalk/pkg/ports"
)

// DefaultLockTTL bounds how long a crashed holder can block other replicas.
const DefaultLockTTL = 30 * time.Second

// lockEntry holds the lock and the reference count.
type lockEntry struct {
	sem  chan struct{}
	refs int
}

// SolveFunc computes a result that was not found in the store.
type SolveFunc func(ctx context.Context) (*domain.Result, error)

// Manager orchestrates access to stored results, ensuring safe concurrent operations.
// It uses Reference Counting to garbage collect unused locks.
type Manager struct {
	store ports.ResultStore

	mu    sync.Mutex            // Global lock for the map
	locks map[string]*lockEntry // Map of active locks

	locker  ports.DistributedLocker // Optional distributed locker
	lockTTL time.Duration
	logger  *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithLocker enables distributed locking.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(m *Manager) {
		m.locker = locker
	}
}

// WithLockTTL overrides DefaultLockTTL.
func WithLockTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		m.lockTTL = ttl
	}
}

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager creates a new Manager over the given result store.
func NewManager(store ports.ResultStore, opts ...Option) *Manager {
	m := &Manager{
		store:   store,
		locks:   make(map[string]*lockEntry),
		lockTTL: DefaultLockTTL,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller must call release(key) once done with the entry.
func (m *Manager) acquire(key string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[key]
	if !exists {
		entry = &lockEntry{sem: make(chan struct{}, 1)}
		m.locks[key] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry if it reaches zero.
func (m *Manager) release(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[key]
	if !exists {
		return
	}
	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, key)
	}
}

// Held returns the number of keys with a pending or running lock.
func (m *Manager) Held() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.locks)
}

// WithLock executes fn while holding the lock for key. Waiting stops when ctx is done.
func (m *Manager) WithLock(ctx context.Context, key string, fn func(context.Context) error) error {
	entry := m.acquire(key)
	defer m.release(key)

	select {
	case entry.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-entry.sem }()

	if m.locker != nil {
		unlock, err := m.locker.Lock(ctx, key, m.lockTTL)
		if err != nil {
			return fmt.Errorf("failed to acquire distributed lock: %w", err)
		}
		defer func() {
			// Release even if ctx was cancelled mid-solve.
			if err := unlock(context.WithoutCancel(ctx)); err != nil {
				m.logger.Warn("Failed to release distributed lock (will expire via TTL)",
					"digest", key,
					"error", err,
				)
			}
		}()
	}

	return fn(ctx)
}

// LoadOrSolve returns the stored result for digest, or runs solve and stores
// its result. Concurrent calls for one digest run solve at most once as long
// as the store works. The bool reports a cache hit.
func (m *Manager) LoadOrSolve(ctx context.Context, digest string, solve SolveFunc) (*domain.Result, bool, error) {
	var (
		result *domain.Result
		cached bool
	)
	err := m.WithLock(ctx, digest, func(ctx context.Context) error {
		stored, err := m.store.Load(ctx, digest)
		switch {
		case err == nil:
			result, cached = stored, true
			return nil
		case !errors.Is(err, domain.ErrResultNotFound):
			m.logger.Warn("Result cache unavailable", "digest", digest, "error", err)
		}

		result, err = solve(ctx)
		if err != nil {
			return err
		}
		if err := m.store.Save(ctx, digest, result); err != nil {
			m.logger.Warn("Failed to cache result", "digest", digest, "error", err)
		}
		return nil
	})
	return result, cached, err
}

// Delete removes a stored result.
func (m *Manager) Delete(ctx context.Context, digest string) error {
	return m.WithLock(ctx, digest, func(ctx context.Context) error {
		return m.store.Delete(ctx, digest)
	})
}

// List delegates to the store.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	return m.store.List(ctx)
}

// Store returns the underlying result store.
func (m *Manager) Store() ports.ResultStore {
	return m.store
}
