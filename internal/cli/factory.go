package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/cubewalk"
	"github.com/aretw0/cubewalk/internal/config"
	"github.com/aretw0/cubewalk/internal/logging"
	"github.com/aretw0/cubewalk/pkg/adapters/file"
	"github.com/aretw0/cubewalk/pkg/adapters/memory"
	"github.com/aretw0/cubewalk/pkg/adapters/redis"
	"github.com/aretw0/cubewalk/pkg/ports"
	"github.com/aretw0/cubewalk/pkg/runner"
)

// NewLogger configures the application logger. Logs always go to w (stderr
// in the CLI) so stdout stays clean for reports and traces.
func NewLogger(cfg config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.NewWithWriter(w, level, logging.Format(cfg.LogFormat)), nil
}

// Cache is an opened result store. Store is nil when caching is off.
type Cache struct {
	Store  ports.ResultStore
	Locker ports.DistributedLocker
	closer func() error
}

// Close releases the store's connections.
func (c *Cache) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer()
}

// SolverOptions wires the cache into a solver.
func (c *Cache) SolverOptions() []cubewalk.Option {
	if c.Store == nil {
		return nil
	}
	opts := []cubewalk.Option{cubewalk.WithStore(c.Store)}
	if c.Locker != nil {
		opts = append(opts, cubewalk.WithLocker(c.Locker))
	}
	return opts
}

// OpenCache opens the configured result store. Redis stores also lock
// across processes, so replicas sharing one server walk each puzzle once.
func OpenCache(cfg config.StoreConfig) (*Cache, error) {
	switch cfg.Kind {
	case "", "none":
		return &Cache{}, nil
	case "memory":
		return &Cache{Store: memory.NewStore()}, nil
	case "file":
		return &Cache{Store: file.New(cfg.Path)}, nil
	case "redis":
		opts := []redis.Option{redis.WithTTL(cfg.Redis.TTL)}
		if cfg.Redis.Prefix != "" {
			opts = append(opts, redis.WithPrefix(cfg.Redis.Prefix))
		}
		store := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, opts...)
		return &Cache{Store: store, Locker: store.Locker(), closer: store.Close}, nil
	}
	return nil, fmt.Errorf("unknown store kind %q", cfg.Kind)
}

// NewTrace picks the trace handler for kind. An empty kind disables tracing
// and returns nil.
func NewTrace(kind string, w io.Writer, verbose bool) (runner.TraceHandler, error) {
	switch kind {
	case "":
		return nil, nil
	case "text":
		return runner.NewTextHandler(w, runner.WithVerbose(verbose)), nil
	case "json":
		return runner.NewJSONHandler(w), nil
	}
	return nil, fmt.Errorf("unknown trace format %q", kind)
}
