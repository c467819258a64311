package cubewalk

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/aretw0/cubewalk/internal/compiler"
	"github.com/aretw0/cubewalk/internal/runtime"
	"github.com/aretw0/cubewalk/pkg/domain"
	"github.com/aretw0/cubewalk/pkg/ports"
	"github.com/aretw0/cubewalk/pkg/registry"
	"github.com/aretw0/cubewalk/pkg/session"
)

// Solver is the high-level entry point for the cubewalk library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Solver struct {
	registry *registry.Registry
	store    ports.ResultStore
	locker   ports.DistributedLocker
	sessions *session.Manager
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
}

var _ ports.Solver = (*Solver)(nil)

var errPuzzleRequired = errors.New("puzzle is required")

// Option defines a functional option for configuring the Solver.
type Option func(*Solver)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Solver) {
		s.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the solver.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Solver) {
		s.logger = logger
	}
}

// WithStore caches results. Hooks do not fire for cached results.
func WithStore(store ports.ResultStore) Option {
	return func(s *Solver) {
		s.store = store
	}
}

// WithLocker shares the cache across replicas: only one of them walks a
// puzzle that is not cached yet. It has no effect without WithStore.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(s *Solver) {
		s.locker = locker
	}
}

// WithRegistry replaces the built-in flat and cube modes.
func WithRegistry(reg *registry.Registry) Option {
	return func(s *Solver) {
		s.registry = reg
	}
}

// New initializes a new Solver.
func New(opts ...Option) *Solver {
	s := &Solver{}
	for _, opt := range opts {
		opt(s)
	}

	// Ensure logger is initialized (so we don't pass nil to runtime, which would overwrite its default)
	if s.logger == nil {
		s.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if s.registry == nil {
		s.registry = runtime.DefaultRegistry(runtime.WithResolverLogger(s.logger))
	}
	if s.store != nil {
		opts := []session.Option{session.WithLogger(s.logger)}
		if s.locker != nil {
			opts = append(opts, session.WithLocker(s.locker))
		}
		s.sessions = session.NewManager(s.store, opts...)
	}
	return s
}

// Parse reads puzzle text: the net, a blank line, then the path. A faceSize
// of zero infers the size from the tile count.
func Parse(data []byte, faceSize int) (*domain.Puzzle, error) {
	var opts []compiler.ParserOption
	if faceSize > 0 {
		opts = append(opts, compiler.WithFaceSize(faceSize))
	}
	return compiler.NewParser(opts...).Parse(data)
}

// Modes lists the modes the solver can fold nets in.
func (s *Solver) Modes() []domain.Mode {
	return s.registry.Modes()
}

// Solve walks the puzzle's instructions over the net folded in mode.
func (s *Solver) Solve(ctx context.Context, puzzle *domain.Puzzle, mode domain.Mode) (*domain.Result, error) {
	if puzzle == nil {
		return nil, errPuzzleRequired
	}
	digest := Digest(puzzle, mode)
	logger := s.logger.With("mode", string(mode), "digest", digest[:12])

	if s.sessions == nil {
		return s.walk(ctx, puzzle, mode, digest, logger)
	}

	result, cached, err := s.sessions.LoadOrSolve(ctx, digest, func(ctx context.Context) (*domain.Result, error) {
		return s.walk(ctx, puzzle, mode, digest, logger)
	})
	if cached {
		logger.Debug("Result cache hit")
	}
	return result, err
}

func (s *Solver) walk(ctx context.Context, puzzle *domain.Puzzle, mode domain.Mode, digest string, logger *slog.Logger) (*domain.Result, error) {
	grid, resolver, err := s.fold(puzzle, mode)
	if err != nil {
		return nil, err
	}

	agent := runtime.NewAgent(grid, resolver)
	engine := runtime.NewEngine(runtime.WithLifecycleHooks(s.hooks), runtime.WithLogger(logger))
	tally, err := engine.Run(ctx, agent, puzzle.Instructions)
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s net: %w", mode, err)
	}

	final := agent.Pose()
	result := &domain.Result{
		Mode:     mode,
		FaceSize: grid.Size(),
		Final:    final,
		Password: final.Password(grid.Size()),
		Steps:    tally.Steps,
		Blocked:  tally.Blocked,
		Crossed:  tally.Crossed,
		Visited:  tally.Visited,
		Digest:   digest,
	}
	logger.Info("Puzzle solved", "password", result.Password, "steps", result.Steps, "crossed", result.Crossed)
	return result, nil
}

// Seams returns the resolved edge map of the puzzle's net in mode.
func (s *Solver) Seams(ctx context.Context, puzzle *domain.Puzzle, mode domain.Mode) ([]domain.Seam, error) {
	grid, resolver, err := s.fold(puzzle, mode)
	if err != nil {
		return nil, err
	}
	return runtime.Seams(grid, resolver), nil
}

func (s *Solver) fold(puzzle *domain.Puzzle, mode domain.Mode) (*runtime.FaceGrid, ports.EdgeResolver, error) {
	if puzzle == nil {
		return nil, nil, errPuzzleRequired
	}
	grid, err := runtime.NewFaceGrid(puzzle.Rows, puzzle.FaceSize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read net: %w", err)
	}
	resolver, err := s.registry.Build(mode, grid)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fold net: %w", err)
	}
	return grid, resolver, nil
}

// Digest identifies a puzzle and mode. Equal digests always solve to equal results.
func Digest(puzzle *domain.Puzzle, mode domain.Mode) string {
	h := sha256.New()
	h.Write([]byte(mode))
	h.Write([]byte{0})
	h.Write([]byte(strconv.Itoa(puzzle.FaceSize)))
	h.Write([]byte{0})
	h.Write([]byte(strings.Join(puzzle.Rows, "\n")))
	h.Write([]byte{0})
	h.Write([]byte(compiler.FormatInstructions(puzzle.Instructions)))
	return hex.EncodeToString(h.Sum(nil))
}
