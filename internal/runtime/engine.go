package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/cubewalk/pkg/domain"
)

// ctxCheckInterval is how many steps of one run may pass between context checks.
const ctxCheckInterval = 1024

// Engine replays instructions against an agent.
type Engine struct {
	hooks  domain.LifecycleHooks
	logger *slog.Logger
	now    func() time.Time
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an engine. Without WithLogger it logs nowhere.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Tally counts what happened during a run.
type Tally struct {
	Steps   int
	Blocked int
	Crossed int

	// Visited lists faces in the order they were first entered.
	Visited []domain.Position
}

// Run executes instructions in order. A straight run stops at the first wall
// and the turn is still applied; hitting a wall is never an error. The
// context is checked between instructions and periodically within a run.
func (e *Engine) Run(ctx context.Context, agent *Agent, instructions []domain.Instruction) (Tally, error) {
	mode := agent.resolver.Mode()
	tally := Tally{Visited: []domain.Position{agent.Pose().Face}}
	seen := map[domain.Position]bool{agent.Pose().Face: true}

	for i, ins := range instructions {
		if err := ctx.Err(); err != nil {
			return tally, fmt.Errorf("interrupted at instruction %d: %w", i, err)
		}
		if ins.Distance < 0 {
			return tally, fmt.Errorf("instruction %d: %w: negative distance %d", i, domain.ErrInvalidInstruction, ins.Distance)
		}

		for n := 0; n < ins.Distance; n++ {
			if n > 0 && n%ctxCheckInterval == 0 {
				if err := ctx.Err(); err != nil {
					return tally, fmt.Errorf("interrupted at instruction %d: %w", i, err)
				}
			}
			out := agent.Step()
			if out.Blocked {
				tally.Blocked++
				e.logger.Debug("Run blocked", "instruction", i, "after", n, "pose", out.From.String())
				if e.hooks.OnBlocked != nil {
					e.hooks.OnBlocked(ctx, e.moveEvent(domain.EventBlocked, mode, out))
				}
				break
			}

			tally.Steps++
			if e.hooks.OnStep != nil {
				e.hooks.OnStep(ctx, e.moveEvent(domain.EventStep, mode, out))
			}
			if out.Seam == nil {
				continue
			}

			tally.Crossed++
			e.logger.Debug("Seam crossed", "from", out.Seam.From.String(), "to", out.Seam.To.String(), "rotation", out.Seam.Rotation().String())
			if e.hooks.OnCross != nil {
				e.hooks.OnCross(ctx, e.moveEvent(domain.EventCross, mode, out))
			}
			if face := out.To.Face; !seen[face] {
				seen[face] = true
				tally.Visited = append(tally.Visited, face)
			}
		}

		if ins.Turn != domain.TurnNone {
			agent.Turn(ins.Turn)
			if e.hooks.OnTurn != nil {
				e.hooks.OnTurn(ctx, &domain.TurnEvent{
					EventBase: domain.EventBase{Timestamp: e.now(), Type: domain.EventTurn, Mode: mode},
					Pose:      agent.Pose(),
					Turn:      ins.Turn,
				})
			}
		}
	}

	return tally, nil
}

func (e *Engine) moveEvent(t domain.EventType, mode domain.Mode, out StepOutcome) *domain.MoveEvent {
	return &domain.MoveEvent{
		EventBase: domain.EventBase{Timestamp: e.now(), Type: t, Mode: mode},
		From:      out.From,
		To:        out.To,
		Seam:      out.Seam,
	}
}
