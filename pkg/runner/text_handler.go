package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/aretw0/cubewalk/pkg/domain"
)

// TextHandler writes a readable line per event.
// Plain steps are only written when Verbose is set.
type TextHandler struct {
	Writer  io.Writer
	Verbose bool

	mu  sync.Mutex
	err error
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithVerbose writes every step, not just crossings, walls and turns.
func WithVerbose(v bool) TextHandlerOption {
	return func(h *TextHandler) {
		h.Verbose = v
	}
}

// NewTextHandler creates a handler for text output.
func NewTextHandler(w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{Writer: w}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) printf(format string, args ...any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.err != nil {
		return
	}
	_, h.err = fmt.Fprintf(h.Writer, format, args...)
}

// Hooks implements TraceHandler.
func (h *TextHandler) Hooks() domain.LifecycleHooks {
	hooks := domain.LifecycleHooks{
		OnCross: func(_ context.Context, e *domain.MoveEvent) {
			h.printf("[%s] cross %s -> %s (%s°) now %s\n", e.Mode, e.Seam.From, e.Seam.To, e.Seam.Rotation(), e.To)
		},
		OnBlocked: func(_ context.Context, e *domain.MoveEvent) {
			h.printf("[%s] wall  at %s, staying at %s\n", e.Mode, e.To.Offset, e.From)
		},
		OnTurn: func(_ context.Context, e *domain.TurnEvent) {
			h.printf("[%s] turn  %s, now facing %s\n", e.Mode, e.Turn, e.Pose.Facing)
		},
	}
	if h.Verbose {
		hooks.OnStep = func(_ context.Context, e *domain.MoveEvent) {
			h.printf("[%s] step  %s\n", e.Mode, e.To)
		}
	}
	return hooks
}

// Err implements TraceHandler.
func (h *TextHandler) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}
