package runner

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"

	"github.com/aretw0/cubewalk/pkg/domain"
)

// JSONHandler writes one JSON object per event (JSON Lines).
type JSONHandler struct {
	Encoder *json.Encoder

	mu  sync.Mutex
	err error
}

// NewJSONHandler creates a handler for JSON output.
func NewJSONHandler(w io.Writer) *JSONHandler {
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{Encoder: json.NewEncoder(w)}
}

func (h *JSONHandler) emit(event any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.err != nil {
		return
	}
	h.err = h.Encoder.Encode(event)
}

// Hooks implements TraceHandler.
func (h *JSONHandler) Hooks() domain.LifecycleHooks {
	move := func(_ context.Context, e *domain.MoveEvent) { h.emit(e) }
	return domain.LifecycleHooks{
		OnStep:    move,
		OnCross:   move,
		OnBlocked: move,
		OnTurn:    func(_ context.Context, e *domain.TurnEvent) { h.emit(e) },
	}
}

// Err implements TraceHandler.
func (h *JSONHandler) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}
