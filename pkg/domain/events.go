package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventStep    EventType = "step"
	EventCross   EventType = "seam_cross"
	EventBlocked EventType = "blocked"
	EventTurn    EventType = "turn"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Mode      Mode      `json:"mode"`
}

// MoveEvent reports one attempted step. For EventBlocked, To is the
// refused pose and the agent stays at From.
type MoveEvent struct {
	EventBase
	From Pose `json:"from"`
	To   Pose `json:"to"`

	// Seam is set when the step crossed a face boundary.
	Seam *Seam `json:"seam,omitempty"`
}

// TurnEvent reports a change of facing between runs.
type TurnEvent struct {
	EventBase
	Pose Pose `json:"pose"`
	Turn Turn `json:"turn"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnStep    func(context.Context, *MoveEvent)
	OnCross   func(context.Context, *MoveEvent)
	OnBlocked func(context.Context, *MoveEvent)
	OnTurn    func(context.Context, *TurnEvent)
}

// Combine returns hooks that call every non-nil callback of each input in order.
func Combine(all ...LifecycleHooks) LifecycleHooks {
	var out LifecycleHooks
	for _, h := range all {
		out.OnStep = chainMove(out.OnStep, h.OnStep)
		out.OnCross = chainMove(out.OnCross, h.OnCross)
		out.OnBlocked = chainMove(out.OnBlocked, h.OnBlocked)
		out.OnTurn = chainTurn(out.OnTurn, h.OnTurn)
	}
	return out
}

func chainMove(a, b func(context.Context, *MoveEvent)) func(context.Context, *MoveEvent) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e *MoveEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}

func chainTurn(a, b func(context.Context, *TurnEvent)) func(context.Context, *TurnEvent) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e *TurnEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}
