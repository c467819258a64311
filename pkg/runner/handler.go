package runner

import (
	"github.com/aretw0/cubewalk/pkg/domain"
)

// TraceHandler turns walk events into output.
type TraceHandler interface {
	// Hooks returns the callbacks to register with a solver or engine.
	Hooks() domain.LifecycleHooks

	// Err returns the first write error, if any. Hooks cannot return errors,
	// so handlers stop writing after a failure and report it here.
	Err() error
}
