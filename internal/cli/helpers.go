package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/aretw0/cubewalk"
	"github.com/aretw0/cubewalk/pkg/runner"
	"github.com/aretw0/cubewalk/pkg/schema"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()

	once   sync.Once
	sigCh  chan os.Signal
	mu     sync.Mutex
	sigVal os.Signal
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sc.sigCh:
			sc.mu.Lock()
			sc.sigVal = sig
			sc.mu.Unlock()
			sc.Cancel()
		case <-sc.Done():
		}
		sc.once.Do(func() { signal.Stop(sc.sigCh) })
	}()

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

// IsInterrupted reports whether err only means the user stopped the command.
func IsInterrupted(err error) bool {
	return errors.Is(err, context.Canceled)
}

// loadDocument reads a puzzle file, or stdin when path is "-". Text input is
// parsed with faceSize so nets that are not six faces can still be read.
func loadDocument(path string, stdin io.Reader, faceSize int) (*schema.Document, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" || path == "" {
		if stdin == nil {
			return nil, errors.New("no input: pass a file or pipe a puzzle to stdin")
		}
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(filepath.Clean(path))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read puzzle: %w", err)
	}

	text, err := runner.SanitizeInput(string(data))
	if err != nil {
		return nil, fmt.Errorf("input rejected: %w", err)
	}

	format := schema.DetectFormat(path)
	if format == schema.FormatText {
		p, err := cubewalk.Parse([]byte(text), faceSize)
		if err != nil {
			return nil, err
		}
		return schema.FromPuzzle(p), nil
	}

	doc, err := schema.Decode([]byte(text), format)
	if err != nil {
		return nil, err
	}
	if faceSize > 0 {
		doc.FaceSize = faceSize
	}
	return doc, nil
}
