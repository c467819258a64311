package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/cubewalk"
	"github.com/aretw0/cubewalk/internal/config"
	"github.com/aretw0/cubewalk/internal/presentation/tui"
	"github.com/aretw0/cubewalk/pkg/domain"
	"github.com/aretw0/cubewalk/pkg/schema"
	"golang.org/x/sync/errgroup"
)

// ErrExpectation is returned when a password differs from the document's expectation.
var ErrExpectation = errors.New("expectations not met")

// SolveOptions contains all the configuration for the solve command.
type SolveOptions struct {
	// Path is a puzzle file (.txt, .yaml, .json) or "-" for stdin.
	Path string

	// Mode and FaceSize override the document when set.
	Mode     string
	FaceSize int

	Config   config.Config
	Verbose  bool
	Headless bool
	Renderer cubewalk.ContentRenderer

	Stdin  io.Reader
	Stdout io.Writer
	Logger *slog.Logger
}

func (o SolveOptions) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

// Solve loads the puzzle, walks it in every requested mode and prints a
// report per mode. Modes run concurrently; output keeps mode order.
func Solve(ctx context.Context, opts SolveOptions) ([]*domain.Result, error) {
	logger := opts.logger()

	doc, err := loadDocument(opts.Path, opts.Stdin, opts.FaceSize)
	if err != nil {
		return nil, err
	}
	switch {
	case opts.Mode != "":
		doc.Mode = opts.Mode
	case doc.Mode == "":
		doc.Mode = opts.Config.Mode
	}

	puzzle, err := doc.Puzzle()
	if err != nil {
		return nil, err
	}

	cache, err := OpenCache(opts.Config.Store)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := cache.Close(); err != nil {
			logger.Warn("Failed to close result store", "error", err)
		}
	}()

	modes := doc.Modes()
	results := make([]*domain.Result, len(modes))
	traces := make([]bytes.Buffer, len(modes))

	g, gctx := errgroup.WithContext(ctx)
	for i, mode := range modes {
		g.Go(func() error {
			trace, err := NewTrace(opts.Config.Trace, &traces[i], opts.Verbose)
			if err != nil {
				return err
			}
			solverOpts := append([]cubewalk.Option{cubewalk.WithLogger(logger)}, cache.SolverOptions()...)
			if trace != nil {
				solverOpts = append(solverOpts, cubewalk.WithLifecycleHooks(trace.Hooks()))
			}

			res, err := cubewalk.New(solverOpts...).Solve(gctx, puzzle, mode)
			if err != nil {
				return err
			}
			if trace != nil {
				if err := trace.Err(); err != nil {
					return fmt.Errorf("failed to write trace: %w", err)
				}
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !opts.Headless {
		tui.PrintBanner(opts.Stdout)
		if doc.Name != "" {
			printSystemMessage(opts.Stdout, "Solving '%s'.", doc.Name)
		}
	}

	var mismatches []error
	for i, res := range results {
		if _, err := traces[i].WriteTo(opts.Stdout); err != nil {
			return results, err
		}

		report := cubewalk.Report(res)
		if opts.Renderer != nil {
			if rendered, err := opts.Renderer(report); err == nil {
				report = rendered
			}
		}
		fmt.Fprintln(opts.Stdout, strings.TrimSpace(report))

		if err := doc.Check(res); err != nil {
			mismatches = append(mismatches, err)
		}
	}

	if len(mismatches) > 0 {
		return results, fmt.Errorf("%w: %w", ErrExpectation, errors.Join(mismatches...))
	}
	return results, nil
}
