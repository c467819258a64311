package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/cubewalk"
	"github.com/aretw0/cubewalk/internal/presentation/graph"
	"github.com/aretw0/cubewalk/internal/runtime"
	"github.com/aretw0/cubewalk/internal/validator"
	"github.com/aretw0/cubewalk/pkg/domain"
)

// Validate checks a puzzle's net and prints every issue found.
// It returns the report's error, if any.
func Validate(path string, stdin io.Reader, faceSize int, w io.Writer) (validator.Report, error) {
	doc, err := loadDocument(path, stdin, faceSize)
	if err != nil {
		return validator.Report{}, err
	}
	p, err := doc.Puzzle()
	if err != nil {
		return validator.Report{}, err
	}

	report := validator.ValidatePuzzle(p)
	for _, issue := range report.Issues {
		fmt.Fprintf(w, "%-7s %s\n", issue.Severity, issue.Message)
	}
	return report, report.Err()
}

// GraphOptions configures Graph.
type GraphOptions struct {
	Path     string
	Stdin    io.Reader
	FaceSize int
	Mode     domain.Mode

	// Overlay walks the path and highlights the faces it visits.
	Overlay bool
}

// Graph folds the net and renders its seams as a Mermaid diagram.
func Graph(ctx context.Context, opts GraphOptions) (string, error) {
	doc, err := loadDocument(opts.Path, opts.Stdin, opts.FaceSize)
	if err != nil {
		return "", err
	}
	p, err := doc.Puzzle()
	if err != nil {
		return "", err
	}

	mode := opts.Mode
	if mode == "" {
		mode = domain.ModeCube
	}

	solver := cubewalk.New()
	seams, err := solver.Seams(ctx, p, mode)
	if err != nil {
		return "", err
	}
	grid, err := runtime.NewFaceGrid(p.Rows, p.FaceSize)
	if err != nil {
		return "", err
	}

	var overlay *graph.GraphOverlay
	if opts.Overlay {
		res, err := solver.Solve(ctx, p, mode)
		if err != nil {
			return "", err
		}
		overlay = &graph.GraphOverlay{VisitedFaces: res.Visited, CurrentFace: &res.Final.Face}
	}
	return graph.GenerateMermaid(grid.Faces(), seams, overlay), nil
}
