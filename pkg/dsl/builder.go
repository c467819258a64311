package dsl

import (
	"fmt"
	"strings"

	"github.com/aretw0/cubewalk/internal/compiler"
	"github.com/aretw0/cubewalk/pkg/domain"
)

// Builder manages the construction of a puzzle from a face layout.
type Builder struct {
	name   string
	size   int
	layout []string
	walls  map[domain.Position]bool
	path   string
}

// New creates a new builder whose faces are size×size tiles.
func New(size int) *Builder {
	return &Builder{
		size:  size,
		walls: make(map[domain.Position]bool),
	}
}

// Named sets the puzzle name.
func (b *Builder) Named(name string) *Builder {
	b.name = name
	return b
}

// Layout sketches the net one character per face: '#' is a face, anything
// else a hole.
func (b *Builder) Layout(rows ...string) *Builder {
	b.layout = rows
	return b
}

// Wall places a wall on face at in-face offset (x, y).
func (b *Builder) Wall(face domain.Position, x, y int) *Builder {
	b.walls[domain.Position{X: face.X*b.size + x, Y: face.Y*b.size + y}] = true
	return b
}

// Path sets the instruction string.
func (b *Builder) Path(path string) *Builder {
	b.path = path
	return b
}

// Rows renders the net as a rectangular block of tiles.
func (b *Builder) Rows() []string {
	width := 0
	for _, r := range b.layout {
		width = max(width, len(r))
	}

	rows := make([]string, 0, len(b.layout)*b.size)
	for fy, line := range b.layout {
		for y := 0; y < b.size; y++ {
			var sb strings.Builder
			for fx := 0; fx < width; fx++ {
				face := fx < len(line) && line[fx] == '#'
				for x := 0; x < b.size; x++ {
					switch {
					case !face:
						sb.WriteByte(' ')
					case b.walls[domain.Position{X: fx*b.size + x, Y: fy*b.size + y}]:
						sb.WriteByte('#')
					default:
						sb.WriteByte('.')
					}
				}
			}
			rows = append(rows, sb.String())
		}
	}
	return rows
}

// Text renders the puzzle in its plain-text file format.
func (b *Builder) Text() string {
	return strings.Join(b.Rows(), "\n") + "\n\n" + b.path + "\n"
}

// Build compiles the layout into a Puzzle.
func (b *Builder) Build() (*domain.Puzzle, error) {
	if b.size <= 0 {
		return nil, fmt.Errorf("face size must be positive, got %d", b.size)
	}
	if len(b.layout) == 0 {
		return nil, fmt.Errorf("layout is empty")
	}

	instructions, err := compiler.ParseInstructions(b.path)
	if err != nil {
		return nil, fmt.Errorf("failed to build puzzle: %w", err)
	}

	return &domain.Puzzle{
		Name:         b.name,
		Rows:         b.Rows(),
		FaceSize:     b.size,
		Instructions: instructions,
	}, nil
}
