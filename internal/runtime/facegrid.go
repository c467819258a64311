package runtime

import (
	"fmt"

	"github.com/aretw0/cubewalk/pkg/domain"
)

// FaceGrid is the net cut into size×size faces. It is immutable once built.
type FaceGrid struct {
	size   int
	width  int // in faces
	height int // in faces
	tiles  [][]domain.Tile
	faces  []domain.Position
	index  map[domain.Position]bool
}

// NewFaceGrid partitions a rectangular block of net rows into faces.
// A face exists where its top-left cell is not blank; every cell of an
// existing face must be a tile.
func NewFaceGrid(rows []string, size int) (*FaceGrid, error) {
	if size <= 0 {
		return nil, &domain.FormatError{Reason: fmt.Sprintf("face size must be positive, got %d", size)}
	}
	if len(rows) == 0 {
		return nil, &domain.FormatError{Reason: "empty net"}
	}

	cols := len([]rune(rows[0]))
	tiles := make([][]domain.Tile, len(rows))
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != cols {
			return nil, &domain.FormatError{Line: y + 1, Reason: fmt.Sprintf("row has %d cells, want %d", len(runes), cols)}
		}
		tiles[y] = make([]domain.Tile, cols)
		for x, r := range runes {
			tile, ok := domain.ParseTile(r)
			if !ok {
				return nil, &domain.FormatError{Line: y + 1, Col: x + 1, Reason: fmt.Sprintf("unknown tile %q", r)}
			}
			tiles[y][x] = tile
		}
	}

	if len(rows)%size != 0 || cols%size != 0 {
		return nil, &domain.FormatError{Reason: fmt.Sprintf("grid %dx%d is not a multiple of face size %d", cols, len(rows), size)}
	}

	g := &FaceGrid{
		size:   size,
		width:  cols / size,
		height: len(rows) / size,
		tiles:  tiles,
		index:  make(map[domain.Position]bool),
	}

	for fy := 0; fy < g.height; fy++ {
		for fx := 0; fx < g.width; fx++ {
			if tiles[fy*size][fx*size] == domain.Void {
				continue
			}
			if err := g.checkFace(fx, fy); err != nil {
				return nil, err
			}
			face := domain.Position{X: fx, Y: fy}
			g.faces = append(g.faces, face)
			g.index[face] = true
		}
	}

	if len(g.faces) == 0 {
		return nil, &domain.FormatError{Reason: "net has no faces"}
	}
	return g, nil
}

func (g *FaceGrid) checkFace(fx, fy int) error {
	for y := fy * g.size; y < (fy+1)*g.size; y++ {
		for x := fx * g.size; x < (fx+1)*g.size; x++ {
			if g.tiles[y][x] == domain.Void {
				return &domain.FormatError{Line: y + 1, Col: x + 1, Reason: fmt.Sprintf("face (%d,%d) is ragged", fx, fy)}
			}
		}
	}
	return nil
}

// Size is the side length of a face, in tiles.
func (g *FaceGrid) Size() int { return g.size }

// Width is the number of face columns in the net.
func (g *FaceGrid) Width() int { return g.width }

// Height is the number of face rows in the net.
func (g *FaceGrid) Height() int { return g.height }

// Present reports whether a face exists at p.
func (g *FaceGrid) Present(p domain.Position) bool { return g.index[p] }

// Faces returns the present faces in row-major order.
func (g *FaceGrid) Faces() []domain.Position {
	out := make([]domain.Position, len(g.faces))
	copy(out, g.faces)
	return out
}

// Tile returns the tile at offset inside face. Out of range lookups are Void.
func (g *FaceGrid) Tile(face, offset domain.Position) domain.Tile {
	if !g.Present(face) || !offset.InBounds(g.size) {
		return domain.Void
	}
	return g.tiles[face.Y*g.size+offset.Y][face.X*g.size+offset.X]
}

// Origin is the first present face of the top row.
func (g *FaceGrid) Origin() domain.Position {
	return g.faces[0]
}
