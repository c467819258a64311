package domain

import (
	"fmt"
	"strings"
)

// Tile is the content of one cell of the net.
type Tile uint8

const (
	Void Tile = iota
	Open
	Wall
)

// ParseTile classifies a net character.
func ParseTile(r rune) (Tile, bool) {
	switch r {
	case ' ':
		return Void, true
	case '.':
		return Open, true
	case '#':
		return Wall, true
	}
	return Void, false
}

func (t Tile) Rune() rune {
	switch t {
	case Open:
		return '.'
	case Wall:
		return '#'
	default:
		return ' '
	}
}

// Edge is a raw edge: one side of one face, before folding.
type Edge struct {
	Face Position  `json:"face"`
	Side Direction `json:"side"`
}

func (e Edge) String() string {
	return fmt.Sprintf("%s:%s", e.Face, e.Side)
}

// Vertex is a raw corner: one corner of one face, before folding.
type Vertex struct {
	Face   Position `json:"face"`
	Corner Corner   `json:"corner"`
}

func (v Vertex) String() string {
	return fmt.Sprintf("%s:%s", v.Face, v.Corner)
}

// Seam is one entry of the resolved edge map. Leaving From.Face through
// From.Side enters To.Face through To.Side.
type Seam struct {
	From Edge `json:"from"`
	To   Edge `json:"to"`
}

// Rotation is the turn the agent's facing undergoes when crossing the seam.
func (s Seam) Rotation() Rotation {
	return s.From.Side.TurnsTo(s.To.Side.Opposite())
}

// Mode selects the edge resolution strategy.
type Mode string

const (
	ModeFlat Mode = "flat"
	ModeCube Mode = "cube"
)

// Modes lists the supported modes.
var Modes = []Mode{ModeFlat, ModeCube}

// ParseMode accepts a mode name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}
