package domain

import "fmt"

// Position is an integer coordinate. It is used both for a face's place
// in the net (face units) and for an offset inside a face (tile units).
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Step moves one unit in direction d.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Vector()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// InBounds reports whether p lies inside a size×size square.
func (p Position) InBounds(size int) bool {
	return p.X >= 0 && p.X < size && p.Y >= 0 && p.Y < size
}

// Wrap folds p back into a width×height box.
func (p Position) Wrap(width, height int) Position {
	return Position{X: mod(p.X, width), Y: mod(p.Y, height)}
}

// Rotate turns p clockwise about the centre of a size×size square.
func (p Position) Rotate(r Rotation, size int) Position {
	last := size - 1
	switch r {
	case Quarter:
		return Position{X: last - p.Y, Y: p.X}
	case Half:
		return Position{X: last - p.X, Y: last - p.Y}
	case ThreeQuarter:
		return Position{X: p.Y, Y: last - p.X}
	default:
		return p
	}
}

// MoveToEdge pins the coordinate that runs across side d onto that side,
// keeping the coordinate that runs along it.
func (p Position) MoveToEdge(d Direction, size int) Position {
	switch d {
	case Up:
		p.Y = 0
	case Down:
		p.Y = size - 1
	case Left:
		p.X = 0
	case Right:
		p.X = size - 1
	}
	return p
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
