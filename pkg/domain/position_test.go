package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosition_Rotate(t *testing.T) {
	const size = 4
	tests := []struct {
		name string
		in   Position
		r    Rotation
		want Position
	}{
		{"None", Position{1, 0}, None, Position{1, 0}},
		{"Quarter Top Row Goes Right Column", Position{1, 0}, Quarter, Position{3, 1}},
		{"Half", Position{1, 0}, Half, Position{2, 3}},
		{"Three Quarter", Position{1, 0}, ThreeQuarter, Position{0, 2}},
		{"Quarter Corner", Position{0, 0}, Quarter, Position{3, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Rotate(tt.r, size))
		})
	}
}

func TestPosition_RotateComposes(t *testing.T) {
	const size = 5
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := Position{x, y}
			q := p.Rotate(Quarter, size)
			assert.Equal(t, p.Rotate(Half, size), q.Rotate(Quarter, size))
			assert.Equal(t, p.Rotate(ThreeQuarter, size), q.Rotate(Half, size))
			assert.Equal(t, p, q.Rotate(ThreeQuarter, size))
			assert.True(t, q.InBounds(size))
		}
	}
}

func TestPosition_MoveToEdge(t *testing.T) {
	p := Position{X: 4, Y: 2}
	assert.Equal(t, Position{0, 2}, p.MoveToEdge(Left, 4))
	assert.Equal(t, Position{3, 2}, p.MoveToEdge(Right, 4))
	assert.Equal(t, Position{4, 0}, p.MoveToEdge(Up, 4))
	assert.Equal(t, Position{4, 3}, p.MoveToEdge(Down, 4))
}

func TestPosition_Wrap(t *testing.T) {
	assert.Equal(t, Position{2, 0}, Position{-1, 3}.Wrap(3, 3))
	assert.Equal(t, Position{0, 1}, Position{3, -2}.Wrap(3, 3))
}

func TestPose_Password(t *testing.T) {
	// Row 6, column 8, facing right.
	p := Pose{Face: Position{1, 1}, Offset: Position{3, 1}, Facing: Right}
	assert.Equal(t, 6032, p.Password(4))

	p = Pose{Face: Position{1, 1}, Offset: Position{2, 0}, Facing: Up}
	assert.Equal(t, 5031, p.Password(4))
}

func TestErrors_Unwrap(t *testing.T) {
	var err error = &TopologyError{Faces: 5, Want: 6}
	assert.True(t, errors.Is(err, ErrTopology))
	assert.Contains(t, err.Error(), "5 faces")

	err = &FormatError{Line: 2, Col: 3, Reason: "ragged face"}
	assert.ErrorIs(t, err, ErrFormat)

	err = &InstructionError{Offset: 4, Token: "X"}
	assert.ErrorIs(t, err, ErrInvalidInstruction)
}
