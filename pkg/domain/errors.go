package domain

import (
	"errors"
	"fmt"
)

// ErrFormat is returned when the net text is structurally invalid (ragged faces,
// unknown characters, sizes that do not divide the grid).
var ErrFormat = errors.New("malformed net")

// ErrInvalidInstruction is returned when the path contains an unparsable token.
var ErrInvalidInstruction = errors.New("invalid instruction")

// ErrTopology is returned when a net cannot be folded into a cube.
var ErrTopology = errors.New("not a cube net")

// ErrUnknownMode is returned for a mode name no resolver is registered under.
var ErrUnknownMode = errors.New("unknown mode")

// ErrResultNotFound is returned when a result digest cannot be found in the store.
var ErrResultNotFound = errors.New("result not found")

// FormatError locates a problem in the net text. Line and Col are 1-based;
// zero means the problem is not tied to a single cell.
type FormatError struct {
	Line   int
	Col    int
	Reason string
}

func (e *FormatError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s", ErrFormat, e.Reason)
	}
	return fmt.Sprintf("%s: line %d col %d: %s", ErrFormat, e.Line, e.Col, e.Reason)
}

func (e *FormatError) Unwrap() error { return ErrFormat }

// InstructionError points at the offending byte of a path.
type InstructionError struct {
	Offset int
	Token  string
}

func (e *InstructionError) Error() string {
	return fmt.Sprintf("%s %q at offset %d", ErrInvalidInstruction, e.Token, e.Offset)
}

func (e *InstructionError) Unwrap() error { return ErrInvalidInstruction }

// TopologyError describes the first class that failed the cube fixpoint check.
type TopologyError struct {
	// Faces is the number of faces in the net.
	Faces int

	// Face is set when a face position was given more than once.
	Face *Position

	// Edge or Vertex identifies the offending raw edge or corner, when known.
	Edge   *Edge
	Vertex *Vertex

	// ClassSize is the size the class ended with; Want the size it needed.
	ClassSize int
	Want      int
}

func (e *TopologyError) Error() string {
	switch {
	case e.Face != nil:
		return fmt.Sprintf("%s: face %s appears more than once", ErrTopology, e.Face)
	case e.Edge != nil:
		return fmt.Sprintf("%s: edge %s is glued to %d edges, want %d", ErrTopology, e.Edge, e.ClassSize-1, e.Want-1)
	case e.Vertex != nil:
		return fmt.Sprintf("%s: corner %s meets %d faces, want %d", ErrTopology, e.Vertex, e.ClassSize, e.Want)
	default:
		return fmt.Sprintf("%s: net has %d faces, want %d", ErrTopology, e.Faces, e.Want)
	}
}

func (e *TopologyError) Unwrap() error { return ErrTopology }
