package domain

import "fmt"

// Pose is the agent's complete state on the surface.
type Pose struct {
	// Face is the position of the current face in the net, in face units.
	Face Position `json:"face"`

	// Offset is the tile inside the face, within [0, size)².
	Offset Position `json:"offset"`

	Facing Direction `json:"facing"`
}

func (p Pose) String() string {
	return fmt.Sprintf("face=%s offset=%s facing=%s", p.Face, p.Offset, p.Facing)
}

// Absolute returns the 0-based grid cell the pose sits on.
func (p Pose) Absolute(size int) Position {
	return Position{
		X: p.Face.X*size + p.Offset.X,
		Y: p.Face.Y*size + p.Offset.Y,
	}
}

// Password encodes the pose as 1000·row + 4·column + facing, with 1-based
// row and column.
func (p Pose) Password(size int) int {
	abs := p.Absolute(size)
	return 1000*(abs.Y+1) + 4*(abs.X+1) + p.Facing.FacingCode()
}

// Instruction is a straight run followed by an optional turn.
type Instruction struct {
	Distance int  `json:"distance"`
	Turn     Turn `json:"turn,omitempty"`
}

func (i Instruction) String() string {
	return fmt.Sprintf("%d%s", i.Distance, i.Turn)
}

// Puzzle is a parsed net plus the path to walk over it.
type Puzzle struct {
	Name         string        `json:"name,omitempty"`
	Rows         []string      `json:"rows"`
	FaceSize     int           `json:"face_size"`
	Instructions []Instruction `json:"instructions"`
}

// Result is the outcome of walking a puzzle in one mode.
type Result struct {
	Mode     Mode       `json:"mode"`
	FaceSize int        `json:"face_size"`
	Final    Pose       `json:"final"`
	Password int        `json:"password"`
	Steps    int        `json:"steps"`
	Blocked  int        `json:"blocked"`
	Crossed  int        `json:"crossed"`
	Visited  []Position `json:"visited,omitempty"`
	Digest   string     `json:"digest,omitempty"`
}
