package domain

import "fmt"

// Direction is one of the four sides of a face, and the agent's facing.
// The declaration order matches the facing code used in the password.
type Direction uint8

const (
	Right Direction = iota
	Down
	Left
	Up
)

// Directions lists every direction in facing-code order.
var Directions = [...]Direction{Right, Down, Left, Up}

var directionNames = [...]string{
	Right: "right",
	Down:  "down",
	Left:  "left",
	Up:    "up",
}

var opposites = [...]Direction{
	Right: Left,
	Down:  Up,
	Left:  Right,
	Up:    Down,
}

var clockwise = [...]Direction{
	Right: Down,
	Down:  Left,
	Left:  Up,
	Up:    Right,
}

var counterClockwise = [...]Direction{
	Right: Up,
	Down:  Right,
	Left:  Down,
	Up:    Left,
}

// vectors are in screen coordinates: y grows downwards.
var vectors = [...][2]int{
	Right: {1, 0},
	Down:  {0, 1},
	Left:  {-1, 0},
	Up:    {0, -1},
}

// diagonals lists the two corners of a side in clockwise order around the face.
var diagonals = [...][2]Corner{
	Up:    {UpLeft, UpRight},
	Right: {UpRight, DownRight},
	Down:  {DownRight, DownLeft},
	Left:  {DownLeft, UpLeft},
}

// turnsBetween[from][to] is the clockwise rotation taking one facing to the other.
var turnsBetween = [...][4]Rotation{
	Right: {Right: None, Down: Quarter, Left: Half, Up: ThreeQuarter},
	Down:  {Right: ThreeQuarter, Down: None, Left: Quarter, Up: Half},
	Left:  {Right: Half, Down: ThreeQuarter, Left: None, Up: Quarter},
	Up:    {Right: Quarter, Down: Half, Left: ThreeQuarter, Up: None},
}

// ParseDirection maps a name ("up", "right", ...) back to a Direction.
func ParseDirection(s string) (Direction, error) {
	for d, name := range directionNames {
		if name == s {
			return Direction(d), nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

func (d Direction) Opposite() Direction { return opposites[d] }
func (d Direction) Clockwise() Direction { return clockwise[d] }
func (d Direction) CounterClockwise() Direction { return counterClockwise[d] }

// Vector returns the unit offset of one step in this direction.
func (d Direction) Vector() (dx, dy int) {
	v := vectors[d]
	return v[0], v[1]
}

// Diagonals returns the leading and trailing corner of this side,
// walking the face boundary clockwise.
func (d Direction) Diagonals() (lead, trail Corner) {
	c := diagonals[d]
	return c[0], c[1]
}

// Rotate applies an agent turn.
func (d Direction) Rotate(t Turn) Direction {
	switch t {
	case TurnLeft:
		return d.CounterClockwise()
	case TurnRight:
		return d.Clockwise()
	default:
		return d
	}
}

// TurnsTo returns the clockwise rotation that maps d onto other.
func (d Direction) TurnsTo(other Direction) Rotation {
	return turnsBetween[d][other]
}

// FacingCode is the value the direction contributes to a password.
func (d Direction) FacingCode() int { return int(d) }

// Corner is one of the four corners of a face's boundary square.
type Corner uint8

const (
	UpLeft Corner = iota
	UpRight
	DownRight
	DownLeft
)

// Corners lists every corner clockwise from the top left.
var Corners = [...]Corner{UpLeft, UpRight, DownRight, DownLeft}

var cornerNames = [...]string{
	UpLeft:    "up-left",
	UpRight:   "up-right",
	DownRight: "down-right",
	DownLeft:  "down-left",
}

var cornerSides = [...][2]Direction{
	UpLeft:    {Left, Up},
	UpRight:   {Up, Right},
	DownRight: {Right, Down},
	DownLeft:  {Down, Left},
}

func (c Corner) String() string {
	if int(c) < len(cornerNames) {
		return cornerNames[c]
	}
	return fmt.Sprintf("Corner(%d)", uint8(c))
}

// Sides returns the two sides of the face that meet at this corner.
func (c Corner) Sides() (Direction, Direction) {
	s := cornerSides[c]
	return s[0], s[1]
}

// Rotation is a number of clockwise quarter turns.
type Rotation uint8

const (
	None Rotation = iota
	Quarter
	Half
	ThreeQuarter
)

func (r Rotation) String() string {
	switch r {
	case None:
		return "0"
	case Quarter:
		return "90"
	case Half:
		return "180"
	case ThreeQuarter:
		return "270"
	}
	return fmt.Sprintf("Rotation(%d)", uint8(r))
}

// Turn is the optional rotation that closes an instruction.
type Turn uint8

const (
	TurnNone Turn = iota
	TurnLeft
	TurnRight
)

func (t Turn) String() string {
	switch t {
	case TurnLeft:
		return "L"
	case TurnRight:
		return "R"
	default:
		return ""
	}
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (c Corner) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
