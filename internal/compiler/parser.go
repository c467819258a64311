package compiler

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/aretw0/cubewalk/pkg/domain"
)

// Parser is responsible for converting raw puzzle text into a Puzzle.
type Parser struct {
	faceSize int
}

// ParserOption configures the Parser.
type ParserOption func(*Parser)

// WithFaceSize fixes the face size instead of inferring it from the tile count.
func WithFaceSize(size int) ParserOption {
	return func(p *Parser) {
		p.faceSize = size
	}
}

// NewParser creates a new parser instance.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse splits the text into the net block (up to the first blank line) and
// the path (the single non-blank line after it).
func (p *Parser) Parse(data []byte) (*domain.Puzzle, error) {
	lines := splitLines(string(data))

	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	end := start
	for end < len(lines) && strings.TrimSpace(lines[end]) != "" {
		end++
	}

	rows := PadRows(lines[start:end])
	if len(rows) == 0 {
		return nil, &domain.FormatError{Reason: "empty net"}
	}

	var path string
	for i := end; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if path != "" {
			return nil, &domain.FormatError{Line: i + 1, Reason: "more than one path line"}
		}
		path = line
	}

	instructions, err := ParseInstructions(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse path: %w", err)
	}

	size := p.faceSize
	if size == 0 {
		size, err = DetectFaceSize(rows)
		if err != nil {
			return nil, err
		}
	}

	return &domain.Puzzle{
		Rows:         rows,
		FaceSize:     size,
		Instructions: instructions,
	}, nil
}

// PadRows trims trailing blanks and right-pads every row to the widest one,
// turning ragged text into a rectangular block.
func PadRows(lines []string) []string {
	rows := make([]string, len(lines))
	width := 0
	for i, l := range lines {
		rows[i] = strings.TrimRight(l, " \t")
		if n := len([]rune(rows[i])); n > width {
			width = n
		}
	}
	for i, r := range rows {
		if pad := width - len([]rune(r)); pad > 0 {
			rows[i] = r + strings.Repeat(" ", pad)
		}
	}
	return rows
}

// ParseInstructions tokenizes a path of the form (<uint> [LR]?)*.
func ParseInstructions(path string) ([]domain.Instruction, error) {
	var out []domain.Instruction
	i := 0
	for i < len(path) {
		start := i
		for i < len(path) && path[i] >= '0' && path[i] <= '9' {
			i++
		}
		if start == i {
			return nil, &domain.InstructionError{Offset: i, Token: string(path[i])}
		}
		n, err := strconv.Atoi(path[start:i])
		if err != nil {
			return nil, &domain.InstructionError{Offset: start, Token: path[start:i]}
		}

		ins := domain.Instruction{Distance: n}
		if i < len(path) {
			switch path[i] {
			case 'L':
				ins.Turn = domain.TurnLeft
				i++
			case 'R':
				ins.Turn = domain.TurnRight
				i++
			default:
				return nil, &domain.InstructionError{Offset: i, Token: string(path[i])}
			}
		}
		out = append(out, ins)
	}
	return out, nil
}

// FormatInstructions is the inverse of ParseInstructions.
func FormatInstructions(instructions []domain.Instruction) string {
	var sb strings.Builder
	for _, ins := range instructions {
		sb.WriteString(ins.String())
	}
	return sb.String()
}

// DetectFaceSize infers the face size of a six-face net from its tile count.
func DetectFaceSize(rows []string) (int, error) {
	tiles := 0
	for _, r := range rows {
		for _, c := range r {
			if c != ' ' {
				tiles++
			}
		}
	}
	if tiles == 0 || tiles%6 != 0 {
		return 0, &domain.FormatError{Reason: fmt.Sprintf("%d tiles cannot form six equal faces; set the face size explicitly", tiles)}
	}
	size := int(math.Round(math.Sqrt(float64(tiles / 6))))
	if size*size*6 != tiles {
		return 0, &domain.FormatError{Reason: fmt.Sprintf("%d tiles are not six square faces; set the face size explicitly", tiles)}
	}
	return size, nil
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}
