package compiler

import (
	"errors"
	"testing"

	"github.com/aretw0/cubewalk/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInstructions(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []domain.Instruction
	}{
		{"Empty", "", nil},
		{"Single Run", "12", []domain.Instruction{{Distance: 12}}},
		{"Trailing Turn", "3L", []domain.Instruction{{Distance: 3, Turn: domain.TurnLeft}}},
		{"Reference Path", "10R5L5R10L4R5L5", []domain.Instruction{
			{Distance: 10, Turn: domain.TurnRight},
			{Distance: 5, Turn: domain.TurnLeft},
			{Distance: 5, Turn: domain.TurnRight},
			{Distance: 10, Turn: domain.TurnLeft},
			{Distance: 4, Turn: domain.TurnRight},
			{Distance: 5, Turn: domain.TurnLeft},
			{Distance: 5},
		}},
		{"Zero Distance", "0R0", []domain.Instruction{{Distance: 0, Turn: domain.TurnRight}, {Distance: 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInstructions(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.path, FormatInstructions(got))
		})
	}
}

func TestParseInstructions_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		offset int
	}{
		{"Leading Turn", "R10", 0},
		{"Double Turn", "10RL", 3},
		{"Unknown Letter", "10X", 2},
		{"Space", "10 R", 2},
		{"Overflow", "99999999999999999999999", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseInstructions(tt.path)
			require.ErrorIs(t, err, domain.ErrInvalidInstruction)

			var ie *domain.InstructionError
			require.True(t, errors.As(err, &ie))
			assert.Equal(t, tt.offset, ie.Offset)
		})
	}
}

func TestParser_Parse(t *testing.T) {
	text := "\n  ..\n  ..\n....\n....  \n\n3R1\n"

	p, err := NewParser(WithFaceSize(2)).Parse([]byte(text))
	require.NoError(t, err)

	assert.Equal(t, []string{"  ..", "  ..", "....", "...."}, p.Rows)
	assert.Equal(t, 2, p.FaceSize)
	assert.Len(t, p.Instructions, 2)
}

func TestParser_ParseCRLF(t *testing.T) {
	p, err := NewParser(WithFaceSize(1)).Parse([]byte("..\r\n.\r\n\r\n2\r\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"..", ". "}, p.Rows)
}

func TestParser_ParseErrors(t *testing.T) {
	_, err := NewParser().Parse([]byte(""))
	assert.ErrorIs(t, err, domain.ErrFormat)

	_, err = NewParser(WithFaceSize(1)).Parse([]byte(".\n\n1\n\n2\n"))
	assert.ErrorIs(t, err, domain.ErrFormat, "two path lines")

	_, err = NewParser(WithFaceSize(1)).Parse([]byte(".\n\n1Q\n"))
	assert.ErrorIs(t, err, domain.ErrInvalidInstruction)

	// Five tiles cannot be six faces.
	_, err = NewParser().Parse([]byte(".....\n\n1\n"))
	assert.ErrorIs(t, err, domain.ErrFormat)
}

func TestDetectFaceSize(t *testing.T) {
	size, err := DetectFaceSize([]string{"..", "..", "........", "........", "..", ".."})
	require.NoError(t, err)
	assert.Equal(t, 2, size)

	// 12 tiles make six faces of two tiles, which are not square.
	_, err = DetectFaceSize([]string{"......", "......"})
	assert.ErrorIs(t, err, domain.ErrFormat)
}
