package tui_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/aretw0/cubewalk/internal/presentation/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintBanner_PlainWriter(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf)

	out := buf.String()
	assert.NotContains(t, out, "\x1b[", "no colors when the writer is not a terminal")
	assert.Equal(t, 7, strings.Count(out, "\n"))
}

func TestNewRenderer(t *testing.T) {
	render := tui.NewRenderer()
	out, err := render("## cube\n\n- **password**: 5031\n")
	require.NoError(t, err)
	assert.Contains(t, out, "5031")
}

func TestIsTerminal_File(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, tui.IsTerminal(f))
}
