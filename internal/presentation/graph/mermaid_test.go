package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/cubewalk/internal/presentation/graph"
	"github.com/aretw0/cubewalk/internal/runtime"
	"github.com/aretw0/cubewalk/pkg/domain"
	"github.com/aretw0/cubewalk/pkg/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSeams(t *testing.T, mode domain.Mode) ([]domain.Position, []domain.Seam) {
	t.Helper()
	p, err := dsl.Sample().Build()
	require.NoError(t, err)
	g, err := runtime.NewFaceGrid(p.Rows, p.FaceSize)
	require.NoError(t, err)
	r, err := runtime.DefaultRegistry().Build(mode, g)
	require.NoError(t, err)
	return g.Faces(), runtime.Seams(g, r)
}

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		mode     domain.Mode
		solid    int
		dotted   int
		contains []string
	}{
		{
			name:   "Cube",
			mode:   domain.ModeCube,
			solid:  5,
			dotted: 7,
			contains: []string{
				"graph LR",
				`f2_0(["(2,0)"])`,
				`f2_0 ---|"down/up 0°"| f2_1`,
				`f2_0 -.-|"right/right 180°"| f3_2`,
			},
		},
		{
			name:   "Flat",
			mode:   domain.ModeFlat,
			solid:  5,
			dotted: 7,
			contains: []string{
				`f0_1 ---|"right/left 0°"| f1_1`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			faces, seams := sampleSeams(t, tt.mode)
			out := graph.GenerateMermaid(faces, seams, nil)

			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			assert.Equal(t, tt.solid, strings.Count(out, " --- "), out)
			assert.Equal(t, tt.dotted, strings.Count(out, " -.- "), out)
			assert.NotContains(t, out, "classDef")
		})
	}
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	faces, seams := sampleSeams(t, domain.ModeCube)
	current := domain.Position{X: 1, Y: 1}
	out := graph.GenerateMermaid(faces, seams, &graph.GraphOverlay{
		VisitedFaces: []domain.Position{{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 0}},
		CurrentFace:  &current,
	})

	assert.Contains(t, out, "classDef visited")
	assert.Equal(t, 1, strings.Count(out, "class f2_0 visited;"), "visited faces are deduplicated")
	assert.Contains(t, out, "class f2_1 visited;")
	assert.Contains(t, out, "class f1_1 current;")
}
