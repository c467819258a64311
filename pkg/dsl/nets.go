package dsl

import "github.com/aretw0/cubewalk/pkg/domain"

// Shape is a named face layout, in the sketch format accepted by Layout.
type Shape struct {
	Name   string
	Layout []string
}

// CubeNets are the eleven distinct nets of a cube, up to rotation and
// reflection.
var CubeNets = []Shape{
	{"1-4-1 a", []string{"#...", "####", "#..."}},
	{"1-4-1 b", []string{"#...", "####", ".#.."}},
	{"1-4-1 c", []string{"#...", "####", "..#."}},
	{"1-4-1 d", []string{"#...", "####", "...#"}},
	{"1-4-1 e", []string{".#..", "####", ".#.."}},
	{"1-4-1 f", []string{".#..", "####", "..#."}},
	{"2-3-1 a", []string{"##..", ".###", ".#.."}},
	{"2-3-1 b", []string{"##..", ".###", "..#."}},
	{"2-3-1 c", []string{"##..", ".###", "...#"}},
	{"2-2-2", []string{"##..", ".##.", "..##"}},
	{"3-3", []string{"###..", "..###"}},
}

// SampleNet is the layout of the classic 4×4 reference puzzle.
var SampleNet = Shape{"sample", []string{"..#.", "###.", "..##"}}

// SamplePath is the instruction string of the reference puzzle.
const SamplePath = "10R5L5R10L4R5L5"

// Sample builds the classic reference puzzle: a walk of SamplePath over
// SampleNet with face size 4 ends at password 6032 on the flat torus and
// 5031 on the folded cube.
func Sample() *Builder {
	b := New(4).Named("sample").Layout(SampleNet.Layout...).Path(SamplePath)
	for _, w := range sampleWalls {
		b.walls[w] = true
	}
	return b
}

// sampleWalls are absolute tile coordinates.
var sampleWalls = []domain.Position{
	{X: 11, Y: 0}, {X: 9, Y: 1}, {X: 8, Y: 2},
	{X: 3, Y: 4}, {X: 11, Y: 4}, {X: 8, Y: 5}, {X: 2, Y: 6}, {X: 7, Y: 6}, {X: 10, Y: 7},
	{X: 11, Y: 8}, {X: 13, Y: 9}, {X: 9, Y: 10}, {X: 14, Y: 11},
}
