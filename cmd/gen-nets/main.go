// Command gen-nets writes one puzzle document per cube net, with random walls,
// a random path and the expected passwords, for use as regression fixtures.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aretw0/cubewalk"
	"github.com/aretw0/cubewalk/pkg/domain"
	"github.com/aretw0/cubewalk/pkg/dsl"
	"github.com/aretw0/cubewalk/pkg/schema"
)

func main() {
	size := flag.Int("size", 4, "face edge length")
	walls := flag.Int("walls", 6, "walls per net")
	moves := flag.Int("moves", 20, "instructions per path")
	seed := flag.Int64("seed", 22, "random seed")
	flag.Parse()

	targetDir := "testdata/nets"
	if flag.NArg() > 0 {
		targetDir = flag.Arg(0)
	}

	// Ensure dir exists
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		check(err)
	}
	fmt.Printf("Generating cube nets in: %s\n", targetDir)

	rng := rand.New(rand.NewSource(*seed))
	solver := cubewalk.New()
	ctx := context.Background()

	for _, shape := range dsl.CubeNets {
		b := dsl.New(*size).Named(shape.Name).Layout(shape.Layout...).Path(randomPath(rng, *moves, *size))
		faces := facesOf(shape.Layout)
		for i := 0; i < *walls; i++ {
			face := faces[rng.Intn(len(faces))]
			x, y := rng.Intn(*size), rng.Intn(*size)
			if face == faces[0] && x == 0 && y == 0 {
				continue // keep the start tile open
			}
			b.Wall(face, x, y)
		}

		p, err := b.Build()
		check(err)

		doc := schema.FromPuzzle(p)
		doc.Expect = map[string]int{}
		for _, mode := range domain.Modes {
			res, err := solver.Solve(ctx, p, mode)
			check(err)
			doc.Expect[string(mode)] = res.Password
		}

		data, err := schema.Encode(doc, schema.FormatYAML)
		check(err)
		name := strings.NewReplacer(" ", "_", "-", "_").Replace(shape.Name) + ".yaml"
		check(os.WriteFile(filepath.Join(targetDir, name), data, 0o644))
		fmt.Printf("  %-8s flat=%d cube=%d\n", shape.Name, doc.Expect["flat"], doc.Expect["cube"])
	}

	fmt.Println("Done. Verify contents in", targetDir)
}

// facesOf lists face positions of a layout sketch in reading order, so the
// first entry is the face the walk starts on.
func facesOf(layout []string) []domain.Position {
	var out []domain.Position
	for y, row := range layout {
		for x, c := range row {
			if c == '#' {
				out = append(out, domain.Position{X: x, Y: y})
			}
		}
	}
	return out
}

func randomPath(rng *rand.Rand, moves, size int) string {
	var b strings.Builder
	for i := 0; i < moves; i++ {
		b.WriteString(strconv.Itoa(rng.Intn(size * 3)))
		if i < moves-1 {
			b.WriteByte("LR"[rng.Intn(2)])
		}
	}
	return b.String()
}

func check(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
