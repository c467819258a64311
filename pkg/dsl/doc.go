/*
Package dsl provides a Go DSL for programmatically constructing cubewalk puzzles.

Instead of drawing nets tile by tile, a net is sketched one character per face
and expanded to the requested face size. This is particularly useful for unit
testing, property checks over every cube net, and generating puzzle files.

Example usage:

	package main

	import (
		"fmt"

		"github.com/aretw0/cubewalk/pkg/dsl"
		"github.com/aretw0/cubewalk/pkg/domain"
	)

	func main() {
		puzzle, err := dsl.New(3).
			Layout("#...", "####", "#...").
			Wall(domain.Position{X: 1, Y: 1}, 2, 2).
			Path("4R2L7").
			Build()
		if err != nil {
			panic(err)
		}
		fmt.Println(puzzle.Rows)
	}

CubeNets lists the eleven distinct cube nets; Sample rebuilds the classic
reference puzzle.
*/
package dsl
