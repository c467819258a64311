/*
Package cubewalk walks a path over a map drawn as an unfolded cube.

The map is a net: square faces of equal size laid out on a grid, each tile
either open ('.') or a wall ('#'). A path of step counts and L/R turns is
walked from the top-left open face, facing right. When a step leaves a face,
the agent continues on whichever face is glued to that edge. Two gluings are
built in:

  - flat: the net wraps around like a torus, skipping empty cells.
  - cube: the net is folded into a cube and edges are glued in 3D.

The final pose is reported as a password: 1000*row + 4*col + facing.

# Usage

	puzzle, err := cubewalk.Parse(input, 0)
	if err != nil {
		log.Fatal(err)
	}

	solver := cubewalk.New()
	result, err := solver.Solve(ctx, puzzle, domain.ModeCube)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(result.Password)

Solvers accept lifecycle hooks for tracing and metrics, a logger, and a
result store that caches solutions by puzzle digest.
*/
package cubewalk
