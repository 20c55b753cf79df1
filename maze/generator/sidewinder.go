package generator

import (
	"math/rand"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// GenerateSidewinder works one row at a time, west to east, growing a run
// of cells joined eastward. A run closes at the east boundary or, below the
// top row, on a coin flip; closing links one random run member north and
// starts a new run. The top row has nothing to the north and becomes a
// single corridor.
func GenerateSidewinder(g *maze.Grid, rng *rand.Rand) *maze.Grid {
	run := make([]maze.Location, 0, g.Cols())

	for row := 0; row < g.Rows(); row++ {
		run = run[:0]
		for col := 0; col < g.Cols(); col++ {
			loc := maze.Location{Row: row, Col: col}
			_, hasNorth := g.NeighborOf(loc, maze.North)
			east, hasEast := g.NeighborOf(loc, maze.East)

			run = append(run, loc)
			closeRun := !hasEast || (hasNorth && rng.Intn(2) == 0)
			if !closeRun {
				g.Link(loc, east, true)
				continue
			}

			member := run[rng.Intn(len(run))]
			if hasNorth {
				g.Link(member, mustNeighbor(g, member, maze.North), true)
			}
			run = run[:0]
		}
	}
	return g
}
