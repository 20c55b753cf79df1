package generator

import (
	"math/rand"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// GenerateAldousBroder performs a uniform random walk from a random cell,
// linking into every cell the first time the walk enters it. It stops once
// all rows*cols-1 other cells have been entered. The maze is drawn uniformly
// from all spanning trees, but the walk can take a long time to finish.
func GenerateAldousBroder(g *maze.Grid, rng *rand.Rand) *maze.Grid {
	unvisited := g.Size() - 1
	current := randomLocation(g, rng)

	for unvisited > 0 {
		neighbors := g.NeighborsOf(current)
		next := neighbors[rng.Intn(len(neighbors))]
		if g.IsUnlinked(next) {
			g.Link(current, next, true)
			unvisited--
		}
		current = next
	}
	return g
}
