package generator

import (
	"math/rand"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// GenerateBinaryTree links every cell either east or north, visiting cells
// in row-major order. The top row can only go east and the rightmost column
// only north; the north-east corner is the root and adds no link. The
// result always has an unbroken corridor along the top row and the right
// column.
func GenerateBinaryTree(g *maze.Grid, rng *rand.Rand) *maze.Grid {
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			loc := maze.Location{Row: row, Col: col}
			north, hasNorth := g.NeighborOf(loc, maze.North)
			east, hasEast := g.NeighborOf(loc, maze.East)

			switch {
			case !hasNorth && !hasEast:
				continue
			case !hasNorth:
				g.Link(loc, east, true)
			case !hasEast:
				g.Link(loc, north, true)
			case rng.Intn(2) == 0:
				g.Link(loc, east, true)
			default:
				g.Link(loc, north, true)
			}
		}
	}
	return g
}
