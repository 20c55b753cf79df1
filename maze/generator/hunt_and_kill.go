package generator

import (
	"math/rand"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// GenerateHuntAndKill random-walks from a random cell, always stepping into
// an unvisited neighbor and linking to it. When the walk is boxed in, the
// hunt scans the grid in row-major order for the first unvisited cell next
// to a visited one, links the two and resumes walking from there. The maze
// is done when a hunt finds nothing.
func GenerateHuntAndKill(g *maze.Grid, rng *rand.Rand) *maze.Grid {
	current := randomLocation(g, rng)

	for {
		unvisited := filter(g.NeighborsOf(current), g.IsUnlinked)
		if len(unvisited) > 0 {
			next := unvisited[rng.Intn(len(unvisited))]
			g.Link(current, next, true)
			current = next
			continue
		}

		next, ok := hunt(g, rng)
		if !ok {
			return g
		}
		current = next
	}
}

// hunt links the first unvisited cell that borders the visited region to a
// random visited neighbor and returns it.
func hunt(g *maze.Grid, rng *rand.Rand) (maze.Location, bool) {
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			loc := maze.Location{Row: row, Col: col}
			if g.IsLinked(loc) {
				continue
			}
			visited := filter(g.NeighborsOf(loc), g.IsLinked)
			if len(visited) == 0 {
				continue
			}
			g.Link(loc, visited[rng.Intn(len(visited))], true)
			return loc, true
		}
	}
	return maze.Location{}, false
}
