package maze

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Solve labels every cell reachable from origin with its hop count along
// the links. The traversal expands one frontier per round: every cell in
// the frontier gets the current distance, then the next frontier is the
// set of their links not yet visited.
//
// Solve never adds or removes links and may be rerun. Cells that cannot be
// reached keep their previous distance.
func (g *Grid) Solve(origin Location) error {
	if !g.InBounds(origin) {
		return fmt.Errorf("%w: origin %v", ErrInvalidOrigin, origin)
	}

	reached := make([]bool, len(g.cells))
	visited := mapset.New[Location]()
	visited.Put(origin)
	frontier := []Location{origin}
	distance, maxDistance := 0, 0

	for len(frontier) > 0 {
		var next []Location
		for _, loc := range frontier {
			c := g.at(loc)
			c.distance = distance
			reached[g.index(loc)] = true
			for _, l := range c.Links() {
				if visited.Has(l) {
					continue
				}
				visited.Put(l)
				next = append(next, l)
			}
		}
		maxDistance = distance
		frontier = next
		distance++
	}

	g.solved = true
	g.origin = origin
	g.maxDistance = maxDistance
	g.reached = reached
	return nil
}

// Solved reports whether Solve has run on the grid.
func (g *Grid) Solved() bool {
	return g.solved
}

// Origin returns the location of the last Solve.
func (g *Grid) Origin() Location {
	return g.origin
}

// MaxDistance returns the greatest distance assigned by the last Solve.
func (g *Grid) MaxDistance() int {
	return g.maxDistance
}

// Reached reports whether the last Solve reached loc.
func (g *Grid) Reached(loc Location) bool {
	return g.solved && g.InBounds(loc) && g.reached[g.index(loc)]
}

// PathTo returns the cells from the solved origin to target, both
// included, by descending the distance labels along the links.
func (g *Grid) PathTo(target Location) ([]Location, error) {
	if !g.solved {
		return nil, ErrNotSolved
	}
	if !g.InBounds(target) {
		return nil, fmt.Errorf("%w: target %v", ErrInvalidOrigin, target)
	}
	if !g.Reached(target) {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, target)
	}

	path := []Location{target}
	current := target
	for current != g.origin {
		c := g.at(current)
		stepped := false
		for _, l := range c.Links() {
			if g.Reached(l) && g.at(l).distance == c.distance-1 {
				current = l
				stepped = true
				break
			}
		}
		if !stepped {
			return nil, fmt.Errorf("%w: stuck at %v", ErrUnreachable, current)
		}
		path = append(path, current)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
