package maze

import (
	"fmt"

	"github.com/spakin/disjoint"
)

// Verify checks that the links form a perfect maze: every link joins
// structural neighbors and is mirrored on the other cell, and the passages
// connect all cells without a cycle. The first violation found is returned
// wrapped in ErrNotPerfect.
func (g *Grid) Verify() error {
	sets := make([]*disjoint.Element, len(g.cells))
	for i := range sets {
		sets[i] = disjoint.NewElement()
	}

	passages := 0
	for i := range g.cells {
		c := &g.cells[i]
		var err error
		c.links.Each(func(l Location) {
			if err != nil {
				return
			}
			if !g.InBounds(l) || !adjacent(c.location, l) {
				err = fmt.Errorf("%w: %v linked to non-neighbor %v", ErrNotPerfect, c.location, l)
				return
			}
			if !g.at(l).links.Has(c.location) {
				err = fmt.Errorf("%w: link %v->%v is one-way", ErrNotPerfect, c.location, l)
			}
		})
		if err != nil {
			return err
		}

		// East and south links visit each passage exactly once.
		for _, d := range [...]Direction{East, South} {
			if !c.IsLinkedTo(d) {
				continue
			}
			n, _ := c.Neighbor(d)
			a, b := sets[i], sets[g.index(n)]
			if a.Find() == b.Find() {
				return fmt.Errorf("%w: cycle closed by %v-%v", ErrNotPerfect, c.location, n)
			}
			disjoint.Union(a, b)
			passages++
		}
	}

	if passages != g.Size()-1 {
		return fmt.Errorf("%w: %d passages for %d cells", ErrNotPerfect, passages, g.Size())
	}
	return nil
}
