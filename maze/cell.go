package maze

import "github.com/zyedidia/generic/mapset"

// Cell is one grid position. It is owned by its Grid and is read-only
// outside this package; links are added only through Grid.Link.
type Cell struct {
	location  Location
	neighbors [4]*Location
	links     mapset.Set[Location]
	distance  int
}

func newCell(loc Location) Cell {
	return Cell{
		location: loc,
		links:    mapset.New[Location](),
	}
}

// Location returns the cell's position.
func (c *Cell) Location() Location {
	return c.location
}

// Neighbor returns the structural neighbor on side d. The boolean is false
// when the cell sits on that boundary.
func (c *Cell) Neighbor(d Direction) (Location, bool) {
	n := c.neighbors[d]
	if n == nil {
		return Location{}, false
	}
	return *n, true
}

// Neighbors returns the up-to-four structural neighbors in North, East,
// South, West order.
func (c *Cell) Neighbors() []Location {
	result := make([]Location, 0, 4)
	for _, d := range Directions {
		if n, ok := c.Neighbor(d); ok {
			result = append(result, n)
		}
	}
	return result
}

// Links returns the locations this cell has a passage to, in North, East,
// South, West order.
func (c *Cell) Links() []Location {
	result := make([]Location, 0, c.links.Size())
	for _, d := range Directions {
		if n, ok := c.Neighbor(d); ok && c.links.Has(n) {
			result = append(result, n)
		}
	}
	return result
}

// HasLink reports whether the cell has a passage to loc.
func (c *Cell) HasLink(loc Location) bool {
	return c.links.Has(loc)
}

// IsLinked reports whether the cell has at least one passage.
func (c *Cell) IsLinked() bool {
	return c.links.Size() > 0
}

// IsUnlinked reports whether the cell has no passages.
func (c *Cell) IsUnlinked() bool {
	return c.links.Size() == 0
}

// IsLinkedTo reports whether the wall on side d is absent. Boundary sides
// are never linked.
func (c *Cell) IsLinkedTo(d Direction) bool {
	n, ok := c.Neighbor(d)
	return ok && c.links.Has(n)
}

// Distance returns the hop count from the last solved origin. It is zero
// until the grid has been solved.
func (c *Cell) Distance() int {
	return c.distance
}

func (c *Cell) clone() Cell {
	cp := *c
	cp.links = mapset.New[Location]()
	c.links.Each(func(l Location) {
		cp.links.Put(l)
	})
	return cp
}
