/*
Package maze provides the grid model for perfect mazes.

A Grid is a rows × columns arena of cells addressed by Location. Structural
adjacency (north, east, south, west) is computed once at construction; the
passages carved by a generator are recorded as links through Grid.Link, the
only mutation point, so a cell is never reachable through two owners at once.

Once generated, a grid can be solved from an origin to label every cell with
its breadth-first distance, rendered as an ASCII dump, or exported as a
Snapshot for renderers.
*/
package maze

import (
	"fmt"
)

// Grid is a rectangular collection of cells and the passages between them.
type Grid struct {
	rows  int
	cols  int
	cells []Cell

	solved      bool
	origin      Location
	maxDistance int
	reached     []bool
}

// New builds a rows × cols grid with adjacency configured and no links.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols)
	}

	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			g.cells[g.index(Location{Row: row, Col: col})] = newCell(Location{Row: row, Col: col})
		}
	}
	g.configureCells()

	return g, nil
}

// configureCells computes the structural neighbors of every cell.
func (g *Grid) configureCells() {
	for i := range g.cells {
		c := &g.cells[i]
		for _, d := range Directions {
			if n, ok := g.NeighborOf(c.location, d); ok {
				c.neighbors[d] = &n
			}
		}
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// Size returns the number of cells.
func (g *Grid) Size() int {
	return g.rows * g.cols
}

// InBounds reports whether loc lies within the grid.
func (g *Grid) InBounds(loc Location) bool {
	return loc.Row >= 0 && loc.Row < g.rows && loc.Col >= 0 && loc.Col < g.cols
}

// index maps loc to its row-major arena slot.
func (g *Grid) index(loc Location) int {
	return loc.Row*g.cols + loc.Col
}

// at returns the arena slot for loc. Indexing outside the grid is a defect
// in the caller, not a runtime condition.
func (g *Grid) at(loc Location) *Cell {
	if !g.InBounds(loc) {
		panic(fmt.Sprintf("maze: location %v outside %dx%d grid", loc, g.rows, g.cols))
	}
	return &g.cells[g.index(loc)]
}

// NeighborOf returns the location adjacent to loc on side d, or false at a
// boundary. It depends only on the grid bounds.
func (g *Grid) NeighborOf(loc Location, d Direction) (Location, bool) {
	n := loc.Step(d)
	if !g.InBounds(n) {
		return Location{}, false
	}
	return n, true
}

// NeighborsOf returns the structural neighbors of loc in North, East,
// South, West order.
func (g *Grid) NeighborsOf(loc Location) []Location {
	return g.at(loc).Neighbors()
}

// Cell returns a read-only view of the cell at loc. It panics if loc is out
// of bounds.
func (g *Grid) Cell(loc Location) *Cell {
	return g.at(loc)
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c *Cell)) {
	for i := range g.cells {
		fn(&g.cells[i])
	}
}

// Link records a passage from source to target and, when bidirectional,
// from target back to source. target must be a structural neighbor of
// source; a violation panics. The two cells are mutated one after the
// other through the arena, never through two live references.
func (g *Grid) Link(source, target Location, bidirectional bool) {
	if !g.InBounds(source) || !g.InBounds(target) || !adjacent(source, target) {
		panic(fmt.Sprintf("maze: cannot link %v to %v", source, target))
	}

	g.at(source).links.Put(target)
	if bidirectional {
		g.at(target).links.Put(source)
	}
}

// IsLinked reports whether the cell at loc has any passage.
func (g *Grid) IsLinked(loc Location) bool {
	return g.at(loc).IsLinked()
}

// IsUnlinked reports whether the cell at loc has no passage.
func (g *Grid) IsUnlinked(loc Location) bool {
	return g.at(loc).IsUnlinked()
}

// LinkCount returns the number of undirected passages, i.e. the sum of all
// link set sizes halved.
func (g *Grid) LinkCount() int {
	total := 0
	for i := range g.cells {
		total += g.cells[i].links.Size()
	}
	return total / 2
}

// Passage is an undirected link between two adjacent cells.
type Passage struct {
	From Location `json:"from"`
	To   Location `json:"to"`
}

// Passages lists every passage once, taken from each cell's east and south
// links in row-major order.
func (g *Grid) Passages() []Passage {
	var result []Passage
	for i := range g.cells {
		c := &g.cells[i]
		for _, d := range [...]Direction{East, South} {
			if c.IsLinkedTo(d) {
				n, _ := c.Neighbor(d)
				result = append(result, Passage{From: c.location, To: n})
			}
		}
	}
	return result
}

// FromPassages builds a rows × cols grid and links every passage
// bidirectionally. Unlike Link, bad input is reported as an error.
func FromPassages(rows, cols int, passages []Passage) (*Grid, error) {
	g, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for _, p := range passages {
		if !g.InBounds(p.From) || !g.InBounds(p.To) || !adjacent(p.From, p.To) {
			return nil, fmt.Errorf("%w: %v-%v", ErrInvalidPassage, p.From, p.To)
		}
		g.Link(p.From, p.To, true)
	}
	return g, nil
}

// Clone returns a deep copy of the grid, including links and distances.
func (g *Grid) Clone() *Grid {
	cp := &Grid{
		rows:        g.rows,
		cols:        g.cols,
		cells:       make([]Cell, len(g.cells)),
		solved:      g.solved,
		origin:      g.origin,
		maxDistance: g.maxDistance,
	}
	for i := range g.cells {
		cp.cells[i] = g.cells[i].clone()
	}
	if g.reached != nil {
		cp.reached = append([]bool(nil), g.reached...)
	}
	return cp
}
