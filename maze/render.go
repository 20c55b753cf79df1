package maze

import (
	"strconv"
	"strings"
)

// Sides flags which walls of a cell are open. A side is open only when a
// passage exists; boundary sides are always walled.
type Sides struct {
	North bool `json:"north"`
	East  bool `json:"east"`
	South bool `json:"south"`
	West  bool `json:"west"`
}

// CellView is the renderer-facing state of one cell.
type CellView struct {
	Location Location `json:"location"`
	Open     Sides    `json:"open"`
	Distance int      `json:"distance"`
}

// Snapshot is a copy of the grid that renderers can consume without
// holding on to the grid itself.
type Snapshot struct {
	Rows        int        `json:"rows"`
	Cols        int        `json:"cols"`
	Solved      bool       `json:"solved"`
	Origin      Location   `json:"origin"`
	MaxDistance int        `json:"max_distance"`
	Cells       []CellView `json:"cells"`
}

// Snapshot returns the open sides and distance of every cell in row-major
// order.
func (g *Grid) Snapshot() Snapshot {
	s := Snapshot{
		Rows:        g.rows,
		Cols:        g.cols,
		Solved:      g.solved,
		Origin:      g.origin,
		MaxDistance: g.maxDistance,
		Cells:       make([]CellView, 0, len(g.cells)),
	}
	g.Each(func(c *Cell) {
		s.Cells = append(s.Cells, CellView{
			Location: c.location,
			Open: Sides{
				North: c.IsLinkedTo(North),
				East:  c.IsLinkedTo(East),
				South: c.IsLinkedTo(South),
				West:  c.IsLinkedTo(West),
			},
			Distance: c.distance,
		})
	})
	return s
}

// String provides a textual representation of the maze.
func (g *Grid) String() string {
	return g.render(func(*Cell) string { return "   " })
}

// DistanceString renders the maze like String, with each cell body showing
// its distance in base 36. Unsolved grids and unreached cells render blank.
func (g *Grid) DistanceString() string {
	return g.render(func(c *Cell) string {
		if !g.Reached(c.location) {
			return "   "
		}
		d := strconv.FormatInt(int64(c.distance), 36)
		if len(d) > 3 {
			d = d[len(d)-3:]
		}
		return padCenter(d, 3)
	})
}

func (g *Grid) render(body func(*Cell) string) string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+" + strings.Repeat("---+", g.cols) + "\n")

	for row := 0; row < g.rows; row++ {
		cellRow := "|"
		wallRow := "+"
		for col := 0; col < g.cols; col++ {
			c := g.at(Location{Row: row, Col: col})

			cellRow += body(c)
			if c.IsLinkedTo(East) {
				cellRow += " "
			} else {
				cellRow += "|"
			}

			if c.IsLinkedTo(South) {
				wallRow += "   +"
			} else {
				wallRow += "---+"
			}
		}
		output.WriteString(cellRow + "\n")
		output.WriteString(wallRow + "\n")
	}

	return output.String()
}

func padCenter(s string, width int) string {
	gap := width - len(s)
	left := gap / 2
	if gap%2 == 1 {
		left++
	}
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
