package maze

import "fmt"

// Location identifies a cell by row and column. It is the only handle
// used for neighbors and links; cells never point at each other.
type Location struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String formats the location as "(row,col)".
func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.Row, l.Col)
}

// Step returns the location one cell away in the given direction.
// The result may be out of bounds.
func (l Location) Step(d Direction) Location {
	delta := offsets[d]
	return Location{Row: l.Row + delta.Row, Col: l.Col + delta.Col}
}

// adjacent reports whether a and b differ by exactly one row or one column.
func adjacent(a, b Location) bool {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	return dr*dr+dc*dc == 1
}

// Direction is one of the four sides of a cell.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the four sides in the fixed order used for every
// neighbor enumeration, so random picks are reproducible for a given seed.
var Directions = [...]Direction{North, East, South, West}

var offsets = [...]Location{
	North: {Row: -1, Col: 0},
	East:  {Row: 0, Col: 1},
	South: {Row: 1, Col: 0},
	West:  {Row: 0, Col: -1},
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Opposite returns the side facing d.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}
