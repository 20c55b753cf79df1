package maze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const referenceText = `+---+---+---+---+
|               |
+---+---+---+   +
|               |
+   +---+   +   +
|       |   |   |
+   +   +---+---+
|   |           |
+---+---+---+---+
`

func TestString(t *testing.T) {
	t.Run("Reference maze", func(t *testing.T) {
		assert.Equal(t, referenceText, Reference().String())
	})

	t.Run("Unlinked grid is fully walled", func(t *testing.T) {
		g, err := New(1, 2)
		require.NoError(t, err)
		assert.Equal(t, "+---+---+\n|   |   |\n+---+---+\n", g.String())
	})
}

// wallsFromText recovers the east and south open flags of every cell from
// an ASCII dump.
func wallsFromText(t *testing.T, text string, rows, cols int) (east, south [][]bool) {
	t.Helper()
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	require.Len(t, lines, 2*rows+1)

	east = make([][]bool, rows)
	south = make([][]bool, rows)
	for row := 0; row < rows; row++ {
		wall, floor := lines[1+2*row], lines[2+2*row]
		require.Len(t, wall, 4*cols+1)
		require.Len(t, floor, 4*cols+1)
		east[row] = make([]bool, cols)
		south[row] = make([]bool, cols)
		for col := 0; col < cols; col++ {
			east[row][col] = wall[4*col+4] == ' '
			south[row][col] = floor[4*col+1:4*col+4] == "   "
		}
	}
	return east, south
}

func TestStringRoundTrip(t *testing.T) {
	g := Reference()
	east, south := wallsFromText(t, g.String(), g.Rows(), g.Cols())

	for _, cv := range g.Snapshot().Cells {
		l := cv.Location
		assert.Equal(t, cv.Open.East, east[l.Row][l.Col], "east of %v", l)
		assert.Equal(t, cv.Open.South, south[l.Row][l.Col], "south of %v", l)
		if l.Col > 0 {
			assert.Equal(t, cv.Open.West, east[l.Row][l.Col-1], "west of %v", l)
		}
		if l.Row > 0 {
			assert.Equal(t, cv.Open.North, south[l.Row-1][l.Col], "north of %v", l)
		}
	}
}

func TestDistanceString(t *testing.T) {
	g := Reference()
	assert.Equal(t, g.String(), g.DistanceString())

	require.NoError(t, g.Solve(Location{Row: 0, Col: 0}))
	lines := strings.Split(g.DistanceString(), "\n")
	assert.Equal(t, "| 0   1   2   3 |", lines[1])
	assert.Equal(t, "| 9 | a   b   c |", lines[7])
}

func TestSnapshot(t *testing.T) {
	g := Reference()
	require.NoError(t, g.Solve(Location{Row: 0, Col: 0}))
	s := g.Snapshot()

	assert.Equal(t, 4, s.Rows)
	assert.Equal(t, 4, s.Cols)
	assert.True(t, s.Solved)
	assert.Equal(t, 12, s.MaxDistance)
	require.Len(t, s.Cells, 16)

	first := s.Cells[0]
	assert.Equal(t, Sides{East: true}, first.Open)
	corner := s.Cells[3]
	assert.Equal(t, Location{Row: 0, Col: 3}, corner.Location)
	assert.Equal(t, Sides{South: true, West: true}, corner.Open)
	assert.Equal(t, 12, s.Cells[15].Distance)
}
