package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args. Flag variables outlive a
// single Execute, so every flag is reset first.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	genRows, genCols, genAlgorithm, genSeed = 10, 10, "binary_tree", 0
	genSolve, genOriginRow, genOriginCol, genJSON, genVerbose = false, 0, 0, false, false

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGenerateCommand(t *testing.T) {
	t.Run("Prints the ASCII dump", func(t *testing.T) {
		out, err := run(t, "generate", "-r", "3", "-c", "4", "-a", "sidewinder", "-s", "7")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		require.Len(t, lines, 7)
		assert.Equal(t, "+---+---+---+---+", lines[0])
		for _, line := range lines {
			assert.Len(t, line, 17)
		}
	})

	t.Run("Same seed prints the same maze", func(t *testing.T) {
		first, err := run(t, "generate", "-r", "6", "-c", "6", "-a", "aldous_broder", "-s", "99")
		require.NoError(t, err)
		second, err := run(t, "generate", "-r", "6", "-c", "6", "-a", "aldous_broder", "-s", "99")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("Solved output shows the origin", func(t *testing.T) {
		out, err := run(t, "generate", "-r", "1", "-c", "3", "--solve", "--origin-col", "1")
		require.NoError(t, err)
		assert.Equal(t, "+---+---+---+\n| 1   0   1 |\n+---+---+---+\n", out)
	})

	t.Run("JSON snapshot", func(t *testing.T) {
		out, err := run(t, "generate", "-r", "2", "-c", "5", "--json", "--solve", "-a", "hunt_and_kill", "-s", "3")
		require.NoError(t, err)

		var snap maze.Snapshot
		require.NoError(t, json.Unmarshal([]byte(out), &snap))
		assert.Equal(t, 2, snap.Rows)
		assert.Equal(t, 5, snap.Cols)
		assert.True(t, snap.Solved)
		assert.Len(t, snap.Cells, 10)
	})

	t.Run("Rejects invalid input", func(t *testing.T) {
		_, err := run(t, "generate", "-a", "kruskal")
		assert.Error(t, err)
		_, err = run(t, "generate", "-r", "0")
		assert.Error(t, err)
		_, err = run(t, "generate", "-r", "2", "-c", "2", "--solve", "--origin-row", "5")
		assert.Error(t, err)
	})
}

func TestAlgorithmsCommand(t *testing.T) {
	out, err := run(t, "algorithms")
	require.NoError(t, err)
	assert.Equal(t, "binary_tree\nsidewinder\naldous_broder\nhunt_and_kill\n", out)
}
