package maze

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	t.Run("Reference maze is perfect", func(t *testing.T) {
		assert.NoError(t, Reference().Verify())
	})

	t.Run("Single cell is perfect", func(t *testing.T) {
		g, err := New(1, 1)
		require.NoError(t, err)
		assert.NoError(t, g.Verify())
	})

	t.Run("Disconnected", func(t *testing.T) {
		g, err := New(2, 2)
		require.NoError(t, err)
		g.Link(Location{Row: 0, Col: 0}, Location{Row: 0, Col: 1}, true)
		assert.True(t, errors.Is(g.Verify(), ErrNotPerfect))
	})

	t.Run("Cycle", func(t *testing.T) {
		g, err := New(2, 2)
		require.NoError(t, err)
		g.Link(Location{Row: 0, Col: 0}, Location{Row: 0, Col: 1}, true)
		g.Link(Location{Row: 0, Col: 1}, Location{Row: 1, Col: 1}, true)
		g.Link(Location{Row: 1, Col: 1}, Location{Row: 1, Col: 0}, true)
		g.Link(Location{Row: 1, Col: 0}, Location{Row: 0, Col: 0}, true)
		assert.True(t, errors.Is(g.Verify(), ErrNotPerfect))
	})

	t.Run("One way link", func(t *testing.T) {
		g, err := New(1, 2)
		require.NoError(t, err)
		g.Link(Location{Row: 0, Col: 0}, Location{Row: 0, Col: 1}, false)
		assert.True(t, errors.Is(g.Verify(), ErrNotPerfect))
	})
}
