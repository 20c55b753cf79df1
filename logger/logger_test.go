package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("Prefixes component and fields", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("MAZE", "", &buf)
		require.NoError(t, err)

		l.WithFields(logrus.Fields{"rows": 3}).Info("generated")

		out := buf.String()
		assert.Contains(t, out, "[MAZE]")
		assert.Contains(t, out, "generated")
		assert.Contains(t, out, "rows=3")
	})

	t.Run("Respects level", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("MAZE", "", &buf)
		require.NoError(t, err)
		require.NoError(t, l.SetLevel("error"))

		l.Info("hidden")
		l.Error("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("Rejects bad input", func(t *testing.T) {
		_, err := New("", "", &bytes.Buffer{})
		assert.Error(t, err)
		_, err = New("APP", "", nil)
		assert.Error(t, err)

		l, err := New("APP", "", &bytes.Buffer{})
		require.NoError(t, err)
		assert.Error(t, l.SetLevel("loud"))
	})
}
