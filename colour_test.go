package skincfg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/skincfg"
)

func TestParseColour(t *testing.T) {
	t.Run("Byte Triplet", func(t *testing.T) {
		c, err := skincfg.ParseColour("255,192,0")
		require.NoError(t, err)
		assert.Equal(t, skincfg.RGB(255, 192, 0), c)
		assert.Equal(t, 1.0, c.Alpha)
	})

	t.Run("Byte Quad With Alpha", func(t *testing.T) {
		c, err := skincfg.ParseColour("0, 202, 0, 127")
		require.NoError(t, err)
		assert.Equal(t, skincfg.RGBA(0, 202, 0, 127), c)
		assert.InDelta(t, 0.498, c.Alpha, 0.001)
	})

	t.Run("Hex", func(t *testing.T) {
		c, err := skincfg.ParseColour("#ff0000")
		require.NoError(t, err)
		assert.Equal(t, 1.0, c.R)
		assert.Equal(t, 0.0, c.G)
		assert.Equal(t, 1.0, c.Alpha)
	})

	t.Run("Rejects Out Of Range Component", func(t *testing.T) {
		_, err := skincfg.ParseColour("256,0,0")
		assert.Error(t, err)
	})

	t.Run("Rejects Wrong Arity", func(t *testing.T) {
		_, err := skincfg.ParseColour("255,0")
		assert.Error(t, err)
	})

	t.Run("Rejects Empty", func(t *testing.T) {
		_, err := skincfg.ParseColour("  ")
		assert.Error(t, err)
	})
}

func TestDefaultComboColours(t *testing.T) {
	palette := skincfg.DefaultComboColours()
	require.Len(t, palette, 4)

	// Each call hands out a fresh slice; mutating one must not leak into the
	// built-in palette.
	palette[0] = skincfg.RGB(0, 0, 0)
	assert.Equal(t, skincfg.RGB(255, 192, 0), skincfg.DefaultComboColours()[0])
}
