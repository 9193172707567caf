package trail_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilegrid/trail"
)

func TestParseTile(t *testing.T) {
	for r := '0'; r <= '9'; r++ {
		tile, err := trail.ParseTile(r)
		require.NoError(t, err)
		assert.Equal(t, int(r-'0'), tile.Elevation())
		assert.Equal(t, string(r), tile.String())
	}

	for _, r := range []rune{'.', 'a', '-', ' ', '٣'} {
		_, err := trail.ParseTile(r)
		assert.ErrorIs(t, err, trail.ErrInvalidElevation, "rune %q", r)
	}
}

func TestTile_Variants(t *testing.T) {
	start, _ := trail.ParseTile('0')
	end, _ := trail.ParseTile('9')
	mid, _ := trail.ParseTile('4')

	assert.Equal(t, trail.KindStart, start.Kind())
	assert.Equal(t, trail.KindEnd, end.Kind())
	assert.Equal(t, trail.KindPath, mid.Kind())
	assert.Equal(t, trail.Start(), start)
	assert.Equal(t, trail.End(), end)
	assert.Equal(t, trail.Path(4), mid)
	assert.Equal(t, trail.Start(), trail.Tile{}, "zero value is Start")
	assert.Equal(t, "Path", trail.KindPath.String())
}

func TestPath_PanicsOutsideRange(t *testing.T) {
	assert.Panics(t, func() { trail.Path(0) })
	assert.Panics(t, func() { trail.Path(9) })
	assert.NotPanics(t, func() { trail.Path(8) })
}

func TestFromElevation(t *testing.T) {
	_, err := trail.FromElevation(10)
	assert.ErrorIs(t, err, trail.ErrInvalidElevation)
	_, err = trail.FromElevation(-1)
	assert.ErrorIs(t, err, trail.ErrInvalidElevation)

	tile, err := trail.FromElevation(9)
	require.NoError(t, err)
	assert.Equal(t, trail.KindEnd, tile.Kind())
}

func TestTile_GradientAndOrdering(t *testing.T) {
	low := trail.Path(3)
	high := trail.Path(4)

	assert.Equal(t, 1, low.Gradient(high))
	assert.Equal(t, -1, high.Gradient(low))
	assert.Equal(t, 9, trail.Start().Gradient(trail.End()))

	assert.Equal(t, -1, low.Compare(high))
	assert.Equal(t, 1, trail.End().Compare(high))
	assert.Equal(t, 0, high.Compare(trail.Path(4)))
	assert.True(t, high.Equal(trail.Path(4)))
	assert.False(t, high.Equal(low))
}
