package tile

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGroup(t *testing.T) {
	g, err := NewGroup(NewPosition(0, 1), NewSize(3, 3), verticalPath)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), g.Origin.X)
	assert.Equal(t, uint32(1), g.Origin.Y)
	assert.Equal(t, uint32(3), g.Size.Width)
	assert.Equal(t, uint32(3), g.Size.Height)

	_, err = NewGroup(NewPosition(0, 0), NewSize(2, 2), verticalPath)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestGroupRotate(t *testing.T) {
	g, err := NewGroup(NewPosition(0, 1), NewSize(3, 3), verticalPath)
	require.NoError(t, err)

	g.Rotate()
	assert.Equal(t, horizontalPath, g.Fields)
}

func TestGroupTiles(t *testing.T) {
	g, err := NewGroup(NewPosition(3, 3), NewSize(2, 2), []Field{Ground, Path, None, Path})
	require.NoError(t, err)

	tiles := g.Tiles()
	require.Len(t, tiles, 4)

	want := []struct {
		pos   Position
		field Field
	}{
		{NewPosition(3, 3), Ground},
		{NewPosition(4, 3), Path},
		{NewPosition(3, 4), None},
		{NewPosition(4, 4), Path},
	}
	for i, w := range want {
		assert.Equal(t, w.pos, tiles[i].Position)
		assert.Equal(t, NewSize(1, 1), tiles[i].Size)
		assert.Equal(t, []Field{w.field}, tiles[i].Fields)
	}

	t.Run("Overflowing fields are skipped", func(t *testing.T) {
		g, err := NewGroup(NewPosition(math.MaxUint32, 0), NewSize(2, 1), []Field{Path, Ground})
		require.NoError(t, err)

		tiles := g.Tiles()
		require.Len(t, tiles, 1)
		assert.Equal(t, NewPosition(math.MaxUint32, 0), tiles[0].Position)
		assert.Equal(t, []Field{Path}, tiles[0].Fields)
	})
}
