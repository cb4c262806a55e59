package tile

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSize(t *testing.T) {
	t.Run("Len", func(t *testing.T) {
		for _, s := range []Size{NewSize(9, 5), NewSize(3, 3), NewSize(1, 7), NewSize(0, 4)} {
			assert.Equal(t, int(s.Width*s.Height), s.Len())
		}
	})

	t.Run("IsEmpty", func(t *testing.T) {
		assert.True(t, NewSize(0, 0).IsEmpty())
		assert.True(t, NewSize(1, 0).IsEmpty())
		assert.True(t, NewSize(0, 1).IsEmpty())
		assert.False(t, NewSize(1, 1).IsEmpty())
	})

	t.Run("Contains", func(t *testing.T) {
		s := NewSize(6, 4)
		assert.True(t, s.Contains(NewPosition(0, 0)))
		assert.True(t, s.Contains(NewPosition(5, 3)))
		assert.False(t, s.Contains(NewPosition(6, 0)))
		assert.False(t, s.Contains(NewPosition(0, 4)))
	})

	t.Run("Index round trip", func(t *testing.T) {
		s := NewSize(10, 10)
		assert.Equal(t, 55, s.Index(NewPosition(5, 5)))
		assert.Equal(t, NewPosition(5, 5), s.PositionOf(55))
		assert.Equal(t, NewPosition(9, 2), s.PositionOf(29))
		assert.Equal(t, Position{}, NewSize(0, 3).PositionOf(2))
	})
}

func TestPositionAdd(t *testing.T) {
	a := NewPosition(2, 1)
	b := NewPosition(1, 3)
	assert.Equal(t, NewPosition(3, 4), a.Add(b))
	assert.Equal(t, a.Add(b), b.Add(a))
	assert.Equal(t, "(3,4)", a.Add(b).String())
}

func TestPositionCheckedAdd(t *testing.T) {
	got, ok := NewPosition(2, 1).CheckedAdd(NewPosition(1, 3))
	require.True(t, ok)
	assert.Equal(t, NewPosition(3, 4), got)

	got, ok = NewPosition(math.MaxUint32-1, 0).CheckedAdd(NewPosition(1, 0))
	require.True(t, ok)
	assert.Equal(t, NewPosition(math.MaxUint32, 0), got)

	_, ok = NewPosition(math.MaxUint32, 0).CheckedAdd(NewPosition(1, 0))
	assert.False(t, ok)
	_, ok = NewPosition(0, math.MaxUint32).CheckedAdd(NewPosition(0, 2))
	assert.False(t, ok)
}

func TestFieldValues(t *testing.T) {
	assert.True(t, Path.IsWalkable())
	assert.False(t, Ground.IsWalkable())
	assert.False(t, None.IsWalkable())

	assert.Equal(t, '.', Path.Rune())
	assert.Equal(t, '#', Ground.Rune())
	assert.Equal(t, ' ', None.Rune())
	assert.Equal(t, "Ground", Ground.String())
}

func TestDirection(t *testing.T) {
	for _, d := range Directions() {
		assert.Equal(t, d, d.Opposite().Opposite())
		assert.NotEqual(t, d, d.Opposite())
	}
	assert.Equal(t, NoDirection, NoDirection.Opposite())
	assert.Equal(t, []Direction{Top, Right, Bottom, Left}, Directions())
	assert.Equal(t, "None", NoDirection.String())
}
