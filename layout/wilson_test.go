package layout

import (
	"context"
	"math/rand"
	"testing"

	"github.com/beka-birhanu/vinom-tiles/maze"
	"github.com/beka-birhanu/vinom-tiles/service"
	"github.com/beka-birhanu/vinom-tiles/tile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWilson(t *testing.T, cols, rows int, seed int64) *Wilson {
	t.Helper()
	w, err := NewWilson(cols, rows, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return w
}

func TestNewWilson(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
		wantErr    error
	}{
		{name: "Zero columns", cols: 0, rows: 3, wantErr: ErrInvalidDimensions},
		{name: "Negative rows", cols: 3, rows: -1, wantErr: ErrInvalidDimensions},
		{name: "Single slot", cols: 1, rows: 1},
		{name: "Rectangle", cols: 5, rows: 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, err := NewWilson(tc.cols, tc.rows, rand.New(rand.NewSource(1)))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, w)
				return
			}
			require.NoError(t, err)
			assert.Len(t, w.Tiles(), tc.cols*tc.rows)
		})
	}
}

func TestWilsonSpanningTree(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 2024} {
		w := newTestWilson(t, 6, 4, seed)

		passages := 0
		for row := 0; row < w.rows; row++ {
			for col := 0; col < w.cols; col++ {
				assert.NotZero(t, w.open[row][col], "slot (%d,%d) is sealed", col, row)
				for _, d := range tile.Directions() {
					if !w.Open(col, row, d) {
						continue
					}
					next := slot{col: col, row: row}.step(d)
					require.True(t, w.inBound(next), "passage leaves the grid at (%d,%d)", col, row)
					assert.True(t, w.Open(next.col, next.row, d.Opposite()), "one way passage at (%d,%d)", col, row)
					passages++
				}
			}
		}

		// Each passage is counted from both ends; a tree has one fewer edge
		// than it has slots.
		assert.Equal(t, 2*(w.cols*w.rows-1), passages, "seed %d", seed)
	}
}

func TestWilsonDeterministic(t *testing.T) {
	a := newTestWilson(t, 5, 5, 99)
	b := newTestWilson(t, 5, 5, 99)
	assert.Equal(t, a.String(), b.String())
}

func TestWilsonTiles(t *testing.T) {
	w := newTestWilson(t, 3, 3, 5)
	tiles := w.Tiles()
	require.Len(t, tiles, 9)

	t.Run("Covers every slot once", func(t *testing.T) {
		seen := make(map[tile.Position]struct{})
		for _, tl := range tiles {
			assert.Equal(t, uint32(0), tl.Position.X%tileExtent)
			assert.Equal(t, uint32(0), tl.Position.Y%tileExtent)
			seen[tl.Position] = struct{}{}
		}
		assert.Len(t, seen, 9)
	})

	t.Run("Fields follow the openings", func(t *testing.T) {
		for _, tl := range tiles {
			field := func(x, y uint32) tile.Field {
				f, ok := tl.Field(x, y)
				require.True(t, ok)
				return f
			}

			col, row := int(tl.Position.X/tileExtent), int(tl.Position.Y/tileExtent)
			assert.Equal(t, tile.Path, field(1, 1))
			assert.Equal(t, tile.Ground, field(0, 0))
			assert.Equal(t, w.Open(col, row, tile.Top), field(1, 0) == tile.Path)
			assert.Equal(t, w.Open(col, row, tile.Left), field(0, 1) == tile.Path)
			assert.Equal(t, w.Open(col, row, tile.Right), field(2, 1) == tile.Path)
			assert.Equal(t, w.Open(col, row, tile.Bottom), field(1, 2) == tile.Path)
		}
	})

	t.Run("Assembles in strict mode", func(t *testing.T) {
		m := maze.New(9, 9)
		a, err := service.NewAssembler(&service.AssemblerConfig{Compositor: m, Strict: true})
		require.NoError(t, err)

		placements := make([]service.Placement, 0, len(tiles))
		for _, tl := range tiles {
			placements = append(placements, service.Placement{Tile: tl})
		}

		path, err := a.Build(context.Background(), placements)
		require.NoError(t, err)
		assert.Len(t, path, 81)
		assert.Equal(t, 9, m.Len())

		for _, tl := range m.Tiles() {
			assert.NotEmpty(t, m.WalkableNeighbours(tl.Position), "tile at %s", tl.Position)
		}
	})
}

func TestWilsonString(t *testing.T) {
	w := newTestWilson(t, 1, 2, 3)

	want := "" +
		"+---+\n" +
		"|   |\n" +
		"+   +\n" +
		"|   |\n" +
		"+---+\n"
	assert.Equal(t, want, w.String())
}
