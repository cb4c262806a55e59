/*
Package layout generates tile layouts for a maze.

Wilson lays a perfect maze (a uniform spanning tree) over a grid of tile slots
using loop-erased random walks, then turns every slot into a 3x3 tile whose
path runs from the center to each open side.
*/
package layout

import (
	"errors"
	"math/rand"
	"strings"

	"github.com/beka-birhanu/vinom-tiles/tile"
)

const (
	tileExtent = 3
)

var (
	ErrInvalidDimensions = errors.New("invalid layout dimensions")
)

// slot is a tile position in the layout grid, counted in tiles.
type slot struct {
	col int
	row int
}

var steps = map[tile.Direction]slot{
	tile.Top:    {col: 0, row: -1},
	tile.Bottom: {col: 0, row: 1},
	tile.Right:  {col: 1, row: 0},
	tile.Left:   {col: -1, row: 0},
}

// Wilson is a spanning tree over cols x rows tile slots.
type Wilson struct {
	cols  int
	rows  int
	open  [][]uint8 // Bitmask of open sides per slot, indexed [row][col]
	start slot
	rng   *rand.Rand
}

// NewWilson generates a layout of cols x rows tile slots.
func NewWilson(cols, rows int, rng *rand.Rand) (*Wilson, error) {
	if min(cols, rows) <= 0 {
		return nil, ErrInvalidDimensions
	}

	open := make([][]uint8, rows)
	for r := range open {
		open[r] = make([]uint8, cols)
	}

	w := &Wilson{
		cols: cols,
		rows: rows,
		open: open,
		rng:  rng,
	}
	w.generate()
	return w, nil
}

// Open reports whether the slot at col, row has a passage on side d.
func (w *Wilson) Open(col, row int, d tile.Direction) bool {
	if !w.inBound(slot{col: col, row: row}) {
		return false
	}
	return w.open[row][col]&bit(d) != 0
}

// Tiles returns one 3x3 tile per slot, positioned in maze cells, ordered so
// that every tile after the first touches an earlier tile it connects to.
func (w *Wilson) Tiles() []*tile.Tile {
	tiles := make([]*tile.Tile, 0, w.cols*w.rows)
	seen := map[slot]struct{}{w.start: {}}
	queue := []slot{w.start}

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		tiles = append(tiles, w.tile(s))

		for _, d := range tile.Directions() {
			if w.open[s.row][s.col]&bit(d) == 0 {
				continue
			}
			next := s.step(d)
			if _, ok := seen[next]; !ok {
				seen[next] = struct{}{}
				queue = append(queue, next)
			}
		}
	}

	return tiles
}

// tile builds the 3x3 tile for slot s: a path from the center to every open
// side.
func (w *Wilson) tile(s slot) *tile.Tile {
	fields := []tile.Field{
		tile.Ground, tile.Ground, tile.Ground,
		tile.Ground, tile.Path, tile.Ground,
		tile.Ground, tile.Ground, tile.Ground,
	}
	exits := map[tile.Direction]int{tile.Top: 1, tile.Left: 3, tile.Right: 5, tile.Bottom: 7}
	for d, idx := range exits {
		if w.open[s.row][s.col]&bit(d) != 0 {
			fields[idx] = tile.Path
		}
	}

	return &tile.Tile{
		Position: tile.NewPosition(uint32(s.col*tileExtent), uint32(s.row*tileExtent)),
		Size:     tile.NewSize(tileExtent, tileExtent),
		Fields:   fields,
	}
}

// generate runs Wilson's algorithm: starting from one slot in the tree, every
// slot outside it performs a loop-erased random walk until it hits the tree,
// and the walk's path is carved into it.
func (w *Wilson) generate() {
	inTree := make(map[slot]struct{})
	w.start = w.randomSlot()
	inTree[w.start] = struct{}{}

	for len(inTree) < w.cols*w.rows {
		walkStart := w.randomSlotOutside(inTree)
		exits := w.randomWalk(walkStart, inTree)

		// Follow the last exit taken from each slot, which erases loops.
		for s := walkStart; ; {
			inTree[s] = struct{}{}
			d := exits[s]
			w.openWall(s, d)
			s = s.step(d)
			if _, ok := inTree[s]; ok {
				break
			}
		}
	}
}

// randomWalk walks from start until it reaches a slot in the tree and returns
// the last direction taken out of every slot visited.
func (w *Wilson) randomWalk(start slot, inTree map[slot]struct{}) map[slot]tile.Direction {
	exits := make(map[slot]tile.Direction)
	for s := start; ; {
		moves := w.moves(s)
		d := moves[w.rng.Intn(len(moves))]
		exits[s] = d
		s = s.step(d)
		if _, ok := inTree[s]; ok {
			return exits
		}
	}
}

// moves lists the directions leading from s to a slot inside the grid, in a
// fixed order so a seeded generator is reproducible.
func (w *Wilson) moves(s slot) []tile.Direction {
	var result []tile.Direction
	for _, d := range tile.Directions() {
		if w.inBound(s.step(d)) {
			result = append(result, d)
		}
	}
	return result
}

// openWall carves a passage between s and its neighbour in direction d.
func (w *Wilson) openWall(s slot, d tile.Direction) {
	next := s.step(d)
	w.open[s.row][s.col] |= bit(d)
	w.open[next.row][next.col] |= bit(d.Opposite())
}

func (w *Wilson) randomSlot() slot {
	return slot{col: w.rng.Intn(w.cols), row: w.rng.Intn(w.rows)}
}

func (w *Wilson) randomSlotOutside(inTree map[slot]struct{}) slot {
	for {
		s := w.randomSlot()
		if _, included := inTree[s]; !included {
			return s
		}
	}
}

func (w *Wilson) inBound(s slot) bool {
	return s.row >= 0 && s.row < w.rows && s.col >= 0 && s.col < w.cols
}

func (s slot) step(d tile.Direction) slot {
	delta := steps[d]
	return slot{col: s.col + delta.col, row: s.row + delta.row}
}

func bit(d tile.Direction) uint8 {
	return 1 << d
}

// String provides a textual representation of the layout.
func (w *Wilson) String() string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+" + strings.Repeat("---+", w.cols) + "\n")

	for row := 0; row < w.rows; row++ {
		cellRow := "|"
		wallRow := "+"
		for col := 0; col < w.cols; col++ {
			if w.Open(col, row, tile.Right) {
				cellRow += "    "
			} else {
				cellRow += "   |"
			}

			if w.Open(col, row, tile.Bottom) {
				wallRow += "   +"
			} else {
				wallRow += "---+"
			}
		}
		output.WriteString(cellRow + "\n")
		output.WriteString(wallRow + "\n")
	}

	return output.String()
}
