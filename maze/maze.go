/*
Package maze composites placed tiles into one flat walkable-path grid.

A Maze holds tiles keyed by their position in maze cells. Path projects every
tile's local fields onto the maze-wide grid by offsetting each local coordinate
by the tile's position. Neighbours are resolved on demand through the position
map, so tiles never reference each other.
*/
package maze

import (
	"cmp"
	"slices"
	"strings"
	"sync"

	"github.com/beka-birhanu/vinom-tiles/service/i"
	"github.com/beka-birhanu/vinom-tiles/tile"
	"github.com/google/uuid"
)

var _ i.Compositor = &Maze{}

// Maze is a fixed size grid composed of placed tiles.
type Maze struct {
	ID           uuid.UUID                    // Identifier of the maze
	size         tile.Size                    // Extent of the maze in cells
	tileSize     uint32                       // Tile grid used by TileAtIndex
	tiles        map[tile.Position]*tile.Tile // Placed tiles indexed by position
	sync.RWMutex                              // Guards tiles
}

// New creates an empty maze of the given width and height in cells.
func New(width, height uint32, opts ...Option) *Maze {
	m := &Maze{
		ID:       uuid.New(),
		size:     tile.NewSize(width, height),
		tileSize: defaultTileSize,
		tiles:    make(map[tile.Position]*tile.Tile),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// GetID returns the identifier of the maze.
func (m *Maze) GetID() uuid.UUID {
	return m.ID
}

// Size returns the extent of the maze.
func (m *Maze) Size() tile.Size {
	return m.size
}

// TileSize returns the tile grid used by TileAtIndex.
func (m *Maze) TileSize() uint32 {
	return m.tileSize
}

// Len returns the number of placed tiles.
func (m *Maze) Len() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.tiles)
}

// AddTile stores a copy of t at t.Position, replacing any tile already there.
// A nil tile or one positioned outside the maze is dropped and false is
// returned.
func (m *Maze) AddTile(t *tile.Tile) bool {
	if t == nil || !m.size.Contains(t.Position) {
		return false
	}

	m.Lock()
	defer m.Unlock()
	m.tiles[t.Position] = t.Clone()
	return true
}

// AddTileGroup places one unit tile per field of g at g.Origin plus the
// field's local coordinate. Fields landing outside the maze are dropped.
func (m *Maze) AddTileGroup(g *tile.Group) {
	if g == nil {
		return
	}
	for _, t := range g.Tiles() {
		m.AddTile(t)
	}
}

// HasTile reports whether a tile is placed at p.
func (m *Maze) HasTile(p tile.Position) bool {
	m.RLock()
	defer m.RUnlock()
	_, ok := m.tiles[p]
	return ok
}

// TileAtPosition returns a copy of the tile placed at p.
func (m *Maze) TileAtPosition(p tile.Position) (*tile.Tile, bool) {
	m.RLock()
	defer m.RUnlock()
	t, ok := m.tiles[p]
	if !ok {
		return nil, false
	}
	return t.Clone(), true
}

// TileAtIndex returns a copy of the tile whose tile grid slot covers the cell
// at the flat index. The cell's column and row are snapped down to multiples
// of the tile size before the lookup.
func (m *Maze) TileAtIndex(index int) (*tile.Tile, bool) {
	if index < 0 || index >= m.size.Len() {
		return nil, false
	}

	cell := m.size.PositionOf(index)
	origin := tile.NewPosition(cell.X-cell.X%m.tileSize, cell.Y-cell.Y%m.tileSize)
	return m.TileAtPosition(origin)
}

// Tiles returns copies of all placed tiles in row-major order of position.
func (m *Maze) Tiles() []*tile.Tile {
	m.RLock()
	defer m.RUnlock()
	return m.sortedTiles(true)
}

// Path returns the flattened field grid of the maze. Cells no tile covers are
// tile.None. Tiles are drawn in row-major order of position, fields are
// clipped at the maze border, and None fields leave the cell below untouched.
func (m *Maze) Path() []tile.Field {
	m.RLock()
	defer m.RUnlock()
	return m.path()
}

func (m *Maze) path() []tile.Field {
	fields := make([]tile.Field, m.size.Len())
	for _, t := range m.sortedTiles(false) {
		for local, f := range t.Fields {
			if f == tile.None {
				continue
			}
			global := t.Position.Add(t.Size.PositionOf(local))
			if !m.size.Contains(global) {
				continue
			}
			fields[m.size.Index(global)] = f
		}
	}
	return fields
}

// FieldAtPosition returns the composited field at p.
func (m *Maze) FieldAtPosition(p tile.Position) (tile.Field, bool) {
	if !m.size.Contains(p) {
		return tile.None, false
	}
	return m.Path()[m.size.Index(p)], true
}

// Neighbours returns copies of the tiles touching the tile at p, keyed by the
// side they touch. Candidates sit one tile extent away in each direction.
func (m *Maze) Neighbours(p tile.Position) map[tile.Direction]*tile.Tile {
	m.RLock()
	defer m.RUnlock()

	self, ok := m.tiles[p]
	if !ok {
		return nil
	}

	neighbours := make(map[tile.Direction]*tile.Tile)
	for _, other := range m.candidates(self) {
		if d := self.NeighbourAt(other); d != tile.NoDirection {
			neighbours[d] = other.Clone()
		}
	}
	return neighbours
}

// WalkableNeighbours returns the sides on which the tile at p connects to a
// placed neighbour through at least one pair of walkable edge cells.
func (m *Maze) WalkableNeighbours(p tile.Position) []tile.Direction {
	m.RLock()
	defer m.RUnlock()

	self, ok := m.tiles[p]
	if !ok {
		return nil
	}

	var dirs []tile.Direction
	for _, other := range m.candidates(self) {
		if self.HasWalkableNeighbour(other) {
			dirs = append(dirs, self.NeighbourAt(other))
		}
	}
	slices.Sort(dirs)
	return dirs
}

// candidates returns the placed tiles in the four same sized slots around t.
func (m *Maze) candidates(t *tile.Tile) []*tile.Tile {
	var found []*tile.Tile
	for _, d := range tile.Directions() {
		pos, ok := t.NeighbourPosition(d)
		if !ok {
			continue
		}
		if other, ok := m.tiles[pos]; ok {
			found = append(found, other)
		}
	}
	return found
}

// sortedTiles returns the placed tiles in row-major order of position. The
// caller must hold the lock.
func (m *Maze) sortedTiles(clone bool) []*tile.Tile {
	tiles := make([]*tile.Tile, 0, len(m.tiles))
	for _, t := range m.tiles {
		if clone {
			t = t.Clone()
		}
		tiles = append(tiles, t)
	}
	slices.SortFunc(tiles, func(a, b *tile.Tile) int {
		if c := cmp.Compare(a.Position.Y, b.Position.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.Position.X, b.Position.X)
	})
	return tiles
}

// String draws the composited grid, one line per row.
func (m *Maze) String() string {
	path := m.Path()
	w := int(m.size.Width)

	var output strings.Builder
	for row := 0; row < int(m.size.Height); row++ {
		for _, f := range path[row*w : (row+1)*w] {
			output.WriteRune(f.Rune())
		}
		output.WriteString("\n")
	}
	return output.String()
}
