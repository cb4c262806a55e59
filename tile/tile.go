/*
Package tile provides the building blocks of a tiled maze.

A Tile is a small row-major grid of Field values anchored at a Position given
in maze cells. Tiles can be rotated clockwise in quarter turns and tested for a
walkable connection with an edge neighbour. A Group is a rectangular block of
fields that a maze stamps as one unit tile per field.
*/
package tile

import (
	"errors"
	"fmt"
)

var (
	ErrShapeMismatch = errors.New("field count does not match size")
)

// Tile is a Size shaped grid of fields anchored at Position.
type Tile struct {
	Position Position // Top-left cell of the tile in maze coordinates
	Size     Size     // Extent of the field grid
	Fields   []Field  // Row-major fields, len(Fields) == Size.Len()
}

// New creates a tile at position with the given size and fields.
// The fields are copied; their count must equal size.Len().
func New(position Position, size Size, fields []Field) (*Tile, error) {
	if len(fields) != size.Len() {
		return nil, fmt.Errorf("new tile %dx%d with %d fields: %w", size.Width, size.Height, len(fields), ErrShapeMismatch)
	}

	return &Tile{
		Position: position,
		Size:     size,
		Fields:   append([]Field(nil), fields...),
	}, nil
}

// NewPath returns a 3x3 tile at the origin with a straight vertical path
// through its center column.
func NewPath() *Tile {
	return &Tile{
		Position: Position{},
		Size:     NewSize(3, 3),
		Fields: []Field{
			Ground, Path, Ground,
			Ground, Path, Ground,
			Ground, Path, Ground,
		},
	}
}

// NewCorner returns a 3x3 tile at the origin whose path enters on the left
// and leaves through the bottom. Rotate it to get the other three turns.
func NewCorner() *Tile {
	return &Tile{
		Position: Position{},
		Size:     NewSize(3, 3),
		Fields: []Field{
			Ground, Ground, Ground,
			Path, Path, Ground,
			Ground, Path, Ground,
		},
	}
}

// Clone returns a deep copy of the tile.
func (t *Tile) Clone() *Tile {
	return &Tile{
		Position: t.Position,
		Size:     t.Size,
		Fields:   append([]Field(nil), t.Fields...),
	}
}

// Field returns the field at local column x and row y.
func (t *Tile) Field(x, y uint32) (Field, bool) {
	p := Position{X: x, Y: y}
	if !t.Size.Contains(p) {
		return None, false
	}
	return t.Fields[t.Size.Index(p)], true
}

// Rotate turns the field grid 90 degrees clockwise in place.
// A non-square tile has its width and height swapped.
func (t *Tile) Rotate() {
	t.Size = rotateFields(t.Size, t.Fields)
}

// RotateN rotates the tile n quarter turns clockwise. Negative n turns
// counter-clockwise.
func (t *Tile) RotateN(n int) {
	for range quarterTurns(n) {
		t.Rotate()
	}
}

// Edge returns the fields along side d, left to right for Top and Bottom and
// top to bottom for Left and Right.
func (t *Tile) Edge(d Direction) []Field {
	w, h := int(t.Size.Width), int(t.Size.Height)
	if w == 0 || h == 0 {
		return nil
	}

	var edge []Field
	switch d {
	case Top:
		edge = append(edge, t.Fields[:w]...)
	case Bottom:
		edge = append(edge, t.Fields[(h-1)*w:]...)
	case Left:
		for row := 0; row < h; row++ {
			edge = append(edge, t.Fields[row*w])
		}
	case Right:
		for row := 0; row < h; row++ {
			edge = append(edge, t.Fields[row*w+w-1])
		}
	}
	return edge
}

// NeighbourAt returns the side of t that other touches. Tiles touch when they
// share a row (or column) and sit exactly one tile extent apart, which is one
// cell for unit tiles. Any other offset yields NoDirection.
func (t *Tile) NeighbourAt(other *Tile) Direction {
	if t.Size.IsEmpty() || other.Size.IsEmpty() {
		return NoDirection
	}

	sx, sy := int64(t.Position.X), int64(t.Position.Y)
	ox, oy := int64(other.Position.X), int64(other.Position.Y)

	switch {
	case sx == ox && oy+int64(other.Size.Height) == sy:
		return Top
	case sx == ox && sy+int64(t.Size.Height) == oy:
		return Bottom
	case sy == oy && ox+int64(other.Size.Width) == sx:
		return Left
	case sy == oy && sx+int64(t.Size.Width) == ox:
		return Right
	default:
		return NoDirection
	}
}

// NeighbourPosition returns the position of a same sized tile touching side d
// of t. It reports false when that position would fall outside the uint32
// range.
func (t *Tile) NeighbourPosition(d Direction) (Position, bool) {
	p, w, h := t.Position, t.Size.Width, t.Size.Height
	if t.Size.IsEmpty() {
		return Position{}, false
	}

	switch d {
	case Top:
		if p.Y < h {
			return Position{}, false
		}
		return NewPosition(p.X, p.Y-h), true
	case Bottom:
		return p.CheckedAdd(NewPosition(0, h))
	case Left:
		if p.X < w {
			return Position{}, false
		}
		return NewPosition(p.X-w, p.Y), true
	case Right:
		return p.CheckedAdd(NewPosition(w, 0))
	default:
		return Position{}, false
	}
}

// HasWalkableNeighbour reports whether other is an edge neighbour of t and at
// least one aligned pair of cells on the shared edge is walkable on both sides.
func (t *Tile) HasWalkableNeighbour(other *Tile) bool {
	d := t.NeighbourAt(other)
	if d == NoDirection {
		return false
	}
	return edgesConnect(t.Edge(d), other.Edge(d.Opposite()))
}

func edgesConnect(a, b []Field) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].IsWalkable() && b[i].IsWalkable() {
			return true
		}
	}
	return false
}
