package tile

import "fmt"

// Group is a rectangular block of fields that a maze stamps as one unit tile
// per field, starting at Origin.
type Group struct {
	Origin Position
	Size   Size
	Fields []Field
}

// NewGroup creates a group anchored at origin. The fields are copied; their
// count must equal size.Len().
func NewGroup(origin Position, size Size, fields []Field) (*Group, error) {
	if len(fields) != size.Len() {
		return nil, fmt.Errorf("new group %dx%d with %d fields: %w", size.Width, size.Height, len(fields), ErrShapeMismatch)
	}

	return &Group{
		Origin: origin,
		Size:   size,
		Fields: append([]Field(nil), fields...),
	}, nil
}

// Rotate turns the group's fields 90 degrees clockwise in place.
func (g *Group) Rotate() {
	g.Size = rotateFields(g.Size, g.Fields)
}

// Tiles splits the group into 1x1 tiles at Origin plus each field's local
// coordinate, in row-major order. Fields whose coordinate overflows are
// skipped.
func (g *Group) Tiles() []*Tile {
	tiles := make([]*Tile, 0, len(g.Fields))
	unit := NewSize(1, 1)
	for i, f := range g.Fields {
		pos, ok := g.Origin.CheckedAdd(g.Size.PositionOf(i))
		if !ok {
			continue
		}
		tiles = append(tiles, &Tile{
			Position: pos,
			Size:     unit,
			Fields:   []Field{f},
		})
	}
	return tiles
}
