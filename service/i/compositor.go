package i

import (
	"github.com/beka-birhanu/vinom-tiles/tile"
	"github.com/google/uuid"
)

// Compositor places tiles on a maze and projects them onto one walkable grid.
type Compositor interface {
	// GetID returns the identifier of the maze.
	GetID() uuid.UUID

	// Size returns the extent of the maze in cells.
	Size() tile.Size

	// AddTile places a copy of the tile at its position, replacing any tile
	// already there. Tiles outside the maze are dropped and false is returned.
	AddTile(*tile.Tile) bool

	// AddTileGroup places one unit tile per field of the group.
	AddTileGroup(*tile.Group)

	// TileAtPosition returns a copy of the tile placed at the position.
	TileAtPosition(tile.Position) (*tile.Tile, bool)

	// Neighbours returns the placed tiles touching the tile at the position.
	Neighbours(tile.Position) map[tile.Direction]*tile.Tile

	// Path returns the flattened field grid.
	Path() []tile.Field
}
