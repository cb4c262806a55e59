package maze

import "github.com/google/uuid"

const (
	defaultTileSize = 3
)

// Option configures a Maze.
type Option func(*Maze)

// WithTileSize sets the grid used by TileAtIndex to find the tile covering a
// cell. Zero is ignored.
func WithTileSize(n uint32) Option {
	return func(m *Maze) {
		if n > 0 {
			m.tileSize = n
		}
	}
}

// WithID sets the maze identifier instead of a random one.
func WithID(id uuid.UUID) Option {
	return func(m *Maze) {
		m.ID = id
	}
}
