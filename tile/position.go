package tile

import (
	"fmt"
	"math"
)

// Position is a cell coordinate. X is the column and Y the row.
type Position struct {
	X uint32
	Y uint32
}

// NewPosition returns the position (x, y).
func NewPosition(x, y uint32) Position {
	return Position{X: x, Y: y}
}

// Add returns the component-wise sum of p and o.
func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

// CheckedAdd is Add that reports false when either coordinate would overflow.
func (p Position) CheckedAdd(o Position) (Position, bool) {
	if p.X > math.MaxUint32-o.X || p.Y > math.MaxUint32-o.Y {
		return Position{}, false
	}
	return p.Add(o), true
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
