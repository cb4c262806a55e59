package tile

// Size is a width x height extent measured in cells.
type Size struct {
	Width  uint32 // Number of columns
	Height uint32 // Number of rows
}

// NewSize returns a Size with the given width and height.
func NewSize(width, height uint32) Size {
	return Size{Width: width, Height: height}
}

// Len returns the number of cells covered by the size.
func (s Size) Len() int {
	return int(s.Width) * int(s.Height)
}

// IsEmpty reports whether the size covers no cells.
func (s Size) IsEmpty() bool {
	return s.Len() == 0
}

// Contains reports whether p lies inside [0, Width) x [0, Height).
func (s Size) Contains(p Position) bool {
	return p.X < s.Width && p.Y < s.Height
}

// Index returns the row-major index of p. The caller must ensure Contains(p).
func (s Size) Index(p Position) int {
	return int(p.Y)*int(s.Width) + int(p.X)
}

// PositionOf is the inverse of Index.
func (s Size) PositionOf(index int) Position {
	if s.Width == 0 {
		return Position{}
	}
	w := int(s.Width)
	return Position{X: uint32(index % w), Y: uint32(index / w)}
}
