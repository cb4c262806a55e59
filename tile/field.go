package tile

// Field is the walkability state of a single cell.
type Field uint8

const (
	None   Field = iota // None marks a cell without tile data.
	Ground              // Ground is a filled, non-walkable cell.
	Path                // Path is a walkable cell.
)

// IsWalkable reports whether the field can be walked on.
func (f Field) IsWalkable() bool {
	return f == Path
}

// Rune returns the character used to draw the field.
func (f Field) Rune() rune {
	switch f {
	case Ground:
		return '#'
	case Path:
		return '.'
	default:
		return ' '
	}
}

func (f Field) String() string {
	switch f {
	case None:
		return "None"
	case Ground:
		return "Ground"
	case Path:
		return "Path"
	default:
		return "Unknown"
	}
}
