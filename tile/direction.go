package tile

// Direction names the side on which one tile touches another.
type Direction uint8

const (
	NoDirection Direction = iota // NoDirection means the tiles are not edge neighbours.
	Top
	Right
	Bottom
	Left
)

// Directions returns the four sides in clockwise order starting at Top.
func Directions() []Direction {
	return []Direction{Top, Right, Bottom, Left}
}

// Opposite returns the side facing d.
func (d Direction) Opposite() Direction {
	switch d {
	case Top:
		return Bottom
	case Bottom:
		return Top
	case Left:
		return Right
	case Right:
		return Left
	default:
		return NoDirection
	}
}

func (d Direction) String() string {
	switch d {
	case Top:
		return "Top"
	case Right:
		return "Right"
	case Bottom:
		return "Bottom"
	case Left:
		return "Left"
	default:
		return "None"
	}
}
