package tile

// rotateFields turns a row-major grid of the given size 90 degrees clockwise
// in place and returns the size of the rotated grid.
func rotateFields(size Size, fields []Field) Size {
	w, h := int(size.Width), int(size.Height)
	if w == 0 || h == 0 {
		return Size{Width: size.Height, Height: size.Width}
	}

	// Source row r becomes rotated column h-1-r.
	rotated := make([][]Field, w)
	for c := range rotated {
		rotated[c] = make([]Field, h)
	}
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			rotated[c][h-1-r] = fields[r*w+c]
		}
	}

	i := 0
	for _, row := range rotated {
		for _, f := range row {
			fields[i] = f
			i++
		}
	}

	return Size{Width: size.Height, Height: size.Width}
}

// quarterTurns normalizes n to the number of clockwise turns in [0, 4).
func quarterTurns(n int) int {
	return ((n % 4) + 4) % 4
}
