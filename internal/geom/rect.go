// Package geom provides the rectangle arithmetic shared by every room
// kind: interior enumeration, perimeter walks, and centered resizing.
package geom

// Point is a grid coordinate, row first.
type Point struct {
	Y, X int
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
// Rects are immutable values; transforms return new rects.
type Rect struct {
	Y, X int // top-left corner
	H, W int // dimensions
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(y, x int) bool {
	return y >= r.Y && y < r.Y+r.H && x >= r.X && x < r.X+r.W
}

// Enlarge returns the rectangle grown by dh rows and dw columns, with the
// origin shifted by half the delta so growth stays centered. Negative
// deltas shrink; shrinking a room's bounds by (-2,-2) yields its interior.
func (r Rect) Enlarge(dh, dw int) Rect {
	return Rect{
		Y: r.Y - floorDiv(dh, 2),
		X: r.X - floorDiv(dw, 2),
		H: r.H + dh,
		W: r.W + dw,
	}
}

// AreaCoords returns every interior coordinate in row-major order. Rooms
// are small (≤ 13×13 in practice), so the slice is materialized rather
// than streamed.
func (r Rect) AreaCoords() []Point {
	if r.H <= 0 || r.W <= 0 {
		return nil
	}
	coords := make([]Point, 0, r.H*r.W)
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			coords = append(coords, Point{Y: y, X: x})
		}
	}
	return coords
}

// PerimeterCoords returns the border coordinates clockwise from the
// top-left: top edge left to right, right edge top to bottom, bottom edge
// right to left, left edge bottom to top. Each edge is trimmed by skip
// cells at both ends; skip=1 yields exactly the non-corner border, the
// door candidate set.
func (r Rect) PerimeterCoords(skip int) []Point {
	if r.H <= 0 || r.W <= 0 {
		return nil
	}
	var coords []Point
	top, bottom := r.Y, r.Y+r.H-1
	left, right := r.X, r.X+r.W-1

	// At skip=0 each corner belongs to exactly one edge; inset is the
	// per-edge trim that keeps later edges from re-emitting it.
	inset := skip
	if inset < 1 {
		inset = 1
	}

	for x := left + skip; x <= right-skip; x++ {
		coords = append(coords, Point{Y: top, X: x})
	}
	if bottom > top {
		for y := top + inset; y <= bottom-skip; y++ {
			coords = append(coords, Point{Y: y, X: right})
		}
		for x := right - inset; x >= left+skip; x-- {
			coords = append(coords, Point{Y: bottom, X: x})
		}
	}
	if right > left {
		for y := bottom - inset; y >= top+inset; y-- {
			coords = append(coords, Point{Y: y, X: left})
		}
	}
	return coords
}

// floorDiv divides rounding toward negative infinity, so Enlarge centers
// correctly for negative deltas too.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
