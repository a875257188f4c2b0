package cull

// ShapeKind identifies a simple shape a path was recognized as.
type ShapeKind int

const (
	// ShapeUnknown indicates the path is not a recognized primitive.
	ShapeUnknown ShapeKind = iota

	// ShapeRect indicates an axis-aligned rectangle.
	ShapeRect

	// ShapeRRect indicates a rounded rectangle.
	ShapeRRect
)

// detectedShape is the shape a path was built as. rrect.Rect holds the
// rectangle for ShapeRect.
type detectedShape struct {
	kind  ShapeKind
	rrect RRect
}

// kappa is the cubic Bezier control point distance for circle approximation.
// Equal to 4/3 * (sqrt(2) - 1).
const kappa = 0.5522847498307936

// detectRect reports whether elems describe exactly one axis-aligned
// rectangle with non-zero sides. Accepted patterns are MoveTo followed by
// three LineTo, optionally a fourth LineTo back to the start, and an
// optional Close. Any other element, or a second subpath, rejects the path.
//
// Detection is exact: a corner that is off by any amount is not a corner.
func detectRect(elems []PathElement) (Rect, bool) {
	if len(elems) < 4 {
		return Rect{}, false
	}
	move, ok := elems[0].(MoveTo)
	if !ok {
		return Rect{}, false
	}

	pts := make([]Point, 1, 5)
	pts[0] = move.Point
	closed := false
	for _, elem := range elems[1:] {
		if closed {
			return Rect{}, false
		}
		switch e := elem.(type) {
		case LineTo:
			pts = append(pts, e.Point)
		case Close:
			closed = true
		default:
			return Rect{}, false
		}
	}
	if len(pts) == 5 && pts[4] == pts[0] {
		pts = pts[:4]
	}
	if len(pts) != 4 {
		return Rect{}, false
	}

	// Edges must alternate between horizontal and vertical, each with
	// non-zero length. Four such edges that close up form a rectangle.
	firstHorizontal := pts[0].Y == pts[1].Y
	for i := 0; i < 4; i++ {
		a, b := pts[i], pts[(i+1)%4]
		horizontal := firstHorizontal == (i%2 == 0)
		if horizontal {
			if a.Y != b.Y || a.X == b.X {
				return Rect{}, false
			}
		} else if a.X != b.X || a.Y == b.Y {
			return Rect{}, false
		}
	}

	r := NewRectFromPoints(pts[0].X, pts[0].Y, pts[2].X, pts[2].Y)
	if !r.IsFinite() {
		return Rect{}, false
	}
	return r, true
}
