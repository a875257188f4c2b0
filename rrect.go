package cull

import "math"

// Corner indices into RRect.Radii.
const (
	CornerTopLeft = iota
	CornerTopRight
	CornerBottomRight
	CornerBottomLeft
)

// RRect is a rectangle with elliptical corners. Radii holds the x and y
// radius of each corner, indexed by the Corner constants.
type RRect struct {
	Rect  Rect
	Radii [4]Point
}

// NewRRectFromRect creates a rounded rectangle with square corners.
func NewRRectFromRect(r Rect) RRect {
	return RRect{Rect: r}
}

// NewRRect creates a rounded rectangle with the same radii at every corner.
func NewRRect(r Rect, rx, ry float64) RRect {
	p := Pt(rx, ry)
	return NewRRectRadii(r, [4]Point{p, p, p, p})
}

// NewRRectRadii creates a rounded rectangle with per-corner radii.
// Negative radii are treated as zero, a corner with either radius zero is
// square, and radii are scaled down uniformly when adjacent corners would
// overlap along a side.
func NewRRectRadii(r Rect, radii [4]Point) RRect {
	rr := RRect{Rect: r}
	if r.IsEmpty() || !r.IsFinite() {
		return rr
	}
	for i, p := range radii {
		if !(p.X > 0) || !(p.Y > 0) || !p.IsFinite() {
			continue
		}
		rr.Radii[i] = p
	}

	w, h := r.Width(), r.Height()
	scale := 1.0
	scale = math.Min(scale, sideScale(w, rr.Radii[CornerTopLeft].X, rr.Radii[CornerTopRight].X))
	scale = math.Min(scale, sideScale(w, rr.Radii[CornerBottomLeft].X, rr.Radii[CornerBottomRight].X))
	scale = math.Min(scale, sideScale(h, rr.Radii[CornerTopLeft].Y, rr.Radii[CornerBottomLeft].Y))
	scale = math.Min(scale, sideScale(h, rr.Radii[CornerTopRight].Y, rr.Radii[CornerBottomRight].Y))
	if scale < 1 {
		for i := range rr.Radii {
			rr.Radii[i] = rr.Radii[i].Mul(scale)
		}
	}
	return rr
}

func sideScale(side, r1, r2 float64) float64 {
	if sum := r1 + r2; sum > side {
		return side / sum
	}
	return 1
}

// Bounds returns the bounding rectangle.
func (rr RRect) Bounds() Rect {
	return rr.Rect
}

// IsEmpty returns true if the bounding rectangle is empty.
func (rr RRect) IsEmpty() bool {
	return rr.Rect.IsEmpty()
}

// IsRect returns true if every corner is square.
func (rr RRect) IsRect() bool {
	return rr.Radii == [4]Point{}
}

// IsFinite returns true if the rectangle and all radii are finite.
func (rr RRect) IsFinite() bool {
	if !rr.Rect.IsFinite() {
		return false
	}
	for _, p := range rr.Radii {
		if !p.IsFinite() {
			return false
		}
	}
	return true
}

// InnerRects returns the two largest axis-aligned rectangles that lie
// entirely inside the rounded rectangle: the full-width band between the
// corners and the full-height band between the corners. Either may be empty.
func (rr RRect) InnerRects() (horizontal, vertical Rect) {
	r := rr.Rect
	// Negative radii are treated as square corners.
	top := math.Max(0, math.Max(rr.Radii[CornerTopLeft].Y, rr.Radii[CornerTopRight].Y))
	bottom := math.Max(0, math.Max(rr.Radii[CornerBottomLeft].Y, rr.Radii[CornerBottomRight].Y))
	left := math.Max(0, math.Max(rr.Radii[CornerTopLeft].X, rr.Radii[CornerBottomLeft].X))
	right := math.Max(0, math.Max(rr.Radii[CornerTopRight].X, rr.Radii[CornerBottomRight].X))

	horizontal = Rect{MinX: r.MinX, MinY: r.MinY + top, MaxX: r.MaxX, MaxY: r.MaxY - bottom}
	vertical = Rect{MinX: r.MinX + left, MinY: r.MinY, MaxX: r.MaxX - right, MaxY: r.MaxY}
	return horizontal, vertical
}
