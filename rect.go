package cull

import (
	"image"
	"math"

	"github.com/gogpu/cull/internal/clip"
)

// Rect represents an axis-aligned rectangle.
// Min is the top-left corner (minimum coordinates).
// Max is the bottom-right corner (maximum coordinates).
//
// The zero value is the canonical empty rectangle.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewRect creates a rectangle from position and size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{
		MinX: x,
		MinY: y,
		MaxX: x + width,
		MaxY: y + height,
	}
}

// NewRectLTRB creates a rectangle from its left, top, right and bottom edges.
func NewRectLTRB(l, t, r, b float64) Rect {
	return Rect{MinX: l, MinY: t, MaxX: r, MaxY: b}
}

// NewRectFromPoints creates a rectangle from two corner points.
// The points are normalized so Min <= Max.
func NewRectFromPoints(x1, y1, x2, y2 float64) Rect {
	return Rect{
		MinX: math.Min(x1, x2),
		MinY: math.Min(y1, y2),
		MaxX: math.Max(x1, x2),
		MaxY: math.Max(y1, y2),
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// IsEmpty returns true if the rectangle has zero or negative area.
// A rectangle with a NaN edge is empty.
func (r Rect) IsEmpty() bool {
	return r.clip().IsEmpty()
}

// IsFinite returns true if no edge is NaN or infinite.
func (r Rect) IsFinite() bool {
	return isFinite(r.MinX) && isFinite(r.MinY) && isFinite(r.MaxX) && isFinite(r.MaxY)
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// ContainsRect returns true if o lies entirely inside r.
// Empty rectangles neither contain nor are contained.
func (r Rect) ContainsRect(o Rect) bool {
	return r.clip().Contains(o.clip())
}

// Intersects returns true if r and o overlap by a positive area.
// Rectangles sharing only an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.clip().Intersects(o.clip())
}

// Intersect returns the intersection of r and other.
// Returns an empty rectangle if they don't intersect.
func (r Rect) Intersect(other Rect) Rect {
	return Rect(r.clip().Intersect(other.clip()))
}

// Union returns the smallest rectangle containing both r and other.
// Empty rectangles do not contribute to the result.
func (r Rect) Union(other Rect) Rect {
	switch {
	case r.IsEmpty():
		return other
	case other.IsEmpty():
		return r
	}
	return Rect{
		MinX: math.Min(r.MinX, other.MinX),
		MinY: math.Min(r.MinY, other.MinY),
		MaxX: math.Max(r.MaxX, other.MaxX),
		MaxY: math.Max(r.MaxY, other.MaxY),
	}
}

// Inset returns a new rectangle inset by the given amounts.
// Positive values shrink the rectangle, negative values expand it.
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{
		MinX: r.MinX + dx,
		MinY: r.MinY + dy,
		MaxX: r.MaxX - dx,
		MaxY: r.MaxY - dy,
	}
}

// Offset returns a new rectangle offset by the given amounts.
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{
		MinX: r.MinX + dx,
		MinY: r.MinY + dy,
		MaxX: r.MaxX + dx,
		MaxY: r.MaxY + dy,
	}
}

// Corners returns the four corners in top-left, top-right, bottom-right,
// bottom-left order.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{X: r.MinX, Y: r.MinY},
		{X: r.MaxX, Y: r.MinY},
		{X: r.MaxX, Y: r.MaxY},
		{X: r.MinX, Y: r.MaxY},
	}
}

// RoundOut returns the smallest integer rectangle that contains r.
// An empty r yields an empty image.Rectangle. Coordinates outside the
// int32 range saturate at its limits.
func (r Rect) RoundOut() image.Rectangle {
	if r.IsEmpty() || !r.IsFinite() {
		return image.Rectangle{}
	}
	return image.Rect(
		saturateInt(math.Floor(r.MinX)),
		saturateInt(math.Floor(r.MinY)),
		saturateInt(math.Ceil(r.MaxX)),
		saturateInt(math.Ceil(r.MaxY)),
	)
}

func saturateInt(v float64) int {
	switch {
	case v <= math.MinInt32:
		return math.MinInt32
	case v >= math.MaxInt32:
		return math.MaxInt32
	}
	return int(v)
}

func (r Rect) clip() clip.Rect {
	return clip.Rect(r)
}

// cutout removes hole from bound when the remainder is a rectangle.
func cutout(bound, hole Rect) Rect {
	return Rect(clip.Cutout(bound.clip(), hole.clip()))
}

// boundsOf returns the bounding box of a set of points.
func boundsOf(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	b := Rect{MinX: pts[0].X, MinY: pts[0].Y, MaxX: pts[0].X, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		b.MinX = math.Min(b.MinX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	return b
}
