// Package clip provides the rectangle arithmetic behind conservative clip bounds.
//
// Every function in this package answers the same question: given a
// rectangular bound and a clip shape reduced to a rectangle, what is the
// smallest axis-aligned rectangle that is guaranteed to still contain every
// visible pixel? The answers are never tighter than the true region.
package clip

import "math"

// Rect is an axis-aligned rectangle in left/top/right/bottom form.
// Its field layout matches cull.Rect so the two convert directly.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// LTRB creates a Rect from its four edges.
func LTRB(l, t, r, b float64) Rect {
	return Rect{MinX: l, MinY: t, MaxX: r, MaxY: b}
}

// IsEmpty returns true if the rectangle has zero or negative area.
// A rectangle with a NaN edge is empty.
func (r Rect) IsEmpty() bool {
	return !(r.MaxX > r.MinX && r.MaxY > r.MinY)
}

// Intersects returns true if r and o share a region of positive area.
// Rectangles that only touch along an edge or at a corner do not intersect.
func (r Rect) Intersects(o Rect) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return o.MinX < r.MaxX && o.MaxX > r.MinX &&
		o.MinY < r.MaxY && o.MaxY > r.MinY
}

// Intersect returns the intersection of r and o.
// Returns an empty rectangle if they don't share any area.
func (r Rect) Intersect(o Rect) Rect {
	result := Rect{
		MinX: math.Max(r.MinX, o.MinX),
		MinY: math.Max(r.MinY, o.MinY),
		MaxX: math.Min(r.MaxX, o.MaxX),
		MaxY: math.Min(r.MaxY, o.MaxY),
	}
	if result.IsEmpty() {
		return Rect{}
	}
	return result
}

// Contains returns true if o lies entirely within r, edges included.
// An empty o is never contained.
func (r Rect) Contains(o Rect) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return o.MinX >= r.MinX && o.MaxX <= r.MaxX &&
		o.MinY >= r.MinY && o.MaxY <= r.MaxY
}
