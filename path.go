package cull

import (
	"math"

	"honnef.co/go/curve"
)

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo adds a straight segment to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo adds a quadratic Bezier segment.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo adds a cubic Bezier segment.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// FillType selects the winding rule of a path. The inverse variants fill
// everything outside the shape instead of inside.
type FillType uint8

const (
	FillNonZero FillType = iota
	FillEvenOdd
	FillInverseNonZero
	FillInverseEvenOdd
)

var fillTypeNames = [...]string{
	FillNonZero:        "NonZero",
	FillEvenOdd:        "EvenOdd",
	FillInverseNonZero: "InverseNonZero",
	FillInverseEvenOdd: "InverseEvenOdd",
}

// String returns the name of the fill type.
func (f FillType) String() string {
	if int(f) < len(fillTypeNames) {
		return fillTypeNames[f]
	}
	return "Unknown"
}

// IsInverse returns true for the inverse fill types.
func (f FillType) IsInverse() bool {
	return f == FillInverseNonZero || f == FillInverseEvenOdd
}

// Path represents a vector path.
//
// A path remembers whether it was built by a single AddRect or AddRRect
// call, so IsRect and IsRRect can answer without re-deriving the shape.
// Any further mutation drops that knowledge.
type Path struct {
	elements []PathElement
	start    Point
	current  Point
	fill     FillType
	shape    detectedShape
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.shape = detectedShape{}
	p.moveTo(x, y)
}

// LineTo adds a line from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.shape = detectedShape{}
	p.lineTo(x, y)
}

// QuadraticTo adds a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.shape = detectedShape{}
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: pt})
	p.current = pt
}

// CubicTo adds a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.shape = detectedShape{}
	p.cubicTo(c1x, c1y, c2x, c2y, x, y)
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.shape = detectedShape{}
	p.close()
}

func (p *Path) moveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

func (p *Path) lineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

func (p *Path) cubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

func (p *Path) close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements. The fill type is kept.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
	p.shape = detectedShape{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// IsEmpty returns true if the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// FillType returns the winding rule.
func (p *Path) FillType() FillType {
	return p.fill
}

// SetFillType sets the winding rule.
func (p *Path) SetFillType(f FillType) {
	p.fill = f
}

// IsInverseFillType returns true if the path fills its outside.
func (p *Path) IsInverseFillType() bool {
	return p.fill.IsInverse()
}

// ToggleInverseFillType switches between the normal and inverse variant of
// the current winding rule.
func (p *Path) ToggleInverseFillType() {
	p.fill ^= 2
}

// AddRect adds a closed rectangle, clockwise from the top-left corner.
func (p *Path) AddRect(r Rect) {
	wasEmpty := p.IsEmpty()
	for i, c := range r.Corners() {
		if i == 0 {
			p.moveTo(c.X, c.Y)
		} else {
			p.lineTo(c.X, c.Y)
		}
	}
	p.close()
	if wasEmpty {
		p.shape = detectedShape{kind: ShapeRect, rrect: NewRRectFromRect(r)}
	} else {
		p.shape = detectedShape{}
	}
}

// AddRRect adds a closed rounded rectangle. A rounded rectangle with square
// corners is added as a plain rectangle.
func (p *Path) AddRRect(rr RRect) {
	if rr.IsRect() {
		p.AddRect(rr.Rect)
		return
	}
	wasEmpty := p.IsEmpty()
	r := rr.Rect
	tl := rr.Radii[CornerTopLeft]
	tr := rr.Radii[CornerTopRight]
	br := rr.Radii[CornerBottomRight]
	bl := rr.Radii[CornerBottomLeft]

	p.moveTo(r.MinX+tl.X, r.MinY)
	p.lineTo(r.MaxX-tr.X, r.MinY)
	p.cornerTo(r.MaxX-tr.X, r.MinY+tr.Y, tr.X, tr.Y, -math.Pi/2)
	p.lineTo(r.MaxX, r.MaxY-br.Y)
	p.cornerTo(r.MaxX-br.X, r.MaxY-br.Y, br.X, br.Y, 0)
	p.lineTo(r.MinX+bl.X, r.MaxY)
	p.cornerTo(r.MinX+bl.X, r.MaxY-bl.Y, bl.X, bl.Y, math.Pi/2)
	p.lineTo(r.MinX, r.MinY+tl.Y)
	p.cornerTo(r.MinX+tl.X, r.MinY+tl.Y, tl.X, tl.Y, math.Pi)
	p.close()

	if wasEmpty {
		p.shape = detectedShape{kind: ShapeRRect, rrect: rr}
	} else {
		p.shape = detectedShape{}
	}
}

// cornerTo adds a quarter ellipse around (cx, cy) starting at angle a0 and
// sweeping 90 degrees clockwise. A corner with a zero radius adds nothing.
func (p *Path) cornerTo(cx, cy, rx, ry, a0 float64) {
	if rx == 0 || ry == 0 {
		return
	}
	s0, c0 := quadrantSinCos(a0)
	s1, c1 := quadrantSinCos(a0 + math.Pi/2)
	p.cubicTo(
		cx+rx*(c0-kappa*s0), cy+ry*(s0+kappa*c0),
		cx+rx*(c1+kappa*s1), cy+ry*(s1-kappa*c1),
		cx+rx*c1, cy+ry*s1,
	)
}

// quadrantSinCos returns exact values for multiples of 90 degrees.
func quadrantSinCos(a float64) (sin, cos float64) {
	switch int(math.Round(a/(math.Pi/2))) & 3 {
	case 0:
		return 0, 1
	case 1:
		return 1, 0
	case 2:
		return 0, -1
	default:
		return -1, 0
	}
}

// AddOval adds a closed ellipse inscribed in r.
func (p *Path) AddOval(r Rect) {
	cx := (r.MinX + r.MaxX) / 2
	cy := (r.MinY + r.MaxY) / 2
	rx := r.Width() / 2
	ry := r.Height() / 2
	ox := rx * kappa
	oy := ry * kappa

	p.shape = detectedShape{}
	p.moveTo(cx+rx, cy)
	p.cubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.cubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.cubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.cubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.close()
}

// AddCircle adds a closed circle.
func (p *Path) AddCircle(cx, cy, r float64) {
	p.AddOval(Rect{MinX: cx - r, MinY: cy - r, MaxX: cx + r, MaxY: cy + r})
}

// Bounds returns the bounding box of all points in the path, control points
// included. The result can be larger than the tight bounds of the curves
// but never smaller. An empty path has empty bounds.
func (p *Path) Bounds() Rect {
	if len(p.elements) == 0 {
		return Rect{}
	}
	pts := make([]Point, 0, len(p.elements)*3)
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pts = append(pts, e.Point)
		case LineTo:
			pts = append(pts, e.Point)
		case QuadTo:
			pts = append(pts, e.Control, e.Point)
		case CubicTo:
			pts = append(pts, e.Control1, e.Control2, e.Point)
		}
	}
	return boundsOf(pts)
}

// IsFinite returns true if every point in the path is finite.
func (p *Path) IsFinite() bool {
	return p.Bounds().IsFinite()
}

// IsRect returns the rectangle the path describes exactly, if it does.
func (p *Path) IsRect() (Rect, bool) {
	if p.shape.kind == ShapeRect {
		return p.shape.rrect.Rect, true
	}
	if p.shape.kind == ShapeRRect {
		return Rect{}, false
	}
	return detectRect(p.elements)
}

// IsRRect returns the rounded rectangle the path describes exactly, if it
// was built as one by AddRRect on an empty path.
func (p *Path) IsRRect() (RRect, bool) {
	if p.shape.kind == ShapeRRect {
		return p.shape.rrect, true
	}
	return RRect{}, false
}

// Transform returns a copy of the path with every point mapped through m.
// The fill type is kept.
func (p *Path) Transform(m Matrix3) *Path {
	result := NewPath()
	result.fill = p.fill
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			result.moveTo(m.TransformPoint(e.Point.X, e.Point.Y))
		case LineTo:
			result.lineTo(m.TransformPoint(e.Point.X, e.Point.Y))
		case QuadTo:
			cx, cy := m.TransformPoint(e.Control.X, e.Control.Y)
			x, y := m.TransformPoint(e.Point.X, e.Point.Y)
			result.elements = append(result.elements, QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
			result.current = Pt(x, y)
		case CubicTo:
			c1x, c1y := m.TransformPoint(e.Control1.X, e.Control1.Y)
			c2x, c2y := m.TransformPoint(e.Control2.X, e.Control2.Y)
			x, y := m.TransformPoint(e.Point.X, e.Point.Y)
			result.cubicTo(c1x, c1y, c2x, c2y, x, y)
		case Close:
			result.close()
		}
	}
	return result
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := &Path{
		elements: make([]PathElement, len(p.elements)),
		start:    p.start,
		current:  p.current,
		fill:     p.fill,
		shape:    p.shape,
	}
	copy(result.elements, p.elements)
	return result
}

// PathFromShape flattens any curve.Shape into a Path. Tolerance bounds the
// error of shapes that are approximated by Bezier segments, such as
// circles and arcs.
func PathFromShape(shape curve.Shape, tolerance float64) *Path {
	p := NewPath()
	for el := range shape.PathElements(tolerance) {
		switch el.Kind {
		case curve.MoveToKind:
			p.moveTo(el.P0.X, el.P0.Y)
		case curve.LineToKind:
			p.lineTo(el.P0.X, el.P0.Y)
		case curve.QuadToKind:
			pt := Pt(el.P1.X, el.P1.Y)
			p.elements = append(p.elements, QuadTo{Control: Pt(el.P0.X, el.P0.Y), Point: pt})
			p.current = pt
		case curve.CubicToKind:
			p.cubicTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y, el.P2.X, el.P2.Y)
		case curve.ClosePathKind:
			p.close()
		}
	}
	return p
}
