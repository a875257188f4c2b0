package cull

import (
	"math"

	"golang.org/x/image/math/f64"
	"honnef.co/go/curve"
)

// Matrix3 represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| A  B  C |
//	| D  E  F |
//
// with an implicit bottom row of [0 0 1]. This represents the transformation:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Matrix3 struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix3 {
	return Matrix3{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix3 {
	return Matrix3{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(sx, sy float64) Matrix3 {
	return Matrix3{
		A: sx, B: 0, C: 0,
		D: 0, E: sy, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
// Positive angles rotate the x axis towards the y axis, which is clockwise
// in a y-down coordinate system.
func Rotate(angle float64) Matrix3 {
	sin, cos := math.Sincos(angle)
	return Matrix3{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// RotateDegrees creates a rotation matrix (angle in degrees).
// Multiples of 90 degrees produce exact matrices.
func RotateDegrees(degrees float64) Matrix3 {
	if q := math.Mod(degrees, 90); q == 0 {
		var sin, cos float64
		switch int(math.Mod(degrees/90, 4)+4) % 4 {
		case 0:
			sin, cos = 0, 1
		case 1:
			sin, cos = 1, 0
		case 2:
			sin, cos = 0, -1
		case 3:
			sin, cos = -1, 0
		}
		return Matrix3{
			A: cos, B: -sin, C: 0,
			D: sin, E: cos, F: 0,
		}
	}
	return Rotate(degrees * math.Pi / 180)
}

// Skew creates a skew matrix.
func Skew(kx, ky float64) Matrix3 {
	return Matrix3{
		A: 1, B: kx, C: 0,
		D: ky, E: 1, F: 0,
	}
}

// Multiply multiplies two matrices (m * other).
// The result applies other first, then m.
func (m Matrix3) Multiply(other Matrix3) Matrix3 {
	return Matrix3{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix3) TransformPoint(x, y float64) (float64, float64) {
	return m.A*x + m.B*y + m.C, m.D*x + m.E*y + m.F
}

// MapRect returns the bounding box of the four transformed corners of r.
func (m Matrix3) MapRect(r Rect) Rect {
	if m.B == 0 && m.D == 0 {
		x0, y0 := m.TransformPoint(r.MinX, r.MinY)
		x1, y1 := m.TransformPoint(r.MaxX, r.MaxY)
		return NewRectFromPoints(x0, y0, x1, y1)
	}
	var pts [4]Point
	for i, c := range r.Corners() {
		pts[i].X, pts[i].Y = m.TransformPoint(c.X, c.Y)
	}
	return boundsOf(pts[:])
}

// Determinant returns the determinant of the 2x2 part of the matrix.
// A determinant of zero means the matrix is not invertible.
func (m Matrix3) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Invert returns the inverse matrix.
// The second result is false if the matrix is singular or the inverse is
// not finite.
func (m Matrix3) Invert() (Matrix3, bool) {
	det := m.Determinant()
	if det == 0 {
		return Matrix3{}, false
	}

	invDet := 1.0 / det
	inv := Matrix3{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}
	if !inv.IsFinite() {
		return Matrix3{}, false
	}
	return inv, true
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix3) IsIdentity() bool {
	return m == Identity()
}

// IsTranslation returns true if the matrix is only a translation.
func (m Matrix3) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1
}

// RectStaysRect returns true if the matrix maps every axis-aligned rectangle
// onto an axis-aligned rectangle: only scales, translations, flips and
// multiples of 90 degree rotations qualify.
func (m Matrix3) RectStaysRect() bool {
	return (m.B == 0 && m.D == 0) || (m.A == 0 && m.E == 0)
}

// IsFinite returns true if no coefficient is NaN or infinite.
func (m Matrix3) IsFinite() bool {
	return isFinite(m.A) && isFinite(m.B) && isFinite(m.C) &&
		isFinite(m.D) && isFinite(m.E) && isFinite(m.F)
}

// To4x4 embeds the affine matrix into a 4x4 matrix. The z row and column
// are identity.
func (m Matrix3) To4x4() Matrix4 {
	return Matrix4{
		m.A, m.B, 0, m.C,
		m.D, m.E, 0, m.F,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Aff3 returns the matrix as an x/image affine matrix.
func (m Matrix3) Aff3() f64.Aff3 {
	return f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
}

// Matrix3FromAff3 creates a Matrix3 from an x/image affine matrix.
func Matrix3FromAff3(a f64.Aff3) Matrix3 {
	return Matrix3{
		A: a[0], B: a[1], C: a[2],
		D: a[3], E: a[4], F: a[5],
	}
}

// CurveAffine returns the matrix as a curve.Affine, whose coefficients are
// stored column by column.
func (m Matrix3) CurveAffine() curve.Affine {
	return curve.NewAffine([6]float64{m.A, m.D, m.B, m.E, m.C, m.F})
}

// Matrix3FromCurve creates a Matrix3 from a curve.Affine.
func Matrix3FromCurve(a curve.Affine) Matrix3 {
	c := a.Coefficients()
	return Matrix3{
		A: c[0], B: c[2], C: c[4],
		D: c[1], E: c[3], F: c[5],
	}
}
