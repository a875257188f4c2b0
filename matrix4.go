package cull

import "golang.org/x/image/math/f64"

// Matrix4 is a 4x4 homogeneous transformation matrix in row-major order.
// m[4*r+c] is the element in row r and column c; points are column vectors,
// so the translation lives in the last column:
//
//	| xx xy xz xt |
//	| yx yy yz yt |
//	| zx zy zz zt |
//	| wx wy wz wt |
type Matrix4 [16]float64

// perspectiveClipW is the smallest homogeneous w kept when mapping through a
// perspective matrix. Geometry behind the eye is clipped against w = this.
const perspectiveClipW = 1.0 / (1 << 14)

// Identity4 returns the 4x4 identity matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Matrix4FromRows creates a matrix from its sixteen coefficients listed row
// by row.
func Matrix4FromRows(
	mxx, mxy, mxz, mxt,
	myx, myy, myz, myt,
	mzx, mzy, mzz, mzt,
	mwx, mwy, mwz, mwt float64,
) Matrix4 {
	return Matrix4{
		mxx, mxy, mxz, mxt,
		myx, myy, myz, myt,
		mzx, mzy, mzz, mzt,
		mwx, mwy, mwz, mwt,
	}
}

// Multiply multiplies two matrices (m * o).
// The result applies o first, then m.
func (m Matrix4) Multiply(o Matrix4) Matrix4 {
	var r Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			r[4*row+col] = m[4*row]*o[col] +
				m[4*row+1]*o[4+col] +
				m[4*row+2]*o[8+col] +
				m[4*row+3]*o[12+col]
		}
	}
	return r
}

// Determinant returns the determinant of the matrix.
func (m Matrix4) Determinant() float64 {
	a, inv := m.cofactors()
	return a[0]*inv[0] + a[1]*inv[4] + a[2]*inv[8] + a[3]*inv[12]
}

// Invert returns the inverse matrix.
// The second result is false if the matrix is singular or the inverse is
// not finite.
func (m Matrix4) Invert() (Matrix4, bool) {
	a, inv := m.cofactors()
	det := a[0]*inv[0] + a[1]*inv[4] + a[2]*inv[8] + a[3]*inv[12]
	if det == 0 {
		return Matrix4{}, false
	}
	invDet := 1.0 / det
	for i := range inv {
		inv[i] *= invDet
	}
	if !inv.IsFinite() {
		return Matrix4{}, false
	}
	return inv, true
}

// cofactors returns m and its adjugate. The expansion is written for one
// storage order but holds for the transpose as well, so it serves the
// row-major layout unchanged.
func (m Matrix4) cofactors() (Matrix4, Matrix4) {
	var inv Matrix4
	inv[0] = m[5]*m[10]*m[15] - m[5]*m[11]*m[14] - m[9]*m[6]*m[15] +
		m[9]*m[7]*m[14] + m[13]*m[6]*m[11] - m[13]*m[7]*m[10]
	inv[4] = -m[4]*m[10]*m[15] + m[4]*m[11]*m[14] + m[8]*m[6]*m[15] -
		m[8]*m[7]*m[14] - m[12]*m[6]*m[11] + m[12]*m[7]*m[10]
	inv[8] = m[4]*m[9]*m[15] - m[4]*m[11]*m[13] - m[8]*m[5]*m[15] +
		m[8]*m[7]*m[13] + m[12]*m[5]*m[11] - m[12]*m[7]*m[9]
	inv[12] = -m[4]*m[9]*m[14] + m[4]*m[10]*m[13] + m[8]*m[5]*m[14] -
		m[8]*m[6]*m[13] - m[12]*m[5]*m[10] + m[12]*m[6]*m[9]
	inv[1] = -m[1]*m[10]*m[15] + m[1]*m[11]*m[14] + m[9]*m[2]*m[15] -
		m[9]*m[3]*m[14] - m[13]*m[2]*m[11] + m[13]*m[3]*m[10]
	inv[5] = m[0]*m[10]*m[15] - m[0]*m[11]*m[14] - m[8]*m[2]*m[15] +
		m[8]*m[3]*m[14] + m[12]*m[2]*m[11] - m[12]*m[3]*m[10]
	inv[9] = -m[0]*m[9]*m[15] + m[0]*m[11]*m[13] + m[8]*m[1]*m[15] -
		m[8]*m[3]*m[13] - m[12]*m[1]*m[11] + m[12]*m[3]*m[9]
	inv[13] = m[0]*m[9]*m[14] - m[0]*m[10]*m[13] - m[8]*m[1]*m[14] +
		m[8]*m[2]*m[13] + m[12]*m[1]*m[10] - m[12]*m[2]*m[9]
	inv[2] = m[1]*m[6]*m[15] - m[1]*m[7]*m[14] - m[5]*m[2]*m[15] +
		m[5]*m[3]*m[14] + m[13]*m[2]*m[7] - m[13]*m[3]*m[6]
	inv[6] = -m[0]*m[6]*m[15] + m[0]*m[7]*m[14] + m[4]*m[2]*m[15] -
		m[4]*m[3]*m[14] - m[12]*m[2]*m[7] + m[12]*m[3]*m[6]
	inv[10] = m[0]*m[5]*m[15] - m[0]*m[7]*m[13] - m[4]*m[1]*m[15] +
		m[4]*m[3]*m[13] + m[12]*m[1]*m[7] - m[12]*m[3]*m[5]
	inv[14] = -m[0]*m[5]*m[14] + m[0]*m[6]*m[13] + m[4]*m[1]*m[14] -
		m[4]*m[2]*m[13] - m[12]*m[1]*m[6] + m[12]*m[2]*m[5]
	inv[3] = -m[1]*m[6]*m[11] + m[1]*m[7]*m[10] + m[5]*m[2]*m[11] -
		m[5]*m[3]*m[10] - m[9]*m[2]*m[7] + m[9]*m[3]*m[6]
	inv[7] = m[0]*m[6]*m[11] - m[0]*m[7]*m[10] - m[4]*m[2]*m[11] +
		m[4]*m[3]*m[10] + m[8]*m[2]*m[7] - m[8]*m[3]*m[6]
	inv[11] = -m[0]*m[5]*m[11] + m[0]*m[7]*m[9] + m[4]*m[1]*m[11] -
		m[4]*m[3]*m[9] - m[8]*m[1]*m[7] + m[8]*m[3]*m[5]
	inv[15] = m[0]*m[5]*m[10] - m[0]*m[6]*m[9] - m[4]*m[1]*m[10] +
		m[4]*m[2]*m[9] + m[8]*m[1]*m[6] - m[8]*m[2]*m[5]
	return m, inv
}

// homogeneous maps the point (x, y, 0, 1) and returns x, y and w before the
// perspective divide.
func (m Matrix4) homogeneous(x, y float64) (hx, hy, hw float64) {
	hx = m[0]*x + m[1]*y + m[3]
	hy = m[4]*x + m[5]*y + m[7]
	hw = m[12]*x + m[13]*y + m[15]
	return hx, hy, hw
}

// MapPoint maps the point (x, y, 0) and applies the perspective divide.
// The result is not finite if the point maps to w == 0.
func (m Matrix4) MapPoint(x, y float64) (float64, float64) {
	hx, hy, hw := m.homogeneous(x, y)
	if hw == 1 {
		return hx, hy
	}
	return hx / hw, hy / hw
}

// MapRect returns the bounding box of r mapped through the matrix. Under
// perspective, the parts of r that land behind the eye (w <= 0) are clipped
// away before the divide, so the result stays finite.
func (m Matrix4) MapRect(r Rect) Rect {
	var quad [4]hpoint
	allVisible := true
	for i, c := range r.Corners() {
		quad[i].x, quad[i].y, quad[i].w = m.homogeneous(c.X, c.Y)
		if !(quad[i].w > perspectiveClipW) {
			allVisible = false
		}
	}

	if allVisible {
		var pts [4]Point
		for i, h := range quad {
			pts[i] = h.project()
		}
		return boundsOf(pts[:])
	}

	// Sutherland-Hodgman against the single plane w = perspectiveClipW.
	pts := make([]Point, 0, 8)
	for i := range quad {
		cur := quad[i]
		next := quad[(i+1)%4]
		curIn := cur.w >= perspectiveClipW
		nextIn := next.w >= perspectiveClipW
		if curIn {
			pts = append(pts, cur.project())
		}
		if curIn != nextIn {
			t := (perspectiveClipW - cur.w) / (next.w - cur.w)
			pts = append(pts, hpoint{
				x: cur.x + (next.x-cur.x)*t,
				y: cur.y + (next.y-cur.y)*t,
				w: perspectiveClipW,
			}.project())
		}
	}
	return boundsOf(pts)
}

// hpoint is a point in homogeneous 2D coordinates.
type hpoint struct {
	x, y, w float64
}

func (h hpoint) project() Point {
	if h.w == 1 {
		return Point{X: h.x, Y: h.y}
	}
	return Point{X: h.x / h.w, Y: h.y / h.w}
}

// IsAffine2D returns true if the matrix is exactly the embedding of a 2D
// affine matrix: identity z row and column, and a [0 0 0 1] w row.
func (m Matrix4) IsAffine2D() bool {
	return m[2] == 0 && m[6] == 0 &&
		m[8] == 0 && m[9] == 0 && m[10] == 1 && m[11] == 0 &&
		m[12] == 0 && m[13] == 0 && m[14] == 0 && m[15] == 1
}

// HasPerspective returns true if the w row is anything but [0 0 0 1].
func (m Matrix4) HasPerspective() bool {
	return m[12] != 0 || m[13] != 0 || m[14] != 0 || m[15] != 1
}

// Matrix3 projects the matrix onto its 2D affine part. The second result is
// false if the projection would lose information.
func (m Matrix4) Matrix3() (Matrix3, bool) {
	return Matrix3{
		A: m[0], B: m[1], C: m[3],
		D: m[4], E: m[5], F: m[7],
	}, m.IsAffine2D()
}

// RectStaysRect returns true if rectangles in the z = 0 plane map onto
// axis-aligned rectangles.
func (m Matrix4) RectStaysRect() bool {
	if m[12] != 0 || m[13] != 0 || !(m[15] > 0) {
		return false
	}
	return (m[1] == 0 && m[4] == 0) || (m[0] == 0 && m[5] == 0)
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix4) IsIdentity() bool {
	return m == Identity4()
}

// IsFinite returns true if no coefficient is NaN or infinite.
func (m Matrix4) IsFinite() bool {
	for _, v := range m {
		if !isFinite(v) {
			return false
		}
	}
	return true
}

// Mat4 returns the matrix as an x/image 4x4 matrix. Both use row-major
// storage, so the coefficients are copied verbatim.
func (m Matrix4) Mat4() f64.Mat4 {
	return f64.Mat4(m)
}

// Matrix4FromMat4 creates a Matrix4 from an x/image 4x4 matrix.
func Matrix4FromMat4(a f64.Mat4) Matrix4 {
	return Matrix4(a)
}
