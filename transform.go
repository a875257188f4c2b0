package cull

// Transform is a coordinate transform stored in the most restrictive form
// that captures it exactly: either a 2D affine Matrix3 or a full 4x4
// Matrix4. Using4x4 reports which form is canonical.
//
// Concatenation promotes silently from the affine to the full form the first
// time a full operand is involved, and never demotes. The constructors
// normalize, so a 4x4 matrix that is exactly affine is stored as a Matrix3.
//
// The zero value is the zero matrix, not the identity; use
// IdentityTransform.
type Transform struct {
	affine Matrix3
	full   Matrix4
	is4x4  bool
}

// IdentityTransform returns the identity transform in affine form.
func IdentityTransform() Transform {
	return Transform{affine: Identity()}
}

// AffineTransform wraps a 2D affine matrix.
func AffineTransform(m Matrix3) Transform {
	return Transform{affine: m}
}

// FullTransform wraps a 4x4 matrix. The transform is stored in affine form
// when m is exactly representable as one.
func FullTransform(m Matrix4) Transform {
	if m3, ok := m.Matrix3(); ok {
		return Transform{affine: m3}
	}
	return Transform{full: m, is4x4: true}
}

// Using4x4 returns true if the canonical form is the full 4x4 matrix.
func (t Transform) Using4x4() bool {
	return t.is4x4
}

// Matrix3 returns the affine form. It panics if the transform is stored in
// full form and has non-affine terms, because the projection would silently
// drop them.
func (t Transform) Matrix3() Matrix3 {
	if !t.is4x4 {
		return t.affine
	}
	m, ok := t.full.Matrix3()
	if !ok {
		panic("cull: Matrix3 called on a transform with non-affine 4x4 terms")
	}
	return m
}

// Matrix4 returns the full form, promoting the affine form if needed.
func (t Transform) Matrix4() Matrix4 {
	if t.is4x4 {
		return t.full
	}
	return t.affine.To4x4()
}

// Concat returns t * o: o is applied first, then t. The result is affine
// only when both operands are.
func (t Transform) Concat(o Transform) Transform {
	if !t.is4x4 && !o.is4x4 {
		return Transform{affine: t.affine.Multiply(o.affine)}
	}
	return Transform{full: t.Matrix4().Multiply(o.Matrix4()), is4x4: true}
}

// Invert returns the inverse transform in the same form as t.
// The second result is false if t is not invertible.
func (t Transform) Invert() (Transform, bool) {
	if !t.is4x4 {
		inv, ok := t.affine.Invert()
		return Transform{affine: inv}, ok
	}
	inv, ok := t.full.Invert()
	return Transform{full: inv, is4x4: true}, ok
}

// MapPoint maps a point through the transform.
func (t Transform) MapPoint(x, y float64) (float64, float64) {
	if !t.is4x4 {
		return t.affine.TransformPoint(x, y)
	}
	return t.full.MapPoint(x, y)
}

// MapRect returns the bounding box of r after the transform.
func (t Transform) MapRect(r Rect) Rect {
	if !t.is4x4 {
		return t.affine.MapRect(r)
	}
	return t.full.MapRect(r)
}

// RectStaysRect returns true if the transform maps axis-aligned rectangles
// onto axis-aligned rectangles.
func (t Transform) RectStaysRect() bool {
	if !t.is4x4 {
		return t.affine.RectStaysRect()
	}
	return t.full.RectStaysRect()
}

// HasPerspective returns true if the transform has a non-trivial w row.
func (t Transform) HasPerspective() bool {
	return t.is4x4 && t.full.HasPerspective()
}

// IsIdentity returns true if the transform is the identity.
func (t Transform) IsIdentity() bool {
	if !t.is4x4 {
		return t.affine.IsIdentity()
	}
	return t.full.IsIdentity()
}

// IsFinite returns true if no coefficient is NaN or infinite.
func (t Transform) IsFinite() bool {
	if !t.is4x4 {
		return t.affine.IsFinite()
	}
	return t.full.IsFinite()
}

// Equal reports whether t and o describe the same 4x4 matrix, regardless of
// which form each one is stored in.
func (t Transform) Equal(o Transform) bool {
	return t.Matrix4() == o.Matrix4()
}
