package cull

// ClipOp selects how a clip shape combines with the current clip.
type ClipOp uint8

const (
	// ClipIntersect keeps only what lies inside the shape.
	ClipIntersect ClipOp = iota

	// ClipDifference removes what lies inside the shape.
	ClipDifference
)

// String returns the name of the clip operation.
func (op ClipOp) String() string {
	switch op {
	case ClipIntersect:
		return "Intersect"
	case ClipDifference:
		return "Difference"
	default:
		return "Unknown"
	}
}

// State is one save level of the tracker: a transform and the visible
// region bound ("cull rect") expressed both in device space and in the
// local space of the transform.
//
// The device cull rect is fixed to the coordinate space the state was
// created in and is only ever narrowed by clips. The local cull rect is
// always the device cull rect mapped through the inverse transform, and is
// recomputed after every mutation.
//
// Clips are tracked as bounding rectangles. The result is conservative: the
// cull rect may be larger than the true visible region but never smaller.
type State struct {
	transform  Transform
	deviceCull Rect
	localCull  Rect
}

// NewState creates a state with the given device cull rect and transform.
// A 4x4 transform that is exactly affine is stored in affine form.
func NewState(cullRect Rect, t Transform) *State {
	s := newState(cullRect, t)
	return &s
}

// NewStateAffine creates a state with an affine transform.
func NewStateAffine(cullRect Rect, m Matrix3) *State {
	return NewState(cullRect, AffineTransform(m))
}

// NewState4x4 creates a state with a 4x4 transform.
func NewState4x4(cullRect Rect, m Matrix4) *State {
	return NewState(cullRect, FullTransform(m))
}

func newState(cullRect Rect, t Transform) State {
	s := State{
		transform:  normalize(t),
		deviceCull: normalizeRect(cullRect),
	}
	s.updateLocalCull()
	return s
}

// normalize stores an exactly affine 4x4 transform in affine form.
func normalize(t Transform) Transform {
	if t.is4x4 {
		return FullTransform(t.full)
	}
	return t
}

// normalizeRect collapses every empty rectangle to Rect{}.
func normalizeRect(r Rect) Rect {
	if r.IsEmpty() {
		return Rect{}
	}
	return r
}

// Using4x4 returns true if the transform is held in full 4x4 form.
func (s *State) Using4x4() bool { return s.transform.Using4x4() }

// DeviceCullRect returns the cull rect in device space.
func (s *State) DeviceCullRect() Rect { return s.deviceCull }

// LocalCullRect returns the cull rect in the local space of the transform.
// It is empty when the transform is not invertible.
func (s *State) LocalCullRect() Rect { return s.localCull }

// Matrix3 returns the transform in affine form. It panics when the
// transform has perspective or 3D terms.
func (s *State) Matrix3() Matrix3 { return s.transform.Matrix3() }

// Matrix4 returns the transform in 4x4 form.
func (s *State) Matrix4() Matrix4 { return s.transform.Matrix4() }

// Matrix returns the transform in whichever form is canonical.
func (s *State) Matrix() Transform { return s.transform }

// HasPerspective returns true if the transform has a non-trivial w row.
func (s *State) HasPerspective() bool { return s.transform.HasPerspective() }

// IsCulled returns true if nothing can be visible any more.
func (s *State) IsCulled() bool { return s.deviceCull.IsEmpty() }

// Translate right-multiplies the transform by a translation.
func (s *State) Translate(dx, dy float64) {
	s.concat(AffineTransform(Translate(dx, dy)))
}

// Scale right-multiplies the transform by a scale.
func (s *State) Scale(sx, sy float64) {
	s.concat(AffineTransform(Scale(sx, sy)))
}

// Skew right-multiplies the transform by a skew.
func (s *State) Skew(kx, ky float64) {
	s.concat(AffineTransform(Skew(kx, ky)))
}

// Rotate right-multiplies the transform by a rotation about the origin.
// Positive degrees rotate clockwise in a y-down coordinate system.
func (s *State) Rotate(degrees float64) {
	s.concat(AffineTransform(RotateDegrees(degrees)))
}

// Transform2DAffine right-multiplies the transform by the affine matrix
// with rows [a b c; d e f; 0 0 1].
func (s *State) Transform2DAffine(a, b, c, d, e, f float64) {
	s.concat(AffineTransform(Matrix3{A: a, B: b, C: c, D: d, E: e, F: f}))
}

// TransformFullPerspective right-multiplies the transform by the 4x4 matrix
// given in row-major order. The state switches to 4x4 form only if the
// matrix is not exactly affine.
func (s *State) TransformFullPerspective(
	mxx, mxy, mxz, mxt,
	myx, myy, myz, myt,
	mzx, mzy, mzz, mzt,
	mwx, mwy, mwz, mwt float64,
) {
	s.concat(FullTransform(Matrix4FromRows(
		mxx, mxy, mxz, mxt,
		myx, myy, myz, myt,
		mzx, mzy, mzz, mzt,
		mwx, mwy, mwz, mwt,
	)))
}

// Transform right-multiplies the transform by t.
func (s *State) Transform(t Transform) {
	s.concat(normalize(t))
}

// SetTransform replaces the transform. Unlike the concatenating
// operations it may switch the state back to affine form.
func (s *State) SetTransform(t Transform) {
	s.transform = normalize(t)
	s.updateLocalCull()
}

// SetIdentity replaces the transform with the identity.
func (s *State) SetIdentity() {
	s.SetTransform(IdentityTransform())
}

func (s *State) concat(t Transform) {
	s.transform = s.transform.Concat(t)
	s.updateLocalCull()
}

// ClipRect narrows the cull rect by a rectangle given in local space.
// Anti-aliasing does not change the bound.
func (s *State) ClipRect(r Rect, op ClipOp, isAA bool) {
	if !r.IsFinite() {
		return
	}
	switch op {
	case ClipIntersect:
		s.intersect(r)
	case ClipDifference:
		s.difference(r)
	}
	s.updateLocalCull()
}

// ClipRRect narrows the cull rect by a rounded rectangle given in local
// space. A difference only removes area covered by the rectangles
// inscribed between the corners.
func (s *State) ClipRRect(rr RRect, op ClipOp, isAA bool) {
	if !rr.IsFinite() {
		return
	}
	switch op {
	case ClipIntersect:
		s.intersect(rr.Rect)
	case ClipDifference:
		s.differenceRRect(rr)
	}
	s.updateLocalCull()
}

// ClipPath narrows the cull rect by a path given in local space.
//
// An intersect uses the path bounds. A difference only has an effect when
// the path is exactly a rectangle or a rounded rectangle. For inverse fill
// types the roles swap: intersecting with the outside of a path is a
// difference with the path, and removing the outside of a path is an
// intersect with its bounds.
func (s *State) ClipPath(p *Path, op ClipOp, isAA bool) {
	if p == nil {
		return
	}
	bounds := p.Bounds()
	if !bounds.IsFinite() {
		return
	}
	if p.IsInverseFillType() {
		if op == ClipIntersect {
			op = ClipDifference
		} else {
			op = ClipIntersect
		}
	}
	switch op {
	case ClipIntersect:
		s.intersect(bounds)
	case ClipDifference:
		if r, ok := p.IsRect(); ok {
			s.difference(r)
		} else if rr, ok := p.IsRRect(); ok {
			s.differenceRRect(rr)
		}
	}
	s.updateLocalCull()
}

func (s *State) intersect(local Rect) {
	if s.deviceCull.IsEmpty() {
		return
	}
	if local.IsEmpty() {
		s.deviceCull = Rect{}
		return
	}
	s.deviceCull = s.deviceCull.Intersect(s.transform.MapRect(local))
}

// difference removes local from the cull rect when the result is exactly a
// smaller rectangle. Under a transform that does not keep rectangles
// axis-aligned the mapped bounds would cover area outside the shape, so
// nothing is removed.
func (s *State) difference(local Rect) {
	if s.deviceCull.IsEmpty() || local.IsEmpty() || !s.transform.RectStaysRect() {
		return
	}
	hole := s.transform.MapRect(local)
	s.deviceCull = normalizeRect(cutout(s.deviceCull, hole))
}

func (s *State) differenceRRect(rr RRect) {
	if rr.IsRect() {
		s.difference(rr.Rect)
		return
	}
	h, v := rr.InnerRects()
	s.difference(h)
	s.difference(v)
}

func (s *State) updateLocalCull() {
	if s.deviceCull.IsEmpty() {
		s.localCull = Rect{}
		return
	}
	inv, ok := s.transform.Invert()
	if !ok {
		s.localCull = Rect{}
		return
	}
	s.localCull = normalizeRect(inv.MapRect(s.deviceCull))
}

// MapAndClipRect maps src from local space into device space and clips it
// to the device cull rect. The second result is false, and the rectangle
// empty, when nothing of src is visible. Touching the cull rect along an
// edge does not count as visible.
func (s *State) MapAndClipRect(src Rect) (Rect, bool) {
	if src.IsEmpty() || s.deviceCull.IsEmpty() {
		return Rect{}, false
	}
	dev := s.transform.MapRect(src)
	if !dev.Intersects(s.deviceCull) {
		return Rect{}, false
	}
	return dev.Intersect(s.deviceCull), true
}

// MapRect maps r from local space into device space without clipping.
func (s *State) MapRect(r Rect) Rect {
	return s.transform.MapRect(r)
}

// ContentCulled returns true if content with the given local bounds would
// not be visible.
func (s *State) ContentCulled(localBounds Rect) bool {
	_, visible := s.MapAndClipRect(localBounds)
	return !visible
}

// ResetDeviceCullRect replaces the cull rect with r, given in device space.
// Unlike a clip this can grow the cull rect.
func (s *State) ResetDeviceCullRect(r Rect) {
	s.deviceCull = normalizeRect(r)
	s.updateLocalCull()
}

// ResetLocalCullRect replaces the cull rect with r, given in local space.
func (s *State) ResetLocalCullRect(r Rect) {
	if r.IsEmpty() {
		s.deviceCull = Rect{}
	} else {
		s.deviceCull = normalizeRect(s.transform.MapRect(r))
	}
	s.updateLocalCull()
}
