package cull

import "log/slog"

// Tracker maintains the transform and cull rect of a rendering command
// stream across nested Save and Restore calls.
//
// Every save level is a State value held in a slice indexed by depth; Save
// copies the top element and Restore drops it. Queries and mutations apply
// to the top state.
//
// A Tracker is not safe for concurrent use.
type Tracker struct {
	stack  []State
	logger *slog.Logger
}

// NewTracker creates a tracker with a single save level holding the given
// device cull rect and transform.
func NewTracker(cullRect Rect, t Transform, opts ...TrackerOption) *Tracker {
	o := defaultTrackerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	stack := make([]State, 1, o.stackCapacity)
	stack[0] = newState(cullRect, t)
	return &Tracker{
		stack:  stack,
		logger: o.logger,
	}
}

func (tr *Tracker) log() *slog.Logger {
	if tr.logger != nil {
		return tr.logger
	}
	return Logger()
}

func (tr *Tracker) top() *State {
	return &tr.stack[len(tr.stack)-1]
}

// Save pushes a copy of the current state and returns the new depth.
// The depth can be passed to RestoreToCount.
func (tr *Tracker) Save() int {
	tr.stack = append(tr.stack, *tr.top())
	return len(tr.stack)
}

// Restore pops the current state. Restoring the initial state is a
// programming error; it is logged and ignored.
func (tr *Tracker) Restore() {
	if len(tr.stack) <= 1 {
		tr.log().Warn("cull: restore without matching save")
		return
	}
	tr.stack = tr.stack[:len(tr.stack)-1]
}

// RestoreToCount pops states until the depth is n. Values below 1 restore
// to the initial state; values at or above the current depth do nothing.
func (tr *Tracker) RestoreToCount(n int) {
	if n < 1 {
		n = 1
	}
	if n < len(tr.stack) {
		tr.stack = tr.stack[:n]
	}
}

// SaveCount returns the current depth. A new tracker has depth 1.
func (tr *Tracker) SaveCount() int {
	return len(tr.stack)
}

// Current returns a copy of the current state.
func (tr *Tracker) Current() State {
	return *tr.top()
}

// Using4x4 returns true if the current transform is held in 4x4 form.
func (tr *Tracker) Using4x4() bool { return tr.top().Using4x4() }

// DeviceCullRect returns the current cull rect in device space.
func (tr *Tracker) DeviceCullRect() Rect { return tr.top().DeviceCullRect() }

// LocalCullRect returns the current cull rect in local space.
func (tr *Tracker) LocalCullRect() Rect { return tr.top().LocalCullRect() }

// Matrix3 returns the current transform in affine form. It panics when the
// transform has perspective or 3D terms.
func (tr *Tracker) Matrix3() Matrix3 { return tr.top().Matrix3() }

// Matrix4 returns the current transform in 4x4 form.
func (tr *Tracker) Matrix4() Matrix4 { return tr.top().Matrix4() }

// Matrix returns the current transform.
func (tr *Tracker) Matrix() Transform { return tr.top().Matrix() }

// HasPerspective returns true if the current transform has perspective.
func (tr *Tracker) HasPerspective() bool { return tr.top().HasPerspective() }

// IsCulled returns true if nothing can be visible at the current level.
func (tr *Tracker) IsCulled() bool { return tr.top().IsCulled() }

// Translate right-multiplies the current transform by a translation.
func (tr *Tracker) Translate(dx, dy float64) {
	tr.mutate(func(s *State) { s.Translate(dx, dy) })
}

// Scale right-multiplies the current transform by a scale.
func (tr *Tracker) Scale(sx, sy float64) {
	tr.mutate(func(s *State) { s.Scale(sx, sy) })
}

// Skew right-multiplies the current transform by a skew.
func (tr *Tracker) Skew(kx, ky float64) {
	tr.mutate(func(s *State) { s.Skew(kx, ky) })
}

// Rotate right-multiplies the current transform by a rotation in degrees.
func (tr *Tracker) Rotate(degrees float64) {
	tr.mutate(func(s *State) { s.Rotate(degrees) })
}

// Transform2DAffine right-multiplies the current transform by the affine
// matrix with rows [a b c; d e f; 0 0 1].
func (tr *Tracker) Transform2DAffine(a, b, c, d, e, f float64) {
	tr.mutate(func(s *State) { s.Transform2DAffine(a, b, c, d, e, f) })
}

// TransformFullPerspective right-multiplies the current transform by the
// 4x4 matrix given in row-major order.
func (tr *Tracker) TransformFullPerspective(
	mxx, mxy, mxz, mxt,
	myx, myy, myz, myt,
	mzx, mzy, mzz, mzt,
	mwx, mwy, mwz, mwt float64,
) {
	tr.mutate(func(s *State) {
		s.TransformFullPerspective(
			mxx, mxy, mxz, mxt,
			myx, myy, myz, myt,
			mzx, mzy, mzz, mzt,
			mwx, mwy, mwz, mwt,
		)
	})
}

// Transform right-multiplies the current transform by t.
func (tr *Tracker) Transform(t Transform) {
	tr.mutate(func(s *State) { s.Transform(t) })
}

// SetTransform replaces the current transform.
func (tr *Tracker) SetTransform(t Transform) {
	tr.mutate(func(s *State) { s.SetTransform(t) })
}

// SetIdentity replaces the current transform with the identity.
func (tr *Tracker) SetIdentity() {
	tr.mutate((*State).SetIdentity)
}

// mutate applies fn to the current state and reports promotions to 4x4
// form and transforms that collapse the local cull rect.
func (tr *Tracker) mutate(fn func(s *State)) {
	s := tr.top()
	was4x4 := s.Using4x4()
	fn(s)
	if !was4x4 && s.Using4x4() {
		tr.log().Debug("cull: transform promoted to 4x4", "depth", len(tr.stack))
	}
	if _, ok := s.transform.Invert(); !ok {
		tr.log().Debug("cull: transform is not invertible", "depth", len(tr.stack))
	}
}

// ClipRect narrows the current cull rect by a rectangle.
func (tr *Tracker) ClipRect(r Rect, op ClipOp, isAA bool) {
	tr.top().ClipRect(r, op, isAA)
}

// ClipRRect narrows the current cull rect by a rounded rectangle.
func (tr *Tracker) ClipRRect(rr RRect, op ClipOp, isAA bool) {
	tr.top().ClipRRect(rr, op, isAA)
}

// ClipPath narrows the current cull rect by a path.
func (tr *Tracker) ClipPath(p *Path, op ClipOp, isAA bool) {
	tr.top().ClipPath(p, op, isAA)
}

// MapAndClipRect maps src into device space and clips it to the current
// cull rect. The second result is false when nothing of src is visible.
func (tr *Tracker) MapAndClipRect(src Rect) (Rect, bool) {
	return tr.top().MapAndClipRect(src)
}

// MapRect maps r into device space without clipping.
func (tr *Tracker) MapRect(r Rect) Rect {
	return tr.top().MapRect(r)
}

// ContentCulled returns true if content with the given local bounds would
// not be visible.
func (tr *Tracker) ContentCulled(localBounds Rect) bool {
	return tr.top().ContentCulled(localBounds)
}

// ResetDeviceCullRect replaces the current cull rect, given in device space.
func (tr *Tracker) ResetDeviceCullRect(r Rect) {
	tr.top().ResetDeviceCullRect(r)
}

// ResetLocalCullRect replaces the current cull rect, given in local space.
func (tr *Tracker) ResetLocalCullRect(r Rect) {
	tr.top().ResetLocalCullRect(r)
}
