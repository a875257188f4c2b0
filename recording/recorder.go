package recording

import (
	"log/slog"

	"github.com/gogpu/cull"
)

// Recorder captures transform, clip and draw calls as commands.
// It mirrors the cull.Tracker API and keeps a tracker of its own, so the
// current transform and cull rect can be queried while recording. Use
// FinishRecording to obtain an immutable Recording that can be replayed to
// any Backend.
//
// Example:
//
//	rec := recording.NewRecorder(cull.NewRectLTRB(0, 0, 800, 600),
//	    recording.WithRecordCulling(true))
//	rec.Save()
//	rec.Translate(100, 100)
//	rec.ClipRect(cull.NewRectLTRB(0, 0, 200, 200), cull.ClipIntersect, true)
//	rec.DrawRect(cull.NewRectLTRB(10, 10, 50, 50))
//	rec.Restore()
//	r := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	cullRect  cull.Rect
	tracker   *cull.Tracker
	commands  []Command
	resources *ResourcePool

	// Union of the clipped device bounds of all recorded draws.
	drawBounds cull.Rect
	culled     int

	opts recorderOptions
}

// NewRecorder creates a Recorder whose device cull rect is cullRect and
// whose transform starts as the identity.
func NewRecorder(cullRect cull.Rect, opts ...RecorderOption) *Recorder {
	o := defaultRecorderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r := &Recorder{
		cullRect: cullRect,
		opts:     o,
	}
	r.reset()
	return r
}

func (r *Recorder) reset() {
	var trackerOpts []cull.TrackerOption
	if r.opts.logger != nil {
		trackerOpts = append(trackerOpts, cull.WithLogger(r.opts.logger))
	}
	r.tracker = cull.NewTracker(r.cullRect, cull.IdentityTransform(), trackerOpts...)
	r.commands = make([]Command, 0, 256)
	r.resources = NewResourcePool()
	r.drawBounds = cull.Rect{}
	r.culled = 0
}

func (r *Recorder) log() *slog.Logger {
	if r.opts.logger != nil {
		return r.opts.logger
	}
	return cull.Logger()
}

// FinishRecording returns an immutable Recording containing all recorded
// commands. Open save levels are closed first. The Recorder is reset
// afterwards and may be used for a new recording.
func (r *Recorder) FinishRecording() *Recording {
	if r.tracker.SaveCount() > 1 {
		r.RestoreToCount(1)
	}
	rec := &Recording{
		cullRect:   r.cullRect,
		commands:   r.commands,
		resources:  r.resources,
		drawBounds: r.drawBounds,
		culled:     r.culled,
	}
	r.log().Debug("recording: finished",
		"commands", len(rec.commands),
		"paths", rec.resources.PathCount(),
		"culled", rec.culled)
	r.reset()
	return rec
}

// CullRect returns the device cull rect the recorder was created with.
func (r *Recorder) CullRect() cull.Rect {
	return r.cullRect
}

// Culled returns the number of draws dropped at record time.
func (r *Recorder) Culled() int {
	return r.culled
}

// Current returns a copy of the current transform and cull state.
func (r *Recorder) Current() cull.State {
	return r.tracker.Current()
}

// DeviceCullRect returns the current cull rect in device space.
func (r *Recorder) DeviceCullRect() cull.Rect { return r.tracker.DeviceCullRect() }

// LocalCullRect returns the current cull rect in local space.
func (r *Recorder) LocalCullRect() cull.Rect { return r.tracker.LocalCullRect() }

// Matrix returns the current transform.
func (r *Recorder) Matrix() cull.Transform { return r.tracker.Matrix() }

// QuickReject returns true if content with the given local bounds would
// not be visible.
func (r *Recorder) QuickReject(localBounds cull.Rect) bool {
	return r.tracker.ContentCulled(localBounds)
}

// --------------------------------------------------------------------------
// State Management
// --------------------------------------------------------------------------

// Save pushes a save level and returns the new depth.
func (r *Recorder) Save() int {
	r.commands = append(r.commands, SaveCommand{})
	return r.tracker.Save()
}

// Restore pops a save level. An unmatched Restore is logged and not
// recorded.
func (r *Recorder) Restore() {
	if r.tracker.SaveCount() <= 1 {
		r.log().Warn("recording: restore without matching save")
		return
	}
	r.tracker.Restore()
	r.commands = append(r.commands, RestoreCommand{})
}

// RestoreToCount pops save levels until the depth is n. Nothing is
// recorded when the depth is already n or less.
func (r *Recorder) RestoreToCount(n int) {
	n = max(n, 1)
	if n >= r.tracker.SaveCount() {
		return
	}
	r.tracker.RestoreToCount(n)
	r.commands = append(r.commands, RestoreToCountCommand{Count: n})
}

// SaveCount returns the current depth. A new recorder has depth 1.
func (r *Recorder) SaveCount() int {
	return r.tracker.SaveCount()
}

// --------------------------------------------------------------------------
// Transform
// --------------------------------------------------------------------------

// Translate right-multiplies the current transform by a translation.
func (r *Recorder) Translate(dx, dy float64) {
	r.concat(cull.AffineTransform(cull.Translate(dx, dy)))
}

// Scale right-multiplies the current transform by a scale.
func (r *Recorder) Scale(sx, sy float64) {
	r.concat(cull.AffineTransform(cull.Scale(sx, sy)))
}

// Skew right-multiplies the current transform by a skew.
func (r *Recorder) Skew(kx, ky float64) {
	r.concat(cull.AffineTransform(cull.Skew(kx, ky)))
}

// Rotate right-multiplies the current transform by a rotation in degrees.
func (r *Recorder) Rotate(degrees float64) {
	r.concat(cull.AffineTransform(cull.RotateDegrees(degrees)))
}

// Transform2DAffine right-multiplies the current transform by the affine
// matrix with rows [a b c; d e f; 0 0 1].
func (r *Recorder) Transform2DAffine(a, b, c, d, e, f float64) {
	r.concat(cull.AffineTransform(cull.Matrix3{A: a, B: b, C: c, D: d, E: e, F: f}))
}

// TransformFullPerspective right-multiplies the current transform by the
// 4x4 matrix given in row-major order.
func (r *Recorder) TransformFullPerspective(
	mxx, mxy, mxz, mxt,
	myx, myy, myz, myt,
	mzx, mzy, mzz, mzt,
	mwx, mwy, mwz, mwt float64,
) {
	r.concat(cull.FullTransform(cull.Matrix4FromRows(
		mxx, mxy, mxz, mxt,
		myx, myy, myz, myt,
		mzx, mzy, mzz, mzt,
		mwx, mwy, mwz, mwt,
	)))
}

// Transform right-multiplies the current transform by t.
func (r *Recorder) Transform(t cull.Transform) {
	r.concat(t)
}

// SetTransform replaces the current transform.
func (r *Recorder) SetTransform(t cull.Transform) {
	r.tracker.SetTransform(t)
	r.commands = append(r.commands, SetTransformCommand{Transform: t})
}

// SetIdentity replaces the current transform with the identity.
func (r *Recorder) SetIdentity() {
	r.SetTransform(cull.IdentityTransform())
}

func (r *Recorder) concat(t cull.Transform) {
	r.tracker.Transform(t)
	r.commands = append(r.commands, ConcatCommand{Transform: t})
}

// --------------------------------------------------------------------------
// Clipping
// --------------------------------------------------------------------------

// ClipRect narrows the clip by a rectangle in local space.
func (r *Recorder) ClipRect(rect cull.Rect, op cull.ClipOp, isAA bool) {
	r.tracker.ClipRect(rect, op, isAA)
	r.commands = append(r.commands, ClipRectCommand{Rect: rect, Op: op, AA: isAA})
}

// ClipRRect narrows the clip by a rounded rectangle in local space.
func (r *Recorder) ClipRRect(rr cull.RRect, op cull.ClipOp, isAA bool) {
	r.tracker.ClipRRect(rr, op, isAA)
	r.commands = append(r.commands, ClipRRectCommand{RRect: rr, Op: op, AA: isAA})
}

// ClipPath narrows the clip by a path in local space. The path is copied.
// A nil path is ignored.
func (r *Recorder) ClipPath(p *cull.Path, op cull.ClipOp, isAA bool) {
	if p == nil {
		return
	}
	r.tracker.ClipPath(p, op, isAA)
	ref := r.resources.AddPath(p)
	r.commands = append(r.commands, ClipPathCommand{Path: ref, Op: op, AA: isAA})
}

// --------------------------------------------------------------------------
// Drawing
// --------------------------------------------------------------------------

// DrawRect records a rectangle draw.
func (r *Recorder) DrawRect(rect cull.Rect) {
	r.draw(Shape{Kind: ShapeRect, Rect: rect}, func() Command {
		return DrawRectCommand{Rect: rect}
	})
}

// DrawRRect records a rounded rectangle draw.
func (r *Recorder) DrawRRect(rr cull.RRect) {
	r.draw(Shape{Kind: ShapeRRect, RRect: rr}, func() Command {
		return DrawRRectCommand{RRect: rr}
	})
}

// DrawPath records a path draw. The path is copied. A nil path is ignored.
func (r *Recorder) DrawPath(p *cull.Path) {
	if p == nil {
		return
	}
	r.draw(Shape{Kind: ShapePath, Path: p}, func() Command {
		return DrawPathCommand{Path: r.resources.AddPath(p)}
	})
}

// draw records the command built by cmd unless record-time culling is on
// and the shape is not visible.
func (r *Recorder) draw(shape Shape, cmd func() Command) {
	dev, visible := visibleBounds(r.tracker, shape)
	if !visible && r.opts.recordCulling {
		r.culled++
		r.log().Debug("recording: draw culled",
			"kind", shape.Kind.String(),
			"depth", r.tracker.SaveCount())
		return
	}
	if visible {
		r.drawBounds = r.drawBounds.Union(dev)
	}
	r.commands = append(r.commands, cmd())
}

// visibleBounds returns the clipped device bounds of shape under the
// current state of tr. An inverse filled path covers the whole cull rect.
func visibleBounds(tr *cull.Tracker, shape Shape) (cull.Rect, bool) {
	if shape.IsInverse() {
		if tr.IsCulled() {
			return cull.Rect{}, false
		}
		return tr.DeviceCullRect(), true
	}
	return tr.MapAndClipRect(shape.Bounds())
}

