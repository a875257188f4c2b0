// Package scissor provides a recording backend that turns every visible
// draw into a GPU scissor rectangle.
//
// A GPU can restrict rasterization of a draw to an integer rectangle of the
// render target. The rectangle handed to Draw during playback is the draw's
// device bounds already clipped to the cull rect, which is exactly the
// scissor that draw needs. The backend rounds it out to whole pixels,
// clamps it to the render target and collects the result as a
// gputypes.Origin3D and gputypes.Extent3D pair, the form a
// texture-copy or render-pass region takes.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/cull/recording/backends/scissor"
//
//	// Create via registry
//	backend, _ := recording.NewBackend("scissor")
//
//	// Or create directly
//	backend := scissor.NewBackend()
//
//	// Playback recording
//	stats, err := rec.Playback(ctx, backend)
//
//	// Get output
//	for _, s := range backend.Scissors() {
//	    pass.SetScissorRect(s.Origin.X, s.Origin.Y, s.Extent.Width, s.Extent.Height)
//	}
package scissor

import (
	"errors"
	"image"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/cull"
	"github.com/gogpu/cull/recording"
)

func init() {
	recording.Register("scissor", func() recording.Backend {
		return NewBackend()
	})
}

// ErrEmptyTarget is returned by Begin when the cull rect covers no pixel of
// the render target.
var ErrEmptyTarget = errors.New("scissor: empty render target")

// Scissor is the pixel region one draw may touch.
type Scissor struct {
	// Index is the DrawCommand.Index of the draw.
	Index int
	// Kind is the shape of the draw.
	Kind   recording.ShapeKind
	Origin gputypes.Origin3D
	Extent gputypes.Extent3D
}

// Rect returns the scissor as an image.Rectangle.
func (s Scissor) Rect() image.Rectangle {
	x, y := int(s.Origin.X), int(s.Origin.Y)
	return image.Rect(x, y, x+int(s.Extent.Width), y+int(s.Extent.Height))
}

// Backend collects scissor rectangles for visible draws.
// It implements recording.Backend.
type Backend struct {
	bounds    image.Rectangle
	scissors  []Scissor
	depth     int
	clips     int
	dropped   int
	transform cull.Transform
	ended     bool
}

// Ensure Backend implements the recording.Backend interface.
var _ recording.Backend = (*Backend)(nil)

// NewBackend creates a new scissor backend.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin sizes the render target from the cull rect. The target spans from
// the origin to the cull rect's rounded out bottom-right corner; scissors
// are clamped to the part of the target inside the cull rect.
func (b *Backend) Begin(cullRect cull.Rect) error {
	bounds := cullRect.RoundOut().Intersect(image.Rect(0, 0, math.MaxInt32, math.MaxInt32))
	if bounds.Empty() {
		return ErrEmptyTarget
	}
	*b = Backend{
		bounds:    bounds,
		transform: cull.IdentityTransform(),
	}
	return nil
}

// End finalizes the scissor list.
func (b *Backend) End() error {
	b.ended = true
	return nil
}

// Save tracks the save depth.
func (b *Backend) Save() {
	b.depth++
}

// Restore tracks the save depth.
func (b *Backend) Restore() {
	if b.depth > 0 {
		b.depth--
	}
}

// SetTransform records the current transform. Scissors are computed from
// device rectangles and do not depend on it.
func (b *Backend) SetTransform(t cull.Transform) {
	b.transform = t
}

// Clip counts clips. Their effect is already part of the device rectangle
// passed to Draw.
func (b *Backend) Clip(_ recording.ClipShape, _ cull.ClipOp, _ bool) {
	b.clips++
}

// Draw rounds device out to whole pixels, clamps it to the target and
// stores the result. A draw whose rectangle covers no pixel is dropped.
func (b *Backend) Draw(cmd recording.DrawCommand, device cull.Rect) {
	r := device.RoundOut().Intersect(b.bounds)
	if r.Empty() {
		b.dropped++
		return
	}
	b.scissors = append(b.scissors, Scissor{
		Index: cmd.Index,
		Kind:  cmd.Shape.Kind,
		// #nosec G115 -- r lies within [0, MaxInt32]
		Origin: gputypes.Origin3D{X: uint32(r.Min.X), Y: uint32(r.Min.Y)},
		Extent: gputypes.Extent3D{
			Width:              uint32(r.Dx()), // #nosec G115
			Height:             uint32(r.Dy()), // #nosec G115
			DepthOrArrayLayers: 1,
		},
	})
}

// Scissors returns the collected scissors in draw order.
func (b *Backend) Scissors() []Scissor {
	return b.scissors
}

// Target returns the size of the render target.
func (b *Backend) Target() gputypes.Extent3D {
	return gputypes.Extent3D{
		Width:              uint32(b.bounds.Max.X), // #nosec G115
		Height:             uint32(b.bounds.Max.Y), // #nosec G115
		DepthOrArrayLayers: 1,
	}
}

// Bounds returns the pixel region scissors are clamped to.
func (b *Backend) Bounds() image.Rectangle {
	return b.bounds
}

// Depth returns the current save depth.
func (b *Backend) Depth() int {
	return b.depth
}

// Clips returns the number of clips received.
func (b *Backend) Clips() int {
	return b.clips
}

// Dropped returns the number of draws that covered no pixel.
func (b *Backend) Dropped() int {
	return b.dropped
}

// Transform returns the last transform received.
func (b *Backend) Transform() cull.Transform {
	return b.transform
}

// Ended reports whether End has been called since the last Begin.
func (b *Backend) Ended() bool {
	return b.ended
}
