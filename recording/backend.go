package recording

import "github.com/gogpu/cull"

// Backend receives the commands of a recording that survive culling.
//
// Playback keeps its own tracker and forwards state changes so that a
// backend can mirror the save stack, the transform and the clips in its
// output format. Draws arrive with their device-space bounds already
// clipped to the cull rect; draws that would be invisible never reach the
// backend.
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Handle all Backend methods (even if no-op for some)
//  3. Manage own state stack for Save/Restore
//
// # Example Backend Registration
//
//	func init() {
//	    recording.Register("scissor", func() recording.Backend {
//	        return scissor.NewBackend()
//	    })
//	}
type Backend interface {
	// Begin prepares the backend for a recording with the given device
	// cull rect. It is called once before any other method.
	Begin(cullRect cull.Rect) error

	// End finalizes the output.
	End() error

	// Save pushes the backend state.
	Save()

	// Restore pops the backend state. Playback never calls Restore more
	// often than Save.
	Restore()

	// SetTransform receives the full current transform after every
	// transform change.
	SetTransform(t cull.Transform)

	// Clip receives every clip in local space.
	Clip(shape ClipShape, op cull.ClipOp, isAA bool)

	// Draw receives a visible draw and its clipped device bounds. For
	// inverse filled paths device is the whole cull rect.
	Draw(cmd DrawCommand, device cull.Rect)
}
