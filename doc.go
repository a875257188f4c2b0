// Package cull tracks the transform and visible region of a rendering
// command stream.
//
// # Overview
//
// A display list is replayed as a sequence of save/restore, transform and
// clip operations followed by draws. Tracker follows that sequence and
// answers, before every draw, whether the draw can be visible at all and
// which device-space rectangle it may touch.
//
// # Quick Start
//
//	import "github.com/gogpu/cull"
//
//	tr := cull.NewTracker(cull.NewRect(0, 0, 800, 600), cull.IdentityTransform())
//
//	tr.Save()
//	tr.Translate(100, 50)
//	tr.ClipRect(cull.NewRect(0, 0, 200, 200), cull.ClipIntersect, true)
//
//	if dev, ok := tr.MapAndClipRect(cull.NewRect(150, 150, 100, 100)); ok {
//	    // paint into dev
//	}
//	tr.Restore()
//
// # Transforms
//
// Transform holds either a 2D affine Matrix3 or a full 4x4 Matrix4. A state
// stays affine until an operation introduces 3D or perspective terms, and
// then stays 4x4 until the transform is replaced with SetTransform.
//
// # Cull Rects
//
// The device cull rect lives in the coordinate space the tracker was
// created in. Transforms never change it; clips only shrink it. The local
// cull rect is the device cull rect mapped through the inverse transform.
//
// Clips are tracked as bounding rectangles, never tighter than the true
// region. A difference clip only shrinks the cull rect when it removes a
// full slab from one edge, or all of it.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Positive rotations turn clockwise on screen
package cull

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
