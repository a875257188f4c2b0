// Package recording records transform, clip and draw calls as commands and
// replays them with culling.
//
// # Architecture
//
// The system follows a Command Pattern with three main components:
//
//   - Recorder: Captures calls as commands and tracks the cull state
//   - Recording: Stores commands and resources for playback
//   - Backend: Receives the commands that survive culling
//
// Both the Recorder and Playback drive a cull.Tracker. Before each draw the
// draw's local bounds are mapped into device space and clipped to the
// current cull rect; draws with nothing visible are skipped. Backends only
// see visible draws, together with their clipped device rectangle.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(cull.NewRectLTRB(0, 0, 800, 600))
//
//	rec.Save()
//	rec.Translate(100, 100)
//	rec.ClipRect(cull.NewRectLTRB(0, 0, 200, 200), cull.ClipIntersect, true)
//	rec.DrawRect(cull.NewRectLTRB(10, 10, 50, 50))   // visible
//	rec.DrawRect(cull.NewRectLTRB(300, 0, 350, 50))  // culled on playback
//	rec.Restore()
//
//	r := rec.FinishRecording()
//
// # Playback to Backends
//
//	backend, _ := recording.NewBackend("scissor")
//	stats, err := r.Playback(ctx, backend)
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(stats.Draws, stats.Culled)
//
// Playback checks ctx between commands and stops with the context's error
// wrapped when it is canceled.
//
// # Record-Time Culling
//
// With WithRecordCulling(true) the Recorder drops draws that are invisible
// when they are recorded, so they never enter the Recording. Dropped draws
// are counted by Recording.Culled.
//
// # Backend Registration
//
// Backends are registered using the database/sql driver pattern. Import a
// backend package with a blank identifier to automatically register it:
//
//	import (
//	    "github.com/gogpu/cull/recording"
//	    _ "github.com/gogpu/cull/recording/backends/scissor" // Registers "scissor"
//	)
//
// # Resource Management
//
// Paths are cloned into a ResourcePool and referenced by PathRef. Rects and
// rounded rects are stored inline in their commands. This ensures
// recordings are immutable and can be safely played back multiple times to
// different backends.
//
// # Thread Safety
//
// Recorder is NOT safe for concurrent use. Each goroutine should use its own
// Recorder instance. Recording objects are immutable after FinishRecording
// and can be safely shared and played back from multiple goroutines.
package recording
