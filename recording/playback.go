package recording

import (
	"context"
	"errors"
	"fmt"

	"github.com/gogpu/cull"
)

// Recording is an immutable container for recorded commands.
// It can be replayed to any Backend implementation, any number of times.
type Recording struct {
	cullRect   cull.Rect
	commands   []Command
	resources  *ResourcePool
	drawBounds cull.Rect
	culled     int
}

// CullRect returns the device cull rect the recording was made with.
func (r *Recording) CullRect() cull.Rect {
	return r.cullRect
}

// Commands returns the recorded commands. The slice must not be modified.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// DrawBounds returns the union of the device bounds of all draws that
// were visible at record time.
func (r *Recording) DrawBounds() cull.Rect {
	return r.drawBounds
}

// Culled returns the number of draws dropped at record time.
func (r *Recording) Culled() int {
	return r.culled
}

// PlaybackStats summarizes one playback.
type PlaybackStats struct {
	// Commands is the number of commands replayed.
	Commands int
	// Draws is the number of draws handed to the backend.
	Draws int
	// Culled is the number of draws skipped because nothing of them was
	// visible.
	Culled int
}

// Playback replays the recording to backend through a fresh tracker.
//
// Every draw is mapped into device space and clipped to the current cull
// rect before it reaches the backend; invisible draws are skipped and
// counted. The context is checked between commands. Once Begin succeeds,
// End is always called, also when playback stops early on cancellation,
// a dangling path reference (ErrInvalidPath) or an unknown command. Errors
// from End are joined with the error that stopped playback.
func (r *Recording) Playback(ctx context.Context, backend Backend) (PlaybackStats, error) {
	var stats PlaybackStats

	if err := backend.Begin(r.cullRect); err != nil {
		return stats, fmt.Errorf("recording: begin: %w", err)
	}

	err := r.replay(ctx, backend, &stats)
	if endErr := backend.End(); endErr != nil {
		err = errors.Join(err, fmt.Errorf("recording: end: %w", endErr))
	}
	return stats, err
}

// replay sends the commands to an already begun backend.
func (r *Recording) replay(ctx context.Context, backend Backend, stats *PlaybackStats) error {
	tr := cull.NewTracker(r.cullRect, cull.IdentityTransform())
	drawIndex := 0
	for i, cmd := range r.commands {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("recording: playback stopped at command %d: %w", i, err)
		}

		switch c := cmd.(type) {
		case SaveCommand:
			tr.Save()
			backend.Save()
		case RestoreCommand:
			if tr.SaveCount() > 1 {
				tr.Restore()
				backend.Restore()
			}
		case RestoreToCountCommand:
			for tr.SaveCount() > max(c.Count, 1) {
				tr.Restore()
				backend.Restore()
			}
		case ConcatCommand:
			tr.Transform(c.Transform)
			backend.SetTransform(tr.Matrix())
		case SetTransformCommand:
			tr.SetTransform(c.Transform)
			backend.SetTransform(tr.Matrix())
		case ClipRectCommand:
			tr.ClipRect(c.Rect, c.Op, c.AA)
			backend.Clip(Shape{Kind: ShapeRect, Rect: c.Rect}, c.Op, c.AA)
		case ClipRRectCommand:
			tr.ClipRRect(c.RRect, c.Op, c.AA)
			backend.Clip(Shape{Kind: ShapeRRect, RRect: c.RRect}, c.Op, c.AA)
		case ClipPathCommand:
			p := r.resources.GetPath(c.Path)
			if p == nil {
				return fmt.Errorf("recording: command %d (%v): %w", i, cmd.Type(), ErrInvalidPath)
			}
			tr.ClipPath(p, c.Op, c.AA)
			backend.Clip(Shape{Kind: ShapePath, Path: p}, c.Op, c.AA)
		case DrawRectCommand, DrawRRectCommand, DrawPathCommand:
			shape, err := r.drawShape(c)
			if err != nil {
				return fmt.Errorf("recording: command %d (%v): %w", i, cmd.Type(), err)
			}
			if dev, ok := visibleBounds(tr, shape); ok {
				backend.Draw(DrawCommand{Shape: shape, Index: drawIndex}, dev)
				stats.Draws++
			} else {
				stats.Culled++
			}
			drawIndex++
		default:
			return fmt.Errorf("recording: command %d (%v): %w", i, cmd.Type(), ErrUnsupportedCommand)
		}
		stats.Commands++
	}
	return nil
}

// drawShape resolves a draw command into its shape.
func (r *Recording) drawShape(cmd Command) (Shape, error) {
	switch c := cmd.(type) {
	case DrawRectCommand:
		return Shape{Kind: ShapeRect, Rect: c.Rect}, nil
	case DrawRRectCommand:
		return Shape{Kind: ShapeRRect, RRect: c.RRect}, nil
	case DrawPathCommand:
		p := r.resources.GetPath(c.Path)
		if p == nil {
			return Shape{}, ErrInvalidPath
		}
		return Shape{Kind: ShapePath, Path: p}, nil
	}
	return Shape{}, ErrUnsupportedCommand
}
