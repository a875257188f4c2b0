package scissor

import (
	"context"
	"errors"
	"image"
	"math"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/cull"
	"github.com/gogpu/cull/recording"
)

func TestBackendRegistration(t *testing.T) {
	if !recording.IsRegistered("scissor") {
		t.Fatal("scissor backend not registered")
	}

	backend, err := recording.NewBackend("scissor")
	if err != nil {
		t.Fatalf("failed to create scissor backend: %v", err)
	}
	if _, ok := backend.(*Backend); !ok {
		t.Fatal("backend is not *scissor.Backend")
	}
}

func TestBackendLifecycle(t *testing.T) {
	backend := NewBackend()

	if err := backend.Begin(cull.NewRectLTRB(0.5, 0, 99.5, 60)); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	want := gputypes.Extent3D{Width: 100, Height: 60, DepthOrArrayLayers: 1}
	if got := backend.Target(); got != want {
		t.Errorf("Target() = %+v, want %+v", got, want)
	}
	if got := backend.Bounds(); got != image.Rect(0, 0, 100, 60) {
		t.Errorf("Bounds() = %v, want (0,0)-(100,60)", got)
	}
	if backend.Ended() {
		t.Error("Ended() = true before End")
	}
	if err := backend.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	if !backend.Ended() {
		t.Error("Ended() = false after End")
	}
}

func TestBackendBeginHuge(t *testing.T) {
	backend := NewBackend()
	if err := backend.Begin(cull.NewRectLTRB(-1e20, -1e20, 1e20, 1e20)); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	want := gputypes.Extent3D{Width: math.MaxInt32, Height: math.MaxInt32, DepthOrArrayLayers: 1}
	if got := backend.Target(); got != want {
		t.Errorf("Target() = %+v, want %+v", got, want)
	}
	if got, want := backend.Bounds(), image.Rect(0, 0, math.MaxInt32, math.MaxInt32); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestBackendBeginEmpty(t *testing.T) {
	tests := []struct {
		name string
		cull cull.Rect
	}{
		{"empty", cull.Rect{}},
		{"negative quadrant", cull.NewRectLTRB(-100, -100, -10, -10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := NewBackend().Begin(tt.cull); !errors.Is(err, ErrEmptyTarget) {
				t.Errorf("Begin() error = %v, want ErrEmptyTarget", err)
			}
		})
	}
}

func TestBackendDraw(t *testing.T) {
	tests := []struct {
		name   string
		cull   cull.Rect
		device cull.Rect
		want   image.Rectangle
		ok     bool
	}{
		{
			name:   "integer",
			cull:   cull.NewRectLTRB(0, 0, 100, 100),
			device: cull.NewRectLTRB(10, 20, 30, 40),
			want:   image.Rect(10, 20, 30, 40),
			ok:     true,
		},
		{
			name:   "rounded out",
			cull:   cull.NewRectLTRB(0, 0, 100, 100),
			device: cull.NewRectLTRB(10.25, 20.75, 30.5, 40.01),
			want:   image.Rect(10, 20, 31, 41),
			ok:     true,
		},
		{
			name:   "fractional cull rect",
			cull:   cull.NewRectLTRB(0, 0, 50.5, 50.5),
			device: cull.NewRectLTRB(40, 40, 50.5, 50.5),
			want:   image.Rect(40, 40, 51, 51),
			ok:     true,
		},
		{
			name:   "clamped at origin",
			cull:   cull.NewRectLTRB(-50, -50, 50, 50),
			device: cull.NewRectLTRB(-20, -20, 10, 10),
			want:   image.Rect(0, 0, 10, 10),
			ok:     true,
		},
		{
			name:   "off target",
			cull:   cull.NewRectLTRB(-50, -50, 50, 50),
			device: cull.NewRectLTRB(-40, -40, -30, -30),
			ok:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := NewBackend()
			if err := backend.Begin(tt.cull); err != nil {
				t.Fatalf("Begin failed: %v", err)
			}
			backend.Draw(recording.DrawCommand{Index: 7}, tt.device)

			scissors := backend.Scissors()
			if !tt.ok {
				if len(scissors) != 0 || backend.Dropped() != 1 {
					t.Errorf("Scissors() = %+v, Dropped() = %d, want none and 1", scissors, backend.Dropped())
				}
				return
			}
			if len(scissors) != 1 {
				t.Fatalf("got %d scissors, want 1", len(scissors))
			}
			s := scissors[0]
			if got := s.Rect(); got != tt.want {
				t.Errorf("Rect() = %v, want %v", got, tt.want)
			}
			if s.Index != 7 {
				t.Errorf("Index = %d, want 7", s.Index)
			}
			if s.Extent.DepthOrArrayLayers != 1 {
				t.Errorf("DepthOrArrayLayers = %d, want 1", s.Extent.DepthOrArrayLayers)
			}
		})
	}
}

func TestBackendState(t *testing.T) {
	backend := NewBackend()
	if err := backend.Begin(cull.NewRectLTRB(0, 0, 10, 10)); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	backend.Save()
	backend.Save()
	backend.Restore()
	backend.Restore()
	backend.Restore()
	if backend.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0", backend.Depth())
	}

	backend.Clip(recording.Shape{Kind: recording.ShapeRect}, cull.ClipIntersect, true)
	if backend.Clips() != 1 {
		t.Errorf("Clips() = %d, want 1", backend.Clips())
	}

	backend.SetTransform(cull.AffineTransform(cull.Scale(2, 2)))
	if got := backend.Transform().Matrix3(); got != cull.Scale(2, 2) {
		t.Errorf("Transform() = %+v, want scale 2", got)
	}
}

func TestRecordingPlayback(t *testing.T) {
	rec := recording.NewRecorder(cull.NewRectLTRB(0, 0, 200, 100))
	rec.Save()
	rec.Translate(10, 10)
	rec.ClipRect(cull.NewRectLTRB(0, 0, 50, 50), cull.ClipIntersect, true)
	rec.DrawRect(cull.NewRectLTRB(-10, -10, 20.5, 20.5))
	rec.DrawRRect(cull.NewRRect(cull.NewRectLTRB(100, 100, 150, 150), 5, 5))
	rec.Restore()
	p := cull.NewPath()
	p.AddCircle(150, 50, 25)
	rec.DrawPath(p)

	backend := NewBackend()
	stats, err := rec.FinishRecording().Playback(context.Background(), backend)
	if err != nil {
		t.Fatalf("Playback failed: %v", err)
	}
	if stats.Draws != 2 || stats.Culled != 1 {
		t.Errorf("stats = %+v, want 2 draws and 1 culled", stats)
	}

	scissors := backend.Scissors()
	if len(scissors) != 2 {
		t.Fatalf("got %d scissors, want 2", len(scissors))
	}
	want := []struct {
		index int
		kind  recording.ShapeKind
		rect  image.Rectangle
	}{
		{0, recording.ShapeRect, image.Rect(10, 10, 31, 31)},
		{2, recording.ShapePath, image.Rect(125, 25, 175, 75)},
	}
	for i, w := range want {
		s := scissors[i]
		if s.Index != w.index || s.Kind != w.kind || s.Rect() != w.rect {
			t.Errorf("scissor[%d] = {%d %v %v}, want {%d %v %v}",
				i, s.Index, s.Kind, s.Rect(), w.index, w.kind, w.rect)
		}
	}
	if backend.Depth() != 0 {
		t.Errorf("Depth() after playback = %d, want 0", backend.Depth())
	}
}

func TestRecordingPlaybackViaRegistry(t *testing.T) {
	rec := recording.NewRecorder(cull.NewRectLTRB(0, 0, 64, 64))
	rec.DrawRect(cull.NewRectLTRB(0, 0, 8, 8))

	backend := recording.MustBackend("scissor")
	if _, err := rec.FinishRecording().Playback(context.Background(), backend); err != nil {
		t.Fatalf("Playback failed: %v", err)
	}
	sb := backend.(*Backend)
	if len(sb.Scissors()) != 1 {
		t.Errorf("got %d scissors, want 1", len(sb.Scissors()))
	}
}

func TestRecordingPlaybackEmptyTarget(t *testing.T) {
	rec := recording.NewRecorder(cull.Rect{})
	_, err := rec.FinishRecording().Playback(context.Background(), NewBackend())
	if !errors.Is(err, ErrEmptyTarget) {
		t.Errorf("Playback() error = %v, want ErrEmptyTarget", err)
	}
}
