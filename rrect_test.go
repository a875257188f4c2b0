package cull

import "testing"

func TestNewRRect(t *testing.T) {
	r := NewRectLTRB(0, 0, 100, 50)
	rr := NewRRect(r, 10, 5)
	for i, p := range rr.Radii {
		if p != Pt(10, 5) {
			t.Errorf("Radii[%d] = %v, want (10, 5)", i, p)
		}
	}
	if rr.IsRect() {
		t.Error("IsRect() = true, want false")
	}
	if rr.Bounds() != r {
		t.Errorf("Bounds() = %+v, want %+v", rr.Bounds(), r)
	}
}

func TestNewRRectRadii(t *testing.T) {
	tests := []struct {
		name  string
		r     Rect
		radii [4]Point
		want  [4]Point
	}{
		{
			name:  "scaled down",
			r:     NewRectLTRB(0, 0, 100, 40),
			radii: [4]Point{{100, 10}, {100, 10}, {100, 10}, {100, 10}},
			want:  [4]Point{{50, 5}, {50, 5}, {50, 5}, {50, 5}},
		},
		{
			name:  "negative and zero radii square the corner",
			r:     NewRectLTRB(0, 0, 100, 100),
			radii: [4]Point{{-5, 5}, {10, 10}, {0, 3}, {4, 4}},
			want:  [4]Point{{}, {10, 10}, {}, {4, 4}},
		},
		{
			name:  "empty rect drops radii",
			r:     Rect{},
			radii: [4]Point{{1, 1}, {1, 1}, {1, 1}, {1, 1}},
			want:  [4]Point{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewRRectRadii(tt.r, tt.radii)
			if got.Radii != tt.want {
				t.Errorf("Radii = %v, want %v", got.Radii, tt.want)
			}
		})
	}
}

func TestRRect_IsRect(t *testing.T) {
	if !NewRRectFromRect(NewRect(0, 0, 10, 10)).IsRect() {
		t.Error("NewRRectFromRect().IsRect() = false, want true")
	}
	if !NewRRect(NewRect(0, 0, 10, 10), 0, 5).IsRect() {
		t.Error("IsRect() with a zero x radius = false, want true")
	}
}

func TestRRect_InnerRects(t *testing.T) {
	rr := NewRRectRadii(NewRectLTRB(0, 0, 100, 100), [4]Point{
		CornerTopLeft:     {10, 20},
		CornerTopRight:    {30, 5},
		CornerBottomRight: {5, 5},
		CornerBottomLeft:  {15, 40},
	})
	h, v := rr.InnerRects()
	if want := NewRectLTRB(0, 20, 100, 60); h != want {
		t.Errorf("horizontal = %+v, want %+v", h, want)
	}
	if want := NewRectLTRB(15, 0, 70, 100); v != want {
		t.Errorf("vertical = %+v, want %+v", v, want)
	}
}

func TestRRect_InnerRectsNegativeRadii(t *testing.T) {
	r := NewRectLTRB(25, 10, 35, 50)
	rr := RRect{Rect: r, Radii: [4]Point{
		CornerTopLeft:     {-10, -1},
		CornerTopRight:    {-10, -1},
		CornerBottomRight: {4, 3},
		CornerBottomLeft:  {-10, -1},
	}}
	h, v := rr.InnerRects()
	if want := NewRectLTRB(25, 10, 35, 47); h != want {
		t.Errorf("horizontal = %+v, want %+v", h, want)
	}
	if want := NewRectLTRB(25, 10, 31, 50); v != want {
		t.Errorf("vertical = %+v, want %+v", v, want)
	}
}
