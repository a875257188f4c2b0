package cull

import (
	"math"
	"testing"

	"golang.org/x/image/math/f64"
)

const epsilon = 1e-9

func matrix3Near(a, b Matrix3) bool {
	return math.Abs(a.A-b.A) < epsilon && math.Abs(a.B-b.B) < epsilon &&
		math.Abs(a.C-b.C) < epsilon && math.Abs(a.D-b.D) < epsilon &&
		math.Abs(a.E-b.E) < epsilon && math.Abs(a.F-b.F) < epsilon
}

func TestMatrix3_TransformPoint(t *testing.T) {
	tests := []struct {
		name   string
		m      Matrix3
		x, y   float64
		wx, wy float64
	}{
		{"identity", Identity(), 3, 4, 3, 4},
		{"translate", Translate(10, 20), 3, 4, 13, 24},
		{"scale", Scale(2, 0.5), 3, 4, 6, 2},
		{"rotate 90", RotateDegrees(90), 1, 0, 0, 1},
		{"skew", Skew(2, 0), 1, 1, 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tt.m.TransformPoint(tt.x, tt.y)
			if x != tt.wx || y != tt.wy {
				t.Errorf("TransformPoint(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, x, y, tt.wx, tt.wy)
			}
		})
	}
}

func TestMatrix3_MultiplyOrder(t *testing.T) {
	// Translate then scale: the scale applies first to points.
	m := Translate(10, 0).Multiply(Scale(2, 2))
	x, y := m.TransformPoint(1, 1)
	if x != 12 || y != 2 {
		t.Errorf("TransformPoint(1, 1) = (%v, %v), want (12, 2)", x, y)
	}
}

func TestRotateDegrees(t *testing.T) {
	tests := []struct {
		deg  float64
		want Matrix3
	}{
		{0, Identity()},
		{90, Matrix3{A: 0, B: -1, D: 1, E: 0}},
		{180, Matrix3{A: -1, B: 0, D: 0, E: -1}},
		{270, Matrix3{A: 0, B: 1, D: -1, E: 0}},
		{-90, Matrix3{A: 0, B: 1, D: -1, E: 0}},
		{450, Matrix3{A: 0, B: -1, D: 1, E: 0}},
	}
	for _, tt := range tests {
		if got := RotateDegrees(tt.deg); got != tt.want {
			t.Errorf("RotateDegrees(%v) = %+v, want %+v", tt.deg, got, tt.want)
		}
	}

	if got, want := RotateDegrees(30), Rotate(math.Pi/6); !matrix3Near(got, want) {
		t.Errorf("RotateDegrees(30) = %+v, want %+v", got, want)
	}
}

func TestMatrix3_Invert(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix3
	}{
		{"identity", Identity()},
		{"translate", Translate(10, -20)},
		{"scale", Scale(0.5, 2)},
		{"rotate", Rotate(0.3)},
		{"combined", Translate(5, 7).Multiply(Skew(0.25, 0.5)).Multiply(Scale(3, 4))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, ok := tt.m.Invert()
			if !ok {
				t.Fatal("Invert() ok = false, want true")
			}
			if got := tt.m.Multiply(inv); !matrix3Near(got, Identity()) {
				t.Errorf("m * inv = %+v, want identity", got)
			}
		})
	}

	if _, ok := Scale(0, 1).Invert(); ok {
		t.Error("Scale(0, 1).Invert() ok = true, want false")
	}
	if _, ok := Scale(1e-320, 1e-320).Invert(); ok {
		t.Error("Invert() of a denormal scale ok = true, want false")
	}
}

func TestMatrix3_MapRect(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix3
		r    Rect
		want Rect
	}{
		{"translate", Translate(10, 20), NewRectLTRB(0, 0, 10, 10), NewRectLTRB(10, 20, 20, 30)},
		{"flip", Scale(-1, 1), NewRectLTRB(0, 0, 10, 10), NewRectLTRB(-10, 0, 0, 10)},
		{"rotate 90", RotateDegrees(90), NewRectLTRB(0, 0, 10, 20), NewRectLTRB(-20, 0, 0, 10)},
		{"skew", Skew(1, 0), NewRectLTRB(0, 0, 10, 10), NewRectLTRB(0, 0, 20, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.MapRect(tt.r); got != tt.want {
				t.Errorf("MapRect(%+v) = %+v, want %+v", tt.r, got, tt.want)
			}
		})
	}
}

func TestMatrix3_RectStaysRect(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix3
		want bool
	}{
		{"identity", Identity(), true},
		{"scale", Scale(2, -3), true},
		{"rotate 90", RotateDegrees(90), true},
		{"rotate 45", RotateDegrees(45), false},
		{"skew", Skew(0.5, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.RectStaysRect(); got != tt.want {
				t.Errorf("RectStaysRect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatrix3_IsTranslation(t *testing.T) {
	if !Translate(3, 4).IsTranslation() {
		t.Error("Translate(3, 4).IsTranslation() = false, want true")
	}
	if Scale(2, 1).IsTranslation() {
		t.Error("Scale(2, 1).IsTranslation() = true, want false")
	}
}

func TestMatrix3_To4x4(t *testing.T) {
	m := Matrix3{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}
	want := Matrix4{
		1, 2, 0, 3,
		4, 5, 0, 6,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	if got := m.To4x4(); got != want {
		t.Errorf("To4x4() = %v, want %v", got, want)
	}
	back, ok := want.Matrix3()
	if !ok || back != m {
		t.Errorf("Matrix3() = %+v, %v, want %+v, true", back, ok, m)
	}
}

func TestMatrix3_Aff3(t *testing.T) {
	m := Matrix3{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}
	want := f64.Aff3{1, 2, 3, 4, 5, 6}
	if got := m.Aff3(); got != want {
		t.Errorf("Aff3() = %v, want %v", got, want)
	}
	if got := Matrix3FromAff3(want); got != m {
		t.Errorf("Matrix3FromAff3() = %+v, want %+v", got, m)
	}
}

func TestMatrix3_CurveAffine(t *testing.T) {
	m := Translate(10, 20).Multiply(Scale(2, 3)).Multiply(Skew(0.5, 0.25))
	if got := Matrix3FromCurve(m.CurveAffine()); got != m {
		t.Errorf("Matrix3FromCurve(CurveAffine()) = %+v, want %+v", got, m)
	}
}
