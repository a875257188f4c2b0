package clip

import "testing"

func TestClassify(t *testing.T) {
	bound := LTRB(20, 20, 40, 40)

	tests := []struct {
		name string
		hole Rect
		want Relation
	}{
		{"outside UL corner", LTRB(10, 10, 20, 20), Disjoint},
		{"above", LTRB(20, 10, 40, 20), Disjoint},
		{"outside UR corner", LTRB(40, 10, 50, 20), Disjoint},
		{"right", LTRB(40, 20, 50, 40), Disjoint},
		{"outside LR corner", LTRB(40, 40, 50, 50), Disjoint},
		{"below", LTRB(20, 40, 40, 50), Disjoint},
		{"outside LL corner", LTRB(10, 40, 20, 50), Disjoint},
		{"left", LTRB(10, 20, 20, 40), Disjoint},
		{"empty hole", LTRB(25, 25, 25, 35), Disjoint},

		{"covering UL corner", LTRB(15, 15, 25, 25), CornerOverlap},
		{"covering UR corner", LTRB(35, 15, 45, 25), CornerOverlap},
		{"covering LR corner", LTRB(35, 35, 45, 45), CornerOverlap},
		{"covering LL corner", LTRB(15, 35, 25, 45), CornerOverlap},

		{"top edge left-biased", LTRB(20, 15, 39, 25), CornerOverlap},
		{"top edge centered", LTRB(21, 15, 39, 25), PartialEdge},
		{"right edge centered", LTRB(35, 21, 45, 39), PartialEdge},
		{"bottom edge centered", LTRB(21, 35, 39, 45), PartialEdge},
		{"left edge centered", LTRB(15, 21, 25, 39), PartialEdge},

		{"vertical interior slice", LTRB(25, 15, 35, 45), InteriorSlice},
		{"horizontal interior slice", LTRB(15, 25, 45, 35), InteriorSlice},

		{"slice off top", LTRB(20, 15, 40, 25), SlabTop},
		{"slice off right", LTRB(35, 20, 45, 40), SlabRight},
		{"slice off bottom", LTRB(20, 35, 40, 45), SlabBottom},
		{"slice off left", LTRB(15, 20, 25, 40), SlabLeft},

		{"contained, non-covering", LTRB(21, 21, 39, 39), Contained},
		{"perfectly covering", bound, Covers},
		{"smothering", LTRB(15, 15, 45, 45), Covers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(bound, tt.hole); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.hole, got, tt.want)
			}
		})
	}
}

func TestCutout(t *testing.T) {
	bound := LTRB(20, 20, 40, 40)

	tests := []struct {
		name string
		hole Rect
		want Rect
	}{
		{"above", LTRB(20, 10, 40, 20), bound},
		{"covering UL corner", LTRB(15, 15, 25, 25), bound},
		{"top edge right-biased", LTRB(21, 15, 40, 25), bound},
		{"vertical interior slice", LTRB(25, 15, 35, 45), bound},
		{"contained", LTRB(21, 21, 39, 39), bound},
		{"slice off top", LTRB(20, 15, 40, 25), LTRB(20, 25, 40, 40)},
		{"slice off right", LTRB(35, 20, 45, 40), LTRB(20, 20, 35, 40)},
		{"slice off bottom", LTRB(20, 35, 40, 45), LTRB(20, 20, 40, 35)},
		{"slice off left", LTRB(15, 20, 25, 40), LTRB(25, 20, 40, 40)},
		{"wider slice off top", LTRB(0, 0, 60, 30), LTRB(20, 30, 40, 40)},
		{"perfectly covering", bound, Rect{}},
		{"smothering", LTRB(15, 15, 45, 45), Rect{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cutout(bound, tt.hole)
			if got != tt.want {
				t.Errorf("Cutout(%v) = %v, want %v", tt.hole, got, tt.want)
			}
			if !got.IsEmpty() && !(bound.Contains(got)) {
				t.Errorf("Cutout(%v) = %v grew past %v", tt.hole, got, bound)
			}
		})
	}
}

func TestCutout_EmptyBound(t *testing.T) {
	got := Cutout(Rect{}, LTRB(0, 0, 10, 10))
	if !got.IsEmpty() {
		t.Errorf("Cutout(empty) = %v, want empty", got)
	}
}

func TestRelation_Reduces(t *testing.T) {
	reducing := map[Relation]bool{
		Covers:     true,
		SlabTop:    true,
		SlabRight:  true,
		SlabBottom: true,
		SlabLeft:   true,
	}
	for r := Disjoint; r <= Contained; r++ {
		if got := r.Reduces(); got != reducing[r] {
			t.Errorf("%v.Reduces() = %v, want %v", r, got, reducing[r])
		}
	}
}

func TestRelation_String(t *testing.T) {
	if got := SlabTop.String(); got != "SlabTop" {
		t.Errorf("SlabTop.String() = %q, want %q", got, "SlabTop")
	}
	if got := Relation(200).String(); got != "Unknown" {
		t.Errorf("Relation(200).String() = %q, want %q", got, "Unknown")
	}
}
