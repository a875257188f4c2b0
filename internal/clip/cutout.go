package clip

// Relation classifies how a hole rectangle sits relative to a bound when the
// hole is subtracted from it.
type Relation uint8

const (
	// Disjoint means the hole shares no area with the bound.
	Disjoint Relation = iota

	// Covers means the hole equals or contains the bound.
	Covers

	// SlabTop means the hole spans the full width across the top edge.
	SlabTop

	// SlabRight means the hole spans the full height across the right edge.
	SlabRight

	// SlabBottom means the hole spans the full width across the bottom edge.
	SlabBottom

	// SlabLeft means the hole spans the full height across the left edge.
	SlabLeft

	// CornerOverlap means the hole crosses one horizontal and one vertical
	// edge without spanning either of them.
	CornerOverlap

	// PartialEdge means the hole crosses a single edge without spanning it.
	PartialEdge

	// InteriorSlice means the hole spans the bound between two opposite
	// edges without reaching the other two.
	InteriorSlice

	// Contained means the hole lies strictly inside the bound.
	Contained
)

var relationNames = [...]string{
	Disjoint:      "Disjoint",
	Covers:        "Covers",
	SlabTop:       "SlabTop",
	SlabRight:     "SlabRight",
	SlabBottom:    "SlabBottom",
	SlabLeft:      "SlabLeft",
	CornerOverlap: "CornerOverlap",
	PartialEdge:   "PartialEdge",
	InteriorSlice: "InteriorSlice",
	Contained:     "Contained",
}

// String returns the name of the relation.
func (r Relation) String() string {
	if int(r) < len(relationNames) {
		return relationNames[r]
	}
	return "Unknown"
}

// Reduces returns true if subtracting a hole with this relation shrinks
// the bound.
func (r Relation) Reduces() bool {
	switch r {
	case Covers, SlabTop, SlabRight, SlabBottom, SlabLeft:
		return true
	}
	return false
}

// Classify returns the relation of hole to bound.
func Classify(bound, hole Rect) Relation {
	if !bound.Intersects(hole) {
		return Disjoint
	}

	left := hole.MinX <= bound.MinX
	right := hole.MaxX >= bound.MaxX
	top := hole.MinY <= bound.MinY
	bottom := hole.MaxY >= bound.MaxY
	spansX := left && right
	spansY := top && bottom

	switch {
	case spansX && spansY:
		return Covers
	case spansX:
		switch {
		case top:
			return SlabTop
		case bottom:
			return SlabBottom
		}
		return InteriorSlice
	case spansY:
		switch {
		case left:
			return SlabLeft
		case right:
			return SlabRight
		}
		return InteriorSlice
	}

	horizontal := left || right
	vertical := top || bottom
	switch {
	case horizontal && vertical:
		return CornerOverlap
	case horizontal || vertical:
		return PartialEdge
	}
	return Contained
}

// Cutout returns the smallest rectangle containing bound minus hole, as far
// as that can be expressed without growing past the true region. Only holes
// that cover the bound or slice a full slab off one edge change it; every
// other case leaves bound untouched.
func Cutout(bound, hole Rect) Rect {
	switch Classify(bound, hole) {
	case Covers:
		return Rect{}
	case SlabTop:
		bound.MinY = hole.MaxY
	case SlabBottom:
		bound.MaxY = hole.MinY
	case SlabLeft:
		bound.MinX = hole.MaxX
	case SlabRight:
		bound.MaxX = hole.MinX
	}
	return bound
}
