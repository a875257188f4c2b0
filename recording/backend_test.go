package recording

import "github.com/gogpu/cull"

var _ Backend = (*mockBackend)(nil)

// event is one call received by mockBackend.
type event struct {
	name   string
	shape  ShapeKind
	op     cull.ClipOp
	index  int
	device cull.Rect
}

// mockBackend records the calls playback makes.
type mockBackend struct {
	label      string
	beginCalls int
	endCalls   int
	cullRect   cull.Rect
	transform  cull.Transform
	events     []event

	beginErr error
	endErr   error
}

func newMockBackend(label string) *mockBackend {
	return &mockBackend{label: label}
}

func (b *mockBackend) Begin(cullRect cull.Rect) error {
	b.beginCalls++
	b.cullRect = cullRect
	return b.beginErr
}

func (b *mockBackend) End() error {
	b.endCalls++
	return b.endErr
}

func (b *mockBackend) Save()    { b.events = append(b.events, event{name: "Save"}) }
func (b *mockBackend) Restore() { b.events = append(b.events, event{name: "Restore"}) }

func (b *mockBackend) SetTransform(t cull.Transform) {
	b.transform = t
	b.events = append(b.events, event{name: "SetTransform"})
}

func (b *mockBackend) Clip(shape ClipShape, op cull.ClipOp, _ bool) {
	b.events = append(b.events, event{name: "Clip", shape: shape.Kind, op: op})
}

func (b *mockBackend) Draw(cmd DrawCommand, device cull.Rect) {
	b.events = append(b.events, event{name: "Draw", shape: cmd.Shape.Kind, index: cmd.Index, device: device})
}

// draws returns the Draw events received so far.
func (b *mockBackend) draws() []event {
	var out []event
	for _, e := range b.events {
		if e.name == "Draw" {
			out = append(out, e)
		}
	}
	return out
}
