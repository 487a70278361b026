package mandelbrot

import "testing"

// The Renderer is the redraw scheduler the Navigator pokes.
var _ FrameScheduler = (*Renderer)(nil)

func TestRequestFrameCoalesces(t *testing.T) {
	var r Renderer

	// N requests within one frame interval collapse into one draw.
	for i := 0; i < 5; i++ {
		r.RequestFrame()
	}
	if !r.consumePending() {
		t.Fatal("a requested frame should be pending")
	}
	if r.consumePending() {
		t.Error("coalesced requests must yield exactly one draw")
	}

	// No request, no draw: the loop is demand-driven.
	if r.consumePending() {
		t.Error("no frame should be pending without a request")
	}

	r.RequestFrame()
	if !r.consumePending() {
		t.Error("a new request after consumption should be pending again")
	}
}

func TestNavigatorDrivesScheduler(t *testing.T) {
	// End to end: navigation events mark the renderer's pending flag.
	var r Renderer
	v := &View{Zoom: 0.01}
	nav := NewNavigator(v, &r, 800, 600)

	r.consumePending()
	nav.PointerDown(0, 0)
	nav.PointerMove(10, 10)
	nav.PointerUp()
	if !r.consumePending() {
		t.Error("a drag should leave exactly one frame pending")
	}
	if r.consumePending() {
		t.Error("the drag's requests must coalesce into a single draw")
	}
}
