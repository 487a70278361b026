package mandelbrot

import (
	"math"
	"testing"
)

// countScheduler records redraw requests.
type countScheduler struct {
	n int
}

func (c *countScheduler) RequestFrame() { c.n++ }

func newTestNavigator(zoom float64) (*Navigator, *countScheduler) {
	v := &View{Zoom: zoom}
	s := &countScheduler{}
	return NewNavigator(v, s, 800, 600), s
}

func TestPanScenario(t *testing.T) {
	// Drag of (dx=100, dy=0) at zoom 0.001 on an 800x600 viewport.
	nav, _ := newTestNavigator(0.001)
	nav.PointerDown(100, 100)
	nav.PointerMove(200, 100)

	want := -100.0 * (2.0 / (0.001 * 800.0)) / (800.0 / 600.0)
	if got := nav.View().OffsetX; math.Abs(got-want) > 1e-9 {
		t.Errorf("OffsetX = %v, want %v", got, want)
	}
	if got := nav.View().OffsetY; got != 0 {
		t.Errorf("OffsetY = %v, want 0", got)
	}
}

func TestPanVertical(t *testing.T) {
	nav, _ := newTestNavigator(0.01)
	nav.PointerDown(0, 0)
	nav.PointerMove(0, 30)

	want := 30.0 * (2.0 / (0.01 * 800.0)) * (800.0 / 600.0)
	if got := nav.View().OffsetY; math.Abs(got-want) > 1e-9 {
		t.Errorf("OffsetY = %v, want %v", got, want)
	}
}

func TestPinchScenario(t *testing.T) {
	// Pinch from distance 100 to 150 at zoom 0.01:
	// max(0.01 - 0.01*(-50)*0.01, limit) = 0.015.
	nav, _ := newTestNavigator(0.01)
	nav.PinchStart(0, 0, 100, 0)
	nav.PinchMove(0, 0, 150, 0)

	if got := nav.View().Zoom; math.Abs(got-0.015) > 1e-12 {
		t.Errorf("Zoom = %v, want 0.015", got)
	}
}

func TestZoomFloor(t *testing.T) {
	nav, _ := newTestNavigator(0.01)
	nav.SetZoomModifier(true)
	nav.PointerDown(0, 0)
	y := 0.0
	for i := 0; i < 50; i++ {
		y += 500
		nav.PointerMove(0, y)
		if z := nav.View().Zoom; z < ZoomOutLimit {
			t.Fatalf("zoom %v fell below the floor after update %d", z, i)
		}
	}
	if z := nav.View().Zoom; z != ZoomOutLimit {
		t.Errorf("zoom = %v, want floor %v after repeated zoom-out drags", z, ZoomOutLimit)
	}

	// Pinching inward cannot break the floor either.
	nav.PointerUp()
	nav.PinchStart(0, 0, 1000, 0)
	nav.PinchMove(0, 0, 1, 0)
	if z := nav.View().Zoom; z < ZoomOutLimit {
		t.Errorf("pinch drove zoom to %v, below the floor", z)
	}
}

func TestPanClampInvariant(t *testing.T) {
	// At the minimum zoom each drag moves the offset by a huge amount;
	// the clamp must hold after every single update.
	nav, _ := newTestNavigator(ZoomOutLimit)
	nav.PointerDown(0, 0)
	x, y := 0.0, 0.0
	for i := 0; i < 40; i++ {
		x -= 400
		y += 400
		nav.PointerMove(x, y)
		v := nav.View()
		if math.Abs(v.OffsetX) > PanLimit || math.Abs(v.OffsetY) > PanLimit {
			t.Fatalf("offset (%v, %v) exceeds ±%v after update %d", v.OffsetX, v.OffsetY, PanLimit, i)
		}
	}
	if v := nav.View(); math.Abs(v.OffsetX) != PanLimit {
		t.Errorf("OffsetX = %v, expected to saturate at the clamp", v.OffsetX)
	}
}

func TestSchedulesExactlyOncePerEvent(t *testing.T) {
	nav, sched := newTestNavigator(0.01)

	steps := []struct {
		name string
		fire func()
		want int // additional requests
	}{
		{"pointer down", func() { nav.PointerDown(10, 10) }, 1},
		{"pointer move", func() { nav.PointerMove(20, 20) }, 1},
		{"stationary move is a no-op", func() { nav.PointerMove(20, 20) }, 0},
		{"pointer up", func() { nav.PointerUp() }, 1},
		{"pointer up again is a no-op", func() { nav.PointerUp() }, 0},
		{"hover move is a no-op", func() { nav.PointerMove(30, 30) }, 0},
		{"modifier change", func() { nav.SetZoomModifier(true) }, 1},
		{"modifier unchanged is a no-op", func() { nav.SetZoomModifier(true) }, 0},
		{"pinch start", func() { nav.PinchStart(0, 0, 50, 0) }, 1},
		{"pinch move", func() { nav.PinchMove(0, 0, 60, 0) }, 1},
		{"pinch end", func() { nav.PinchEnd() }, 1},
		{"pinch move after end is a no-op", func() { nav.PinchMove(0, 0, 70, 0) }, 0},
		{"resize", func() { nav.Resize(1024, 768) }, 1},
		{"non-finite down is a no-op", func() { nav.PointerDown(math.NaN(), 0) }, 0},
	}
	for _, tt := range steps {
		before := sched.n
		tt.fire()
		if got := sched.n - before; got != tt.want {
			t.Errorf("%s: scheduled %d redraws, want %d", tt.name, got, tt.want)
		}
	}
}

func TestGestureArbitration(t *testing.T) {
	nav, _ := newTestNavigator(0.01)

	// A pinch cancels an active pointer drag.
	nav.PointerDown(0, 0)
	nav.PinchStart(0, 0, 100, 0)
	nav.PointerMove(50, 0)
	if got := nav.View().OffsetX; got != 0 {
		t.Errorf("pointer move after pinch start panned by %v, want 0", got)
	}

	// A new pointer gesture cancels the pinch.
	nav.PointerDown(0, 0)
	zoomBefore := nav.View().Zoom
	nav.PinchMove(0, 0, 200, 0)
	if got := nav.View().Zoom; got != zoomBefore {
		t.Errorf("pinch move after pointer down zoomed to %v, want %v", got, zoomBefore)
	}
}

func TestModifierSampledAtMoveTime(t *testing.T) {
	// A drag crossing a modifier transition switches behavior mid-gesture.
	nav, _ := newTestNavigator(0.01)
	nav.PointerDown(0, 0)

	nav.PointerMove(10, 0)
	offsetAfterPan := nav.View().OffsetX
	if offsetAfterPan == 0 {
		t.Fatal("first move should pan")
	}

	nav.SetZoomModifier(true)
	zoomBefore := nav.View().Zoom
	nav.PointerMove(10, -20)
	if nav.View().OffsetX != offsetAfterPan {
		t.Error("move with modifier held should not pan")
	}
	if nav.View().Zoom == zoomBefore {
		t.Error("move with modifier held should zoom")
	}
}

func TestDegenerateInputIgnored(t *testing.T) {
	nav, _ := newTestNavigator(0.01)
	nav.PointerDown(0, 0)
	nav.PointerMove(10, 10)
	v := *nav.View()

	nav.PointerMove(math.NaN(), 5)
	nav.PointerMove(5, math.Inf(1))
	nav.PinchMove(0, 0, 10, 10) // no pinch active
	nav.Resize(-1, 600)
	nav.Resize(math.NaN(), 600)

	if got := *nav.View(); got != v {
		t.Errorf("degenerate events changed the view: %+v -> %+v", v, got)
	}
}

func TestPanByAndZoomBy(t *testing.T) {
	nav, sched := newTestNavigator(0.01)

	nav.PanBy(100, 0)
	want := -100.0 * (2.0 / (0.01 * 800.0)) / (800.0 / 600.0)
	if got := nav.View().OffsetX; math.Abs(got-want) > 1e-9 {
		t.Errorf("PanBy OffsetX = %v, want %v", got, want)
	}

	nav.ZoomBy(-10)
	// zoom - zoom*(-10)*0.01 = zoom * 1.1
	if got := nav.View().Zoom; math.Abs(got-0.011) > 1e-12 {
		t.Errorf("ZoomBy zoom = %v, want 0.011", got)
	}
	if sched.n != 2 {
		t.Errorf("scheduled %d redraws, want 2", sched.n)
	}
}
