package mandelbrot

import "math"

// zoomGestureFactor converts a drag or pinch delta in pixels into a
// relative zoom change. Scaling by the current zoom makes the gesture
// feel the same at any depth.
const zoomGestureFactor = 0.01

// FrameScheduler is poked once per state-changing input event to
// request a redraw. Redundant requests within one frame interval must
// collapse into a single draw; the Renderer satisfies this.
type FrameScheduler interface {
	RequestFrame()
}

// pointerState tracks the single active pointer (mouse or one touch).
type pointerState struct {
	down  bool
	lastX float64
	lastY float64
}

// pinchState tracks an active two-finger gesture.
type pinchState struct {
	active   bool
	lastDist float64
}

// Navigator maps pointer, pinch, and modifier events onto a View.
// A single active pointer pans (or zooms while the modifier is held);
// exactly two touch points pinch-zoom. The two gestures are mutually
// exclusive: starting one cancels the other.
//
// Malformed events — non-finite coordinates, a move without a matching
// start — are silently ignored, preserving the last known state.
type Navigator struct {
	view  *View
	sched FrameScheduler

	viewportW float64
	viewportH float64

	pointer      pointerState
	pinch        pinchState
	zoomModifier bool
}

// NewNavigator creates a Navigator driving view, scheduling redraws on
// sched after every state change.
func NewNavigator(view *View, sched FrameScheduler, viewportW, viewportH float64) *Navigator {
	return &Navigator{
		view:      view,
		sched:     sched,
		viewportW: viewportW,
		viewportH: viewportH,
	}
}

// View returns the view this navigator mutates.
func (n *Navigator) View() *View {
	return n.view
}

// Resize updates the viewport dimensions used for pan scaling and
// aspect correction.
func (n *Navigator) Resize(width, height float64) {
	if !isFinite(width) || !isFinite(height) || width <= 0 || height <= 0 {
		return
	}
	n.viewportW = width
	n.viewportH = height
	n.sched.RequestFrame()
}

// SetZoomModifier records whether the zoom modifier key is held. The
// modifier is read per move event, so a drag that crosses a key
// transition switches between panning and zooming mid-gesture.
func (n *Navigator) SetZoomModifier(held bool) {
	if n.zoomModifier == held {
		return
	}
	n.zoomModifier = held
	n.sched.RequestFrame()
}

// PointerDown begins a pointer gesture at (x, y), cancelling any active
// pinch.
func (n *Navigator) PointerDown(x, y float64) {
	if !isFinite(x) || !isFinite(y) {
		return
	}
	n.pinch.active = false
	n.pointer = pointerState{down: true, lastX: x, lastY: y}
	n.sched.RequestFrame()
}

// PointerMove continues a pointer gesture: pan, or zoom while the
// modifier is held. Moves without a preceding PointerDown are hover
// motion and are ignored.
func (n *Navigator) PointerMove(x, y float64) {
	if !n.pointer.down || !isFinite(x) || !isFinite(y) {
		return
	}
	dx := x - n.pointer.lastX
	dy := y - n.pointer.lastY
	if dx == 0 && dy == 0 {
		return
	}
	n.pointer.lastX = x
	n.pointer.lastY = y

	if n.zoomModifier {
		n.zoomDrag(dy)
	} else {
		n.pan(dx, dy)
	}
	n.sched.RequestFrame()
}

// PanBy pans by a pixel-space delta outside of any pointer gesture,
// e.g. for arrow-key navigation. Same unit conversion and clamps as a
// pointer drag.
func (n *Navigator) PanBy(dx, dy float64) {
	if !isFinite(dx) || !isFinite(dy) {
		return
	}
	n.pan(dx, dy)
	n.sched.RequestFrame()
}

// ZoomBy zooms by a pixel-space drag delta outside of any pointer
// gesture; negative dy zooms in.
func (n *Navigator) ZoomBy(dy float64) {
	if !isFinite(dy) {
		return
	}
	n.zoomDrag(dy)
	n.sched.RequestFrame()
}

// PointerUp ends the pointer gesture.
func (n *Navigator) PointerUp() {
	if !n.pointer.down {
		return
	}
	n.pointer = pointerState{}
	n.sched.RequestFrame()
}

// PinchStart begins a two-finger gesture, cancelling any pointer drag.
func (n *Navigator) PinchStart(x0, y0, x1, y1 float64) {
	if !isFinite(x0) || !isFinite(y0) || !isFinite(x1) || !isFinite(y1) {
		return
	}
	n.pointer = pointerState{}
	n.pinch = pinchState{active: true, lastDist: dist(x0, y0, x1, y1)}
	n.sched.RequestFrame()
}

// PinchMove zooms by the change in finger distance since the previous
// pinch event. Spreading the fingers zooms in proportion to the current
// zoom; the zoom never drops below ZoomOutLimit.
func (n *Navigator) PinchMove(x0, y0, x1, y1 float64) {
	if !n.pinch.active || !isFinite(x0) || !isFinite(y0) || !isFinite(x1) || !isFinite(y1) {
		return
	}
	d := dist(x0, y0, x1, y1)
	delta := d - n.pinch.lastDist
	n.pinch.lastDist = d

	n.view.Zoom = math.Max(n.view.Zoom-n.view.Zoom*(-delta)*zoomGestureFactor, ZoomOutLimit)
	n.sched.RequestFrame()
}

// PinchEnd ends the two-finger gesture.
func (n *Navigator) PinchEnd() {
	if !n.pinch.active {
		return
	}
	n.pinch = pinchState{}
	n.sched.RequestFrame()
}

// zoomDrag applies a drag-based zoom delta, proportional to the current
// zoom and floor-clamped at ZoomOutLimit.
func (n *Navigator) zoomDrag(dy float64) {
	n.view.Zoom = math.Max(n.view.Zoom-n.view.Zoom*dy*zoomGestureFactor, ZoomOutLimit)
}

// pan converts a pixel-space drag delta into view units consistent with
// the current zoom, so drag speed feels constant at any depth, then
// clamps both offsets.
func (n *Navigator) pan(dx, dy float64) {
	scale := 2 / (n.view.Zoom * n.viewportW)
	aspect := n.viewportW / n.viewportH
	n.view.OffsetX = clampOffset(n.view.OffsetX - dx*scale/aspect)
	n.view.OffsetY = clampOffset(n.view.OffsetY + dy*scale*aspect)
}

func dist(x0, y0, x1, y1 float64) float64 {
	dx := x1 - x0
	dy := y1 - y0
	return math.Sqrt(dx*dx + dy*dy)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
