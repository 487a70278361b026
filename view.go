package mandelbrot

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// glideAnim holds active glide tweens for offset and zoom.
type glideAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	tweenZ *gween.Tween
	doneX  bool
	doneY  bool
	doneZ  bool
}

// View is the navigable state of the session: where on the complex
// plane the viewport is centered and how deep it is zoomed. It is
// mutated only by its owning Navigator (and glide animations) and read
// each frame by the Renderer.
type View struct {
	// OffsetX and OffsetY are the pan offsets in view units, each
	// clamped to ±PanLimit.
	OffsetX, OffsetY float64
	// Zoom is the scale factor, floor-clamped at ZoomOutLimit.
	Zoom float64

	glide *glideAnim
}

// NewView creates a View framing the whole set.
func NewView() *View {
	return &View{Zoom: DefaultZoom}
}

// Reset snaps the view back to the startup framing and cancels any glide.
func (v *View) Reset() {
	v.OffsetX = 0
	v.OffsetY = 0
	v.Zoom = DefaultZoom
	v.glide = nil
}

// GlideTo animates the view to the given offsets and zoom over duration
// seconds. The zoom floor and pan clamps still apply at every step.
func (v *View) GlideTo(offsetX, offsetY, zoom float64, duration float32, easeFn ease.TweenFunc) {
	v.glide = &glideAnim{
		tweenX: gween.New(float32(v.OffsetX), float32(offsetX), duration, easeFn),
		tweenY: gween.New(float32(v.OffsetY), float32(offsetY), duration, easeFn),
		tweenZ: gween.New(float32(v.Zoom), float32(zoom), duration, easeFn),
	}
}

// Gliding reports whether a glide animation is in progress.
func (v *View) Gliding() bool {
	return v.glide != nil
}

// update advances an active glide and reports whether the view changed.
func (v *View) update(dt float32) bool {
	g := v.glide
	if g == nil {
		return false
	}
	if !g.doneX {
		val, done := g.tweenX.Update(dt)
		v.OffsetX = clampOffset(float64(val))
		g.doneX = done
	}
	if !g.doneY {
		val, done := g.tweenY.Update(dt)
		v.OffsetY = clampOffset(float64(val))
		g.doneY = done
	}
	if !g.doneZ {
		val, done := g.tweenZ.Update(dt)
		v.Zoom = math.Max(float64(val), ZoomOutLimit)
		g.doneZ = done
	}
	if g.doneX && g.doneY && g.doneZ {
		v.glide = nil
	}
	return true
}

// clampOffset restricts a pan offset to ±PanLimit.
func clampOffset(o float64) float64 {
	return math.Max(-PanLimit, math.Min(o, PanLimit))
}

// ComputeMVP builds the model-view-projection matrix for the current
// view and viewport: identity, scaled by 1/zoom, translated by the pan
// offsets, then orthographically projected. Each step right-multiplies
// the running matrix, so the transforms apply in that order.
//
// The projection diagonal deliberately crosses axes — 2/viewportHeight
// on x and 2/viewportWidth on y — which keeps the fractal's aspect ratio
// correct on non-square viewports.
func ComputeMVP(v *View, viewportWidth, viewportHeight float64) Mat4 {
	m := identityMat4()
	m = m.mul(scaleMat4(1 / v.Zoom))
	m = m.mul(translateMat4(v.OffsetX, v.OffsetY))
	m = m.mul(orthoMat4(2/viewportHeight, 2/viewportWidth))
	return m
}

// ComputeInverseMVP builds the inverse of ComputeMVP analytically:
// unproject, untranslate, unscale. The fragment shader applies it to
// NDC coordinates to recover the complex-plane point for each pixel.
func ComputeInverseMVP(v *View, viewportWidth, viewportHeight float64) Mat4 {
	m := identityMat4()
	m = m.mul(orthoMat4(viewportHeight/2, viewportWidth/2))
	m = m.mul(translateMat4(-v.OffsetX, -v.OffsetY))
	m = m.mul(scaleMat4(v.Zoom))
	return m
}

// ScreenToPlane converts a screen pixel to its complex-plane coordinate
// under the current view. (0,0) is the top-left pixel; plane y grows
// upward.
func (v *View) ScreenToPlane(sx, sy, viewportWidth, viewportHeight float64) (cx, cy float64) {
	ndcX := 2*sx/viewportWidth - 1
	ndcY := 1 - 2*sy/viewportHeight
	return ComputeInverseMVP(v, viewportWidth, viewportHeight).Apply(ndcX, ndcY)
}
