package mandelbrot

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Renderer draws the fractal on demand. It implements FrameScheduler:
// any number of RequestFrame calls between two Draw calls collapse into
// a single shader pass. With no pending request the previous frame is
// reused — the scene is static except for navigation, so this keeps the
// GPU idle while nothing moves.
type Renderer struct {
	shader *ebiten.Shader
	view   *View
	ramp   ColorRamp

	frameRequested bool
	offscreen      *ebiten.Image

	// Persistent uniform map and float32 backing buffers to avoid
	// per-frame allocation; the slices below are pre-stored in uniforms
	// and point into the arrays.
	uniforms    map[string]any
	invMVPF32   [16]float32
	invMVPSlice []float32
	rampF32     [RampStops][4]float32
	screenF32   [2]float32
	screenSlice []float32
	shaderOp    ebiten.DrawRectShaderOptions
	blitOp      ebiten.DrawImageOptions
}

// NewRenderer compiles the fractal shader and prepares uniform buffers
// for the given view and color ramp. The ramp is captured once and
// never changes afterwards. A shader compile failure is fatal to the
// session.
func NewRenderer(view *View, ramp ColorRamp) (*Renderer, error) {
	shader, err := ensureFractalShader()
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		shader:   shader,
		view:     view,
		ramp:     ramp,
		uniforms: make(map[string]any, RampStops+2),
		// The very first Draw must render.
		frameRequested: true,
	}
	r.invMVPSlice = r.invMVPF32[:]
	r.uniforms["InvMVP"] = r.invMVPSlice
	r.screenSlice = r.screenF32[:]
	r.uniforms["ScreenSize"] = r.screenSlice
	for i, stop := range ramp {
		r.rampF32[i] = [4]float32{
			float32(stop.R), float32(stop.G), float32(stop.B), float32(stop.A),
		}
		r.uniforms[fmt.Sprintf("Ramp%d", i)] = r.rampF32[i][:]
	}
	return r, nil
}

// RequestFrame schedules one future redraw. Fire-and-forget: a pending
// request cannot be withdrawn, and repeated requests coalesce.
func (r *Renderer) RequestFrame() {
	r.frameRequested = true
}

// consumePending reports whether a redraw is due and clears the flag.
func (r *Renderer) consumePending() bool {
	due := r.frameRequested
	r.frameRequested = false
	return due
}

// Draw presents the fractal on screen, re-rendering the offscreen
// target first if a frame was requested (or the screen size changed).
func (r *Renderer) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	w, h := b.Dx(), b.Dy()

	if r.offscreen == nil || r.offscreen.Bounds().Dx() != w || r.offscreen.Bounds().Dy() != h {
		if r.offscreen != nil {
			r.offscreen.Deallocate()
		}
		r.offscreen = ebiten.NewImage(w, h)
		r.frameRequested = true
	}

	if r.consumePending() {
		r.renderFrame(w, h)
	}

	r.blitOp.GeoM.Reset()
	screen.DrawImage(r.offscreen, &r.blitOp)
}

// renderFrame clears the offscreen target, uploads the view transform
// and screen size, and issues the full-screen shader draw. The ramp
// uniforms were written at construction time.
func (r *Renderer) renderFrame(w, h int) {
	r.offscreen.Clear()

	ComputeInverseMVP(r.view, float64(w), float64(h)).toF32(r.invMVPSlice)
	r.screenF32[0] = float32(w)
	r.screenF32[1] = float32(h)

	r.shaderOp.Uniforms = r.uniforms
	r.offscreen.DrawRectShader(w, h, r.shader, &r.shaderOp)
}
