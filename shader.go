package mandelbrot

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Kage shader source ---
// The escape loop must stay structurally identical to EscapeTime in
// mandelbrot.go: same iteration order, same top-of-loop exit test, same
// smoothing formula. Ebitengine uses premultiplied alpha; the ramp
// color is premultiplied on output.

const fractalShaderSrc = `//kage:unit pixels
package main

var InvMVP mat4
var ScreenSize vec2
var Ramp0 vec4
var Ramp1 vec4
var Ramp2 vec4
var Ramp3 vec4
var Ramp4 vec4

// rampSample is an edge-clamped linear lookup into the 5-stop ramp,
// with stop i at texel center (i+0.5)/5.
func rampSample(u float) vec4 {
	s := clamp(u*5.0-0.5, 0.0, 4.0)
	if s < 1.0 {
		return mix(Ramp0, Ramp1, s)
	}
	if s < 2.0 {
		return mix(Ramp1, Ramp2, s-1.0)
	}
	if s < 3.0 {
		return mix(Ramp2, Ramp3, s-2.0)
	}
	return mix(Ramp3, Ramp4, s-3.0)
}

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	// Pixel -> NDC -> complex plane via the inverse view transform.
	ndc := vec2(2.0*dst.x/ScreenSize.x-1.0, 1.0-2.0*dst.y/ScreenSize.y)
	c := (InvMVP * vec4(ndc, 0.0, 1.0)).xy

	// z <- z^2 + c from z = 0, bailing out at |z|^2 >= 1000.
	x := 0.0
	y := 0.0
	iters := 0
	escaped := false
	for i := 0; i < 1024; i++ {
		if x*x+y*y >= 1000.0 {
			escaped = true
			break
		}
		nx := x*x - y*y + c.x
		y = 2.0*x*y + c.y
		x = nx
		iters += 1
	}
	if !escaped {
		return vec4(0.0, 0.0, 0.0, 1.0)
	}

	// Smooth coloring: continuous palette index from the escape
	// iteration and final magnitude.
	logzn := log(x*x+y*y) / 2.0
	smoothed := log(logzn/log(2.0)) / log(2.0)
	index := float(iters) + 1.0 - smoothed
	col := rampSample(index * 5.0 / 1024.0)
	return vec4(col.rgb*col.a, col.a)
}
`

// Lazy shader compilation (no sync.Once — the session is single-threaded).
var fractalShader *ebiten.Shader

// ensureFractalShader compiles the fractal shader on first use. A
// compile failure is a startup failure: it is reported once and the
// interactive loop never runs.
func ensureFractalShader() (*ebiten.Shader, error) {
	if fractalShader == nil {
		s, err := ebiten.NewShader([]byte(fractalShaderSrc))
		if err != nil {
			return nil, fmt.Errorf("mandelbrot: compile fractal shader: %w", err)
		}
		fractalShader = s
	}
	return fractalShader, nil
}
