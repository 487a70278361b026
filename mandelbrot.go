package mandelbrot

import "math"

// Tuning constants for the escape-time algorithm and navigation clamps.
const (
	// MaxIterations is the per-pixel iteration budget. Points that stay
	// bounded this long are classified interior.
	MaxIterations = 1024

	// EscapeRadius is the squared-magnitude bailout threshold. Once
	// |z|^2 reaches it the orbit is guaranteed to diverge.
	EscapeRadius = 1000.0

	// ZoomOutLimit is the floor for View.Zoom. It keeps zoom strictly
	// positive and caps navigation at the depth where single-precision
	// GPU floats stop resolving detail.
	ZoomOutLimit = 0.001

	// PanLimit bounds |OffsetX| and |OffsetY|. Offsets beyond
	// 1/ZoomOutLimit point at numerically meaningless plane regions.
	PanLimit = 1.0 / ZoomOutLimit

	// DefaultZoom frames the whole set at typical viewport sizes.
	DefaultZoom = 0.005
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorBlack is the interior color of the set.
var ColorBlack = Color{0, 0, 0, 1}

// RampStops is the number of stops in a ColorRamp. The smooth-coloring
// index is normalized against it before lookup.
const RampStops = 5

// ColorRamp is a fixed 5-stop gradient sampled by the shader to color
// escaping points. It is supplied once at startup and never mutated.
type ColorRamp [RampStops]Color

// DefaultRamp is the classic deep-blue / white / orange gradient.
var DefaultRamp = ColorRamp{
	{0.00, 0.03, 0.39, 1},
	{0.13, 0.42, 0.80, 1},
	{0.93, 1.00, 1.00, 1},
	{1.00, 0.67, 0.00, 1},
	{0.00, 0.01, 0.00, 1},
}

// Sample returns the ramp color at normalized position u in [0, 1] with
// edge-clamped linear interpolation between texel centers, matching a
// 1-D GPU texture lookup (stop i sits at (i+0.5)/RampStops).
func (r ColorRamp) Sample(u float64) Color {
	s := u*RampStops - 0.5
	if s <= 0 {
		return r[0]
	}
	if s >= RampStops-1 {
		return r[RampStops-1]
	}
	i := int(s)
	f := s - float64(i)
	a, b := r[i], r[i+1]
	return Color{
		R: a.R + f*(b.R-a.R),
		G: a.G + f*(b.G-a.G),
		B: a.B + f*(b.B-a.B),
		A: a.A + f*(b.A-a.A),
	}
}

// EscapeTime runs the escape-iteration loop for the complex point
// c = (cx, cy): z <- z^2 + c from z = 0, bailing out when |z|^2 reaches
// EscapeRadius. It returns the iteration count, the final z components,
// and whether the orbit escaped. Interior points report
// n == MaxIterations and escaped == false.
//
// This is the CPU reference of the fragment shader in shader.go; the
// two must keep identical iteration order and exit condition.
func EscapeTime(cx, cy float64) (n int, zx, zy float64, escaped bool) {
	x, y := 0.0, 0.0
	for n = 0; n < MaxIterations; n++ {
		if x*x+y*y >= EscapeRadius {
			return n, x, y, true
		}
		x, y = x*x-y*y+cx, 2*x*y+cy
	}
	return MaxIterations, x, y, false
}

// SmoothIndex computes the continuous palette index for a point that
// escaped at iteration n with final orbit value (zx, zy):
//
//	logzn    = log|z| / 2
//	smoothed = log(logzn / log 2) / log 2
//	index    = n + 1 - smoothed
//
// The fractional part removes iteration-count banding. |z|^2 >= 1000 at
// escape keeps every term finite.
func SmoothIndex(n int, zx, zy float64) float64 {
	logzn := math.Log(zx*zx+zy*zy) / 2
	smoothed := math.Log(logzn/math.Ln2) / math.Ln2
	return float64(n) + 1 - smoothed
}

// ColorAt classifies c = (cx, cy) and returns its color under the given
// ramp: opaque black for interior points, otherwise the ramp sampled at
// the smooth index normalized by RampStops/MaxIterations. This mirrors
// the shader's coloring policy exactly.
func ColorAt(cx, cy float64, ramp ColorRamp) Color {
	n, zx, zy, escaped := EscapeTime(cx, cy)
	if !escaped {
		return ColorBlack
	}
	return ramp.Sample(SmoothIndex(n, zx, zy) * RampStops / MaxIterations)
}
