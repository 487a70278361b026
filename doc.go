// Package mandelbrot is an interactive, GPU-rendered Mandelbrot set
// explorer for [Ebitengine].
//
// The per-pixel escape-time computation runs as a Kage fragment shader,
// so panning and zooming stay smooth at full resolution. Rendering is
// demand-driven: a frame is only recomputed when navigation changes the
// view, and redundant requests within one frame collapse into a single
// shader pass.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and
// wires input for you:
//
//	mandelbrot.Run(mandelbrot.Config{
//		Title: "Mandelbrot", Width: 800, Height: 600,
//	})
//
// For full control, build an [Explorer] and drive it from your own
// [ebiten.Game], or assemble the pieces yourself: a [View] holds the
// pan/zoom state, a [Navigator] maps pointer, touch, and keyboard events
// onto it, and a [Renderer] draws the fractal whenever a frame has been
// requested.
//
// # Navigation
//
// Drag to pan. Drag with Shift held (or pinch with two fingers) to zoom.
// Zoom is proportional to the current depth, so it feels constant at any
// magnification, and is floor-clamped at [ZoomOutLimit]; pan offsets are
// clamped to ±[PanLimit]. Arrow keys pan, I/O zoom, R resets the view,
// and H glides home with an eased animation (via [gween]).
//
// Coordinates are single precision on the GPU, which caps the practical
// zoom depth; arbitrary-precision deep zoom is out of scope.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package mandelbrot
