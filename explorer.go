package mandelbrot

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"
)

const (
	keyPanStep   = 8.0 // pixels per tick while an arrow key is held
	keyZoomStep  = 4.0 // drag-equivalent pixels per tick for I/O keys
	glideHomeDur = 0.8 // seconds
)

// Config configures Run.
type Config struct {
	Title  string
	Width  int
	Height int
	// Ramp is the 5-stop coloring gradient; the zero value selects
	// DefaultRamp.
	Ramp ColorRamp
	// ShowOverlay starts with the FPS/view overlay visible. It can be
	// toggled with F at any time.
	ShowOverlay bool
}

// Explorer is the interactive session: it owns the View, feeds polled
// Ebitengine input through the Navigator, and presents frames via the
// Renderer. It implements [ebiten.Game].
type Explorer struct {
	view     *View
	nav      *Navigator
	renderer *Renderer

	width  int
	height int

	// Input plumbing state.
	touchIDs    []ebiten.TouchID
	mouseDown   bool
	touchDown   bool
	pinchActive bool

	showOverlay bool
}

// NewExplorer builds a session for the given initial viewport size.
// It fails only if the fractal shader does not compile.
func NewExplorer(width, height int, ramp ColorRamp) (*Explorer, error) {
	var zero ColorRamp
	if ramp == zero {
		ramp = DefaultRamp
	}

	view := NewView()
	renderer, err := NewRenderer(view, ramp)
	if err != nil {
		return nil, err
	}
	return &Explorer{
		view:     view,
		nav:      NewNavigator(view, renderer, float64(width), float64(height)),
		renderer: renderer,
		width:    width,
		height:   height,
	}, nil
}

// View exposes the session's view state, e.g. to seed a starting
// position before running.
func (e *Explorer) View() *View {
	return e.view
}

// Update polls input, routes it through the Navigator, and advances any
// glide animation.
func (e *Explorer) Update() error {
	e.nav.SetZoomModifier(zoomModifierHeld())
	e.processTouch()
	e.processMouse()
	e.processKeys()

	if e.view.update(float32(1.0 / float64(ebiten.TPS()))) {
		e.renderer.RequestFrame()
	}
	return nil
}

// zoomModifierHeld reads the zoom modifier. Shift is used consistently
// for both press and release.
func zoomModifierHeld() bool {
	return ebiten.IsKeyPressed(ebiten.KeyShift) ||
		ebiten.IsKeyPressed(ebiten.KeyShiftLeft) ||
		ebiten.IsKeyPressed(ebiten.KeyShiftRight)
}

// processTouch maps touches onto the Navigator: exactly two concurrent
// touches drive a pinch, a single touch drives the pointer.
func (e *Explorer) processTouch() {
	e.touchIDs = ebiten.AppendTouchIDs(e.touchIDs[:0])

	if len(e.touchIDs) >= 2 {
		x0, y0 := ebiten.TouchPosition(e.touchIDs[0])
		x1, y1 := ebiten.TouchPosition(e.touchIDs[1])
		if !e.pinchActive {
			e.nav.PinchStart(float64(x0), float64(y0), float64(x1), float64(y1))
			e.pinchActive = true
			e.touchDown = false
		} else {
			e.nav.PinchMove(float64(x0), float64(y0), float64(x1), float64(y1))
		}
		return
	}

	if e.pinchActive {
		e.nav.PinchEnd()
		e.pinchActive = false
	}

	if len(e.touchIDs) == 1 {
		x, y := ebiten.TouchPosition(e.touchIDs[0])
		if !e.touchDown {
			e.nav.PointerDown(float64(x), float64(y))
			e.touchDown = true
		} else {
			e.nav.PointerMove(float64(x), float64(y))
		}
	} else if e.touchDown {
		e.nav.PointerUp()
		e.touchDown = false
	}
}

// processMouse maps the left mouse button onto the pointer gesture.
// Skipped while touches own the pointer.
func (e *Explorer) processMouse() {
	if e.touchDown || e.pinchActive {
		return
	}
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	switch {
	case pressed && !e.mouseDown:
		e.nav.PointerDown(float64(mx), float64(my))
		e.mouseDown = true
	case pressed && e.mouseDown:
		e.nav.PointerMove(float64(mx), float64(my))
	case !pressed && e.mouseDown:
		e.nav.PointerUp()
		e.mouseDown = false
	}
}

// processKeys handles keyboard navigation: arrows pan, I/O zoom, R
// resets, H glides home, F toggles the overlay.
func (e *Explorer) processKeys() {
	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx += keyPanStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx -= keyPanStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy += keyPanStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy -= keyPanStep
	}
	if dx != 0 || dy != 0 {
		e.nav.PanBy(dx, dy)
	}

	if ebiten.IsKeyPressed(ebiten.KeyI) {
		e.nav.ZoomBy(-keyZoomStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyO) {
		e.nav.ZoomBy(keyZoomStep)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		e.view.Reset()
		e.renderer.RequestFrame()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		e.view.GlideTo(0, 0, DefaultZoom, glideHomeDur, ease.OutQuad)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		e.showOverlay = !e.showOverlay
	}
}

// Draw presents the fractal and the optional diagnostics overlay.
func (e *Explorer) Draw(screen *ebiten.Image) {
	e.renderer.Draw(screen)

	if e.showOverlay {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
			"FPS: %.0f  TPS: %.0f\nzoom: %.6f\noffset: (%.2f, %.2f)",
			ebiten.ActualFPS(), ebiten.ActualTPS(),
			e.view.Zoom, e.view.OffsetX, e.view.OffsetY), 4, 4)
	}
}

// Layout renders at window resolution and feeds size changes to the
// Navigator.
func (e *Explorer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != e.width || outsideHeight != e.height {
		e.width = outsideWidth
		e.height = outsideHeight
		e.nav.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return e.width, e.height
}

// Run opens a window and runs an Explorer until the window closes. It
// returns a startup error if the shader fails to compile; after that
// the interactive loop has no error paths.
func Run(cfg Config) error {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	if cfg.Title == "" {
		cfg.Title = "Mandelbrot"
	}

	e, err := NewExplorer(cfg.Width, cfg.Height, cfg.Ramp)
	if err != nil {
		return err
	}
	e.showOverlay = cfg.ShowOverlay

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(e)
}
