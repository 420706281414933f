package border

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// Config defines veil visuals.
type Config struct {
	Opacity uint8
}

// Window is a fullscreen translucent veil shown while tracking is
// inactive. Show and Hide are safe to call from any goroutine; the
// engine observer raises the veil while preference edits lower it.
type Window struct {
	window     fyne.Window
	background *canvas.Rectangle

	mu      sync.Mutex
	config  Config
	visible bool
}

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// New creates the veil window, hidden by default.
func New(app fyne.App, config Config) *Window {
	window := app.NewWindow("Worktick")
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		// Splash window is undecorated (no native frame/buttons).
		window = driver.CreateSplashWindow()
	}
	window.SetPadded(false)

	background := canvas.NewRectangle(color.NRGBA{R: 200, G: 40, B: 40, A: config.Opacity})
	window.SetContent(container.NewStack(background))

	veil := &Window{
		window:     window,
		config:     config,
		background: background,
	}

	return veil
}

// Show raises the veil over the whole screen.
func (veil *Window) Show() {
	veil.mu.Lock()
	if veil.visible {
		veil.mu.Unlock()
		return
	}
	veil.visible = true
	opacity := veil.config.Opacity
	veil.mu.Unlock()

	fyne.Do(func() {
		veil.window.SetFullScreen(true)
		veil.window.Show()
		veil.applyNativeOpacity(opacity)
	})
}

// Hide removes the veil.
func (veil *Window) Hide() {
	veil.mu.Lock()
	if !veil.visible {
		veil.mu.Unlock()
		return
	}
	veil.visible = false
	veil.mu.Unlock()

	fyne.Do(func() {
		veil.window.SetFullScreen(false)
		veil.window.Hide()
	})
}

// UpdateConfig changes veil visuals in place.
func (veil *Window) UpdateConfig(config Config) {
	veil.mu.Lock()
	veil.config = config
	visible := veil.visible
	veil.mu.Unlock()

	fyne.Do(func() {
		veil.background.FillColor = color.NRGBA{R: 200, G: 40, B: 40, A: config.Opacity}
		canvas.Refresh(veil.background)
		if visible {
			veil.applyNativeOpacity(config.Opacity)
		}
	})
}
