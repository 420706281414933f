package indicator

import (
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

var (
	activeFill   = color.NRGBA{R: 176, G: 255, B: 255, A: 255}
	inactiveFill = color.NRGBA{R: 240, G: 112, B: 112, A: 255}
	clockColor   = color.NRGBA{R: 20, G: 20, B: 20, A: 255}
)

// Window is the small always-visible timer readout.
type Window struct {
	window     fyne.Window
	background *canvas.Rectangle
	clockLabel *canvas.Text
	visible    bool
}

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// New creates the timer window. It stays hidden until Show is called.
func New(app fyne.App) *Window {
	window := app.NewWindow("Worktick")
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		// Splash window is undecorated (no native frame/buttons).
		window = driver.CreateSplashWindow()
	}
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	background := canvas.NewRectangle(activeFill)

	clockLabel := canvas.NewText("00:00:00", clockColor)
	clockLabel.Alignment = fyne.TextAlignCenter
	clockLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	clockLabel.TextSize = 28

	window.SetContent(container.NewStack(background, container.NewCenter(clockLabel)))
	window.Resize(fyne.NewSize(180, 64))

	return &Window{
		window:     window,
		background: background,
		clockLabel: clockLabel,
	}
}

// Show makes the timer window visible. Repeated calls are no-ops.
func (indicator *Window) Show() {
	if indicator.visible {
		return
	}
	indicator.visible = true
	indicator.window.Show()
}

// Hide hides the timer window without closing it.
func (indicator *Window) Hide() {
	if !indicator.visible {
		return
	}
	indicator.visible = false
	indicator.window.Hide()
}

// Update refreshes the readout and recolors the background to match
// the tracking state.
func (indicator *Window) Update(total time.Duration, active bool) {
	fyne.Do(func() {
		indicator.clockLabel.Text = formatClock(total)
		indicator.clockLabel.Refresh()

		fill := activeFill
		if !active {
			fill = inactiveFill
		}
		if indicator.background.FillColor != fill {
			indicator.background.FillColor = fill
			canvas.Refresh(indicator.background)
		}
	})
}

func formatClock(total time.Duration) string {
	if total < 0 {
		total = 0
	}
	seconds := int64(total / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds/60)%60, seconds%60)
}
