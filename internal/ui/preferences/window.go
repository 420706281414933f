package preferences

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the settings UI.
type Window struct {
	window       fyne.Window
	settings     Settings
	onSave       func(Settings)
	onSetElapsed func(time.Duration)
	idleTimeout  *widget.Entry
	goal         *widget.Entry
	addHotkey    *widget.Entry
	removeHotkey *widget.Entry
	playSound    *widget.Check
	showBorder   *widget.Check
	elapsed      *widget.Entry
}

// New creates a settings window. onSetElapsed may be nil when manual
// time editing is not wanted.
func New(app fyne.App, settings Settings, onSave func(Settings), onSetElapsed func(time.Duration)) *Window {
	window := app.NewWindow("Worktick Settings")

	idleTimeout := widget.NewEntry()
	idleTimeout.SetText(fmt.Sprintf("%d", int(settings.IdleTimeout.Seconds())))

	goal := widget.NewEntry()
	goal.SetText(formatGoal(settings.Goal))
	goal.SetPlaceHolder("hh:mm, empty for none")

	addHotkey := widget.NewEntry()
	addHotkey.SetText(settings.AddProgramHotkey)

	removeHotkey := widget.NewEntry()
	removeHotkey.SetText(settings.RemoveProgramHotkey)

	playSound := widget.NewCheck("Play sound when going idle", nil)
	playSound.SetChecked(settings.PlaySoundOnIdle)

	showBorder := widget.NewCheck("Show screen border while inactive", nil)
	showBorder.SetChecked(settings.ShowBorderWhenInactive)

	elapsed := widget.NewEntry()
	elapsed.SetPlaceHolder("hh:mm:ss")

	form := container.NewVBox(
		widget.NewLabelWithStyle("Tracking", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Idle timeout"), idleTimeout, widget.NewLabel("sec")),
		container.NewHBox(widget.NewLabel("Daily goal"), goal),
		widget.NewLabelWithStyle("Hotkeys", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Track foreground"), addHotkey),
		container.NewHBox(widget.NewLabel("Untrack foreground"), removeHotkey),
		playSound,
		showBorder,
	)

	prefs := &Window{
		window:       window,
		settings:     settings,
		onSave:       onSave,
		onSetElapsed: onSetElapsed,
		idleTimeout:  idleTimeout,
		goal:         goal,
		addHotkey:    addHotkey,
		removeHotkey: removeHotkey,
		playSound:    playSound,
		showBorder:   showBorder,
		elapsed:      elapsed,
	}

	if onSetElapsed != nil {
		setButton := widget.NewButton("Set", prefs.handleSetElapsed)
		form.Add(widget.NewLabelWithStyle("Elapsed time", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
		form.Add(container.NewHBox(elapsed, setButton))
	}

	saveButton := widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", func() {
		window.Hide()
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(420, 380))
	window.SetCloseIntercept(window.Hide)

	return prefs
}

// Show displays the settings window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.idleTimeout.SetText(fmt.Sprintf("%d", int(settings.IdleTimeout.Seconds())))
	prefs.goal.SetText(formatGoal(settings.Goal))
	prefs.addHotkey.SetText(settings.AddProgramHotkey)
	prefs.removeHotkey.SetText(settings.RemoveProgramHotkey)
	prefs.playSound.SetChecked(settings.PlaySoundOnIdle)
	prefs.showBorder.SetChecked(settings.ShowBorderWhenInactive)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if seconds, ok := parsePositiveInt(prefs.idleTimeout.Text); ok {
		settings.IdleTimeout = time.Duration(seconds) * time.Second
	}
	if goal, ok := parseGoal(prefs.goal.Text); ok {
		settings.Goal = goal
	}
	settings.AddProgramHotkey = strings.TrimSpace(prefs.addHotkey.Text)
	settings.RemoveProgramHotkey = strings.TrimSpace(prefs.removeHotkey.Text)
	settings.PlaySoundOnIdle = prefs.playSound.Checked
	settings.ShowBorderWhenInactive = prefs.showBorder.Checked

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func (prefs *Window) handleSetElapsed() {
	value, ok := parseClock(prefs.elapsed.Text)
	if !ok {
		return
	}
	prefs.elapsed.SetText("")
	if prefs.onSetElapsed != nil {
		prefs.onSetElapsed(value)
	}
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}

func formatGoal(goal time.Duration) string {
	if goal <= 0 {
		return ""
	}
	minutes := int(goal.Minutes())
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// parseGoal accepts "hh:mm" or a plain minute count. An empty string
// clears the goal.
func parseGoal(value string) (time.Duration, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, true
	}
	if hours, minutes, ok := splitClockPair(value); ok {
		return time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute, true
	}
	if minutes, err := strconv.Atoi(value); err == nil && minutes >= 0 {
		return time.Duration(minutes) * time.Minute, true
	}
	return 0, false
}

func parseClock(value string) (time.Duration, bool) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 3 {
		return 0, false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, false
	}
	seconds, err := strconv.Atoi(parts[2])
	if err != nil || seconds < 0 || seconds > 59 {
		return 0, false
	}
	total := time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second
	return total, true
}

func splitClockPair(value string) (int, int, bool) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 {
		return 0, 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, 0, false
	}
	return hours, minutes, true
}
