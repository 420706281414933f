package tray

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShowTimer        func()
	OnAddForeground    func()
	OnRemoveForeground func()
	OnReset            func()
	OnResume           func()
	OnSettings         func()
	OnToggleAutostart  func(enabled bool)
	OnQuit             func()
}

// Manager handles system tray state.
type Manager struct {
	app           desktop.App
	statusItem    *fyne.MenuItem
	resumeItem    *fyne.MenuItem
	autostartItem *fyne.MenuItem
	callbacks     Callbacks
	active        bool
	autostartOn   bool
	total         time.Duration
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, autostartOn bool, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:         app,
		callbacks:   callbacks,
		autostartOn: autostartOn,
	}

	manager.statusItem = fyne.NewMenuItem("Tracked: 00:00:00", nil)
	manager.statusItem.Disabled = true

	manager.resumeItem = fyne.NewMenuItem("Resume previous total", func() {
		if manager.callbacks.OnResume != nil {
			manager.callbacks.OnResume()
		}
	})

	manager.autostartItem = fyne.NewMenuItem(autostartLabel(autostartOn), func() {
		manager.autostartOn = !manager.autostartOn
		if manager.callbacks.OnToggleAutostart != nil {
			manager.callbacks.OnToggleAutostart(manager.autostartOn)
		}
		manager.refreshMenu()
	})

	manager.refreshMenu()

	return manager
}

// SetStatus updates the elapsed-time readout and tracking state shown
// in the menu.
func (manager *Manager) SetStatus(total time.Duration, active bool) {
	manager.total = total
	manager.active = active
	state := "inactive"
	if active {
		state = "active"
	}
	manager.statusItem.Label = fmt.Sprintf("Tracked: %s (%s)", formatClock(total), state)
	manager.refreshMenu()
}

// SetAutostart reflects an externally changed start-at-login state.
func (manager *Manager) SetAutostart(enabled bool) {
	manager.autostartOn = enabled
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.autostartItem.Label = autostartLabel(manager.autostartOn)
	manager.app.SetSystemTrayMenu(fyne.NewMenu("Worktick",
		manager.statusItem,
		fyne.NewMenuItem("Show timer", func() {
			if manager.callbacks.OnShowTimer != nil {
				manager.callbacks.OnShowTimer()
			}
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Track foreground program", func() {
			if manager.callbacks.OnAddForeground != nil {
				manager.callbacks.OnAddForeground()
			}
		}),
		fyne.NewMenuItem("Untrack foreground program", func() {
			if manager.callbacks.OnRemoveForeground != nil {
				manager.callbacks.OnRemoveForeground()
			}
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Reset timer", func() {
			if manager.callbacks.OnReset != nil {
				manager.callbacks.OnReset()
			}
		}),
		manager.resumeItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Settings", func() {
			if manager.callbacks.OnSettings != nil {
				manager.callbacks.OnSettings()
			}
		}),
		manager.autostartItem,
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}

func autostartLabel(enabled bool) string {
	if enabled {
		return "Start at login: on"
	}
	return "Start at login: off"
}

func formatClock(total time.Duration) string {
	if total < 0 {
		total = 0
	}
	seconds := int64(total / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds/60)%60, seconds%60)
}
