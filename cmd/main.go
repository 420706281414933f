package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"worktick/internal/config"
	"worktick/internal/core/tracker"
	"worktick/internal/platform"
	"worktick/internal/storage"
	"worktick/internal/ui/border"
	"worktick/internal/ui/indicator"
	"worktick/internal/ui/preferences"
	"worktick/internal/ui/tray"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"
)

const appName = "Worktick"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Printf("logger: %v", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()
	logger.Info("acquired single instance lock", zap.String("address", guard.Address()))

	dataDir, err := storage.DefaultDir("worktick")
	if err != nil {
		logger.Error("resolve data dir", zap.Error(err))
		return
	}

	settings, err := storage.LoadSettings(dataDir)
	if err != nil {
		logger.Warn("load settings, using defaults", zap.Error(err))
	}
	if settings.DataDir != "" {
		dataDir = settings.DataDir
	}
	settings, err = config.FromEnv(settings)
	if err != nil {
		logger.Warn("environment overrides ignored", zap.Error(err))
	}
	if err := settings.Validate(); err != nil {
		logger.Warn("invalid settings, using defaults", zap.Error(err))
		settings = config.Default()
	}

	programs, err := storage.LoadPrograms(dataDir)
	if err != nil {
		logger.Warn("load tracked programs", zap.Error(err))
	}
	if programs == nil {
		// First run: the file manager counts as work context so an
		// empty desktop does not immediately read as inactive.
		if shell := platform.ShellProgram(); shell != "" {
			programs = []string{shell}
		}
	}

	ledgerDB, err := storage.OpenLedger(dataDir)
	if err != nil {
		logger.Warn("ledger database unavailable, elapsed time will not survive restarts", zap.Error(err))
		ledgerDB = nil
	} else {
		defer func() {
			_ = ledgerDB.Close()
		}()
	}
	store := storage.NewStore(dataDir, ledgerDB, logger)

	var prior time.Duration
	if ledgerDB != nil {
		prior, err = ledgerDB.Load()
		if err != nil {
			logger.Warn("load elapsed time", zap.Error(err))
		}
	}

	ownPath := ""
	autostart, err := platform.NewAutostart(appName)
	if err != nil {
		logger.Warn("autostart unavailable", zap.Error(err))
	}
	if execPath, execErr := os.Executable(); execErr == nil {
		ownPath = execPath
	}

	engine := tracker.New(settings.Tracker(), programs, prior, tracker.Options{
		Resolver: platform.NewForegroundResolver(),
		Idle:     platform.NewIdleProvider(),
		Store:    store,
		Logger:   logger,
		OwnPath:  ownPath,
	})

	fyneApp := app.NewWithID("com.worktick.app")
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		logger.Error("system tray unsupported on this platform")
		return
	}

	trayWindow := fyneApp.NewWindow(appName)
	trayWindow.SetContent(widget.NewLabel("Worktick is running in the system tray."))
	trayWindow.SetCloseIntercept(trayWindow.Hide)
	trayWindow.Hide()
	desktopApp.SetSystemTrayWindow(trayWindow)

	timerWindow := indicator.New(fyneApp)
	veil := border.New(fyneApp, border.Config{Opacity: 90})

	// The event goroutine reads preference flags on every engine
	// event while the UI goroutine edits them, so the live settings
	// move behind a guarded store once wiring starts.
	prefs := config.NewStore(settings)

	saveSettings := func(current config.Config) {
		if err := storage.SaveSettings(dataDir, current); err != nil {
			logger.Warn("save settings", zap.Error(err))
		}
	}

	prefsWindow := preferences.New(fyneApp, preferences.FromConfig(settings),
		func(updated preferences.Settings) {
			next := prefs.Update(updated.Apply)
			saveSettings(next)
			engine.Enqueue(tracker.Command{Type: tracker.CmdSetIdleTimeout, Duration: next.IdleTimeout})
			engine.Enqueue(tracker.Command{Type: tracker.CmdSetGoal, Duration: next.Goal})
			if !next.ShowBorderWhenInactive {
				veil.Hide()
			}
		},
		func(elapsed time.Duration) {
			engine.Enqueue(tracker.Command{Type: tracker.CmdManualSetLedger, Duration: elapsed})
		})

	trayManager := tray.New(desktopApp, settings.StartAtLogin, tray.Callbacks{
		OnShowTimer: func() {
			timerWindow.Show()
		},
		OnAddForeground: func() {
			engine.Enqueue(tracker.Command{Type: tracker.CmdAddForeground})
		},
		OnRemoveForeground: func() {
			engine.Enqueue(tracker.Command{Type: tracker.CmdRemoveForeground})
		},
		OnReset: func() {
			engine.Enqueue(tracker.Command{Type: tracker.CmdResetLedger})
		},
		OnResume: func() {
			engine.Enqueue(tracker.Command{Type: tracker.CmdResumeLedger})
		},
		OnSettings: func() {
			prefsWindow.UpdateSettings(preferences.FromConfig(prefs.Snapshot()))
			prefsWindow.Show()
		},
		OnToggleAutostart: func(enabled bool) {
			next := prefs.Update(func(current config.Config) config.Config {
				current.StartAtLogin = enabled
				return current
			})
			saveSettings(next)
			if autostart == nil {
				return
			}
			var toggleErr error
			if enabled {
				toggleErr = autostart.Enable()
			} else {
				toggleErr = autostart.Disable()
			}
			if toggleErr != nil {
				logger.Warn("toggle autostart", zap.Error(toggleErr))
			}
		},
		OnQuit: func() {
			engine.Stop()
			fyneApp.Quit()
		},
	})

	hotkeys := platform.NewHotkeys()
	registerHotkey := func(sequence string, command tracker.CommandType) {
		if sequence == "" {
			return
		}
		if err := hotkeys.Register(sequence, func() {
			engine.Enqueue(tracker.Command{Type: command})
		}); err != nil {
			logger.Warn("register hotkey", zap.String("sequence", sequence), zap.Error(err))
		}
	}
	registerHotkey(settings.AddProgramHotkey, tracker.CmdAddForeground)
	registerHotkey(settings.RemoveProgramHotkey, tracker.CmdRemoveForeground)
	if err := hotkeys.Start(); err != nil {
		logger.Warn("global hotkeys unavailable", zap.Error(err))
	}
	defer hotkeys.Stop()

	events := engine.Subscribe(16)
	go func() {
		for event := range events {
			handleEvent(event, prefs, fyneApp, timerWindow, veil, trayManager, logger)
		}
	}()

	engine.Start()
	timerWindow.Show()
	trayManager.SetStatus(engine.Total(), engine.State() == tracker.StateActive)

	fyneApp.Run()
}

func handleEvent(event tracker.Event, prefs *config.Store, fyneApp fyne.App, timerWindow *indicator.Window, veil *border.Window, trayManager *tray.Manager, logger *zap.Logger) {
	switch event.Type {
	case tracker.EventStateChange:
		active := event.State == tracker.StateActive
		timerWindow.Update(event.Total, active)
		fyne.Do(func() {
			trayManager.SetStatus(event.Total, active)
		})
		if active {
			veil.Hide()
			return
		}
		current := prefs.Snapshot()
		if current.ShowBorderWhenInactive {
			veil.Show()
		}
		if current.PlaySoundOnIdle {
			platform.Beep()
		}

	case tracker.EventLedgerUpdate:
		timerWindow.Update(event.Total, event.State == tracker.StateActive)
		fyne.Do(func() {
			trayManager.SetStatus(event.Total, event.State == tracker.StateActive)
		})

	case tracker.EventGoalReached:
		fyne.Do(func() {
			fyneApp.SendNotification(fyne.NewNotification(appName,
				"Work goal reached: "+formatClock(event.Total)))
		})

	case tracker.EventAddResult:
		logger.Info("tracked set add", zap.String("program", event.Program), zap.String("result", string(event.Add)))

	case tracker.EventRemoveResult:
		logger.Info("tracked set remove", zap.String("program", event.Program), zap.String("result", string(event.Remove)))

	case tracker.EventIdleError:
		logger.Warn("idle detection", zap.String("detail", event.Message))
	}
}

func formatClock(total time.Duration) string {
	if total < 0 {
		total = 0
	}
	seconds := int64(total / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds/60)%60, seconds%60)
}
