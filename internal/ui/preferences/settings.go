package preferences

import (
	"time"

	"worktick/internal/config"
)

// Settings defines the editable user preferences.
type Settings struct {
	IdleTimeout time.Duration
	Goal        time.Duration

	AddProgramHotkey    string
	RemoveProgramHotkey string

	PlaySoundOnIdle        bool
	ShowBorderWhenInactive bool
}

// FromConfig extracts the editable subset of the app configuration.
func FromConfig(appConfig config.Config) Settings {
	return Settings{
		IdleTimeout:            appConfig.IdleTimeout,
		Goal:                   appConfig.Goal,
		AddProgramHotkey:       appConfig.AddProgramHotkey,
		RemoveProgramHotkey:    appConfig.RemoveProgramHotkey,
		PlaySoundOnIdle:        appConfig.PlaySoundOnIdle,
		ShowBorderWhenInactive: appConfig.ShowBorderWhenInactive,
	}
}

// Apply writes the edited values back onto the app configuration.
func (settings Settings) Apply(appConfig config.Config) config.Config {
	appConfig.IdleTimeout = settings.IdleTimeout
	appConfig.Goal = settings.Goal
	appConfig.AddProgramHotkey = settings.AddProgramHotkey
	appConfig.RemoveProgramHotkey = settings.RemoveProgramHotkey
	appConfig.PlaySoundOnIdle = settings.PlaySoundOnIdle
	appConfig.ShowBorderWhenInactive = settings.ShowBorderWhenInactive
	return appConfig
}
