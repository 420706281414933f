package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"worktick/internal/core/model"
)

// Config holds all application configuration. Values persisted in the
// settings file override these defaults, and WORKTICK_* environment
// variables override both.
type Config struct {
	// PollInterval is how often the engine samples foreground and
	// idle state.
	PollInterval time.Duration `envconfig:"POLL_INTERVAL"`

	// IdleTimeout is the no-input duration after which tracking
	// pauses.
	IdleTimeout time.Duration `envconfig:"IDLE_TIMEOUT"`

	// Goal is the target working duration. Zero disables the goal.
	Goal time.Duration `envconfig:"GOAL"`

	// AddProgramHotkey and RemoveProgramHotkey are global shortcuts
	// that tag or untag the focused program.
	AddProgramHotkey    string `envconfig:"ADD_HOTKEY"`
	RemoveProgramHotkey string `envconfig:"REMOVE_HOTKEY"`

	// PlaySoundOnIdle and ShowBorderWhenInactive control the idle
	// indicators.
	PlaySoundOnIdle        bool `envconfig:"PLAY_SOUND_ON_IDLE"`
	ShowBorderWhenInactive bool `envconfig:"SHOW_BORDER"`

	// StartAtLogin registers the app with the OS session startup.
	StartAtLogin bool `envconfig:"START_AT_LOGIN"`

	// DataDir overrides the default per-user state directory.
	DataDir string `envconfig:"DATA_DIR"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		PollInterval:           time.Second,
		IdleTimeout:            30 * time.Second,
		Goal:                   0,
		AddProgramHotkey:       "ctrl+win+alt+a",
		RemoveProgramHotkey:    "ctrl+win+alt+r",
		PlaySoundOnIdle:        false,
		ShowBorderWhenInactive: false,
	}
}

// FromEnv applies WORKTICK_* environment overrides on top of the given
// configuration.
func FromEnv(config Config) (Config, error) {
	if err := envconfig.Process("worktick", &config); err != nil {
		return config, fmt.Errorf("process environment: %w", err)
	}
	return config, nil
}

// Validate checks the configuration for values the engine cannot run
// with.
func (config Config) Validate() error {
	if config.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %v", config.PollInterval)
	}
	if config.PollInterval > time.Minute {
		return fmt.Errorf("poll interval %v is too coarse to track working time", config.PollInterval)
	}
	if config.IdleTimeout <= 0 {
		return fmt.Errorf("idle timeout must be positive, got %v", config.IdleTimeout)
	}
	if config.IdleTimeout < config.PollInterval {
		return fmt.Errorf("idle timeout %v must not be shorter than the poll interval %v",
			config.IdleTimeout, config.PollInterval)
	}
	if config.Goal < 0 {
		return fmt.Errorf("goal must not be negative, got %v", config.Goal)
	}
	return nil
}

// Tracker converts the application config into the engine's runtime
// configuration.
func (config Config) Tracker() model.TrackerConfig {
	return model.TrackerConfig{
		PollInterval: config.PollInterval,
		IdleTimeout:  config.IdleTimeout,
		Goal:         config.Goal,
	}
}
