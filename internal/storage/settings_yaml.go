package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"worktick/internal/config"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	PollIntervalMillis     int    `yaml:"poll_interval_ms"`
	IdleTimeoutSeconds     int    `yaml:"idle_timeout_seconds"`
	GoalSeconds            int    `yaml:"goal_seconds"`
	AddProgramHotkey       string `yaml:"add_program_hotkey"`
	RemoveProgramHotkey    string `yaml:"remove_program_hotkey"`
	PlaySoundOnIdle        bool   `yaml:"play_sound_on_idle"`
	ShowBorderWhenInactive bool   `yaml:"show_border_when_inactive"`
	StartAtLogin           bool   `yaml:"start_at_login"`
}

// DefaultDir resolves the per-user state directory.
func DefaultDir(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName), nil
}

// LoadSettings reads user preferences from YAML. A missing file returns
// the defaults; a malformed file returns the defaults along with the
// parse error so the caller can log and continue.
func LoadSettings(dir string) (config.Config, error) {
	settings := config.Default()

	rawData, err := os.ReadFile(filepath.Join(dir, settingsFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(dir string, settings config.Config) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	fileData := yamlSettings{
		PollIntervalMillis:     int(settings.PollInterval / time.Millisecond),
		IdleTimeoutSeconds:     int(settings.IdleTimeout / time.Second),
		GoalSeconds:            int(settings.Goal / time.Second),
		AddProgramHotkey:       settings.AddProgramHotkey,
		RemoveProgramHotkey:    settings.RemoveProgramHotkey,
		PlaySoundOnIdle:        settings.PlaySoundOnIdle,
		ShowBorderWhenInactive: settings.ShowBorderWhenInactive,
		StartAtLogin:           settings.StartAtLogin,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, settingsFileName), serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *config.Config, fileData yamlSettings) {
	if fileData.PollIntervalMillis > 0 {
		settings.PollInterval = time.Duration(fileData.PollIntervalMillis) * time.Millisecond
	}
	if fileData.IdleTimeoutSeconds > 0 {
		settings.IdleTimeout = time.Duration(fileData.IdleTimeoutSeconds) * time.Second
	}
	if fileData.GoalSeconds > 0 {
		settings.Goal = time.Duration(fileData.GoalSeconds) * time.Second
	}
	if fileData.AddProgramHotkey != "" {
		settings.AddProgramHotkey = fileData.AddProgramHotkey
	}
	if fileData.RemoveProgramHotkey != "" {
		settings.RemoveProgramHotkey = fileData.RemoveProgramHotkey
	}

	settings.PlaySoundOnIdle = fileData.PlaySoundOnIdle
	settings.ShowBorderWhenInactive = fileData.ShowBorderWhenInactive
	settings.StartAtLogin = fileData.StartAtLogin
}
