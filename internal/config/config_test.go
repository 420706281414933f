package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "zero poll interval",
			mutate:  func(c *Config) { c.PollInterval = 0 },
			wantErr: "poll interval",
		},
		{
			name:    "poll interval too coarse",
			mutate:  func(c *Config) { c.PollInterval = 2 * time.Minute },
			wantErr: "too coarse",
		},
		{
			name:    "zero idle timeout",
			mutate:  func(c *Config) { c.IdleTimeout = 0 },
			wantErr: "idle timeout",
		},
		{
			name: "idle timeout shorter than poll",
			mutate: func(c *Config) {
				c.PollInterval = 10 * time.Second
				c.IdleTimeout = 5 * time.Second
			},
			wantErr: "must not be shorter",
		},
		{
			name:    "negative goal",
			mutate:  func(c *Config) { c.Goal = -time.Hour },
			wantErr: "goal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("WORKTICK_IDLE_TIMEOUT", "5m")
	t.Setenv("WORKTICK_GOAL", "8h")
	t.Setenv("WORKTICK_ADD_HOTKEY", "ctrl+shift+f9")

	cfg, err := FromEnv(Default())
	require.NoError(t, err)

	assert.Equal(t, 5*time.Minute, cfg.IdleTimeout)
	assert.Equal(t, 8*time.Hour, cfg.Goal)
	assert.Equal(t, "ctrl+shift+f9", cfg.AddProgramHotkey)
	assert.Equal(t, time.Second, cfg.PollInterval, "untouched values keep their defaults")
}

func TestTrackerConversion(t *testing.T) {
	cfg := Default()
	cfg.Goal = time.Hour

	tracker := cfg.Tracker()

	assert.Equal(t, cfg.PollInterval, tracker.PollInterval)
	assert.Equal(t, cfg.IdleTimeout, tracker.IdleTimeout)
	assert.Equal(t, time.Hour, tracker.Goal)
}
