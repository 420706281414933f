package model

import "time"

// TrackerConfig contains runtime settings for the tracking engine.
type TrackerConfig struct {
	// PollInterval is how often the engine samples the foreground
	// program and idle state.
	PollInterval time.Duration

	// IdleTimeout is the no-input duration after which tracking pauses
	// regardless of the foreground program.
	IdleTimeout time.Duration

	// Goal is the target working duration. Zero or negative disables
	// the goal monitor.
	Goal time.Duration
}

// Normalized returns a copy with unset durations replaced by defaults.
func (config TrackerConfig) Normalized() TrackerConfig {
	if config.PollInterval <= 0 {
		config.PollInterval = time.Second
	}
	if config.IdleTimeout <= 0 {
		config.IdleTimeout = 30 * time.Second
	}
	return config
}
