package preferences

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"worktick/internal/config"
)

func TestParseGoal(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
		ok    bool
	}{
		{"", 0, true},
		{"8:00", 8 * time.Hour, true},
		{"01:30", 90 * time.Minute, true},
		{"90", 90 * time.Minute, true},
		{"0", 0, true},
		{" 2:15 ", 2*time.Hour + 15*time.Minute, true},
		{"1:75", 0, false},
		{"abc", 0, false},
		{"-5", 0, false},
	}

	for _, test := range tests {
		got, ok := parseGoal(test.input)
		assert.Equal(t, test.ok, ok, "input %q", test.input)
		if test.ok {
			assert.Equal(t, test.want, got, "input %q", test.input)
		}
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
		ok    bool
	}{
		{"01:02:03", time.Hour + 2*time.Minute + 3*time.Second, true},
		{"00:00:00", 0, true},
		{"12:00", 0, false},
		{"1:60:00", 0, false},
		{"1:00:60", 0, false},
		{"junk", 0, false},
	}

	for _, test := range tests {
		got, ok := parseClock(test.input)
		assert.Equal(t, test.ok, ok, "input %q", test.input)
		if test.ok {
			assert.Equal(t, test.want, got, "input %q", test.input)
		}
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	settings := Settings{
		IdleTimeout:            45 * time.Second,
		Goal:                   4 * time.Hour,
		AddProgramHotkey:       "ctrl+alt+a",
		RemoveProgramHotkey:    "ctrl+alt+r",
		PlaySoundOnIdle:        true,
		ShowBorderWhenInactive: true,
	}

	applied := settings.Apply(config.Default())
	assert.Equal(t, settings, FromConfig(applied))
}
