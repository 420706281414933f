package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBinding(t *testing.T) {
	tests := []struct {
		sequence string
		want     Binding
	}{
		{
			sequence: "ctrl+win+alt+a",
			want:     Binding{Ctrl: true, Win: true, Alt: true, Key: "a"},
		},
		{
			sequence: "win+shift+=",
			want:     Binding{Win: true, Shift: true, Key: "="},
		},
		{
			sequence: "win+shift++",
			want:     Binding{Win: true, Shift: true, Key: "+"},
		},
		{
			sequence: " Ctrl+Shift+F9 ",
			want:     Binding{Ctrl: true, Shift: true, Key: "f9"},
		},
		{
			sequence: "super+space",
			want:     Binding{Win: true, Key: "space"},
		},
		{
			sequence: "x",
			want:     Binding{Key: "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.sequence, func(t *testing.T) {
			binding, err := ParseBinding(tt.sequence)
			require.NoError(t, err)
			assert.Equal(t, tt.want, binding)
		})
	}
}

func TestParseBindingErrors(t *testing.T) {
	for _, sequence := range []string{
		"",
		"   ",
		"ctrl+",
		"ctrl+alt",
		"ctrl+q+a",
		"++a",
	} {
		t.Run(sequence, func(t *testing.T) {
			_, err := ParseBinding(sequence)
			assert.Error(t, err)
		})
	}
}
