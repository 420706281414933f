package platform

import (
	"fmt"
	"os"
)

// Autostart toggles launching the tracker with the user session.
type Autostart interface {
	Enable() error
	Disable() error
}

type autostart struct {
	appName  string
	execPath string
}

// NewAutostart builds the platform autostart helper for the running
// binary.
func NewAutostart(appName string) (Autostart, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("locate executable: %w", err)
	}
	return &autostart{appName: appName, execPath: execPath}, nil
}
