//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"strings"
)

const registryRunKey = `HKCU\Software\Microsoft\Windows\CurrentVersion\Run`

func (service *autostart) Enable() error {
	command := exec.Command("reg", "add", registryRunKey,
		"/v", service.appName,
		"/t", "REG_SZ",
		"/d", fmt.Sprintf(`"%s"`, strings.Trim(service.execPath, `"`)),
		"/f")
	output, err := command.CombinedOutput()
	if err != nil {
		return fmt.Errorf("enable autostart: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

func (service *autostart) Disable() error {
	command := exec.Command("reg", "delete", registryRunKey,
		"/v", service.appName,
		"/f")
	output, err := command.CombinedOutput()
	if err != nil {
		return fmt.Errorf("disable autostart: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}
