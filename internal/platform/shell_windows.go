//go:build windows

package platform

// ShellProgram returns the file-manager executable seeded into the
// tracked set on first run.
func ShellProgram() string {
	return shellExecutable()
}
