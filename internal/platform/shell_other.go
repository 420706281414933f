//go:build !windows

package platform

// ShellProgram returns the file-manager executable seeded into the
// tracked set on first run. There is no single shell binary to name
// here outside Windows.
func ShellProgram() string {
	return ""
}
