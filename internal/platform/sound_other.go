//go:build !windows

package platform

import "os"

// Beep plays the terminal bell. Desktop sessions without a bell simply
// stay silent.
func Beep() {
	os.Stdout.Write([]byte("\a"))
}
