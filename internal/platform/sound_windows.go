//go:build windows

package platform

const mbIconAsterisk = 0x00000040

// Beep plays the system notification sound.
func Beep() {
	procMessageBeep.Call(uintptr(mbIconAsterisk))
}
