//go:build !windows

package platform

type hotkeyListener struct{}

func newHotkeys() Hotkeys {
	return hotkeyListener{}
}

func (hotkeyListener) Register(sequence string, callback func()) error {
	return ErrHotkeysUnsupported
}

func (hotkeyListener) Start() error { return nil }

func (hotkeyListener) Stop() {}
