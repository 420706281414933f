//go:build windows

package platform

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"
)

const (
	modAlt     = 0x0001
	modControl = 0x0002
	modShift   = 0x0004
	modWin     = 0x0008

	wmHotkey = 0x0312
	wmQuit   = 0x0012
)

// Virtual-key codes for the non-alphanumeric keys users put in
// shortcut strings.
var namedKeys = map[string]uint32{
	"space":     0x20,
	"tab":       0x09,
	"enter":     0x0D,
	"return":    0x0D,
	"esc":       0x1B,
	"escape":    0x1B,
	"backspace": 0x08,
	"delete":    0x2E,
	"insert":    0x2D,
	"home":      0x24,
	"end":       0x23,
	"pageup":    0x21,
	"pagedown":  0x22,
	"left":      0x25,
	"up":        0x26,
	"right":     0x27,
	"down":      0x28,
	";":         0xBA,
	"=":         0xBB,
	"+":         0xBB,
	",":         0xBC,
	"-":         0xBD,
	".":         0xBE,
	"/":         0xBF,
	"`":         0xC0,
	"[":         0xDB,
	"\\":        0xDC,
	"]":         0xDD,
	"'":         0xDE,
}

type registration struct {
	mods     uint32
	vk       uint32
	callback func()
}

type hotkeyListener struct {
	mu       sync.Mutex
	pending  []registration
	threadID uint32
	running  bool
	done     chan struct{}
}

func newHotkeys() Hotkeys {
	return &hotkeyListener{}
}

// Register parses and queues a shortcut. All registrations must happen
// before Start because RegisterHotKey binds hotkeys to the thread that
// runs the message loop.
func (listener *hotkeyListener) Register(sequence string, callback func()) error {
	binding, err := ParseBinding(sequence)
	if err != nil {
		return err
	}
	vk, err := virtualKey(binding.Key)
	if err != nil {
		return fmt.Errorf("hotkey %q: %w", sequence, err)
	}

	listener.mu.Lock()
	defer listener.mu.Unlock()
	if listener.running {
		return fmt.Errorf("hotkey %q: listener already started", sequence)
	}
	listener.pending = append(listener.pending, registration{
		mods:     modifierFlags(binding),
		vk:       vk,
		callback: callback,
	})
	return nil
}

func (listener *hotkeyListener) Start() error {
	listener.mu.Lock()
	if listener.running {
		listener.mu.Unlock()
		return nil
	}
	listener.running = true
	listener.done = make(chan struct{})
	registrations := append([]registration(nil), listener.pending...)
	listener.mu.Unlock()

	ready := make(chan error, 1)
	go listener.messageLoop(registrations, ready)
	return <-ready
}

func (listener *hotkeyListener) Stop() {
	listener.mu.Lock()
	if !listener.running {
		listener.mu.Unlock()
		return
	}
	listener.running = false
	threadID := listener.threadID
	done := listener.done
	listener.mu.Unlock()

	_, _, _ = procPostThreadMessageW.Call(uintptr(threadID), wmQuit, 0, 0)
	<-done
}

type winMsg struct {
	hwnd    uintptr
	message uint32
	wParam  uintptr
	lParam  uintptr
	time    uint32
	ptX     int32
	ptY     int32
}

// messageLoop registers the hotkeys and pumps window messages on a
// dedicated OS thread until WM_QUIT arrives.
func (listener *hotkeyListener) messageLoop(registrations []registration, ready chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(listener.done)

	threadID, _, _ := procGetCurrentThreadId.Call()
	listener.mu.Lock()
	listener.threadID = uint32(threadID)
	listener.mu.Unlock()

	callbacks := make(map[uintptr]func(), len(registrations))
	for i, reg := range registrations {
		id := uintptr(i + 1)
		result, _, err := procRegisterHotKey.Call(0, id, uintptr(reg.mods), uintptr(reg.vk))
		if result == 0 {
			for registered := range callbacks {
				_, _, _ = procUnregisterHotKey.Call(0, registered)
			}
			ready <- fmt.Errorf("register hotkey id %d: %w", id, err)
			return
		}
		callbacks[id] = reg.callback
	}
	ready <- nil

	defer func() {
		for id := range callbacks {
			_, _, _ = procUnregisterHotKey.Call(0, id)
		}
	}()

	var msg winMsg
	for {
		result, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(&msg)), 0, 0, 0)
		// GetMessage returns 0 on WM_QUIT and -1 on failure.
		if int32(result) <= 0 {
			return
		}
		if msg.message == wmHotkey {
			if callback, ok := callbacks[msg.wParam]; ok {
				callback()
			}
		}
	}
}

func modifierFlags(binding Binding) uint32 {
	var mods uint32
	if binding.Ctrl {
		mods |= modControl
	}
	if binding.Alt {
		mods |= modAlt
	}
	if binding.Shift {
		mods |= modShift
	}
	if binding.Win {
		mods |= modWin
	}
	return mods
}

func virtualKey(key string) (uint32, error) {
	if len(key) == 1 {
		char := key[0]
		switch {
		case char >= 'a' && char <= 'z':
			return uint32(char - 'a' + 'A'), nil
		case char >= '0' && char <= '9':
			return uint32(char), nil
		}
	}
	if len(key) >= 2 && key[0] == 'f' {
		var number int
		if _, err := fmt.Sscanf(key, "f%d", &number); err == nil && number >= 1 && number <= 24 {
			return uint32(0x70 + number - 1), nil
		}
	}
	if vk, ok := namedKeys[key]; ok {
		return vk, nil
	}
	return 0, fmt.Errorf("unmapped key %q", key)
}
