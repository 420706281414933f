//go:build windows

package border

import (
	"syscall"

	"fyne.io/fyne/v2/driver"
)

const (
	gwlExStyle int32 = -20
	wsExLayered      = 0x00080000
	wsExTransparent  = 0x00000020
	lwaAlpha         = 0x2
)

var (
	user32DLL                      = syscall.NewLazyDLL("user32.dll")
	procGetWindowLongPtrW          = user32DLL.NewProc("GetWindowLongPtrW")
	procSetWindowLongPtrW          = user32DLL.NewProc("SetWindowLongPtrW")
	procSetLayeredWindowAttributes = user32DLL.NewProc("SetLayeredWindowAttributes")
)

// applyNativeOpacity makes the veil translucent and click-through so it
// never steals input from the program underneath.
func (veil *Window) applyNativeOpacity(alpha uint8) {
	nativeWindow, ok := veil.window.(driver.NativeWindow)
	if !ok {
		return
	}

	nativeWindow.RunNative(func(context any) {
		var hwnd uintptr
		switch value := context.(type) {
		case driver.WindowsWindowContext:
			hwnd = value.HWND
		case *driver.WindowsWindowContext:
			hwnd = value.HWND
		default:
			return
		}
		if hwnd == 0 {
			return
		}

		style, _, _ := procGetWindowLongPtrW.Call(hwnd, int32ToUintptr(gwlExStyle))
		wanted := style | wsExLayered | wsExTransparent
		if wanted != style {
			procSetWindowLongPtrW.Call(hwnd, int32ToUintptr(gwlExStyle), wanted)
		}
		procSetLayeredWindowAttributes.Call(hwnd, 0, uintptr(alpha), uintptr(lwaAlpha))
	})
}

func int32ToUintptr(value int32) uintptr {
	return uintptr(uint32(value))
}
