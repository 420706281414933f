//go:build windows

package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"unsafe"

	"golang.org/x/sys/windows"

	"worktick/internal/core/tracker"
)

type foregroundResolver struct{}

func newForegroundResolver() ForegroundResolver {
	return &foregroundResolver{}
}

func (resolver *foregroundResolver) Resolve() (string, error) {
	handle, _, _ := procGetForegroundWindow.Call()
	if handle == 0 {
		// No application window owns the foreground: task switcher,
		// desktop or taskbar. Attribute it to the shell so working
		// inside shell UI counts as explorer, not as nothing.
		return shellExecutable(), nil
	}

	var pid uint32
	_, _, _ = procGetWindowThreadProcessId.Call(handle, uintptr(unsafe.Pointer(&pid)))
	if pid == 0 {
		return "", fmt.Errorf("%w: window has no owning process", tracker.ErrNotResolvable)
	}

	process, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, pid)
	if err != nil {
		// The process exited between the window query and here, or
		// it runs elevated and denies access.
		return "", fmt.Errorf("%w: open process %d: %v", tracker.ErrNotResolvable, pid, err)
	}
	defer windows.CloseHandle(process)

	var buffer [windows.MAX_PATH]uint16
	size := uint32(len(buffer))
	if err := windows.QueryFullProcessImageName(process, 0, &buffer[0], &size); err != nil {
		return "", fmt.Errorf("%w: query image name for pid %d: %v", tracker.ErrNotResolvable, pid, err)
	}
	return windows.UTF16ToString(buffer[:size]), nil
}

func shellExecutable() string {
	windir := os.Getenv("WINDIR")
	if windir == "" {
		windir = `C:\Windows`
	}
	return filepath.Join(windir, "explorer.exe")
}
