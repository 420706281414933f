//go:build linux

package platform

import (
	"encoding/binary"
	"fmt"
	"os"
	"sync"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"

	"worktick/internal/core/tracker"
)

type foregroundResolver struct {
	mu    sync.Mutex
	conn  *xgb.Conn
	root  xproto.Window
	atoms map[string]xproto.Atom
}

type unsupportedForegroundResolver struct{}

func newForegroundResolver() ForegroundResolver {
	conn, err := xgb.NewConn()
	if err != nil {
		return unsupportedForegroundResolver{}
	}

	resolver := &foregroundResolver{
		conn:  conn,
		root:  xproto.Setup(conn).DefaultScreen(conn).Root,
		atoms: make(map[string]xproto.Atom),
	}
	for _, name := range []string{"_NET_ACTIVE_WINDOW", "_NET_WM_PID"} {
		reply, err := xproto.InternAtom(conn, false, uint16(len(name)), name).Reply()
		if err != nil {
			conn.Close()
			return unsupportedForegroundResolver{}
		}
		resolver.atoms[name] = reply.Atom
	}
	return resolver
}

func (resolver *foregroundResolver) Resolve() (string, error) {
	resolver.mu.Lock()
	defer resolver.mu.Unlock()

	window := resolver.activeWindow()
	if window == 0 {
		return "", fmt.Errorf("%w: no active window", tracker.ErrNotResolvable)
	}

	pid := resolver.windowPID(window)
	if pid == 0 {
		return "", fmt.Errorf("%w: window 0x%x has no _NET_WM_PID", tracker.ErrNotResolvable, window)
	}

	path, err := os.Readlink(fmt.Sprintf("/proc/%d/exe", pid))
	if err != nil {
		// The process exited between the window query and here, or
		// /proc is not readable for it.
		return "", fmt.Errorf("%w: readlink pid %d: %v", tracker.ErrNotResolvable, pid, err)
	}
	return path, nil
}

func (resolver *foregroundResolver) activeWindow() xproto.Window {
	data := resolver.property(resolver.root, resolver.atoms["_NET_ACTIVE_WINDOW"], xproto.AtomWindow)
	if len(data) < 4 {
		return 0
	}
	return xproto.Window(binary.LittleEndian.Uint32(data))
}

func (resolver *foregroundResolver) windowPID(window xproto.Window) uint32 {
	data := resolver.property(window, resolver.atoms["_NET_WM_PID"], xproto.AtomCardinal)
	if len(data) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(data)
}

func (resolver *foregroundResolver) property(window xproto.Window, atom xproto.Atom, atomType xproto.Atom) []byte {
	reply, err := xproto.GetProperty(resolver.conn, false, window, atom, atomType, 0, 1).Reply()
	if err != nil {
		return nil
	}
	return reply.Value
}

func (unsupportedForegroundResolver) Resolve() (string, error) {
	return "", fmt.Errorf("%w: no X display", tracker.ErrNotResolvable)
}
