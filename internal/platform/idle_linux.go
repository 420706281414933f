//go:build linux

package platform

import (
	"fmt"
	"sync"
	"time"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/screensaver"
	"github.com/jezek/xgb/xproto"

	"worktick/internal/core/tracker"
)

type idleProvider struct {
	mu   sync.Mutex
	conn *xgb.Conn
	root xproto.Window
}

type unsupportedIdleProvider struct{}

func newIdleProvider() IdleProvider {
	conn, err := xgb.NewConn()
	if err != nil {
		return unsupportedIdleProvider{}
	}
	if err := screensaver.Init(conn); err != nil {
		conn.Close()
		return unsupportedIdleProvider{}
	}
	return &idleProvider{
		conn: conn,
		root: xproto.Setup(conn).DefaultScreen(conn).Root,
	}
}

func (provider *idleProvider) IdleDuration() (time.Duration, error) {
	provider.mu.Lock()
	defer provider.mu.Unlock()

	info, err := screensaver.QueryInfo(provider.conn, xproto.Drawable(provider.root)).Reply()
	if err != nil {
		return 0, fmt.Errorf("query screensaver info: %w", err)
	}
	return time.Duration(info.MsSinceUserInput) * time.Millisecond, nil
}

func (unsupportedIdleProvider) IdleDuration() (time.Duration, error) {
	return 0, tracker.ErrIdleUnsupported
}
