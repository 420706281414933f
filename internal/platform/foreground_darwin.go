//go:build darwin

package platform

import (
	"fmt"

	"worktick/internal/core/tracker"
)

type foregroundResolver struct{}

func newForegroundResolver() ForegroundResolver {
	return &foregroundResolver{}
}

func (resolver *foregroundResolver) Resolve() (string, error) {
	return "", fmt.Errorf("%w: unsupported on this platform", tracker.ErrNotResolvable)
}
