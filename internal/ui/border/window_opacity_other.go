//go:build !windows

package border

func (veil *Window) applyNativeOpacity(alpha uint8) {}
