package platform

// ForegroundResolver maps the current foreground window to the
// absolute path of its owning executable.
type ForegroundResolver interface {
	Resolve() (string, error)
}

// NewForegroundResolver returns a platform-specific resolver.
func NewForegroundResolver() ForegroundResolver {
	return newForegroundResolver()
}
