package hook

import "errors"

var (
	// ErrUnsupported indicates system-wide input hooks are not available.
	ErrUnsupported = errors.New("input hooks are only supported on Windows")
	// ErrInstalled is returned when Install is called twice.
	ErrInstalled = errors.New("hook already installed")
	// ErrNotInstalled is returned when Uninstall finds no hook.
	ErrNotInstalled = errors.New("hook not installed")
)

// Installer controls the lifetime of the system input hooks.
type Installer interface {
	Install() error
	Uninstall() error
	Installed() bool
}
