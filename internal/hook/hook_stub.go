//go:build !windows

package hook

import "github.com/frudas24/flashgestures/internal/wininput"

// Manager is a placeholder on non-Windows builds.
type Manager struct{}

// Ensure Manager implements Installer.
var _ Installer = (*Manager)(nil)

// NewManager returns a manager that cannot install hooks.
func NewManager(d *Dispatcher, desktop wininput.Desktop) *Manager {
	_ = d
	_ = desktop
	return &Manager{}
}

// Install always fails.
func (m *Manager) Install() error {
	return ErrUnsupported
}

// Uninstall always fails.
func (m *Manager) Uninstall() error {
	return ErrUnsupported
}

// Installed reports false.
func (m *Manager) Installed() bool {
	return false
}
