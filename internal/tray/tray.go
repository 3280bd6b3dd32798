// Package tray shows a notification-area menu for toggling the input hooks.
package tray

import (
	"context"
	"log"

	"fyne.io/systray"
	"fyne.io/systray/example/icon"
)

// Controller is the hook lifecycle the tray toggles.
type Controller interface {
	SetInstalled(on bool) error
	Installed() bool
}

// Run shows the tray icon and blocks until Quit is chosen or ctx is done.
// It must be called from the main goroutine. onQuit runs when the user
// picks Quit.
func Run(ctx context.Context, ctrl Controller, onQuit func()) {
	systray.Run(func() { onReady(ctx, ctrl, onQuit) }, func() {})
}

// onReady builds the menu and services its clicks.
func onReady(ctx context.Context, ctrl Controller, onQuit func()) {
	systray.SetIcon(icon.Data)
	systray.SetTitle("FlashGestures")
	systray.SetTooltip("FlashGestures")

	mToggle := systray.AddMenuItem(toggleTitle(ctrl.Installed()), "install or remove the gesture hooks")
	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Quit", "stop FlashGestures")

	go func() {
		for {
			select {
			case <-ctx.Done():
				systray.Quit()
				return
			case <-mToggle.ClickedCh:
				installed, err := Toggle(ctrl)
				if err != nil {
					log.Printf("tray: %v", err)
				}
				mToggle.SetTitle(toggleTitle(installed))
			case <-mQuit.ClickedCh:
				if onQuit != nil {
					onQuit()
				}
				systray.Quit()
				return
			}
		}
	}()
}

// Toggle flips the hook state and returns the resulting state.
func Toggle(ctrl Controller) (bool, error) {
	err := ctrl.SetInstalled(!ctrl.Installed())
	return ctrl.Installed(), err
}

// toggleTitle labels the toggle item for the current state.
func toggleTitle(installed bool) string {
	if installed {
		return "✓ Gestures Enabled"
	}
	return "✘ Gestures Disabled"
}
