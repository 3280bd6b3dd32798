// Package app wires the gesture dispatcher, hook lifecycle and control surface together.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/frudas24/flashgestures/internal/arbiter"
	"github.com/frudas24/flashgestures/internal/config"
	"github.com/frudas24/flashgestures/internal/control"
	"github.com/frudas24/flashgestures/internal/gesture"
	"github.com/frudas24/flashgestures/internal/hook"
	"github.com/frudas24/flashgestures/internal/prefs"
	"github.com/frudas24/flashgestures/internal/session"
	"github.com/frudas24/flashgestures/internal/wininput"
	"golang.org/x/time/rate"
)

// HookFactory builds the installer that feeds d from the OS.
type HookFactory func(d *hook.Dispatcher, desktop wininput.Desktop) hook.Installer

// DefaultHooks installs the platform hook manager.
func DefaultHooks(d *hook.Dispatcher, desktop wininput.Desktop) hook.Installer {
	return hook.NewManager(d, desktop)
}

// App coordinates the HTTP API, the control websocket and the input hooks.
type App struct {
	mu         sync.Mutex
	cfg        config.Config
	prefs      prefs.Prefs
	session    *session.Session
	dispatcher *hook.Dispatcher
	hooks      hook.Installer
	control    *control.Server
	login      *rate.Limiter
}

// New creates a new application with its dependencies wired.
func New(cfg config.Config, sess *session.Session, p prefs.Prefs, desktop wininput.Desktop, hooks HookFactory) (*App, error) {
	if sess == nil {
		return nil, errors.New("session is required")
	}
	if desktop == nil {
		return nil, errors.New("desktop is required")
	}
	if hooks == nil {
		hooks = DefaultHooks
	}
	kinds, err := p.Kinds()
	if err != nil {
		return nil, err
	}
	perMin := cfg.LoginPerMin
	if perMin <= 0 {
		perMin = 10
	}

	app := &App{
		cfg:     cfg,
		prefs:   p,
		session: sess,
		login:   rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMin)), perMin),
	}
	app.dispatcher = hook.NewDispatcher(desktop,
		hook.WithKinds(kinds...),
		hook.WithSearchDepth(p.SearchDepth),
		hook.WithZoom(p.ForwardZoom),
		hook.WithKeys(p.ForwardKeys),
		hook.WithNotify(app.publish),
	)
	app.hooks = hooks(app.dispatcher, desktop)
	app.control = control.NewServer(control.Options{
		Session:      sess,
		Hooks:        app.hooks,
		Gestures:     app.dispatcher,
		Focus:        wininput.NewFocusKeeper(desktop),
		SaveGestures: app.saveGestures,
		NoticeBuffer: cfg.NoticeBuffer,
	})
	sess.SetKinds(p.Gestures)
	return app, nil
}

// publish hands a notice to the control feed. It runs on the hook thread.
func (a *App) publish(n arbiter.Notice) {
	a.control.Publish(n)
}

// Start installs the hooks when configured to.
func (a *App) Start() error {
	if !a.cfg.AutoInstall {
		return nil
	}
	err := a.hooks.Install()
	a.session.SetInstalled(a.hooks.Installed())
	if errors.Is(err, hook.ErrUnsupported) {
		log.Printf("hook: %v; control surface only", err)
		return nil
	}
	if err != nil && !errors.Is(err, hook.ErrInstalled) {
		return fmt.Errorf("install hooks: %w", err)
	}
	return nil
}

// Run delivers gesture notices until ctx is done.
func (a *App) Run(ctx context.Context) error {
	return a.control.Run(ctx)
}

// Stop removes the hooks if they are installed.
func (a *App) Stop() error {
	if !a.hooks.Installed() {
		return nil
	}
	err := a.hooks.Uninstall()
	a.session.SetInstalled(a.hooks.Installed())
	if err != nil && !errors.Is(err, hook.ErrNotInstalled) {
		return err
	}
	return nil
}

// SetInstalled installs or removes the hooks.
func (a *App) SetInstalled(on bool) error {
	var err error
	if on {
		err = a.hooks.Install()
	} else {
		err = a.hooks.Uninstall()
	}
	a.session.SetInstalled(a.hooks.Installed())
	if errors.Is(err, hook.ErrInstalled) || errors.Is(err, hook.ErrNotInstalled) {
		return nil
	}
	return err
}

// Installed reports whether the hooks are active.
func (a *App) Installed() bool {
	return a.hooks.Installed()
}

// saveGestures persists a gesture selection made over the control socket.
func (a *App) saveGestures(kinds []gesture.Kind) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.String())
	}
	next := a.prefs
	next.Gestures = names
	if err := prefs.Save(a.cfg.PrefsPath, next); err != nil {
		return err
	}
	a.prefs = next
	return nil
}

// Prefs returns the current preferences.
func (a *App) Prefs() prefs.Prefs {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.prefs
}

// Dispatcher returns the gesture dispatcher.
func (a *App) Dispatcher() *hook.Dispatcher {
	return a.dispatcher
}

// Control returns the control websocket handler.
func (a *App) Control() *control.Server {
	return a.control
}
