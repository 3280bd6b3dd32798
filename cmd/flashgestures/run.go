// Package main starts the FlashGestures host.
package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"time"

	"github.com/frudas24/flashgestures/internal/app"
	"github.com/frudas24/flashgestures/internal/config"
	"github.com/frudas24/flashgestures/internal/gesture"
	"github.com/frudas24/flashgestures/internal/prefs"
	"github.com/frudas24/flashgestures/internal/session"
	"github.com/frudas24/flashgestures/internal/tray"
	"github.com/frudas24/flashgestures/internal/wininput"
	"golang.org/x/sync/errgroup"
)

// run wires the application and blocks until shutdown.
func run(debug bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	gesture.SetDebugLogging(debug)
	if debug {
		log.Printf("debug: enabled")
	}
	logStartup(cfg)

	p, err := prefs.Load(cfg.PrefsPath)
	if err != nil {
		return err
	}
	log.Printf("gestures: %v zoom=%v keys=%v", p.Gestures, p.ForwardZoom, p.ForwardKeys)

	desktop, err := wininput.NewDesktop(p.PluginClasses, p.BrowserClass, cfg.ClassCache)
	if errors.Is(err, wininput.ErrUnsupported) {
		log.Printf("desktop: %v", err)
	} else if err != nil {
		return err
	}

	sess := session.New(cfg.ControlToken)
	appInstance, err := app.New(cfg, sess, p, desktop, app.DefaultHooks)
	if err != nil {
		return err
	}
	if err := appInstance.Start(); err != nil {
		return err
	}
	defer func() {
		if err := appInstance.Stop(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	mux := http.NewServeMux()
	appInstance.RegisterRoutes(mux)
	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return appInstance.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if cfg.Tray {
		tray.Run(gctx, appInstance, stop)
		stop()
	}
	return g.Wait()
}

// logFatal prints and exits for startup failures.
func logFatal(err error) {
	log.Printf("fatal: %v", err)
	os.Exit(1)
}

// logStartup prints startup checks and connection info.
func logStartup(cfg config.Config) {
	log.Printf("FlashGestures starting (%s/%s)", runtime.GOOS, runtime.GOARCH)
	logEnvStatus(cfg)
	logPrefsStatus(cfg.PrefsPath)
	logListenStatus(cfg.ListenAddr)
}

// logEnvStatus reports whether a .env file was found and required values are set.
func logEnvStatus(cfg config.Config) {
	envPath := filepath.Join(cfg.DataDir, ".env")
	if fileExists(envPath) {
		log.Printf("env check: ok (%s)", envPath)
	} else {
		log.Printf("env check: missing (%s)", envPath)
	}
	log.Printf("env CONTROL_TOKEN: set")
	log.Printf("auto install: %v, tray: %v", cfg.AutoInstall, cfg.Tray)
}

// logPrefsStatus reports whether preferences come from disk or defaults.
func logPrefsStatus(path string) {
	if fileExists(path) {
		log.Printf("prefs check: ok (%s)", path)
		return
	}
	log.Printf("prefs check: defaults (%s not found)", path)
}

// logListenStatus reports the listen address and a local URL helper.
func logListenStatus(addr string) {
	log.Printf("listen addr: %s", addr)
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	log.Printf("local url: http://%s", net.JoinHostPort(host, port))
}

// fileExists reports whether a path exists and is a file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
