package app

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/frudas24/flashgestures/internal/web"
)

// RegisterRoutes wires API and websocket handlers onto the mux.
func (a *App) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/login", a.handleLogin)
	mux.HandleFunc("/logout", a.handleLogout)
	mux.HandleFunc("/api/state", a.handleState)
	mux.Handle("/ws/control", a.Control())
	mux.HandleFunc("/favicon.ico", handleFavicon)
	mux.Handle("/", staticFileServer(a.cfg.StaticDir))
}

type loginRequest struct {
	Token string `json:"token"`
}

type stateResponse struct {
	Authenticated bool     `json:"authenticated"`
	Installed     bool     `json:"installed"`
	Gestures      []string `json:"gestures"`
	ForwardZoom   bool     `json:"forwardZoom"`
	ForwardKeys   bool     `json:"forwardKeys"`
	LastGesture   string   `json:"lastGesture,omitempty"`
	Notices       uint64   `json:"notices"`
	Dropped       uint64   `json:"dropped"`
	Threads       int      `json:"threads"`
}

// handleLogin authenticates the session.
func (a *App) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !a.login.Allow() {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
		return
	}
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if !a.session.Authenticate(req.Token) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// handleLogout clears authentication state.
func (a *App) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	a.session.Logout()
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// handleState returns hook, gesture and notice state.
func (a *App) handleState(w http.ResponseWriter, _ *http.Request) {
	if !a.requireAuth(w) {
		return
	}
	snap := a.session.Snapshot()
	p := a.Prefs()
	gestures := snap.Gestures
	if gestures == nil {
		gestures = []string{}
	}
	resp := stateResponse{
		Authenticated: snap.Authenticated,
		Installed:     snap.Installed,
		Gestures:      gestures,
		ForwardZoom:   p.ForwardZoom,
		ForwardKeys:   p.ForwardKeys,
		LastGesture:   snap.LastGesture,
		Notices:       snap.Notices,
		Dropped:       a.control.Dropped(),
		Threads:       a.dispatcher.Threads(),
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// requireAuth returns false and writes an error if the session is not authenticated.
func (a *App) requireAuth(w http.ResponseWriter) bool {
	if !a.session.IsAuthenticated() {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return false
	}
	return true
}

// staticFileServer returns a handler for the control page, preferring disk then embed.
func staticFileServer(staticDir string) http.Handler {
	if staticDir != "" {
		if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
			return http.FileServer(http.Dir(staticDir))
		}
	}

	embedded, err := web.StaticFS()
	if err != nil {
		log.Printf("static assets unavailable: %v", err)
		return http.NotFoundHandler()
	}
	return http.FileServer(http.FS(embedded))
}

// handleFavicon avoids noisy 404s for the default browser request.
func handleFavicon(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
