// Package session holds runtime state for the connected browser extension.
package session

import (
	"crypto/subtle"
	"sync"
)

// Snapshot represents a read-only view of the current session state.
type Snapshot struct {
	Authenticated bool
	Installed     bool
	Gestures      []string
	LastGesture   string
	Notices       uint64
}

// Session holds runtime state for the connected browser extension.
type Session struct {
	mu            sync.RWMutex
	token         string
	authenticated bool
	installed     bool
	gestures      []string
	lastGesture   string
	notices       uint64
}

// New returns an initialized session with the given control token.
func New(token string) *Session {
	return &Session{token: token}
}

// Authenticate validates the token and marks the session as authenticated.
func (s *Session) Authenticate(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != "" && subtle.ConstantTimeCompare([]byte(token), []byte(s.token)) == 1 {
		s.authenticated = true
		return true
	}
	s.authenticated = false
	return false
}

// Logout clears authentication state.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = false
}

// IsAuthenticated reports whether the session is authenticated.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// SetInstalled records whether the input hooks are active.
func (s *Session) SetInstalled(installed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.installed = installed
}

// Installed reports whether the input hooks are active.
func (s *Session) Installed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.installed
}

// SetKinds stores the enabled gesture names.
func (s *Session) SetKinds(names []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gestures = append([]string(nil), names...)
}

// Kinds returns the enabled gesture names.
func (s *Session) Kinds() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.gestures...)
}

// RecordGesture counts a gesture notice and remembers its name.
func (s *Session) RecordGesture(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastGesture = name
	s.notices++
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Authenticated: s.authenticated,
		Installed:     s.installed,
		Gestures:      append([]string(nil), s.gestures...),
		LastGesture:   s.lastGesture,
		Notices:       s.notices,
	}
}
