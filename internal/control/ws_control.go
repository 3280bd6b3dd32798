package control

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/frudas24/flashgestures/internal/arbiter"
	"github.com/frudas24/flashgestures/internal/gesture"
	"github.com/frudas24/flashgestures/internal/hook"
	"github.com/frudas24/flashgestures/internal/session"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Gestures is the gesture state the control surface may reset or reconfigure.
type Gestures interface {
	Reset()
	SetKinds(kinds []gesture.Kind)
	Kinds() []gesture.Kind
}

// Focus records and restores the focused window.
type Focus interface {
	Record() bool
	Restore() bool
}

// Options holds the collaborators a Server drives.
type Options struct {
	Session  *session.Session
	Hooks    hook.Installer
	Gestures Gestures
	Focus    Focus
	// SaveGestures persists a new gesture selection. Optional.
	SaveGestures func(kinds []gesture.Kind) error
	// NoticeBuffer bounds queued gesture notices; extra notices are dropped.
	NoticeBuffer int
}

// Server handles the websocket control connection.
type Server struct {
	mu       sync.Mutex
	writeMu  sync.Mutex
	upgrader websocket.Upgrader
	opts     Options
	conn     *websocket.Conn
	connID   string
	notices  chan arbiter.Notice
	dropped  atomic.Uint64
}

// NewServer creates a control websocket server.
func NewServer(opts Options) *Server {
	if opts.NoticeBuffer <= 0 {
		opts.NoticeBuffer = 64
	}
	return &Server{
		opts:    opts,
		notices: make(chan arbiter.Notice, opts.NoticeBuffer),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// Publish queues a gesture notice without blocking. It is safe to call from
// the hook thread.
func (s *Server) Publish(n arbiter.Notice) {
	select {
	case s.notices <- n:
	default:
		s.dropped.Add(1)
	}
}

// Dropped returns how many notices were discarded because the queue was full.
func (s *Server) Dropped() uint64 {
	return s.dropped.Load()
}

// Run delivers queued notices to the session and the connected client until
// ctx is done.
func (s *Server) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case n := <-s.notices:
			s.opts.Session.RecordGesture(n.Gesture.String())
			s.send(Reply{
				T:       MsgGesture,
				Gesture: n.Gesture.String(),
				Result:  n.Result.String(),
				Window:  uintptr(n.Window),
			})
		}
	}
}

// ServeHTTP upgrades the connection and processes control messages.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !s.opts.Session.IsAuthenticated() {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	id := uuid.NewString()
	if err := s.acceptConn(conn, id); err != nil {
		log.Printf("control: reject %s: %v", id, err)
		_ = conn.WriteJSON(Reply{T: MsgError, Error: err.Error()})
		_ = conn.Close()
		return
	}
	defer s.cleanupConn(conn)
	log.Printf("control: connected %s from %s", id, r.RemoteAddr)

	s.send(s.state(nil))
	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			log.Printf("control: disconnected %s", id)
			return
		}
		reply, err := s.handleMessage(msg)
		if err != nil {
			s.send(Reply{T: MsgError, Conn: id, Error: err.Error()})
			continue
		}
		s.send(reply)
	}
}

// acceptConn ensures only one active control connection exists.
func (s *Server) acceptConn(conn *websocket.Conn, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		return fmt.Errorf("control connection already active")
	}
	s.conn = conn
	s.connID = id
	return nil
}

// cleanupConn clears the active connection when closed.
func (s *Server) cleanupConn(conn *websocket.Conn) {
	s.mu.Lock()
	if s.conn == conn {
		s.conn = nil
		s.connID = ""
	}
	s.mu.Unlock()
	_ = conn.Close()
}

// send writes r to the active connection, if any.
func (s *Server) send(r Reply) {
	s.mu.Lock()
	conn, id := s.conn, s.connID
	s.mu.Unlock()
	if conn == nil {
		return
	}
	if r.Conn == "" {
		r.Conn = id
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := conn.WriteJSON(r); err != nil {
		log.Printf("control: write %s: %v", id, err)
	}
}

// handleMessage applies a single control command and returns the reply.
func (s *Server) handleMessage(msg Message) (Reply, error) {
	switch msg.T {
	case CmdInstall:
		err := s.opts.Hooks.Install()
		s.opts.Session.SetInstalled(s.opts.Hooks.Installed())
		if err != nil && !errors.Is(err, hook.ErrInstalled) {
			return Reply{}, fmt.Errorf("install: %w", err)
		}
		return s.state(nil), nil
	case CmdUninstall:
		err := s.opts.Hooks.Uninstall()
		s.opts.Session.SetInstalled(s.opts.Hooks.Installed())
		if err != nil && !errors.Is(err, hook.ErrNotInstalled) {
			return Reply{}, fmt.Errorf("uninstall: %w", err)
		}
		return s.state(nil), nil
	case CmdRecordFocus:
		ok := s.opts.Focus.Record()
		return s.state(&ok), nil
	case CmdRestoreFocus:
		ok := s.opts.Focus.Restore()
		return s.state(&ok), nil
	case CmdReset:
		s.opts.Gestures.Reset()
		return s.state(nil), nil
	case CmdSetGestures:
		return s.handleSetGestures(msg.Gestures)
	case CmdState:
		return s.state(nil), nil
	default:
		return Reply{}, fmt.Errorf("unknown command %q", msg.T)
	}
}

// handleSetGestures validates, applies and persists a gesture selection.
func (s *Server) handleSetGestures(names []string) (Reply, error) {
	kinds := make([]gesture.Kind, 0, len(names))
	for _, name := range names {
		k, err := gesture.ParseKind(name)
		if err != nil {
			return Reply{}, err
		}
		kinds = append(kinds, k)
	}
	// Persist first so a failed save leaves the live selection untouched.
	if s.opts.SaveGestures != nil {
		if err := s.opts.SaveGestures(kinds); err != nil {
			return Reply{}, fmt.Errorf("save gestures: %w", err)
		}
	}
	s.opts.Gestures.SetKinds(kinds)
	s.opts.Session.SetKinds(kindNames(s.opts.Gestures.Kinds()))
	return s.state(nil), nil
}

// state builds a state reply from the session.
func (s *Server) state(ok *bool) Reply {
	snap := s.opts.Session.Snapshot()
	return Reply{
		T:         MsgState,
		Installed: snap.Installed,
		Gestures:  snap.Gestures,
		OK:        ok,
	}
}

// kindNames converts kinds into their wire names.
func kindNames(kinds []gesture.Kind) []string {
	out := make([]string, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, k.String())
	}
	return out
}
