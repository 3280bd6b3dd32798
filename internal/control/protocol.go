// Package control exposes hook lifecycle and gesture settings over a local
// websocket for the browser extension.
package control

// Client commands.
const (
	CmdInstall      = "install"
	CmdUninstall    = "uninstall"
	CmdRecordFocus  = "recordFocus"
	CmdRestoreFocus = "restoreFocus"
	CmdReset        = "reset"
	CmdSetGestures  = "setGestures"
	CmdState        = "state"
)

// Server message types.
const (
	MsgState   = "state"
	MsgGesture = "gesture"
	MsgError   = "error"
)

// Message is a client to server control payload.
type Message struct {
	T        string   `json:"t"`
	Gestures []string `json:"gestures,omitempty"`
}

// Reply is a server to client payload.
type Reply struct {
	T         string   `json:"t"`
	Conn      string   `json:"conn,omitempty"`
	Installed bool     `json:"installed,omitempty"`
	Gestures  []string `json:"gestures,omitempty"`
	OK        *bool    `json:"ok,omitempty"`
	Gesture   string   `json:"gesture,omitempty"`
	Result    string   `json:"result,omitempty"`
	Window    uintptr  `json:"window,omitempty"`
	Error     string   `json:"error,omitempty"`
}
