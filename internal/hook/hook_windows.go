//go:build windows

package hook

import (
	"fmt"
	"log"
	"runtime"
	"sync"
	"unsafe"

	"github.com/frudas24/flashgestures/internal/gesture"
	"github.com/frudas24/flashgestures/internal/wininput"
	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

const (
	whKeyboardLL = 13
	whMouseLL    = 14
	hcAction     = 0

	llkhfExtended = 0x01
	llkhfAltDown  = 0x20
	llkhfUp       = 0x80
)

var (
	libuser32             = windows.NewLazySystemDLL("user32.dll")
	procSetWindowsHookEx  = libuser32.NewProc("SetWindowsHookExW")
	procUnhookWindowsHook = libuser32.NewProc("UnhookWindowsHookEx")
	procCallNextHookEx    = libuser32.NewProc("CallNextHookEx")
	procPostThreadMessage = libuser32.NewProc("PostThreadMessageW")
	procGetAsyncKeyState  = libuser32.NewProc("GetAsyncKeyState")
)

// msllHookStruct mirrors MSLLHOOKSTRUCT.
type msllHookStruct struct {
	Pt          win.POINT
	MouseData   uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

// kbdllHookStruct mirrors KBDLLHOOKSTRUCT.
type kbdllHookStruct struct {
	VkCode      uint32
	ScanCode    uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

// Manager owns the low-level mouse and keyboard hooks. The hooks live on a
// dedicated locked OS thread running its own message loop.
type Manager struct {
	dispatcher *Dispatcher
	desktop    wininput.Desktop
	mouseCB    uintptr
	keyCB      uintptr
	// mods is touched only by the hook thread.
	mods modifierTracker

	mu        sync.Mutex
	threadID  uint32
	mouseHook uintptr
	keyHook   uintptr
	done      chan struct{}
}

// Ensure Manager implements Installer.
var _ Installer = (*Manager)(nil)

// NewManager returns a manager delivering hooked input to d.
func NewManager(d *Dispatcher, desktop wininput.Desktop) *Manager {
	m := &Manager{dispatcher: d, desktop: desktop}
	m.mouseCB = windows.NewCallback(m.mouseProc)
	m.keyCB = windows.NewCallback(m.keyProc)
	return m
}

// Install starts the hook thread and waits until both hooks are set.
func (m *Manager) Install() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.done != nil {
		return ErrInstalled
	}
	ready := make(chan error, 1)
	done := make(chan struct{})
	go m.run(ready, done)
	if err := <-ready; err != nil {
		<-done
		return err
	}
	m.done = done
	log.Printf("hook: installed thread=%d", m.threadID)
	return nil
}

// Uninstall stops the hook thread and removes both hooks.
func (m *Manager) Uninstall() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.done == nil {
		return ErrNotInstalled
	}
	ret, _, err := procPostThreadMessage.Call(uintptr(m.threadID), win.WM_QUIT, 0, 0)
	if ret == 0 {
		return fmt.Errorf("post quit to hook thread: %w", err)
	}
	<-m.done
	m.done = nil
	m.dispatcher.Reset()
	log.Printf("hook: uninstalled")
	return nil
}

// Installed reports whether the hooks are active.
func (m *Manager) Installed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.done != nil
}

// run installs the hooks and pumps messages until WM_QUIT.
func (m *Manager) run(ready chan<- error, done chan<- struct{}) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(done)

	m.threadID = win.GetCurrentThreadId()
	m.mods.reset()
	module := uintptr(win.GetModuleHandle(nil))
	mh, _, err := procSetWindowsHookEx.Call(whMouseLL, m.mouseCB, module, 0)
	if mh == 0 {
		ready <- fmt.Errorf("set mouse hook: %w", err)
		return
	}
	kh, _, err := procSetWindowsHookEx.Call(whKeyboardLL, m.keyCB, module, 0)
	if kh == 0 {
		procUnhookWindowsHook.Call(mh)
		ready <- fmt.Errorf("set keyboard hook: %w", err)
		return
	}
	m.mouseHook, m.keyHook = mh, kh
	ready <- nil

	var msg win.MSG
	for win.GetMessage(&msg, 0, 0, 0) > 0 {
		win.TranslateMessage(&msg)
		win.DispatchMessage(&msg)
	}
	procUnhookWindowsHook.Call(kh)
	procUnhookWindowsHook.Call(mh)
	m.mouseHook, m.keyHook = 0, 0
}

// mouseProc receives every mouse message system-wide.
func (m *Manager) mouseProc(nCode int, wParam, lParam uintptr) uintptr {
	if nCode == hcAction {
		ms := (*msllHookStruct)(unsafe.Pointer(lParam))
		ev, ok := m.mouseEvent(gesture.Msg(wParam), ms)
		if ok && m.dispatcher.Dispatch(m.desktop.WindowThread(ev.Window), ev) {
			return 1
		}
	}
	ret, _, _ := procCallNextHookEx.Call(0, uintptr(nCode), wParam, lParam)
	return ret
}

// keyProc receives every keyboard message system-wide.
func (m *Manager) keyProc(nCode int, wParam, lParam uintptr) uintptr {
	if nCode == hcAction {
		kb := (*kbdllHookStruct)(unsafe.Pointer(lParam))
		ev, ok := m.keyEvent(gesture.Msg(wParam), kb)
		if ok && m.dispatcher.Dispatch(m.desktop.WindowThread(ev.Window), ev) {
			return 1
		}
	}
	ret, _, _ := procCallNextHookEx.Call(0, uintptr(nCode), wParam, lParam)
	return ret
}

// mouseEvent rebuilds the message the target window would have received.
// Wheel messages keep screen coordinates; the rest are client relative.
func (m *Manager) mouseEvent(msg gesture.Msg, ms *msllHookStruct) (gesture.Event, bool) {
	hwnd := win.HWND(m.dispatcher.Target(gesture.Window(win.WindowFromPoint(ms.Pt))))
	if hwnd == 0 {
		return gesture.Event{}, false
	}
	keys := uintptr(buttonMask(msg))
	pt := ms.Pt
	switch msg {
	case gesture.MsgMouseWheel, gesture.MsgMouseHWheel:
		keys |= uintptr(ms.MouseData>>16) << 16
	default:
		if !win.ScreenToClient(hwnd, &pt) {
			return gesture.Event{}, false
		}
	}
	ev := gesture.NewMouseEvent(gesture.Window(hwnd), msg, keys, gesture.PackPoint(int(pt.X), int(pt.Y)))
	// Alt never travels in wParam.
	if asyncDown(win.VK_MENU) {
		ev.Keys |= gesture.KeyAlt
	}
	return ev, true
}

// keyEvent rebuilds a keyboard message addressed to the focused window.
// Sided modifier codes are folded onto the generic ones window messages use.
func (m *Manager) keyEvent(msg gesture.Msg, kb *kbdllHookStruct) (gesture.Event, bool) {
	vk := m.mods.observe(msg, int(kb.VkCode))
	hwnd := m.desktop.FocusedWindow()
	if hwnd == 0 {
		return gesture.Event{}, false
	}
	lParam := uintptr(1) | uintptr(kb.ScanCode&0xFF)<<16
	if kb.Flags&llkhfExtended != 0 {
		lParam |= 1 << 24
	}
	if kb.Flags&llkhfAltDown != 0 {
		lParam |= 1 << 29
	}
	if kb.Flags&llkhfUp != 0 {
		lParam |= 1<<30 | 1<<31
	}
	return gesture.Event{
		Msg:    msg,
		Window: hwnd,
		Keys:   m.mods.keys(),
		WParam: uintptr(vk),
		LParam: lParam,
	}, true
}

// buttonMask samples buttons and modifiers. The async state does not yet
// reflect the message being hooked, so its own button is applied on top.
func buttonMask(msg gesture.Msg) gesture.Keys {
	var k gesture.Keys
	if asyncDown(win.VK_LBUTTON) {
		k |= gesture.KeyLButton
	}
	if asyncDown(win.VK_RBUTTON) {
		k |= gesture.KeyRButton
	}
	if asyncDown(win.VK_MBUTTON) {
		k |= gesture.KeyMButton
	}
	if asyncDown(win.VK_SHIFT) {
		k |= gesture.KeyShift
	}
	if asyncDown(win.VK_CONTROL) {
		k |= gesture.KeyControl
	}
	switch msg {
	case gesture.MsgLButtonDown:
		k |= gesture.KeyLButton
	case gesture.MsgLButtonUp:
		k &^= gesture.KeyLButton
	case gesture.MsgRButtonDown:
		k |= gesture.KeyRButton
	case gesture.MsgRButtonUp:
		k &^= gesture.KeyRButton
	case gesture.MsgMButtonDown:
		k |= gesture.KeyMButton
	case gesture.MsgMButtonUp:
		k &^= gesture.KeyMButton
	}
	return k
}

// asyncDown reports whether vk is physically held.
func asyncDown(vk int) bool {
	ret, _, _ := procGetAsyncKeyState.Call(uintptr(vk))
	return int16(ret) < 0
}
