//go:build windows

// Package wininput exposes the Windows desktop primitives gesture handling needs.
package wininput

import (
	"runtime"
	"unsafe"

	"github.com/frudas24/flashgestures/internal/gesture"
	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

var (
	libuser32            = windows.NewLazySystemDLL("user32.dll")
	procGetGUIThreadInfo = libuser32.NewProc("GetGUIThreadInfo")
)

// guiThreadInfo mirrors GUITHREADINFO.
type guiThreadInfo struct {
	CbSize        uint32
	Flags         uint32
	HwndActive    win.HWND
	HwndFocus     win.HWND
	HwndCapture   win.HWND
	HwndMenuOwner win.HWND
	HwndMoveSize  win.HWND
	HwndCaret     win.HWND
	RcCaret       win.RECT
}

// WinDesktop implements Desktop using WinAPI.
type WinDesktop struct {
	pluginClasses map[string]bool
	browserClass  string
	classes       *ClassCache
}

// NewDesktop returns a Windows desktop matching the given window classes.
// Up to cacheSize class names are memoized.
func NewDesktop(pluginClasses []string, browserClass string, cacheSize int) (Desktop, error) {
	if len(pluginClasses) == 0 {
		pluginClasses = DefaultPluginClasses
	}
	if browserClass == "" {
		browserClass = DefaultBrowserClass
	}
	d := &WinDesktop{
		pluginClasses: make(map[string]bool, len(pluginClasses)),
		browserClass:  browserClass,
	}
	d.classes = NewClassCache(cacheSize, func(w gesture.Window) string {
		return className(win.HWND(w))
	})
	for _, c := range pluginClasses {
		d.pluginClasses[c] = true
	}
	return d, nil
}

// PluginWindow walks up the parent chain looking for a plugin class.
func (d *WinDesktop) PluginWindow(w gesture.Window, maxDepth int) (gesture.Window, bool) {
	hwnd := win.HWND(w)
	for level := 0; hwnd != 0 && level <= maxDepth; level++ {
		if d.pluginClasses[d.classes.Class(gesture.Window(hwnd))] {
			return gesture.Window(hwnd), true
		}
		hwnd = win.GetParent(hwnd)
	}
	return 0, false
}

// BrowserWindow returns the top-level browser window above plugin. Plugins
// sit inside a browser child window which sits inside the top-level one.
func (d *WinDesktop) BrowserWindow(plugin gesture.Window) (gesture.Window, bool) {
	hwnd := win.GetParent(win.HWND(plugin))
	if hwnd == 0 {
		return 0, false
	}
	for i := 0; i < browserSearchLevels; i++ {
		parent := win.GetParent(hwnd)
		if parent == 0 {
			break
		}
		hwnd = parent
	}
	if d.classes.Class(gesture.Window(hwnd)) != d.browserClass {
		return 0, false
	}
	return gesture.Window(hwnd), true
}

// WindowThread returns the id of the thread that created w.
func (d *WinDesktop) WindowThread(w gesture.Window) uint32 {
	return win.GetWindowThreadProcessId(win.HWND(w), nil)
}

// Forward posts ev to target, translating client coordinates from the
// event's own window into target's client area.
func (d *WinDesktop) Forward(ev gesture.Event, target gesture.Window) {
	lParam := ev.LParam
	if ev.Msg.IsMouse() && !isWheel(ev.Msg) && ev.Window != 0 && ev.Window != target {
		pt := win.POINT{X: int32(ev.X), Y: int32(ev.Y)}
		if win.ClientToScreen(win.HWND(ev.Window), &pt) && win.ScreenToClient(win.HWND(target), &pt) {
			lParam = gesture.PackPoint(int(pt.X), int(pt.Y))
		}
	}
	win.PostMessage(win.HWND(target), uint32(ev.Msg), ev.WParam, lParam)
}

// Post posts a raw message to target.
func (d *WinDesktop) Post(target gesture.Window, msg gesture.Msg, wParam, lParam uintptr) {
	win.PostMessage(win.HWND(target), uint32(msg), wParam, lParam)
}

// Focus moves keyboard focus to w. SetFocus only works for windows sharing
// the caller's input queue, so the caller attaches to w's thread for the
// call and brings w's top-level window to the foreground first.
func (d *WinDesktop) Focus(w gesture.Window) {
	hwnd := win.HWND(w)
	if root := win.GetAncestor(hwnd, win.GA_ROOT); root != 0 && root != win.GetForegroundWindow() {
		win.SetForegroundWindow(root)
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	self := win.GetCurrentThreadId()
	target := win.GetWindowThreadProcessId(hwnd, nil)
	if target != 0 && target != self && win.AttachThreadInput(int32(self), int32(target), true) {
		defer win.AttachThreadInput(int32(self), int32(target), false)
	}
	win.SetFocus(hwnd)
}

// FocusedWindow returns the focused window of the foreground thread.
func (d *WinDesktop) FocusedWindow() gesture.Window {
	info, ok := foregroundThreadInfo()
	if !ok {
		return 0
	}
	return gesture.Window(info.HwndFocus)
}

// CaptureWindow returns the window holding mouse capture on the foreground thread.
func (d *WinDesktop) CaptureWindow() gesture.Window {
	info, ok := foregroundThreadInfo()
	if !ok {
		return 0
	}
	return gesture.Window(info.HwndCapture)
}

// foregroundThreadInfo fetches GUITHREADINFO for the foreground thread.
func foregroundThreadInfo() (guiThreadInfo, bool) {
	var info guiThreadInfo
	info.CbSize = uint32(unsafe.Sizeof(info))
	ret, _, _ := procGetGUIThreadInfo.Call(0, uintptr(unsafe.Pointer(&info)))
	return info, ret != 0
}

// className returns the window class of hwnd, or "" on failure.
func className(hwnd win.HWND) string {
	buf := make([]uint16, 256)
	n, err := win.GetClassName(hwnd, &buf[0], len(buf))
	if err != nil || n <= 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:n])
}

// isWheel reports whether msg carries screen rather than client coordinates.
func isWheel(msg gesture.Msg) bool {
	return msg == gesture.MsgMouseWheel || msg == gesture.MsgMouseHWheel
}
