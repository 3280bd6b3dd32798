// Package keyfilter decides which plugin keystrokes belong to the browser.
package keyfilter

// Virtual-key codes used by the filter table.
const (
	VKReturn     = 0x0D
	VKShift      = 0x10
	VKControl    = 0x11
	VKMenu       = 0x12
	VKSpace      = 0x20
	VKEnd        = 0x23
	VKHome       = 0x24
	VKLeft       = 0x25
	VKUp         = 0x26
	VKRight      = 0x27
	VKDown       = 0x28
	VKF1         = 0x70
	VKF2         = 0x71
	VKF3         = 0x72
	VKF4         = 0x73
	VKF6         = 0x75
	VKF7         = 0x76
	VKF10        = 0x79
	VKF11        = 0x7A
	VKF12        = 0x7B
	VKF24        = 0x87
	VKProcessKey = 0xE5
)

// isFunctionKey reports whether vk is one of F1..F24.
func isFunctionKey(vk int) bool {
	return vk >= VKF1 && vk <= VKF24
}
