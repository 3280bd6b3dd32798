package keyfilter

// pluginShortcuts are ctrl chords the plugin keeps for itself.
var pluginShortcuts = map[int]bool{
	'P': true, 'C': true, 'V': true, 'X': true, 'A': true, 'Z': true, 'Y': true,
	VKHome: true, VKEnd: true,
	VKLeft: true, VKRight: true, VKUp: true, VKDown: true,
	VKReturn: true,
}

// Filter reports whether a key with the given modifiers should go to the
// browser instead of the plugin.
func Filter(vk int, alt, ctrl, shift bool) bool {
	switch {
	case ctrl && alt:
		// Ctrl+Alt is AltGr on many layouts and produces text. Only the
		// browser restart chord is taken.
		return vk == 'R'
	case ctrl:
		switch vk {
		case VKControl, VKMenu, VKShift, VKSpace, VKProcessKey:
			return false
		}
		return !pluginShortcuts[vk]
	case alt:
		return true
	}

	switch vk {
	case VKF3:
		return true
	case VKF2, VKF4, VKF7:
		return shift
	case VKF6, VKF10, VKF11, VKF12:
		return !shift
	default:
		return false
	}
}
