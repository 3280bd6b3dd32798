package gesture

// Registry owns one handler per enabled kind, in priority order. A registry
// belongs to a single thread and is never shared.
type Registry struct {
	handlers []*Handler
}

// NewRegistry builds handlers for kinds, reordered into Priority order with
// duplicates dropped. No kinds means every kind in Priority.
func NewRegistry(kinds ...Kind) *Registry {
	if len(kinds) == 0 {
		kinds = Priority
	}
	want := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		want[k] = true
	}
	r := &Registry{}
	for _, k := range Priority {
		if want[k] {
			r.handlers = append(r.handlers, NewHandler(k))
		}
	}
	return r
}

// Handlers returns the handlers in priority order.
func (r *Registry) Handlers() []*Handler {
	return r.handlers
}

// Kinds returns the enabled kinds in priority order.
func (r *Registry) Kinds() []Kind {
	out := make([]Kind, 0, len(r.handlers))
	for _, h := range r.handlers {
		out = append(out, h.Kind())
	}
	return out
}

// Handler returns the handler for kind, or nil when it is disabled.
func (r *Registry) Handler(kind Kind) *Handler {
	for _, h := range r.handlers {
		if h.Kind() == kind {
			return h
		}
	}
	return nil
}

// Triggered returns the first triggered handler, or nil.
func (r *Registry) Triggered() *Handler {
	for _, h := range r.handlers {
		if h.State() == StateTriggered {
			return h
		}
	}
	return nil
}

// Idle reports whether every handler is back to StateNone.
func (r *Registry) Idle() bool {
	for _, h := range r.handlers {
		if h.State() != StateNone {
			return false
		}
	}
	return true
}

// ResetAll resets every handler.
func (r *Registry) ResetAll() {
	for _, h := range r.handlers {
		h.Reset()
	}
}
