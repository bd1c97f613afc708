package scope

import "sync"

// Hook is a function attached to a context that runs around the tests inside it.
type Hook func(t *T)

// HookKind names one of the four hooks a context can carry.
type HookKind string

const (
	SetupOnceHook    HookKind = "setup_once"
	SetupHook        HookKind = "setup"
	TeardownHook     HookKind = "teardown"
	TeardownOnceHook HookKind = "teardown_once"
)

// OnceHook wraps a Hook so that it runs at most once, however many tests invoke it.
//
// The hook is marked as fired before it runs, so a hook that fails is not retried by the
// next test in the same context.
type OnceHook struct {
	fn    Hook
	fired bool
	lock  sync.Mutex
}

// NewOnceHook returns nil for a nil Hook; the methods of a nil *OnceHook are no-ops.
func NewOnceHook(fn Hook) *OnceHook {
	if fn == nil {
		return nil
	}
	return &OnceHook{fn: fn}
}

// Invoke runs the hook if it has not run before, and reports whether it did.
func (h *OnceHook) Invoke(t *T) bool {
	if h == nil {
		return false
	}
	h.lock.Lock()
	if h.fired {
		h.lock.Unlock()
		return false
	}
	h.fired = true
	h.lock.Unlock()

	h.fn(t)
	return true
}

func (h *OnceHook) Fired() bool {
	if h == nil {
		return false
	}
	h.lock.Lock()
	defer h.lock.Unlock()
	return h.fired
}

// pending returns the hook as a plain Hook, or nil if there is nothing left to run.
func (h *OnceHook) pending() Hook {
	if h == nil || h.Fired() {
		return nil
	}
	return func(t *T) { h.Invoke(t) }
}
