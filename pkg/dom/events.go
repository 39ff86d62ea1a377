package dom

// Event is a dispatched DOM event.
type Event interface {
	// Type returns the event type, e.g. "click".
	Type() string

	// Target returns the element the event was dispatched to, or nil for
	// window-level events.
	Target() Element

	// PreventDefault cancels the host's default handling.
	PreventDefault()

	// DefaultPrevented reports whether PreventDefault was called.
	DefaultPrevented() bool
}

// Listener handles a dispatched event.
type Listener func(Event)

// ListenerHandle is a single listener registration.
type ListenerHandle interface {
	// Remove unregisters the listener and releases any host resources held
	// for it. Calling Remove more than once is harmless.
	Remove()
}

// Native event types used by the router.
const (
	EventPopState   = "popstate"
	EventHashChange = "hashchange"
	EventLoad       = "load"
)
