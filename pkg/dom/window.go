package dom

// Window is the top-level browsing context.
type Window interface {
	Document() Document
	Location() Location
	History() History

	// AddEventListener registers a window-level listener (popstate,
	// hashchange, load).
	AddEventListener(eventType string, listener Listener) ListenerHandle
}

// Location exposes the address bar.
type Location interface {
	// Hash returns the fragment including the leading "#", or "" if there is
	// none.
	Hash() string
}

// History is the session history.
type History interface {
	// PushState adds an entry. It never fires popstate.
	PushState(state any, url string)

	// ReplaceState replaces the current entry. It never fires popstate.
	ReplaceState(state any, url string)

	Back()
	Forward()
}
