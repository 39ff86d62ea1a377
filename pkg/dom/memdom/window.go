package memdom

import (
	"strings"

	"github.com/domkit-dev/domkit/pkg/dom"
)

type historyEntry struct {
	state any
	hash  string
}

// Window is an in-memory browsing context with a session history.
type Window struct {
	doc       *Document
	entries   []historyEntry
	index     int
	listeners listenerSet
	reloads   int
}

// NewWindow creates a window showing a fresh document at the given
// fragment ("" or "#/path").
func NewWindow(hash string) *Window {
	return &Window{
		doc:     NewDocument(),
		entries: []historyEntry{{hash: normalizeHash(hash)}},
	}
}

// Document returns the window's document.
func (w *Window) Document() dom.Document { return w.doc }

// Doc returns the concrete document.
func (w *Window) Doc() *Document { return w.doc }

// Location returns the window's location.
func (w *Window) Location() dom.Location { return location{w} }

// History returns the window's session history.
func (w *Window) History() dom.History { return history{w} }

// AddEventListener registers a window-level listener.
func (w *Window) AddEventListener(eventType string, listener dom.Listener) dom.ListenerHandle {
	return w.listeners.add(eventType, listener)
}

// ListenerCount returns the number of live window listeners for eventType.
func (w *Window) ListenerCount(eventType string) int {
	return w.listeners.count(eventType)
}

// Hash returns the current fragment.
func (w *Window) Hash() string {
	return w.entries[w.index].hash
}

// State returns the state object of the current history entry.
func (w *Window) State() any {
	return w.entries[w.index].state
}

// HistoryLength returns the number of history entries.
func (w *Window) HistoryLength() int {
	return len(w.entries)
}

// Reloads returns how many times a fragment change fell through to the
// default handling, which the platform treats as a document reload.
func (w *Window) Reloads() int {
	return w.reloads
}

// SetHash simulates the user editing the address fragment: a new history
// entry is added, then popstate and hashchange fire in that order. Setting
// the fragment already shown does nothing.
func (w *Window) SetHash(hash string) {
	hash = normalizeHash(hash)
	if hash == w.Hash() {
		return
	}
	w.push(nil, hash)
	w.fire(dom.EventPopState)
	w.fireHashChange()
}

// Back moves one entry back, firing popstate (and hashchange when the
// fragment differs). It does nothing at the first entry.
func (w *Window) Back() {
	if w.index == 0 {
		return
	}
	w.traverse(w.index - 1)
}

// Forward moves one entry forward. It does nothing at the last entry.
func (w *Window) Forward() {
	if w.index == len(w.entries)-1 {
		return
	}
	w.traverse(w.index + 1)
}

func (w *Window) traverse(to int) {
	old := w.Hash()
	w.index = to
	w.fire(dom.EventPopState)
	if w.Hash() != old {
		w.fireHashChange()
	}
}

func (w *Window) push(state any, hash string) {
	w.entries = append(w.entries[:w.index+1], historyEntry{state: state, hash: hash})
	w.index++
}

func (w *Window) fire(eventType string) bool {
	ev := &Event{typ: eventType}
	w.listeners.dispatch(ev)
	return !ev.prevented
}

func (w *Window) fireHashChange() {
	if w.fire(dom.EventHashChange) {
		w.reloads++
	}
}

type location struct{ w *Window }

func (l location) Hash() string { return l.w.Hash() }

type history struct{ w *Window }

func (h history) PushState(state any, url string) {
	h.w.push(state, hashOf(url, h.w.Hash()))
}

func (h history) ReplaceState(state any, url string) {
	h.w.entries[h.w.index] = historyEntry{state: state, hash: hashOf(url, h.w.Hash())}
}

func (h history) Back()    { h.w.Back() }
func (h history) Forward() { h.w.Forward() }

// hashOf extracts the fragment of a pushState URL. A URL without a fragment
// clears it; an empty URL keeps the current one.
func hashOf(url, current string) string {
	if url == "" {
		return current
	}
	if i := strings.IndexByte(url, '#'); i >= 0 {
		return normalizeHash(url[i:])
	}
	return ""
}

func normalizeHash(hash string) string {
	if hash == "" || hash == "#" {
		return ""
	}
	if !strings.HasPrefix(hash, "#") {
		return "#" + hash
	}
	return hash
}
