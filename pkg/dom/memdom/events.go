package memdom

import "github.com/domkit-dev/domkit/pkg/dom"

// Event is a synthetic event.
type Event struct {
	typ       string
	target    *Element
	prevented bool
}

// Type returns the event type.
func (e *Event) Type() string { return e.typ }

// Target returns the element the event was dispatched to.
func (e *Event) Target() dom.Element {
	if e.target == nil {
		return nil
	}
	return e.target
}

// PreventDefault cancels the default handling.
func (e *Event) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool { return e.prevented }

type registration struct {
	set       *listenerSet
	eventType string
	fn        dom.Listener
	removed   bool
}

// Remove unregisters the listener.
func (r *registration) Remove() {
	if r.removed {
		return
	}
	r.removed = true
	list := r.set.byType[r.eventType]
	for i, existing := range list {
		if existing == r {
			r.set.byType[r.eventType] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// listenerSet keeps listeners per event type in registration order.
type listenerSet struct {
	byType map[string][]*registration
}

func (s *listenerSet) add(eventType string, fn dom.Listener) dom.ListenerHandle {
	if s.byType == nil {
		s.byType = make(map[string][]*registration)
	}
	r := &registration{set: s, eventType: eventType, fn: fn}
	s.byType[eventType] = append(s.byType[eventType], r)
	return r
}

func (s *listenerSet) count(eventType string) int {
	return len(s.byType[eventType])
}

// dispatch calls the listeners registered when dispatch starts.
func (s *listenerSet) dispatch(ev dom.Event) {
	list := append([]*registration(nil), s.byType[ev.Type()]...)
	for _, r := range list {
		if !r.removed {
			r.fn(ev)
		}
	}
}
