//go:build js && wasm

package jsdom

import (
	"syscall/js"

	"github.com/domkit-dev/domkit/pkg/dom"
)

// Event wraps a browser event.
type Event struct{ v js.Value }

func (e *Event) Type() string { return e.v.Get("type").String() }

func (e *Event) Target() dom.Element {
	if el, ok := wrap(e.v.Get("target")).(*Element); ok {
		return el
	}
	return nil
}

func (e *Event) PreventDefault()        { e.v.Call("preventDefault") }
func (e *Event) DefaultPrevented() bool { return e.v.Get("defaultPrevented").Bool() }

// Value returns the underlying JS event.
func (e *Event) Value() js.Value { return e.v }

type handle struct {
	target    js.Value
	eventType string
	fn        js.Func
	removed   bool
}

func (h *handle) Remove() {
	if h.removed {
		return
	}
	h.removed = true
	h.target.Call("removeEventListener", h.eventType, h.fn)
	h.fn.Release()
}

func addListener(target js.Value, eventType string, listener dom.Listener) dom.ListenerHandle {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			listener(&Event{v: args[0]})
		}
		return nil
	})
	target.Call("addEventListener", eventType, fn)
	return &handle{target: target, eventType: eventType, fn: fn}
}
