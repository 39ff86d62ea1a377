//go:build js && wasm

package jsdom

import (
	"fmt"
	"syscall/js"

	"github.com/domkit-dev/domkit/pkg/dom"
)

// Document wraps window.document.
type Document struct{ v js.Value }

// CreateElement creates an element. The browser accepts any valid name, so
// unknown tags are rejected by checking for HTMLUnknownElement.
func (d *Document) CreateElement(tag string) (dom.Element, error) {
	v := d.v.Call("createElement", tag)
	if v.InstanceOf(js.Global().Get("HTMLUnknownElement")) {
		return nil, fmt.Errorf("%w: %q", dom.ErrUnknownTag, tag)
	}
	return &Element{v: v}, nil
}

func (d *Document) CreateTextNode(data string) dom.Text {
	return &Text{v: d.v.Call("createTextNode", data)}
}

// ReadyState returns document.readyState: "loading", "interactive" or
// "complete".
func (d *Document) ReadyState() string { return d.v.Get("readyState").String() }

func (d *Document) Head() dom.Element { return &Element{v: d.v.Get("head")} }
func (d *Document) Body() dom.Element { return &Element{v: d.v.Get("body")} }

// Window wraps the global window object.
type Window struct{ v js.Value }

// Global returns the browser's window.
func Global() *Window {
	return &Window{v: js.Global()}
}

func (w *Window) Document() dom.Document { return &Document{v: w.v.Get("document")} }
func (w *Window) Location() dom.Location { return location{w.v.Get("location")} }
func (w *Window) History() dom.History   { return history{w.v.Get("history")} }

func (w *Window) AddEventListener(eventType string, listener dom.Listener) dom.ListenerHandle {
	return addListener(w.v, eventType, listener)
}

type location struct{ v js.Value }

func (l location) Hash() string { return l.v.Get("hash").String() }

type history struct{ v js.Value }

func (h history) PushState(state any, url string)    { h.v.Call("pushState", toJS(state), "", url) }
func (h history) ReplaceState(state any, url string) { h.v.Call("replaceState", toJS(state), "", url) }
func (h history) Back()                              { h.v.Call("back") }
func (h history) Forward()                           { h.v.Call("forward") }
