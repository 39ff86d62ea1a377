package memdom

import (
	"fmt"

	"github.com/domkit-dev/domkit/pkg/dom"
)

// reflectedAttrs maps element properties to the attribute they reflect.
var reflectedAttrs = map[string]string{
	"id":          "id",
	"className":   "class",
	"htmlFor":     "for",
	"href":        "href",
	"src":         "src",
	"type":        "type",
	"name":        "name",
	"value":       "value",
	"placeholder": "placeholder",
	"title":       "title",
	"alt":         "alt",
	"lang":        "lang",
	"dir":         "dir",
	"rel":         "rel",
	"target":      "target",
	"action":      "action",
	"method":      "method",
	"tabIndex":    "tabindex",
}

// booleanAttrs are reflected as present/absent attributes.
var booleanAttrs = map[string]string{
	"disabled":  "disabled",
	"checked":   "checked",
	"hidden":    "hidden",
	"required":  "required",
	"readOnly":  "readonly",
	"multiple":  "multiple",
	"selected":  "selected",
	"autofocus": "autofocus",
}

type attribute struct {
	name  string
	value string
}

// Element is an in-memory element.
type Element struct {
	node
	doc       *Document
	tag       string
	attrs     []attribute
	props     map[string]any
	style     Style
	innerHTML string
	listeners listenerSet
}

func newElement(doc *Document, tag string) *Element {
	e := &Element{
		doc:   doc,
		tag:   tag,
		props: make(map[string]any),
	}
	e.self = e
	return e
}

// TagName returns the lower-case tag name.
func (e *Element) TagName() string { return e.tag }

// Style returns the live inline style object.
func (e *Element) Style() dom.Style { return &e.style }

// SetAttribute sets a string attribute.
func (e *Element) SetAttribute(name, value string) {
	for i, a := range e.attrs {
		if a.name == name {
			e.attrs[i].value = value
			return
		}
	}
	e.attrs = append(e.attrs, attribute{name: name, value: value})
}

// GetAttribute returns an attribute value.
func (e *Element) GetAttribute(name string) (string, bool) {
	if name == "style" && e.style.Len() > 0 {
		return e.style.CSSText(), true
	}
	for _, a := range e.attrs {
		if a.name == name {
			return a.value, true
		}
	}
	return "", false
}

// RemoveAttribute removes an attribute if present.
func (e *Element) RemoveAttribute(name string) {
	for i, a := range e.attrs {
		if a.name == name {
			e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
			return
		}
	}
}

// Attributes returns the attribute names in insertion order.
func (e *Element) Attributes() []string {
	names := make([]string, len(e.attrs))
	for i, a := range e.attrs {
		names[i] = a.name
	}
	return names
}

// SetProperty assigns a property. Text properties replace the children,
// well-known properties reflect to their attribute, and everything else is
// stored as-is.
func (e *Element) SetProperty(name string, value any) {
	switch name {
	case "innerText", "textContent":
		e.ReplaceChildren(e.doc.CreateTextNode(fmt.Sprint(value)))
		return
	case "innerHTML":
		e.ReplaceChildren()
		e.innerHTML = fmt.Sprint(value)
		return
	}

	e.props[name] = value
	if attr, ok := reflectedAttrs[name]; ok {
		e.SetAttribute(attr, fmt.Sprint(value))
	}
	if attr, ok := booleanAttrs[name]; ok {
		if on, _ := value.(bool); on {
			e.SetAttribute(attr, "")
		} else {
			e.RemoveAttribute(attr)
		}
	}
}

// Property returns a property value.
func (e *Element) Property(name string) (any, bool) {
	switch name {
	case "innerText", "textContent":
		return e.TextContent(), true
	case "innerHTML":
		return e.innerHTML, true
	}
	v, ok := e.props[name]
	return v, ok
}

// ReplaceChildren removes every child and appends nodes in order.
func (e *Element) ReplaceChildren(nodes ...dom.Node) {
	e.clear()
	e.innerHTML = ""
	for _, n := range nodes {
		e.AppendChild(n)
	}
}

// AppendChild appends child. Void elements reject children.
func (e *Element) AppendChild(child dom.Node) {
	if voidElements[e.tag] {
		panic(fmt.Sprintf("memdom: <%s> cannot have children", e.tag))
	}
	e.node.AppendChild(child)
}

// AddEventListener registers listener for eventType.
func (e *Element) AddEventListener(eventType string, listener dom.Listener) dom.ListenerHandle {
	return e.listeners.add(eventType, listener)
}

// ListenerCount returns the number of live listeners for eventType.
func (e *Element) ListenerCount(eventType string) int {
	return e.listeners.count(eventType)
}

// Dispatch fires a synthetic event of the given type at e. It returns false
// if a listener prevented the default.
func (e *Element) Dispatch(eventType string) bool {
	ev := &Event{typ: eventType, target: e}
	e.listeners.dispatch(ev)
	return !ev.prevented
}
