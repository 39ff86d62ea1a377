//go:build js && wasm

package jsdom

import (
	"fmt"
	"strings"
	"syscall/js"

	"github.com/domkit-dev/domkit/pkg/dom"
)

// wrap returns the Go wrapper for a JS node value.
func wrap(v js.Value) dom.Node {
	if !v.Truthy() {
		return nil
	}
	switch nt := v.Get("nodeType"); {
	case nt.Type() != js.TypeNumber:
		return nil
	case nt.Int() == 3:
		return &Text{v: v}
	default:
		return &Element{v: v}
	}
}

// value returns the JS value behind a jsdom node.
func value(n dom.Node) js.Value {
	switch v := n.(type) {
	case *Element:
		return v.v
	case *Text:
		return v.v
	default:
		panic(fmt.Sprintf("jsdom: foreign node %T", n))
	}
}

type nodeOps struct{ v js.Value }

func (n nodeOps) ParentNode() dom.Node { return wrap(n.v.Get("parentNode")) }

func (n nodeOps) ChildNodes() []dom.Node {
	list := n.v.Get("childNodes")
	out := make([]dom.Node, list.Length())
	for i := range out {
		out[i] = wrap(list.Index(i))
	}
	return out
}

func (n nodeOps) AppendChild(child dom.Node) { n.v.Call("appendChild", value(child)) }

func (n nodeOps) RemoveChild(child dom.Node) {
	c := value(child)
	if c.Get("parentNode").Equal(n.v) {
		n.v.Call("removeChild", c)
	}
}

func (n nodeOps) TextContent() string { return n.v.Get("textContent").String() }

// Text wraps a browser text node.
type Text struct{ v js.Value }

func (t *Text) ParentNode() dom.Node   { return nodeOps{t.v}.ParentNode() }
func (t *Text) ChildNodes() []dom.Node { return nil }
func (t *Text) AppendChild(dom.Node)   { panic("jsdom: text nodes cannot have children") }
func (t *Text) RemoveChild(dom.Node)   {}
func (t *Text) TextContent() string    { return t.v.Get("data").String() }
func (t *Text) Data() string           { return t.v.Get("data").String() }
func (t *Text) SetData(data string)    { t.v.Set("data", data) }

// Element wraps a browser element.
type Element struct{ v js.Value }

func (e *Element) ParentNode() dom.Node       { return nodeOps{e.v}.ParentNode() }
func (e *Element) ChildNodes() []dom.Node     { return nodeOps{e.v}.ChildNodes() }
func (e *Element) AppendChild(child dom.Node) { nodeOps{e.v}.AppendChild(child) }
func (e *Element) RemoveChild(child dom.Node) { nodeOps{e.v}.RemoveChild(child) }
func (e *Element) TextContent() string        { return nodeOps{e.v}.TextContent() }

// TagName returns the lower-case tag name.
func (e *Element) TagName() string { return strings.ToLower(e.v.Get("tagName").String()) }

// Style returns the live CSSStyleDeclaration.
func (e *Element) Style() dom.Style { return style{e.v.Get("style")} }

// SetAttribute sets a string attribute.
func (e *Element) SetAttribute(name, value string) { e.v.Call("setAttribute", name, value) }

// GetAttribute returns an attribute value.
func (e *Element) GetAttribute(name string) (string, bool) {
	v := e.v.Call("getAttribute", name)
	if v.IsNull() {
		return "", false
	}
	return v.String(), true
}

// SetProperty assigns a JS property. Go funcs are wrapped with js.FuncOf
// and never released; use AddEventListener for handlers.
func (e *Element) SetProperty(name string, value any) {
	e.v.Set(name, toJS(value))
}

// Property reads a JS property.
func (e *Element) Property(name string) (any, bool) {
	v := e.v.Get(name)
	if v.IsUndefined() {
		return nil, false
	}
	switch v.Type() {
	case js.TypeString:
		return v.String(), true
	case js.TypeNumber:
		return v.Float(), true
	case js.TypeBoolean:
		return v.Bool(), true
	default:
		return v, true
	}
}

// ReplaceChildren removes every child and appends nodes in order.
func (e *Element) ReplaceChildren(nodes ...dom.Node) {
	args := make([]any, len(nodes))
	for i, n := range nodes {
		args[i] = value(n)
	}
	e.v.Call("replaceChildren", args...)
}

// AddEventListener registers listener; the returned handle releases the
// js.Func when removed.
func (e *Element) AddEventListener(eventType string, listener dom.Listener) dom.ListenerHandle {
	return addListener(e.v, eventType, listener)
}

func toJS(value any) any {
	switch v := value.(type) {
	case nil, bool, string, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64, js.Value:
		return v
	case func():
		return js.FuncOf(func(js.Value, []js.Value) any { v(); return nil })
	case fmt.Stringer:
		return v.String()
	case map[string]string:
		obj := js.Global().Get("Object").New()
		for k, s := range v {
			obj.Set(k, s)
		}
		return obj
	default:
		return fmt.Sprint(v)
	}
}

type style struct{ v js.Value }

func (s style) SetProperty(name, value string) {
	if strings.HasPrefix(name, "--") || strings.Contains(name, "-") {
		s.v.Call("setProperty", name, value)
		return
	}
	s.v.Set(name, value)
}

func (s style) GetPropertyValue(name string) string {
	if strings.HasPrefix(name, "--") || strings.Contains(name, "-") {
		return s.v.Call("getPropertyValue", name).String()
	}
	v := s.v.Get(name)
	if v.IsUndefined() {
		return ""
	}
	return v.String()
}
