package el

import (
	"fmt"
	"sync"

	"github.com/domkit-dev/domkit/pkg/dom"
	"github.com/domkit-dev/domkit/pkg/signal"
)

// Builder creates elements in a document.
type Builder struct {
	doc dom.Document

	mu    sync.Mutex
	scope *Scope
}

// New returns a builder for doc.
func New(doc dom.Document) *Builder {
	return &Builder{doc: doc}
}

// Document returns the document elements are created in.
func (b *Builder) Document() dom.Document {
	return b.doc
}

// Scope returns the current scope, or nil when bindings are unowned.
func (b *Builder) Scope() *Scope {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.scope
}

// Within runs fn with s as the current scope and restores the previous
// scope afterwards, even if fn panics.
func (b *Builder) Within(s *Scope, fn func()) {
	b.mu.Lock()
	prev := b.scope
	b.scope = s
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		b.scope = prev
		b.mu.Unlock()
	}()

	fn()
}

func (b *Builder) own(cleanup func()) {
	if s := b.Scope(); s != nil {
		s.OnCleanup(cleanup)
	}
}

// Create builds a <tag> element, applies attrs and appends children.
//
// Children may be dom.Node values (appended as-is, so an attached node is
// moved), strings and fmt.Stringers (converted to text nodes), signals
// (bound with Text), []dom.Node or nil. Unknown tags, malformed handler
// values and unsupported children are programming errors and panic.
func (b *Builder) Create(tag string, attrs Attrs, children ...any) dom.Element {
	el, err := b.doc.CreateElement(tag)
	if err != nil {
		panic(fmt.Sprintf("el: %v", err))
	}

	for _, key := range attrs.sortedKeys() {
		value := attrs[key]
		switch classify(key) {
		case classStyle:
			applyStyle(el, value)
		case classEvent:
			b.listen(el, key, value)
		case classAttribute:
			el.SetAttribute(key, fmt.Sprint(value))
		case classProperty:
			// Unchecked: any name is accepted for any element kind.
			if src, ok := value.(signal.Bindable); ok {
				value = src.String()
			}
			el.SetProperty(key, value)
		}
	}

	for _, child := range children {
		b.appendChild(el, child)
	}
	return el
}

func applyStyle(el dom.Stylable, value any) {
	style := el.Style()
	for _, e := range styleEntries(value) {
		style.SetProperty(e.name, e.value)
	}
}

func (b *Builder) listen(el dom.Eventable, key string, value any) {
	var fn dom.Listener
	switch h := value.(type) {
	case func(dom.Event):
		fn = h
	case dom.Listener:
		fn = h
	case func():
		if h != nil {
			fn = func(dom.Event) { h() }
		}
	default:
		panic(fmt.Sprintf("el: %s handler must be func(dom.Event) or func(), got %T", key, value))
	}
	if fn == nil {
		panic(fmt.Sprintf("el: %s handler is nil", key))
	}
	typ, _ := EventType(key)
	handle := el.AddEventListener(typ, fn)
	b.own(handle.Remove)
}

func (b *Builder) appendChild(el dom.Element, child any) {
	switch c := child.(type) {
	case nil:
	case dom.Node:
		el.AppendChild(c)
	case []dom.Node:
		for _, n := range c {
			if n != nil {
				el.AppendChild(n)
			}
		}
	case string:
		el.AppendChild(b.doc.CreateTextNode(c))
	case signal.Bindable:
		el.AppendChild(b.Text(c))
	case fmt.Stringer:
		el.AppendChild(b.doc.CreateTextNode(c.String()))
	default:
		panic(fmt.Sprintf("el: unsupported child %T", child))
	}
}

// Text returns a text node that tracks src. The subscription belongs to the
// current scope; with no scope it lives as long as src does.
func (b *Builder) Text(src signal.Bindable) dom.Text {
	node := b.doc.CreateTextNode(src.String())
	stop := src.Subscribe(func() {
		node.SetData(src.String())
	})
	b.own(func() { stop() })
	return node
}
