package dom

import "errors"

// ErrUnknownTag is returned by Document.CreateElement for tag names the host
// does not recognize.
var ErrUnknownTag = errors.New("dom: unknown tag")

// Node is any member of the document tree.
type Node interface {
	// ParentNode returns the parent, or nil if the node is detached.
	ParentNode() Node

	// ChildNodes returns the children in document order.
	ChildNodes() []Node

	// AppendChild appends child. An already attached child is moved, not
	// cloned.
	AppendChild(child Node)

	// RemoveChild detaches child if it is a child of this node.
	RemoveChild(child Node)

	// TextContent returns the concatenated text of the subtree.
	TextContent() string
}

// Text is a text node.
type Text interface {
	Node

	// Data returns the node's text.
	Data() string

	// SetData replaces the node's text.
	SetData(data string)
}

// Style is an element's live inline style declaration.
type Style interface {
	// SetProperty sets a style property. Names may be camelCase
	// ("fontSize") or kebab-case ("font-size"). Invalid names or values are
	// ignored, as the platform style object does.
	SetProperty(name, value string)

	// GetPropertyValue returns the value of a style property, or "".
	GetPropertyValue(name string) string
}

// Stylable is an element with an inline style object.
type Stylable interface {
	Style() Style
}

// Eventable is an element that accepts event listeners.
type Eventable interface {
	AddEventListener(eventType string, listener Listener) ListenerHandle
}

// Dataable is an element with string attributes (data-*, aria-*, ...).
type Dataable interface {
	SetAttribute(name, value string)
	GetAttribute(name string) (string, bool)
}

// PropertySetter is the unchecked escape hatch: any property name is
// accepted, whether or not it means anything for the element kind.
type PropertySetter interface {
	SetProperty(name string, value any)
	Property(name string) (any, bool)
}

// Element is a document element.
type Element interface {
	Node
	Stylable
	Eventable
	Dataable
	PropertySetter

	// TagName returns the lower-case tag name.
	TagName() string

	// ReplaceChildren removes every child and appends nodes in order.
	ReplaceChildren(nodes ...Node)
}

// Document creates nodes and exposes the head and body elements.
type Document interface {
	// CreateElement returns a new detached element. Unknown tags fail with
	// an error wrapping ErrUnknownTag.
	CreateElement(tag string) (Element, error)

	// CreateTextNode returns a new detached text node.
	CreateTextNode(data string) Text

	Head() Element
	Body() Element
}
