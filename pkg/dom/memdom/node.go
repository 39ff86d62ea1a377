package memdom

import (
	"fmt"
	"strings"

	"github.com/domkit-dev/domkit/pkg/dom"
)

// node is the tree part shared by elements and text nodes.
// A document is not safe for concurrent use.
type node struct {
	self     dom.Node
	parent   *node
	children []*node
}

// unwrap returns the tree part of a memdom node.
func unwrap(n dom.Node) *node {
	switch v := n.(type) {
	case *Element:
		return &v.node
	case *Text:
		return &v.node
	default:
		panic(fmt.Sprintf("memdom: foreign node %T", n))
	}
}

// ParentNode returns the parent, or nil if the node is detached.
func (n *node) ParentNode() dom.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent.self
}

// ChildNodes returns the children in document order.
func (n *node) ChildNodes() []dom.Node {
	out := make([]dom.Node, len(n.children))
	for i, c := range n.children {
		out[i] = c.self
	}
	return out
}

// AppendChild appends child, detaching it from its current parent first.
func (n *node) AppendChild(child dom.Node) {
	c := unwrap(child)
	for p := n; p != nil; p = p.parent {
		if p == c {
			panic("memdom: cannot append a node to its own subtree")
		}
	}
	if c.parent != nil {
		c.parent.remove(c)
	}
	c.parent = n
	n.children = append(n.children, c)
}

// RemoveChild detaches child if it is a child of n.
func (n *node) RemoveChild(child dom.Node) {
	c := unwrap(child)
	if c.parent == n {
		n.remove(c)
	}
}

func (n *node) remove(c *node) {
	for i, existing := range n.children {
		if existing == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			c.parent = nil
			return
		}
	}
}

func (n *node) clear() {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
}

// TextContent returns the concatenated text of the subtree.
func (n *node) TextContent() string {
	var b strings.Builder
	n.writeText(&b)
	return b.String()
}

func (n *node) writeText(b *strings.Builder) {
	if t, ok := n.self.(*Text); ok {
		b.WriteString(t.data)
		return
	}
	for _, c := range n.children {
		c.writeText(b)
	}
}

// Text is an in-memory text node.
type Text struct {
	node
	data string
}

func newText(data string) *Text {
	t := &Text{data: data}
	t.self = t
	return t
}

// Data returns the node's text.
func (t *Text) Data() string { return t.data }

// SetData replaces the node's text.
func (t *Text) SetData(data string) { t.data = data }

// AppendChild panics: text nodes have no children.
func (t *Text) AppendChild(dom.Node) {
	panic("memdom: text nodes cannot have children")
}
