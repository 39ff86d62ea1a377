package memdom

import (
	"fmt"
	"strings"

	"github.com/domkit-dev/domkit/pkg/dom"
)

// Document is an in-memory document with <html>, <head> and <body>.
type Document struct {
	root *Element
	head *Element
	body *Element
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	d := &Document{}
	d.root = newElement(d, "html")
	d.head = newElement(d, "head")
	d.body = newElement(d, "body")
	d.root.AppendChild(d.head)
	d.root.AppendChild(d.body)
	return d
}

// CreateElement returns a new detached element.
func (d *Document) CreateElement(tag string) (dom.Element, error) {
	tag = strings.ToLower(tag)
	if !knownTags[tag] {
		return nil, fmt.Errorf("%w: %q", dom.ErrUnknownTag, tag)
	}
	return newElement(d, tag), nil
}

// CreateTextNode returns a new detached text node.
func (d *Document) CreateTextNode(data string) dom.Text {
	return newText(data)
}

// DocumentElement returns the <html> element.
func (d *Document) DocumentElement() *Element { return d.root }

// Head returns the <head> element.
func (d *Document) Head() dom.Element { return d.head }

// Body returns the <body> element.
func (d *Document) Body() dom.Element { return d.body }
