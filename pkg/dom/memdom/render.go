package memdom

import (
	"io"
	"strings"

	"github.com/domkit-dev/domkit/pkg/dom"
)

// Render serializes n and its subtree to HTML.
func Render(n dom.Node) string {
	var b strings.Builder
	writeNode(&b, unwrap(n), false)
	return b.String()
}

// RenderDocument serializes the whole document including the doctype.
func RenderDocument(w io.Writer, d *Document) error {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	writeNode(&b, &d.root.node, false)
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func writeNode(b *strings.Builder, n *node, raw bool) {
	switch v := n.self.(type) {
	case *Text:
		if raw {
			b.WriteString(v.data)
		} else {
			b.WriteString(escapeHTML(v.data))
		}
	case *Element:
		b.WriteByte('<')
		b.WriteString(v.tag)
		for _, a := range v.attrs {
			if a.name == "style" && v.style.Len() > 0 {
				continue
			}
			writeAttr(b, a.name, a.value)
		}
		if v.style.Len() > 0 {
			writeAttr(b, "style", v.style.CSSText())
		}
		b.WriteByte('>')

		if voidElements[v.tag] {
			return
		}

		b.WriteString(v.innerHTML)
		for _, c := range n.children {
			writeNode(b, c, rawTextElements[v.tag])
		}
		b.WriteString("</")
		b.WriteString(v.tag)
		b.WriteByte('>')
	}
}

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteByte(' ')
	b.WriteString(name)
	if value == "" {
		return
	}
	b.WriteString(`="`)
	b.WriteString(escapeAttr(value))
	b.WriteByte('"')
}

// escapeHTML escapes text for safe inclusion in HTML content.
func escapeHTML(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}

// escapeAttr escapes text for safe inclusion in HTML attribute values.
// In addition to the standard HTML entities, it also escapes
// whitespace characters that could break attribute parsing.
func escapeAttr(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '"':
			buf.WriteString("&quot;")
		case '<':
			buf.WriteString("&lt;")
		case '\n':
			buf.WriteString("&#10;")
		case '\r':
			buf.WriteString("&#13;")
		case '\t':
			buf.WriteString("&#9;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}
