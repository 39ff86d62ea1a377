package memdom

import (
	"strings"
	"unicode"
)

// knownProperties is the CSS property set the in-memory style object
// accepts. Like the platform style object, anything else is ignored.
var knownProperties = map[string]bool{}

func init() {
	for _, p := range []string{
		"align-content", "align-items", "align-self", "animation", "appearance",
		"background", "background-color", "background-image", "background-position",
		"background-repeat", "background-size", "border", "border-bottom", "border-color",
		"border-left", "border-radius", "border-right", "border-style", "border-top",
		"border-width", "bottom", "box-shadow", "box-sizing", "color", "column-gap",
		"cursor", "display", "flex", "flex-basis", "flex-direction", "flex-grow",
		"flex-shrink", "flex-wrap", "float", "font", "font-family", "font-size",
		"font-style", "font-weight", "gap", "grid", "grid-area", "grid-column",
		"grid-row", "grid-template-columns", "grid-template-rows", "height",
		"justify-content", "justify-items", "left", "letter-spacing", "line-height",
		"list-style", "margin", "margin-bottom", "margin-left", "margin-right",
		"margin-top", "max-height", "max-width", "min-height", "min-width", "opacity",
		"outline", "overflow", "overflow-x", "overflow-y", "padding", "padding-bottom",
		"padding-left", "padding-right", "padding-top", "pointer-events", "position",
		"right", "row-gap", "text-align", "text-decoration", "text-overflow",
		"text-transform", "top", "transform", "transition", "user-select",
		"vertical-align", "visibility", "white-space", "width", "word-break", "z-index",
	} {
		knownProperties[p] = true
	}
}

type declaration struct {
	name  string
	value string
}

// Style is an in-memory inline style declaration.
type Style struct {
	decls []declaration
}

// SetProperty sets a style property. An empty value removes it.
func (s *Style) SetProperty(name, value string) {
	name = cssName(name)
	if !validProperty(name) || strings.ContainsAny(value, ";{}") {
		return
	}

	for i, d := range s.decls {
		if d.name == name {
			if value == "" {
				s.decls = append(s.decls[:i], s.decls[i+1:]...)
			} else {
				s.decls[i].value = value
			}
			return
		}
	}
	if value != "" {
		s.decls = append(s.decls, declaration{name: name, value: value})
	}
}

// GetPropertyValue returns the value of a style property, or "".
func (s *Style) GetPropertyValue(name string) string {
	name = cssName(name)
	for _, d := range s.decls {
		if d.name == name {
			return d.value
		}
	}
	return ""
}

// Len returns the number of declarations.
func (s *Style) Len() int {
	return len(s.decls)
}

// CSSText serializes the declarations in insertion order.
func (s *Style) CSSText() string {
	parts := make([]string, len(s.decls))
	for i, d := range s.decls {
		parts[i] = d.name + ": " + d.value + ";"
	}
	return strings.Join(parts, " ")
}

func validProperty(name string) bool {
	if strings.HasPrefix(name, "--") {
		return len(name) > 2
	}
	return knownProperties[name]
}

// cssName converts camelCase property names to kebab-case.
func cssName(name string) string {
	if strings.HasPrefix(name, "--") {
		return name
	}
	var b strings.Builder
	for _, r := range name {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
