package el

import (
	"fmt"
	"sort"
	"strings"
)

// Attrs maps attribute, property and event keys to values.
type Attrs map[string]any

// With returns a copy of a with key set to value.
func (a Attrs) With(key string, value any) Attrs {
	out := make(Attrs, len(a)+1)
	for k, v := range a {
		out[k] = v
	}
	out[key] = value
	return out
}

// Style maps CSS property names (camelCase or kebab-case) to values.
type Style map[string]string

// Merge returns a new Style with the properties of other written over s.
func (s Style) Merge(other Style) Style {
	out := make(Style, len(s)+len(other))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Reserved event keys.
const (
	OnClick      = "onclick"
	OnMouseEnter = "onmouseenter"
	OnMouseLeave = "onmouseleave"
	OnMouseOver  = "onmouseover"
	OnMouseOut   = "onmouseout"
	OnFocus      = "onfocus"
	OnBlur       = "onblur"
	OnChange     = "onchange"
	OnInput      = "oninput"
	OnSubmit     = "onsubmit"
	OnDblClick   = "ondblclick"
	OnKeyDown    = "onkeydown"
	OnKeyUp      = "onkeyup"
	OnKeyPress   = "onkeypress"
)

// eventTypes maps reserved attribute keys to native event types.
var eventTypes = map[string]string{
	OnClick:      "click",
	OnMouseEnter: "mouseenter",
	OnMouseLeave: "mouseleave",
	OnMouseOver:  "mouseover",
	OnMouseOut:   "mouseout",
	OnFocus:      "focus",
	OnBlur:       "blur",
	OnChange:     "change",
	OnInput:      "input",
	OnSubmit:     "submit",
	OnDblClick:   "dblclick",
	OnKeyDown:    "keydown",
	OnKeyUp:      "keyup",
	OnKeyPress:   "keypress",
}

// EventType returns the native event type for a reserved key.
func EventType(key string) (string, bool) {
	t, ok := eventTypes[key]
	return t, ok
}

// Data returns the data-* attribute key for name.
func Data(name string) string { return "data-" + name }

// Aria returns the aria-* attribute key for name.
func Aria(name string) string { return "aria-" + name }

// attrClass is the handling class of an attribute key.
type attrClass uint8

const (
	classStyle attrClass = iota
	classEvent
	classAttribute
	classProperty
)

func classify(key string) attrClass {
	switch {
	case key == "style":
		return classStyle
	case eventTypes[key] != "":
		return classEvent
	case strings.HasPrefix(key, "data-"), strings.HasPrefix(key, "aria-"):
		return classAttribute
	default:
		return classProperty
	}
}

// sortedKeys gives attribute application a stable order.
func (a Attrs) sortedKeys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// styleEntries normalizes the accepted style value shapes.
func styleEntries(v any) []styleEntry {
	switch s := v.(type) {
	case nil:
		return nil
	case Style:
		return entriesOf(s)
	case map[string]string:
		return entriesOf(s)
	case map[string]any:
		m := make(map[string]string, len(s))
		for k, val := range s {
			m[k] = fmt.Sprint(val)
		}
		return entriesOf(m)
	case string:
		var out []styleEntry
		for _, decl := range strings.Split(s, ";") {
			name, value, ok := strings.Cut(decl, ":")
			if !ok {
				continue
			}
			out = append(out, styleEntry{strings.TrimSpace(name), strings.TrimSpace(value)})
		}
		return out
	default:
		panic(fmt.Sprintf("el: style must be el.Style, map or string, got %T", v))
	}
}

type styleEntry struct {
	name  string
	value string
}

func entriesOf(m map[string]string) []styleEntry {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]styleEntry, len(keys))
	for i, k := range keys {
		out[i] = styleEntry{k, m[k]}
	}
	return out
}
