package el

import (
	"strings"
	"testing"

	"github.com/domkit-dev/domkit/pkg/dom"
	"github.com/domkit-dev/domkit/pkg/dom/memdom"
	"github.com/domkit-dev/domkit/pkg/signal"
)

func newTestBuilder() (*Builder, *memdom.Document) {
	doc := memdom.NewDocument()
	return New(doc), doc
}

func expectPanic(t *testing.T, contains string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q", contains)
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, contains) {
			t.Fatalf("panic %v does not contain %q", r, contains)
		}
	}()
	fn()
}

func TestCreateStyle(t *testing.T) {
	b, _ := newTestBuilder()
	el := b.Div(Attrs{"style": Style{"color": "red", "fontSize": "24px", "hover": "x"}})

	if got := el.Style().GetPropertyValue("color"); got != "red" {
		t.Errorf("color = %q, want red", got)
	}
	if got := el.Style().GetPropertyValue("font-size"); got != "24px" {
		t.Errorf("font-size = %q, want 24px", got)
	}
	if got := el.Style().GetPropertyValue("hover"); got != "" {
		t.Errorf("invalid style property should be ignored, got %q", got)
	}
}

func TestCreateStyleShapes(t *testing.T) {
	b, _ := newTestBuilder()

	tests := []struct {
		name  string
		style any
	}{
		{"Style", Style{"color": "red"}},
		{"map[string]string", map[string]string{"color": "red"}},
		{"map[string]any", map[string]any{"color": "red"}},
		{"css text", "color: red; "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := b.P(Attrs{"style": tt.style})
			if got := el.Style().GetPropertyValue("color"); got != "red" {
				t.Errorf("color = %q", got)
			}
		})
	}
}

func TestCreateEventHandler(t *testing.T) {
	b, _ := newTestBuilder()
	clicks, enters := 0, 0
	var seen dom.Event
	btn := b.Button(Attrs{
		OnClick:      func(ev dom.Event) { clicks++; seen = ev },
		OnMouseEnter: func() { enters++ },
	}).(*memdom.Element)

	btn.Dispatch("click")
	if clicks != 1 {
		t.Fatalf("expected 1 click, got %d", clicks)
	}
	if seen.Type() != "click" {
		t.Errorf("event type = %q", seen.Type())
	}

	btn.Dispatch("click")
	btn.Dispatch("mouseenter")
	if clicks != 2 || enters != 1 {
		t.Errorf("clicks=%d enters=%d", clicks, enters)
	}
	if _, ok := btn.Property(OnClick); ok {
		t.Errorf("event keys must not be assigned as properties")
	}
}

func TestCreateEventMapping(t *testing.T) {
	b, _ := newTestBuilder()
	for key, native := range eventTypes {
		t.Run(key, func(t *testing.T) {
			calls := 0
			el := b.Input(Attrs{key: func() { calls++ }}).(*memdom.Element)
			el.Dispatch(native)
			if calls != 1 {
				t.Errorf("%s -> %s: %d calls", key, native, calls)
			}
		})
	}
}

func TestCreateBadHandlerPanics(t *testing.T) {
	b, _ := newTestBuilder()
	expectPanic(t, "onclick handler", func() {
		b.Button(Attrs{OnClick: "alert(1)"})
	})
}

func TestCreateNilHandlerPanics(t *testing.T) {
	b, _ := newTestBuilder()
	var fn func()
	expectPanic(t, "onclick handler is nil", func() {
		b.Button(Attrs{OnClick: fn})
	})
	var evFn func(dom.Event)
	expectPanic(t, "oninput handler is nil", func() {
		b.Input(Attrs{OnInput: evFn})
	})
	var l dom.Listener
	expectPanic(t, "onchange handler is nil", func() {
		b.Input(Attrs{OnChange: l})
	})
}

func TestEventType(t *testing.T) {
	tests := []struct {
		key    string
		want   string
		wantOK bool
	}{
		{OnClick, "click", true},
		{OnDblClick, "dblclick", true},
		{OnKeyDown, "keydown", true},
		{"onClick", "", false},
		{"click", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := EventType(tt.key)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("EventType(%q) = %q, %v, want %q, %v", tt.key, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestAttrsWith(t *testing.T) {
	base := Attrs{"id": "a", "title": "t"}
	got := base.With("id", "b").With(Aria("label"), "Name")

	if got["id"] != "b" || got["title"] != "t" || got["aria-label"] != "Name" {
		t.Errorf("With = %v", got)
	}
	if base["id"] != "a" || len(base) != 2 {
		t.Errorf("receiver modified: %v", base)
	}

	var empty Attrs
	if got := empty.With("id", "x"); len(got) != 1 || got["id"] != "x" {
		t.Errorf("nil With = %v", got)
	}
}

func TestStyleMerge(t *testing.T) {
	base := Style{"color": "red", "margin": "0"}
	over := Style{"color": "blue", "padding": "1px"}
	got := base.Merge(over)

	want := Style{"color": "blue", "margin": "0", "padding": "1px"}
	if len(got) != len(want) {
		t.Fatalf("Merge = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("Merge[%q] = %q, want %q", k, got[k], v)
		}
	}
	if base["color"] != "red" || len(base) != 2 {
		t.Errorf("receiver modified: %v", base)
	}
	if over["margin"] != "" || len(over) != 2 {
		t.Errorf("argument modified: %v", over)
	}
}

func TestCreateDataAndAria(t *testing.T) {
	b, _ := newTestBuilder()
	el := b.Div(Attrs{"data-foo": "x", "aria-hidden": true, Data("count"): 3, Aria("label"): "Counter"})

	if v, ok := el.GetAttribute("data-foo"); !ok || v != "x" {
		t.Errorf("data-foo = %q, %v", v, ok)
	}
	if _, ok := el.Property("data-foo"); ok {
		t.Errorf("data-foo must be an attribute, not a property")
	}
	if v, _ := el.GetAttribute("aria-hidden"); v != "true" {
		t.Errorf("aria-hidden = %q", v)
	}
	if v, _ := el.GetAttribute("data-count"); v != "3" {
		t.Errorf("data-count = %q", v)
	}
	if v, _ := el.GetAttribute("aria-label"); v != "Counter" {
		t.Errorf("aria-label = %q", v)
	}
}

func TestCreatePropertyFallback(t *testing.T) {
	b, _ := newTestBuilder()
	hover := Style{"color": "black"}
	el := b.P(Attrs{"innerText": "Hello", "hover": hover, "id": "greeting"})

	if el.TextContent() != "Hello" {
		t.Errorf("TextContent = %q", el.TextContent())
	}
	if v, ok := el.Property("hover"); !ok || v.(Style)["color"] != "black" {
		t.Errorf("hover property = %v", v)
	}
	if v, _ := el.GetAttribute("id"); v != "greeting" {
		t.Errorf("id = %q", v)
	}
}

func TestCreateSignalPropertyReadOnce(t *testing.T) {
	b, _ := newTestBuilder()
	name := signal.New("ada")
	el := b.Input(Attrs{"value": name})

	name.Set("grace")
	if v, _ := el.Property("value"); v != "ada" {
		t.Errorf("value = %v, want the value at construction", v)
	}
	if name.Subscribers() != 0 {
		t.Errorf("properties must not subscribe")
	}
}

func TestCreateChildrenOrder(t *testing.T) {
	b, doc := newTestBuilder()
	pre := doc.CreateTextNode("c")
	el := b.Div(nil, "a", b.Span(nil, "b"), pre, nil, []dom.Node{b.Em(nil, "d")})

	if got := el.TextContent(); got != "abcd" {
		t.Errorf("TextContent = %q", got)
	}
	if el.ChildNodes()[2] != dom.Node(pre) {
		t.Errorf("pre-built text node must keep its identity")
	}
}

func TestCreateMovesAttachedChild(t *testing.T) {
	b, _ := newTestBuilder()
	child := b.Span(nil, "x")
	first := b.Div(nil, child)
	second := b.Div(nil, child)

	if len(first.ChildNodes()) != 0 {
		t.Errorf("child should have moved")
	}
	if second.ChildNodes()[0] != dom.Node(child) {
		t.Errorf("child should be attached to the second parent")
	}
}

func TestCreateUnknownTagPanics(t *testing.T) {
	b, _ := newTestBuilder()
	expectPanic(t, "unknown tag", func() {
		b.Create("marquee2", nil)
	})
}

func TestCreateUnsupportedChildPanics(t *testing.T) {
	b, _ := newTestBuilder()
	expectPanic(t, "unsupported child", func() {
		b.Div(nil, 42)
	})
}

func TestRenderedOutput(t *testing.T) {
	b, _ := newTestBuilder()
	el := b.Div(Attrs{"style": Style{"display": "flex"}, "data-page": "landing"},
		b.P(Attrs{"innerText": "Hello & welcome"}),
		b.Button(Attrs{OnClick: func() {}}, "Click Me"),
	)

	want := `<div data-page="landing" style="display: flex;"><p>Hello &amp; welcome</p><button>Click Me</button></div>`
	if got := memdom.Render(el); got != want {
		t.Errorf("Render =\n%s\nwant\n%s", got, want)
	}
}
