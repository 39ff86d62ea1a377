package el

import (
	"testing"

	"github.com/domkit-dev/domkit/pkg/signal"
)

func TestTextBinding(t *testing.T) {
	b, _ := newTestBuilder()
	count := signal.New(1)
	p := b.P(nil, "Count: ", b.Text(count))

	if got := p.TextContent(); got != "Count: 1" {
		t.Fatalf("TextContent = %q", got)
	}

	count.Set(2)
	if got := p.TextContent(); got != "Count: 2" {
		t.Errorf("TextContent after Set = %q", got)
	}
}

func TestSignalChildBinds(t *testing.T) {
	b, _ := newTestBuilder()
	name := signal.New("world")
	h := b.H1(nil, "Hello, ", name)

	name.Set("gopher")
	if got := h.TextContent(); got != "Hello, gopher" {
		t.Errorf("TextContent = %q", got)
	}
}

func TestScopeReleasesBindings(t *testing.T) {
	b, _ := newTestBuilder()
	count := signal.New(0)
	scope := NewScope()

	var text string
	b.Within(scope, func() {
		node := b.Text(count)
		b.Button(Attrs{OnClick: func() {}}, node)
		count.Subscribe(func() {}) // unowned
		text = node.Data()
	})

	if text != "0" {
		t.Errorf("initial text = %q", text)
	}
	if scope.Len() != 2 {
		t.Errorf("expected binding and listener owned, got %d", scope.Len())
	}
	if count.Subscribers() != 2 {
		t.Fatalf("expected 2 subscribers, got %d", count.Subscribers())
	}

	if scope.IsDisposed() {
		t.Errorf("scope disposed before Dispose")
	}
	if n := scope.Dispose(); n != 2 {
		t.Errorf("Dispose ran %d cleanups, want 2", n)
	}
	if count.Subscribers() != 1 {
		t.Errorf("binding not released, %d subscribers left", count.Subscribers())
	}
	if !scope.IsDisposed() {
		t.Errorf("IsDisposed = false after Dispose")
	}
	if scope.Dispose() != 0 {
		t.Errorf("second Dispose should be a no-op")
	}
}

func TestWithinRestoresScope(t *testing.T) {
	b, _ := newTestBuilder()
	outer, inner := NewScope(), NewScope()

	b.Within(outer, func() {
		b.Within(inner, func() {
			if b.Scope() != inner {
				t.Errorf("inner scope not current")
			}
		})
		if b.Scope() != outer {
			t.Errorf("outer scope not restored")
		}
	})
	if b.Scope() != nil {
		t.Errorf("scope should be nil after Within")
	}
}

func TestDisposedScopeRunsCleanupImmediately(t *testing.T) {
	s := NewScope()
	s.Dispose()
	ran := false
	s.OnCleanup(func() { ran = true })
	if !ran {
		t.Errorf("cleanup on disposed scope should run immediately")
	}
}
