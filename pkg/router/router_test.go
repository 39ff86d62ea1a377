package router

import (
	"io"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/domkit-dev/domkit/pkg/dom"
	"github.com/domkit-dev/domkit/pkg/dom/memdom"
	"github.com/domkit-dev/domkit/pkg/el"
	"github.com/domkit-dev/domkit/pkg/signal"
)

type testApp struct {
	win      *memdom.Window
	b        *el.Builder
	router   *Router
	name     *signal.Signal[string]
	rendered []string
}

// newTestApp wires a landing page, a login page bound to a signal, and a
// page that redirects to /login while it is being built.
func newTestApp(t *testing.T, hash string, opts ...Option) *testApp {
	t.Helper()
	app := &testApp{
		win:  memdom.NewWindow(hash),
		name: signal.New("guest"),
	}
	app.b = el.New(app.win.Document())

	table := MustTable(map[string]View{
		"/": func() dom.Node {
			return app.b.Div(el.Attrs{"id": "landing"},
				app.b.P(el.Attrs{"innerText": "Hello, World from landing!"}),
				app.b.Button(el.Attrs{el.OnClick: func() { app.router.Navigate("/login") }}, "Click Me"),
			)
		},
		"/login": func() dom.Node {
			return app.b.Div(el.Attrs{"id": "login"}, "Hello, ", app.name)
		},
		"/redirect": func() dom.Node {
			app.router.Navigate("/login")
			return app.b.Div(el.Attrs{"id": "redirect"})
		},
	}, "/")

	opts = append([]Option{
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithOnRender(func(path string) { app.rendered = append(app.rendered, path) }),
	}, opts...)
	app.router = New(app.win, app.b, table, opts...)
	return app
}

func (a *testApp) page(t *testing.T) *memdom.Element {
	t.Helper()
	children := a.win.Document().Body().ChildNodes()
	if len(children) != 1 {
		t.Fatalf("body has %d children, want 1", len(children))
	}
	page, ok := children[0].(*memdom.Element)
	if !ok {
		t.Fatalf("body child is %T", children[0])
	}
	return page
}

func (a *testApp) pageID(t *testing.T) string {
	t.Helper()
	id, _ := a.page(t).GetAttribute("id")
	return id
}

func findTag(n dom.Node, tag string) *memdom.Element {
	if e, ok := n.(*memdom.Element); ok && e.TagName() == tag {
		return e
	}
	for _, c := range n.ChildNodes() {
		if found := findTag(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func TestStartRendersInitialFragment(t *testing.T) {
	tests := []struct {
		hash string
		want string
	}{
		{"", "landing"},
		{"#/", "landing"},
		{"#/login", "login"},
		{"#/missing", "landing"},
	}
	for _, tt := range tests {
		t.Run(tt.hash, func(t *testing.T) {
			app := newTestApp(t, tt.hash)
			app.router.Start()
			defer app.router.Stop()

			if got := app.pageID(t); got != tt.want {
				t.Errorf("page = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStartTwiceIsNoop(t *testing.T) {
	app := newTestApp(t, "")
	app.router.Start()
	app.router.Start()

	if got := app.win.ListenerCount(dom.EventPopState); got != 2 {
		t.Errorf("popstate listeners = %d, want 2", got)
	}
	if got := app.win.ListenerCount(dom.EventHashChange); got != 1 {
		t.Errorf("hashchange listeners = %d, want 1", got)
	}
	if len(app.rendered) != 1 {
		t.Errorf("renders = %v, want one", app.rendered)
	}
}

func TestNavigate(t *testing.T) {
	app := newTestApp(t, "")
	app.router.Start()
	defer app.router.Stop()

	app.router.Navigate("/login", WithState(map[string]string{"from": "test"}))

	if got := app.win.Hash(); got != "#/login" {
		t.Errorf("hash = %q, want #/login", got)
	}
	if got := app.pageID(t); got != "login" {
		t.Errorf("page = %q, want login", got)
	}
	if got := app.win.HistoryLength(); got != 2 {
		t.Errorf("history length = %d, want 2", got)
	}
	if got := app.win.State(); !reflect.DeepEqual(got, map[string]string{"from": "test"}) {
		t.Errorf("state = %v", got)
	}
	if got := app.router.Current(); got != "/login" {
		t.Errorf("Current() = %q, want /login", got)
	}
	if app.win.Reloads() != 0 {
		t.Errorf("reloads = %d, want 0", app.win.Reloads())
	}
}

func TestNavigateReplace(t *testing.T) {
	app := newTestApp(t, "")
	app.router.Start()
	defer app.router.Stop()

	app.router.Navigate("/login", WithReplace())

	if got := app.win.HistoryLength(); got != 1 {
		t.Errorf("history length = %d, want 1", got)
	}
	if got := app.win.Hash(); got != "#/login" {
		t.Errorf("hash = %q, want #/login", got)
	}
}

func TestNavigateUnknownPath(t *testing.T) {
	app := newTestApp(t, "")
	app.router.Start()
	defer app.router.Stop()

	app.router.Navigate("/nowhere")

	if got := app.win.Hash(); got != "#/nowhere" {
		t.Errorf("hash = %q, want #/nowhere", got)
	}
	if got := app.pageID(t); got != "landing" {
		t.Errorf("page = %q, want landing", got)
	}
}

func TestClickNavigates(t *testing.T) {
	app := newTestApp(t, "")
	app.router.Start()
	defer app.router.Stop()

	button := findTag(app.page(t), "button")
	if button == nil {
		t.Fatal("landing page has no button")
	}
	button.Dispatch("click")

	if got := app.pageID(t); got != "login" {
		t.Errorf("page = %q, want login", got)
	}
}

func TestBackForward(t *testing.T) {
	app := newTestApp(t, "")
	app.router.Start()
	defer app.router.Stop()

	app.router.Navigate("/login")
	app.win.Back()

	if got := app.pageID(t); got != "landing" {
		t.Errorf("after Back page = %q, want landing", got)
	}
	if got := app.router.Current(); got != "/" {
		t.Errorf("after Back Current() = %q, want /", got)
	}

	app.win.Forward()
	if got := app.pageID(t); got != "login" {
		t.Errorf("after Forward page = %q, want login", got)
	}
	if app.win.Reloads() != 0 {
		t.Errorf("reloads = %d, want 0", app.win.Reloads())
	}

	want := []string{"/", "/login", "/", "/login"}
	if !reflect.DeepEqual(app.rendered, want) {
		t.Errorf("renders = %v, want %v", app.rendered, want)
	}
}

func TestManualFragmentEdit(t *testing.T) {
	app := newTestApp(t, "")
	app.router.Start()
	defer app.router.Stop()

	app.win.SetHash("#/login")

	if got := app.pageID(t); got != "login" {
		t.Errorf("page = %q, want login", got)
	}
	if app.win.Reloads() != 0 {
		t.Errorf("reloads = %d, want 0", app.win.Reloads())
	}
}

func TestSameFragmentEditDoesNotRender(t *testing.T) {
	app := newTestApp(t, "#/login")
	app.router.Start()
	defer app.router.Stop()

	app.win.SetHash("#/login")

	if want := []string{"/login"}; !reflect.DeepEqual(app.rendered, want) {
		t.Errorf("renders = %v, want %v", app.rendered, want)
	}
}

func TestFragmentChangeWithoutRouterReloads(t *testing.T) {
	app := newTestApp(t, "")
	app.win.SetHash("#/login")
	if app.win.Reloads() != 1 {
		t.Errorf("reloads = %d, want 1", app.win.Reloads())
	}
}

func TestBindingsReleasedOnPageChange(t *testing.T) {
	app := newTestApp(t, "#/login")
	app.router.Start()
	defer app.router.Stop()

	if got := app.name.Subscribers(); got != 1 {
		t.Fatalf("subscribers on login = %d, want 1", got)
	}
	text := app.page(t).ChildNodes()[1].(dom.Text)

	app.name.Set("ada")
	if got := app.page(t).TextContent(); got != "Hello, ada" {
		t.Errorf("text = %q, want %q", got, "Hello, ada")
	}

	loginScope := app.router.currentScope()
	app.router.Navigate("/")
	if !loginScope.IsDisposed() {
		t.Errorf("login page scope not disposed after navigation")
	}
	if app.router.currentScope().IsDisposed() {
		t.Errorf("landing page scope disposed while current")
	}
	if got := app.name.Subscribers(); got != 0 {
		t.Errorf("subscribers after leaving login = %d, want 0", got)
	}

	app.name.Set("grace")
	if got := text.Data(); got != "ada" {
		t.Errorf("detached text updated to %q", got)
	}

	app.router.Navigate("/login")
	if got := app.page(t).TextContent(); got != "Hello, grace" {
		t.Errorf("text = %q, want %q", got, "Hello, grace")
	}
	if got := app.name.Subscribers(); got != 1 {
		t.Errorf("subscribers after return = %d, want 1", got)
	}
}

func TestListenersReleasedOnPageChange(t *testing.T) {
	app := newTestApp(t, "")
	app.router.Start()
	defer app.router.Stop()

	button := findTag(app.page(t), "button")
	app.router.Navigate("/login")

	if got := button.ListenerCount("click"); got != 0 {
		t.Errorf("click listeners on discarded button = %d, want 0", got)
	}
}

func TestNavigateDuringRenderIsQueued(t *testing.T) {
	app := newTestApp(t, "")
	app.router.Start()
	defer app.router.Stop()

	app.router.Navigate("/redirect")

	want := []string{"/", "/redirect", "/login"}
	if !reflect.DeepEqual(app.rendered, want) {
		t.Errorf("renders = %v, want %v", app.rendered, want)
	}
	if got := app.pageID(t); got != "login" {
		t.Errorf("page = %q, want login", got)
	}
	if got := app.win.Hash(); got != "#/login" {
		t.Errorf("hash = %q, want #/login", got)
	}
	if got := app.win.HistoryLength(); got != 3 {
		t.Errorf("history length = %d, want 3", got)
	}
}

func TestNavigateFromSubscriberIsQueued(t *testing.T) {
	app := newTestApp(t, "")
	app.router.Start()
	defer app.router.Stop()

	ready := signal.New(false)
	stop := ready.Subscribe(func() {
		if ready.Get() {
			app.router.Navigate("/login")
		}
	})
	defer stop()

	ready.Set(true)
	if got := app.pageID(t); got != "login" {
		t.Errorf("page = %q, want login", got)
	}
}

func TestStop(t *testing.T) {
	app := newTestApp(t, "#/login")
	app.router.Start()
	scope := app.router.currentScope()
	app.router.Stop()

	if !scope.IsDisposed() {
		t.Errorf("page scope not disposed by Stop")
	}
	if app.router.currentScope() != nil {
		t.Errorf("router still holds a scope after Stop")
	}
	if got := app.win.ListenerCount(dom.EventPopState); got != 0 {
		t.Errorf("popstate listeners = %d, want 0", got)
	}
	if got := app.win.ListenerCount(dom.EventHashChange); got != 0 {
		t.Errorf("hashchange listeners = %d, want 0", got)
	}
	if got := app.name.Subscribers(); got != 0 {
		t.Errorf("subscribers = %d, want 0", got)
	}

	app.win.SetHash("#/")
	if got := app.pageID(t); got != "login" {
		t.Errorf("stopped router rendered %q", got)
	}
}

func TestPanickingViewDoesNotWedgeRouter(t *testing.T) {
	win := memdom.NewWindow("")
	b := el.New(win.Document())
	table := MustTable(map[string]View{
		"/":     func() dom.Node { return b.Div(el.Attrs{"id": "home"}) },
		"/boom": func() dom.Node { panic("boom") },
	}, "/")
	r := New(win, b, table, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	r.Start()
	defer r.Stop()

	func() {
		defer func() {
			if p := recover(); p != "boom" {
				t.Fatalf("recover() = %v, want boom", p)
			}
		}()
		r.Navigate("/boom")
	}()

	r.Navigate("/")
	page := win.Document().Body().ChildNodes()
	if len(page) != 1 {
		t.Fatalf("body children = %d, want 1", len(page))
	}
	if id, _ := page[0].(*memdom.Element).GetAttribute("id"); id != "home" {
		t.Errorf("page id = %q, want home", id)
	}
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	return m.GetCounter().GetValue()
}

func histogramCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	var m dto.Metric
	if err := h.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg))

	app := newTestApp(t, "#/login", WithMetrics(m))
	app.router.Start()
	defer app.router.Stop()

	app.router.Navigate("/missing")
	app.win.Back()

	if got := counterValue(t, m.navigations.WithLabelValues(SourceInitial)); got != 1 {
		t.Errorf("navigations{initial} = %v, want 1", got)
	}
	if got := counterValue(t, m.navigations.WithLabelValues(SourceNavigate)); got != 1 {
		t.Errorf("navigations{navigate} = %v, want 1", got)
	}
	if got := counterValue(t, m.navigations.WithLabelValues(SourcePopState)); got != 1 {
		t.Errorf("navigations{popstate} = %v, want 1", got)
	}
	if got := counterValue(t, m.fallbacks); got != 1 {
		t.Errorf("fallbacks = %v, want 1", got)
	}
	// The login page's text binding is released when /missing replaces it.
	if got := counterValue(t, m.releasedBindings); got < 1 {
		t.Errorf("released bindings = %v, want >= 1", got)
	}
	if got := histogramCount(t, m.renderDuration); got != 3 {
		t.Errorf("render duration samples = %d, want 3", got)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	joined := strings.Join(names, ",")
	for _, want := range []string{
		"domkit_router_navigations_total",
		"domkit_router_render_duration_seconds",
		"domkit_router_fallbacks_total",
		"domkit_router_released_bindings_total",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("registry missing %s (have %s)", want, joined)
		}
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.observe(SourceInitial, 0.1, true, 3)
}

func TestTracing(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	app := newTestApp(t, "", WithTracer(provider.Tracer("test")))
	app.router.Start()
	defer app.router.Stop()
	app.router.Navigate("/missing")

	spans := recorder.Ended()
	if len(spans) != 2 {
		t.Fatalf("ended spans = %d, want 2", len(spans))
	}

	last := spans[1]
	if last.Name() != "router.render" {
		t.Errorf("span name = %q", last.Name())
	}
	attrs := map[string]string{}
	for _, kv := range last.Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	want := map[string]string{
		"route.path":     "/missing",
		"route.source":   SourceNavigate,
		"route.resolved": "/",
		"route.fallback": "true",
	}
	for k, v := range want {
		if attrs[k] != v {
			t.Errorf("attribute %s = %q, want %q", k, attrs[k], v)
		}
	}
}
