package router

import (
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/domkit-dev/domkit/pkg/dom"
	"github.com/domkit-dev/domkit/pkg/el"
)

// Render sources reported to metrics, traces and OnRender hooks.
const (
	SourceInitial  = "initial"
	SourceNavigate = "navigate"
	SourcePopState = "popstate"
)

// Router renders the view for the current address fragment into the
// document body.
type Router struct {
	win     dom.Window
	builder *el.Builder
	table   *Table

	logger   *slog.Logger
	metrics  *Metrics
	tracer   trace.Tracer
	onRender func(path string)

	mu       sync.Mutex
	started  bool
	handles  []dom.ListenerHandle
	scope    *el.Scope
	draining bool
	queue    []job
}

type job struct {
	source string
	path   string
	nav    *NavigateOptions
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the router's logger. Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMetrics records renders to m.
func WithMetrics(m *Metrics) Option {
	return func(r *Router) {
		r.metrics = m
	}
}

// WithTracer sets the tracer for render spans. Default: the global
// provider's tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(r *Router) {
		if tracer != nil {
			r.tracer = tracer
		}
	}
}

// WithOnRender calls fn with the resolved route after every render.
func WithOnRender(fn func(path string)) Option {
	return func(r *Router) {
		r.onRender = fn
	}
}

// New creates a router that renders table's views into win's document with
// b. Nothing happens until Start or Navigate is called.
func New(win dom.Window, b *el.Builder, table *Table, opts ...Option) *Router {
	r := &Router{
		win:     win,
		builder: b,
		table:   table,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.tracer == nil {
		r.tracer = defaultTracer()
	}
	return r
}

// Start installs the window listeners and renders the page for the current
// fragment. Calling Start on a started router does nothing.
func (r *Router) Start() {
	r.mu.Lock()
	if r.started {
		r.mu.Unlock()
		return
	}
	r.started = true
	r.handles = []dom.ListenerHandle{
		r.win.AddEventListener(dom.EventPopState, func(dom.Event) {
			r.enqueue(job{source: SourcePopState, path: r.Current()})
		}),
		// Without these the host treats a fragment change as a reload.
		r.win.AddEventListener(dom.EventHashChange, func(ev dom.Event) {
			ev.PreventDefault()
		}),
		r.win.AddEventListener(dom.EventPopState, func(ev dom.Event) {
			ev.PreventDefault()
		}),
	}
	r.mu.Unlock()

	r.logger.Debug("router started", "routes", r.table.Len(), "fallback", r.table.Fallback())
	r.enqueue(job{source: SourceInitial, path: r.Current()})
}

func (r *Router) currentScope() *el.Scope {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.scope
}

// Stop removes the window listeners and releases the current page's
// bindings. The rendered page stays in the document.
func (r *Router) Stop() {
	r.mu.Lock()
	handles := r.handles
	scope := r.scope
	r.handles = nil
	r.scope = nil
	r.started = false
	r.mu.Unlock()

	for _, h := range handles {
		h.Remove()
	}
	if scope != nil {
		scope.Dispose()
	}
}

// Navigate adds a history entry for path and renders its view. The render
// is synchronous unless another render is in progress, in which case it runs
// as soon as that one (and anything queued before it) completes.
func (r *Router) Navigate(path string, opts ...NavigateOption) {
	options := &NavigateOptions{}
	for _, opt := range opts {
		opt(options)
	}
	r.enqueue(job{source: SourceNavigate, path: Normalize(path), nav: options})
}

// Current returns the path in the window's fragment.
func (r *Router) Current() string {
	return Normalize(r.win.Location().Hash())
}

// Table returns the router's route table.
func (r *Router) Table() *Table {
	return r.table
}

func (r *Router) enqueue(j job) {
	r.mu.Lock()
	r.queue = append(r.queue, j)
	if r.draining {
		r.mu.Unlock()
		return
	}
	r.draining = true
	r.mu.Unlock()

	r.drain()
}

func (r *Router) drain() {
	defer func() {
		if p := recover(); p != nil {
			r.mu.Lock()
			r.draining = false
			r.queue = nil
			r.mu.Unlock()
			panic(p)
		}
	}()

	for {
		r.mu.Lock()
		if len(r.queue) == 0 {
			r.draining = false
			r.mu.Unlock()
			return
		}
		j := r.queue[0]
		r.queue = r.queue[1:]
		r.mu.Unlock()

		r.run(j)
	}
}

func (r *Router) run(j job) {
	if j.nav != nil {
		href := Href(j.path)
		if j.nav.Replace {
			r.win.History().ReplaceState(j.nav.State, href)
		} else {
			r.win.History().PushState(j.nav.State, href)
		}
	}
	r.render(j.path, j.source)
}

// render replaces the body with the view for path.
func (r *Router) render(path, source string) {
	start := time.Now()
	view, route, ok := r.table.Resolve(path)
	span := r.startSpan(path, source)

	scope := el.NewScope()
	r.mu.Lock()
	prev := r.scope
	r.scope = scope
	r.mu.Unlock()

	released := 0
	defer func() {
		endSpan(span, route, !ok, released)
	}()

	if prev != nil {
		released = prev.Dispose()
	}

	body := r.win.Document().Body()
	body.ReplaceChildren()

	var node dom.Node
	r.builder.Within(scope, func() {
		node = view()
	})
	if node != nil {
		body.AppendChild(node)
	}

	elapsed := time.Since(start)
	r.metrics.observe(source, elapsed.Seconds(), !ok, released)

	if !ok {
		r.logger.Warn("route not found, rendering fallback",
			"path", path,
			"fallback", route,
		)
	}
	r.logger.Debug("page rendered",
		"path", path,
		"route", route,
		"source", source,
		"released", released,
		"duration", elapsed,
	)

	if r.onRender != nil {
		r.onRender(route)
	}
}
