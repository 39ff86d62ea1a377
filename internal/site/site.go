package site

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/domkit-dev/domkit/internal/errors"
	"github.com/domkit-dev/domkit/pkg/dom"
	"github.com/domkit-dev/domkit/pkg/dom/memdom"
	"github.com/domkit-dev/domkit/pkg/router"
)

// Boot starts an application in win and returns its router.
type Boot func(win dom.Window, opts ...router.Option) *router.Router

// Options configures page generation.
type Options struct {
	// Title is the document title.
	Title string

	// Lang is the document language (default "en").
	Lang string

	// BaseURL prefixes script and wasm URLs (default "/").
	BaseURL string

	// WasmFile is the WebAssembly file name (default "app.wasm").
	WasmFile string

	// LiveReload adds the dev server's reload client.
	LiveReload bool

	// NotFoundRoute, when set, is written a second time as NotFoundFile.
	NotFoundRoute string

	// Concurrency bounds parallel renders (default GOMAXPROCS).
	Concurrency int

	Logger *slog.Logger
}

func (o Options) lang() string {
	if o.Lang == "" {
		return "en"
	}
	return o.Lang
}

func (o Options) wasm() string {
	if o.WasmFile == "" {
		return "app.wasm"
	}
	return o.WasmFile
}

func (o Options) url(name string) string {
	base := o.BaseURL
	if base == "" {
		base = "/"
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + name
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

func (o Options) concurrency() int {
	if o.Concurrency > 0 {
		return o.Concurrency
	}
	return runtime.GOMAXPROCS(0)
}

// Page is one rendered route.
type Page struct {
	Route string

	// File is the output path relative to the site root, slash-separated.
	File string

	HTML []byte
}

// NotFoundFile is served by static hosts for unknown URLs.
const NotFoundFile = "404.html"

// Routes boots the app once and returns its registered paths.
func Routes(boot Boot) []string {
	r := boot(memdom.NewWindow(""), router.WithLogger(discard))
	defer r.Stop()
	return r.Table().Paths()
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// PageFile maps a route to its output file: "/" is index.html and "/login"
// is login/index.html.
func PageFile(route string) string {
	clean := strings.Trim(path.Clean("/"+route), "/")
	if clean == "" {
		return "index.html"
	}
	return clean + "/index.html"
}

// RenderRoute renders a single route to a complete page.
func RenderRoute(boot Boot, route string, opts Options) (page Page, err error) {
	route = router.Normalize(route)
	defer func() {
		if p := recover(); p != nil {
			err = errors.New("E162").WithDetail(fmt.Sprintf("route %s panicked: %v", route, p))
		}
	}()

	win := memdom.NewWindow(router.Href(route))
	r := boot(win, router.WithLogger(opts.logger()))
	defer r.Stop()

	if err := decorate(win.Doc(), route, opts); err != nil {
		return Page{}, errors.New("E162").Wrap(err)
	}

	var buf bytes.Buffer
	if err := memdom.RenderDocument(&buf, win.Doc()); err != nil {
		return Page{}, errors.New("E162").Wrap(err)
	}
	return Page{Route: route, File: PageFile(route), HTML: buf.Bytes()}, nil
}

// Prerender renders every route concurrently. Pages are returned in route
// order. The first failure cancels the remaining renders.
func Prerender(ctx context.Context, boot Boot, opts Options) ([]Page, error) {
	routes := Routes(boot)
	pages := make([]Page, len(routes))
	start := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.concurrency())
	for i, route := range routes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			page, err := RenderRoute(boot, route, opts)
			if err != nil {
				return err
			}
			pages[i] = page
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if opts.NotFoundRoute != "" {
		page, err := notFoundPage(pages, router.Normalize(opts.NotFoundRoute))
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}

	opts.logger().Info("pre-rendered site", "pages", len(pages), "duration", time.Since(start))
	return pages, nil
}

func notFoundPage(pages []Page, route string) (Page, error) {
	for _, p := range pages {
		if p.Route == route {
			return Page{Route: route, File: NotFoundFile, HTML: p.HTML}, nil
		}
	}
	return Page{}, errors.New("E103").
		WithDetail("defaultRoute " + route + " is not a registered route")
}

// Write stores pages under dir.
func Write(dir string, pages []Page) error {
	for _, p := range pages {
		dst := filepath.Join(dir, filepath.FromSlash(p.File))
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return errors.New("E163").Wrap(err).WithLocation(dst, 0, 0)
		}
		if err := os.WriteFile(dst, p.HTML, 0644); err != nil {
			return errors.New("E163").Wrap(err).WithLocation(dst, 0, 0)
		}
	}
	return nil
}
