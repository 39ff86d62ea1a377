// Package app wires the example views into a routed application.
package app

import (
	"github.com/domkit-dev/domkit/app/views"
	"github.com/domkit-dev/domkit/pkg/dom"
	"github.com/domkit-dev/domkit/pkg/el"
	"github.com/domkit-dev/domkit/pkg/router"
)

// GlobalStyles is injected into <head> before the first render.
const GlobalStyles = `
body {
    margin: 0;
    padding: 0;
    font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Arial, sans-serif;
    background: #f8f9fa;
}
`

// Routes returns the application's route table. Unknown paths render the
// landing page.
func Routes(b *el.Builder, navigate views.Navigate) *router.Table {
	login := views.NewLoginState()
	return router.MustTable(map[string]router.View{
		"/":      views.Landing(b, navigate),
		"/login": views.Login(b, login, navigate),
	}, "/")
}

// Mount creates the application's router for win without starting it.
func Mount(win dom.Window, opts ...router.Option) *router.Router {
	b := el.New(win.Document())
	var r *router.Router
	table := Routes(b, func(path string) { r.Navigate(path) })
	r = router.New(win, b, table, opts...)
	return r
}

// Boot injects the global stylesheet and starts the router.
func Boot(win dom.Window, opts ...router.Option) *router.Router {
	InjectStyles(win.Document(), GlobalStyles)
	r := Mount(win, opts...)
	r.Start()
	return r
}

// InjectStyles appends a <style> element holding css to the document head.
// A page that already carries the stylesheet, such as a pre-rendered one,
// keeps its existing element.
func InjectStyles(doc dom.Document, css string) dom.Element {
	head := doc.Head()
	for _, n := range head.ChildNodes() {
		if e, ok := n.(dom.Element); ok {
			if v, _ := e.GetAttribute(styleMarker); v == "global" {
				return e
			}
		}
	}

	b := el.New(doc)
	style := b.Style(el.Attrs{styleMarker: "global"}, css)
	head.AppendChild(style)
	return style
}

const styleMarker = "data-domkit"
