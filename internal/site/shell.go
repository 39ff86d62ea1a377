package site

import (
	"strings"

	"github.com/domkit-dev/domkit/pkg/dom"
	"github.com/domkit-dev/domkit/pkg/dom/memdom"
)

// ReloadScriptPath is where the dev server serves its live-reload client.
const ReloadScriptPath = "/_domkit/reload.js"

// bootstrap restores the route fragment for deep-linked snapshots and starts
// the WebAssembly app.
const bootstrap = `(function () {
  var route = document.documentElement.getAttribute("data-route");
  if (!location.hash && route && route !== "/") {
    history.replaceState(null, "", "#" + route);
  }
  var go = new Go();
  WebAssembly.instantiateStreaming(fetch("{{wasm}}"), go.importObject)
    .then(function (result) { go.run(result.instance); })
    .catch(function (err) { console.error("domkit: failed to start", err); });
})();
`

// decorate turns a rendered document into a standalone page: document
// metadata first, then whatever the app put in <head>, then the scripts.
func decorate(doc *memdom.Document, route string, opts Options) error {
	root := doc.DocumentElement()
	root.SetAttribute("lang", opts.lang())
	root.SetAttribute("data-route", route)

	head := doc.Head()
	existing := head.ChildNodes()

	var nodes []dom.Node
	add := func(tag string, attrs ...string) (dom.Element, error) {
		e, err := doc.CreateElement(tag)
		if err != nil {
			return nil, err
		}
		for i := 0; i+1 < len(attrs); i += 2 {
			e.SetAttribute(attrs[i], attrs[i+1])
		}
		nodes = append(nodes, e)
		return e, nil
	}

	if _, err := add("meta", "charset", "utf-8"); err != nil {
		return err
	}
	if _, err := add("meta", "name", "viewport", "content", "width=device-width, initial-scale=1"); err != nil {
		return err
	}
	title, err := add("title")
	if err != nil {
		return err
	}
	title.AppendChild(doc.CreateTextNode(opts.Title))

	nodes = append(nodes, existing...)

	if _, err := add("script", "src", opts.url("wasm_exec.js")); err != nil {
		return err
	}
	boot, err := add("script")
	if err != nil {
		return err
	}
	boot.AppendChild(doc.CreateTextNode(strings.ReplaceAll(bootstrap, "{{wasm}}", opts.url(opts.wasm()))))

	if opts.LiveReload {
		if _, err := add("script", "src", ReloadScriptPath); err != nil {
			return err
		}
	}

	head.ReplaceChildren(nodes...)
	return nil
}
