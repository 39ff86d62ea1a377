package views

import (
	"github.com/domkit-dev/domkit/pkg/dom"
	"github.com/domkit-dev/domkit/pkg/el"
)

// Navigate moves the application to path.
type Navigate func(path string)

// Landing is the "/" page: a greeting and a button that opens the login
// page.
func Landing(b *el.Builder, navigate Navigate) func() dom.Node {
	return func() dom.Node {
		return b.Div(el.Attrs{"style": el.Style{"minHeight": "100vh", "display": "flex", "flexDirection": "column"}},
			b.P(el.Attrs{
				"innerText": "Hello, World from landing!",
				"style":     el.Style{"color": "red", "fontSize": "24px"},
				// Not a DOM property; it lands on the element unchecked.
				"hover": el.Style{"color": "black", "backgroundColor": "red"},
			}),
			b.Button(el.Attrs{el.OnClick: func() { navigate("/login") }}, "Click Me"),
		)
	}
}
