// Package el builds document elements declaratively.
//
// A Builder creates elements in a dom.Document from a tag name, an attribute
// map and a list of children:
//
//	b := el.New(doc)
//	b.Div(el.Attrs{"style": el.Style{"display": "flex"}},
//	    b.P(el.Attrs{"innerText": "Hello", "data-role": "greeting"}),
//	    b.Button(el.Attrs{el.OnClick: func() { count.Update(inc) }}, "Click me"),
//	    b.Span(nil, b.Text(count)),
//	)
//
// Attribute keys fall into four classes, checked in this order:
//
//   - "style": a Style map copied onto the element's live style object
//   - the reserved event keys (onclick, oninput, ...): registered as listeners
//   - data-* and aria-* keys: set as string attributes
//   - anything else: assigned as an element property, unchecked
//
// Text binds a signal to a live text node. It is the only way an element
// changes after construction. Bindings and listeners created while a Scope is
// current belong to that scope and are released by Scope.Dispose.
package el
