// Package router implements hash-fragment routing for domkit pages.
//
// A Table maps normalized paths ("/", "/login") to views, functions that
// build a fresh element tree. A Router owns the document body: on start, on
// every Navigate call and on every back/forward navigation it resolves the
// path in the address fragment against the table and replaces the whole
// body with the view's output.
//
//	table := router.MustTable(map[string]router.View{
//	    "/":      views.Landing(b, nav),
//	    "/login": views.Login(b),
//	}, "/")
//
//	r := router.New(win, b, table, router.WithLogger(logger))
//	r.Start()
//	defer r.Stop()
//
//	r.Navigate("/login") // address becomes #/login, body is replaced
//
// Unknown paths render the table's fallback view. There is no partial
// rendering: every transition drops the previous page, including the signal
// bindings and listeners it owned.
//
// Renders never overlap. A navigation requested while a page is being built
// (from a view or a signal subscriber) runs after the current render
// completes, in the order requested.
package router
