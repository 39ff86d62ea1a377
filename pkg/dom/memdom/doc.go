// Package memdom is an in-memory implementation of the dom interfaces.
//
// It backs the builder and router in tests and during headless
// pre-rendering. Semantics follow the browser where domkit depends on them:
// re-appending an attached node moves it, style objects drop invalid
// properties, pushState never fires popstate, and a hashchange whose default
// is not prevented counts as a reload.
package memdom
