// Package dom describes the document substrate domkit renders into.
//
// The builder and router never talk to a browser directly. They depend on
// the small set of interfaces declared here, which two hosts implement:
//
//   - memdom, an in-memory document used by tests and headless pre-rendering
//   - jsdom, a syscall/js wrapper around the browser's document (js/wasm only)
//
// Element is deliberately split into capabilities (Stylable, Eventable,
// Dataable, PropertySetter) so that the builder's attribute classification
// maps onto one capability per class.
package dom
