// Package site turns a domkit application into static files.
//
// Every route in the application's table is rendered headlessly against an
// in-memory document and written as a complete HTML page that also loads
// the WebAssembly build. The page for "/" becomes index.html; other routes
// become <route>/index.html and carry a data-route attribute so the
// bootstrap script can restore the matching fragment before the app starts.
package site
