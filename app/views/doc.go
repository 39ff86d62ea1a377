// Package views holds the pages of the example application. Each view is a
// function returning a fresh element tree; views never touch the router
// directly and receive a navigate callback instead.
package views
