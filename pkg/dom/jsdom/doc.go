//go:build js && wasm

// Package jsdom implements the dom interfaces over the browser document via
// syscall/js. It is only available when compiling with GOOS=js GOARCH=wasm.
package jsdom
