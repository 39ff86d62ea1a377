//go:build js && wasm

// Command app is the browser entry point. It is compiled with
// GOOS=js GOARCH=wasm and loaded by the page shell.
package main

import (
	"log/slog"
	"os"

	"github.com/domkit-dev/domkit/app"
	"github.com/domkit-dev/domkit/pkg/dom"
	"github.com/domkit-dev/domkit/pkg/dom/jsdom"
	"github.com/domkit-dev/domkit/pkg/router"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	win := jsdom.Global()

	boot := func() { app.Boot(win, router.WithLogger(logger)) }
	if win.Document().(*jsdom.Document).ReadyState() == "complete" {
		boot()
	} else {
		var h dom.ListenerHandle
		h = win.AddEventListener("load", func(dom.Event) {
			h.Remove()
			boot()
		})
	}

	// Keep the Go runtime alive for event callbacks.
	select {}
}
