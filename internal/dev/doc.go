// Package dev provides the development server and live reload.
//
// The development server consists of:
//
//   - Watcher: reports batches of file changes using fsnotify
//   - Compiler: serializes site rebuilds (WebAssembly + pre-rendered pages)
//   - ReloadServer: tells connected browsers to reload over a WebSocket
//   - Server: serves the build output, the reload endpoints and /metrics
//
// # Usage
//
//	srv := dev.NewServer(dev.ServerOptions{
//	    Config:  cfg,
//	    Builder: build.New(cfg, build.Options{Boot: app.Boot, LiveReload: true}),
//	})
//	if err := srv.Start(ctx); err != nil {
//	    return err
//	}
//
// # Hot Reload Protocol
//
// Pages load /_domkit/reload.js, which connects to /_domkit/reload.
// Messages are JSON-encoded:
//
//	{"type": "reload"}                // full page reload
//	{"type": "error", "error": "..."} // show the build error overlay
//	{"type": "clear"}                 // hide the overlay
package dev
