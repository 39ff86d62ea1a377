// Package errors provides coded, actionable errors for the domkit CLI.
//
// Every failure the CLI can report to a user (a malformed domkit.yaml, a
// failed WebAssembly build, a publish without a bucket) has a code that maps
// to a registered template:
//
//   - E100-E139: configuration
//   - E140-E159: command line
//   - E160-E179: build and pre-render
//   - E180-E199: publishing
//
// The browser-side packages (signal, el, router) never return these; their
// programming errors panic.
//
// # Usage
//
//	return errors.New("E102").
//	    WithDetail(fmt.Sprintf("port %d is outside 1-65535", cfg.Dev.Port)).
//	    WithLocation("domkit.yaml", 0, 0)
//
//	errors.PrintError(err)
//	// ERROR E102: Invalid dev server port
//	//
//	//   domkit.yaml
//	//
//	//   port 0 is outside 1-65535
//	//
//	//   Hint: Set dev.port to a free port, e.g. 3000
package errors
