// Package build produces a deployable domkit site.
//
// A build compiles the application's main package for GOOS=js GOARCH=wasm,
// copies the toolchain's wasm_exec.js next to it, pre-renders every route
// and records a manifest of content hashes:
//
//	dist/
//	├── app.wasm
//	├── wasm_exec.js
//	├── index.html          # "/" pre-rendered
//	├── login/index.html    # "/login" pre-rendered
//	└── manifest.json       # file -> sha256
//
// # Usage
//
//	b := build.New(cfg, build.Options{Boot: app.Boot})
//	result, err := b.Build(ctx)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("built %d pages in %s\n", len(result.Pages), result.Duration)
package build
