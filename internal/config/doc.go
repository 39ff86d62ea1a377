// Package config loads domkit project configuration.
//
// The configuration lives in domkit.yaml (or domkit.yml / domkit.json) at
// the project root:
//
//	name: hello
//	title: Hello
//	defaultRoute: /
//	paths:
//	  app: ./cmd/app
//	dev:
//	  port: 3000
//	  hotReload: true
//	  watch: [app, cmd, pkg]
//	build:
//	  output: dist
//	  ldflags: -s -w
//	publish:
//	  bucket: my-site
//	  prefix: hello/
//	log:
//	  level: info
//
// # Usage
//
//	cfg, err := config.LoadFromWorkingDir()
//	if err != nil {
//	    errors.PrintError(err)
//	    os.Exit(1)
//	}
//	fmt.Println(cfg.DevURL())
package config
