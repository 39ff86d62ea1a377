package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/domkit-dev/domkit/internal/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func errorCode(err error) string {
	var de *errors.DomkitError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Dev.Port != DefaultPort {
		t.Errorf("Dev.Port = %d, want %d", cfg.Dev.Port, DefaultPort)
	}
	if cfg.Dev.Host != DefaultHost {
		t.Errorf("Dev.Host = %q, want %q", cfg.Dev.Host, DefaultHost)
	}
	if cfg.Build.Output != DefaultOutput {
		t.Errorf("Build.Output = %q, want %q", cfg.Build.Output, DefaultOutput)
	}
	if cfg.DefaultRoute != "/" {
		t.Errorf("DefaultRoute = %q, want /", cfg.DefaultRoute)
	}
	if !cfg.HotReloadEnabled() {
		t.Error("hot reload should default to on")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "domkit.yaml", `
name: hello
title: Hello App
paths:
  app: web/main
dev:
  port: 8080
  host: 0.0.0.0
  hotReload: false
  watch: [web]
build:
  output: public
  tags: [prod]
  ldflags: -s -w
publish:
  bucket: sites
  prefix: hello/
  region: eu-west-1
log:
  level: debug
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Name != "hello" || cfg.Title != "Hello App" {
		t.Errorf("Name/Title = %q/%q", cfg.Name, cfg.Title)
	}
	if cfg.DevAddress() != "0.0.0.0:8080" {
		t.Errorf("DevAddress() = %q", cfg.DevAddress())
	}
	if cfg.HotReloadEnabled() {
		t.Error("hotReload: false was ignored")
	}
	if cfg.AppPath() != "./web/main" {
		t.Errorf("AppPath() = %q, want ./web/main", cfg.AppPath())
	}
	if cfg.OutputPath() != filepath.Join(dir, "public") {
		t.Errorf("OutputPath() = %q", cfg.OutputPath())
	}
	if !reflect.DeepEqual(cfg.WatchPaths(), []string{filepath.Join(dir, "web")}) {
		t.Errorf("WatchPaths() = %v", cfg.WatchPaths())
	}
	if !reflect.DeepEqual(cfg.Build.Tags, []string{"prod"}) || cfg.Build.LDFlags != "-s -w" {
		t.Errorf("Build = %+v", cfg.Build)
	}
	if cfg.Publish.Bucket != "sites" || cfg.Publish.CacheControl != DefaultCacheControl {
		t.Errorf("Publish = %+v", cfg.Publish)
	}
	if level, _ := cfg.SlogLevel(); level != slog.LevelDebug {
		t.Errorf("SlogLevel() = %v, want debug", level)
	}
	if cfg.Path() != filepath.Join(dir, "domkit.yaml") {
		t.Errorf("Path() = %q", cfg.Path())
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "domkit.json", `{"name": "j", "dev": {"port": 4000}}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Dev.Port != 4000 || cfg.Name != "j" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Title != "j" {
		t.Errorf("Title = %q, want name as default", cfg.Title)
	}
}

func TestLoadPrefersYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "domkit.json", `{"name": "json"}`)
	writeFile(t, dir, "domkit.yaml", "name: yaml\n")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Name != "yaml" {
		t.Errorf("Name = %q, want yaml", cfg.Name)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		wantCode string
	}{
		{"missing", "", "", "E100"},
		{"bad yaml", "domkit.yaml", "dev:\n  port: [\n", "E101"},
		{"bad json", "domkit.json", "{", "E101"},
		{"bad port", "domkit.yaml", "dev:\n  port: 70000\n", "E102"},
		{"bad route", "domkit.yaml", "defaultRoute: login\n", "E103"},
		{"bad level", "domkit.yaml", "log:\n  level: loud\n", "E106"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.file != "" {
				writeFile(t, dir, tt.file, tt.content)
			}
			_, err := Load(dir)
			if got := errorCode(err); got != tt.wantCode {
				t.Errorf("error = %v (code %q), want %s", err, got, tt.wantCode)
			}
		})
	}
}

func TestLoadFileUnsupportedExtension(t *testing.T) {
	path := writeFile(t, t.TempDir(), "domkit.toml", "name = 'x'")
	if _, err := LoadFile(path); errorCode(err) != "E104" {
		t.Errorf("error = %v, want E104", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"domkit.yaml", "domkit.json"} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			cfg := New()
			cfg.Name = "saved"
			cfg.Publish.Bucket = "b"

			if err := cfg.SaveTo(filepath.Join(dir, name)); err != nil {
				t.Fatalf("SaveTo() error = %v", err)
			}
			loaded, err := Load(dir)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if loaded.Name != "saved" || loaded.Publish.Bucket != "b" {
				t.Errorf("loaded = %+v", loaded)
			}

			loaded.Title = "changed"
			if err := loaded.Save(); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			again, _ := Load(dir)
			if again.Title != "changed" {
				t.Errorf("Title = %q after Save", again.Title)
			}
		})
	}
}

func TestSaveWithoutPath(t *testing.T) {
	if err := New().Save(); errorCode(err) != "E105" {
		t.Errorf("Save() error = %v, want E105", err)
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "domkit.yaml", "name: x\n")
	nested := filepath.Join(root, "app", "views")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	got, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("FindProjectRoot() error = %v", err)
	}
	want, _ := filepath.Abs(root)
	if got != want {
		t.Errorf("FindProjectRoot() = %q, want %q", got, want)
	}
}

func TestYAMLErrorLine(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "domkit.yaml", "name: x\ndev:\n  port: 3000\n port: 1\n")
	_, err := Load(dir)

	var de *errors.DomkitError
	if !errors.As(err, &de) {
		t.Fatalf("error = %v, want DomkitError", err)
	}
	if de.Location == nil || de.Location.Line == 0 {
		t.Errorf("Location = %+v, want a line number", de.Location)
	}
}
