package build

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/domkit-dev/domkit/internal/config"
	"github.com/domkit-dev/domkit/internal/errors"
	"github.com/domkit-dev/domkit/internal/site"
)

// ManifestFile is written to the root of every build.
const ManifestFile = "manifest.json"

// WasmFile is the name of the compiled application.
const WasmFile = "app.wasm"

// Result describes a finished build.
type Result struct {
	Duration time.Duration

	// Output is the build directory.
	Output string

	// WasmSize is the size of app.wasm in bytes.
	WasmSize int64

	// Pages lists the pre-rendered files, relative to Output.
	Pages []string

	// Manifest maps every output file to its SHA-256.
	Manifest map[string]string
}

// Options configures the builder.
type Options struct {
	// Boot starts the application for pre-rendering. Nil skips pre-rendering.
	Boot site.Boot

	LDFlags string
	Tags    []string

	// LiveReload adds the dev server's reload client to every page.
	LiveReload bool

	// SkipWasm reuses the existing app.wasm and only re-renders pages.
	SkipWasm bool

	Logger *slog.Logger

	// OnProgress is called with progress updates.
	OnProgress func(step string)
}

// runFunc runs a command and returns its combined output.
type runFunc func(ctx context.Context, dir string, env []string, name string, args ...string) (string, error)

// Builder handles site builds.
type Builder struct {
	config  *config.Config
	options Options
	run     runFunc
}

// New creates a builder. Options left empty fall back to cfg.
func New(cfg *config.Config, options Options) *Builder {
	if options.LDFlags == "" {
		options.LDFlags = cfg.Build.LDFlags
	}
	if len(options.Tags) == 0 {
		options.Tags = cfg.Build.Tags
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}
	return &Builder{
		config:  cfg,
		options: options,
		run:     runCommand,
	}
}

// Build performs a full build into the configured output directory.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	start := time.Now()
	out := b.config.OutputPath()
	result := &Result{Output: out}

	if err := os.MkdirAll(out, 0755); err != nil {
		return nil, errors.New("E163").Wrap(err).WithLocation(out, 0, 0)
	}

	if !b.options.SkipWasm {
		b.progress("Compiling WebAssembly...")
		if err := b.compileWasm(ctx, filepath.Join(out, WasmFile)); err != nil {
			return nil, err
		}

		b.progress("Copying wasm_exec.js...")
		if err := b.copyWasmExec(ctx, out); err != nil {
			return nil, err
		}
	}
	if info, err := os.Stat(filepath.Join(out, WasmFile)); err == nil {
		result.WasmSize = info.Size()
	}

	if b.options.Boot != nil {
		b.progress("Pre-rendering pages...")
		pages, err := site.Prerender(ctx, b.options.Boot, site.Options{
			Title:         b.config.Title,
			WasmFile:      WasmFile,
			LiveReload:    b.options.LiveReload,
			NotFoundRoute: b.config.DefaultRoute,
			Logger:        b.options.Logger,
		})
		if err != nil {
			return nil, err
		}
		if err := site.Write(out, pages); err != nil {
			return nil, err
		}
		for _, p := range pages {
			result.Pages = append(result.Pages, p.File)
		}
	}

	b.progress("Writing manifest...")
	manifest, err := hashTree(out)
	if err != nil {
		return nil, errors.New("E163").Wrap(err)
	}
	if err := writeManifest(out, manifest); err != nil {
		return nil, errors.New("E163").Wrap(err)
	}
	result.Manifest = manifest
	result.Duration = time.Since(start)

	b.options.Logger.Info("build complete",
		"output", out,
		"pages", len(result.Pages),
		"wasm_bytes", result.WasmSize,
		"duration", result.Duration.Round(time.Millisecond),
	)
	return result, nil
}

func (b *Builder) wasmArgs(output string) []string {
	args := []string{"build", "-o", output, "-trimpath"}
	if b.options.LDFlags != "" {
		args = append(args, "-ldflags", b.options.LDFlags)
	}
	if len(b.options.Tags) > 0 {
		args = append(args, "-tags", strings.Join(b.options.Tags, ","))
	}
	return append(args, b.config.AppPath())
}

func (b *Builder) compileWasm(ctx context.Context, output string) error {
	env := append(os.Environ(), "GOOS=js", "GOARCH=wasm", "CGO_ENABLED=0")
	out, err := b.run(ctx, b.config.Dir(), env, "go", b.wasmArgs(output)...)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return errors.New("E143").Wrap(err)
		}
		return errors.New("E160").
			WithDetail(strings.TrimSpace(out)).
			WithLocationFromOutput(out).
			Wrap(err)
	}
	return nil
}

// wasmExecCandidates are the locations of wasm_exec.js relative to GOROOT,
// newest layout first.
var wasmExecCandidates = []string{
	filepath.Join("lib", "wasm", "wasm_exec.js"),
	filepath.Join("misc", "wasm", "wasm_exec.js"),
}

func (b *Builder) copyWasmExec(ctx context.Context, out string) error {
	goroot, err := b.run(ctx, b.config.Dir(), os.Environ(), "go", "env", "GOROOT")
	if err != nil {
		return errors.New("E161").Wrap(err)
	}
	src, err := FindWasmExec(strings.TrimSpace(goroot))
	if err != nil {
		return err
	}
	if err := copyFile(src, filepath.Join(out, "wasm_exec.js")); err != nil {
		return errors.New("E163").Wrap(err)
	}
	return nil
}

// FindWasmExec locates wasm_exec.js in a Go installation.
func FindWasmExec(goroot string) (string, error) {
	for _, rel := range wasmExecCandidates {
		p := filepath.Join(goroot, rel)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", errors.New("E161").WithDetail("searched " + goroot + " for lib/wasm and misc/wasm")
}

func (b *Builder) progress(step string) {
	if b.options.OnProgress != nil {
		b.options.OnProgress(step)
	}
}

// Clean removes the build output directory.
func (b *Builder) Clean() error {
	return os.RemoveAll(b.config.OutputPath())
}

func runCommand(ctx context.Context, dir string, env []string, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = env

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	err := cmd.Run()
	return buf.String(), err
}

// hashTree returns the SHA-256 of every file under dir except the manifest,
// keyed by slash-separated relative path.
func hashTree(dir string) (map[string]string, error) {
	manifest := make(map[string]string)
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == ManifestFile {
			return nil
		}
		sum, err := hashFile(path)
		if err != nil {
			return err
		}
		manifest[rel] = sum
		return nil
	})
	return manifest, err
}

func writeManifest(dir string, manifest map[string]string) error {
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, ManifestFile), append(data, '\n'), 0644)
}

// ReadManifest loads the manifest of a previous build.
func ReadManifest(dir string) (map[string]string, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, err
	}
	manifest := make(map[string]string)
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, err
	}
	return manifest, nil
}

// SortedFiles returns the manifest's files in order.
func SortedFiles(manifest map[string]string) []string {
	files := make([]string, 0, len(manifest))
	for f := range manifest {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
