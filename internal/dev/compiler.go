package dev

import (
	"context"
	"sync"
	"time"

	"github.com/domkit-dev/domkit/internal/build"
	"github.com/domkit-dev/domkit/internal/errors"
)

// Builder produces the site the dev server serves.
type Builder interface {
	Build(ctx context.Context) (*build.Result, error)
}

// BuildResult contains the result of a build.
type BuildResult struct {
	// Success indicates if the build succeeded.
	Success bool `json:"success"`

	// Duration is how long the build took.
	Duration time.Duration `json:"duration"`

	// Output is the error report shown in the browser overlay.
	Output string `json:"output,omitempty"`

	// Pages is the number of pre-rendered pages.
	Pages int `json:"pages"`

	// Error is the build error, if any.
	Error error `json:"-"`
}

// Compiler runs one build at a time and remembers the latest result.
type Compiler struct {
	builder Builder

	buildMu sync.Mutex

	mu   sync.RWMutex
	last BuildResult
}

// NewCompiler wraps builder.
func NewCompiler(builder Builder) *Compiler {
	return &Compiler{builder: builder}
}

// Build runs a build, waiting for any build already in progress.
func (c *Compiler) Build(ctx context.Context) BuildResult {
	c.buildMu.Lock()
	defer c.buildMu.Unlock()

	start := time.Now()
	res, err := c.builder.Build(ctx)

	result := BuildResult{Success: err == nil, Duration: time.Since(start), Error: err}
	if err != nil {
		result.Output = report(err)
	} else if res != nil {
		result.Pages = len(res.Pages)
	}

	c.mu.Lock()
	c.last = result
	c.mu.Unlock()
	return result
}

// Last returns the result of the most recent build.
func (c *Compiler) Last() BuildResult {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.last
}

func report(err error) string {
	var de *errors.DomkitError
	if !errors.As(err, &de) {
		return err.Error()
	}
	out := de.FormatCompact()
	if de.Detail != "" {
		out += "\n\n" + de.Detail
	}
	return out
}
