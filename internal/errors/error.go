package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Category groups error codes by the subsystem that reports them.
type Category string

const (
	CategoryConfig  Category = "config"
	CategoryCLI     Category = "cli"
	CategoryBuild   Category = "build"
	CategoryPublish Category = "publish"
)

// Location is a position in a file.
type Location struct {
	File   string `json:"file"`
	Line   int    `json:"line,omitempty"`
	Column int    `json:"column,omitempty"`
}

// String returns file, file:line or file:line:column.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	switch {
	case l.Line <= 0:
		return l.File
	case l.Column > 0:
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	default:
		return fmt.Sprintf("%s:%d", l.File, l.Line)
	}
}

// DomkitError is a coded error with an explanation and a fix hint.
type DomkitError struct {
	// Code is the registry key, e.g. "E100".
	Code string

	Category Category

	// Message is a short description of the error.
	Message string

	// Detail explains this occurrence.
	Detail string

	// Location is the file the error refers to, if any.
	Location *Location

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL links to documentation for the code.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *DomkitError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *DomkitError) Unwrap() error {
	return e.Wrapped
}

// WithLocation points the error at file. Zero line and column mean the
// whole file.
func (e *DomkitError) WithLocation(file string, line, column int) *DomkitError {
	e.Location = &Location{File: file, Line: line, Column: column}
	return e
}

// WithLocationFromOutput takes the location from the first line of Go
// toolchain output that looks like "file.go:line:col: message".
func (e *DomkitError) WithLocationFromOutput(output string) *DomkitError {
	for _, line := range strings.Split(output, "\n") {
		parts := strings.SplitN(strings.TrimSpace(line), ":", 4)
		if len(parts) < 3 || !strings.HasSuffix(parts[0], ".go") {
			continue
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil || n <= 0 {
			continue
		}
		col, _ := strconv.Atoi(parts[2])
		e.Location = &Location{File: parts[0], Line: n, Column: col}
		return e
	}
	return e
}

// WithSuggestion adds a fix suggestion.
func (e *DomkitError) WithSuggestion(s string) *DomkitError {
	e.Suggestion = s
	return e
}

// WithDetail replaces the template's detail.
func (e *DomkitError) WithDetail(d string) *DomkitError {
	e.Detail = d
	return e
}

// Wrap records the underlying cause.
func (e *DomkitError) Wrap(err error) *DomkitError {
	e.Wrapped = err
	return e
}

// New creates a DomkitError from a registered code.
func New(code string) *DomkitError {
	template, ok := registry[code]
	if !ok {
		return &DomkitError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &DomkitError{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Detail:     template.Detail,
		Suggestion: template.Suggestion,
		DocURL:     template.DocURL,
	}
}

// Newf creates an uncoded error with a formatted message.
func Newf(category Category, format string, args ...any) *DomkitError {
	return &DomkitError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError returns err itself if it is already a *DomkitError, and
// otherwise wraps it in the template for code.
func FromError(err error, code string) *DomkitError {
	if err == nil {
		return nil
	}
	var de *DomkitError
	if As(err, &de) {
		return de
	}
	return New(code).Wrap(err)
}
