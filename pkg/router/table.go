package router

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/domkit-dev/domkit/pkg/dom"
)

// DefaultPath is the path used when the fragment is empty.
const DefaultPath = "/"

var (
	// ErrNoFallback is returned when the fallback path has no view.
	ErrNoFallback = errors.New("router: fallback path is not registered")

	// ErrDuplicateRoute is returned when two keys normalize to the same path.
	ErrDuplicateRoute = errors.New("router: duplicate route")

	// ErrNilView is returned for a route without a view.
	ErrNilView = errors.New("router: nil view")
)

// View builds a complete, detached element tree for one page.
type View func() dom.Node

// Table is an immutable mapping from path to view.
type Table struct {
	routes   map[string]View
	fallback string
}

// NewTable copies routes into a new table. Keys are normalized; fallback
// names the route rendered for unmatched paths.
func NewTable(routes map[string]View, fallback string) (*Table, error) {
	t := &Table{
		routes:   make(map[string]View, len(routes)),
		fallback: Normalize(fallback),
	}

	for raw, view := range routes {
		path := Normalize(raw)
		if view == nil {
			return nil, fmt.Errorf("%w: %s", ErrNilView, path)
		}
		if _, exists := t.routes[path]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRoute, path)
		}
		t.routes[path] = view
	}

	if _, ok := t.routes[t.fallback]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoFallback, t.fallback)
	}
	return t, nil
}

// MustTable is like NewTable but panics on error.
func MustTable(routes map[string]View, fallback string) *Table {
	t, err := NewTable(routes, fallback)
	if err != nil {
		panic(err)
	}
	return t
}

// Resolve returns the view for path, or the fallback view. route is the
// table key that was used; ok is false when the fallback was substituted.
func (t *Table) Resolve(path string) (view View, route string, ok bool) {
	path = Normalize(path)
	if v, found := t.routes[path]; found {
		return v, path, true
	}
	return t.routes[t.fallback], t.fallback, false
}

// Has reports whether path has its own view.
func (t *Table) Has(path string) bool {
	_, ok := t.routes[Normalize(path)]
	return ok
}

// Fallback returns the fallback path.
func (t *Table) Fallback() string {
	return t.fallback
}

// Paths returns the registered paths in sorted order.
func (t *Table) Paths() []string {
	paths := make([]string, 0, len(t.routes))
	for p := range t.routes {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Len returns the number of routes.
func (t *Table) Len() int {
	return len(t.routes)
}

// Normalize turns a fragment or path into a table key: the leading "#" is
// stripped, any query string or nested fragment is dropped, and a leading
// "/" is ensured. An empty result becomes DefaultPath. Matching is exact, so
// trailing slashes are kept.
func Normalize(raw string) string {
	path := strings.TrimPrefix(raw, "#")
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return DefaultPath
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}
