package el

import (
	"sync"
	"sync/atomic"
)

// Scope owns the signal subscriptions and event listeners created while it
// is the builder's current scope. Disposing the scope releases all of them,
// which is how a discarded page stops receiving signal updates.
type Scope struct {
	mu       sync.Mutex
	cleanups []func()
	disposed atomic.Bool
}

// NewScope creates an empty scope.
func NewScope() *Scope {
	return &Scope{}
}

// OnCleanup registers fn to run on Dispose. On a disposed scope fn runs
// immediately.
func (s *Scope) OnCleanup(fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	if s.disposed.Load() {
		s.mu.Unlock()
		fn()
		return
	}
	s.cleanups = append(s.cleanups, fn)
	s.mu.Unlock()
}

// Len returns the number of pending cleanups.
func (s *Scope) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cleanups)
}

// IsDisposed reports whether Dispose has run.
func (s *Scope) IsDisposed() bool {
	return s.disposed.Load()
}

// Dispose runs the registered cleanups in reverse order and returns how
// many ran. Subsequent calls return 0.
func (s *Scope) Dispose() int {
	s.mu.Lock()
	if s.disposed.Swap(true) {
		s.mu.Unlock()
		return 0
	}
	cleanups := s.cleanups
	s.cleanups = nil
	s.mu.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
	return len(cleanups)
}
