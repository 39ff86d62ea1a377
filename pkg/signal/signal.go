package signal

import (
	"fmt"
	"sync"
	"sync/atomic"
)

var lastID atomic.Uint64

// Unsubscribe removes a single subscription. Calling it more than once is
// harmless.
type Unsubscribe func()

// subscriber is one registration. The same func may be registered several
// times; each registration gets its own id.
type subscriber struct {
	id uint64
	fn func()
}

// Bindable is the type-erased view of a Signal used by text bindings.
type Bindable interface {
	fmt.Stringer
	Subscribe(fn func()) Unsubscribe
}

var _ Bindable = (*Signal[int])(nil)

// Signal is a reactive value container.
type Signal[T any] struct {
	// value is the current signal value.
	value T

	// version counts stored changes; Update uses it to detect a racing write.
	version uint64

	// subs are kept in registration order.
	subs []subscriber

	// mu protects value and subs.
	mu sync.RWMutex

	// equal reports whether two values are identical. If nil, uses Identical.
	equal func(T, T) bool
}

// New creates a new signal with the given initial value.
func New[T any](initial T) *Signal[T] {
	return &Signal[T]{value: initial}
}

// Get returns the current value.
func (s *Signal[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set stores value and notifies subscribers if it is not identical to the
// current value.
func (s *Signal[T]) Set(value T) {
	s.mu.Lock()
	if s.equals(s.value, value) {
		s.mu.Unlock()
		return
	}
	s.value = value
	s.version++
	subs := s.snapshot()
	s.mu.Unlock()

	notify(subs)
}

// Update atomically reads and updates the signal's value.
// The function receives the current value and returns the new value. fn runs
// without the lock held, so it may call Get or Set; if another write lands
// while fn runs, fn is called again with the newer value.
func (s *Signal[T]) Update(fn func(T) T) {
	for {
		s.mu.RLock()
		cur, seen := s.value, s.version
		s.mu.RUnlock()

		next := fn(cur)

		s.mu.Lock()
		if s.version != seen {
			s.mu.Unlock()
			continue
		}
		if s.equals(s.value, next) {
			s.mu.Unlock()
			return
		}
		s.value = next
		s.version++
		subs := s.snapshot()
		s.mu.Unlock()

		notify(subs)
		return
	}
}

// Subscribe registers fn to be called after every change. The returned
// Unsubscribe removes exactly this registration.
func (s *Signal[T]) Subscribe(fn func()) Unsubscribe {
	if fn == nil {
		return func() {}
	}

	id := lastID.Add(1)
	s.mu.Lock()
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { s.unsubscribe(id) })
	}
}

// String returns the current value formatted with fmt.Sprint.
func (s *Signal[T]) String() string {
	return fmt.Sprint(s.Get())
}

// Subscribers returns the number of live registrations.
func (s *Signal[T]) Subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}

// WithEquals returns the signal configured with a custom identity function.
func (s *Signal[T]) WithEquals(fn func(T, T) bool) *Signal[T] {
	s.mu.Lock()
	s.equal = fn
	s.mu.Unlock()
	return s
}

func (s *Signal[T]) unsubscribe(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sub := range s.subs {
		if sub.id == id {
			// Order matters for notification, so shift rather than swap.
			s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
			return
		}
	}
}

// snapshot copies the subscriber list. Must be called with mu held.
func (s *Signal[T]) snapshot() []subscriber {
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	return subs
}

func (s *Signal[T]) equals(a, b T) bool {
	if s.equal != nil {
		return s.equal(a, b)
	}
	return Identical(a, b)
}

// notify runs outside the lock so subscribers can read, write and
// (un)subscribe freely.
func notify(subs []subscriber) {
	for _, sub := range subs {
		sub.fn()
	}
}
