// Package signal provides the reactive value primitive used by domkit views.
//
// A Signal holds a single value and a list of subscribers. Setting a value
// that is not identical to the current one notifies every subscriber
// synchronously, in registration order, before Set returns:
//
//	count := signal.New(0)
//	stop := count.Subscribe(func() {
//	    fmt.Println("count is now", count.Get())
//	})
//	count.Set(1) // prints "count is now 1"
//	count.Set(1) // identical, nothing happens
//	stop()
//
// Identity is strict and never structural: two distinct slices with the same
// elements are different values, NaN is identical to NaN, and +0 is not
// identical to -0.
package signal
