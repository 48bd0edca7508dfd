// Package vango holds the runtime primitives vango-ui components are built
// on: owner scopes with guaranteed cleanup, typed context values carried
// down the owner tree, a single-goroutine event loop, and cancellable
// timers that fire back onto that loop.
//
// # Ownership
//
// Every mounted component gets an Owner that is a child of its parent's
// Owner. Resources acquired by the component register a cleanup with
// OnCleanup; disposing an Owner disposes its children (last created first)
// and then runs its own cleanups in reverse registration order. Disposing a
// session's root Owner therefore releases everything the session acquired.
//
// # Loop and timers
//
// Component state is only touched from one goroutine. Work that originates
// elsewhere (timers, I/O) is handed back with Dispatcher.Dispatch:
//
//	sched := vango.NewScheduler(loop)
//	cancel := sched.AfterFunc(150*time.Millisecond, func() {
//	    // runs on the loop
//	})
//	defer cancel()
package vango
