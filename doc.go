// Package ripple is a push-based reactive event-stream core: Sources deliver
// typed Event sequences to Sinks, each bound to a Disposable cancellation
// tree. Delivery is synchronous push; deferral goes through a Scheduler.
//
// The rippletest package provides a deterministic virtual-time Scheduler and
// replay sources for testing stream timing.
package ripple
