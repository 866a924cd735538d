package ripple

// Scheduler defers a callback by a number of logical frames. The contract is
// cooperative and single-threaded: "scheduling" queues the callback on an
// ordered timeline, it never offloads to another goroutine.
//
// A non-nil sub makes the action cancelable: once sub is disposed the
// callback is never invoked. A nil sub schedules unconditionally.
type Scheduler interface {
	Schedule(fn func(), delayFrames int, sub *Disposable)
}
