package ripple

// Teardown is a cleanup action registered on a Disposable.
type Teardown func()

// Disposable is a composable, idempotent cancellation token. It owns an
// ordered list of teardowns (plain callbacks or nested disposables) that run
// exactly once, in insertion order, when it is disposed.
type Disposable struct {
	active    bool
	disposing bool
	teardowns []Teardown
}

// NewDisposable creates an active disposable holding the given teardowns.
func NewDisposable(teardowns ...Teardown) *Disposable {
	return &Disposable{active: true, teardowns: teardowns}
}

// Active reports whether Dispose has not completed yet.
func (d *Disposable) Active() bool {
	return d.active
}

// Add registers a teardown to run on disposal. If the disposable is already
// inactive the teardown runs immediately instead of being stored.
func (d *Disposable) Add(teardown Teardown) {
	if !d.active {
		teardown()
		return
	}
	d.teardowns = append(d.teardowns, teardown)
}

// AddChild registers a nested disposable, torn down along with this one.
func (d *Disposable) AddChild(child *Disposable) {
	d.Add(child.Dispose)
}

// Dispose runs every registered teardown in insertion order, propagating into
// nested disposables, then marks the disposable inactive. Calling Dispose
// again, including re-entrantly from within a teardown it triggered, is a
// no-op. Teardowns registered while disposal is running still run, after the
// ones already registered.
func (d *Disposable) Dispose() {
	if !d.active || d.disposing {
		return
	}
	d.disposing = true

	// indexed loop: teardowns may append more teardowns mid-disposal
	for i := 0; i < len(d.teardowns); i++ {
		d.teardowns[i]()
	}
	d.teardowns = nil
	d.active = false
}
