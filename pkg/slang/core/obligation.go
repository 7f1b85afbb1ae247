package core

import (
	"runtime"
	"sync"
	"sync/atomic"
	"weak"
)

// Obligation is a single-use completion handle. It starts pending; Fulfill
// marks it done. A handle that becomes unreachable while still pending is a
// miss and is reported with the error given to Require.
type Obligation struct {
	miss error
	done atomic.Bool
}

var (
	regMu   sync.Mutex
	pending = map[weak.Pointer[Obligation]]struct{}{}
	handler func(error)
)

// Require records a pending obligation whose miss surfaces err.
func Require(err error) *Obligation {
	o := &Obligation{miss: err}
	wp := weak.Make(o)
	regMu.Lock()
	pending[wp] = struct{}{}
	regMu.Unlock()
	runtime.SetFinalizer(o, func(o *Obligation) {
		regMu.Lock()
		delete(pending, wp)
		regMu.Unlock()
		if !o.done.Load() {
			report(o.miss)
		}
	})
	return o
}

// Fulfill marks the obligation done. Idempotent, safe on a nil receiver.
func (o *Obligation) Fulfill() {
	if o == nil {
		return
	}
	o.done.Store(true)
}

// Fulfilled reports whether Fulfill has been called.
func (o *Obligation) Fulfilled() bool {
	return o != nil && o.done.Load()
}

// SetMissHandler installs the process-wide handler invoked for missed
// obligations. A nil handler restores the default, which panics with the
// miss error from whichever goroutine detected the miss.
func SetMissHandler(h func(error)) {
	regMu.Lock()
	handler = h
	regMu.Unlock()
}

func report(err error) {
	regMu.Lock()
	h := handler
	regMu.Unlock()
	if h != nil {
		h(err)
		return
	}
	panic(err)
}

// Settle sweeps every obligation still pending, reports each miss and marks
// it done, then returns the miss errors. It is the deterministic alternative
// to waiting for the garbage collector, intended for turn boundaries and
// tests. Already-fulfilled or already-collected entries are dropped silently.
func Settle() []error {
	regMu.Lock()
	wps := make([]weak.Pointer[Obligation], 0, len(pending))
	for wp := range pending {
		wps = append(wps, wp)
	}
	clear(pending)
	regMu.Unlock()

	var missed []error
	for _, wp := range wps {
		o := wp.Value()
		if o == nil || o.done.Swap(true) {
			continue
		}
		missed = append(missed, o.miss)
		report(o.miss)
	}
	return missed
}
