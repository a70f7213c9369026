package tccruntime

import (
	"sync/atomic"

	"github.com/wippyai/tcc-runtime/errors"
)

// engineBusy is the process-wide flag behind the Guard. The engine keeps
// global mutable state (default library paths, symbol tables), so only
// one session may exist per process at any instant.
var engineBusy atomic.Bool

// Guard proves that no other compilation session is active in this
// process. Hold one to open a Context; release it when the session is
// over. Guards are not shareable between sessions.
type Guard struct {
	released atomic.Bool
	borrowed atomic.Bool // an unconsumed Context holds the guard
}

// Acquire claims engine exclusivity. It never blocks: when another Guard
// is live it fails immediately with a conflict error, leaving retry
// policy to the caller.
func Acquire() (*Guard, error) {
	if !engineBusy.CompareAndSwap(false, true) {
		return nil, errors.Conflict("another compilation session is active in this process")
	}
	Logger().Debug("engine guard acquired")
	return &Guard{}, nil
}

// Release restores engine availability. It has no failure mode and is
// idempotent; after Release a new Acquire always succeeds.
func (g *Guard) Release() {
	if !g.released.CompareAndSwap(false, true) {
		return
	}
	engineBusy.Store(false)
	Logger().Debug("engine guard released")
}

// borrow marks the guard as held by an open Context. The borrow is
// exclusive: a second Context may only be opened after the first has been
// consumed or closed.
func (g *Guard) borrow() error {
	if g.released.Load() {
		panic("tccruntime: Open on a released Guard")
	}
	if !g.borrowed.CompareAndSwap(false, true) {
		return errors.Conflict("a Context is already open against this Guard")
	}
	return nil
}

func (g *Guard) unborrow() {
	g.borrowed.Store(false)
}
