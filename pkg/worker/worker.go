package worker

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Worker is one execution unit of a task queue. It runs at most one function
// at a time on its own goroutine.
//
// Available and TryAssign form the contract consumed by the queue's
// scheduler; Close belongs to whoever created the worker and must not be
// called while an assigner is active.
type Worker interface {
	// Available reports whether the worker is idle and accepting work.
	Available() bool

	// TryAssign atomically moves the worker from idle to busy and starts
	// asynchronous execution of fn. It returns false, consuming nothing,
	// if the worker is busy or closed at call time.
	TryAssign(fn func()) bool

	// Close stops the worker. Any run already in flight finishes first;
	// Close returns once the worker's goroutine has exited.
	Close()
}

// Factory creates the workers backing a queue. The id is the worker's slot
// index, fixed for the lifetime of the queue.
type Factory func(id int) Worker

// SlotFactory is the default Factory, producing goroutine-backed Slots.
func SlotFactory(id int) Worker {
	return NewSlot(id)
}

// Slot is the default Worker: a single goroutine fed by a one-entry channel,
// with an atomic busy flag that makes the idle-to-busy transition a single
// compare-and-swap.
type Slot struct {
	id   int
	busy atomic.Bool

	mu     sync.Mutex // serializes assignment sends against Close
	closed atomic.Bool

	in   chan func()
	done chan struct{}
}

// NewSlot creates a Slot and starts its goroutine.
func NewSlot(id int) *Slot {
	s := &Slot{
		id:   id,
		in:   make(chan func(), 1),
		done: make(chan struct{}),
	}
	go s.loop()
	return s
}

func (s *Slot) loop() {
	defer close(s.done)
	for fn := range s.in {
		fn()
		s.busy.Store(false)
	}
}

// Available reports whether the slot is idle and not closed.
func (s *Slot) Available() bool {
	return !s.closed.Load() && !s.busy.Load()
}

// TryAssign claims the slot for fn. Exactly one caller wins when several
// race; losers get false and fn is left untouched.
func (s *Slot) TryAssign(fn func()) bool {
	if fn == nil {
		return false
	}
	if !s.busy.CompareAndSwap(false, true) {
		return false
	}
	s.mu.Lock()
	if s.closed.Load() {
		s.mu.Unlock()
		s.busy.Store(false)
		return false
	}
	// busy was false, so the goroutine has drained any previous entry and
	// the buffered send cannot block.
	s.in <- fn
	s.mu.Unlock()
	return true
}

// Close stops the slot and waits for its goroutine to exit. Idempotent.
func (s *Slot) Close() {
	s.mu.Lock()
	if !s.closed.CompareAndSwap(false, true) {
		s.mu.Unlock()
		return
	}
	close(s.in)
	s.mu.Unlock()
	<-s.done
	zap.S().Named("worker").Debugw("slot closed", "slot", s.id)
}
