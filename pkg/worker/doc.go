// Package worker provides the execution slots underneath a task queue.
//
// A Worker is a single-occupancy execution unit: it is either idle or
// running exactly one function. The default implementation, Slot, pins one
// goroutine per worker and hands it work over a one-entry channel, so an
// assignment never blocks the caller.
//
// State machine of a Slot:
//
//	           TryAssign (CAS wins)
//	  ┌──────┐ ──────────────────────▶ ┌──────┐
//	  │ idle │                         │ busy │
//	  └──────┘ ◀────────────────────── └──────┘
//	      │       fn returned              │
//	      │ Close                          │ Close (after fn)
//	      ▼                                ▼
//	  ┌────────────────────────────────────────┐
//	  │                 closed                 │
//	  └────────────────────────────────────────┘
//
// The idle-to-busy transition is a single compare-and-swap, which is what
// lets many schedulers probe the same pool of workers concurrently: for any
// one idle worker exactly one TryAssign call wins.
//
// Custom Worker implementations can be injected into a queue through its
// WorkerFactory option, which is how tests exercise assignment refusal and
// how callers could bridge to an external execution substrate.
package worker
