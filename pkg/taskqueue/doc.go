// Package taskqueue implements a concurrent work queue with a fixed degree
// of parallelism.
//
// Tasks are zero-argument units of work. They wait in strict FIFO order, a
// background scheduler moves them onto idle worker slots, at most
// Concurrency of them run at once, and callers can block on Wait until
// everything submitted has finished.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────────┐
//	│                               Queue                                 │
//	│                                                                     │
//	│  ┌──────────────┐      ┌──────────────┐      ┌──────────────┐       │
//	│  │    Slot 0    │      │    Slot 1    │      │   Slot N-1   │       │
//	│  └──────────────┘      └──────────────┘      └──────────────┘       │
//	│         ▲                     ▲                     ▲               │
//	│         │                     │                     │               │
//	│         └─────────────────────┼─────────────────────┘               │
//	│                               │ TryAssign(executor)                 │
//	│                        ┌──────┴──────┐                              │
//	│                        │  scheduler  │◀──── wake ────┐              │
//	│                        └──────┬──────┘               │              │
//	│                               │ PopFront             │              │
//	│  ┌────────────────────────────┴────────────────────┐ │              │
//	│  │                    waitlist                     │ │              │
//	│  │  [task1] [task2] [task3] ...                    │ │              │
//	│  └─────────────────────────────────────────────────┘ │              │
//	│                               ▲                      │              │
//	│                               │                      │              │
//	│           Enqueue / EnqueueAll / EnqueueFunc ────────┘              │
//	└─────────────────────────────────────────────────────────────────────┘
//
// # Core Components
//
// Queue:
//   - Owns the waitlist, the worker slots, and the scheduler goroutine
//   - Accepts tasks without ever blocking on their execution
//   - Answers Empty/Waiting/Running/Busy/Complete from any goroutine
//   - Supports graceful shutdown via Close()
//
// scheduler:
//   - One goroutine for the queue's lifetime
//   - Parks on a wake signal; consumes no CPU while the queue is quiet
//   - Dispatches oldest task first, lowest idle slot first
//   - Broadcasts completion when the system drains
//
// executor:
//   - Wraps one task for one worker slot
//   - Recovers task panics so the slot and the process survive
//   - Reports completion exactly once, on every path
//
// # Dispatch Flow
//
//  1. Client calls Enqueue(task)
//     │
//     ▼
//  2. Task appended to the waitlist (FIFO), wake signal sent
//     │
//     ▼
//  3. Scheduler pass scans slots in index order:
//     - Skips busy slots
//     - Offers the front task to the first idle slot
//     │
//     ▼
//  4. Slot accepts: task popped, running count raised,
//     executor runs on the slot's goroutine
//     │
//     ▼
//  5. Task returns (or panics; the executor recovers):
//     - Running count dropped
//     - Scheduler woken for the next dispatch
//     │
//     ▼
//  6. Nothing waiting and nothing running:
//     scheduler broadcasts, Wait callers return
//
// # Wake Signals
//
// The scheduler does not poll while the queue is quiet. Every state change
// that could unblock progress sends a non-blocking signal on a one-slot
// channel: task submission, task completion, removal, clear, and close.
// Signals coalesce; one pending wake already guarantees a future pass, and
// each pass drains every idle slot it can. A burst of a thousand enqueues
// may collapse into a handful of passes without a single lost dispatch.
//
// One transition emits no signal: a worker's return to idle, which happens
// some time after the completed task reported in. A pass that still sees
// the worker busy therefore re-arms itself whenever a task is waiting and a
// slot could yet free up, and keeps re-checking until the slot accepts.
//
// # Completion Synchronization
//
// Wait blocks until the queue is complete: zero waiting tasks and zero
// running tasks. The predicate is re-checked under the condition's mutex on
// both sides, so a waiter can never park after the final broadcast was sent.
// Wait carries no timeout; a task that blocks forever blocks Wait forever.
//
// # Task Identity and Removal
//
// TryRemove unqueues the first waiting task equal to its argument. Equality
// requires the same comparable dynamic type; bare closures have no identity,
// so wrap them with Func (or submit through EnqueueFunc) to obtain a
// removable handle:
//
//	handle := q.EnqueueFunc(expensiveRefresh)
//	...
//	if q.TryRemove(handle) {
//	    // the refresh never started and never will
//	}
//
// A task that was already dispatched cannot be removed; TryRemove returns
// false and the task runs to completion.
//
// # Usage
//
//	q, err := taskqueue.New(
//	    taskqueue.WithConcurrency(4),
//	    taskqueue.WithName("thumbnailer"),
//	)
//	if err != nil {
//	    return err
//	}
//	defer q.Close()
//
//	for _, img := range images {
//	    q.Enqueue(taskqueue.TaskFunc(func() { render(img) }))
//	}
//	q.Wait()
//
// Concurrency defaults to the number of logical CPUs. Custom Worker
// implementations can be injected with WithWorkerFactory; see pkg/worker.
//
// # Shutdown
//
// Close discards all waiting tasks, stops the scheduler, lets in-flight
// tasks finish, joins every worker goroutine, and releases all Wait callers.
// It is idempotent. Submissions after Close are dropped with a warning;
// queries remain safe forever.
package taskqueue
