package taskqueue

import (
	"k8s.io/apimachinery/pkg/util/wait"

	"github.com/queueworks/taskqueue/pkg/worker"
)

// runScheduler is the queue's background loop. wait.Until re-enters pass
// until the stop channel closes; each pass parks on the wake channel, so a
// quiet queue consumes no CPU.
func (q *Queue) runScheduler() {
	defer close(q.schedDone)
	wait.Until(q.pass, 0, q.stop)
}

// pass handles one wake-up: move waiting tasks onto idle workers, then
// announce completion if the system drained.
func (q *Queue) pass() {
	select {
	case <-q.wake:
		q.dispatch()
		q.announceIfComplete()
		if !q.Empty() && !q.Busy() {
			// a completion report reaches the queue before the worker
			// flips back to idle, and the idle flip emits no signal;
			// re-arm so the task at the front is picked up then
			q.wakeScheduler()
		}
	case <-q.stop:
	}
}

// wakeScheduler nudges the background loop. The buffered channel coalesces
// bursts: a pending wake already guarantees a future pass.
func (q *Queue) wakeScheduler() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// dispatch moves tasks from the waitlist onto idle workers, oldest task
// first, lowest slot first. It stops once the waitlist empties or no idle
// worker remains.
func (q *Queue) dispatch() {
	for _, w := range q.workers {
		if !w.Available() {
			continue
		}
		if !q.assignNext(w) {
			return
		}
	}
}

// assignNext offers the front task to w. It reports whether dispatch should
// keep scanning: false once the waitlist is empty or w refused the task.
//
// The running count and the teardown latch are raised before TryAssign and
// rolled back on refusal; raising them afterwards would race a fast executor
// that completes before the bookkeeping exists.
func (q *Queue) assignNext(w worker.Worker) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.waiting.Len() == 0 {
		q.hasWaiting.Store(false)
		return false
	}

	e := &executor{q: q, task: q.waiting.Front()}

	q.running.Add(1)
	q.inflight.Add(1)
	if !w.TryAssign(e.run) {
		q.running.Add(-1)
		q.inflight.Done()
		// the task stays at the front; retry on the next pass
		q.wakeScheduler()
		return false
	}

	q.waiting.PopFront()
	q.hasWaiting.Store(q.waiting.Len() > 0)
	q.log.Debugw("task dispatched", "waiting", q.waiting.Len(), "running", q.running.Load())
	return true
}

// announceIfComplete broadcasts to Wait callers once nothing is waiting and
// nothing is running. The predicate is re-verified under the cond mutex so a
// waiter between its own check and its park cannot miss the broadcast.
func (q *Queue) announceIfComplete() {
	if q.running.Load() != 0 {
		return
	}
	q.doneMu.Lock()
	defer q.doneMu.Unlock()
	if q.isComplete() {
		q.done.Broadcast()
	}
}
