package taskqueue

import (
	"github.com/sourcegraph/conc/panics"
)

// executor runs one task on a worker slot and reports its completion back to
// the queue. The report is deferred so it fires exactly once on every path,
// panicking tasks included.
type executor struct {
	q    *Queue
	task Task
}

// run is the function handed to a worker slot.
func (e *executor) run() {
	defer e.q.taskDone()

	var catcher panics.Catcher
	catcher.Try(e.task.Run)
	if recovered := catcher.Recovered(); recovered != nil {
		e.q.log.Errorw("task panicked",
			"panic", recovered.Value,
			"stack", string(recovered.Stack),
		)
	}
}

// taskDone retires a running task: it releases the running slot and the
// teardown latch, then wakes the scheduler so the next dispatch or the
// completion broadcast follows immediately.
//
// The running count must drop before the wake is sent; the scheduler reads
// it on the pass that consumes the wake.
func (q *Queue) taskDone() {
	q.running.Add(-1)
	q.inflight.Done()
	q.wakeScheduler()
}
