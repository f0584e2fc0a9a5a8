package taskqueue

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/queueworks/taskqueue/pkg/worker"
)

// Queue distributes tasks across a fixed pool of workers. Tasks wait in FIFO
// order, at most Concurrency of them run at once, and callers can block on
// Wait until everything submitted has finished.
//
// All methods are safe for concurrent use. Only Wait blocks.
type Queue struct {
	id  uuid.UUID
	log *zap.SugaredLogger

	mu         sync.Mutex
	waiting    waitlist[Task]
	hasWaiting atomic.Bool

	workers  []worker.Worker
	running  atomic.Int64
	inflight sync.WaitGroup

	doneMu sync.Mutex
	done   *sync.Cond

	active    atomic.Bool
	wake      chan struct{}
	stop      chan struct{}
	schedDone chan struct{}
	closeOnce sync.Once
}

// New creates a Queue, spawns its workers and its background scheduler, and
// returns it ready to accept tasks.
func New(opts ...ConfigOption) (*Queue, error) {
	cfg := NewConfigWithOptionsAndDefaults(opts...)
	if err := cfg.resolve(); err != nil {
		return nil, err
	}

	q := &Queue{
		id:        uuid.New(),
		wake:      make(chan struct{}, 1),
		stop:      make(chan struct{}),
		schedDone: make(chan struct{}),
	}
	q.log = zap.S().Named(cfg.Name).With("queue", q.id)
	q.done = sync.NewCond(&q.doneMu)

	q.workers = make([]worker.Worker, 0, cfg.Concurrency)
	for i := range cfg.Concurrency {
		q.workers = append(q.workers, cfg.WorkerFactory(i))
	}

	q.active.Store(true)
	go q.runScheduler()

	q.log.Infow("queue started", "config", cfg.DebugMap())
	return q, nil
}

// Enqueue adds t to the back of the waiting queue. It never blocks on task
// execution. Nil tasks and tasks submitted after Close are dropped with a
// warning.
func (q *Queue) Enqueue(t Task) {
	if t == nil {
		q.log.Warnw("nil task dropped")
		return
	}
	q.mu.Lock()
	if !q.active.Load() {
		q.mu.Unlock()
		q.log.Warnw("task dropped: queue is closed")
		return
	}
	q.waiting.PushBack(t)
	q.hasWaiting.Store(true)
	q.mu.Unlock()
	q.wakeScheduler()
}

// EnqueueAll adds tasks in the given order: ts[0] dispatches first among the
// batch.
func (q *Queue) EnqueueAll(ts ...Task) {
	kept := make([]Task, 0, len(ts))
	for _, t := range ts {
		if t == nil {
			q.log.Warnw("nil task dropped")
			continue
		}
		kept = append(kept, t)
	}
	if len(kept) == 0 {
		return
	}
	q.mu.Lock()
	if !q.active.Load() {
		q.mu.Unlock()
		q.log.Warnw("tasks dropped: queue is closed", "count", len(kept))
		return
	}
	q.waiting.PushBackAll(kept...)
	q.hasWaiting.Store(true)
	q.mu.Unlock()
	q.wakeScheduler()
}

// EnqueueFunc wraps fn via Func, enqueues it, and returns the handle that
// TryRemove can match while the task is still waiting. It returns nil for a
// nil fn.
func (q *Queue) EnqueueFunc(fn func()) Task {
	if fn == nil {
		q.log.Warnw("nil task dropped")
		return nil
	}
	t := Func(fn)
	q.Enqueue(t)
	return t
}

// TryRemove removes the first waiting task equal to t. It returns false when
// t is absent, already dispatched, nil, or of an uncomparable type.
func (q *Queue) TryRemove(t Task) bool {
	if t == nil {
		return false
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	removed := q.waiting.RemoveFirst(func(w Task) bool { return tasksMatch(w, t) })
	q.hasWaiting.Store(q.waiting.Len() > 0)
	if removed {
		// a removal can drain the queue
		q.wakeScheduler()
	}
	return removed
}

// Clear discards every waiting task. Tasks already running are unaffected.
func (q *Queue) Clear() {
	q.mu.Lock()
	n := q.waiting.Len()
	q.waiting.Clear()
	q.hasWaiting.Store(false)
	q.mu.Unlock()
	if n > 0 {
		q.log.Debugw("waiting tasks discarded", "count", n)
	}
	q.wakeScheduler()
}

// Concurrency returns the number of worker slots.
func (q *Queue) Concurrency() int {
	return len(q.workers)
}

// Empty reports whether no tasks are waiting. It reads a lock-free hint that
// trails the exact state by at most one scheduler step; use Waiting for the
// exact count.
func (q *Queue) Empty() bool {
	return !q.hasWaiting.Load()
}

// Waiting returns the exact number of waiting tasks.
func (q *Queue) Waiting() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.waiting.Len()
}

// Running returns the number of tasks currently executing.
func (q *Queue) Running() int {
	return int(q.running.Load())
}

// Busy reports whether every worker slot is occupied.
func (q *Queue) Busy() bool {
	return q.Running() >= q.Concurrency()
}

// Complete reports whether nothing is waiting and nothing is running.
func (q *Queue) Complete() bool {
	return q.isComplete()
}

func (q *Queue) isComplete() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.waiting.Len() == 0 && q.running.Load() == 0
}

// Wait blocks until the queue is complete: no waiting tasks and no running
// tasks. It returns immediately on an already-drained queue and carries no
// timeout of its own.
func (q *Queue) Wait() {
	q.doneMu.Lock()
	defer q.doneMu.Unlock()
	for !q.isComplete() {
		q.done.Wait()
	}
}

// Close discards all waiting tasks and shuts the queue down: the scheduler
// goroutine exits, in-flight tasks run to completion, and every worker slot
// is joined. Close is idempotent. After it returns the queue owns no
// goroutines, and any concurrent or later Wait returns.
func (q *Queue) Close() {
	q.closeOnce.Do(func() {
		q.active.Store(false)
		q.Clear()
		close(q.stop)
		<-q.schedDone
		q.inflight.Wait()
		for _, w := range q.workers {
			w.Close()
		}
		q.doneMu.Lock()
		q.done.Broadcast()
		q.doneMu.Unlock()
		q.log.Infow("queue closed")
	})
}
