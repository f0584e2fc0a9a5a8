package taskqueue

import "reflect"

// Task is one unit of work: invoked once, no arguments, no result. A task
// that needs to report failure does so through its own channels; the queue
// only tracks execution.
//
// Implementations with a comparable dynamic type (pointer receivers,
// comparable structs) can later be matched by TryRemove. Bare closures have
// no identity; wrap them with Func when removal matters.
type Task interface {
	Run()
}

// TaskFunc adapts an ordinary function to the Task interface.
//
// Function values are not comparable in Go, so a TaskFunc can never be
// matched by TryRemove.
type TaskFunc func()

// Run invokes the function.
func (f TaskFunc) Run() { f() }

// funcTask carries a closure behind a pointer so the resulting Task has an
// identity the queue can match on removal.
type funcTask struct {
	fn func()
}

func (t *funcTask) Run() { t.fn() }

// Func wraps fn in a Task comparable by identity: the exact value returned
// here, and only that value, matches it in TryRemove.
func Func(fn func()) Task {
	return &funcTask{fn: fn}
}

// tasksMatch reports whether a and b are the same task for removal purposes:
// identical dynamic types, a comparable type, equal values. Uncomparable
// tasks never match and never panic; that includes values of a comparable
// dynamic type carrying an uncomparable element, such as a struct with an
// interface field holding a func, where only the comparison itself can tell.
func tasksMatch(a, b Task) (matched bool) {
	if a == nil || b == nil {
		return a == b
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	defer func() {
		if recover() != nil {
			matched = false
		}
	}()
	return a == b
}
