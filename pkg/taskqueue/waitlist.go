package taskqueue

// waitlist is the FIFO buffer of tasks awaiting dispatch. It is a plain
// slice arena: every method assumes the caller holds the owning Queue's
// mutex, which lets the submission paths compose without re-entrant locking.
type waitlist[T any] []T

func (wl *waitlist[T]) Len() int { return len(*wl) }

// Front returns the oldest element without removing it.
func (wl *waitlist[T]) Front() T {
	return (*wl)[0]
}

// PopFront removes and returns the oldest element.
func (wl *waitlist[T]) PopFront() T {
	old := *wl
	x := old[0]
	*wl = old[1:]
	return x
}

func (wl *waitlist[T]) PushBack(t T) {
	*wl = append(*wl, t)
}

// PushBackAll appends ts preserving their relative order.
func (wl *waitlist[T]) PushBackAll(ts ...T) {
	*wl = append(*wl, ts...)
}

// Clear discards every element.
func (wl *waitlist[T]) Clear() {
	*wl = nil
}

// RemoveFirst removes the first element for which match returns true,
// keeping the order of the rest. It reports whether anything was removed.
func (wl *waitlist[T]) RemoveFirst(match func(T) bool) bool {
	for i, t := range *wl {
		if match(t) {
			*wl = append((*wl)[:i], (*wl)[i+1:]...)
			return true
		}
	}
	return false
}
