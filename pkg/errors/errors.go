// Package errors defines the typed errors surfaced by the task queue.
package errors

import (
	stderrors "errors"
	"fmt"
)

// InvalidConcurrencyError is returned when a queue is constructed with a
// concurrency level that cannot be satisfied. Zero is not invalid: it means
// "unset" and resolves to the host parallelism at construction time.
type InvalidConcurrencyError struct {
	Concurrency int
}

// NewInvalidConcurrencyError creates a new InvalidConcurrencyError.
func NewInvalidConcurrencyError(concurrency int) *InvalidConcurrencyError {
	return &InvalidConcurrencyError{Concurrency: concurrency}
}

func (e *InvalidConcurrencyError) Error() string {
	return fmt.Sprintf("invalid concurrency %d: must be zero (host default) or positive", e.Concurrency)
}

// IsInvalidConcurrencyError reports whether err is, or wraps, an
// InvalidConcurrencyError.
func IsInvalidConcurrencyError(err error) bool {
	var target *InvalidConcurrencyError
	return stderrors.As(err, &target)
}
