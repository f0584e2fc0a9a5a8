package taskqueue

import (
	"runtime"

	qErrors "github.com/queueworks/taskqueue/pkg/errors"
	"github.com/queueworks/taskqueue/pkg/worker"
)

//go:generate go run github.com/ecordell/optgen -output zz_generated.options.go . Config

// Config holds the construction-time settings of a Queue.
type Config struct {
	// Concurrency is the number of worker slots. Zero resolves to one slot
	// per logical CPU; negative values are rejected by New.
	Concurrency int `debugmap:"visible"`

	// Name labels the queue's logger output. Purely diagnostic.
	Name string `default:"taskqueue" debugmap:"visible"`

	// WorkerFactory builds the queue's workers. Nil selects the default
	// goroutine-backed slots.
	WorkerFactory worker.Factory `debugmap:"hidden"`
}

// resolve validates the config and fills the runtime-dependent defaults that
// struct tags cannot express.
func (c *Config) resolve() error {
	if c.Concurrency < 0 {
		return qErrors.NewInvalidConcurrencyError(c.Concurrency)
	}
	if c.Concurrency == 0 {
		c.Concurrency = runtime.NumCPU()
	}
	if c.WorkerFactory == nil {
		c.WorkerFactory = worker.SlotFactory
	}
	return nil
}
