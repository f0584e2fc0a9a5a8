package taskqueue_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/queueworks/taskqueue/pkg/taskqueue"
	"github.com/queueworks/taskqueue/pkg/worker"
)

var _ = Describe("Config", func() {
	It("should apply defaults and options", func() {
		cfg := taskqueue.NewConfigWithOptionsAndDefaults(
			taskqueue.WithConcurrency(4),
		)
		Expect(cfg.Concurrency).To(Equal(4))
		Expect(cfg.Name).To(Equal("taskqueue"))
	})

	It("should let options override defaults", func() {
		cfg := taskqueue.NewConfigWithOptionsAndDefaults(
			taskqueue.WithName("thumbnailer"),
		)
		Expect(cfg.Name).To(Equal("thumbnailer"))
	})

	It("should round-trip through ToOption", func() {
		cfg := taskqueue.NewConfigWithOptionsAndDefaults(
			taskqueue.WithConcurrency(8),
			taskqueue.WithName("indexer"),
		)
		clone := taskqueue.NewConfigWithOptions(cfg.ToOption())
		Expect(clone.Concurrency).To(Equal(8))
		Expect(clone.Name).To(Equal("indexer"))
	})

	It("should hide the worker factory from the debug map", func() {
		cfg := taskqueue.NewConfigWithOptionsAndDefaults(
			taskqueue.WithWorkerFactory(worker.SlotFactory),
		)
		m := cfg.DebugMap()
		Expect(m).To(HaveKey("Concurrency"))
		Expect(m).To(HaveKey("Name"))
		Expect(m).NotTo(HaveKey("WorkerFactory"))
	})
})
