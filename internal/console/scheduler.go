package console

import (
	"sync"

	"go.uber.org/zap"

	"commandkit/pkg/platform"
)

// Scheduler runs dispatched tasks for the console host. Sync tasks execute
// inline on the REPL goroutine; async tasks run in their own goroutine and
// are tracked so shutdown can wait for them.
type Scheduler struct {
	wg  sync.WaitGroup
	log *zap.Logger
}

// NewScheduler creates a Scheduler. The logger may be nil.
func NewScheduler(log *zap.Logger) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{log: log}
}

// RunSync executes the task in the calling goroutine and blocks.
func (s *Scheduler) RunSync(task platform.Task) {
	task()
}

// RunAsync executes the task in a separate goroutine and returns immediately.
func (s *Scheduler) RunAsync(task platform.Task) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.log.Debug("async task started")
		task()
		s.log.Debug("async task finished")
	}()
}

// Wait blocks until all async tasks have completed.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}
