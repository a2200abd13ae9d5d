package jobs

import (
	"context"
	"fmt"
	"sync"

	"github.com/finbrief/finbrief-backend/internal/logger"
)

// Runner spawns named fire-and-forget units of work. There is no return
// channel to the caller: once handed off, a task's only side effects go
// through whatever shared state the task function closes over. Panics are
// recovered and reported to the task as an error so a task's finalizer can
// still run its state transition.
type Runner struct {
	log *logger.Logger
	wg  sync.WaitGroup
}

func NewRunner(baseLog *logger.Logger) *Runner {
	return &Runner{log: baseLog.With("component", "JobRunner")}
}

// Go hands fn off to a new goroutine. fn receives a fresh background
// context: the spawning request's context ends when the request returns,
// and the task must outlive it.
func (r *Runner) Go(name string, fn func(ctx context.Context) error) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		err := runRecovered(fn)
		if err != nil {
			r.log.Error("Background task failed", "task", name, "error", err)
			return
		}
		r.log.Debug("Background task finished", "task", name)
	}()
}

func runRecovered(fn func(ctx context.Context) error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()
	return fn(context.Background())
}

// Wait blocks until every spawned task has finished. Used on shutdown and
// in tests.
func (r *Runner) Wait() {
	r.wg.Wait()
}
