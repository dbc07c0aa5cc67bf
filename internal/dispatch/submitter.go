package dispatch

import (
	"context"
	"sync"
	"time"
)

// Submitter abstracts the host's deferred-execution capability behind a single
// "submit background work" call. Implementations decide where and when the
// task runs; the task receives a context it should respect for its own budget.
type Submitter interface {
	Submit(task func(ctx context.Context))
}

// Tracked runs each task in its own goroutine registered on a WaitGroup.
// This is the strongest capability level: work submitted before shutdown can
// be drained to completion.
type Tracked struct {
	wg sync.WaitGroup
}

// NewTracked creates a Tracked submitter.
func NewTracked() *Tracked {
	return &Tracked{}
}

func (s *Tracked) Submit(task func(ctx context.Context)) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		task(context.Background())
	}()
}

// Drain blocks until all submitted tasks finish or the grace period expires.
// Returns false if the grace period expired with tasks still running.
func (s *Tracked) Drain(grace time.Duration) bool {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-time.After(grace):
		return false
	}
}

// Detached runs tasks in plain goroutines. The process may exit or be recycled
// before a task finishes; no completion guarantee is offered.
type Detached struct{}

func (Detached) Submit(task func(ctx context.Context)) {
	go task(context.Background())
}

// Sync runs tasks inline on the submitting goroutine, for hosts with no
// deferred-execution primitive at all. The caller's response latency then
// includes the task's full duration.
type Sync struct{}

func (Sync) Submit(task func(ctx context.Context)) {
	task(context.Background())
}

// FromMode maps a configured mode name to a submitter. Unknown or empty modes
// fall back to tracked, the strongest level.
func FromMode(mode string) Submitter {
	switch mode {
	case "detached":
		return Detached{}
	case "sync":
		return Sync{}
	default:
		return NewTracked()
	}
}
