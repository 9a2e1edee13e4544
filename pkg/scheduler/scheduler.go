package scheduler

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Work is a unit of work run by a worker. The context stays live after the
// work returns; it is cancelled when the future is stopped, when Wait has
// delivered the result, or when the scheduler is closed.
type Work[T any] func(ctx context.Context) (T, error)

type Result[T any] struct {
	Data T
	Err  error
}

type workRequest struct {
	fn     Work[any]
	c      chan Result[any]
	ctx    context.Context
	cancel context.CancelFunc
}

func (r workRequest) run() (result Result[any]) {
	defer func() {
		if p := recover(); p != nil {
			zap.S().Named("scheduler").Errorw("work panicked", "panic", p)
			result = Result[any]{Err: fmt.Errorf("worker panicked: %v", p)}
		}
	}()

	v, err := r.fn(r.ctx)
	return Result[any]{Data: v, Err: err}
}

// Scheduler runs work on a fixed number of workers. Work is started in the
// order it was added.
type Scheduler struct {
	mu      sync.Mutex
	pending queue[workRequest]
	idle    int
	closed  bool
	running sync.WaitGroup

	mainCtx    context.Context
	mainCancel context.CancelFunc
}

func NewScheduler(nbWorkers int) *Scheduler {
	if nbWorkers < 1 {
		nbWorkers = 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		idle:       nbWorkers,
		mainCtx:    ctx,
		mainCancel: cancel,
	}
}

// AddWork queues w and returns its future. Work added after Close resolves
// immediately with context.Canceled.
func (s *Scheduler) AddWork(w Work[any]) *Future[Result[any]] {
	c := make(chan Result[any], 1)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		c <- Result[any]{Err: context.Canceled}
		return newFuture(c, func() {})
	}

	ctx, cancel := context.WithCancel(s.mainCtx)
	s.pending.Push(workRequest{fn: w, c: c, ctx: ctx, cancel: cancel})

	if s.idle > 0 {
		s.idle--
		s.running.Add(1)
		go s.work()
	}

	return newFuture(c, cancel)
}

// Close cancels all work, resolves queued work with context.Canceled and
// waits for running work to return.
func (s *Scheduler) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mainCancel()
	for s.pending.Len() > 0 {
		r := s.pending.Pop()
		r.cancel()
		r.c <- Result[any]{Err: context.Canceled}
	}
	s.mu.Unlock()

	s.running.Wait()
}

// work runs queued requests until the queue is empty.
func (s *Scheduler) work() {
	defer s.running.Done()

	for {
		s.mu.Lock()
		if s.closed || s.pending.Len() == 0 {
			s.idle++
			s.mu.Unlock()
			return
		}
		r := s.pending.Pop()
		s.mu.Unlock()

		r.c <- r.run()
	}
}
