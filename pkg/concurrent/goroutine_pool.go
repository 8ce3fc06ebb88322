package concurrent

import (
	"errors"
	"time"
)

// ErrScheduleTimeout is returned by ScheduleTimeout when no worker picked
// the task up before the deadline.
var ErrScheduleTimeout = errors.New("schedule error: timed out")

// GoroutinePool runs short lived tasks on a bounded set of reusable
// goroutines, so a flood of connections cannot grow an unbounded number of
// goroutine stacks. workers are started lazily on demand up to size, or
// eagerly with Spawn.
// ref: https://sergey.kamardin.org/articles/million-websocket-and-go/
type GoroutinePool struct {
	sem  chan struct{}
	work chan func()
}

// NewGoroutinePool creates a pool of at most size workers with queue
// pending tasks allowed to wait for a free one.
func NewGoroutinePool(size, queue int) *GoroutinePool {
	return &GoroutinePool{
		sem:  make(chan struct{}, size),
		work: make(chan func(), queue),
	}
}

// Spawn starts up to n idle workers eagerly, capped at the pool size.
func (p *GoroutinePool) Spawn(n int) {
	if n > cap(p.sem) {
		n = cap(p.sem)
	}
	for i := 0; i < n; i++ {
		p.sem <- struct{}{}
		go p.worker(nil)
	}
}

// Schedule blocks until a worker picks the task up or a new worker slot
// frees up.
func (p *GoroutinePool) Schedule(task func()) {
	p.schedule(task, nil)
}

// ScheduleTimeout gives up with ErrScheduleTimeout when the pool is
// saturated for the whole timeout.
func (p *GoroutinePool) ScheduleTimeout(timeout time.Duration, task func()) error {
	return p.schedule(task, time.After(timeout))
}

func (p *GoroutinePool) schedule(task func(), deadline <-chan time.Time) error {
	select {
	case p.work <- task:
		return nil
	case p.sem <- struct{}{}:
		go p.worker(task)
		return nil
	case <-deadline:
		return ErrScheduleTimeout
	}
}

func (p *GoroutinePool) worker(task func()) {
	defer func() { <-p.sem }()

	if task != nil {
		task()
	}
	for task := range p.work {
		task()
	}
}

// Close stops the workers once the pending queue drains. no Schedule after
// Close.
func (p *GoroutinePool) Close() {
	close(p.work)
}
