package concurrent

import (
	"sync"
)

// JobFunc maps one job of a batch to its result.
type JobFunc[T any, G any] func(job T) G

// WorkerPool fans a fixed batch of jobs out over numWorkers goroutines and
// collects one result per job. the result channel capacity must cover the
// whole batch, otherwise workers block before Wait returns. usage: Start,
// AddJob every job, Close, Wait, then range over CollectResults.
type WorkerPool[T any, G any] struct {
	numWorkers int
	jobQueue   chan T
	results    chan G
	wg         sync.WaitGroup
}

func NewWorkerPool[T any, G any](numWorkers, jobQueueSize int) *WorkerPool[T, G] {
	return &WorkerPool[T, G]{
		numWorkers: numWorkers,
		jobQueue:   make(chan T, jobQueueSize),
		results:    make(chan G, jobQueueSize),
	}
}

func (wp *WorkerPool[T, G]) worker(jobFunc JobFunc[T, G]) {
	defer wp.wg.Done()
	for job := range wp.jobQueue {
		wp.results <- jobFunc(job)
	}
}

// Start launches the workers. call it before queueing more jobs than the
// job queue can buffer.
func (wp *WorkerPool[T, G]) Start(jobFunc JobFunc[T, G]) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(jobFunc)
	}
}

// AddJob enqueues one job, blocking when the job queue is full.
func (wp *WorkerPool[T, G]) AddJob(job T) {
	wp.jobQueue <- job
}

// Close marks the batch complete. no AddJob after Close.
func (wp *WorkerPool[T, G]) Close() {
	close(wp.jobQueue)
}

// Wait blocks until the workers drained the job queue, then closes the
// result channel so CollectResults can be ranged to exhaustion.
func (wp *WorkerPool[T, G]) Wait() {
	wp.wg.Wait()
	close(wp.results)
}

func (wp *WorkerPool[T, G]) CollectResults() chan G {
	return wp.results
}
