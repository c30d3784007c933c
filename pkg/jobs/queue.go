package jobs

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Job is a unit of background work.
type Job struct {
	ID   string
	Name string
	Run  func(ctx context.Context) error
}

// Queue dispatches jobs to a fixed pool of workers.
type Queue struct {
	jobs    chan Job
	wg      sync.WaitGroup
	log     *zap.Logger
	cancel  context.CancelFunc
	started bool
	mu      sync.Mutex
}

// NewQueue creates a queue with the given buffer size.
func NewQueue(size int, log *zap.Logger) *Queue {
	if size <= 0 {
		size = 64
	}
	return &Queue{
		jobs: make(chan Job, size),
		log:  log,
	}
}

// Start launches the worker pool.
func (q *Queue) Start(workers int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.started {
		return
	}
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	q.cancel = cancel
	q.started = true

	for i := 0; i < workers; i++ {
		q.wg.Add(1)
		go q.worker(ctx, i)
	}
}

func (q *Queue) worker(ctx context.Context, id int) {
	defer q.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-q.jobs:
			if !ok {
				return
			}
			start := time.Now()
			q.log.Info("job started",
				zap.Int("worker", id),
				zap.String("jobId", job.ID),
				zap.String("jobName", job.Name),
			)
			if err := job.Run(ctx); err != nil {
				q.log.Error("job failed",
					zap.String("jobId", job.ID),
					zap.String("jobName", job.Name),
					zap.Duration("elapsed", time.Since(start)),
					zap.Error(err),
				)
				continue
			}
			q.log.Info("job finished",
				zap.String("jobId", job.ID),
				zap.String("jobName", job.Name),
				zap.Duration("elapsed", time.Since(start)),
			)
		}
	}
}

// Enqueue submits a job. Returns false when the queue is full.
func (q *Queue) Enqueue(job Job) bool {
	select {
	case q.jobs <- job:
		return true
	default:
		q.log.Warn("job queue full, rejecting job",
			zap.String("jobId", job.ID),
			zap.String("jobName", job.Name),
		)
		return false
	}
}

// Stop drains the queue and waits for in-flight jobs.
func (q *Queue) Stop() {
	q.mu.Lock()
	if !q.started {
		q.mu.Unlock()
		return
	}
	q.started = false
	close(q.jobs)
	q.mu.Unlock()

	q.wg.Wait()
	if q.cancel != nil {
		q.cancel()
	}
}
