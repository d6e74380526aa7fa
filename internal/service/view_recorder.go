package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"post-query-service/internal/logger"
	"post-query-service/internal/metrics"
	"post-query-service/internal/repository"
)

const (
	// DefaultViewRecordTimeout bounds a single counter write.
	DefaultViewRecordTimeout = 5 * time.Second
)

// ViewRecorder persists view-count increments through a worker pool so
// the read path never waits on the write. Records are best-effort: a
// full queue drops the record and a failed write is only logged.
type ViewRecorder struct {
	posts   repository.PostRepository
	timeout time.Duration

	queue    chan string
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewViewRecorder creates a ViewRecorder with workerCount workers and a
// bounded queue.
func NewViewRecorder(posts repository.PostRepository, workerCount, queueSize int) *ViewRecorder {
	r := &ViewRecorder{
		posts:    posts,
		timeout:  DefaultViewRecordTimeout,
		queue:    make(chan string, queueSize),
		stopChan: make(chan struct{}),
	}

	for i := 0; i < workerCount; i++ {
		r.wg.Add(1)
		go r.worker()
	}
	return r
}

func (r *ViewRecorder) worker() {
	defer r.wg.Done()

	for {
		select {
		case id := <-r.queue:
			metrics.ViewQueueDepth.Set(float64(len(r.queue)))
			r.record(id)
		case <-r.stopChan:
			r.drain()
			return
		}
	}
}

// drain writes out whatever is still queued at shutdown.
func (r *ViewRecorder) drain() {
	for {
		select {
		case id := <-r.queue:
			metrics.ViewQueueDepth.Set(float64(len(r.queue)))
			r.record(id)
		default:
			return
		}
	}
}

// Record enqueues a view increment without blocking the caller. Records
// arriving after Close are dropped.
func (r *ViewRecorder) Record(id string) {
	select {
	case <-r.stopChan:
		metrics.ViewRecordsTotal.WithLabelValues("dropped").Inc()
		logger.Warn("View recorder closed, dropping record",
			slog.String("post_id", id))
		return
	default:
	}

	select {
	case r.queue <- id:
		metrics.ViewQueueDepth.Set(float64(len(r.queue)))
	default:
		metrics.ViewRecordsTotal.WithLabelValues("dropped").Inc()
		logger.Warn("View record queue full, dropping record",
			slog.String("post_id", id))
	}
}

func (r *ViewRecorder) record(id string) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.posts.IncrementViews(ctx, id); err != nil {
		metrics.ViewRecordsTotal.WithLabelValues("error").Inc()
		logger.Error("Failed to record view",
			slog.String("post_id", id),
			slog.String("error", err.Error()))
		return
	}
	metrics.ViewRecordsTotal.WithLabelValues("success").Inc()
}

// Close shuts down the worker pool after the queued records are written.
// The queue channel itself is never closed, so a Record racing Close
// drops the record instead of panicking.
func (r *ViewRecorder) Close() {
	close(r.stopChan)
	r.wg.Wait()
}
