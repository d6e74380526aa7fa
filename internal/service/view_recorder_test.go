package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"post-query-service/internal/metrics"
	"post-query-service/internal/mocks"
	"post-query-service/internal/service"
)

func TestViewRecorder_Record(t *testing.T) {
	t.Run("persists each queued record", func(t *testing.T) {
		mockPosts := mocks.NewMockPostRepository(t)

		var mu sync.Mutex
		seen := make(map[string]int)
		done := make(chan struct{}, 3)

		mockPosts.EXPECT().
			IncrementViews(mock.Anything, mock.AnythingOfType("string")).
			Run(func(ctx context.Context, id string) {
				mu.Lock()
				seen[id]++
				mu.Unlock()
				done <- struct{}{}
			}).
			Return(nil)

		recorder := service.NewViewRecorder(mockPosts, 2, 16)
		defer recorder.Close()

		recorder.Record("post-1")
		recorder.Record("post-2")
		recorder.Record("post-1")

		for i := 0; i < 3; i++ {
			select {
			case <-done:
			case <-time.After(2 * time.Second):
				t.Fatal("timed out waiting for view records")
			}
		}

		mu.Lock()
		defer mu.Unlock()
		if seen["post-1"] != 2 || seen["post-2"] != 1 {
			t.Fatalf("unexpected record counts: %v", seen)
		}
	})

	t.Run("drops records when the queue is full", func(t *testing.T) {
		mockPosts := mocks.NewMockPostRepository(t)

		release := make(chan struct{})
		started := make(chan struct{}, 4)

		mockPosts.EXPECT().
			IncrementViews(mock.Anything, mock.AnythingOfType("string")).
			Run(func(ctx context.Context, id string) {
				started <- struct{}{}
				<-release
			}).
			Return(nil).
			Maybe()

		recorder := service.NewViewRecorder(mockPosts, 1, 1)

		// First record occupies the single worker; second fills the queue.
		recorder.Record("post-1")
		<-started
		recorder.Record("post-2")

		// Must not block even though nothing can drain the queue.
		doneRecording := make(chan struct{})
		go func() {
			recorder.Record("post-3")
			close(doneRecording)
		}()

		select {
		case <-doneRecording:
		case <-time.After(2 * time.Second):
			t.Fatal("Record blocked on a full queue")
		}

		close(release)
		recorder.Close()
	})

	t.Run("a failed write does not stop the workers", func(t *testing.T) {
		mockPosts := mocks.NewMockPostRepository(t)

		done := make(chan struct{}, 2)
		mockPosts.EXPECT().
			IncrementViews(mock.Anything, "bad").
			Run(func(ctx context.Context, id string) { done <- struct{}{} }).
			Return(errors.New("connection reset"))
		mockPosts.EXPECT().
			IncrementViews(mock.Anything, "good").
			Run(func(ctx context.Context, id string) { done <- struct{}{} }).
			Return(nil)

		recorder := service.NewViewRecorder(mockPosts, 1, 16)
		defer recorder.Close()

		recorder.Record("bad")
		recorder.Record("good")

		for i := 0; i < 2; i++ {
			select {
			case <-done:
			case <-time.After(2 * time.Second):
				t.Fatal("timed out waiting for view records")
			}
		}
	})
}

func TestViewRecorder_Close(t *testing.T) {
	t.Run("returns promptly with idle workers", func(t *testing.T) {
		mockPosts := mocks.NewMockPostRepository(t)

		recorder := service.NewViewRecorder(mockPosts, 2, 16)

		closed := make(chan struct{})
		go func() {
			recorder.Close()
			close(closed)
		}()

		select {
		case <-closed:
		case <-time.After(2 * time.Second):
			t.Fatal("Close did not return")
		}
	})

	t.Run("writes out queued records before stopping", func(t *testing.T) {
		mockPosts := mocks.NewMockPostRepository(t)

		var mu sync.Mutex
		var persisted []string
		mockPosts.EXPECT().
			IncrementViews(mock.Anything, mock.AnythingOfType("string")).
			Run(func(ctx context.Context, id string) {
				mu.Lock()
				persisted = append(persisted, id)
				mu.Unlock()
			}).
			Return(nil)

		recorder := service.NewViewRecorder(mockPosts, 1, 16)
		recorder.Record("post-1")
		recorder.Record("post-2")

		recorder.Close()

		mu.Lock()
		defer mu.Unlock()
		if len(persisted) != 2 {
			t.Fatalf("expected 2 persisted records after Close, got %v", persisted)
		}
	})

	t.Run("record after close drops without panicking", func(t *testing.T) {
		mockPosts := mocks.NewMockPostRepository(t)

		recorder := service.NewViewRecorder(mockPosts, 1, 16)
		recorder.Close()

		// Must not send on any channel the shutdown tore down.
		recorder.Record("post-1")

		mockPosts.AssertNotCalled(t, "IncrementViews", mock.Anything, mock.Anything)
	})
}

func TestViewRecorder_QueueDepthGauge(t *testing.T) {
	mockPosts := mocks.NewMockPostRepository(t)

	done := make(chan struct{})
	mockPosts.EXPECT().
		IncrementViews(mock.Anything, "post-1").
		Run(func(ctx context.Context, id string) { close(done) }).
		Return(nil)

	recorder := service.NewViewRecorder(mockPosts, 1, 16)
	defer recorder.Close()

	recorder.Record("post-1")

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for view record")
	}

	// The worker resets the gauge on dequeue, before the write.
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.ViewQueueDepth))
}
