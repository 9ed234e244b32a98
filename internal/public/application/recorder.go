package application

import (
	"context"
	"log"
	"sync"
	"time"
)

// Recorder runs best-effort writes whose outcome never reaches the caller.
type Recorder interface {
	Record(name string, write func(ctx context.Context) error)
}

// AsyncRecorder runs each write on its own goroutine with a bounded timeout
// and logs failures.
type AsyncRecorder struct {
	logger  *log.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewAsyncRecorder returns a recorder for production use.
func NewAsyncRecorder(logger *log.Logger, timeout time.Duration) *AsyncRecorder {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &AsyncRecorder{logger: logger, timeout: timeout}
}

// Record schedules write and returns immediately.
func (r *AsyncRecorder) Record(name string, write func(ctx context.Context) error) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()
		if err := write(ctx); err != nil && r.logger != nil {
			r.logger.Printf("record %s failed: %v", name, err)
		}
	}()
}

// Wait blocks until every scheduled write has finished. Called on shutdown.
func (r *AsyncRecorder) Wait() {
	r.wg.Wait()
}

// InlineRecorder runs writes synchronously and keeps their errors. Used by
// tests and by the seed command.
type InlineRecorder struct {
	mu     sync.Mutex
	Names  []string
	Errors []error
}

// Record runs write before returning.
func (r *InlineRecorder) Record(name string, write func(ctx context.Context) error) {
	err := write(context.Background())
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Names = append(r.Names, name)
	if err != nil {
		r.Errors = append(r.Errors, err)
	}
}
