package usecase

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

// scopeLocks hands out one binary semaphore per capacity scope so conflicting
// mutations serialize per scope while different scopes proceed concurrently.
// Acquisition is bounded; waiting past the timeout is the caller's retryable
// lock-timeout condition. Entries live for the process lifetime, bounded by
// the number of distinct scopes.
type scopeLocks struct {
	mu   sync.Mutex
	sems map[string]*semaphore.Weighted
}

func newScopeLocks() *scopeLocks {
	return &scopeLocks{sems: make(map[string]*semaphore.Weighted)}
}

func (l *scopeLocks) get(key string) *semaphore.Weighted {
	l.mu.Lock()
	defer l.mu.Unlock()
	sem, ok := l.sems[key]
	if !ok {
		sem = semaphore.NewWeighted(1)
		l.sems[key] = sem
	}
	return sem
}

// acquire blocks until the scope lock is held or the timeout elapses. The
// returned release func must be called exactly once.
func (l *scopeLocks) acquire(ctx context.Context, key string, timeout time.Duration) (func(), error) {
	sem := l.get(key)

	acquireCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := sem.Acquire(acquireCtx, 1); err != nil {
		return nil, err
	}
	return func() { sem.Release(1) }, nil
}
