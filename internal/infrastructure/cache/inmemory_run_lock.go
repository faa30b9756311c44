package cache

import (
	"context"
	"sync"
	"time"

	payrollapp "github.com/bizsuite/backend/internal/application/payroll"
)

// InMemoryRunLock is a process-local run lock for single-instance
// deployments and tests. Expired entries are reaped lazily on Acquire.
type InMemoryRunLock struct {
	mu    sync.Mutex
	locks map[string]time.Time
}

// NewInMemoryRunLock creates a new InMemoryRunLock
func NewInMemoryRunLock() *InMemoryRunLock {
	return &InMemoryRunLock{
		locks: make(map[string]time.Time),
	}
}

// Acquire attempts to take the lock with a TTL
func (l *InMemoryRunLock) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if expiry, held := l.locks[key]; held && now.Before(expiry) {
		return false, nil
	}
	l.locks[key] = now.Add(ttl)
	return true, nil
}

// Release frees the lock
func (l *InMemoryRunLock) Release(ctx context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.locks, key)
	return nil
}

// Ensure InMemoryRunLock implements the run lock contract
var _ payrollapp.RunLock = (*InMemoryRunLock)(nil)
