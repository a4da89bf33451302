package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gofrs/flock"
)

const lockRetryDelay = 25 * time.Millisecond

// locker serializes writers of a single file, both inside this process and
// across processes (advisory lock on "<path>.lock").
type locker struct {
	mu    sync.Mutex
	paths map[string]chan struct{}
}

func newLocker() *locker {
	return &locker{paths: make(map[string]chan struct{})}
}

func (l *locker) slotFor(path string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	slot, ok := l.paths[path]
	if !ok {
		slot = make(chan struct{}, 1)
		l.paths[path] = slot
	}
	return slot
}

// lock acquires exclusive write access to path, giving up when ctx is done.
// The returned func releases it.
func (l *locker) lock(ctx context.Context, path string) (func(), error) {
	slot := l.slotFor(path)
	select {
	case slot <- struct{}{}:
	case <-ctx.Done():
		return nil, fmt.Errorf("memory: lock %s: %w", path, ctx.Err())
	}

	fl := flock.New(path + ".lock")
	ok, err := fl.TryLockContext(ctx, lockRetryDelay)
	if err != nil || !ok {
		<-slot
		if err == nil {
			err = ctx.Err()
		}
		return nil, fmt.Errorf("memory: lock %s: %w", path, err)
	}
	return func() {
		_ = fl.Unlock()
		<-slot
	}, nil
}
