package lock

import (
	"context"
	"sync"
	"time"
)

// LocalLocker é usado quando não há Redis configurado. Só protege um
// processo.
type LocalLocker struct {
	mu    sync.Mutex
	slots map[uint]chan struct{}
	wait  time.Duration
}

func NewLocalLocker(wait time.Duration) *LocalLocker {
	return &LocalLocker{
		slots: map[uint]chan struct{}{},
		wait:  wait,
	}
}

func (l *LocalLocker) slot(physicianID uint) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	ch, ok := l.slots[physicianID]
	if !ok {
		ch = make(chan struct{}, 1)
		l.slots[physicianID] = ch
	}
	return ch
}

func (l *LocalLocker) WithPhysicianLock(ctx context.Context, physicianID uint, fn func(ctx context.Context) error) error {
	ch := l.slot(physicianID)

	// livre: entra sem armar o timer, mesmo com wait zero
	select {
	case ch <- struct{}{}:
	default:
		if err := l.waitFor(ctx, ch); err != nil {
			return err
		}
	}
	defer func() { <-ch }()

	return fn(ctx)
}

func (l *LocalLocker) waitFor(ctx context.Context, ch chan struct{}) error {
	if l.wait <= 0 {
		return ErrLockNotAcquired
	}

	timer := time.NewTimer(l.wait)
	defer timer.Stop()

	select {
	case ch <- struct{}{}:
		return nil
	case <-timer.C:
		return ErrLockNotAcquired
	case <-ctx.Done():
		return ctx.Err()
	}
}
