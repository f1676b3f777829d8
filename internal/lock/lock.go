package lock

import (
	"context"
	"errors"
)

var ErrLockNotAcquired = errors.New("physician lock not acquired")

// Locker serializa agendamentos de um mesmo médico.
type Locker interface {
	WithPhysicianLock(ctx context.Context, physicianID uint, fn func(ctx context.Context) error) error
}
