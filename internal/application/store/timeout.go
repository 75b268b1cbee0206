package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/Funeraria-api/internal/domain"
	"github.com/jhoicas/Funeraria-api/internal/domain/repository"
)

// WithTimeout acota cada llamada remota a d. Al vencer el plazo la llamada se reporta como
// domain.ErrRemoteUnavailable.
func WithTimeout[T any](next repository.RemoteCollection[T], d time.Duration) repository.RemoteCollection[T] {
	return &timeoutCollection[T]{next: next, d: d}
}

// TimeoutFactory aplica WithTimeout a cada colección que construye f.
func TimeoutFactory[T any](f repository.RemoteFactory[T], d time.Duration) repository.RemoteFactory[T] {
	return func(parlorID string) repository.RemoteCollection[T] {
		return WithTimeout(f(parlorID), d)
	}
}

type timeoutCollection[T any] struct {
	next repository.RemoteCollection[T]
	d    time.Duration
}

func (c *timeoutCollection[T]) Offline() bool {
	oa, ok := c.next.(repository.OfflineAware)
	return ok && oa.Offline()
}

func (c *timeoutCollection[T]) List(ctx context.Context, filter repository.Filter) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, c.d)
	defer cancel()
	items, err := c.next.List(ctx, filter)
	return items, expired(ctx, err)
}

func (c *timeoutCollection[T]) Insert(ctx context.Context, item T) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, c.d)
	defer cancel()
	out, err := c.next.Insert(ctx, item)
	return out, expired(ctx, err)
}

func (c *timeoutCollection[T]) Update(ctx context.Context, id string, item T) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, c.d)
	defer cancel()
	out, err := c.next.Update(ctx, id, item)
	return out, expired(ctx, err)
}

func (c *timeoutCollection[T]) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, c.d)
	defer cancel()
	return expired(ctx, c.next.Delete(ctx, id))
}

func expired(ctx context.Context, err error) error {
	if err == nil || errors.Is(err, domain.ErrRemoteUnavailable) {
		return err
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: timeout: %v", domain.ErrRemoteUnavailable, err)
	}
	return err
}
