// Package offline provee el cliente remoto nulo del modo offline explícito.
package offline

import (
	"context"
	"fmt"

	"github.com/jhoicas/Funeraria-api/internal/domain"
	"github.com/jhoicas/Funeraria-api/internal/domain/repository"
)

var _ repository.OfflineAware = Collection[struct{}]{}

// Collection cliente remoto que siempre falla rápido con domain.ErrRemoteUnavailable.
// Permite que el repositorio recorra el mismo camino de respaldo con o sin backend.
type Collection[T any] struct{}

// Factory devuelve una RemoteFactory que construye clientes nulos.
func Factory[T any]() repository.RemoteFactory[T] {
	return func(string) repository.RemoteCollection[T] { return Collection[T]{} }
}

// Offline implementa repository.OfflineAware.
func (Collection[T]) Offline() bool { return true }

func (Collection[T]) List(context.Context, repository.Filter) ([]T, error) {
	return nil, errOffline
}

func (Collection[T]) Insert(context.Context, T) (T, error) {
	var zero T
	return zero, errOffline
}

func (Collection[T]) Update(context.Context, string, T) (T, error) {
	var zero T
	return zero, errOffline
}

func (Collection[T]) Delete(context.Context, string) error {
	return errOffline
}

var errOffline = fmt.Errorf("%w: modo offline", domain.ErrRemoteUnavailable)
