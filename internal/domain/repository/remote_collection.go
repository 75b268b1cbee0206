package repository

import "context"

// Filter igualdad por columna para List. Las columnas válidas las decide cada adaptador;
// una columna desconocida es un rechazo remoto (domain.ErrRemoteRejected).
type Filter map[string]string

// RemoteCollection define el puerto hacia la colección remota (ya acotada a un parlor).
// No reintenta: los reintentos, si los hay, son responsabilidad del llamador.
//
// Errores: domain.ErrRemoteUnavailable, domain.ErrRemoteRejected, domain.ErrNotFound.
type RemoteCollection[T any] interface {
	List(ctx context.Context, filter Filter) ([]T, error)
	// Insert persiste item; el servidor asigna id, created_at y updated_at.
	Insert(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, id string, item T) (T, error)
	Delete(ctx context.Context, id string) error
}

// OfflineAware lo implementan los clientes remotos nulos (modo offline explícito).
type OfflineAware interface {
	Offline() bool
}

// RemoteFactory construye la colección remota de un parlor.
type RemoteFactory[T any] func(parlorID string) RemoteCollection[T]
