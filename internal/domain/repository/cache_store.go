package repository

import "context"

// CacheStore define el puerto del medio de persistencia local (clave → blob).
// El medio es compartido entre colecciones: cada colección debe usar una clave distinta.
type CacheStore interface {
	// Get devuelve el blob de key o domain.ErrNotFound si no existe.
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, blob []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}
