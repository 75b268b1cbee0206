package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jhoicas/Funeraria-api/internal/domain"
	"github.com/jhoicas/Funeraria-api/internal/domain/repository"
	"github.com/jhoicas/Funeraria-api/pkg/logger"
)

// CacheKey clave determinista de la instantánea de una colección en un parlor.
func CacheKey(collection, parlorID string) string {
	if parlorID == "" {
		return collection
	}
	return collection + ":" + parlorID
}

// LocalCache serializa instantáneas tipadas sobre un CacheStore.
// Nunca devuelve errores: los fallos se registran y la operación se considera hecha.
type LocalCache[T any] struct {
	store repository.CacheStore
	log   *logger.Logger
}

// NewLocalCache construye la caché tipada sobre el medio indicado.
func NewLocalCache[T any](store repository.CacheStore, log *logger.Logger) *LocalCache[T] {
	if log == nil {
		log = logger.Nop()
	}
	return &LocalCache[T]{store: store, log: log}
}

// Load devuelve la instantánea de key, o una secuencia vacía si no existe o está corrupta.
func (c *LocalCache[T]) Load(ctx context.Context, key string) []T {
	blob, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			c.log.Warn().Err(err).Str("key", key).Msg("leer caché local")
		}
		return []T{}
	}
	var items []T
	if err := json.Unmarshal(blob, &items); err != nil {
		c.log.Error().Err(errors.Join(domain.ErrCacheCorrupt, err)).Str("key", key).Msg("caché local corrupta, se usa vacía")
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// Save persiste items bajo key. Un fallo (cuota, serialización, disco) no se propaga.
func (c *LocalCache[T]) Save(ctx context.Context, key string, items []T) {
	if items == nil {
		items = []T{}
	}
	blob, err := json.Marshal(items)
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("serializar caché local")
		return
	}
	if err := c.store.Put(ctx, key, blob); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("guardar caché local")
	}
}

// Reset elimina la instantánea de key.
func (c *LocalCache[T]) Reset(ctx context.Context, key string) {
	if err := c.store.Delete(ctx, key); err != nil && !errors.Is(err, domain.ErrNotFound) {
		c.log.Warn().Err(err).Str("key", key).Msg("borrar caché local")
	}
}
