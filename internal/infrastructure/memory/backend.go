package memory

import (
	"sync"

	"github.com/jhoicas/Funeraria-api/internal/domain/entity"
	"github.com/jhoicas/Funeraria-api/internal/domain/repository"
)

// Backend agrupa las colecciones en memoria de todos los parlors de una colección.
type Backend[T entity.Record[T]] struct {
	mu         sync.Mutex
	collection string
	parlors    map[string]*Collection[T]
	feed       *Feed
}

// NewBackend construye el backend. feed puede ser nil; si no, cada escritura publica un cambio.
func NewBackend[T entity.Record[T]](collection string, feed *Feed) *Backend[T] {
	return &Backend[T]{collection: collection, parlors: make(map[string]*Collection[T]), feed: feed}
}

// Collection devuelve (creando si hace falta) la colección del parlor.
func (b *Backend[T]) Collection(parlorID string) *Collection[T] {
	b.mu.Lock()
	defer b.mu.Unlock()
	if c, ok := b.parlors[parlorID]; ok {
		return c
	}
	c := NewCollection[T](parlorID)
	if b.feed != nil {
		feed, collection := b.feed, b.collection
		c.onChange = func() { go feed.Publish(collection, parlorID) }
	}
	b.parlors[parlorID] = c
	return c
}

// Factory RemoteFactory sobre este backend.
func (b *Backend[T]) Factory() repository.RemoteFactory[T] {
	return func(parlorID string) repository.RemoteCollection[T] { return b.Collection(parlorID) }
}
