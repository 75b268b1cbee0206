package store

import (
	"context"
	"sync"

	"github.com/jhoicas/Funeraria-api/internal/domain/entity"
	"github.com/jhoicas/Funeraria-api/internal/domain/repository"
	"github.com/jhoicas/Funeraria-api/pkg/logger"
)

// Registry construye y reutiliza un Repository por parlor para una colección.
// Todos comparten el mismo medio de caché; la clave incluye el parlor.
type Registry[T entity.Record[T]] struct {
	mu         sync.Mutex
	collection string
	factory    repository.RemoteFactory[T]
	cache      *LocalCache[T]
	log        *logger.Logger

	feed     repository.ChangeFeed
	watchCtx context.Context
	repos    map[string]*Repository[T]
	stops    []func()
}

// NewRegistry construye el registro de la colección.
func NewRegistry[T entity.Record[T]](collection string, factory repository.RemoteFactory[T], cache repository.CacheStore, log *logger.Logger) *Registry[T] {
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("store")
	return &Registry[T]{
		collection: collection,
		factory:    factory,
		cache:      NewLocalCache[T](cache, log),
		log:        log,
		repos:      make(map[string]*Repository[T]),
	}
}

// Watch hace que cada repositorio (actual o futuro) se recargue con las notificaciones de feed.
func (g *Registry[T]) Watch(ctx context.Context, feed repository.ChangeFeed) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.feed = feed
	g.watchCtx = ctx
	for _, r := range g.repos {
		g.stops = append(g.stops, r.Watch(ctx, feed))
	}
}

// For devuelve el repositorio del parlor, creándolo si no existe.
func (g *Registry[T]) For(parlorID string) *Repository[T] {
	g.mu.Lock()
	defer g.mu.Unlock()
	if r, ok := g.repos[parlorID]; ok {
		return r
	}
	r := New(g.factory(parlorID), g.cache, Options{
		Collection: g.collection,
		ParlorID:   parlorID,
		Logger:     g.log,
	})
	g.repos[parlorID] = r
	if g.feed != nil {
		g.stops = append(g.stops, r.Watch(g.watchCtx, g.feed))
	}
	return r
}

// Close cancela las suscripciones al canal de cambios.
func (g *Registry[T]) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, stop := range g.stops {
		stop()
	}
	g.stops = nil
}
