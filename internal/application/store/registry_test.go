package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Funeraria-api/internal/application/store"
	"github.com/jhoicas/Funeraria-api/internal/domain/entity"
	"github.com/jhoicas/Funeraria-api/internal/infrastructure/cache"
	"github.com/jhoicas/Funeraria-api/internal/infrastructure/memory"
)

func TestRegistry_UnRepositorioPorParlor(t *testing.T) {
	backend := memory.NewBackend[entity.Client](entity.CollectionClients, nil)
	media := cache.NewMemoryStore()
	reg := store.NewRegistry[entity.Client](entity.CollectionClients, backend.Factory(), media, nil)
	ctx := context.Background()

	a := reg.For("p1")
	assert.Same(t, a, reg.For("p1"))
	b := reg.For("p2")
	assert.NotSame(t, a, b)

	_, err := a.Create(ctx, entity.Client{FirstName: "Ana"})
	require.NoError(t, err)

	assert.Len(t, a.Load(ctx).Items, 1)
	assert.Empty(t, b.Load(ctx).Items, "los datos de un parlor no se filtran a otro")

	keys, err := media.Keys(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"clients:p1", "clients:p2"}, keys)
}

func TestRegistry_WatchRecargaConCambioRemoto(t *testing.T) {
	feed := memory.NewFeed()
	backend := memory.NewBackend[entity.Task](entity.CollectionTasks, feed)
	reg := store.NewRegistry[entity.Task](entity.CollectionTasks, backend.Factory(), cache.NewMemoryStore(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reg.Watch(ctx, feed)
	defer reg.Close()

	repo := reg.For("p1")
	require.Empty(t, repo.Snapshot(ctx))

	// Otro proceso escribe directamente en el backend.
	_, err := backend.Collection("p1").Insert(ctx, entity.Task{Title: "Recoger acta"})
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return len(repo.Snapshot(ctx)) == 1
	}, time.Second, 10*time.Millisecond, "la notificación debe recargar la vista")
}
