package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Funeraria-api/internal/application/store"
	"github.com/jhoicas/Funeraria-api/internal/domain"
	"github.com/jhoicas/Funeraria-api/internal/domain/entity"
	"github.com/jhoicas/Funeraria-api/internal/domain/repository"
	"github.com/jhoicas/Funeraria-api/internal/infrastructure/cache"
	"github.com/jhoicas/Funeraria-api/internal/infrastructure/memory"
	"github.com/jhoicas/Funeraria-api/internal/infrastructure/offline"
)

// slowRemote bloquea cada llamada hasta que vence el contexto.
type slowRemote struct {
	repository.RemoteCollection[entity.DeceasedProfile]
}

func (slowRemote) List(ctx context.Context, _ repository.Filter) ([]entity.DeceasedProfile, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (slowRemote) Delete(ctx context.Context, _ string) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestWithTimeout_VencimientoEsNoDisponible(t *testing.T) {
	remote := store.WithTimeout[entity.DeceasedProfile](slowRemote{}, 20*time.Millisecond)

	_, err := remote.List(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrRemoteUnavailable)

	err = remote.Delete(context.Background(), "r1")
	assert.ErrorIs(t, err, domain.ErrRemoteUnavailable)
}

func TestWithTimeout_LoadCaeALaCache(t *testing.T) {
	media := cache.NewMemoryStore()
	repo := store.New[entity.DeceasedProfile](
		store.WithTimeout[entity.DeceasedProfile](slowRemote{}, 20*time.Millisecond),
		store.NewLocalCache[entity.DeceasedProfile](media, nil),
		store.Options{Collection: entity.CollectionCases, ParlorID: testParlor},
	)

	res := repo.Load(context.Background())
	assert.True(t, res.Offline)
	assert.ErrorIs(t, res.Warning, domain.ErrRemoteUnavailable)
}

func TestWithTimeout_PropagaErroresYModoOffline(t *testing.T) {
	inner := memory.NewCollection[entity.DeceasedProfile](testParlor)
	remote := store.WithTimeout[entity.DeceasedProfile](inner, time.Second)

	_, err := remote.Update(context.Background(), "nope", caseOf("nope", "x"))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	saved, err := remote.Insert(context.Background(), caseOf("", "A"))
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	oa, ok := remote.(repository.OfflineAware)
	require.True(t, ok)
	assert.False(t, oa.Offline())

	off := store.WithTimeout[entity.DeceasedProfile](offline.Collection[entity.DeceasedProfile]{}, time.Second)
	assert.True(t, off.(repository.OfflineAware).Offline())
}

func TestTimeoutFactory_EnvuelveCadaParlor(t *testing.T) {
	factory := store.TimeoutFactory(offline.Factory[entity.Task](), time.Second)
	remote := factory("p1")
	oa, ok := remote.(repository.OfflineAware)
	require.True(t, ok)
	assert.True(t, oa.Offline())

	_, err := remote.List(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrRemoteUnavailable)
}
