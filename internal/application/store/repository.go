package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/Funeraria-api/internal/domain"
	"github.com/jhoicas/Funeraria-api/internal/domain/entity"
	"github.com/jhoicas/Funeraria-api/internal/domain/repository"
	"github.com/jhoicas/Funeraria-api/pkg/logger"
)

// UpdatePolicy decide qué pasa con la copia local cuando el remoto falla en un Update.
type UpdatePolicy int

const (
	// UpdateWithFallback: remoto primero; si no está disponible o rechaza, se aplica localmente.
	UpdateWithFallback UpdatePolicy = iota
	// UpdateOptimistic: se aplica localmente primero y se revierte solo si el remoto rechaza
	// (o el registro ya no existe). Es el modo de las transiciones de estado de tareas.
	UpdateOptimistic
	// UpdateStrict: solo remoto; cualquier fallo deja la vista intacta.
	UpdateStrict
)

// Options parámetros de construcción del repositorio.
type Options struct {
	Collection string
	ParlorID   string
	Logger     *logger.Logger
	Now        func() time.Time // reloj; por defecto time.Now
	NewID      func() string    // ids locales; por defecto entity.NewLocalID
}

// Repository vista reconciliada (remoto + caché local) de una colección en un parlor.
//
// Las operaciones se serializan con un mutex que se mantiene durante toda la operación,
// incluida la llamada remota: sobre la misma colección se ejecutan en orden de llamada.
type Repository[T entity.Record[T]] struct {
	mu         sync.Mutex
	collection string
	parlorID   string
	key        string
	remote     repository.RemoteCollection[T]
	cache      *LocalCache[T]
	log        *logger.Logger
	now        func() time.Time
	newID      func() string

	items  []T
	loaded bool
}

// New construye el repositorio. remote puede ser un cliente nulo (modo offline explícito).
func New[T entity.Record[T]](remote repository.RemoteCollection[T], cache *LocalCache[T], opts Options) *Repository[T] {
	r := &Repository[T]{
		collection: opts.Collection,
		parlorID:   opts.ParlorID,
		key:        CacheKey(opts.Collection, opts.ParlorID),
		remote:     remote,
		cache:      cache,
		log:        opts.Logger,
		now:        opts.Now,
		newID:      opts.NewID,
	}
	if r.log == nil {
		r.log = logger.Nop()
	}
	if r.now == nil {
		r.now = time.Now
	}
	if r.newID == nil {
		r.newID = entity.NewLocalID
	}
	return r
}

// Collection nombre de la colección.
func (r *Repository[T]) Collection() string { return r.collection }

// ParlorID tenant del repositorio.
func (r *Repository[T]) ParlorID() string { return r.parlorID }

// Offline informa si el repositorio se construyó sin backend remoto (modo offline explícito).
func (r *Repository[T]) Offline() bool { return r.offline() }

// Load recalcula la vista: lista remota ∪ registros locales sin contraparte remota.
// Si el remoto falla, devuelve la última instantánea persistida en la caché con Offline=true.
func (r *Repository[T]) Load(ctx context.Context) LoadResult[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureLoaded(ctx)

	remote, err := r.remote.List(ctx, nil)
	if err != nil {
		err = r.remoteFailure("load", "", err)
		// La vista vuelve a la última instantánea persistida: un Save fallido no deja cambios fantasma.
		r.items = r.cache.Load(ctx, r.key)
		return LoadResult[T]{Items: r.snapshot(), Offline: true, Warning: err}
	}

	r.items = Merge(remote, r.items)
	r.persist(ctx)
	return LoadResult[T]{Items: r.snapshot()}
}

// Create guarda item. El id y los timestamps los asigna el remoto o, si no responde,
// un id local resistente a colisiones.
func (r *Repository[T]) Create(ctx context.Context, item T) (Result[T], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureLoaded(ctx)

	now := r.now()
	fallback := item.WithBase(entity.Base{ID: r.newID(), ParlorID: r.parlorID, CreatedAt: now, UpdatedAt: now})

	if r.offline() {
		r.prepend(ctx, fallback)
		r.log.Info().Str("collection", r.collection).Str("parlor_id", r.parlorID).
			Str("id", fallback.RecordBase().ID).Msg("registro guardado localmente")
		return Result[T]{Item: fallback, Status: StatusSavedLocally}, nil
	}

	saved, err := r.remote.Insert(ctx, item.WithBase(entity.Base{ParlorID: r.parlorID, CreatedAt: now, UpdatedAt: now}))
	if err != nil {
		err = r.remoteFailure("create", "", err)
		r.prepend(ctx, fallback)
		return Result[T]{Item: fallback, Status: StatusSavedOffline, Warning: err}, nil
	}
	r.prepend(ctx, saved)
	return Result[T]{Item: saved, Status: StatusSaved}, nil
}

// Update reemplaza el registro con el id de item según la política indicada.
// domain.ErrNotFound del remoto siempre es un fallo duro: no se crea un registro fantasma.
func (r *Repository[T]) Update(ctx context.Context, item T, policy UpdatePolicy) (Result[T], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureLoaded(ctx)

	id := item.RecordBase().ID
	if id == "" {
		return Result[T]{}, fmt.Errorf("%w: id requerido", domain.ErrInvalidInput)
	}
	idx := r.indexOf(id)
	local := r.stamp(item, idx)

	// Registro solo local (o modo offline explícito): no hay contraparte remota que actualizar.
	if entity.IsLocalID(id) || (r.offline() && policy != UpdateStrict) {
		if idx < 0 {
			return Result[T]{}, fmt.Errorf("%w: %s/%s", domain.ErrNotFound, r.collection, id)
		}
		r.items[idx] = local
		r.persist(ctx)
		return Result[T]{Item: local, Status: StatusSavedLocally}, nil
	}

	switch policy {
	case UpdateOptimistic:
		return r.updateOptimistic(ctx, id, idx, local)
	case UpdateStrict:
		saved, err := r.remote.Update(ctx, id, local)
		if err != nil {
			return Result[T]{}, r.remoteFailure("update", id, err)
		}
		r.upsert(ctx, saved)
		return Result[T]{Item: saved, Status: StatusSaved}, nil
	default:
		saved, err := r.remote.Update(ctx, id, local)
		if err != nil {
			err = r.remoteFailure("update", id, err)
			if errors.Is(err, domain.ErrNotFound) || idx < 0 {
				return Result[T]{}, err
			}
			r.items[idx] = local
			r.persist(ctx)
			return Result[T]{Item: local, Status: StatusSavedOffline, Warning: err}, nil
		}
		r.upsert(ctx, saved)
		return Result[T]{Item: saved, Status: StatusSaved}, nil
	}
}

func (r *Repository[T]) updateOptimistic(ctx context.Context, id string, idx int, local T) (Result[T], error) {
	var previous T
	if idx >= 0 {
		previous = r.items[idx]
		r.items[idx] = local
		r.persist(ctx)
	}

	saved, err := r.remote.Update(ctx, id, local)
	if err == nil {
		r.upsert(ctx, saved)
		return Result[T]{Item: saved, Status: StatusSaved}, nil
	}

	err = r.remoteFailure("update", id, err)
	if errors.Is(err, domain.ErrRemoteUnavailable) && idx >= 0 {
		return Result[T]{Item: local, Status: StatusSavedOffline, Warning: err}, nil
	}
	// Rechazo confirmado: revertir.
	if idx >= 0 {
		if j := r.indexOf(id); j >= 0 {
			r.items[j] = previous
			r.persist(ctx)
		}
	}
	return Result[T]{}, err
}

// Delete elimina el registro id. La copia local se borra solo después de que el remoto confirma;
// si el remoto falla, el registro sigue en la vista.
func (r *Repository[T]) Delete(ctx context.Context, id string) (Result[T], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureLoaded(ctx)

	idx := r.indexOf(id)
	if entity.IsLocalID(id) {
		if idx < 0 {
			return Result[T]{}, fmt.Errorf("%w: %s/%s", domain.ErrNotFound, r.collection, id)
		}
		removed := r.remove(ctx, idx)
		return Result[T]{Item: removed, Status: StatusDeletedLocally}, nil
	}

	if err := r.remote.Delete(ctx, id); err != nil {
		return Result[T]{}, r.remoteFailure("delete", id, err)
	}

	var removed T
	if idx >= 0 {
		removed = r.remove(ctx, idx)
	}
	return Result[T]{Item: removed, Status: StatusDeleted}, nil
}

// Snapshot copia de la vista actual en memoria (inicializada desde la caché si hace falta).
func (r *Repository[T]) Snapshot(ctx context.Context) []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureLoaded(ctx)
	return r.snapshot()
}

// Find busca un registro por id en la vista actual.
func (r *Repository[T]) Find(ctx context.Context, id string) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureLoaded(ctx)
	if idx := r.indexOf(id); idx >= 0 {
		return r.items[idx], true
	}
	var zero T
	return zero, false
}

// Reset descarta la vista en memoria y la instantánea local.
func (r *Repository[T]) Reset(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
	r.loaded = false
	r.cache.Reset(ctx, r.key)
}

// Watch suscribe el repositorio al canal de cambios remotos: cada notificación recarga la vista.
func (r *Repository[T]) Watch(ctx context.Context, feed repository.ChangeFeed) (stop func()) {
	return feed.Subscribe(r.collection, r.parlorID, func() {
		if ctx.Err() != nil {
			return
		}
		res := r.Load(ctx)
		r.log.Debug().Str("collection", r.collection).Str("parlor_id", r.parlorID).
			Int("items", len(res.Items)).Bool("offline", res.Offline).Msg("recarga por cambio remoto")
	})
}

func (r *Repository[T]) ensureLoaded(ctx context.Context) {
	if r.loaded {
		return
	}
	r.items = r.cache.Load(ctx, r.key)
	r.loaded = true
}

func (r *Repository[T]) offline() bool {
	oa, ok := r.remote.(repository.OfflineAware)
	return ok && oa.Offline()
}

// stamp conserva created_at del registro existente y marca updated_at.
func (r *Repository[T]) stamp(item T, idx int) T {
	b := item.RecordBase()
	b.ParlorID = r.parlorID
	if idx >= 0 {
		b.CreatedAt = r.items[idx].RecordBase().CreatedAt
	}
	b.UpdatedAt = r.now()
	return item.WithBase(b)
}

func (r *Repository[T]) indexOf(id string) int {
	for i, it := range r.items {
		if it.RecordBase().ID == id {
			return i
		}
	}
	return -1
}

func (r *Repository[T]) prepend(ctx context.Context, item T) {
	if idx := r.indexOf(item.RecordBase().ID); idx >= 0 {
		r.items = append(r.items[:idx], r.items[idx+1:]...)
	}
	r.items = append([]T{item}, r.items...)
	r.persist(ctx)
}

func (r *Repository[T]) upsert(ctx context.Context, item T) {
	if idx := r.indexOf(item.RecordBase().ID); idx >= 0 {
		r.items[idx] = item
		r.persist(ctx)
		return
	}
	r.prepend(ctx, item)
}

func (r *Repository[T]) remove(ctx context.Context, idx int) T {
	removed := r.items[idx]
	r.items = append(r.items[:idx], r.items[idx+1:]...)
	r.persist(ctx)
	return removed
}

func (r *Repository[T]) persist(ctx context.Context) {
	r.cache.Save(ctx, r.key, r.items)
}

func (r *Repository[T]) snapshot() []T {
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

// remoteFailure normaliza err a la taxonomía remota y lo registra.
// Los rechazos se registran con mayor severidad: suelen indicar un problema recurrente.
func (r *Repository[T]) remoteFailure(op, id string, err error) error {
	switch {
	case errors.Is(err, domain.ErrRemoteRejected), errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrRemoteUnavailable):
	default:
		err = fmt.Errorf("%w: %v", domain.ErrRemoteUnavailable, err)
	}

	ev := r.log.Warn()
	if errors.Is(err, domain.ErrRemoteRejected) {
		ev = r.log.Error()
	}
	ev.Err(err).Str("collection", r.collection).Str("parlor_id", r.parlorID).
		Str("op", op).Str("id", id).Msg("operación remota fallida")
	return err
}
