package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Funeraria-api/internal/application/dto"
	"github.com/jhoicas/Funeraria-api/internal/application/store"
	"github.com/jhoicas/Funeraria-api/internal/application/views"
	"github.com/jhoicas/Funeraria-api/internal/domain"
	"github.com/jhoicas/Funeraria-api/internal/domain/entity"
)

// records lógica común de las colecciones: resolución del repositorio por parlor,
// visibilidad por rol y traducción del desenlace a DTO.
type records[T entity.Record[T]] struct {
	registry *store.Registry[T]
	assignee func(T) string // nil: la colección no tiene responsable (todos la ven)
	now      func() time.Time
}

func newRecords[T entity.Record[T]](registry *store.Registry[T], assignee func(T) string) records[T] {
	return records[T]{registry: registry, assignee: assignee, now: time.Now}
}

func (r records[T]) repo(viewer entity.Viewer) (*store.Repository[T], error) {
	if viewer.ParlorID == "" {
		return nil, fmt.Errorf("%w: parlor_id requerido", domain.ErrUnauthorized)
	}
	return r.registry.For(viewer.ParlorID), nil
}

// load devuelve la vista reconciliada ya filtrada por visibilidad.
func (r records[T]) load(ctx context.Context, viewer entity.Viewer) (store.LoadResult[T], error) {
	repo, err := r.repo(viewer)
	if err != nil {
		return store.LoadResult[T]{}, err
	}
	res := repo.Load(ctx)
	if r.assignee != nil {
		res.Items = views.Visible(res.Items, viewer, r.assignee)
	}
	return res, nil
}

func (r records[T]) create(ctx context.Context, viewer entity.Viewer, item T) (dto.WriteResponse[T], error) {
	repo, err := r.repo(viewer)
	if err != nil {
		return dto.WriteResponse[T]{}, err
	}
	res, err := repo.Create(ctx, item)
	if err != nil {
		return dto.WriteResponse[T]{}, err
	}
	return toWriteResponse(res), nil
}

// update aplica apply sobre el registro actual y lo guarda con policy.
// Staff solo puede modificar registros asignados a él.
func (r records[T]) update(ctx context.Context, viewer entity.Viewer, id string, policy store.UpdatePolicy, apply func(current T) (T, error)) (dto.WriteResponse[T], error) {
	repo, err := r.repo(viewer)
	if err != nil {
		return dto.WriteResponse[T]{}, err
	}
	current, ok := repo.Find(ctx, id)
	if !ok && !repo.Offline() {
		// Puede existir en el remoto sin estar aún en la caché (proceso nuevo, otra instancia).
		repo.Load(ctx)
		current, ok = repo.Find(ctx, id)
	}
	if !ok {
		return dto.WriteResponse[T]{}, fmt.Errorf("%w: %s/%s", domain.ErrNotFound, repo.Collection(), id)
	}
	if r.assignee != nil && !views.CanTouch(viewer, r.assignee(current)) {
		return dto.WriteResponse[T]{}, fmt.Errorf("%w: registro asignado a otro usuario", domain.ErrForbidden)
	}
	next, err := apply(current)
	if err != nil {
		return dto.WriteResponse[T]{}, err
	}
	next = next.WithBase(current.RecordBase())
	res, err := repo.Update(ctx, next, policy)
	if err != nil {
		return dto.WriteResponse[T]{}, err
	}
	return toWriteResponse(res), nil
}

// remove solo para admin y super_admin.
func (r records[T]) remove(ctx context.Context, viewer entity.Viewer, id string) (dto.WriteResponse[T], error) {
	if !viewer.CanManage() {
		return dto.WriteResponse[T]{}, fmt.Errorf("%w: solo administradores pueden eliminar", domain.ErrForbidden)
	}
	repo, err := r.repo(viewer)
	if err != nil {
		return dto.WriteResponse[T]{}, err
	}
	res, err := repo.Delete(ctx, id)
	if err != nil {
		return dto.WriteResponse[T]{}, err
	}
	return toWriteResponse(res), nil
}

func toWriteResponse[T any](res store.Result[T]) dto.WriteResponse[T] {
	out := dto.WriteResponse[T]{Item: res.Item, Status: string(res.Status), Message: res.Status.Message()}
	if res.Warning != nil {
		out.Warning = res.Warning.Error()
		out.WarningCode = store.WarningCode(res.Warning)
	}
	return out
}

func toListResponse[T any](items []T, res store.LoadResult[T]) dto.ListResponse[T] {
	out := dto.ListResponse[T]{Items: items, Total: len(items), Offline: res.Offline}
	if out.Items == nil {
		out.Items = []T{}
	}
	if res.Warning != nil {
		out.Warning = res.Warning.Error()
		out.WarningCode = store.WarningCode(res.Warning)
	}
	return out
}

// assignTo fija el responsable al crear: staff siempre queda como responsable de lo que crea.
func assignTo(viewer entity.Viewer, requested string) string {
	if viewer.IsStaff() || requested == "" {
		return viewer.UserID
	}
	return requested
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{domain.ErrInvalidInput}, args...)...)
}

// reassign decide el responsable en una actualización: staff no puede reasignar.
func reassign(viewer entity.Viewer, current, requested string) string {
	if viewer.IsStaff() || requested == "" {
		return current
	}
	return requested
}
