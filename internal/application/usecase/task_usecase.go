package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/Funeraria-api/internal/application/dto"
	"github.com/jhoicas/Funeraria-api/internal/application/store"
	"github.com/jhoicas/Funeraria-api/internal/application/views"
	"github.com/jhoicas/Funeraria-api/internal/domain/entity"
)

// TaskUseCase casos de uso del tablero de tareas.
type TaskUseCase struct {
	records[entity.Task]
}

// NewTaskUseCase construye el caso de uso.
func NewTaskUseCase(registry *store.Registry[entity.Task]) *TaskUseCase {
	return &TaskUseCase{records: newRecords(registry, views.TaskAssignee)}
}

// List vista de tareas visible para viewer.
func (uc *TaskUseCase) List(ctx context.Context, viewer entity.Viewer, q dto.ListQuery) (dto.ListResponse[entity.Task], error) {
	res, err := uc.load(ctx, viewer)
	if err != nil {
		return dto.ListResponse[entity.Task]{}, err
	}
	return toListResponse(views.Tasks(res.Items, q), res), nil
}

// Board tablero kanban con las tareas visibles.
func (uc *TaskUseCase) Board(ctx context.Context, viewer entity.Viewer) (dto.TaskBoardResponse, error) {
	res, err := uc.load(ctx, viewer)
	if err != nil {
		return dto.TaskBoardResponse{}, err
	}
	out := views.Board(res.Items, uc.now())
	out.Offline = res.Offline
	if res.Warning != nil {
		out.Warning = res.Warning.Error()
		out.WarningCode = store.WarningCode(res.Warning)
	}
	return out, nil
}

// Create agrega una tarea. Estado por defecto todo, prioridad medium.
func (uc *TaskUseCase) Create(ctx context.Context, viewer entity.Viewer, in dto.TaskRequest) (dto.WriteResponse[entity.Task], error) {
	if err := validateTask(in); err != nil {
		return dto.WriteResponse[entity.Task]{}, err
	}
	t := taskFromRequest(in)
	t.AssignedTo = assignTo(viewer, in.AssignedTo)
	return uc.create(ctx, viewer, t)
}

// Update reemplaza los datos de la tarea id.
func (uc *TaskUseCase) Update(ctx context.Context, viewer entity.Viewer, id string, in dto.TaskRequest) (dto.WriteResponse[entity.Task], error) {
	if err := validateTask(in); err != nil {
		return dto.WriteResponse[entity.Task]{}, err
	}
	return uc.update(ctx, viewer, id, store.UpdateWithFallback, func(current entity.Task) (entity.Task, error) {
		t := taskFromRequest(in)
		if in.Status == "" {
			t.Status = current.Status
		}
		if in.Priority == "" {
			t.Priority = current.Priority
		}
		t.AssignedTo = reassign(viewer, current.AssignedTo, in.AssignedTo)
		return t, nil
	})
}

// MoveTask cambia la columna de la tarea. La vista se actualiza antes de la confirmación
// remota y se revierte solo si el backend rechaza el cambio.
func (uc *TaskUseCase) MoveTask(ctx context.Context, viewer entity.Viewer, id string, in dto.MoveTaskRequest) (dto.WriteResponse[entity.Task], error) {
	if !entity.ValidTaskStatus(in.Status) {
		return dto.WriteResponse[entity.Task]{}, invalid("status inválido: %s", in.Status)
	}
	return uc.update(ctx, viewer, id, store.UpdateOptimistic, func(current entity.Task) (entity.Task, error) {
		current.Status = in.Status
		return current, nil
	})
}

// Delete elimina la tarea id.
func (uc *TaskUseCase) Delete(ctx context.Context, viewer entity.Viewer, id string) (dto.WriteResponse[entity.Task], error) {
	return uc.remove(ctx, viewer, id)
}

func validateTask(in dto.TaskRequest) error {
	if strings.TrimSpace(in.Title) == "" {
		return invalid("title es requerido")
	}
	if in.Status != "" && !entity.ValidTaskStatus(in.Status) {
		return invalid("status inválido: %s", in.Status)
	}
	if in.Priority != "" && !entity.ValidPriority(in.Priority) {
		return invalid("priority inválida: %s", in.Priority)
	}
	return nil
}

func taskFromRequest(in dto.TaskRequest) entity.Task {
	t := entity.Task{
		CaseID:      in.CaseID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
	}
	if t.Status == "" {
		t.Status = entity.TaskStatusTodo
	}
	if t.Priority == "" {
		t.Priority = entity.PriorityMedium
	}
	return t
}
