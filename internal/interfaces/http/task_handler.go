package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Funeraria-api/internal/application/dto"
	"github.com/jhoicas/Funeraria-api/internal/application/usecase"
)

// TaskHandler tablero de tareas (protegido).
type TaskHandler struct {
	uc *usecase.TaskUseCase
}

// NewTaskHandler construye el handler.
func NewTaskHandler(uc *usecase.TaskUseCase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

// List godoc
// @Summary      Listar tareas
// @Tags         tasks
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "todo, in_progress, done"
// @Success      200  {object}  dto.ListResponse[entity.Task]
// @Router       /api/tasks [get]
func (h *TaskHandler) List(c *fiber.Ctx) error {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.List(c.UserContext(), GetViewer(c), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Board godoc
// @Summary      Tablero kanban
// @Tags         tasks
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TaskBoardResponse
// @Router       /api/tasks/board [get]
func (h *TaskHandler) Board(c *fiber.Ctx) error {
	out, err := h.uc.Board(c.UserContext(), GetViewer(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create crea una tarea.
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var in dto.TaskRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetViewer(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return created(c, out)
}

// Update actualiza la tarea :id.
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	var in dto.TaskRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetViewer(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Move godoc
// @Summary      Mover tarea de columna
// @Description  La vista se actualiza de inmediato; solo se revierte si el backend rechaza el cambio.
// @Tags         tasks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID de la tarea"
// @Param        body  body  dto.MoveTaskRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.WriteResponse[entity.Task]
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/tasks/{id}/status [patch]
func (h *TaskHandler) Move(c *fiber.Ctx) error {
	var in dto.MoveTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.MoveTask(c.UserContext(), GetViewer(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina la tarea :id.
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.UserContext(), GetViewer(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
