package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Funeraria-api/internal/application/dto"
	"github.com/jhoicas/Funeraria-api/internal/application/usecase"
)

// CaseHandler maneja las peticiones HTTP de casos (protegido).
type CaseHandler struct {
	uc *usecase.CaseUseCase
}

// NewCaseHandler construye el handler.
func NewCaseHandler(uc *usecase.CaseUseCase) *CaseHandler {
	return &CaseHandler{uc: uc}
}

// List godoc
// @Summary      Listar casos
// @Tags         cases
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Búsqueda por nombre o lugar"
// @Param        status  query  string  false  "intake, in_progress, completed, closed"
// @Success      200  {object}  dto.ListResponse[entity.DeceasedProfile]
// @Router       /api/cases [get]
func (h *CaseHandler) List(c *fiber.Ctx) error {
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

// Stats godoc
// @Summary      Conteos de casos para el panel
// @Tags         cases
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CaseStatsResponse
// @Router       /api/cases/stats [get]
func (h *CaseHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.UserContext(), GetViewer(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Abrir caso
// @Tags         cases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CaseRequest  true  "Perfil del fallecido"
// @Success      201   {object}  dto.WriteResponse[entity.DeceasedProfile]
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cases [post]
func (h *CaseHandler) Create(c *fiber.Ctx) error {
	var in dto.CaseRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetViewer(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return created(c, out)
}

// Update actualiza el caso :id.
func (h *CaseHandler) Update(c *fiber.Ctx) error {
	var in dto.CaseRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetViewer(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina el caso :id.
func (h *CaseHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.UserContext(), GetViewer(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
