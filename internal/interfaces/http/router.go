package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Funeraria-api/internal/application/usecase"
	"github.com/jhoicas/Funeraria-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CaseUC    *usecase.CaseUseCase
	ClientUC  *usecase.ClientUseCase
	TaskUC    *usecase.TaskUseCase
	PaymentUC *usecase.PaymentUseCase
	JWTSecret string
}

// Router registra las rutas de la API. Todas requieren Bearer Token; la identidad la emite
// el proveedor externo.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleStaff, entity.RoleAdmin, entity.RoleSuperAdmin), ParlorScope())
	managers := RequireRole(entity.RoleAdmin, entity.RoleSuperAdmin)

	cases := api.Group("/cases")
	caseHandler := NewCaseHandler(deps.CaseUC)
	cases.Get("/", caseHandler.List)
	cases.Get("/stats", caseHandler.Stats)
	cases.Post("/", caseHandler.Create)
	cases.Put("/:id", caseHandler.Update)
	cases.Delete("/:id", managers, caseHandler.Delete)

	clients := api.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Get("/", clientHandler.List)
	clients.Post("/", clientHandler.Create)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", managers, clientHandler.Delete)

	tasks := api.Group("/tasks")
	taskHandler := NewTaskHandler(deps.TaskUC)
	tasks.Get("/", taskHandler.List)
	tasks.Get("/board", taskHandler.Board)
	tasks.Post("/", taskHandler.Create)
	tasks.Put("/:id", taskHandler.Update)
	tasks.Patch("/:id/status", taskHandler.Move)
	tasks.Delete("/:id", managers, taskHandler.Delete)

	// Pagos: solo administradores.
	payments := api.Group("/payments", managers)
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments.Get("/", paymentHandler.List)
	payments.Get("/summary", paymentHandler.Summary)
	payments.Post("/", paymentHandler.Create)
	payments.Put("/:id", paymentHandler.Update)
	payments.Delete("/:id", paymentHandler.Delete)
}
