package views

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Funeraria-api/internal/application/dto"
	"github.com/jhoicas/Funeraria-api/internal/domain/entity"
)

func task(id, status, assignee string, due *time.Time) entity.Task {
	return entity.Task{Base: entity.Base{ID: id}, Title: "tarea " + id, Status: status, AssignedTo: assignee, DueDate: due}
}

// ─── Visibilidad ─────────────────────────────────────────────────────────────

func TestVisible_StaffSoloAsignados(t *testing.T) {
	items := []entity.Task{
		task("1", entity.TaskStatusTodo, "u1", nil),
		task("2", entity.TaskStatusTodo, "u2", nil),
		task("3", entity.TaskStatusDone, "u1", nil),
	}
	staff := entity.Viewer{UserID: "u1", Role: entity.RoleStaff}
	got := Visible(items, staff, TaskAssignee)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
}

func TestVisible_AdminVeTodo(t *testing.T) {
	items := []entity.Task{task("1", "", "u1", nil), task("2", "", "u2", nil)}
	admin := entity.Viewer{UserID: "a", Role: entity.RoleAdmin}
	assert.Len(t, Visible(items, admin, TaskAssignee), 2)
}

func TestCanTouch(t *testing.T) {
	staff := entity.Viewer{UserID: "u1", Role: entity.RoleStaff}
	assert.True(t, CanTouch(staff, "u1"))
	assert.False(t, CanTouch(staff, "u2"))
	assert.True(t, CanTouch(entity.Viewer{Role: entity.RoleSuperAdmin}, "u2"))
}

// ─── Búsqueda ────────────────────────────────────────────────────────────────

func TestNormalize_QuitaTildes(t *testing.T) {
	assert.Equal(t, "jose munoz", Normalize("  José Muñoz "))
}

func TestMatches(t *testing.T) {
	assert.True(t, Matches("", "x"))
	assert.True(t, Matches("gomez", "Ana", "Gómez"))
	assert.False(t, Matches("perez", "Ana", "Gómez"))
}

func TestClients_FiltraPorBusquedaYResponsable(t *testing.T) {
	items := []entity.Client{
		{Base: entity.Base{ID: "1"}, FirstName: "María", LastName: "Pérez", AssignedTo: "u1"},
		{Base: entity.Base{ID: "2"}, FirstName: "Mario", LastName: "Rojas", AssignedTo: "u2"},
	}
	got := Clients(items, dto.ListQuery{Search: "mari"})
	assert.Len(t, got, 2)

	got = Clients(items, dto.ListQuery{Search: "perez"})
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	got = Clients(items, dto.ListQuery{AssignedTo: "u2"})
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestCases_FiltraPorEstado(t *testing.T) {
	items := []entity.DeceasedProfile{
		{Base: entity.Base{ID: "1"}, FullName: "A", Status: entity.CaseStatusIntake},
		{Base: entity.Base{ID: "2"}, FullName: "B", Status: entity.CaseStatusClosed},
	}
	got := Cases(items, dto.ListQuery{Status: entity.CaseStatusClosed})
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

// ─── Agregados ───────────────────────────────────────────────────────────────

func TestCaseStats(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	soon := now.Add(48 * time.Hour)
	later := now.Add(30 * 24 * time.Hour)
	past := now.Add(-time.Hour)
	items := []entity.DeceasedProfile{
		{Base: entity.Base{ID: "1"}, Status: entity.CaseStatusIntake, ServiceType: entity.ServiceBurial, ServiceDate: &soon},
		{Base: entity.Base{ID: entity.NewLocalID()}, Status: entity.CaseStatusIntake, ServiceType: entity.ServiceCremation, ServiceDate: &later},
		{Base: entity.Base{ID: "3"}, Status: entity.CaseStatusClosed, ServiceDate: &past},
	}
	got := CaseStats(items, now)
	assert.Equal(t, 3, got.Total)
	assert.Equal(t, 2, got.ByStatus[entity.CaseStatusIntake])
	assert.Equal(t, 1, got.ByServiceType[entity.ServiceBurial])
	assert.Equal(t, 1, got.Upcoming)
	assert.Equal(t, 1, got.PendingSync)
}

func TestBoard_AgrupaYCuentaVencidas(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	yesterday := now.Add(-24 * time.Hour)
	items := []entity.Task{
		task("1", entity.TaskStatusTodo, "", &yesterday),
		task("2", entity.TaskStatusDone, "", &yesterday),
		task("3", entity.TaskStatusInProgress, "", nil),
		task("4", "archivada", "", nil),
	}
	board := Board(items, now)
	require.Len(t, board.Columns, 3)
	assert.Equal(t, entity.TaskStatusTodo, board.Columns[0].Status)
	assert.Len(t, board.Columns[0].Tasks, 2)
	assert.Len(t, board.Columns[1].Tasks, 1)
	assert.Len(t, board.Columns[2].Tasks, 1)
	assert.Equal(t, 1, board.Overdue)
}

func TestPaymentSummary(t *testing.T) {
	items := []entity.Payment{
		{Amount: decimal.RequireFromString("1500.50"), Method: entity.MethodCard, Status: entity.PaymentCompleted},
		{Amount: decimal.RequireFromString("499.50"), Method: entity.MethodCash, Status: entity.PaymentCompleted},
		{Amount: decimal.RequireFromString("300"), Method: entity.MethodCard, Status: entity.PaymentPending},
		{Amount: decimal.RequireFromString("100"), Method: entity.MethodCard, Status: entity.PaymentRefunded},
		{Amount: decimal.RequireFromString("999"), Method: entity.MethodCard, Status: entity.PaymentFailed},
	}
	got := PaymentSummary(items)
	assert.True(t, got.Revenue.Equal(decimal.RequireFromString("2000")), got.Revenue.String())
	assert.True(t, got.Pending.Equal(decimal.NewFromInt(300)))
	assert.True(t, got.Refunded.Equal(decimal.NewFromInt(100)))
	assert.True(t, got.ByMethod[entity.MethodCard].Equal(decimal.RequireFromString("1500.50")))
	assert.Equal(t, 5, got.Count)
}
