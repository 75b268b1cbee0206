package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Funeraria-api/internal/application/dto"
	"github.com/jhoicas/Funeraria-api/internal/application/store"
	"github.com/jhoicas/Funeraria-api/internal/application/usecase"
	"github.com/jhoicas/Funeraria-api/internal/domain"
	"github.com/jhoicas/Funeraria-api/internal/domain/entity"
	"github.com/jhoicas/Funeraria-api/internal/infrastructure/cache"
	"github.com/jhoicas/Funeraria-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/Funeraria-api/internal/interfaces/http"
)

type apiFixture struct {
	app   *fiber.App
	tasks *memory.Backend[entity.Task]
}

func newAPI() apiFixture {
	media := cache.NewMemoryStore()
	cases := memory.NewBackend[entity.DeceasedProfile](entity.CollectionCases, nil)
	clients := memory.NewBackend[entity.Client](entity.CollectionClients, nil)
	tasks := memory.NewBackend[entity.Task](entity.CollectionTasks, nil)
	payments := memory.NewBackend[entity.Payment](entity.CollectionPayments, nil)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CaseUC:    usecase.NewCaseUseCase(store.NewRegistry[entity.DeceasedProfile](entity.CollectionCases, cases.Factory(), media, nil)),
		ClientUC:  usecase.NewClientUseCase(store.NewRegistry[entity.Client](entity.CollectionClients, clients.Factory(), media, nil)),
		TaskUC:    usecase.NewTaskUseCase(store.NewRegistry[entity.Task](entity.CollectionTasks, tasks.Factory(), media, nil)),
		PaymentUC: usecase.NewPaymentUseCase(store.NewRegistry[entity.Payment](entity.CollectionPayments, payments.Factory(), media, nil)),
		JWTSecret: testJWTSecret,
	})
	return apiFixture{app: app, tasks: tasks}
}

func (f apiFixture) do(t *testing.T, method, path, auth string, body any) (*http.Response, []byte) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", auth)
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	var out bytes.Buffer
	_, _ = out.ReadFrom(resp.Body)
	return resp, out.Bytes()
}

// ─── Tareas ──────────────────────────────────────────────────────────────────

func TestTasksAPI_CrearListarYMover(t *testing.T) {
	api := newAPI()
	admin := tokenForRole(t, "admin")

	resp, body := api.do(t, http.MethodPost, "/api/tasks", admin, dto.TaskRequest{Title: "Preparar capilla"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var created dto.WriteResponse[entity.Task]
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, "saved", created.Status)
	assert.Equal(t, "guardado", created.Message)

	resp, body = api.do(t, http.MethodPatch, "/api/tasks/"+created.Item.ID+"/status", admin, dto.MoveTaskRequest{Status: entity.TaskStatusDone})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	resp, body = api.do(t, http.MethodGet, "/api/tasks?status=done", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.ListResponse[entity.Task]
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Equal(t, 1, list.Total)
	assert.False(t, list.Offline)
}

func TestTasksAPI_BackendCaidoGuardaLocal(t *testing.T) {
	api := newAPI()
	admin := tokenForRole(t, "admin")
	api.tasks.Collection(testParlorID).Fail(memory.OpAll, domain.ErrRemoteUnavailable)

	resp, body := api.do(t, http.MethodPost, "/api/tasks", admin, dto.TaskRequest{Title: "Llamar al crematorio"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.WriteResponse[entity.Task]
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, "saved_locally_offline", created.Status)
	assert.True(t, entity.IsLocalID(created.Item.ID))
	assert.NotEmpty(t, created.Warning)
	assert.Equal(t, "REMOTE_UNAVAILABLE", created.WarningCode)

	resp, body = api.do(t, http.MethodGet, "/api/tasks/board", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var board dto.TaskBoardResponse
	require.NoError(t, json.Unmarshal(body, &board))
	assert.True(t, board.Offline)
	assert.Len(t, board.Columns[0].Tasks, 1)
}

func TestTasksAPI_MoverRechazado_Retorna422(t *testing.T) {
	api := newAPI()
	admin := tokenForRole(t, "admin")
	resp, body := api.do(t, http.MethodPost, "/api/tasks", admin, dto.TaskRequest{Title: "Acta"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.WriteResponse[entity.Task]
	require.NoError(t, json.Unmarshal(body, &created))

	api.tasks.Collection(testParlorID).Fail(memory.OpUpdate, domain.ErrRemoteRejected)
	resp, body = api.do(t, http.MethodPatch, "/api/tasks/"+created.Item.ID+"/status", admin, dto.MoveTaskRequest{Status: entity.TaskStatusDone})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, string(body), "REMOTE_REJECTED")
}

func TestTasksAPI_ValidacionRetorna400(t *testing.T) {
	api := newAPI()
	resp, body := api.do(t, http.MethodPost, "/api/tasks", tokenForRole(t, "staff"), dto.TaskRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "VALIDATION")
}

func TestTasksAPI_ActualizarInexistenteRetorna404(t *testing.T) {
	api := newAPI()
	resp, _ := api.do(t, http.MethodPut, "/api/tasks/no-existe", tokenForRole(t, "admin"), dto.TaskRequest{Title: "x"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ─── Roles ───────────────────────────────────────────────────────────────────

func TestAPI_StaffNoPuedeEliminar(t *testing.T) {
	api := newAPI()
	staff := tokenForRole(t, "staff")
	resp, body := api.do(t, http.MethodPost, "/api/clients", staff, dto.ClientRequest{FirstName: "Ana"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.WriteResponse[entity.Client]
	require.NoError(t, json.Unmarshal(body, &created))

	resp, _ = api.do(t, http.MethodDelete, "/api/clients/"+created.Item.ID, staff, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body = api.do(t, http.MethodDelete, "/api/clients/"+created.Item.ID, tokenForRole(t, "admin"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"status":"deleted"`)
}

func TestAPI_StaffSinAccesoAPagos(t *testing.T) {
	api := newAPI()
	resp, _ := api.do(t, http.MethodGet, "/api/payments", tokenForRole(t, "staff"), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAPI_RolDesconocidoBloqueado(t *testing.T) {
	api := newAPI()
	resp, _ := api.do(t, http.MethodGet, "/api/cases", tokenForRole(t, "visitante"), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAPI_ParlorsAislados(t *testing.T) {
	api := newAPI()
	resp, _ := api.do(t, http.MethodPost, "/api/cases", tokenForRole(t, "admin"), dto.CaseRequest{FullName: "Rosa Díaz"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	other := tokenFor(t, "u-9", "parlor-2", "admin")
	resp, body := api.do(t, http.MethodGet, "/api/cases", other, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.ListResponse[entity.DeceasedProfile]
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Equal(t, 0, list.Total)

	// super_admin puede consultar el parlor original.
	root := tokenFor(t, "root", "parlor-2", "super_admin")
	resp, body = api.do(t, http.MethodGet, "/api/cases/stats?parlor_id="+testParlorID, root, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stats dto.CaseStatsResponse
	require.NoError(t, json.Unmarshal(body, &stats))
	assert.Equal(t, 1, stats.Total)
}
