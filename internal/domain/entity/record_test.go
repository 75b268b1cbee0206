package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Funeraria-api/internal/domain/entity"
)

func TestNewLocalID_UnicoYMarcado(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := entity.NewLocalID()
		assert.True(t, entity.IsLocalID(id))
		_, dup := seen[id]
		assert.False(t, dup, "id repetido: %s", id)
		seen[id] = struct{}{}
	}
}

func TestIsLocalID(t *testing.T) {
	assert.False(t, entity.IsLocalID("6f1c2a9e-0000-4000-8000-000000000000"))
	assert.False(t, entity.IsLocalID(""))
	assert.True(t, entity.IsLocalID("local-x"))
}

func TestWithBase_ConservaDatos(t *testing.T) {
	task := entity.Task{Title: "Acta", Status: entity.TaskStatusTodo}
	got := task.WithBase(entity.Base{ID: "t1", ParlorID: "p1"})
	assert.Equal(t, "t1", got.RecordBase().ID)
	assert.Equal(t, "Acta", got.Title)
	assert.False(t, got.IsLocal())
}

func TestViewer_Roles(t *testing.T) {
	assert.True(t, entity.Viewer{Role: entity.RoleStaff}.IsStaff())
	assert.False(t, entity.Viewer{Role: entity.RoleStaff}.CanManage())
	assert.True(t, entity.Viewer{Role: entity.RoleSuperAdmin}.CanManage())
}

func TestClient_FullName(t *testing.T) {
	assert.Equal(t, "Ana Gómez", entity.Client{FirstName: "Ana", LastName: "Gómez"}.FullName())
	assert.Equal(t, "Ana", entity.Client{FirstName: "Ana"}.FullName())
}
