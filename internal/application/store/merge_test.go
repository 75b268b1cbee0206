package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Funeraria-api/internal/application/store"
	"github.com/jhoicas/Funeraria-api/internal/domain/entity"
)

func TestMerge_Idempotente(t *testing.T) {
	remote := []entity.DeceasedProfile{caseOf("r1", "A"), caseOf("r2", "B")}

	merged := store.Merge(remote, remote)

	assert.Equal(t, ids(remote), ids(merged))
	assert.Equal(t, ids(merged), ids(store.Merge(merged, merged)))
}

func TestMerge_PreservaEntidadLocal(t *testing.T) {
	local := caseOf("local-42", "Pendiente")
	merged := store.Merge([]entity.DeceasedProfile{caseOf("r1", "A")}, []entity.DeceasedProfile{local})

	assert.Contains(t, merged, local)
}

func TestMerge_RemotoTienePrecedencia(t *testing.T) {
	remoteX := caseOf("X", "remoto")
	remoteX.Status = entity.CaseStatusCompleted
	remoteX.Notes = "confirmado"
	cachedX := caseOf("X", "local")

	merged := store.Merge([]entity.DeceasedProfile{remoteX}, []entity.DeceasedProfile{cachedX})

	assert.Len(t, merged, 1)
	assert.Equal(t, remoteX, merged[0], "el remoto reemplaza todos los campos")
}

func TestMerge_SinDuplicados(t *testing.T) {
	merged := store.Merge(
		[]entity.DeceasedProfile{caseOf("a", "1"), caseOf("a", "2")},
		[]entity.DeceasedProfile{caseOf("local-b", "3"), caseOf("local-b", "4"), caseOf("a", "5")},
	)
	assert.Equal(t, []string{"a", "local-b"}, ids(merged))
	assert.Equal(t, []string{"1", "3"}, names(merged))
}

func TestMerge_DescartaIdsDeServidorAusentesEnRemoto(t *testing.T) {
	merged := store.Merge(
		[]entity.DeceasedProfile{caseOf("r1", "A")},
		[]entity.DeceasedProfile{caseOf("r1", "A-old"), caseOf("r2", "Eliminado"), caseOf("local-1", "B")},
	)
	assert.Equal(t, []string{"r1", "local-1"}, ids(merged))
}

func TestMerge_Vacios(t *testing.T) {
	assert.Empty(t, store.Merge[entity.DeceasedProfile](nil, nil))
	assert.NotNil(t, store.Merge[entity.DeceasedProfile](nil, nil))
}
