package store

import (
	"errors"

	"github.com/jhoicas/Funeraria-api/internal/domain"
)

// Status etiqueta el desenlace de una escritura para el mensaje al usuario.
type Status string

const (
	// StatusSaved: confirmado por el backend remoto.
	StatusSaved Status = "saved"
	// StatusSavedLocally: modo offline explícito, no se intentó el remoto.
	StatusSavedLocally Status = "saved_locally"
	// StatusSavedOffline: el remoto falló y se guardó en la caché local.
	StatusSavedOffline Status = "saved_locally_offline"
	// StatusDeleted: borrado confirmado por el remoto.
	StatusDeleted Status = "deleted"
	// StatusDeletedLocally: registro solo local, eliminado sin llamar al remoto.
	StatusDeletedLocally Status = "deleted_locally"
)

// Local informa si el desenlace solo existe en la caché local.
func (s Status) Local() bool {
	return s == StatusSavedLocally || s == StatusSavedOffline || s == StatusDeletedLocally
}

// Message texto para el usuario según el desenlace.
func (s Status) Message() string {
	switch s {
	case StatusSaved:
		return "guardado"
	case StatusSavedLocally:
		return "guardado localmente"
	case StatusSavedOffline:
		return "guardado localmente (modo offline)"
	case StatusDeleted:
		return "eliminado"
	case StatusDeletedLocally:
		return "eliminado localmente"
	default:
		return string(s)
	}
}

// Result desenlace terminal de una escritura exitosa (remota o con respaldo local).
// Warning lleva la causa remota cuando el desenlace es local por fallo.
type Result[T any] struct {
	Item    T
	Status  Status
	Warning error
}

// LoadResult vista reconciliada de una colección.
// Offline indica que el remoto no respondió y Items es la instantánea local.
type LoadResult[T any] struct {
	Items   []T
	Offline bool
	Warning error
}

// Códigos estables de la causa remota de un desenlace local.
const (
	WarningRemoteRejected    = "REMOTE_REJECTED"
	WarningRemoteUnavailable = "REMOTE_UNAVAILABLE"
)

// WarningCode distingue un rechazo del backend (problema recurrente) de una caída transitoria.
// Vacío si err es nil.
func WarningCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrRemoteRejected):
		return WarningRemoteRejected
	default:
		return WarningRemoteUnavailable
	}
}
