package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalIDPrefix marca los IDs asignados en el cliente cuando el backend no confirmó la escritura.
const LocalIDPrefix = "local-"

// Base campos comunes a toda entidad de una colección (identidad, tenant y auditoría).
type Base struct {
	ID        string    `json:"id"`
	ParlorID  string    `json:"parlor_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecordBase devuelve los campos comunes; lo promueven todas las entidades que embeben Base.
func (b Base) RecordBase() Base { return b }

// IsLocal informa si el registro solo existe en la caché local.
func (b Base) IsLocal() bool { return IsLocalID(b.ID) }

// Record es el contrato que el almacén reconciliador exige a cada entidad.
// WithBase devuelve una copia con los campos comunes reemplazados.
type Record[T any] interface {
	RecordBase() Base
	WithBase(b Base) T
}

// NewLocalID genera un ID local resistente a colisiones (no depende del tamaño de la colección).
func NewLocalID() string {
	return LocalIDPrefix + uuid.NewString()
}

// IsLocalID informa si id fue asignado localmente.
func IsLocalID(id string) bool {
	return strings.HasPrefix(id, LocalIDPrefix)
}
