package entity

// Roles válidos emitidos por el proveedor de identidad.
const (
	RoleStaff      = "staff"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// Viewer identidad de quien consulta: la entrega el proveedor de identidad (JWT),
// el núcleo no la calcula.
type Viewer struct {
	UserID   string
	ParlorID string
	Role     string
}

// IsStaff informa si el usuario solo puede ver los registros asignados a él.
func (v Viewer) IsStaff() bool { return v.Role == RoleStaff }

// CanManage informa si el usuario puede ver y eliminar todos los registros del parlor.
func (v Viewer) CanManage() bool { return v.Role == RoleAdmin || v.Role == RoleSuperAdmin }

