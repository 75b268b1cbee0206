package views

import "github.com/jhoicas/Funeraria-api/internal/domain/entity"

// Visible filtra los registros que viewer puede ver: staff solo los asignados a él;
// admin y super_admin todos los del parlor (el parlor ya viene acotado por el repositorio).
func Visible[T any](items []T, viewer entity.Viewer, assignee func(T) string) []T {
	if !viewer.IsStaff() {
		return items
	}
	return Filter(items, func(it T) bool { return assignee(it) == viewer.UserID })
}

// CanTouch informa si viewer puede modificar un registro asignado a assignedTo.
func CanTouch(viewer entity.Viewer, assignedTo string) bool {
	return !viewer.IsStaff() || assignedTo == viewer.UserID
}

// Filter devuelve los elementos que cumplen keep, preservando el orden.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// ClientAssignee, CaseAssignee, TaskAssignee devuelven el responsable de cada registro.
func ClientAssignee(c entity.Client) string        { return c.AssignedTo }
func CaseAssignee(d entity.DeceasedProfile) string { return d.AssignedTo }
func TaskAssignee(t entity.Task) string            { return t.AssignedTo }
