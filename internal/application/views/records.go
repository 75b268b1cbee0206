package views

import (
	"time"

	"github.com/jhoicas/Funeraria-api/internal/application/dto"
	"github.com/jhoicas/Funeraria-api/internal/domain/entity"
)

// Clients aplica búsqueda y filtro de responsable sobre clientes.
func Clients(items []entity.Client, q dto.ListQuery) []entity.Client {
	return Filter(items, func(c entity.Client) bool {
		if q.AssignedTo != "" && c.AssignedTo != q.AssignedTo {
			return false
		}
		return Matches(q.Search, c.FullName(), c.Email, c.Phone)
	})
}

// Cases aplica búsqueda, estado y responsable sobre casos.
func Cases(items []entity.DeceasedProfile, q dto.ListQuery) []entity.DeceasedProfile {
	return Filter(items, func(d entity.DeceasedProfile) bool {
		if q.Status != "" && d.Status != q.Status {
			return false
		}
		if q.AssignedTo != "" && d.AssignedTo != q.AssignedTo {
			return false
		}
		return Matches(q.Search, d.FullName, d.Location, d.Notes)
	})
}

// Tasks aplica búsqueda, estado y responsable sobre tareas.
func Tasks(items []entity.Task, q dto.ListQuery) []entity.Task {
	return Filter(items, func(t entity.Task) bool {
		if q.Status != "" && t.Status != q.Status {
			return false
		}
		if q.AssignedTo != "" && t.AssignedTo != q.AssignedTo {
			return false
		}
		return Matches(q.Search, t.Title, t.Description)
	})
}

// Payments aplica búsqueda y estado sobre pagos.
func Payments(items []entity.Payment, q dto.ListQuery) []entity.Payment {
	return Filter(items, func(p entity.Payment) bool {
		if q.Status != "" && p.Status != q.Status {
			return false
		}
		return Matches(q.Search, p.Reference, p.Method)
	})
}

// CaseStats conteos por estado y tipo de servicio. now fija el inicio de la ventana de
// servicios próximos (7 días).
func CaseStats(items []entity.DeceasedProfile, now time.Time) dto.CaseStatsResponse {
	out := dto.CaseStatsResponse{
		Total:         len(items),
		ByStatus:      map[string]int{},
		ByServiceType: map[string]int{},
	}
	horizon := now.Add(7 * 24 * time.Hour)
	for _, d := range items {
		out.ByStatus[d.Status]++
		if d.ServiceType != "" {
			out.ByServiceType[d.ServiceType]++
		}
		if d.ServiceDate != nil && !d.ServiceDate.Before(now) && d.ServiceDate.Before(horizon) {
			out.Upcoming++
		}
		if d.IsLocal() {
			out.PendingSync++
		}
	}
	return out
}
