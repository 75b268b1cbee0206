package dto

import "time"

// CaseRequest entrada para crear o actualizar un caso (perfil del fallecido).
type CaseRequest struct {
	ClientID    string     `json:"client_id"`
	FullName    string     `json:"full_name" validate:"required"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	DateOfDeath *time.Time `json:"date_of_death"`
	ServiceType string     `json:"service_type" validate:"omitempty,oneof=burial cremation memorial"`
	ServiceDate *time.Time `json:"service_date"`
	Location    string     `json:"location"`
	Status      string     `json:"status" validate:"omitempty,oneof=intake in_progress completed closed"`
	AssignedTo  string     `json:"assigned_to"`
	Notes       string     `json:"notes"`
}

// CaseStatsResponse conteos de casos para el panel.
type CaseStatsResponse struct {
	Total         int            `json:"total"`
	ByStatus      map[string]int `json:"by_status"`
	ByServiceType map[string]int `json:"by_service_type"`
	Upcoming      int            `json:"upcoming"` // servicios en los próximos 7 días
	PendingSync   int            `json:"pending_sync"`
	Offline       bool           `json:"offline"`
}
