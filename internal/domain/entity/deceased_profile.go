package entity

import "time"

// Estados de un caso.
const (
	CaseStatusIntake     = "intake"
	CaseStatusInProgress = "in_progress"
	CaseStatusCompleted  = "completed"
	CaseStatusClosed     = "closed"
)

// Tipos de servicio.
const (
	ServiceBurial    = "burial"
	ServiceCremation = "cremation"
	ServiceMemorial  = "memorial"
)

// DeceasedProfile representa un caso: el perfil del fallecido y el servicio contratado.
// Colección "cases".
type DeceasedProfile struct {
	Base
	ClientID    string     `json:"client_id"`
	FullName    string     `json:"full_name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	DateOfDeath *time.Time `json:"date_of_death,omitempty"`
	ServiceType string     `json:"service_type"`
	ServiceDate *time.Time `json:"service_date,omitempty"`
	Location    string     `json:"location"`
	Status      string     `json:"status"`
	AssignedTo  string     `json:"assigned_to"`
	Notes       string     `json:"notes"`
}

// WithBase implementa Record.
func (d DeceasedProfile) WithBase(b Base) DeceasedProfile {
	d.Base = b
	return d
}

// ValidCaseStatus informa si s es un estado de caso conocido.
func ValidCaseStatus(s string) bool {
	switch s {
	case CaseStatusIntake, CaseStatusInProgress, CaseStatusCompleted, CaseStatusClosed:
		return true
	}
	return false
}

// ValidServiceType informa si s es un tipo de servicio conocido.
func ValidServiceType(s string) bool {
	switch s {
	case ServiceBurial, ServiceCremation, ServiceMemorial:
		return true
	}
	return false
}
