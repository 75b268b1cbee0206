package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ListResponse vista reconciliada de una colección.
// Offline indica que el backend no respondió y los datos vienen de la caché local.
type ListResponse[T any] struct {
	Items   []T    `json:"items"`
	Total   int    `json:"total"`
	Offline     bool   `json:"offline"`
	Warning     string `json:"warning,omitempty"`
	WarningCode string `json:"warning_code,omitempty"` // REMOTE_REJECTED | REMOTE_UNAVAILABLE
}

// WriteResponse desenlace terminal de una escritura: exactamente una notificación por operación.
type WriteResponse[T any] struct {
	Item        T      `json:"item"`
	Status      string `json:"status"` // saved | saved_locally | saved_locally_offline | deleted | deleted_locally
	Message     string `json:"message"`
	Warning     string `json:"warning,omitempty"`
	WarningCode string `json:"warning_code,omitempty"` // REMOTE_REJECTED | REMOTE_UNAVAILABLE
}

// ListQuery filtros de vista (no se envían al backend).
type ListQuery struct {
	Search     string `query:"q"`
	Status     string `query:"status"`
	AssignedTo string `query:"assigned_to"`
}
