package dto

// ClientRequest entrada para crear o actualizar un cliente.
type ClientRequest struct {
	FirstName    string `json:"first_name" validate:"required,max=120"`
	LastName     string `json:"last_name" validate:"omitempty,max=120"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Relationship string `json:"relationship"`
	AssignedTo   string `json:"assigned_to"`
	Notes        string `json:"notes"`
}
