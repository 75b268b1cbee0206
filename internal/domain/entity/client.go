package entity

// Client representa un cliente (familiar o responsable) de la funeraria.
type Client struct {
	Base
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Relationship string `json:"relationship"` // parentesco con el fallecido
	AssignedTo   string `json:"assigned_to"`  // user_id del staff responsable
	Notes        string `json:"notes"`
}

// WithBase implementa Record.
func (c Client) WithBase(b Base) Client {
	c.Base = b
	return c
}

// FullName nombre completo del cliente.
func (c Client) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
