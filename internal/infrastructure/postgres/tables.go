package postgres

import (
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Funeraria-api/internal/domain/entity"
	"github.com/jhoicas/Funeraria-api/internal/domain/repository"
)

var (
	_ repository.RemoteCollection[entity.Client]          = (*Collection[entity.Client])(nil)
	_ repository.RemoteCollection[entity.DeceasedProfile] = (*Collection[entity.DeceasedProfile])(nil)
	_ repository.RemoteCollection[entity.Task]            = (*Collection[entity.Task])(nil)
	_ repository.RemoteCollection[entity.Payment]         = (*Collection[entity.Payment])(nil)
)

var clientsTable = table[entity.Client]{
	name:    "clients",
	columns: []string{"first_name", "last_name", "email", "phone", "address", "relationship", "assigned_to", "notes"},
	values: func(c entity.Client) []any {
		return []any{c.FirstName, c.LastName, c.Email, c.Phone, c.Address, c.Relationship, c.AssignedTo, c.Notes}
	},
	scan: func(row pgx.Row) (entity.Client, error) {
		var c entity.Client
		err := row.Scan(&c.ID, &c.ParlorID, &c.CreatedAt, &c.UpdatedAt,
			&c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Address, &c.Relationship, &c.AssignedTo, &c.Notes)
		return c, err
	},
}

var casesTable = table[entity.DeceasedProfile]{
	name: "deceased_profiles",
	columns: []string{"client_id", "full_name", "date_of_birth", "date_of_death", "service_type",
		"service_date", "location", "status", "assigned_to", "notes"},
	values: func(d entity.DeceasedProfile) []any {
		return []any{d.ClientID, d.FullName, d.DateOfBirth, d.DateOfDeath, d.ServiceType,
			d.ServiceDate, d.Location, d.Status, d.AssignedTo, d.Notes}
	},
	scan: func(row pgx.Row) (entity.DeceasedProfile, error) {
		var d entity.DeceasedProfile
		err := row.Scan(&d.ID, &d.ParlorID, &d.CreatedAt, &d.UpdatedAt,
			&d.ClientID, &d.FullName, &d.DateOfBirth, &d.DateOfDeath, &d.ServiceType,
			&d.ServiceDate, &d.Location, &d.Status, &d.AssignedTo, &d.Notes)
		return d, err
	},
}

var tasksTable = table[entity.Task]{
	name:    "tasks",
	columns: []string{"case_id", "title", "description", "status", "priority", "due_date", "assigned_to"},
	values: func(t entity.Task) []any {
		return []any{t.CaseID, t.Title, t.Description, t.Status, t.Priority, t.DueDate, t.AssignedTo}
	},
	scan: func(row pgx.Row) (entity.Task, error) {
		var t entity.Task
		err := row.Scan(&t.ID, &t.ParlorID, &t.CreatedAt, &t.UpdatedAt,
			&t.CaseID, &t.Title, &t.Description, &t.Status, &t.Priority, &t.DueDate, &t.AssignedTo)
		return t, err
	},
}

var paymentsTable = table[entity.Payment]{
	name:    "payments",
	columns: []string{"case_id", "client_id", "amount", "method", "status", "reference", "paid_at"},
	values: func(p entity.Payment) []any {
		return []any{p.CaseID, p.ClientID, p.Amount, p.Method, p.Status, p.Reference, p.PaidAt}
	},
	scan: func(row pgx.Row) (entity.Payment, error) {
		var p entity.Payment
		err := row.Scan(&p.ID, &p.ParlorID, &p.CreatedAt, &p.UpdatedAt,
			&p.CaseID, &p.ClientID, &p.Amount, &p.Method, &p.Status, &p.Reference, &p.PaidAt)
		return p, err
	},
}

// NewClientCollection clientes del parlor. Pasar pool o tx (Querier).
func NewClientCollection(q Querier, parlorID string) *Collection[entity.Client] {
	return &Collection[entity.Client]{q: q, parlorID: parlorID, t: clientsTable}
}

// NewCaseCollection casos (perfiles de fallecidos) del parlor.
func NewCaseCollection(q Querier, parlorID string) *Collection[entity.DeceasedProfile] {
	return &Collection[entity.DeceasedProfile]{q: q, parlorID: parlorID, t: casesTable}
}

// NewTaskCollection tareas del parlor.
func NewTaskCollection(q Querier, parlorID string) *Collection[entity.Task] {
	return &Collection[entity.Task]{q: q, parlorID: parlorID, t: tasksTable}
}

// NewPaymentCollection pagos del parlor.
func NewPaymentCollection(q Querier, parlorID string) *Collection[entity.Payment] {
	return &Collection[entity.Payment]{q: q, parlorID: parlorID, t: paymentsTable}
}

// Factory adapta un constructor de colección a repository.RemoteFactory.
func Factory[T entity.Record[T]](q Querier, build func(Querier, string) *Collection[T]) repository.RemoteFactory[T] {
	return func(parlorID string) repository.RemoteCollection[T] {
		return build(q, parlorID)
	}
}
