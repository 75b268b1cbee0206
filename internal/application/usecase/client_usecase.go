package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/Funeraria-api/internal/application/dto"
	"github.com/jhoicas/Funeraria-api/internal/application/store"
	"github.com/jhoicas/Funeraria-api/internal/application/views"
	"github.com/jhoicas/Funeraria-api/internal/domain/entity"
)

// ClientUseCase casos de uso de clientes (familiares responsables de un servicio).
type ClientUseCase struct {
	records[entity.Client]
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(registry *store.Registry[entity.Client]) *ClientUseCase {
	return &ClientUseCase{records: newRecords(registry, views.ClientAssignee)}
}

// List vista de clientes visible para viewer, con búsqueda y filtros.
func (uc *ClientUseCase) List(ctx context.Context, viewer entity.Viewer, q dto.ListQuery) (dto.ListResponse[entity.Client], error) {
	res, err := uc.load(ctx, viewer)
	if err != nil {
		return dto.ListResponse[entity.Client]{}, err
	}
	return toListResponse(views.Clients(res.Items, q), res), nil
}

// Create registra un cliente.
func (uc *ClientUseCase) Create(ctx context.Context, viewer entity.Viewer, in dto.ClientRequest) (dto.WriteResponse[entity.Client], error) {
	if err := validateClient(in); err != nil {
		return dto.WriteResponse[entity.Client]{}, err
	}
	c := clientFromRequest(in)
	c.AssignedTo = assignTo(viewer, in.AssignedTo)
	return uc.create(ctx, viewer, c)
}

// Update reemplaza los datos del cliente id.
func (uc *ClientUseCase) Update(ctx context.Context, viewer entity.Viewer, id string, in dto.ClientRequest) (dto.WriteResponse[entity.Client], error) {
	if err := validateClient(in); err != nil {
		return dto.WriteResponse[entity.Client]{}, err
	}
	return uc.update(ctx, viewer, id, store.UpdateWithFallback, func(current entity.Client) (entity.Client, error) {
		c := clientFromRequest(in)
		c.AssignedTo = reassign(viewer, current.AssignedTo, in.AssignedTo)
		return c, nil
	})
}

// Delete elimina el cliente id.
func (uc *ClientUseCase) Delete(ctx context.Context, viewer entity.Viewer, id string) (dto.WriteResponse[entity.Client], error) {
	return uc.remove(ctx, viewer, id)
}

func validateClient(in dto.ClientRequest) error {
	if strings.TrimSpace(in.FirstName) == "" {
		return invalid("first_name es requerido")
	}
	if in.Email != "" && !strings.Contains(in.Email, "@") {
		return invalid("email inválido")
	}
	return nil
}

func clientFromRequest(in dto.ClientRequest) entity.Client {
	return entity.Client{
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Email:        strings.TrimSpace(in.Email),
		Phone:        in.Phone,
		Address:      in.Address,
		Relationship: in.Relationship,
		Notes:        in.Notes,
	}
}
