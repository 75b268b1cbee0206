package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/Funeraria-api/internal/application/dto"
	"github.com/jhoicas/Funeraria-api/internal/application/store"
	"github.com/jhoicas/Funeraria-api/internal/application/views"
	"github.com/jhoicas/Funeraria-api/internal/domain/entity"
)

// CaseUseCase casos de uso de casos (perfil del fallecido y su servicio).
type CaseUseCase struct {
	records[entity.DeceasedProfile]
}

// NewCaseUseCase construye el caso de uso.
func NewCaseUseCase(registry *store.Registry[entity.DeceasedProfile]) *CaseUseCase {
	return &CaseUseCase{records: newRecords(registry, views.CaseAssignee)}
}

// List vista de casos visible para viewer.
func (uc *CaseUseCase) List(ctx context.Context, viewer entity.Viewer, q dto.ListQuery) (dto.ListResponse[entity.DeceasedProfile], error) {
	res, err := uc.load(ctx, viewer)
	if err != nil {
		return dto.ListResponse[entity.DeceasedProfile]{}, err
	}
	return toListResponse(views.Cases(res.Items, q), res), nil
}

// Stats conteos del panel sobre los casos visibles.
func (uc *CaseUseCase) Stats(ctx context.Context, viewer entity.Viewer) (dto.CaseStatsResponse, error) {
	res, err := uc.load(ctx, viewer)
	if err != nil {
		return dto.CaseStatsResponse{}, err
	}
	out := views.CaseStats(res.Items, uc.now())
	out.Offline = res.Offline
	return out, nil
}

// Create abre un caso. El estado por defecto es intake.
func (uc *CaseUseCase) Create(ctx context.Context, viewer entity.Viewer, in dto.CaseRequest) (dto.WriteResponse[entity.DeceasedProfile], error) {
	if err := validateCase(in); err != nil {
		return dto.WriteResponse[entity.DeceasedProfile]{}, err
	}
	d := caseFromRequest(in)
	d.AssignedTo = assignTo(viewer, in.AssignedTo)
	return uc.create(ctx, viewer, d)
}

// Update reemplaza los datos del caso id.
func (uc *CaseUseCase) Update(ctx context.Context, viewer entity.Viewer, id string, in dto.CaseRequest) (dto.WriteResponse[entity.DeceasedProfile], error) {
	if err := validateCase(in); err != nil {
		return dto.WriteResponse[entity.DeceasedProfile]{}, err
	}
	return uc.update(ctx, viewer, id, store.UpdateWithFallback, func(current entity.DeceasedProfile) (entity.DeceasedProfile, error) {
		d := caseFromRequest(in)
		if in.Status == "" {
			d.Status = current.Status
		}
		d.AssignedTo = reassign(viewer, current.AssignedTo, in.AssignedTo)
		return d, nil
	})
}

// Delete elimina el caso id.
func (uc *CaseUseCase) Delete(ctx context.Context, viewer entity.Viewer, id string) (dto.WriteResponse[entity.DeceasedProfile], error) {
	return uc.remove(ctx, viewer, id)
}

func validateCase(in dto.CaseRequest) error {
	if strings.TrimSpace(in.FullName) == "" {
		return invalid("full_name es requerido")
	}
	if in.Status != "" && !entity.ValidCaseStatus(in.Status) {
		return invalid("status inválido: %s", in.Status)
	}
	if in.ServiceType != "" && !entity.ValidServiceType(in.ServiceType) {
		return invalid("service_type inválido: %s", in.ServiceType)
	}
	if in.DateOfBirth != nil && in.DateOfDeath != nil && in.DateOfDeath.Before(*in.DateOfBirth) {
		return invalid("date_of_death anterior a date_of_birth")
	}
	return nil
}

func caseFromRequest(in dto.CaseRequest) entity.DeceasedProfile {
	status := in.Status
	if status == "" {
		status = entity.CaseStatusIntake
	}
	return entity.DeceasedProfile{
		ClientID:    in.ClientID,
		FullName:    strings.TrimSpace(in.FullName),
		DateOfBirth: in.DateOfBirth,
		DateOfDeath: in.DateOfDeath,
		ServiceType: in.ServiceType,
		ServiceDate: in.ServiceDate,
		Location:    in.Location,
		Status:      status,
		Notes:       in.Notes,
	}
}
