package usecase

import (
	"context"

	"github.com/jhoicas/Funeraria-api/internal/application/dto"
	"github.com/jhoicas/Funeraria-api/internal/application/store"
	"github.com/jhoicas/Funeraria-api/internal/application/views"
	"github.com/jhoicas/Funeraria-api/internal/domain"
	"github.com/jhoicas/Funeraria-api/internal/domain/entity"
)

// PaymentUseCase casos de uso de pagos. Los pagos no tienen responsable: solo los
// administradores los consultan y registran.
type PaymentUseCase struct {
	records[entity.Payment]
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(registry *store.Registry[entity.Payment]) *PaymentUseCase {
	return &PaymentUseCase{records: newRecords(registry, nil)}
}

// List pagos del parlor.
func (uc *PaymentUseCase) List(ctx context.Context, viewer entity.Viewer, q dto.ListQuery) (dto.ListResponse[entity.Payment], error) {
	if err := requireManager(viewer); err != nil {
		return dto.ListResponse[entity.Payment]{}, err
	}
	res, err := uc.load(ctx, viewer)
	if err != nil {
		return dto.ListResponse[entity.Payment]{}, err
	}
	return toListResponse(views.Payments(res.Items, q), res), nil
}

// Summary totales del panel financiero.
func (uc *PaymentUseCase) Summary(ctx context.Context, viewer entity.Viewer) (dto.PaymentSummaryResponse, error) {
	if err := requireManager(viewer); err != nil {
		return dto.PaymentSummaryResponse{}, err
	}
	res, err := uc.load(ctx, viewer)
	if err != nil {
		return dto.PaymentSummaryResponse{}, err
	}
	out := views.PaymentSummary(res.Items)
	out.Offline = res.Offline
	return out, nil
}

// Create registra un pago. Estado por defecto pending.
func (uc *PaymentUseCase) Create(ctx context.Context, viewer entity.Viewer, in dto.PaymentRequest) (dto.WriteResponse[entity.Payment], error) {
	if err := requireManager(viewer); err != nil {
		return dto.WriteResponse[entity.Payment]{}, err
	}
	if err := validatePayment(in); err != nil {
		return dto.WriteResponse[entity.Payment]{}, err
	}
	return uc.create(ctx, viewer, paymentFromRequest(in))
}

// Update reemplaza los datos del pago id. Se usa la política estricta: un cambio de
// estado de un pago no debe quedar aplicado solo en local.
func (uc *PaymentUseCase) Update(ctx context.Context, viewer entity.Viewer, id string, in dto.PaymentRequest) (dto.WriteResponse[entity.Payment], error) {
	if err := requireManager(viewer); err != nil {
		return dto.WriteResponse[entity.Payment]{}, err
	}
	if err := validatePayment(in); err != nil {
		return dto.WriteResponse[entity.Payment]{}, err
	}
	return uc.update(ctx, viewer, id, store.UpdateStrict, func(current entity.Payment) (entity.Payment, error) {
		p := paymentFromRequest(in)
		if in.Status == "" {
			p.Status = current.Status
		}
		return p, nil
	})
}

// Delete elimina el pago id.
func (uc *PaymentUseCase) Delete(ctx context.Context, viewer entity.Viewer, id string) (dto.WriteResponse[entity.Payment], error) {
	return uc.remove(ctx, viewer, id)
}

func requireManager(viewer entity.Viewer) error {
	if !viewer.CanManage() {
		return domain.ErrForbidden
	}
	return nil
}

func validatePayment(in dto.PaymentRequest) error {
	if !in.Amount.IsPositive() {
		return invalid("amount debe ser mayor que cero")
	}
	if !entity.ValidPaymentMethod(in.Method) {
		return invalid("method inválido: %s", in.Method)
	}
	if in.Status != "" && !entity.ValidPaymentStatus(in.Status) {
		return invalid("status inválido: %s", in.Status)
	}
	return nil
}

func paymentFromRequest(in dto.PaymentRequest) entity.Payment {
	p := entity.Payment{
		CaseID:    in.CaseID,
		ClientID:  in.ClientID,
		Amount:    in.Amount.Round(2),
		Method:    in.Method,
		Status:    in.Status,
		Reference: in.Reference,
		PaidAt:    in.PaidAt,
	}
	if p.Status == "" {
		p.Status = entity.PaymentPending
	}
	return p
}
