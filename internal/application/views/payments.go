package views

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Funeraria-api/internal/application/dto"
	"github.com/jhoicas/Funeraria-api/internal/domain/entity"
)

// PaymentSummary totales de ingresos (completados), pendientes y reembolsos, más el desglose
// por medio de pago de los completados.
func PaymentSummary(items []entity.Payment) dto.PaymentSummaryResponse {
	out := dto.PaymentSummaryResponse{
		Revenue:  decimal.Zero,
		Pending:  decimal.Zero,
		Refunded: decimal.Zero,
		ByMethod: map[string]decimal.Decimal{},
		Count:    len(items),
	}
	for _, p := range items {
		switch p.Status {
		case entity.PaymentCompleted:
			out.Revenue = out.Revenue.Add(p.Amount)
			out.ByMethod[p.Method] = out.ByMethod[p.Method].Add(p.Amount)
		case entity.PaymentPending:
			out.Pending = out.Pending.Add(p.Amount)
		case entity.PaymentRefunded:
			out.Refunded = out.Refunded.Add(p.Amount)
		}
	}
	out.Revenue = out.Revenue.Round(2)
	out.Pending = out.Pending.Round(2)
	out.Refunded = out.Refunded.Round(2)
	return out
}
