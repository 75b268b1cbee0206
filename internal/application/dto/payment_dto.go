package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentRequest entrada para registrar o actualizar un pago.
type PaymentRequest struct {
	CaseID    string          `json:"case_id"`
	ClientID  string          `json:"client_id"`
	Amount    decimal.Decimal `json:"amount" validate:"required"`
	Method    string          `json:"method" validate:"required,oneof=cash card transfer insurance"`
	Status    string          `json:"status" validate:"omitempty,oneof=pending completed refunded failed"`
	Reference string          `json:"reference"`
	PaidAt    *time.Time      `json:"paid_at"`
}

// PaymentSummaryResponse totales de pagos para el panel.
type PaymentSummaryResponse struct {
	Revenue  decimal.Decimal            `json:"revenue"`  // suma de pagos completados
	Pending  decimal.Decimal            `json:"pending"`  // pagos pendientes
	Refunded decimal.Decimal            `json:"refunded"` // reembolsos
	ByMethod map[string]decimal.Decimal `json:"by_method"`
	Count    int                        `json:"count"`
	Offline  bool                       `json:"offline"`
}
