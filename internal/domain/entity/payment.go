package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pago.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentRefunded  = "refunded"
	PaymentFailed    = "failed"
)

// Medios de pago.
const (
	MethodCash      = "cash"
	MethodCard      = "card"
	MethodTransfer  = "transfer"
	MethodInsurance = "insurance"
)

// Payment representa un pago asociado a un caso. El cobro en sí lo hace la pasarela externa;
// aquí solo se registra el resultado.
type Payment struct {
	Base
	CaseID    string          `json:"case_id"`
	ClientID  string          `json:"client_id"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Status    string          `json:"status"`
	Reference string          `json:"reference"` // id de la sesión de checkout de la pasarela
	PaidAt    *time.Time      `json:"paid_at,omitempty"`
}

// WithBase implementa Record.
func (p Payment) WithBase(b Base) Payment {
	p.Base = b
	return p
}

// ValidPaymentStatus informa si s es un estado de pago conocido.
func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentRefunded, PaymentFailed:
		return true
	}
	return false
}

// ValidPaymentMethod informa si m es un medio de pago conocido.
func ValidPaymentMethod(m string) bool {
	switch m {
	case MethodCash, MethodCard, MethodTransfer, MethodInsurance:
		return true
	}
	return false
}
