package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InstallmentDirection tells whether an installment is money coming in or going out.
type InstallmentDirection string

const (
	Receivable InstallmentDirection = "RECEIVABLE" // contas a receber, from outgoing documents
	Payable    InstallmentDirection = "PAYABLE"    // contas a pagar, from incoming documents
)

// Installment is one scheduled partial payment generated at document issuance.
// It is never authored directly and, apart from settlement, never mutated.
type Installment struct {
	DocumentKey       DocumentKey          `json:"documentKey"`
	Number            int                  `json:"number"` // 1-based sequence within the document
	Direction         InstallmentDirection `json:"direction"`
	PersonCode        int64                `json:"personCode"`
	DueDate           time.Time            `json:"dueDate"`
	Amount            decimal.Decimal      `json:"amount"`
	PaymentMethodCode int64                `json:"paymentMethodCode"`
	PaidAt            *time.Time           `json:"paidAt,omitempty"`
	PaidValue         *decimal.Decimal     `json:"paidValue,omitempty"`
	AuditFields
}

// Settled reports whether the installment has been paid.
func (i Installment) Settled() bool {
	return i.PaidAt != nil
}
