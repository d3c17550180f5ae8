package dto

import (
	"time"

	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InstallmentResponse defines the data returned for a receivable or payable.
type InstallmentResponse struct {
	Model             int              `json:"model"`
	Series            int              `json:"series"`
	Number            int              `json:"number"`
	Type              string           `json:"type"`
	InstallmentNumber int              `json:"installmentNumber"`
	Direction         string           `json:"direction"`
	PersonCode        int64            `json:"personCode"`
	DueDate           time.Time        `json:"dueDate"`
	Amount            decimal.Decimal  `json:"amount"`
	PaymentMethodCode int64            `json:"paymentMethodCode"`
	PaidAt            *time.Time       `json:"paidAt,omitempty"`
	PaidValue         *decimal.Decimal `json:"paidValue,omitempty"`
}

// ToInstallmentResponse converts a domain installment to its DTO.
func ToInstallmentResponse(i *domain.Installment) InstallmentResponse {
	return InstallmentResponse{
		Model:             i.DocumentKey.Model,
		Series:            i.DocumentKey.Series,
		Number:            i.DocumentKey.Number,
		Type:              string(i.DocumentKey.Type),
		InstallmentNumber: i.Number,
		Direction:         string(i.Direction),
		PersonCode:        i.PersonCode,
		DueDate:           i.DueDate,
		Amount:            i.Amount,
		PaymentMethodCode: i.PaymentMethodCode,
		PaidAt:            i.PaidAt,
		PaidValue:         i.PaidValue,
	}
}

// ToInstallmentResponseSlice converts a slice of domain installments.
func ToInstallmentResponseSlice(installments []domain.Installment) []InstallmentResponse {
	res := make([]InstallmentResponse, len(installments))
	for i := range installments {
		res[i] = ToInstallmentResponse(&installments[i])
	}
	return res
}

// SettleInstallmentRequest records the payment of one installment.
type SettleInstallmentRequest struct {
	PaidAt    string          `json:"paidAt" binding:"required"` // YYYY-MM-DD
	PaidValue decimal.Decimal `json:"paidValue" binding:"required"`
}
