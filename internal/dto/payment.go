package dto

import (
	"time"

	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentMethodRequest defines the data needed to create or update a payment method.
type PaymentMethodRequest struct {
	Description string `json:"description" binding:"required"`
}

// PaymentMethodResponse defines the data returned for a payment method.
type PaymentMethodResponse struct {
	Code          int64     `json:"code"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

func ToPaymentMethodResponse(m *domain.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		Code:          m.Code,
		Description:   m.Description,
		CreatedAt:     m.CreatedAt,
		LastUpdatedAt: m.LastUpdatedAt,
	}
}

// ConditionInstallmentPayload is one installment definition in a payment
// condition request.
type ConditionInstallmentPayload struct {
	Number            int             `json:"number" binding:"required,min=1"`
	Days              int             `json:"days" binding:"min=0"`
	Percentage        decimal.Decimal `json:"percentage" binding:"required"`
	PaymentMethodCode int64           `json:"paymentMethodCode" binding:"required"`
}

// PaymentConditionRequest defines the data needed to create or update a
// payment condition template. Installment percentages must sum to 100.
type PaymentConditionRequest struct {
	Description  string                        `json:"description" binding:"required"`
	InterestRate decimal.Decimal               `json:"interestRate"`
	FineRate     decimal.Decimal               `json:"fineRate"`
	DiscountRate decimal.Decimal               `json:"discountRate"`
	Installments []ConditionInstallmentPayload `json:"installments" binding:"dive"`
}

// PaymentConditionResponse defines the data returned for a payment condition.
type PaymentConditionResponse struct {
	Code          int64                         `json:"code"`
	Description   string                        `json:"description"`
	InterestRate  decimal.Decimal               `json:"interestRate"`
	FineRate      decimal.Decimal               `json:"fineRate"`
	DiscountRate  decimal.Decimal               `json:"discountRate"`
	Installments  []ConditionInstallmentPayload `json:"installments"`
	CreatedAt     time.Time                     `json:"createdAt"`
	LastUpdatedAt time.Time                     `json:"lastUpdatedAt"`
}

func ToPaymentConditionResponse(c *domain.PaymentCondition) PaymentConditionResponse {
	resp := PaymentConditionResponse{
		Code:          c.Code,
		Description:   c.Description,
		InterestRate:  c.InterestRate,
		FineRate:      c.FineRate,
		DiscountRate:  c.DiscountRate,
		Installments:  make([]ConditionInstallmentPayload, len(c.Installments)),
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
	for i, inst := range c.Installments {
		resp.Installments[i] = ConditionInstallmentPayload{
			Number:            inst.Number,
			Days:              inst.Days,
			Percentage:        inst.Percentage,
			PaymentMethodCode: inst.PaymentMethodCode,
		}
	}
	return resp
}
