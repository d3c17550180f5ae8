package domain

import "github.com/shopspring/decimal"

// PaymentMethod is how an installment gets paid (cash, card, boleto...).
type PaymentMethod struct {
	Code        int64  `json:"code"`
	Description string `json:"description"`
	AuditFields
}

// ConditionInstallment is one installment definition inside a payment condition
// template: sequence number (1-based), day offset from emission, percentage of
// the document total and the payment method for that installment.
type ConditionInstallment struct {
	Number            int             `json:"number"`
	Days              int             `json:"days"`
	Percentage        decimal.Decimal `json:"percentage"`
	PaymentMethodCode int64           `json:"paymentMethodCode"`
}

// PaymentCondition is a reusable template describing how a document total is
// split into dated installments. Installment percentages must sum to 100 at
// authoring time.
type PaymentCondition struct {
	Code         int64                  `json:"code"`
	Description  string                 `json:"description"`
	InterestRate decimal.Decimal        `json:"interestRate"`
	FineRate     decimal.Decimal        `json:"fineRate"`
	DiscountRate decimal.Decimal        `json:"discountRate"`
	Installments []ConditionInstallment `json:"installments"`
	AuditFields
}
