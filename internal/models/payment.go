package models

import "github.com/shopspring/decimal"

// PaymentMethod is the row shape of the formas_pagamento table.
type PaymentMethod struct {
	Code        int64
	Description string
	AuditFields
}

// PaymentCondition is the row shape of the condicoes_pagamento table.
type PaymentCondition struct {
	Code         int64
	Description  string
	InterestRate decimal.Decimal
	FineRate     decimal.Decimal
	DiscountRate decimal.Decimal
	AuditFields
}

// ConditionInstallment is the row shape of the parcelas_condicao table,
// keyed by (condition code, number).
type ConditionInstallment struct {
	ConditionCode     int64
	Number            int
	Days              int
	Percentage        decimal.Decimal
	PaymentMethodCode int64
}
