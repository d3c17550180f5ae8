package domain

import "github.com/shopspring/decimal"

// UnitOfMeasure describes how product quantities are expressed (UN, KG, CX...).
type UnitOfMeasure struct {
	Code         int64  `json:"code"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	AuditFields
}

// Product is a sellable/purchasable item referenced by document lines.
type Product struct {
	Code      int64           `json:"code"`
	Description string        `json:"description"`
	UnitCode  int64           `json:"unitCode"`
	SalePrice decimal.Decimal `json:"salePrice"`
	Stock     decimal.Decimal `json:"stock"`
	Active    bool            `json:"active"`
	AuditFields
}
