package models

import "github.com/shopspring/decimal"

// UnitOfMeasure is the row shape of the unidades_medida table.
type UnitOfMeasure struct {
	Code         int64
	Name         string
	Abbreviation string
	AuditFields
}

// Product is the row shape of the produtos table.
type Product struct {
	Code        int64
	Description string
	UnitCode    int64
	SalePrice   decimal.Decimal
	Stock       decimal.Decimal
	Active      bool
	AuditFields
}

// Vehicle is the row shape of the veiculos table.
type Vehicle struct {
	Plate       string
	Model       string
	Brand       string
	Year        int
	CapacityKg  decimal.Decimal
	CarrierCode int64
	AuditFields
}
