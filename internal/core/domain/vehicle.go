package domain

import "github.com/shopspring/decimal"

// Vehicle belongs to a carrier and is identified by its plate.
type Vehicle struct {
	Plate       string          `json:"plate"`
	Model       string          `json:"model"`
	Brand       string          `json:"brand"`
	Year        int             `json:"year"`
	CapacityKg  decimal.Decimal `json:"capacityKg"`
	CarrierCode int64           `json:"carrierCode"` // Person code with the carrier role
	AuditFields
}
