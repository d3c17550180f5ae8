package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Person is the row shape of the pessoas table. Role flags live on the row;
// employee-only columns are nullable and populated when is_employee is set.
type Person struct {
	Code              int64
	Type              string // F or J
	Name              string
	TradeName         string
	TaxID             *string
	StateRegistration string
	Email             string
	Phone             string
	Address           string
	District          string
	ZipCode           string
	CityCode          int64
	IsClient          bool
	IsSupplier        bool
	IsEmployee        bool
	IsCarrier         bool
	HireDate          *time.Time
	Position          *string
	Salary            *decimal.Decimal
	Login             *string
	PasswordHash      *string
	Active            bool
	AuditFields
}
