package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PersonType distinguishes individuals (CPF holders) from organizations (CNPJ holders).
type PersonType string

const (
	Individual   PersonType = "F" // pessoa física
	Organization PersonType = "J" // pessoa jurídica
)

// PersonRoles marks which back-office roles a person record plays.
// A single identity record is shared across roles so that looking up a
// tax ID never produces duplicate people.
type PersonRoles struct {
	Client   bool `json:"client"`
	Supplier bool `json:"supplier"`
	Employee bool `json:"employee"`
	Carrier  bool `json:"carrier"`
}

// EmployeeDetails carries the extra fields a person has when acting as an employee,
// including the credentials used to sign in to the back office.
type EmployeeDetails struct {
	HireDate     time.Time       `json:"hireDate"`
	Position     string          `json:"position"`
	Salary       decimal.Decimal `json:"salary"`
	Login        string          `json:"login"`
	PasswordHash string          `json:"-"`
}

// Person is the shared identity record for clients, suppliers, employees and carriers.
type Person struct {
	Code              int64            `json:"code"`
	Type              PersonType       `json:"type"`
	Name              string           `json:"name"`
	TradeName         string           `json:"tradeName"`
	TaxID             *string          `json:"taxID"` // CPF or CNPJ, digits only, unique when present
	StateRegistration string           `json:"stateRegistration"`
	Email             string           `json:"email"`
	Phone             string           `json:"phone"`
	Address           string           `json:"address"`
	District          string           `json:"district"`
	ZipCode           string           `json:"zipCode"`
	CityCode          int64            `json:"cityCode"`
	Roles             PersonRoles      `json:"roles"`
	Employee          *EmployeeDetails `json:"employee,omitempty"`
	Active            bool             `json:"active"`
	AuditFields
}
