package dto

import (
	"time"

	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EmployeePayload is the employee-only section of a person request. Password
// is accepted on create and ignored on update unless present.
type EmployeePayload struct {
	HireDate string          `json:"hireDate" binding:"required"` // YYYY-MM-DD
	Position string          `json:"position" binding:"required"`
	Salary   decimal.Decimal `json:"salary" binding:"required"`
	Login    string          `json:"login" binding:"required"`
	Password string          `json:"password,omitempty"`
}

// PersonRolesPayload mirrors domain.PersonRoles for requests.
type PersonRolesPayload struct {
	Client   bool `json:"client"`
	Supplier bool `json:"supplier"`
	Employee bool `json:"employee"`
	Carrier  bool `json:"carrier"`
}

// CreatePersonRequest defines the data needed to register a person in any role.
type CreatePersonRequest struct {
	Type              string             `json:"type" binding:"required,oneof=F J"`
	Name              string             `json:"name" binding:"required"`
	TradeName         string             `json:"tradeName"`
	TaxID             string             `json:"taxID"`
	StateRegistration string             `json:"stateRegistration"`
	Email             string             `json:"email" binding:"omitempty,email"`
	Phone             string             `json:"phone"`
	Address           string             `json:"address"`
	District          string             `json:"district"`
	ZipCode           string             `json:"zipCode"`
	CityCode          int64              `json:"cityCode" binding:"required"`
	Roles             PersonRolesPayload `json:"roles"`
	Employee          *EmployeePayload   `json:"employee,omitempty"`
}

// UpdatePersonRequest carries the replaceable fields of a person.
type UpdatePersonRequest struct {
	Type              string             `json:"type" binding:"required,oneof=F J"`
	Name              string             `json:"name" binding:"required"`
	TradeName         string             `json:"tradeName"`
	TaxID             string             `json:"taxID"`
	StateRegistration string             `json:"stateRegistration"`
	Email             string             `json:"email" binding:"omitempty,email"`
	Phone             string             `json:"phone"`
	Address           string             `json:"address"`
	District          string             `json:"district"`
	ZipCode           string             `json:"zipCode"`
	CityCode          int64              `json:"cityCode" binding:"required"`
	Roles             PersonRolesPayload `json:"roles"`
	Employee          *EmployeePayload   `json:"employee,omitempty"`
}

// EmployeeResponse is the employee section of a person response. The
// password hash never leaves the service.
type EmployeeResponse struct {
	HireDate time.Time       `json:"hireDate"`
	Position string          `json:"position"`
	Salary   decimal.Decimal `json:"salary"`
	Login    string          `json:"login"`
}

// PersonResponse defines the data returned for a person.
type PersonResponse struct {
	Code              int64              `json:"code"`
	Type              string             `json:"type"`
	Name              string             `json:"name"`
	TradeName         string             `json:"tradeName"`
	TaxID             *string            `json:"taxID"`
	StateRegistration string             `json:"stateRegistration"`
	Email             string             `json:"email"`
	Phone             string             `json:"phone"`
	Address           string             `json:"address"`
	District          string             `json:"district"`
	ZipCode           string             `json:"zipCode"`
	CityCode          int64              `json:"cityCode"`
	Roles             PersonRolesPayload `json:"roles"`
	Employee          *EmployeeResponse  `json:"employee,omitempty"`
	Active            bool               `json:"active"`
	CreatedAt         time.Time          `json:"createdAt"`
	LastUpdatedAt     time.Time          `json:"lastUpdatedAt"`
}

// ToPersonResponse converts a domain.Person to its response DTO.
func ToPersonResponse(p *domain.Person) PersonResponse {
	resp := PersonResponse{
		Code:              p.Code,
		Type:              string(p.Type),
		Name:              p.Name,
		TradeName:         p.TradeName,
		TaxID:             p.TaxID,
		StateRegistration: p.StateRegistration,
		Email:             p.Email,
		Phone:             p.Phone,
		Address:           p.Address,
		District:          p.District,
		ZipCode:           p.ZipCode,
		CityCode:          p.CityCode,
		Roles: PersonRolesPayload{
			Client:   p.Roles.Client,
			Supplier: p.Roles.Supplier,
			Employee: p.Roles.Employee,
			Carrier:  p.Roles.Carrier,
		},
		Active:        p.Active,
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
	if p.Employee != nil {
		resp.Employee = &EmployeeResponse{
			HireDate: p.Employee.HireDate,
			Position: p.Employee.Position,
			Salary:   p.Employee.Salary,
			Login:    p.Employee.Login,
		}
	}
	return resp
}

// ToPersonResponseSlice converts a slice of domain persons.
func ToPersonResponseSlice(persons []domain.Person) []PersonResponse {
	res := make([]PersonResponse, len(persons))
	for i := range persons {
		res[i] = ToPersonResponse(&persons[i])
	}
	return res
}
