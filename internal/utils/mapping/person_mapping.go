package mapping

import (
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/domain"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/models"
)

// ToModelPerson flattens the domain person (with its optional employee
// details) into the pessoas row shape.
func ToModelPerson(d domain.Person) models.Person {
	m := models.Person{
		Code:              d.Code,
		Type:              string(d.Type),
		Name:              d.Name,
		TradeName:         d.TradeName,
		TaxID:             d.TaxID,
		StateRegistration: d.StateRegistration,
		Email:             d.Email,
		Phone:             d.Phone,
		Address:           d.Address,
		District:          d.District,
		ZipCode:           d.ZipCode,
		CityCode:          d.CityCode,
		IsClient:          d.Roles.Client,
		IsSupplier:        d.Roles.Supplier,
		IsEmployee:        d.Roles.Employee,
		IsCarrier:         d.Roles.Carrier,
		Active:            d.Active,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
	if d.Employee != nil {
		hireDate := d.Employee.HireDate
		position := d.Employee.Position
		salary := d.Employee.Salary
		login := d.Employee.Login
		hash := d.Employee.PasswordHash
		m.HireDate = &hireDate
		m.Position = &position
		m.Salary = &salary
		m.Login = &login
		m.PasswordHash = &hash
	}
	return m
}

// ToDomainPerson rebuilds the domain person from a pessoas row.
func ToDomainPerson(m models.Person) domain.Person {
	d := domain.Person{
		Code:              m.Code,
		Type:              domain.PersonType(m.Type),
		Name:              m.Name,
		TradeName:         m.TradeName,
		TaxID:             m.TaxID,
		StateRegistration: m.StateRegistration,
		Email:             m.Email,
		Phone:             m.Phone,
		Address:           m.Address,
		District:          m.District,
		ZipCode:           m.ZipCode,
		CityCode:          m.CityCode,
		Roles: domain.PersonRoles{
			Client:   m.IsClient,
			Supplier: m.IsSupplier,
			Employee: m.IsEmployee,
			Carrier:  m.IsCarrier,
		},
		Active:      m.Active,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.IsEmployee && m.Login != nil {
		emp := &domain.EmployeeDetails{Login: *m.Login}
		if m.HireDate != nil {
			emp.HireDate = *m.HireDate
		}
		if m.Position != nil {
			emp.Position = *m.Position
		}
		if m.Salary != nil {
			emp.Salary = *m.Salary
		}
		if m.PasswordHash != nil {
			emp.PasswordHash = *m.PasswordHash
		}
		d.Employee = emp
	}
	return d
}

// ToDomainPersonSlice converts a slice of pessoas rows.
func ToDomainPersonSlice(ms []models.Person) []domain.Person {
	ds := make([]domain.Person, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPerson(m)
	}
	return ds
}
