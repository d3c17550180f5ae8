package mapping

import (
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/domain"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/models"
)

func ToModelUnitOfMeasure(d domain.UnitOfMeasure) models.UnitOfMeasure {
	return models.UnitOfMeasure{
		Code:         d.Code,
		Name:         d.Name,
		Abbreviation: d.Abbreviation,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainUnitOfMeasure(m models.UnitOfMeasure) domain.UnitOfMeasure {
	return domain.UnitOfMeasure{
		Code:         m.Code,
		Name:         m.Name,
		Abbreviation: m.Abbreviation,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		Code:        d.Code,
		Description: d.Description,
		UnitCode:    d.UnitCode,
		SalePrice:   d.SalePrice,
		Stock:       d.Stock,
		Active:      d.Active,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		Code:        m.Code,
		Description: m.Description,
		UnitCode:    m.UnitCode,
		SalePrice:   m.SalePrice,
		Stock:       m.Stock,
		Active:      m.Active,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelVehicle(d domain.Vehicle) models.Vehicle {
	return models.Vehicle{
		Plate:       d.Plate,
		Model:       d.Model,
		Brand:       d.Brand,
		Year:        d.Year,
		CapacityKg:  d.CapacityKg,
		CarrierCode: d.CarrierCode,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainVehicle(m models.Vehicle) domain.Vehicle {
	return domain.Vehicle{
		Plate:       m.Plate,
		Model:       m.Model,
		Brand:       m.Brand,
		Year:        m.Year,
		CapacityKg:  m.CapacityKg,
		CarrierCode: m.CarrierCode,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
