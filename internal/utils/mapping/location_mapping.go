package mapping

import (
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/domain"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/models"
)

func ToModelCountry(d domain.Country) models.Country {
	return models.Country{
		Code:         d.Code,
		Name:         d.Name,
		Abbreviation: d.Abbreviation,
		PhonePrefix:  d.PhonePrefix,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainCountry(m models.Country) domain.Country {
	return domain.Country{
		Code:         m.Code,
		Name:         m.Name,
		Abbreviation: m.Abbreviation,
		PhonePrefix:  m.PhonePrefix,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelState(d domain.State) models.State {
	return models.State{
		Code:        d.Code,
		Name:        d.Name,
		UF:          d.UF,
		CountryCode: d.CountryCode,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainState(m models.State) domain.State {
	return domain.State{
		Code:        m.Code,
		Name:        m.Name,
		UF:          m.UF,
		CountryCode: m.CountryCode,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelCity(d domain.City) models.City {
	return models.City{
		Code:        d.Code,
		Name:        d.Name,
		AreaCode:    d.AreaCode,
		StateCode:   d.StateCode,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainCity(m models.City) domain.City {
	return domain.City{
		Code:        m.Code,
		Name:        m.Name,
		AreaCode:    m.AreaCode,
		StateCode:   m.StateCode,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
