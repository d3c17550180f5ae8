package mapping

import (
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/domain"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/models"
)

func ToModelPaymentMethod(d domain.PaymentMethod) models.PaymentMethod {
	return models.PaymentMethod{
		Code:        d.Code,
		Description: d.Description,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainPaymentMethod(m models.PaymentMethod) domain.PaymentMethod {
	return domain.PaymentMethod{
		Code:        m.Code,
		Description: m.Description,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelPaymentCondition(d domain.PaymentCondition) (models.PaymentCondition, []models.ConditionInstallment) {
	header := models.PaymentCondition{
		Code:         d.Code,
		Description:  d.Description,
		InterestRate: d.InterestRate,
		FineRate:     d.FineRate,
		DiscountRate: d.DiscountRate,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
	rows := make([]models.ConditionInstallment, len(d.Installments))
	for i, inst := range d.Installments {
		rows[i] = models.ConditionInstallment{
			ConditionCode:     d.Code,
			Number:            inst.Number,
			Days:              inst.Days,
			Percentage:        inst.Percentage,
			PaymentMethodCode: inst.PaymentMethodCode,
		}
	}
	return header, rows
}

func ToDomainPaymentCondition(m models.PaymentCondition, rows []models.ConditionInstallment) domain.PaymentCondition {
	d := domain.PaymentCondition{
		Code:         m.Code,
		Description:  m.Description,
		InterestRate: m.InterestRate,
		FineRate:     m.FineRate,
		DiscountRate: m.DiscountRate,
		Installments: make([]domain.ConditionInstallment, len(rows)),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
	for i, row := range rows {
		d.Installments[i] = domain.ConditionInstallment{
			Number:            row.Number,
			Days:              row.Days,
			Percentage:        row.Percentage,
			PaymentMethodCode: row.PaymentMethodCode,
		}
	}
	return d
}
