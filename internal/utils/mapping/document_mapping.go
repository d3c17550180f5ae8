package mapping

import (
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/domain"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/models"
)

func ToModelFiscalDocument(d domain.FiscalDocument) models.FiscalDocument {
	return models.FiscalDocument{
		Model:                 d.Key.Model,
		Series:                d.Key.Series,
		Number:                d.Key.Number,
		Type:                  string(d.Key.Type),
		PersonCode:            d.PersonCode,
		EmissionDate:          d.EmissionDate,
		ExitDate:              d.ExitDate,
		Total:                 d.Total,
		AccessKey:             d.AccessKey,
		AuthorizationProtocol: d.AuthorizationProtocol,
		CarrierCode:           d.CarrierCode,
		FreightValue:          d.FreightValue,
		GrossWeightKg:         d.GrossWeightKg,
		NetWeightKg:           d.NetWeightKg,
		PackageCount:          d.PackageCount,
		PaymentMethodCode:     d.PaymentMethodCode,
		PaymentConditionCode:  d.PaymentConditionCode,
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainFiscalDocument(m models.FiscalDocument) domain.FiscalDocument {
	return domain.FiscalDocument{
		Key: domain.DocumentKey{
			Model:  m.Model,
			Series: m.Series,
			Number: m.Number,
			Type:   domain.DocumentType(m.Type),
		},
		PersonCode:            m.PersonCode,
		EmissionDate:          m.EmissionDate,
		ExitDate:              m.ExitDate,
		Total:                 m.Total,
		AccessKey:             m.AccessKey,
		AuthorizationProtocol: m.AuthorizationProtocol,
		CarrierCode:           m.CarrierCode,
		FreightValue:          m.FreightValue,
		GrossWeightKg:         m.GrossWeightKg,
		NetWeightKg:           m.NetWeightKg,
		PackageCount:          m.PackageCount,
		PaymentMethodCode:     m.PaymentMethodCode,
		PaymentConditionCode:  m.PaymentConditionCode,
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelDocumentLine(d domain.DocumentLine) models.DocumentLine {
	return models.DocumentLine{
		Model:        d.DocumentKey.Model,
		Series:       d.DocumentKey.Series,
		Number:       d.DocumentKey.Number,
		Type:         string(d.DocumentKey.Type),
		ProductCode:  d.ProductCode,
		Quantity:     d.Quantity,
		UnitPrice:    d.UnitPrice,
		Total:        d.Total,
		ICMSBase:     d.ICMS.Base,
		ICMSRate:     d.ICMS.Rate,
		ICMSAmount:   d.ICMS.Amount,
		IPIBase:      d.IPI.Base,
		IPIRate:      d.IPI.Rate,
		IPIAmount:    d.IPI.Amount,
		PISBase:      d.PIS.Base,
		PISRate:      d.PIS.Rate,
		PISAmount:    d.PIS.Amount,
		COFINSBase:   d.COFINS.Base,
		COFINSRate:   d.COFINS.Rate,
		COFINSAmount: d.COFINS.Amount,
	}
}

func ToDomainDocumentLine(m models.DocumentLine) domain.DocumentLine {
	return domain.DocumentLine{
		DocumentKey: domain.DocumentKey{
			Model:  m.Model,
			Series: m.Series,
			Number: m.Number,
			Type:   domain.DocumentType(m.Type),
		},
		ProductCode: m.ProductCode,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		Total:       m.Total,
		ICMS:        domain.TaxDetail{Base: m.ICMSBase, Rate: m.ICMSRate, Amount: m.ICMSAmount},
		IPI:         domain.TaxDetail{Base: m.IPIBase, Rate: m.IPIRate, Amount: m.IPIAmount},
		PIS:         domain.TaxDetail{Base: m.PISBase, Rate: m.PISRate, Amount: m.PISAmount},
		COFINS:      domain.TaxDetail{Base: m.COFINSBase, Rate: m.COFINSRate, Amount: m.COFINSAmount},
	}
}

func ToDomainDocumentLineSlice(ms []models.DocumentLine) []domain.DocumentLine {
	ds := make([]domain.DocumentLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDocumentLine(m)
	}
	return ds
}

func ToModelInstallment(d domain.Installment) models.Installment {
	return models.Installment{
		Model:             d.DocumentKey.Model,
		Series:            d.DocumentKey.Series,
		Number:            d.DocumentKey.Number,
		Type:              string(d.DocumentKey.Type),
		InstallmentNumber: d.Number,
		PersonCode:        d.PersonCode,
		DueDate:           d.DueDate,
		Amount:            d.Amount,
		PaymentMethodCode: d.PaymentMethodCode,
		PaidAt:            d.PaidAt,
		PaidValue:         d.PaidValue,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainInstallment(m models.Installment, direction domain.InstallmentDirection) domain.Installment {
	return domain.Installment{
		DocumentKey: domain.DocumentKey{
			Model:  m.Model,
			Series: m.Series,
			Number: m.Number,
			Type:   domain.DocumentType(m.Type),
		},
		Number:            m.InstallmentNumber,
		Direction:         direction,
		PersonCode:        m.PersonCode,
		DueDate:           m.DueDate,
		Amount:            m.Amount,
		PaymentMethodCode: m.PaymentMethodCode,
		PaidAt:            m.PaidAt,
		PaidValue:         m.PaidValue,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}
