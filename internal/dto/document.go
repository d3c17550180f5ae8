package dto

import (
	"time"

	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TaxPayload carries the base and rate of one tax regime on a line; the
// amount is always recomputed server-side as base × rate / 100.
type TaxPayload struct {
	Base decimal.Decimal `json:"base"`
	Rate decimal.Decimal `json:"rate"`
}

// DocumentLinePayload is one product line in an issuance or update request.
type DocumentLinePayload struct {
	ProductCode int64           `json:"productCode" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unitPrice" binding:"required"`
	ICMS        TaxPayload      `json:"icms"`
	IPI         TaxPayload      `json:"ipi"`
	PIS         TaxPayload      `json:"pis"`
	COFINS      TaxPayload      `json:"cofins"`
}

// IssueDocumentRequest defines the data needed to issue a fiscal document.
// Dates travel as YYYY-MM-DD strings and are parsed by the service so that
// malformed dates surface as a validation failure before anything persists.
type IssueDocumentRequest struct {
	Model                 int                   `json:"model" binding:"required"`
	Series                int                   `json:"series" binding:"required"`
	Number                int                   `json:"number" binding:"required"`
	Type                  string                `json:"type" binding:"required,oneof=S E"`
	PersonCode            int64                 `json:"personCode" binding:"required"`
	EmissionDate          string                `json:"emissionDate" binding:"required"`
	ExitDate              string                `json:"exitDate"`
	Total                 decimal.Decimal       `json:"total" binding:"required"`
	AccessKey             string                `json:"accessKey" binding:"omitempty,len=44,numeric"`
	AuthorizationProtocol string                `json:"authorizationProtocol"`
	CarrierCode           *int64                `json:"carrierCode"`
	FreightValue          decimal.Decimal       `json:"freightValue"`
	GrossWeightKg         decimal.Decimal       `json:"grossWeightKg"`
	NetWeightKg           decimal.Decimal       `json:"netWeightKg"`
	PackageCount          int                   `json:"packageCount"`
	PaymentMethodCode     int64                 `json:"paymentMethodCode" binding:"required"`
	PaymentConditionCode  int64                 `json:"paymentConditionCode" binding:"required"`
	Lines                 []DocumentLinePayload `json:"lines" binding:"required,min=1,dive"`
}

// UpdateDocumentRequest carries the replaceable parts of a document. The
// line set replaces the stored one wholesale.
type UpdateDocumentRequest struct {
	PersonCode            int64                 `json:"personCode" binding:"required"`
	EmissionDate          string                `json:"emissionDate" binding:"required"`
	ExitDate              string                `json:"exitDate"`
	Total                 decimal.Decimal       `json:"total" binding:"required"`
	AccessKey             string                `json:"accessKey" binding:"omitempty,len=44,numeric"`
	AuthorizationProtocol string                `json:"authorizationProtocol"`
	CarrierCode           *int64                `json:"carrierCode"`
	FreightValue          decimal.Decimal       `json:"freightValue"`
	GrossWeightKg         decimal.Decimal       `json:"grossWeightKg"`
	NetWeightKg           decimal.Decimal       `json:"netWeightKg"`
	PackageCount          int                   `json:"packageCount"`
	PaymentMethodCode     int64                 `json:"paymentMethodCode" binding:"required"`
	PaymentConditionCode  int64                 `json:"paymentConditionCode" binding:"required"`
	Lines                 []DocumentLinePayload `json:"lines" binding:"required,min=1,dive"`
}

// TaxResponse is the full base/rate/amount triple of one regime on a line.
type TaxResponse struct {
	Base   decimal.Decimal `json:"base"`
	Rate   decimal.Decimal `json:"rate"`
	Amount decimal.Decimal `json:"amount"`
}

// DocumentLineResponse defines the data returned for a document line.
type DocumentLineResponse struct {
	ProductCode int64           `json:"productCode"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
	ICMS        TaxResponse     `json:"icms"`
	IPI         TaxResponse     `json:"ipi"`
	PIS         TaxResponse     `json:"pis"`
	COFINS      TaxResponse     `json:"cofins"`
}

// DocumentResponse defines the data returned for a fiscal document.
type DocumentResponse struct {
	Model                 int                    `json:"model"`
	Series                int                    `json:"series"`
	Number                int                    `json:"number"`
	Type                  string                 `json:"type"`
	PersonCode            int64                  `json:"personCode"`
	EmissionDate          time.Time              `json:"emissionDate"`
	ExitDate              *time.Time             `json:"exitDate,omitempty"`
	Total                 decimal.Decimal        `json:"total"`
	AccessKey             *string                `json:"accessKey,omitempty"`
	AuthorizationProtocol *string                `json:"authorizationProtocol,omitempty"`
	CarrierCode           *int64                 `json:"carrierCode,omitempty"`
	FreightValue          decimal.Decimal        `json:"freightValue"`
	GrossWeightKg         decimal.Decimal        `json:"grossWeightKg"`
	NetWeightKg           decimal.Decimal        `json:"netWeightKg"`
	PackageCount          int                    `json:"packageCount"`
	PaymentMethodCode     int64                  `json:"paymentMethodCode"`
	PaymentConditionCode  int64                  `json:"paymentConditionCode"`
	Lines                 []DocumentLineResponse `json:"lines,omitempty"`
	CreatedAt             time.Time              `json:"createdAt"`
	LastUpdatedAt         time.Time              `json:"lastUpdatedAt"`
}

func toTaxResponse(t domain.TaxDetail) TaxResponse {
	return TaxResponse{Base: t.Base, Rate: t.Rate, Amount: t.Amount}
}

// ToDocumentResponse converts a domain document (with lines) to its DTO.
func ToDocumentResponse(d *domain.FiscalDocument) DocumentResponse {
	resp := DocumentResponse{
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
		CreatedAt:             d.CreatedAt,
		LastUpdatedAt:         d.LastUpdatedAt,
	}
	if len(d.Lines) > 0 {
		resp.Lines = make([]DocumentLineResponse, len(d.Lines))
		for i, line := range d.Lines {
			resp.Lines[i] = DocumentLineResponse{
				ProductCode: line.ProductCode,
				Quantity:    line.Quantity,
				UnitPrice:   line.UnitPrice,
				Total:       line.Total,
				ICMS:        toTaxResponse(line.ICMS),
				IPI:         toTaxResponse(line.IPI),
				PIS:         toTaxResponse(line.PIS),
				COFINS:      toTaxResponse(line.COFINS),
			}
		}
	}
	return resp
}

// ListDocumentsResponse is one page of documents plus the next-page cursor.
type ListDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
	NextToken *string            `json:"nextToken,omitempty"`
}
