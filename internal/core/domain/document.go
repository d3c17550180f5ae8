package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DocumentType discriminates outgoing (sale) from incoming (purchase) documents.
type DocumentType string

const (
	Outgoing DocumentType = "S" // saída: issued to a client, generates receivables
	Incoming DocumentType = "E" // entrada: received from a supplier, generates payables
)

// DocumentKey is the composite identity of a fiscal document.
type DocumentKey struct {
	Model  int          `json:"model"`
	Series int          `json:"series"`
	Number int          `json:"number"`
	Type   DocumentType `json:"type"`
}

func (k DocumentKey) String() string {
	return fmt.Sprintf("%d/%d/%d-%s", k.Model, k.Series, k.Number, k.Type)
}

// TaxDetail is the base/rate/amount triple of one tax regime on a line.
// Amount is always base × rate / 100.
type TaxDetail struct {
	Base   decimal.Decimal `json:"base"`
	Rate   decimal.Decimal `json:"rate"`
	Amount decimal.Decimal `json:"amount"`
}

// DocumentLine is one product line inside a fiscal document. Lines are owned
// exclusively by their document and are replaced wholesale on update.
type DocumentLine struct {
	DocumentKey DocumentKey     `json:"documentKey"`
	ProductCode int64           `json:"productCode"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"` // quantity × unit price
	ICMS        TaxDetail       `json:"icms"`
	IPI         TaxDetail       `json:"ipi"`
	PIS         TaxDetail       `json:"pis"`
	COFINS      TaxDetail       `json:"cofins"`
}

// FiscalDocument is an NFe header. Its declared total must match the sum of
// its lines within a cent; lines and installments are created atomically with it.
type FiscalDocument struct {
	Key                  DocumentKey     `json:"key"`
	PersonCode           int64           `json:"personCode"` // client (S) or supplier (E)
	EmissionDate         time.Time       `json:"emissionDate"`
	ExitDate             *time.Time      `json:"exitDate,omitempty"`
	Total                decimal.Decimal `json:"total"`
	AccessKey            *string         `json:"accessKey,omitempty"` // 44-digit NFe access key
	AuthorizationProtocol *string        `json:"authorizationProtocol,omitempty"`
	CarrierCode          *int64          `json:"carrierCode,omitempty"`
	FreightValue         decimal.Decimal `json:"freightValue"`
	GrossWeightKg        decimal.Decimal `json:"grossWeightKg"`
	NetWeightKg          decimal.Decimal `json:"netWeightKg"`
	PackageCount         int             `json:"packageCount"`
	PaymentMethodCode    int64           `json:"paymentMethodCode"`
	PaymentConditionCode int64           `json:"paymentConditionCode"`
	Lines                []DocumentLine  `json:"lines,omitempty"`
	AuditFields
}
