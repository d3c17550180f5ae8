package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FiscalDocument is the row shape of the notas_fiscais table, keyed by
// (modelo, serie, numero, tipo).
type FiscalDocument struct {
	Model                 int
	Series                int
	Number                int
	Type                  string // S or E
	PersonCode            int64
	EmissionDate          time.Time
	ExitDate              *time.Time
	Total                 decimal.Decimal
	AccessKey             *string
	AuthorizationProtocol *string
	CarrierCode           *int64
	FreightValue          decimal.Decimal
	GrossWeightKg         decimal.Decimal
	NetWeightKg           decimal.Decimal
	PackageCount          int
	PaymentMethodCode     int64
	PaymentConditionCode  int64
	AuditFields
}

// DocumentLine is the row shape of the itens_nota table, keyed by the
// document key plus product code.
type DocumentLine struct {
	Model        int
	Series       int
	Number       int
	Type         string
	ProductCode  int64
	Quantity     decimal.Decimal
	UnitPrice    decimal.Decimal
	Total        decimal.Decimal
	ICMSBase     decimal.Decimal
	ICMSRate     decimal.Decimal
	ICMSAmount   decimal.Decimal
	IPIBase      decimal.Decimal
	IPIRate      decimal.Decimal
	IPIAmount    decimal.Decimal
	PISBase      decimal.Decimal
	PISRate      decimal.Decimal
	PISAmount    decimal.Decimal
	COFINSBase   decimal.Decimal
	COFINSRate   decimal.Decimal
	COFINSAmount decimal.Decimal
}

// Installment is the row shape shared by the contas_receber and contas_pagar
// tables, keyed by the document key plus installment number.
type Installment struct {
	Model             int
	Series            int
	Number            int
	Type              string
	InstallmentNumber int
	PersonCode        int64
	DueDate           time.Time
	Amount            decimal.Decimal
	PaymentMethodCode int64
	PaidAt            *time.Time
	PaidValue         *decimal.Decimal
	AuditFields
}
