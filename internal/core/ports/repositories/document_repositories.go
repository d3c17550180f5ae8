package repositories

import (
	"context"
	"time"

	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DocumentReader defines read operations over fiscal documents.
type DocumentReader interface {
	// FindDocumentByKey retrieves a document with its lines.
	FindDocumentByKey(ctx context.Context, key domain.DocumentKey) (*domain.FiscalDocument, error)

	// ListDocuments retrieves a page of documents, newest emission first,
	// optionally filtered by type. Returns the page and the next-page token.
	ListDocuments(ctx context.Context, docType *domain.DocumentType, limit int, nextToken *string) ([]domain.FiscalDocument, *string, error)
}

// DocumentWriter defines write operations over fiscal documents. Issuance
// persists the document, its lines and its generated installments in one
// database transaction; nothing survives a partial failure.
type DocumentWriter interface {
	SaveDocument(ctx context.Context, doc domain.FiscalDocument, lines []domain.DocumentLine, installments []domain.Installment) error

	// ReplaceDocumentLines updates the header and swaps the line set
	// wholesale (delete then reinsert). Installments are untouched.
	ReplaceDocumentLines(ctx context.Context, doc domain.FiscalDocument, lines []domain.DocumentLine) error

	// DeleteDocument removes a document with its lines and installments.
	DeleteDocument(ctx context.Context, key domain.DocumentKey) error
}

// DocumentRepositoryFacade combines all document repository interfaces.
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
}

// InstallmentReader defines read operations over generated receivables/payables.
type InstallmentReader interface {
	FindInstallment(ctx context.Context, direction domain.InstallmentDirection, key domain.DocumentKey, number int) (*domain.Installment, error)

	// ListInstallments retrieves installments of one direction, optionally
	// filtered to one document and/or to unsettled ones.
	ListInstallments(ctx context.Context, direction domain.InstallmentDirection, key *domain.DocumentKey, openOnly bool) ([]domain.Installment, error)
}

// InstallmentWriter defines the only mutation installments support after
// generation: settlement.
type InstallmentWriter interface {
	// SettleInstallment records the payment. Returns ErrAlreadyInState when
	// the installment is already settled.
	SettleInstallment(ctx context.Context, direction domain.InstallmentDirection, key domain.DocumentKey, number int, paidAt time.Time, paidValue decimal.Decimal, userID string) error
}

// InstallmentRepositoryFacade combines all installment repository interfaces.
type InstallmentRepositoryFacade interface {
	InstallmentReader
	InstallmentWriter
}
