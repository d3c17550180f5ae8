package services

import (
	"context"

	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/domain"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/dto"
)

// DocumentReaderSvc defines read operations over fiscal documents.
type DocumentReaderSvc interface {
	GetDocumentByKey(ctx context.Context, key domain.DocumentKey) (*domain.FiscalDocument, error)
	ListDocuments(ctx context.Context, docType *domain.DocumentType, limit int, nextToken *string) ([]domain.FiscalDocument, *string, error)
}

// DocumentWriterSvc defines the issuance lifecycle. IssueDocument validates
// referenced entities and line totals, generates installments from the
// attached payment condition, and persists everything atomically.
type DocumentWriterSvc interface {
	IssueDocument(ctx context.Context, req dto.IssueDocumentRequest, creatorUserID string) (*domain.FiscalDocument, error)
	UpdateDocument(ctx context.Context, key domain.DocumentKey, req dto.UpdateDocumentRequest, updaterUserID string) (*domain.FiscalDocument, error)
	DeleteDocument(ctx context.Context, key domain.DocumentKey) error
}

// DocumentSvcFacade combines all document-related service interfaces.
type DocumentSvcFacade interface {
	DocumentReaderSvc
	DocumentWriterSvc
}

// InstallmentSvcFacade exposes generated receivables/payables and settlement.
type InstallmentSvcFacade interface {
	ListInstallments(ctx context.Context, direction domain.InstallmentDirection, key *domain.DocumentKey, openOnly bool) ([]domain.Installment, error)
	GetInstallment(ctx context.Context, direction domain.InstallmentDirection, key domain.DocumentKey, number int) (*domain.Installment, error)
	SettleInstallment(ctx context.Context, direction domain.InstallmentDirection, key domain.DocumentKey, number int, req dto.SettleInstallmentRequest, updaterUserID string) error
}
