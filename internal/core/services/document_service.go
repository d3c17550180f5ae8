package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/apperrors"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/domain"
	portsrepo "github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/ports/repositories"
	portssvc "github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/ports/services"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/dto"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/middleware"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/utils/fiscal"
)

var (
	// ErrPersonRoleMismatch is returned when the document's person does not
	// play the role its type requires (client for outgoing, supplier for incoming).
	ErrPersonRoleMismatch = errors.New("person does not play the role the document type requires")
)

// documentService issues and maintains fiscal documents. Issuance validates
// every referenced entity and the line totals, computes per-line taxes,
// generates the receivable/payable installments from the payment condition
// and persists the whole set in one transaction.
type documentService struct {
	documentRepo  portsrepo.DocumentRepositoryFacade
	personRepo    portsrepo.PersonReader
	productRepo   portsrepo.ProductReader
	methodRepo    portsrepo.PaymentMethodRepositoryFacade
	conditionRepo portsrepo.PaymentConditionRepositoryFacade
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(
	documentRepo portsrepo.DocumentRepositoryFacade,
	personRepo portsrepo.PersonReader,
	productRepo portsrepo.ProductReader,
	methodRepo portsrepo.PaymentMethodRepositoryFacade,
	conditionRepo portsrepo.PaymentConditionRepositoryFacade,
) portssvc.DocumentSvcFacade {
	return &documentService{
		documentRepo:  documentRepo,
		personRepo:    personRepo,
		productRepo:   productRepo,
		methodRepo:    methodRepo,
		conditionRepo: conditionRepo,
	}
}

var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

// checkPersonRole verifies the person exists and plays the role the document
// type requires: outgoing documents bill clients, incoming ones come from suppliers.
func (s *documentService) checkPersonRole(ctx context.Context, personCode int64, docType domain.DocumentType) error {
	person, err := s.personRepo.FindPersonByCode(ctx, personCode)
	if err != nil {
		return fmt.Errorf("person %d: %w", personCode, err)
	}
	switch docType {
	case domain.Outgoing:
		if !person.Roles.Client {
			return fmt.Errorf("%w: person %d is not a client", ErrPersonRoleMismatch, personCode)
		}
	case domain.Incoming:
		if !person.Roles.Supplier {
			return fmt.Errorf("%w: person %d is not a supplier", ErrPersonRoleMismatch, personCode)
		}
	}
	return nil
}

func (s *documentService) checkCarrier(ctx context.Context, carrierCode *int64) error {
	if carrierCode == nil {
		return nil
	}
	person, err := s.personRepo.FindPersonByCode(ctx, *carrierCode)
	if err != nil {
		return fmt.Errorf("carrier %d: %w", *carrierCode, err)
	}
	if !person.Roles.Carrier {
		return fmt.Errorf("%w: person %d is not a carrier", ErrPersonRoleMismatch, *carrierCode)
	}
	return nil
}

// validateAndBuildLines runs the pure line checks against the declared total
// and product master, then assembles the domain lines with their computed
// line totals and tax amounts.
func (s *documentService) validateAndBuildLines(ctx context.Context, key domain.DocumentKey, payloads []dto.DocumentLinePayload, declared dto.IssueDocumentRequest) ([]domain.DocumentLine, error) {
	codes := make([]int64, len(payloads))
	inputs := make([]fiscal.LineInput, len(payloads))
	for i, p := range payloads {
		codes[i] = p.ProductCode
		inputs[i] = fiscal.LineInput{
			ProductCode: p.ProductCode,
			Quantity:    p.Quantity,
			UnitPrice:   p.UnitPrice,
		}
	}

	existing, err := s.productRepo.ExistingProductCodes(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("failed to check product codes: %w", err)
	}

	if err := fiscal.ValidateLines(inputs, declared.Total, func(code int64) bool { return existing[code] }); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	lines := make([]domain.DocumentLine, len(payloads))
	for i, p := range payloads {
		lines[i] = domain.DocumentLine{
			DocumentKey: key,
			ProductCode: p.ProductCode,
			Quantity:    p.Quantity,
			UnitPrice:   p.UnitPrice,
			Total:       p.Quantity.Mul(p.UnitPrice).Round(2),
			ICMS:        buildTax(p.ICMS),
			IPI:         buildTax(p.IPI),
			PIS:         buildTax(p.PIS),
			COFINS:      buildTax(p.COFINS),
		}
	}
	return lines, nil
}

// buildTax completes a base/rate pair into the stored triple. The amount is
// always recomputed here, whatever the caller sent.
func buildTax(p dto.TaxPayload) domain.TaxDetail {
	return domain.TaxDetail{
		Base:   p.Base,
		Rate:   p.Rate,
		Amount: fiscal.TaxAmount(p.Base, p.Rate),
	}
}

func (s *documentService) IssueDocument(ctx context.Context, req dto.IssueDocumentRequest, creatorUserID string) (*domain.FiscalDocument, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	key := domain.DocumentKey{
		Model:  req.Model,
		Series: req.Series,
		Number: req.Number,
		Type:   domain.DocumentType(req.Type),
	}

	emission, err := fiscal.ParseEmissionDate(req.EmissionDate)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("emission date %q is not a valid date", req.EmissionDate))
	}

	var exitDate *time.Time
	if req.ExitDate != "" {
		parsed, err := fiscal.ParseEmissionDate(req.ExitDate)
		if err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("exit date %q is not a valid date", req.ExitDate))
		}
		exitDate = &parsed
	}

	if err := s.checkPersonRole(ctx, req.PersonCode, key.Type); err != nil {
		return nil, err
	}
	if err := s.checkCarrier(ctx, req.CarrierCode); err != nil {
		return nil, err
	}
	if _, err := s.methodRepo.FindPaymentMethodByCode(ctx, req.PaymentMethodCode); err != nil {
		return nil, fmt.Errorf("payment method %d: %w", req.PaymentMethodCode, err)
	}
	condition, err := s.conditionRepo.FindPaymentConditionByCode(ctx, req.PaymentConditionCode)
	if err != nil {
		return nil, fmt.Errorf("payment condition %d: %w", req.PaymentConditionCode, err)
	}

	lines, err := s.validateAndBuildLines(ctx, key, req.Lines, req)
	if err != nil {
		return nil, err
	}

	generated, err := fiscal.Generate(req.Total, emission, condition.Installments, req.PaymentMethodCode)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	direction := domain.Receivable
	if key.Type == domain.Incoming {
		direction = domain.Payable
	}

	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	doc := domain.FiscalDocument{
		Key:                  key,
		PersonCode:           req.PersonCode,
		EmissionDate:         emission,
		ExitDate:             exitDate,
		Total:                req.Total,
		CarrierCode:          req.CarrierCode,
		FreightValue:         req.FreightValue,
		GrossWeightKg:        req.GrossWeightKg,
		NetWeightKg:          req.NetWeightKg,
		PackageCount:         req.PackageCount,
		PaymentMethodCode:    req.PaymentMethodCode,
		PaymentConditionCode: req.PaymentConditionCode,
		AuditFields:          audit,
	}
	if req.AccessKey != "" {
		doc.AccessKey = &req.AccessKey
	}
	if req.AuthorizationProtocol != "" {
		doc.AuthorizationProtocol = &req.AuthorizationProtocol
	}

	installments := make([]domain.Installment, len(generated))
	for i, g := range generated {
		installments[i] = domain.Installment{
			DocumentKey:       key,
			Number:            g.Number,
			Direction:         direction,
			PersonCode:        req.PersonCode,
			DueDate:           g.DueDate,
			Amount:            g.Amount,
			PaymentMethodCode: g.PaymentMethodCode,
			AuditFields:       audit,
		}
	}

	if err := s.documentRepo.SaveDocument(ctx, doc, lines, installments); err != nil {
		logger.Error("Failed to save document", "key", key.String(), "error", err)
		return nil, fmt.Errorf("failed to save document %s: %w", key.String(), err)
	}

	logger.Info("Document issued", "key", key.String(), "lines", len(lines), "installments", len(installments))

	doc.Lines = lines
	return &doc, nil
}

func (s *documentService) UpdateDocument(ctx context.Context, key domain.DocumentKey, req dto.UpdateDocumentRequest, updaterUserID string) (*domain.FiscalDocument, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.documentRepo.FindDocumentByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to find document %s: %w", key.String(), err)
	}

	emission, err := fiscal.ParseEmissionDate(req.EmissionDate)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("emission date %q is not a valid date", req.EmissionDate))
	}

	var exitDate *time.Time
	if req.ExitDate != "" {
		parsed, err := fiscal.ParseEmissionDate(req.ExitDate)
		if err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("exit date %q is not a valid date", req.ExitDate))
		}
		exitDate = &parsed
	}

	if err := s.checkPersonRole(ctx, req.PersonCode, key.Type); err != nil {
		return nil, err
	}
	if err := s.checkCarrier(ctx, req.CarrierCode); err != nil {
		return nil, err
	}
	if _, err := s.methodRepo.FindPaymentMethodByCode(ctx, req.PaymentMethodCode); err != nil {
		return nil, fmt.Errorf("payment method %d: %w", req.PaymentMethodCode, err)
	}
	if _, err := s.conditionRepo.FindPaymentConditionByCode(ctx, req.PaymentConditionCode); err != nil {
		return nil, fmt.Errorf("payment condition %d: %w", req.PaymentConditionCode, err)
	}

	// Updates reuse the issuance request shape for line validation.
	issueShape := dto.IssueDocumentRequest{Total: req.Total}
	lines, err := s.validateAndBuildLines(ctx, key, req.Lines, issueShape)
	if err != nil {
		return nil, err
	}

	doc := *existing
	doc.PersonCode = req.PersonCode
	doc.EmissionDate = emission
	doc.ExitDate = exitDate
	doc.Total = req.Total
	doc.CarrierCode = req.CarrierCode
	doc.FreightValue = req.FreightValue
	doc.GrossWeightKg = req.GrossWeightKg
	doc.NetWeightKg = req.NetWeightKg
	doc.PackageCount = req.PackageCount
	doc.PaymentMethodCode = req.PaymentMethodCode
	doc.PaymentConditionCode = req.PaymentConditionCode
	doc.AccessKey = nil
	doc.AuthorizationProtocol = nil
	if req.AccessKey != "" {
		doc.AccessKey = &req.AccessKey
	}
	if req.AuthorizationProtocol != "" {
		doc.AuthorizationProtocol = &req.AuthorizationProtocol
	}
	doc.Touch(updaterUserID, time.Now())

	if err := s.documentRepo.ReplaceDocumentLines(ctx, doc, lines); err != nil {
		logger.Error("Failed to update document", "key", key.String(), "error", err)
		return nil, fmt.Errorf("failed to update document %s: %w", key.String(), err)
	}

	doc.Lines = lines
	return &doc, nil
}

func (s *documentService) DeleteDocument(ctx context.Context, key domain.DocumentKey) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.documentRepo.DeleteDocument(ctx, key); err != nil {
		logger.Warn("Failed to delete document", "key", key.String(), "error", err)
		return fmt.Errorf("failed to delete document %s: %w", key.String(), err)
	}

	logger.Info("Document deleted", "key", key.String())
	return nil
}

func (s *documentService) GetDocumentByKey(ctx context.Context, key domain.DocumentKey) (*domain.FiscalDocument, error) {
	doc, err := s.documentRepo.FindDocumentByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get document %s: %w", key.String(), err)
	}
	return doc, nil
}

func (s *documentService) ListDocuments(ctx context.Context, docType *domain.DocumentType, limit int, nextToken *string) ([]domain.FiscalDocument, *string, error) {
	docs, next, err := s.documentRepo.ListDocuments(ctx, docType, limit, nextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list documents: %w", err)
	}
	if docs == nil {
		docs = []domain.FiscalDocument{}
	}
	return docs, next, nil
}
