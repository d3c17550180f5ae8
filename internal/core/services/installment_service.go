package services

import (
	"context"
	"fmt"

	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/apperrors"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/domain"
	portsrepo "github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/ports/repositories"
	portssvc "github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/ports/services"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/dto"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/middleware"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/utils/fiscal"
)

// installmentService exposes the receivables/payables generated at issuance.
// Settlement is the only mutation it allows.
type installmentService struct {
	installmentRepo portsrepo.InstallmentRepositoryFacade
}

// NewInstallmentService creates a new InstallmentService.
func NewInstallmentService(installmentRepo portsrepo.InstallmentRepositoryFacade) portssvc.InstallmentSvcFacade {
	return &installmentService{installmentRepo: installmentRepo}
}

var _ portssvc.InstallmentSvcFacade = (*installmentService)(nil)

func (s *installmentService) ListInstallments(ctx context.Context, direction domain.InstallmentDirection, key *domain.DocumentKey, openOnly bool) ([]domain.Installment, error) {
	installments, err := s.installmentRepo.ListInstallments(ctx, direction, key, openOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list installments: %w", err)
	}
	if installments == nil {
		return []domain.Installment{}, nil
	}
	return installments, nil
}

func (s *installmentService) GetInstallment(ctx context.Context, direction domain.InstallmentDirection, key domain.DocumentKey, number int) (*domain.Installment, error) {
	installment, err := s.installmentRepo.FindInstallment(ctx, direction, key, number)
	if err != nil {
		return nil, fmt.Errorf("failed to get installment %d of %s: %w", number, key.String(), err)
	}
	return installment, nil
}

func (s *installmentService) SettleInstallment(ctx context.Context, direction domain.InstallmentDirection, key domain.DocumentKey, number int, req dto.SettleInstallmentRequest, updaterUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	paidAt, err := fiscal.ParseEmissionDate(req.PaidAt)
	if err != nil {
		return apperrors.NewValidationError(fmt.Sprintf("payment date %q is not a valid date", req.PaidAt))
	}
	if !req.PaidValue.IsPositive() {
		return apperrors.NewValidationError("paid value must be positive")
	}

	if err := s.installmentRepo.SettleInstallment(ctx, direction, key, number, paidAt, req.PaidValue, updaterUserID); err != nil {
		logger.Warn("Failed to settle installment", "key", key.String(), "number", number, "error", err)
		return err
	}

	logger.Info("Installment settled", "key", key.String(), "number", number, "direction", string(direction))
	return nil
}
