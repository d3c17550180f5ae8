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
	"github.com/shopspring/decimal"
)

var (
	// ErrPercentagesNotHundred is returned when a payment condition's
	// installment percentages do not sum to exactly 100.
	ErrPercentagesNotHundred = errors.New("installment percentages must sum to 100")

	// ErrDuplicateInstallmentNumber is returned when two installment
	// definitions share the same sequence number.
	ErrDuplicateInstallmentNumber = errors.New("duplicate installment number in payment condition")
)

var hundredPercent = decimal.NewFromInt(100)

// paymentMethodService manages payment methods.
type paymentMethodService struct {
	methodRepo portsrepo.PaymentMethodRepositoryFacade
}

// NewPaymentMethodService creates a new PaymentMethodService.
func NewPaymentMethodService(methodRepo portsrepo.PaymentMethodRepositoryFacade) portssvc.PaymentMethodSvcFacade {
	return &paymentMethodService{methodRepo: methodRepo}
}

var _ portssvc.PaymentMethodSvcFacade = (*paymentMethodService)(nil)

func (s *paymentMethodService) CreatePaymentMethod(ctx context.Context, req dto.PaymentMethodRequest, creatorUserID string) (*domain.PaymentMethod, error) {
	now := time.Now()
	method := domain.PaymentMethod{
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	code, err := s.methodRepo.CreatePaymentMethod(ctx, method)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to create payment method", "error", err)
		return nil, fmt.Errorf("failed to create payment method: %w", err)
	}
	method.Code = code
	return &method, nil
}

func (s *paymentMethodService) UpdatePaymentMethod(ctx context.Context, code int64, req dto.PaymentMethodRequest, updaterUserID string) (*domain.PaymentMethod, error) {
	method, err := s.methodRepo.FindPaymentMethodByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to find payment method %d: %w", code, err)
	}

	method.Description = req.Description
	method.Touch(updaterUserID, time.Now())

	if err := s.methodRepo.UpdatePaymentMethod(ctx, *method); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to update payment method", "code", code, "error", err)
		return nil, fmt.Errorf("failed to update payment method %d: %w", code, err)
	}
	return method, nil
}

func (s *paymentMethodService) DeletePaymentMethod(ctx context.Context, code int64) error {
	if err := s.methodRepo.DeletePaymentMethod(ctx, code); err != nil {
		return fmt.Errorf("failed to delete payment method %d: %w", code, err)
	}
	return nil
}

func (s *paymentMethodService) GetPaymentMethodByCode(ctx context.Context, code int64) (*domain.PaymentMethod, error) {
	method, err := s.methodRepo.FindPaymentMethodByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment method %d: %w", code, err)
	}
	return method, nil
}

func (s *paymentMethodService) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	methods, err := s.methodRepo.ListPaymentMethods(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}
	if methods == nil {
		return []domain.PaymentMethod{}, nil
	}
	return methods, nil
}

// paymentConditionService manages payment condition templates.
type paymentConditionService struct {
	conditionRepo portsrepo.PaymentConditionRepositoryFacade
	methodRepo    portsrepo.PaymentMethodRepositoryFacade
}

// NewPaymentConditionService creates a new PaymentConditionService.
func NewPaymentConditionService(conditionRepo portsrepo.PaymentConditionRepositoryFacade, methodRepo portsrepo.PaymentMethodRepositoryFacade) portssvc.PaymentConditionSvcFacade {
	return &paymentConditionService{conditionRepo: conditionRepo, methodRepo: methodRepo}
}

var _ portssvc.PaymentConditionSvcFacade = (*paymentConditionService)(nil)

// validateInstallments enforces the authoring invariants: unique sequence
// numbers, non-negative day offsets, known payment methods, and percentages
// summing to exactly 100. Documents issued later trust these definitions and
// never re-check them.
func (s *paymentConditionService) validateInstallments(ctx context.Context, defs []dto.ConditionInstallmentPayload) ([]domain.ConditionInstallment, error) {
	if len(defs) == 0 {
		return nil, nil
	}

	installments := make([]domain.ConditionInstallment, len(defs))
	seen := make(map[int]bool, len(defs))
	sum := decimal.Zero

	for i, def := range defs {
		if seen[def.Number] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateInstallmentNumber, def.Number)
		}
		seen[def.Number] = true

		if def.Days < 0 {
			return nil, apperrors.NewValidationError(fmt.Sprintf("installment %d has a negative day offset", def.Number))
		}
		if !def.Percentage.IsPositive() {
			return nil, apperrors.NewValidationError(fmt.Sprintf("installment %d needs a positive percentage", def.Number))
		}
		if _, err := s.methodRepo.FindPaymentMethodByCode(ctx, def.PaymentMethodCode); err != nil {
			return nil, fmt.Errorf("payment method %d on installment %d: %w", def.PaymentMethodCode, def.Number, err)
		}

		sum = sum.Add(def.Percentage)
		installments[i] = domain.ConditionInstallment{
			Number:            def.Number,
			Days:              def.Days,
			Percentage:        def.Percentage,
			PaymentMethodCode: def.PaymentMethodCode,
		}
	}

	if !sum.Equal(hundredPercent) {
		return nil, fmt.Errorf("%w: got %s", ErrPercentagesNotHundred, sum.String())
	}

	return installments, nil
}

func (s *paymentConditionService) CreatePaymentCondition(ctx context.Context, req dto.PaymentConditionRequest, creatorUserID string) (*domain.PaymentCondition, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	installments, err := s.validateInstallments(ctx, req.Installments)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	condition := domain.PaymentCondition{
		Description:  req.Description,
		InterestRate: req.InterestRate,
		FineRate:     req.FineRate,
		DiscountRate: req.DiscountRate,
		Installments: installments,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	code, err := s.conditionRepo.CreatePaymentCondition(ctx, condition)
	if err != nil {
		logger.Error("Failed to create payment condition", "error", err)
		return nil, fmt.Errorf("failed to create payment condition: %w", err)
	}
	condition.Code = code

	logger.Info("Payment condition created", "code", code, "installments", len(installments))
	return &condition, nil
}

func (s *paymentConditionService) UpdatePaymentCondition(ctx context.Context, code int64, req dto.PaymentConditionRequest, updaterUserID string) (*domain.PaymentCondition, error) {
	condition, err := s.conditionRepo.FindPaymentConditionByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to find payment condition %d: %w", code, err)
	}

	installments, err := s.validateInstallments(ctx, req.Installments)
	if err != nil {
		return nil, err
	}

	condition.Description = req.Description
	condition.InterestRate = req.InterestRate
	condition.FineRate = req.FineRate
	condition.DiscountRate = req.DiscountRate
	condition.Installments = installments
	condition.Touch(updaterUserID, time.Now())

	if err := s.conditionRepo.UpdatePaymentCondition(ctx, *condition); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to update payment condition", "code", code, "error", err)
		return nil, fmt.Errorf("failed to update payment condition %d: %w", code, err)
	}
	return condition, nil
}

func (s *paymentConditionService) DeletePaymentCondition(ctx context.Context, code int64) error {
	if err := s.conditionRepo.DeletePaymentCondition(ctx, code); err != nil {
		return fmt.Errorf("failed to delete payment condition %d: %w", code, err)
	}
	return nil
}

func (s *paymentConditionService) GetPaymentConditionByCode(ctx context.Context, code int64) (*domain.PaymentCondition, error) {
	condition, err := s.conditionRepo.FindPaymentConditionByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment condition %d: %w", code, err)
	}
	return condition, nil
}

func (s *paymentConditionService) ListPaymentConditions(ctx context.Context) ([]domain.PaymentCondition, error) {
	conditions, err := s.conditionRepo.ListPaymentConditions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment conditions: %w", err)
	}
	if conditions == nil {
		return []domain.PaymentCondition{}, nil
	}
	return conditions, nil
}
