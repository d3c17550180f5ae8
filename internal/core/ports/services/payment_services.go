package services

import (
	"context"

	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/domain"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/dto"
)

// PaymentMethodSvcFacade manages payment methods.
type PaymentMethodSvcFacade interface {
	CreatePaymentMethod(ctx context.Context, req dto.PaymentMethodRequest, creatorUserID string) (*domain.PaymentMethod, error)
	UpdatePaymentMethod(ctx context.Context, code int64, req dto.PaymentMethodRequest, updaterUserID string) (*domain.PaymentMethod, error)
	DeletePaymentMethod(ctx context.Context, code int64) error
	GetPaymentMethodByCode(ctx context.Context, code int64) (*domain.PaymentMethod, error)
	ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
}

// PaymentConditionSvcFacade manages payment condition templates. Authoring
// is where the 100% invariant lives: create and update reject installment
// percentages that do not sum to 100.
type PaymentConditionSvcFacade interface {
	CreatePaymentCondition(ctx context.Context, req dto.PaymentConditionRequest, creatorUserID string) (*domain.PaymentCondition, error)
	UpdatePaymentCondition(ctx context.Context, code int64, req dto.PaymentConditionRequest, updaterUserID string) (*domain.PaymentCondition, error)
	DeletePaymentCondition(ctx context.Context, code int64) error
	GetPaymentConditionByCode(ctx context.Context, code int64) (*domain.PaymentCondition, error)
	ListPaymentConditions(ctx context.Context) ([]domain.PaymentCondition, error)
}
