package repositories

import (
	"context"

	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/domain"
)

// PaymentMethodRepositoryFacade is the persistence contract for payment methods.
type PaymentMethodRepositoryFacade interface {
	CreatePaymentMethod(ctx context.Context, method domain.PaymentMethod) (int64, error)
	UpdatePaymentMethod(ctx context.Context, method domain.PaymentMethod) error
	DeletePaymentMethod(ctx context.Context, code int64) error
	FindPaymentMethodByCode(ctx context.Context, code int64) (*domain.PaymentMethod, error)
	ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
}

// PaymentConditionRepositoryFacade is the persistence contract for payment
// conditions. A condition and its installment definitions are always written
// together; installment definitions are replaced wholesale on update.
type PaymentConditionRepositoryFacade interface {
	CreatePaymentCondition(ctx context.Context, condition domain.PaymentCondition) (int64, error)
	UpdatePaymentCondition(ctx context.Context, condition domain.PaymentCondition) error
	DeletePaymentCondition(ctx context.Context, code int64) error
	FindPaymentConditionByCode(ctx context.Context, code int64) (*domain.PaymentCondition, error)
	ListPaymentConditions(ctx context.Context) ([]domain.PaymentCondition, error)
}
