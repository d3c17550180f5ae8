package services_test

import (
	"context"
	"testing"

	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/apperrors"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/domain"
	portssvc "github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/ports/services"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/services"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PaymentConditionServiceTestSuite struct {
	suite.Suite
	mockConditionRepo *MockPaymentConditionRepository
	mockMethodRepo    *MockPaymentMethodRepository
	service           portssvc.PaymentConditionSvcFacade
	userID            string
}

func (suite *PaymentConditionServiceTestSuite) SetupTest() {
	suite.mockConditionRepo = new(MockPaymentConditionRepository)
	suite.mockMethodRepo = new(MockPaymentMethodRepository)
	suite.service = services.NewPaymentConditionService(suite.mockConditionRepo, suite.mockMethodRepo)
	suite.userID = "jsilva"
}

func (suite *PaymentConditionServiceTestSuite) TestCreatePaymentCondition_Success() {
	ctx := context.Background()
	req := dto.PaymentConditionRequest{
		Description: "30/60 dias",
		Installments: []dto.ConditionInstallmentPayload{
			{Number: 1, Days: 30, Percentage: decimal.NewFromInt(40), PaymentMethodCode: 1},
			{Number: 2, Days: 60, Percentage: decimal.NewFromInt(60), PaymentMethodCode: 1},
		},
	}

	suite.mockMethodRepo.On("FindPaymentMethodByCode", mock.Anything, int64(1)).Return(&domain.PaymentMethod{Code: 1}, nil).Twice()
	suite.mockConditionRepo.On("CreatePaymentCondition", mock.Anything, mock.AnythingOfType("domain.PaymentCondition")).Return(int64(5), nil).Once()

	condition, err := suite.service.CreatePaymentCondition(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(int64(5), condition.Code)
	suite.Len(condition.Installments, 2)
	suite.Equal(suite.userID, condition.CreatedBy)
	suite.mockConditionRepo.AssertExpectations(suite.T())
}

func (suite *PaymentConditionServiceTestSuite) TestCreatePaymentCondition_PercentagesNotHundred() {
	ctx := context.Background()
	req := dto.PaymentConditionRequest{
		Description: "quebrada",
		Installments: []dto.ConditionInstallmentPayload{
			{Number: 1, Days: 30, Percentage: decimal.NewFromInt(40), PaymentMethodCode: 1},
			{Number: 2, Days: 60, Percentage: decimal.NewFromInt(59), PaymentMethodCode: 1},
		},
	}

	suite.mockMethodRepo.On("FindPaymentMethodByCode", mock.Anything, int64(1)).Return(&domain.PaymentMethod{Code: 1}, nil).Twice()

	_, err := suite.service.CreatePaymentCondition(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrPercentagesNotHundred)
	suite.mockConditionRepo.AssertNotCalled(suite.T(), "CreatePaymentCondition", mock.Anything, mock.Anything)
}

func (suite *PaymentConditionServiceTestSuite) TestCreatePaymentCondition_DuplicateNumber() {
	ctx := context.Background()
	req := dto.PaymentConditionRequest{
		Description: "duplicada",
		Installments: []dto.ConditionInstallmentPayload{
			{Number: 1, Days: 30, Percentage: decimal.NewFromInt(50), PaymentMethodCode: 1},
			{Number: 1, Days: 60, Percentage: decimal.NewFromInt(50), PaymentMethodCode: 1},
		},
	}

	suite.mockMethodRepo.On("FindPaymentMethodByCode", mock.Anything, int64(1)).Return(&domain.PaymentMethod{Code: 1}, nil).Maybe()

	_, err := suite.service.CreatePaymentCondition(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrDuplicateInstallmentNumber)
	suite.mockConditionRepo.AssertNotCalled(suite.T(), "CreatePaymentCondition", mock.Anything, mock.Anything)
}

func (suite *PaymentConditionServiceTestSuite) TestCreatePaymentCondition_UnknownMethod() {
	ctx := context.Background()
	req := dto.PaymentConditionRequest{
		Description: "sem forma",
		Installments: []dto.ConditionInstallmentPayload{
			{Number: 1, Days: 30, Percentage: decimal.NewFromInt(100), PaymentMethodCode: 42},
		},
	}

	suite.mockMethodRepo.On("FindPaymentMethodByCode", mock.Anything, int64(42)).Return(nil, apperrors.NewNotFoundError("payment method not found")).Once()

	_, err := suite.service.CreatePaymentCondition(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PaymentConditionServiceTestSuite) TestCreatePaymentCondition_NoInstallments() {
	ctx := context.Background()
	// An installment-free condition is legal: documents issued against it
	// simply generate no receivables/payables.
	req := dto.PaymentConditionRequest{Description: "à vista"}

	suite.mockConditionRepo.On("CreatePaymentCondition", mock.Anything, mock.AnythingOfType("domain.PaymentCondition")).Return(int64(8), nil).Once()

	condition, err := suite.service.CreatePaymentCondition(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Empty(condition.Installments)
}

func (suite *PaymentConditionServiceTestSuite) TestUpdatePaymentCondition_RevalidatesPercentages() {
	ctx := context.Background()
	existing := domain.PaymentCondition{Code: 5, Description: "30/60 dias"}
	req := dto.PaymentConditionRequest{
		Description: "30/60 dias",
		Installments: []dto.ConditionInstallmentPayload{
			{Number: 1, Days: 30, Percentage: decimal.NewFromInt(70), PaymentMethodCode: 1},
		},
	}

	suite.mockConditionRepo.On("FindPaymentConditionByCode", mock.Anything, int64(5)).Return(&existing, nil).Once()
	suite.mockMethodRepo.On("FindPaymentMethodByCode", mock.Anything, int64(1)).Return(&domain.PaymentMethod{Code: 1}, nil).Once()

	_, err := suite.service.UpdatePaymentCondition(ctx, 5, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrPercentagesNotHundred)
	suite.mockConditionRepo.AssertNotCalled(suite.T(), "UpdatePaymentCondition", mock.Anything, mock.Anything)
}

func TestPaymentConditionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentConditionServiceTestSuite))
}
