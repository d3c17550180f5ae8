package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/apperrors"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/domain"
	portssvc "github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/ports/services"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/services"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DocumentServiceTestSuite struct {
	suite.Suite
	mockDocumentRepo  *MockDocumentRepository
	mockPersonRepo    *MockPersonRepository
	mockProductRepo   *MockProductRepository
	mockMethodRepo    *MockPaymentMethodRepository
	mockConditionRepo *MockPaymentConditionRepository
	service           portssvc.DocumentSvcFacade

	client   domain.Person
	supplier domain.Person
	method   domain.PaymentMethod
	userID   string
}

func (suite *DocumentServiceTestSuite) SetupTest() {
	suite.mockDocumentRepo = new(MockDocumentRepository)
	suite.mockPersonRepo = new(MockPersonRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.mockMethodRepo = new(MockPaymentMethodRepository)
	suite.mockConditionRepo = new(MockPaymentConditionRepository)
	suite.service = services.NewDocumentService(
		suite.mockDocumentRepo,
		suite.mockPersonRepo,
		suite.mockProductRepo,
		suite.mockMethodRepo,
		suite.mockConditionRepo,
	)

	suite.userID = "jsilva"
	suite.client = domain.Person{Code: 7, Name: "Cliente Teste", Roles: domain.PersonRoles{Client: true}, Active: true}
	suite.supplier = domain.Person{Code: 9, Name: "Fornecedor Teste", Roles: domain.PersonRoles{Supplier: true}, Active: true}
	suite.method = domain.PaymentMethod{Code: 1, Description: "Boleto"}
}

// issueRequest builds a consistent outgoing request: two lines summing to 1000.
func (suite *DocumentServiceTestSuite) issueRequest() dto.IssueDocumentRequest {
	return dto.IssueDocumentRequest{
		Model:                55,
		Series:               1,
		Number:               1234,
		Type:                 "S",
		PersonCode:           suite.client.Code,
		EmissionDate:         "2024-01-01",
		Total:                decimal.NewFromInt(1000),
		PaymentMethodCode:    suite.method.Code,
		PaymentConditionCode: 3,
		Lines: []dto.DocumentLinePayload{
			{ProductCode: 10, Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(250), ICMS: dto.TaxPayload{Base: decimal.NewFromInt(500), Rate: decimal.NewFromInt(18)}},
			{ProductCode: 20, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(500)},
		},
	}
}

func (suite *DocumentServiceTestSuite) expectLookups(condition domain.PaymentCondition) {
	suite.mockPersonRepo.On("FindPersonByCode", mock.Anything, suite.client.Code).Return(&suite.client, nil).Once()
	suite.mockMethodRepo.On("FindPaymentMethodByCode", mock.Anything, suite.method.Code).Return(&suite.method, nil).Once()
	suite.mockConditionRepo.On("FindPaymentConditionByCode", mock.Anything, condition.Code).Return(&condition, nil).Once()
	suite.mockProductRepo.On("ExistingProductCodes", mock.Anything, []int64{10, 20}).Return(map[int64]bool{10: true, 20: true}, nil).Once()
}

func (suite *DocumentServiceTestSuite) TestIssueDocument_PercentageSplit() {
	ctx := context.Background()
	condition := domain.PaymentCondition{
		Code: 3,
		Installments: []domain.ConditionInstallment{
			{Number: 1, Days: 0, Percentage: decimal.NewFromInt(50), PaymentMethodCode: 1},
			{Number: 2, Days: 30, Percentage: decimal.NewFromInt(50), PaymentMethodCode: 2},
		},
	}
	suite.expectLookups(condition)

	var savedLines []domain.DocumentLine
	var savedInstallments []domain.Installment
	suite.mockDocumentRepo.On("SaveDocument", mock.Anything, mock.AnythingOfType("domain.FiscalDocument"), mock.AnythingOfType("[]domain.DocumentLine"), mock.AnythingOfType("[]domain.Installment")).
		Run(func(args mock.Arguments) {
			savedLines = args.Get(2).([]domain.DocumentLine)
			savedInstallments = args.Get(3).([]domain.Installment)
		}).Return(nil).Once()

	doc, err := suite.service.IssueDocument(ctx, suite.issueRequest(), suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(doc)
	suite.Equal(domain.Outgoing, doc.Key.Type)

	suite.Require().Len(savedLines, 2)
	suite.True(savedLines[0].Total.Equal(decimal.NewFromInt(500)))
	// ICMS amount recomputed: 500 × 18 / 100 = 90.00
	suite.True(savedLines[0].ICMS.Amount.Equal(decimal.NewFromInt(90)))

	suite.Require().Len(savedInstallments, 2)
	emission := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.Equal(domain.Receivable, savedInstallments[0].Direction)
	suite.True(savedInstallments[0].Amount.Equal(decimal.NewFromInt(500)))
	suite.True(savedInstallments[0].DueDate.Equal(emission))
	suite.True(savedInstallments[1].DueDate.Equal(emission.AddDate(0, 0, 30)))
	suite.Equal(int64(2), savedInstallments[1].PaymentMethodCode)

	suite.mockDocumentRepo.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestIssueDocument_EqualSplitFallback() {
	ctx := context.Background()
	// Legacy conditions may carry definitions without percentages; the total
	// is then split evenly across them, every 30 days.
	condition := domain.PaymentCondition{
		Code: 3,
		Installments: []domain.ConditionInstallment{
			{Number: 1}, {Number: 2}, {Number: 3},
		},
	}
	suite.expectLookups(condition)

	var savedInstallments []domain.Installment
	suite.mockDocumentRepo.On("SaveDocument", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			savedInstallments = args.Get(3).([]domain.Installment)
		}).Return(nil).Once()

	_, err := suite.service.IssueDocument(ctx, suite.issueRequest(), suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(savedInstallments, 3)
	emission := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, inst := range savedInstallments {
		suite.True(inst.Amount.Equal(decimal.RequireFromString("333.33")))
		suite.True(inst.DueDate.Equal(emission.AddDate(0, 0, (i+1)*30)))
		// no method on the definition, so the document's method applies
		suite.Equal(suite.method.Code, inst.PaymentMethodCode)
	}
}

func (suite *DocumentServiceTestSuite) TestIssueDocument_EmptyCondition_NoInstallments() {
	ctx := context.Background()
	condition := domain.PaymentCondition{Code: 3}
	suite.expectLookups(condition)

	var savedInstallments []domain.Installment
	suite.mockDocumentRepo.On("SaveDocument", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			savedInstallments = args.Get(3).([]domain.Installment)
		}).Return(nil).Once()

	doc, err := suite.service.IssueDocument(ctx, suite.issueRequest(), suite.userID)

	suite.Require().NoError(err)
	suite.NotNil(doc)
	suite.Len(savedInstallments, 0)
}

func (suite *DocumentServiceTestSuite) TestIssueDocument_Incoming_GeneratesPayables() {
	ctx := context.Background()
	condition := domain.PaymentCondition{
		Code: 3,
		Installments: []domain.ConditionInstallment{
			{Number: 1, Days: 30, Percentage: decimal.NewFromInt(100), PaymentMethodCode: 1},
		},
	}

	req := suite.issueRequest()
	req.Type = "E"
	req.PersonCode = suite.supplier.Code

	suite.mockPersonRepo.On("FindPersonByCode", mock.Anything, suite.supplier.Code).Return(&suite.supplier, nil).Once()
	suite.mockMethodRepo.On("FindPaymentMethodByCode", mock.Anything, suite.method.Code).Return(&suite.method, nil).Once()
	suite.mockConditionRepo.On("FindPaymentConditionByCode", mock.Anything, condition.Code).Return(&condition, nil).Once()
	suite.mockProductRepo.On("ExistingProductCodes", mock.Anything, []int64{10, 20}).Return(map[int64]bool{10: true, 20: true}, nil).Once()

	var savedInstallments []domain.Installment
	suite.mockDocumentRepo.On("SaveDocument", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			savedInstallments = args.Get(3).([]domain.Installment)
		}).Return(nil).Once()

	doc, err := suite.service.IssueDocument(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.Incoming, doc.Key.Type)
	suite.Require().Len(savedInstallments, 1)
	suite.Equal(domain.Payable, savedInstallments[0].Direction)
	suite.Equal(suite.supplier.Code, savedInstallments[0].PersonCode)
}

func (suite *DocumentServiceTestSuite) TestIssueDocument_TotalMismatch() {
	ctx := context.Background()
	condition := domain.PaymentCondition{Code: 3}

	req := suite.issueRequest()
	req.Total = decimal.RequireFromString("1000.02") // 0.02 past the lines

	suite.expectLookups(condition)

	_, err := suite.service.IssueDocument(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockDocumentRepo.AssertNotCalled(suite.T(), "SaveDocument", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DocumentServiceTestSuite) TestIssueDocument_TotalWithinTolerance() {
	ctx := context.Background()
	condition := domain.PaymentCondition{Code: 3}

	req := suite.issueRequest()
	req.Total = decimal.RequireFromString("1000.01") // exactly at the tolerance

	suite.expectLookups(condition)
	suite.mockDocumentRepo.On("SaveDocument", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	_, err := suite.service.IssueDocument(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.mockDocumentRepo.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestIssueDocument_UnknownProduct() {
	ctx := context.Background()
	condition := domain.PaymentCondition{Code: 3}

	suite.mockPersonRepo.On("FindPersonByCode", mock.Anything, suite.client.Code).Return(&suite.client, nil).Once()
	suite.mockMethodRepo.On("FindPaymentMethodByCode", mock.Anything, suite.method.Code).Return(&suite.method, nil).Once()
	suite.mockConditionRepo.On("FindPaymentConditionByCode", mock.Anything, condition.Code).Return(&condition, nil).Once()
	suite.mockProductRepo.On("ExistingProductCodes", mock.Anything, []int64{10, 20}).Return(map[int64]bool{10: true}, nil).Once()

	_, err := suite.service.IssueDocument(ctx, suite.issueRequest(), suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockDocumentRepo.AssertNotCalled(suite.T(), "SaveDocument", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DocumentServiceTestSuite) TestIssueDocument_InvalidEmissionDate() {
	ctx := context.Background()

	req := suite.issueRequest()
	req.EmissionDate = "not-a-date"

	_, err := suite.service.IssueDocument(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPersonRepo.AssertNotCalled(suite.T(), "FindPersonByCode", mock.Anything, mock.Anything)
	suite.mockDocumentRepo.AssertNotCalled(suite.T(), "SaveDocument", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DocumentServiceTestSuite) TestIssueDocument_PersonNotClient() {
	ctx := context.Background()

	// Supplier-only person on an outgoing document.
	req := suite.issueRequest()
	req.PersonCode = suite.supplier.Code
	suite.mockPersonRepo.On("FindPersonByCode", mock.Anything, suite.supplier.Code).Return(&suite.supplier, nil).Once()

	_, err := suite.service.IssueDocument(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrPersonRoleMismatch)
	suite.mockDocumentRepo.AssertNotCalled(suite.T(), "SaveDocument", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DocumentServiceTestSuite) TestIssueDocument_ConditionNotFound() {
	ctx := context.Background()

	suite.mockPersonRepo.On("FindPersonByCode", mock.Anything, suite.client.Code).Return(&suite.client, nil).Once()
	suite.mockMethodRepo.On("FindPaymentMethodByCode", mock.Anything, suite.method.Code).Return(&suite.method, nil).Once()
	suite.mockConditionRepo.On("FindPaymentConditionByCode", mock.Anything, int64(3)).Return(nil, apperrors.NewNotFoundError("payment condition not found")).Once()

	_, err := suite.service.IssueDocument(ctx, suite.issueRequest(), suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockDocumentRepo.AssertNotCalled(suite.T(), "SaveDocument", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DocumentServiceTestSuite) TestUpdateDocument_ReplacesLines() {
	ctx := context.Background()
	key := domain.DocumentKey{Model: 55, Series: 1, Number: 1234, Type: domain.Outgoing}
	existing := domain.FiscalDocument{Key: key, PersonCode: suite.client.Code, Total: decimal.NewFromInt(700)}

	req := dto.UpdateDocumentRequest{
		PersonCode:           suite.client.Code,
		EmissionDate:         "2024-02-10",
		Total:                decimal.NewFromInt(500),
		PaymentMethodCode:    suite.method.Code,
		PaymentConditionCode: 3,
		Lines: []dto.DocumentLinePayload{
			{ProductCode: 10, Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(250)},
		},
	}

	suite.mockDocumentRepo.On("FindDocumentByKey", mock.Anything, key).Return(&existing, nil).Once()
	suite.mockPersonRepo.On("FindPersonByCode", mock.Anything, suite.client.Code).Return(&suite.client, nil).Once()
	suite.mockMethodRepo.On("FindPaymentMethodByCode", mock.Anything, suite.method.Code).Return(&suite.method, nil).Once()
	suite.mockConditionRepo.On("FindPaymentConditionByCode", mock.Anything, int64(3)).Return(&domain.PaymentCondition{Code: 3}, nil).Once()
	suite.mockProductRepo.On("ExistingProductCodes", mock.Anything, []int64{10}).Return(map[int64]bool{10: true}, nil).Once()
	suite.mockDocumentRepo.On("ReplaceDocumentLines", mock.Anything, mock.AnythingOfType("domain.FiscalDocument"), mock.AnythingOfType("[]domain.DocumentLine")).Return(nil).Once()

	doc, err := suite.service.UpdateDocument(ctx, key, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(doc.Total.Equal(decimal.NewFromInt(500)))
	suite.Require().Len(doc.Lines, 1)
	suite.mockDocumentRepo.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestDeleteDocument_NotFound() {
	ctx := context.Background()
	key := domain.DocumentKey{Model: 55, Series: 1, Number: 9999, Type: domain.Outgoing}

	suite.mockDocumentRepo.On("DeleteDocument", mock.Anything, key).Return(apperrors.NewNotFoundError("document not found")).Once()

	err := suite.service.DeleteDocument(ctx, key)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestDocumentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentServiceTestSuite))
}
