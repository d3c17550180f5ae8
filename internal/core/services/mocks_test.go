package services_test

import (
	"context"
	"time"

	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/domain"
	portsrepo "github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock PersonRepository ---

type MockPersonRepository struct {
	mock.Mock
}

var _ portsrepo.PersonRepositoryFacade = (*MockPersonRepository)(nil)

func (m *MockPersonRepository) FindPersonByCode(ctx context.Context, code int64) (*domain.Person, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

func (m *MockPersonRepository) FindPersonByTaxID(ctx context.Context, taxID string) (*domain.Person, error) {
	args := m.Called(ctx, taxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

func (m *MockPersonRepository) FindPersonByLogin(ctx context.Context, login string) (*domain.Person, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

func (m *MockPersonRepository) ListPersons(ctx context.Context, role string) ([]domain.Person, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Person), args.Error(1)
}

func (m *MockPersonRepository) CreatePerson(ctx context.Context, person domain.Person) (int64, error) {
	args := m.Called(ctx, person)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPersonRepository) UpdatePerson(ctx context.Context, person domain.Person) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

func (m *MockPersonRepository) DeactivatePerson(ctx context.Context, code int64, userID string, at time.Time) error {
	args := m.Called(ctx, code, userID, at)
	return args.Error(0)
}

// --- Mock CityRepository ---

type MockCityRepository struct {
	mock.Mock
}

var _ portsrepo.CityRepositoryFacade = (*MockCityRepository)(nil)

func (m *MockCityRepository) CreateCity(ctx context.Context, city domain.City) (int64, error) {
	args := m.Called(ctx, city)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCityRepository) UpdateCity(ctx context.Context, city domain.City) error {
	args := m.Called(ctx, city)
	return args.Error(0)
}

func (m *MockCityRepository) DeleteCity(ctx context.Context, code int64) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockCityRepository) FindCityByCode(ctx context.Context, code int64) (*domain.City, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.City), args.Error(1)
}

func (m *MockCityRepository) ListCities(ctx context.Context, stateCode int64) ([]domain.City, error) {
	args := m.Called(ctx, stateCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.City), args.Error(1)
}

// --- Mock ProductRepository ---

type MockProductRepository struct {
	mock.Mock
}

var _ portsrepo.ProductRepositoryFacade = (*MockProductRepository)(nil)

func (m *MockProductRepository) FindProductByCode(ctx context.Context, code int64) (*domain.Product, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) ExistingProductCodes(ctx context.Context, codes []int64) (map[int64]bool, error) {
	args := m.Called(ctx, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]bool), args.Error(1)
}

func (m *MockProductRepository) CreateProduct(ctx context.Context, product domain.Product) (int64, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, code int64) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

// --- Mock PaymentMethodRepository ---

type MockPaymentMethodRepository struct {
	mock.Mock
}

var _ portsrepo.PaymentMethodRepositoryFacade = (*MockPaymentMethodRepository)(nil)

func (m *MockPaymentMethodRepository) CreatePaymentMethod(ctx context.Context, method domain.PaymentMethod) (int64, error) {
	args := m.Called(ctx, method)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentMethodRepository) UpdatePaymentMethod(ctx context.Context, method domain.PaymentMethod) error {
	args := m.Called(ctx, method)
	return args.Error(0)
}

func (m *MockPaymentMethodRepository) DeletePaymentMethod(ctx context.Context, code int64) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockPaymentMethodRepository) FindPaymentMethodByCode(ctx context.Context, code int64) (*domain.PaymentMethod, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodRepository) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentMethod), args.Error(1)
}

// --- Mock PaymentConditionRepository ---

type MockPaymentConditionRepository struct {
	mock.Mock
}

var _ portsrepo.PaymentConditionRepositoryFacade = (*MockPaymentConditionRepository)(nil)

func (m *MockPaymentConditionRepository) CreatePaymentCondition(ctx context.Context, condition domain.PaymentCondition) (int64, error) {
	args := m.Called(ctx, condition)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentConditionRepository) UpdatePaymentCondition(ctx context.Context, condition domain.PaymentCondition) error {
	args := m.Called(ctx, condition)
	return args.Error(0)
}

func (m *MockPaymentConditionRepository) DeletePaymentCondition(ctx context.Context, code int64) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockPaymentConditionRepository) FindPaymentConditionByCode(ctx context.Context, code int64) (*domain.PaymentCondition, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentCondition), args.Error(1)
}

func (m *MockPaymentConditionRepository) ListPaymentConditions(ctx context.Context) ([]domain.PaymentCondition, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentCondition), args.Error(1)
}

// --- Mock DocumentRepository ---

type MockDocumentRepository struct {
	mock.Mock
}

var _ portsrepo.DocumentRepositoryFacade = (*MockDocumentRepository)(nil)

func (m *MockDocumentRepository) FindDocumentByKey(ctx context.Context, key domain.DocumentKey) (*domain.FiscalDocument, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalDocument), args.Error(1)
}

func (m *MockDocumentRepository) ListDocuments(ctx context.Context, docType *domain.DocumentType, limit int, nextToken *string) ([]domain.FiscalDocument, *string, error) {
	args := m.Called(ctx, docType, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.FiscalDocument), returnedNextToken, args.Error(2)
}

func (m *MockDocumentRepository) SaveDocument(ctx context.Context, doc domain.FiscalDocument, lines []domain.DocumentLine, installments []domain.Installment) error {
	args := m.Called(ctx, doc, lines, installments)
	return args.Error(0)
}

func (m *MockDocumentRepository) ReplaceDocumentLines(ctx context.Context, doc domain.FiscalDocument, lines []domain.DocumentLine) error {
	args := m.Called(ctx, doc, lines)
	return args.Error(0)
}

func (m *MockDocumentRepository) DeleteDocument(ctx context.Context, key domain.DocumentKey) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// --- Mock InstallmentRepository ---

type MockInstallmentRepository struct {
	mock.Mock
}

var _ portsrepo.InstallmentRepositoryFacade = (*MockInstallmentRepository)(nil)

func (m *MockInstallmentRepository) FindInstallment(ctx context.Context, direction domain.InstallmentDirection, key domain.DocumentKey, number int) (*domain.Installment, error) {
	args := m.Called(ctx, direction, key, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Installment), args.Error(1)
}

func (m *MockInstallmentRepository) ListInstallments(ctx context.Context, direction domain.InstallmentDirection, key *domain.DocumentKey, openOnly bool) ([]domain.Installment, error) {
	args := m.Called(ctx, direction, key, openOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Installment), args.Error(1)
}

func (m *MockInstallmentRepository) SettleInstallment(ctx context.Context, direction domain.InstallmentDirection, key domain.DocumentKey, number int, paidAt time.Time, paidValue decimal.Decimal, userID string) error {
	args := m.Called(ctx, direction, key, number, paidAt, paidValue, userID)
	return args.Error(0)
}
