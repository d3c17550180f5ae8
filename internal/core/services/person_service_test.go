package services_test

import (
	"context"
	"testing"

	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/apperrors"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/domain"
	portssvc "github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/ports/services"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/services"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/dto"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PersonServiceTestSuite struct {
	suite.Suite
	mockPersonRepo *MockPersonRepository
	mockCityRepo   *MockCityRepository
	service        portssvc.PersonSvcFacade
	city           domain.City
	userID         string
}

func (suite *PersonServiceTestSuite) SetupTest() {
	suite.mockPersonRepo = new(MockPersonRepository)
	suite.mockCityRepo = new(MockCityRepository)
	suite.service = services.NewPersonService(suite.mockPersonRepo, suite.mockCityRepo)
	suite.city = domain.City{Code: 1, Name: "Marília", StateCode: 26}
	suite.userID = "jsilva"
}

func (suite *PersonServiceTestSuite) TestCreatePerson_ClientWithValidCPF() {
	ctx := context.Background()
	req := dto.CreatePersonRequest{
		Type:     "F",
		Name:     "Maria Souza",
		TaxID:    "529.982.247-25",
		CityCode: suite.city.Code,
		Roles:    dto.PersonRolesPayload{Client: true},
	}

	suite.mockCityRepo.On("FindCityByCode", mock.Anything, suite.city.Code).Return(&suite.city, nil).Once()

	var savedPerson domain.Person
	suite.mockPersonRepo.On("CreatePerson", mock.Anything, mock.AnythingOfType("domain.Person")).
		Run(func(args mock.Arguments) {
			savedPerson = args.Get(1).(domain.Person)
		}).Return(int64(42), nil).Once()

	person, err := suite.service.CreatePerson(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(int64(42), person.Code)
	suite.True(person.Active)
	// tax ID stored as digits only
	suite.Require().NotNil(savedPerson.TaxID)
	suite.Equal("52998224725", *savedPerson.TaxID)
	suite.mockPersonRepo.AssertExpectations(suite.T())
}

func (suite *PersonServiceTestSuite) TestCreatePerson_InvalidCPF() {
	ctx := context.Background()
	req := dto.CreatePersonRequest{
		Type:     "F",
		Name:     "Maria Souza",
		TaxID:    "529.982.247-26", // last check digit off by one
		CityCode: suite.city.Code,
		Roles:    dto.PersonRolesPayload{Client: true},
	}

	_, err := suite.service.CreatePerson(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPersonRepo.AssertNotCalled(suite.T(), "CreatePerson", mock.Anything, mock.Anything)
}

func (suite *PersonServiceTestSuite) TestCreatePerson_InvalidCNPJ() {
	ctx := context.Background()
	req := dto.CreatePersonRequest{
		Type:     "J",
		Name:     "Comércio Teste Ltda",
		TaxID:    "11.222.333/0001-82",
		CityCode: suite.city.Code,
		Roles:    dto.PersonRolesPayload{Supplier: true},
	}

	_, err := suite.service.CreatePerson(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPersonRepo.AssertNotCalled(suite.T(), "CreatePerson", mock.Anything, mock.Anything)
}

func (suite *PersonServiceTestSuite) TestCreatePerson_EmptyTaxIDAccepted() {
	ctx := context.Background()
	req := dto.CreatePersonRequest{
		Type:     "F",
		Name:     "Consumidor Final",
		CityCode: suite.city.Code,
		Roles:    dto.PersonRolesPayload{Client: true},
	}

	suite.mockCityRepo.On("FindCityByCode", mock.Anything, suite.city.Code).Return(&suite.city, nil).Once()

	var savedPerson domain.Person
	suite.mockPersonRepo.On("CreatePerson", mock.Anything, mock.AnythingOfType("domain.Person")).
		Run(func(args mock.Arguments) {
			savedPerson = args.Get(1).(domain.Person)
		}).Return(int64(43), nil).Once()

	_, err := suite.service.CreatePerson(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Nil(savedPerson.TaxID)
}

func (suite *PersonServiceTestSuite) TestCreatePerson_EmployeeHashesPassword() {
	ctx := context.Background()
	req := dto.CreatePersonRequest{
		Type:     "F",
		Name:     "João Silva",
		TaxID:    "111.444.777-35",
		CityCode: suite.city.Code,
		Roles:    dto.PersonRolesPayload{Employee: true},
		Employee: &dto.EmployeePayload{
			HireDate: "2023-05-02",
			Position: "Vendedor",
			Salary:   decimal.NewFromInt(3200),
			Login:    "jsilva",
			Password: "segredo123",
		},
	}

	suite.mockCityRepo.On("FindCityByCode", mock.Anything, suite.city.Code).Return(&suite.city, nil).Once()

	var savedPerson domain.Person
	suite.mockPersonRepo.On("CreatePerson", mock.Anything, mock.AnythingOfType("domain.Person")).
		Run(func(args mock.Arguments) {
			savedPerson = args.Get(1).(domain.Person)
		}).Return(int64(44), nil).Once()

	_, err := suite.service.CreatePerson(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(savedPerson.Employee)
	suite.NotEqual("segredo123", savedPerson.Employee.PasswordHash)
	suite.True(utils.CheckPasswordHash("segredo123", savedPerson.Employee.PasswordHash))
}

func (suite *PersonServiceTestSuite) TestCreatePerson_EmployeeRoleWithoutSection() {
	ctx := context.Background()
	req := dto.CreatePersonRequest{
		Type:     "F",
		Name:     "João Silva",
		CityCode: suite.city.Code,
		Roles:    dto.PersonRolesPayload{Employee: true},
	}

	suite.mockCityRepo.On("FindCityByCode", mock.Anything, suite.city.Code).Return(&suite.city, nil).Once()

	_, err := suite.service.CreatePerson(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PersonServiceTestSuite) TestCreatePerson_UnknownCity() {
	ctx := context.Background()
	req := dto.CreatePersonRequest{
		Type:     "F",
		Name:     "Maria Souza",
		CityCode: 999,
		Roles:    dto.PersonRolesPayload{Client: true},
	}

	suite.mockCityRepo.On("FindCityByCode", mock.Anything, int64(999)).Return(nil, apperrors.NewNotFoundError("city not found")).Once()

	_, err := suite.service.CreatePerson(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PersonServiceTestSuite) TestUpdatePerson_KeepsStoredPasswordHash() {
	ctx := context.Background()
	storedHash, err := utils.HashPassword("antiga")
	suite.Require().NoError(err)

	existing := domain.Person{
		Code:     42,
		Type:     domain.Individual,
		Name:     "João Silva",
		CityCode: suite.city.Code,
		Roles:    domain.PersonRoles{Employee: true},
		Employee: &domain.EmployeeDetails{Login: "jsilva", PasswordHash: storedHash},
		Active:   true,
	}

	req := dto.UpdatePersonRequest{
		Type:     "F",
		Name:     "João Silva Jr",
		CityCode: suite.city.Code,
		Roles:    dto.PersonRolesPayload{Employee: true},
		Employee: &dto.EmployeePayload{
			HireDate: "2023-05-02",
			Position: "Gerente",
			Salary:   decimal.NewFromInt(5000),
			Login:    "jsilva",
			// no password: the stored hash must survive
		},
	}

	suite.mockPersonRepo.On("FindPersonByCode", mock.Anything, int64(42)).Return(&existing, nil).Once()
	suite.mockCityRepo.On("FindCityByCode", mock.Anything, suite.city.Code).Return(&suite.city, nil).Once()

	var updated domain.Person
	suite.mockPersonRepo.On("UpdatePerson", mock.Anything, mock.AnythingOfType("domain.Person")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(domain.Person)
		}).Return(nil).Once()

	_, err = suite.service.UpdatePerson(ctx, 42, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(storedHash, updated.Employee.PasswordHash)
	suite.Equal("Gerente", updated.Employee.Position)
}

func (suite *PersonServiceTestSuite) TestDeactivatePerson_AlreadyInactive() {
	ctx := context.Background()

	suite.mockPersonRepo.On("DeactivatePerson", mock.Anything, int64(42), suite.userID, mock.AnythingOfType("time.Time")).Return(apperrors.ErrAlreadyInState).Once()

	err := suite.service.DeactivatePerson(ctx, 42, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAlreadyInState)
}

func (suite *PersonServiceTestSuite) TestGetPersonByTaxID_StripsFormatting() {
	ctx := context.Background()
	taxID := "52998224725"
	person := domain.Person{Code: 42, TaxID: &taxID}

	suite.mockPersonRepo.On("FindPersonByTaxID", mock.Anything, "52998224725").Return(&person, nil).Once()

	found, err := suite.service.GetPersonByTaxID(ctx, "529.982.247-25")

	suite.Require().NoError(err)
	suite.Equal(int64(42), found.Code)
}

func TestPersonServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PersonServiceTestSuite))
}
