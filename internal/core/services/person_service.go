package services

import (
	"context"
	"fmt"
	"time"

	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/apperrors"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/domain"
	portsrepo "github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/ports/repositories"
	portssvc "github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/ports/services"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/dto"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/middleware"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/utils"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/utils/fiscal"
)

// personService manages the shared identity records behind clients,
// suppliers, employees and carriers.
type personService struct {
	personRepo portsrepo.PersonRepositoryFacade
	cityRepo   portsrepo.CityRepositoryFacade
}

// NewPersonService creates a new PersonService.
func NewPersonService(personRepo portsrepo.PersonRepositoryFacade, cityRepo portsrepo.CityRepositoryFacade) portssvc.PersonSvcFacade {
	return &personService{
		personRepo: personRepo,
		cityRepo:   cityRepo,
	}
}

var _ portssvc.PersonSvcFacade = (*personService)(nil)

// buildPerson assembles a domain.Person from a request after tax ID
// validation, hashing the employee password when one is supplied.
func (s *personService) buildPerson(ctx context.Context, personType string, name, tradeName, taxID, stateReg, email, phone, address, district, zipCode string, cityCode int64, roles dto.PersonRolesPayload, employee *dto.EmployeePayload) (*domain.Person, error) {
	pt := domain.PersonType(personType)

	if err := fiscal.ValidateTaxID(taxID, pt); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if _, err := s.cityRepo.FindCityByCode(ctx, cityCode); err != nil {
		return nil, fmt.Errorf("city %d: %w", cityCode, err)
	}

	person := &domain.Person{
		Type:              pt,
		Name:              name,
		TradeName:         tradeName,
		StateRegistration: stateReg,
		Email:             email,
		Phone:             phone,
		Address:           address,
		District:          district,
		ZipCode:           zipCode,
		CityCode:          cityCode,
		Roles: domain.PersonRoles{
			Client:   roles.Client,
			Supplier: roles.Supplier,
			Employee: roles.Employee,
			Carrier:  roles.Carrier,
		},
		Active: true,
	}

	if digits := fiscal.OnlyDigits(taxID); digits != "" {
		person.TaxID = &digits
	}

	if roles.Employee {
		if employee == nil {
			return nil, apperrors.NewValidationError("employee role requires the employee section")
		}
		hireDate, err := time.Parse(fiscal.EmissionDateLayout, employee.HireDate)
		if err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("invalid hire date %q", employee.HireDate))
		}
		details := &domain.EmployeeDetails{
			HireDate: hireDate,
			Position: employee.Position,
			Salary:   employee.Salary,
			Login:    employee.Login,
		}
		if employee.Password != "" {
			hash, err := utils.HashPassword(employee.Password)
			if err != nil {
				return nil, fmt.Errorf("failed to hash password: %w", err)
			}
			details.PasswordHash = hash
		}
		person.Employee = details
	}

	return person, nil
}

func (s *personService) CreatePerson(ctx context.Context, req dto.CreatePersonRequest, creatorUserID string) (*domain.Person, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	person, err := s.buildPerson(ctx, req.Type, req.Name, req.TradeName, req.TaxID, req.StateRegistration, req.Email, req.Phone, req.Address, req.District, req.ZipCode, req.CityCode, req.Roles, req.Employee)
	if err != nil {
		return nil, err
	}

	if person.Roles.Employee && person.Employee.PasswordHash == "" {
		return nil, apperrors.NewValidationError("employee registration requires a password")
	}

	now := time.Now()
	person.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	code, err := s.personRepo.CreatePerson(ctx, *person)
	if err != nil {
		logger.Error("Failed to create person", "error", err)
		return nil, fmt.Errorf("failed to create person: %w", err)
	}
	person.Code = code

	logger.Info("Person created", "code", code)
	return person, nil
}

func (s *personService) UpdatePerson(ctx context.Context, code int64, req dto.UpdatePersonRequest, updaterUserID string) (*domain.Person, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.personRepo.FindPersonByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to find person %d: %w", code, err)
	}

	person, err := s.buildPerson(ctx, req.Type, req.Name, req.TradeName, req.TaxID, req.StateRegistration, req.Email, req.Phone, req.Address, req.District, req.ZipCode, req.CityCode, req.Roles, req.Employee)
	if err != nil {
		return nil, err
	}

	person.Code = code
	person.Active = existing.Active
	person.AuditFields = existing.AuditFields
	person.Touch(updaterUserID, time.Now())

	// Keep the stored hash when the update carries no new password.
	if person.Employee != nil && person.Employee.PasswordHash == "" {
		if existing.Employee == nil {
			return nil, apperrors.NewValidationError("employee registration requires a password")
		}
		person.Employee.PasswordHash = existing.Employee.PasswordHash
	}

	if err := s.personRepo.UpdatePerson(ctx, *person); err != nil {
		logger.Error("Failed to update person", "code", code, "error", err)
		return nil, fmt.Errorf("failed to update person %d: %w", code, err)
	}

	return person, nil
}

func (s *personService) DeactivatePerson(ctx context.Context, code int64, updaterUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.personRepo.DeactivatePerson(ctx, code, updaterUserID, time.Now()); err != nil {
		logger.Warn("Failed to deactivate person", "code", code, "error", err)
		return err
	}

	logger.Info("Person deactivated", "code", code)
	return nil
}

func (s *personService) GetPersonByCode(ctx context.Context, code int64) (*domain.Person, error) {
	person, err := s.personRepo.FindPersonByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get person %d: %w", code, err)
	}
	return person, nil
}

func (s *personService) GetPersonByTaxID(ctx context.Context, taxID string) (*domain.Person, error) {
	digits := fiscal.OnlyDigits(taxID)
	if digits == "" {
		return nil, apperrors.NewValidationError("tax ID is required")
	}
	person, err := s.personRepo.FindPersonByTaxID(ctx, digits)
	if err != nil {
		return nil, fmt.Errorf("failed to get person by tax ID: %w", err)
	}
	return person, nil
}

func (s *personService) ListPersons(ctx context.Context, role string) ([]domain.Person, error) {
	persons, err := s.personRepo.ListPersons(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}
	if persons == nil {
		return []domain.Person{}, nil
	}
	return persons, nil
}
