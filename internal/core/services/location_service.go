package services

import (
	"context"
	"fmt"
	"time"

	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/domain"
	portsrepo "github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/ports/repositories"
	portssvc "github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/ports/services"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/dto"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/middleware"
)

// countryService manages country master data.
type countryService struct {
	countryRepo portsrepo.CountryRepositoryFacade
}

// NewCountryService creates a new CountryService.
func NewCountryService(countryRepo portsrepo.CountryRepositoryFacade) portssvc.CountrySvcFacade {
	return &countryService{countryRepo: countryRepo}
}

var _ portssvc.CountrySvcFacade = (*countryService)(nil)

func (s *countryService) CreateCountry(ctx context.Context, req dto.CountryRequest, creatorUserID string) (*domain.Country, error) {
	now := time.Now()
	country := domain.Country{
		Name:         req.Name,
		Abbreviation: req.Abbreviation,
		PhonePrefix:  req.PhonePrefix,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	code, err := s.countryRepo.CreateCountry(ctx, country)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to create country", "error", err)
		return nil, fmt.Errorf("failed to create country: %w", err)
	}
	country.Code = code
	return &country, nil
}

func (s *countryService) UpdateCountry(ctx context.Context, code int64, req dto.CountryRequest, updaterUserID string) (*domain.Country, error) {
	country, err := s.countryRepo.FindCountryByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to find country %d: %w", code, err)
	}

	country.Name = req.Name
	country.Abbreviation = req.Abbreviation
	country.PhonePrefix = req.PhonePrefix
	country.Touch(updaterUserID, time.Now())

	if err := s.countryRepo.UpdateCountry(ctx, *country); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to update country", "code", code, "error", err)
		return nil, fmt.Errorf("failed to update country %d: %w", code, err)
	}
	return country, nil
}

func (s *countryService) DeleteCountry(ctx context.Context, code int64) error {
	if err := s.countryRepo.DeleteCountry(ctx, code); err != nil {
		return fmt.Errorf("failed to delete country %d: %w", code, err)
	}
	return nil
}

func (s *countryService) GetCountryByCode(ctx context.Context, code int64) (*domain.Country, error) {
	country, err := s.countryRepo.FindCountryByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get country %d: %w", code, err)
	}
	return country, nil
}

func (s *countryService) ListCountries(ctx context.Context) ([]domain.Country, error) {
	countries, err := s.countryRepo.ListCountries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}
	if countries == nil {
		return []domain.Country{}, nil
	}
	return countries, nil
}

// stateService manages state master data.
type stateService struct {
	stateRepo   portsrepo.StateRepositoryFacade
	countryRepo portsrepo.CountryRepositoryFacade
}

// NewStateService creates a new StateService.
func NewStateService(stateRepo portsrepo.StateRepositoryFacade, countryRepo portsrepo.CountryRepositoryFacade) portssvc.StateSvcFacade {
	return &stateService{stateRepo: stateRepo, countryRepo: countryRepo}
}

var _ portssvc.StateSvcFacade = (*stateService)(nil)

func (s *stateService) CreateState(ctx context.Context, req dto.StateRequest, creatorUserID string) (*domain.State, error) {
	if _, err := s.countryRepo.FindCountryByCode(ctx, req.CountryCode); err != nil {
		return nil, fmt.Errorf("country %d: %w", req.CountryCode, err)
	}

	now := time.Now()
	state := domain.State{
		Name:        req.Name,
		UF:          req.UF,
		CountryCode: req.CountryCode,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	code, err := s.stateRepo.CreateState(ctx, state)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to create state", "error", err)
		return nil, fmt.Errorf("failed to create state: %w", err)
	}
	state.Code = code
	return &state, nil
}

func (s *stateService) UpdateState(ctx context.Context, code int64, req dto.StateRequest, updaterUserID string) (*domain.State, error) {
	state, err := s.stateRepo.FindStateByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to find state %d: %w", code, err)
	}

	if _, err := s.countryRepo.FindCountryByCode(ctx, req.CountryCode); err != nil {
		return nil, fmt.Errorf("country %d: %w", req.CountryCode, err)
	}

	state.Name = req.Name
	state.UF = req.UF
	state.CountryCode = req.CountryCode
	state.Touch(updaterUserID, time.Now())

	if err := s.stateRepo.UpdateState(ctx, *state); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to update state", "code", code, "error", err)
		return nil, fmt.Errorf("failed to update state %d: %w", code, err)
	}
	return state, nil
}

func (s *stateService) DeleteState(ctx context.Context, code int64) error {
	if err := s.stateRepo.DeleteState(ctx, code); err != nil {
		return fmt.Errorf("failed to delete state %d: %w", code, err)
	}
	return nil
}

func (s *stateService) GetStateByCode(ctx context.Context, code int64) (*domain.State, error) {
	state, err := s.stateRepo.FindStateByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get state %d: %w", code, err)
	}
	return state, nil
}

func (s *stateService) ListStates(ctx context.Context, countryCode int64) ([]domain.State, error) {
	states, err := s.stateRepo.ListStates(ctx, countryCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list states: %w", err)
	}
	if states == nil {
		return []domain.State{}, nil
	}
	return states, nil
}

// cityService manages city master data.
type cityService struct {
	cityRepo  portsrepo.CityRepositoryFacade
	stateRepo portsrepo.StateRepositoryFacade
}

// NewCityService creates a new CityService.
func NewCityService(cityRepo portsrepo.CityRepositoryFacade, stateRepo portsrepo.StateRepositoryFacade) portssvc.CitySvcFacade {
	return &cityService{cityRepo: cityRepo, stateRepo: stateRepo}
}

var _ portssvc.CitySvcFacade = (*cityService)(nil)

func (s *cityService) CreateCity(ctx context.Context, req dto.CityRequest, creatorUserID string) (*domain.City, error) {
	if _, err := s.stateRepo.FindStateByCode(ctx, req.StateCode); err != nil {
		return nil, fmt.Errorf("state %d: %w", req.StateCode, err)
	}

	now := time.Now()
	city := domain.City{
		Name:      req.Name,
		AreaCode:  req.AreaCode,
		StateCode: req.StateCode,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	code, err := s.cityRepo.CreateCity(ctx, city)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to create city", "error", err)
		return nil, fmt.Errorf("failed to create city: %w", err)
	}
	city.Code = code
	return &city, nil
}

func (s *cityService) UpdateCity(ctx context.Context, code int64, req dto.CityRequest, updaterUserID string) (*domain.City, error) {
	city, err := s.cityRepo.FindCityByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to find city %d: %w", code, err)
	}

	if _, err := s.stateRepo.FindStateByCode(ctx, req.StateCode); err != nil {
		return nil, fmt.Errorf("state %d: %w", req.StateCode, err)
	}

	city.Name = req.Name
	city.AreaCode = req.AreaCode
	city.StateCode = req.StateCode
	city.Touch(updaterUserID, time.Now())

	if err := s.cityRepo.UpdateCity(ctx, *city); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to update city", "code", code, "error", err)
		return nil, fmt.Errorf("failed to update city %d: %w", code, err)
	}
	return city, nil
}

func (s *cityService) DeleteCity(ctx context.Context, code int64) error {
	if err := s.cityRepo.DeleteCity(ctx, code); err != nil {
		return fmt.Errorf("failed to delete city %d: %w", code, err)
	}
	return nil
}

func (s *cityService) GetCityByCode(ctx context.Context, code int64) (*domain.City, error) {
	city, err := s.cityRepo.FindCityByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get city %d: %w", code, err)
	}
	return city, nil
}

func (s *cityService) ListCities(ctx context.Context, stateCode int64) ([]domain.City, error) {
	cities, err := s.cityRepo.ListCities(ctx, stateCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	if cities == nil {
		return []domain.City{}, nil
	}
	return cities, nil
}
