package services

import (
	"context"

	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/domain"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/dto"
)

// CountrySvcFacade manages country master data.
type CountrySvcFacade interface {
	CreateCountry(ctx context.Context, req dto.CountryRequest, creatorUserID string) (*domain.Country, error)
	UpdateCountry(ctx context.Context, code int64, req dto.CountryRequest, updaterUserID string) (*domain.Country, error)
	DeleteCountry(ctx context.Context, code int64) error
	GetCountryByCode(ctx context.Context, code int64) (*domain.Country, error)
	ListCountries(ctx context.Context) ([]domain.Country, error)
}

// StateSvcFacade manages state master data.
type StateSvcFacade interface {
	CreateState(ctx context.Context, req dto.StateRequest, creatorUserID string) (*domain.State, error)
	UpdateState(ctx context.Context, code int64, req dto.StateRequest, updaterUserID string) (*domain.State, error)
	DeleteState(ctx context.Context, code int64) error
	GetStateByCode(ctx context.Context, code int64) (*domain.State, error)
	ListStates(ctx context.Context, countryCode int64) ([]domain.State, error)
}

// CitySvcFacade manages city master data.
type CitySvcFacade interface {
	CreateCity(ctx context.Context, req dto.CityRequest, creatorUserID string) (*domain.City, error)
	UpdateCity(ctx context.Context, code int64, req dto.CityRequest, updaterUserID string) (*domain.City, error)
	DeleteCity(ctx context.Context, code int64) error
	GetCityByCode(ctx context.Context, code int64) (*domain.City, error)
	ListCities(ctx context.Context, stateCode int64) ([]domain.City, error)
}
