package repositories

import (
	"context"

	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/domain"
)

// CountryRepositoryFacade is the persistence contract for countries.
type CountryRepositoryFacade interface {
	CreateCountry(ctx context.Context, country domain.Country) (int64, error)
	UpdateCountry(ctx context.Context, country domain.Country) error
	DeleteCountry(ctx context.Context, code int64) error
	FindCountryByCode(ctx context.Context, code int64) (*domain.Country, error)
	ListCountries(ctx context.Context) ([]domain.Country, error)
}

// StateRepositoryFacade is the persistence contract for states.
type StateRepositoryFacade interface {
	CreateState(ctx context.Context, state domain.State) (int64, error)
	UpdateState(ctx context.Context, state domain.State) error
	DeleteState(ctx context.Context, code int64) error
	FindStateByCode(ctx context.Context, code int64) (*domain.State, error)
	ListStates(ctx context.Context, countryCode int64) ([]domain.State, error)
}

// CityRepositoryFacade is the persistence contract for cities.
type CityRepositoryFacade interface {
	CreateCity(ctx context.Context, city domain.City) (int64, error)
	UpdateCity(ctx context.Context, city domain.City) error
	DeleteCity(ctx context.Context, code int64) error
	FindCityByCode(ctx context.Context, code int64) (*domain.City, error)
	ListCities(ctx context.Context, stateCode int64) ([]domain.City, error)
}
