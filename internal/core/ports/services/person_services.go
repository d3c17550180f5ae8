package services

import (
	"context"

	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/domain"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/dto"
)

// PersonReaderSvc defines read operations over person records.
type PersonReaderSvc interface {
	GetPersonByCode(ctx context.Context, code int64) (*domain.Person, error)

	// GetPersonByTaxID looks up a person by CPF/CNPJ so entry forms can
	// auto-fill instead of creating a duplicate identity.
	GetPersonByTaxID(ctx context.Context, taxID string) (*domain.Person, error)

	ListPersons(ctx context.Context, role string) ([]domain.Person, error)
}

// PersonWriterSvc defines write operations over person records.
type PersonWriterSvc interface {
	// CreatePerson validates the tax ID check digits before persisting.
	CreatePerson(ctx context.Context, req dto.CreatePersonRequest, creatorUserID string) (*domain.Person, error)

	UpdatePerson(ctx context.Context, code int64, req dto.UpdatePersonRequest, updaterUserID string) (*domain.Person, error)

	// DeactivatePerson soft-deletes. Already-inactive persons yield
	// ErrAlreadyInState.
	DeactivatePerson(ctx context.Context, code int64, updaterUserID string) error
}

// PersonSvcFacade combines all person-related service interfaces.
type PersonSvcFacade interface {
	PersonReaderSvc
	PersonWriterSvc
}
