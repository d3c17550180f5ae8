package repositories

import (
	"context"
	"time"

	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/domain"
)

// PersonReader defines read operations over the shared identity records.
type PersonReader interface {
	// FindPersonByCode retrieves a person by internal code.
	FindPersonByCode(ctx context.Context, code int64) (*domain.Person, error)

	// FindPersonByTaxID retrieves a person by CPF/CNPJ (digits only).
	// Used by the entry forms to auto-fill and avoid duplicate identities.
	FindPersonByTaxID(ctx context.Context, taxID string) (*domain.Person, error)

	// FindPersonByLogin retrieves an employee person by login, for authentication.
	FindPersonByLogin(ctx context.Context, login string) (*domain.Person, error)

	// ListPersons retrieves persons, optionally filtered to one role
	// ("client", "supplier", "employee", "carrier"). Empty role lists all.
	ListPersons(ctx context.Context, role string) ([]domain.Person, error)
}

// PersonWriter defines write operations over the shared identity records.
type PersonWriter interface {
	// CreatePerson persists a new person and returns the generated code.
	CreatePerson(ctx context.Context, person domain.Person) (int64, error)

	// UpdatePerson rewrites a person record in place.
	UpdatePerson(ctx context.Context, person domain.Person) error

	// DeactivatePerson soft-deletes a person. Returns ErrAlreadyInState when
	// the person is already inactive.
	DeactivatePerson(ctx context.Context, code int64, userID string, at time.Time) error
}

// PersonRepositoryFacade combines all person-related repository interfaces.
type PersonRepositoryFacade interface {
	PersonReader
	PersonWriter
}
