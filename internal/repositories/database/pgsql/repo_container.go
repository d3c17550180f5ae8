package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	personRepo := newPgxPersonRepository(dbPool)
	countryRepo := newPgxCountryRepository(dbPool)
	stateRepo := newPgxStateRepository(dbPool)
	cityRepo := newPgxCityRepository(dbPool)
	unitRepo := newPgxUnitRepository(dbPool)
	productRepo := newPgxProductRepository(dbPool)
	vehicleRepo := newPgxVehicleRepository(dbPool)
	paymentMethodRepo := newPgxPaymentMethodRepository(dbPool)
	paymentConditionRepo := newPgxPaymentConditionRepository(dbPool)
	documentRepo := newPgxDocumentRepository(dbPool)
	installmentRepo := newPgxInstallmentRepository(dbPool)

	return portsrepo.RepositoryProvider{
		PersonRepo:           personRepo,
		CountryRepo:          countryRepo,
		StateRepo:            stateRepo,
		CityRepo:             cityRepo,
		UnitRepo:             unitRepo,
		ProductRepo:          productRepo,
		VehicleRepo:          vehicleRepo,
		PaymentMethodRepo:    paymentMethodRepo,
		PaymentConditionRepo: paymentConditionRepo,
		DocumentRepo:         documentRepo,
		InstallmentRepo:      installmentRepo,
	}
}
