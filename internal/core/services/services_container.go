package services

import (
	portsrepo "github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/ports/repositories"
	portssvc "github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/ports/services"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Auth = NewAuthService(cfg, repos.PersonRepo)

	// Master data services. Persons depend on cities for address validation,
	// states on countries, cities on states.
	container.Country = NewCountryService(repos.CountryRepo)
	container.State = NewStateService(repos.StateRepo, repos.CountryRepo)
	container.City = NewCityService(repos.CityRepo, repos.StateRepo)
	container.Person = NewPersonService(repos.PersonRepo, repos.CityRepo)

	container.Unit = NewUnitService(repos.UnitRepo)
	container.Product = NewProductService(repos.ProductRepo, repos.UnitRepo)
	container.Vehicle = NewVehicleService(repos.VehicleRepo, repos.PersonRepo)

	container.PaymentMethod = NewPaymentMethodService(repos.PaymentMethodRepo)
	container.PaymentCondition = NewPaymentConditionService(repos.PaymentConditionRepo, repos.PaymentMethodRepo)

	// Fiscal core: issuance needs nearly every master to validate references.
	container.Document = NewDocumentService(
		repos.DocumentRepo,
		repos.PersonRepo,
		repos.ProductRepo,
		repos.PaymentMethodRepo,
		repos.PaymentConditionRepo,
	)
	container.Installment = NewInstallmentService(repos.InstallmentRepo)

	return container
}
