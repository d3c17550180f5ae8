package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	PersonRepo           PersonRepositoryFacade
	CountryRepo          CountryRepositoryFacade
	StateRepo            StateRepositoryFacade
	CityRepo             CityRepositoryFacade
	UnitRepo             UnitRepositoryFacade
	ProductRepo          ProductRepositoryFacade
	VehicleRepo          VehicleRepositoryFacade
	PaymentMethodRepo    PaymentMethodRepositoryFacade
	PaymentConditionRepo PaymentConditionRepositoryFacade
	DocumentRepo         DocumentRepositoryFacade
	InstallmentRepo      InstallmentRepositoryFacade
}
