package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Auth             AuthSvcFacade
	Person           PersonSvcFacade
	Country          CountrySvcFacade
	State            StateSvcFacade
	City             CitySvcFacade
	Unit             UnitSvcFacade
	Product          ProductSvcFacade
	Vehicle          VehicleSvcFacade
	PaymentMethod    PaymentMethodSvcFacade
	PaymentCondition PaymentConditionSvcFacade
	Document         DocumentSvcFacade
	Installment      InstallmentSvcFacade
}
