package repositories

import (
	"context"

	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/domain"
)

// UnitRepositoryFacade is the persistence contract for units of measure.
type UnitRepositoryFacade interface {
	CreateUnit(ctx context.Context, unit domain.UnitOfMeasure) (int64, error)
	UpdateUnit(ctx context.Context, unit domain.UnitOfMeasure) error
	DeleteUnit(ctx context.Context, code int64) error
	FindUnitByCode(ctx context.Context, code int64) (*domain.UnitOfMeasure, error)
	ListUnits(ctx context.Context) ([]domain.UnitOfMeasure, error)
}

// ProductReader defines read operations over the product master.
type ProductReader interface {
	FindProductByCode(ctx context.Context, code int64) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// ExistingProductCodes reports which of the given codes exist. Document
	// validation probes the product master through this.
	ExistingProductCodes(ctx context.Context, codes []int64) (map[int64]bool, error)
}

// ProductWriter defines write operations over the product master.
type ProductWriter interface {
	CreateProduct(ctx context.Context, product domain.Product) (int64, error)
	UpdateProduct(ctx context.Context, product domain.Product) error
	DeleteProduct(ctx context.Context, code int64) error
}

// ProductRepositoryFacade combines all product repository interfaces.
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}

// VehicleRepositoryFacade is the persistence contract for carrier vehicles.
type VehicleRepositoryFacade interface {
	CreateVehicle(ctx context.Context, vehicle domain.Vehicle) error
	UpdateVehicle(ctx context.Context, vehicle domain.Vehicle) error
	DeleteVehicle(ctx context.Context, plate string) error
	FindVehicleByPlate(ctx context.Context, plate string) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context, carrierCode int64) ([]domain.Vehicle, error)
}
