package services

import (
	"context"

	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/domain"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/dto"
)

// UnitSvcFacade manages units of measure.
type UnitSvcFacade interface {
	CreateUnit(ctx context.Context, req dto.UnitRequest, creatorUserID string) (*domain.UnitOfMeasure, error)
	UpdateUnit(ctx context.Context, code int64, req dto.UnitRequest, updaterUserID string) (*domain.UnitOfMeasure, error)
	DeleteUnit(ctx context.Context, code int64) error
	GetUnitByCode(ctx context.Context, code int64) (*domain.UnitOfMeasure, error)
	ListUnits(ctx context.Context) ([]domain.UnitOfMeasure, error)
}

// ProductSvcFacade manages the product master.
type ProductSvcFacade interface {
	CreateProduct(ctx context.Context, req dto.ProductRequest, creatorUserID string) (*domain.Product, error)
	UpdateProduct(ctx context.Context, code int64, req dto.ProductRequest, updaterUserID string) (*domain.Product, error)
	DeleteProduct(ctx context.Context, code int64) error
	GetProductByCode(ctx context.Context, code int64) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

// VehicleSvcFacade manages carrier vehicles.
type VehicleSvcFacade interface {
	CreateVehicle(ctx context.Context, req dto.VehicleRequest, creatorUserID string) (*domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, plate string, req dto.VehicleRequest, updaterUserID string) (*domain.Vehicle, error)
	DeleteVehicle(ctx context.Context, plate string) error
	GetVehicleByPlate(ctx context.Context, plate string) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context, carrierCode int64) ([]domain.Vehicle, error)
}
