package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/apperrors"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/domain"
	portsrepo "github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/ports/repositories"
	portssvc "github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/ports/services"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/dto"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/middleware"
)

// unitService manages units of measure.
type unitService struct {
	unitRepo portsrepo.UnitRepositoryFacade
}

// NewUnitService creates a new UnitService.
func NewUnitService(unitRepo portsrepo.UnitRepositoryFacade) portssvc.UnitSvcFacade {
	return &unitService{unitRepo: unitRepo}
}

var _ portssvc.UnitSvcFacade = (*unitService)(nil)

func (s *unitService) CreateUnit(ctx context.Context, req dto.UnitRequest, creatorUserID string) (*domain.UnitOfMeasure, error) {
	now := time.Now()
	unit := domain.UnitOfMeasure{
		Name:         req.Name,
		Abbreviation: strings.ToUpper(req.Abbreviation),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	code, err := s.unitRepo.CreateUnit(ctx, unit)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to create unit", "error", err)
		return nil, fmt.Errorf("failed to create unit: %w", err)
	}
	unit.Code = code
	return &unit, nil
}

func (s *unitService) UpdateUnit(ctx context.Context, code int64, req dto.UnitRequest, updaterUserID string) (*domain.UnitOfMeasure, error) {
	unit, err := s.unitRepo.FindUnitByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to find unit %d: %w", code, err)
	}

	unit.Name = req.Name
	unit.Abbreviation = strings.ToUpper(req.Abbreviation)
	unit.Touch(updaterUserID, time.Now())

	if err := s.unitRepo.UpdateUnit(ctx, *unit); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to update unit", "code", code, "error", err)
		return nil, fmt.Errorf("failed to update unit %d: %w", code, err)
	}
	return unit, nil
}

func (s *unitService) DeleteUnit(ctx context.Context, code int64) error {
	if err := s.unitRepo.DeleteUnit(ctx, code); err != nil {
		return fmt.Errorf("failed to delete unit %d: %w", code, err)
	}
	return nil
}

func (s *unitService) GetUnitByCode(ctx context.Context, code int64) (*domain.UnitOfMeasure, error) {
	unit, err := s.unitRepo.FindUnitByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get unit %d: %w", code, err)
	}
	return unit, nil
}

func (s *unitService) ListUnits(ctx context.Context) ([]domain.UnitOfMeasure, error) {
	units, err := s.unitRepo.ListUnits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}
	if units == nil {
		return []domain.UnitOfMeasure{}, nil
	}
	return units, nil
}

// productService manages the product master.
type productService struct {
	productRepo portsrepo.ProductRepositoryFacade
	unitRepo    portsrepo.UnitRepositoryFacade
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade, unitRepo portsrepo.UnitRepositoryFacade) portssvc.ProductSvcFacade {
	return &productService{productRepo: productRepo, unitRepo: unitRepo}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

func (s *productService) CreateProduct(ctx context.Context, req dto.ProductRequest, creatorUserID string) (*domain.Product, error) {
	if req.SalePrice.IsNegative() {
		return nil, apperrors.NewValidationError("sale price must not be negative")
	}
	if _, err := s.unitRepo.FindUnitByCode(ctx, req.UnitCode); err != nil {
		return nil, fmt.Errorf("unit %d: %w", req.UnitCode, err)
	}

	now := time.Now()
	product := domain.Product{
		Description: req.Description,
		UnitCode:    req.UnitCode,
		SalePrice:   req.SalePrice,
		Stock:       req.Stock,
		Active:      req.Active,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	code, err := s.productRepo.CreateProduct(ctx, product)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to create product", "error", err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	product.Code = code
	return &product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, code int64, req dto.ProductRequest, updaterUserID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to find product %d: %w", code, err)
	}

	if req.SalePrice.IsNegative() {
		return nil, apperrors.NewValidationError("sale price must not be negative")
	}
	if _, err := s.unitRepo.FindUnitByCode(ctx, req.UnitCode); err != nil {
		return nil, fmt.Errorf("unit %d: %w", req.UnitCode, err)
	}

	product.Description = req.Description
	product.UnitCode = req.UnitCode
	product.SalePrice = req.SalePrice
	product.Stock = req.Stock
	product.Active = req.Active
	product.Touch(updaterUserID, time.Now())

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to update product", "code", code, "error", err)
		return nil, fmt.Errorf("failed to update product %d: %w", code, err)
	}
	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, code int64) error {
	if err := s.productRepo.DeleteProduct(ctx, code); err != nil {
		return fmt.Errorf("failed to delete product %d: %w", code, err)
	}
	return nil
}

func (s *productService) GetProductByCode(ctx context.Context, code int64) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", code, err)
	}
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if products == nil {
		return []domain.Product{}, nil
	}
	return products, nil
}

// vehicleService manages carrier vehicles.
type vehicleService struct {
	vehicleRepo portsrepo.VehicleRepositoryFacade
	personRepo  portsrepo.PersonReader
}

// NewVehicleService creates a new VehicleService.
func NewVehicleService(vehicleRepo portsrepo.VehicleRepositoryFacade, personRepo portsrepo.PersonReader) portssvc.VehicleSvcFacade {
	return &vehicleService{vehicleRepo: vehicleRepo, personRepo: personRepo}
}

var _ portssvc.VehicleSvcFacade = (*vehicleService)(nil)

// checkCarrier verifies the person exists and actually plays the carrier role.
func (s *vehicleService) checkCarrier(ctx context.Context, carrierCode int64) error {
	person, err := s.personRepo.FindPersonByCode(ctx, carrierCode)
	if err != nil {
		return fmt.Errorf("carrier %d: %w", carrierCode, err)
	}
	if !person.Roles.Carrier {
		return apperrors.NewValidationError(fmt.Sprintf("person %d is not a carrier", carrierCode))
	}
	return nil
}

func (s *vehicleService) CreateVehicle(ctx context.Context, req dto.VehicleRequest, creatorUserID string) (*domain.Vehicle, error) {
	if err := s.checkCarrier(ctx, req.CarrierCode); err != nil {
		return nil, err
	}

	now := time.Now()
	vehicle := domain.Vehicle{
		Plate:       strings.ToUpper(req.Plate),
		Model:       req.Model,
		Brand:       req.Brand,
		Year:        req.Year,
		CapacityKg:  req.CapacityKg,
		CarrierCode: req.CarrierCode,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.vehicleRepo.CreateVehicle(ctx, vehicle); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to create vehicle", "plate", vehicle.Plate, "error", err)
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}
	return &vehicle, nil
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, plate string, req dto.VehicleRequest, updaterUserID string) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindVehicleByPlate(ctx, strings.ToUpper(plate))
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicle %s: %w", plate, err)
	}

	if err := s.checkCarrier(ctx, req.CarrierCode); err != nil {
		return nil, err
	}

	vehicle.Model = req.Model
	vehicle.Brand = req.Brand
	vehicle.Year = req.Year
	vehicle.CapacityKg = req.CapacityKg
	vehicle.CarrierCode = req.CarrierCode
	vehicle.Touch(updaterUserID, time.Now())

	if err := s.vehicleRepo.UpdateVehicle(ctx, *vehicle); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to update vehicle", "plate", plate, "error", err)
		return nil, fmt.Errorf("failed to update vehicle %s: %w", plate, err)
	}
	return vehicle, nil
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, plate string) error {
	if err := s.vehicleRepo.DeleteVehicle(ctx, strings.ToUpper(plate)); err != nil {
		return fmt.Errorf("failed to delete vehicle %s: %w", plate, err)
	}
	return nil
}

func (s *vehicleService) GetVehicleByPlate(ctx context.Context, plate string) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindVehicleByPlate(ctx, strings.ToUpper(plate))
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle %s: %w", plate, err)
	}
	return vehicle, nil
}

func (s *vehicleService) ListVehicles(ctx context.Context, carrierCode int64) ([]domain.Vehicle, error) {
	vehicles, err := s.vehicleRepo.ListVehicles(ctx, carrierCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	if vehicles == nil {
		return []domain.Vehicle{}, nil
	}
	return vehicles, nil
}
