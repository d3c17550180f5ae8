package dto

import (
	"time"

	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UnitRequest defines the data needed to create or update a unit of measure.
type UnitRequest struct {
	Name         string `json:"name" binding:"required"`
	Abbreviation string `json:"abbreviation" binding:"required,max=6"`
}

// UnitResponse defines the data returned for a unit of measure.
type UnitResponse struct {
	Code          int64     `json:"code"`
	Name          string    `json:"name"`
	Abbreviation  string    `json:"abbreviation"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

func ToUnitResponse(u *domain.UnitOfMeasure) UnitResponse {
	return UnitResponse{
		Code:          u.Code,
		Name:          u.Name,
		Abbreviation:  u.Abbreviation,
		CreatedAt:     u.CreatedAt,
		LastUpdatedAt: u.LastUpdatedAt,
	}
}

// ProductRequest defines the data needed to create or update a product.
type ProductRequest struct {
	Description string          `json:"description" binding:"required"`
	UnitCode    int64           `json:"unitCode" binding:"required"`
	SalePrice   decimal.Decimal `json:"salePrice" binding:"required"`
	Stock       decimal.Decimal `json:"stock"`
	Active      bool            `json:"active"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	Code          int64           `json:"code"`
	Description   string          `json:"description"`
	UnitCode      int64           `json:"unitCode"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	Stock         decimal.Decimal `json:"stock"`
	Active        bool            `json:"active"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		Code:          p.Code,
		Description:   p.Description,
		UnitCode:      p.UnitCode,
		SalePrice:     p.SalePrice,
		Stock:         p.Stock,
		Active:        p.Active,
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}

// VehicleRequest defines the data needed to register or update a carrier vehicle.
type VehicleRequest struct {
	Plate       string          `json:"plate" binding:"required,max=8"`
	Model       string          `json:"model" binding:"required"`
	Brand       string          `json:"brand"`
	Year        int             `json:"year"`
	CapacityKg  decimal.Decimal `json:"capacityKg"`
	CarrierCode int64           `json:"carrierCode" binding:"required"`
}

// VehicleResponse defines the data returned for a vehicle.
type VehicleResponse struct {
	Plate         string          `json:"plate"`
	Model         string          `json:"model"`
	Brand         string          `json:"brand"`
	Year          int             `json:"year"`
	CapacityKg    decimal.Decimal `json:"capacityKg"`
	CarrierCode   int64           `json:"carrierCode"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

func ToVehicleResponse(v *domain.Vehicle) VehicleResponse {
	return VehicleResponse{
		Plate:         v.Plate,
		Model:         v.Model,
		Brand:         v.Brand,
		Year:          v.Year,
		CapacityKg:    v.CapacityKg,
		CarrierCode:   v.CarrierCode,
		CreatedAt:     v.CreatedAt,
		LastUpdatedAt: v.LastUpdatedAt,
	}
}
