package dto

import (
	"time"

	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/domain"
)

// CountryRequest defines the data needed to create or update a country.
type CountryRequest struct {
	Name         string `json:"name" binding:"required"`
	Abbreviation string `json:"abbreviation" binding:"required,max=3"`
	PhonePrefix  string `json:"phonePrefix"`
}

// CountryResponse defines the data returned for a country.
type CountryResponse struct {
	Code          int64     `json:"code"`
	Name          string    `json:"name"`
	Abbreviation  string    `json:"abbreviation"`
	PhonePrefix   string    `json:"phonePrefix"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

func ToCountryResponse(c *domain.Country) CountryResponse {
	return CountryResponse{
		Code:          c.Code,
		Name:          c.Name,
		Abbreviation:  c.Abbreviation,
		PhonePrefix:   c.PhonePrefix,
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

// StateRequest defines the data needed to create or update a state.
type StateRequest struct {
	Name        string `json:"name" binding:"required"`
	UF          string `json:"uf" binding:"required,len=2"`
	CountryCode int64  `json:"countryCode" binding:"required"`
}

// StateResponse defines the data returned for a state.
type StateResponse struct {
	Code          int64     `json:"code"`
	Name          string    `json:"name"`
	UF            string    `json:"uf"`
	CountryCode   int64     `json:"countryCode"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

func ToStateResponse(s *domain.State) StateResponse {
	return StateResponse{
		Code:          s.Code,
		Name:          s.Name,
		UF:            s.UF,
		CountryCode:   s.CountryCode,
		CreatedAt:     s.CreatedAt,
		LastUpdatedAt: s.LastUpdatedAt,
	}
}

// CityRequest defines the data needed to create or update a city.
type CityRequest struct {
	Name      string `json:"name" binding:"required"`
	AreaCode  string `json:"areaCode"`
	StateCode int64  `json:"stateCode" binding:"required"`
}

// CityResponse defines the data returned for a city.
type CityResponse struct {
	Code          int64     `json:"code"`
	Name          string    `json:"name"`
	AreaCode      string    `json:"areaCode"`
	StateCode     int64     `json:"stateCode"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

func ToCityResponse(c *domain.City) CityResponse {
	return CityResponse{
		Code:          c.Code,
		Name:          c.Name,
		AreaCode:      c.AreaCode,
		StateCode:     c.StateCode,
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}
