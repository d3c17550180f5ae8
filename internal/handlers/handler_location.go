package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/apperrors"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/dto"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/middleware"

	portssvc "github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/ports/services"
)

// locationHandler handles HTTP requests for the country/state/city hierarchy.
type locationHandler struct {
	countryService portssvc.CountrySvcFacade
	stateService   portssvc.StateSvcFacade
	cityService    portssvc.CitySvcFacade
}

func newLocationHandler(cs portssvc.CountrySvcFacade, ss portssvc.StateSvcFacade, cis portssvc.CitySvcFacade) *locationHandler {
	return &locationHandler{
		countryService: cs,
		stateService:   ss,
		cityService:    cis,
	}
}

// registerLocationRoutes registers routes for countries, states and cities.
func registerLocationRoutes(rg *gin.RouterGroup, cs portssvc.CountrySvcFacade, ss portssvc.StateSvcFacade, cis portssvc.CitySvcFacade) {
	h := newLocationHandler(cs, ss, cis)

	countries := rg.Group("/countries")
	{
		countries.POST("", h.createCountry)
		countries.GET("", h.listCountries)
		countries.GET("/:code", h.getCountry)
		countries.PUT("/:code", h.updateCountry)
		countries.DELETE("/:code", h.deleteCountry)
	}

	states := rg.Group("/states")
	{
		states.POST("", h.createState)
		states.GET("", h.listStates)
		states.GET("/:code", h.getState)
		states.PUT("/:code", h.updateState)
		states.DELETE("/:code", h.deleteState)
	}

	cities := rg.Group("/cities")
	{
		cities.POST("", h.createCity)
		cities.GET("", h.listCities)
		cities.GET("/:code", h.getCity)
		cities.PUT("/:code", h.updateCity)
		cities.DELETE("/:code", h.deleteCity)
	}
}

// respondLocationError maps service errors onto HTTP statuses shared by all
// location endpoints.
func respondLocationError(c *gin.Context, logger *slog.Logger, err error, entity string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: entity + " not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		logger.Error("Location request failed in service", slog.String("entity", entity), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Request failed"})
	}
}

// createCountry godoc
// @Summary Create a country
// @Tags locations
// @Accept json
// @Produce json
// @Param country body dto.CountryRequest true "Country details"
// @Success 201 {object} dto.CountryResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /countries [post]
func (h *locationHandler) createCountry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	country, err := h.countryService.CreateCountry(c.Request.Context(), req, userID)
	if err != nil {
		respondLocationError(c, logger, err, "Country")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCountryResponse(country))
}

// getCountry godoc
// @Summary Get a country by code
// @Tags locations
// @Produce json
// @Param code path int true "Country code"
// @Success 200 {object} dto.CountryResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /countries/{code} [get]
func (h *locationHandler) getCountry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code, ok := parseCodeParam(c)
	if !ok {
		return
	}
	country, err := h.countryService.GetCountryByCode(c.Request.Context(), code)
	if err != nil {
		respondLocationError(c, logger, err, "Country")
		return
	}
	c.JSON(http.StatusOK, dto.ToCountryResponse(country))
}

// listCountries godoc
// @Summary List countries
// @Tags locations
// @Produce json
// @Success 200 {array} dto.CountryResponse
// @Security BearerAuth
// @Router /countries [get]
func (h *locationHandler) listCountries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	countries, err := h.countryService.ListCountries(c.Request.Context())
	if err != nil {
		respondLocationError(c, logger, err, "Country")
		return
	}
	resp := make([]dto.CountryResponse, len(countries))
	for i := range countries {
		resp[i] = dto.ToCountryResponse(&countries[i])
	}
	c.JSON(http.StatusOK, resp)
}

// updateCountry godoc
// @Summary Update a country
// @Tags locations
// @Accept json
// @Produce json
// @Param code path int true "Country code"
// @Param country body dto.CountryRequest true "Country details"
// @Success 200 {object} dto.CountryResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /countries/{code} [put]
func (h *locationHandler) updateCountry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code, ok := parseCodeParam(c)
	if !ok {
		return
	}
	var req dto.CountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	country, err := h.countryService.UpdateCountry(c.Request.Context(), code, req, userID)
	if err != nil {
		respondLocationError(c, logger, err, "Country")
		return
	}
	c.JSON(http.StatusOK, dto.ToCountryResponse(country))
}

// deleteCountry godoc
// @Summary Delete a country
// @Description Fails with 409 while any state still references the country.
// @Tags locations
// @Produce json
// @Param code path int true "Country code"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /countries/{code} [delete]
func (h *locationHandler) deleteCountry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code, ok := parseCodeParam(c)
	if !ok {
		return
	}
	if err := h.countryService.DeleteCountry(c.Request.Context(), code); err != nil {
		respondLocationError(c, logger, err, "Country")
		return
	}
	c.Status(http.StatusNoContent)
}

// createState godoc
// @Summary Create a state
// @Tags locations
// @Accept json
// @Produce json
// @Param state body dto.StateRequest true "State details"
// @Success 201 {object} dto.StateResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /states [post]
func (h *locationHandler) createState(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.StateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	state, err := h.stateService.CreateState(c.Request.Context(), req, userID)
	if err != nil {
		respondLocationError(c, logger, err, "State")
		return
	}
	c.JSON(http.StatusCreated, dto.ToStateResponse(state))
}

// getState godoc
// @Summary Get a state by code
// @Tags locations
// @Produce json
// @Param code path int true "State code"
// @Success 200 {object} dto.StateResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /states/{code} [get]
func (h *locationHandler) getState(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code, ok := parseCodeParam(c)
	if !ok {
		return
	}
	state, err := h.stateService.GetStateByCode(c.Request.Context(), code)
	if err != nil {
		respondLocationError(c, logger, err, "State")
		return
	}
	c.JSON(http.StatusOK, dto.ToStateResponse(state))
}

// listStates godoc
// @Summary List states
// @Tags locations
// @Produce json
// @Param countryCode query int false "Filter by country"
// @Success 200 {array} dto.StateResponse
// @Security BearerAuth
// @Router /states [get]
func (h *locationHandler) listStates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	countryCode, _ := strconv.ParseInt(c.Query("countryCode"), 10, 64)

	states, err := h.stateService.ListStates(c.Request.Context(), countryCode)
	if err != nil {
		respondLocationError(c, logger, err, "State")
		return
	}
	resp := make([]dto.StateResponse, len(states))
	for i := range states {
		resp[i] = dto.ToStateResponse(&states[i])
	}
	c.JSON(http.StatusOK, resp)
}

// updateState godoc
// @Summary Update a state
// @Tags locations
// @Accept json
// @Produce json
// @Param code path int true "State code"
// @Param state body dto.StateRequest true "State details"
// @Success 200 {object} dto.StateResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /states/{code} [put]
func (h *locationHandler) updateState(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code, ok := parseCodeParam(c)
	if !ok {
		return
	}
	var req dto.StateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	state, err := h.stateService.UpdateState(c.Request.Context(), code, req, userID)
	if err != nil {
		respondLocationError(c, logger, err, "State")
		return
	}
	c.JSON(http.StatusOK, dto.ToStateResponse(state))
}

// deleteState godoc
// @Summary Delete a state
// @Tags locations
// @Produce json
// @Param code path int true "State code"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /states/{code} [delete]
func (h *locationHandler) deleteState(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code, ok := parseCodeParam(c)
	if !ok {
		return
	}
	if err := h.stateService.DeleteState(c.Request.Context(), code); err != nil {
		respondLocationError(c, logger, err, "State")
		return
	}
	c.Status(http.StatusNoContent)
}

// createCity godoc
// @Summary Create a city
// @Tags locations
// @Accept json
// @Produce json
// @Param city body dto.CityRequest true "City details"
// @Success 201 {object} dto.CityResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /cities [post]
func (h *locationHandler) createCity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	city, err := h.cityService.CreateCity(c.Request.Context(), req, userID)
	if err != nil {
		respondLocationError(c, logger, err, "City")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCityResponse(city))
}

// getCity godoc
// @Summary Get a city by code
// @Tags locations
// @Produce json
// @Param code path int true "City code"
// @Success 200 {object} dto.CityResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /cities/{code} [get]
func (h *locationHandler) getCity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code, ok := parseCodeParam(c)
	if !ok {
		return
	}
	city, err := h.cityService.GetCityByCode(c.Request.Context(), code)
	if err != nil {
		respondLocationError(c, logger, err, "City")
		return
	}
	c.JSON(http.StatusOK, dto.ToCityResponse(city))
}

// listCities godoc
// @Summary List cities
// @Tags locations
// @Produce json
// @Param stateCode query int false "Filter by state"
// @Success 200 {array} dto.CityResponse
// @Security BearerAuth
// @Router /cities [get]
func (h *locationHandler) listCities(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	stateCode, _ := strconv.ParseInt(c.Query("stateCode"), 10, 64)

	cities, err := h.cityService.ListCities(c.Request.Context(), stateCode)
	if err != nil {
		respondLocationError(c, logger, err, "City")
		return
	}
	resp := make([]dto.CityResponse, len(cities))
	for i := range cities {
		resp[i] = dto.ToCityResponse(&cities[i])
	}
	c.JSON(http.StatusOK, resp)
}

// updateCity godoc
// @Summary Update a city
// @Tags locations
// @Accept json
// @Produce json
// @Param code path int true "City code"
// @Param city body dto.CityRequest true "City details"
// @Success 200 {object} dto.CityResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /cities/{code} [put]
func (h *locationHandler) updateCity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code, ok := parseCodeParam(c)
	if !ok {
		return
	}
	var req dto.CityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	city, err := h.cityService.UpdateCity(c.Request.Context(), code, req, userID)
	if err != nil {
		respondLocationError(c, logger, err, "City")
		return
	}
	c.JSON(http.StatusOK, dto.ToCityResponse(city))
}

// deleteCity godoc
// @Summary Delete a city
// @Tags locations
// @Produce json
// @Param code path int true "City code"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /cities/{code} [delete]
func (h *locationHandler) deleteCity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code, ok := parseCodeParam(c)
	if !ok {
		return
	}
	if err := h.cityService.DeleteCity(c.Request.Context(), code); err != nil {
		respondLocationError(c, logger, err, "City")
		return
	}
	c.Status(http.StatusNoContent)
}
