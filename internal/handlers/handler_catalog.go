package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/apperrors"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/services"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/dto"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/middleware"

	portssvc "github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/ports/services"
)

// catalogHandler handles HTTP requests for units, products and vehicles.
type catalogHandler struct {
	unitService    portssvc.UnitSvcFacade
	productService portssvc.ProductSvcFacade
	vehicleService portssvc.VehicleSvcFacade
}

func newCatalogHandler(us portssvc.UnitSvcFacade, ps portssvc.ProductSvcFacade, vs portssvc.VehicleSvcFacade) *catalogHandler {
	return &catalogHandler{
		unitService:    us,
		productService: ps,
		vehicleService: vs,
	}
}

// registerCatalogRoutes registers routes for units, products and vehicles.
func registerCatalogRoutes(rg *gin.RouterGroup, us portssvc.UnitSvcFacade, ps portssvc.ProductSvcFacade, vs portssvc.VehicleSvcFacade) {
	h := newCatalogHandler(us, ps, vs)

	units := rg.Group("/units")
	{
		units.POST("", h.createUnit)
		units.GET("", h.listUnits)
		units.GET("/:code", h.getUnit)
		units.PUT("/:code", h.updateUnit)
		units.DELETE("/:code", h.deleteUnit)
	}

	products := rg.Group("/products")
	{
		products.POST("", h.createProduct)
		products.GET("", h.listProducts)
		products.GET("/:code", h.getProduct)
		products.PUT("/:code", h.updateProduct)
		products.DELETE("/:code", h.deleteProduct)
	}

	vehicles := rg.Group("/vehicles")
	{
		vehicles.POST("", h.createVehicle)
		vehicles.GET("", h.listVehicles)
		vehicles.GET("/:plate", h.getVehicle)
		vehicles.PUT("/:plate", h.updateVehicle)
		vehicles.DELETE("/:plate", h.deleteVehicle)
	}
}

// respondCatalogError maps service errors onto HTTP statuses shared by the
// catalog endpoints.
func respondCatalogError(c *gin.Context, logger *slog.Logger, err error, entity string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: entity + " not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrPersonRoleMismatch):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		logger.Error("Catalog request failed in service", slog.String("entity", entity), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Request failed"})
	}
}

// createUnit godoc
// @Summary Create a unit of measure
// @Tags catalog
// @Accept json
// @Produce json
// @Param unit body dto.UnitRequest true "Unit details"
// @Success 201 {object} dto.UnitResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /units [post]
func (h *catalogHandler) createUnit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	unit, err := h.unitService.CreateUnit(c.Request.Context(), req, userID)
	if err != nil {
		respondCatalogError(c, logger, err, "Unit")
		return
	}
	c.JSON(http.StatusCreated, dto.ToUnitResponse(unit))
}

// getUnit godoc
// @Summary Get a unit by code
// @Tags catalog
// @Produce json
// @Param code path int true "Unit code"
// @Success 200 {object} dto.UnitResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /units/{code} [get]
func (h *catalogHandler) getUnit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code, ok := parseCodeParam(c)
	if !ok {
		return
	}
	unit, err := h.unitService.GetUnitByCode(c.Request.Context(), code)
	if err != nil {
		respondCatalogError(c, logger, err, "Unit")
		return
	}
	c.JSON(http.StatusOK, dto.ToUnitResponse(unit))
}

// listUnits godoc
// @Summary List units of measure
// @Tags catalog
// @Produce json
// @Success 200 {array} dto.UnitResponse
// @Security BearerAuth
// @Router /units [get]
func (h *catalogHandler) listUnits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	units, err := h.unitService.ListUnits(c.Request.Context())
	if err != nil {
		respondCatalogError(c, logger, err, "Unit")
		return
	}
	resp := make([]dto.UnitResponse, len(units))
	for i := range units {
		resp[i] = dto.ToUnitResponse(&units[i])
	}
	c.JSON(http.StatusOK, resp)
}

// updateUnit godoc
// @Summary Update a unit of measure
// @Tags catalog
// @Accept json
// @Produce json
// @Param code path int true "Unit code"
// @Param unit body dto.UnitRequest true "Unit details"
// @Success 200 {object} dto.UnitResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /units/{code} [put]
func (h *catalogHandler) updateUnit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code, ok := parseCodeParam(c)
	if !ok {
		return
	}
	var req dto.UnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	unit, err := h.unitService.UpdateUnit(c.Request.Context(), code, req, userID)
	if err != nil {
		respondCatalogError(c, logger, err, "Unit")
		return
	}
	c.JSON(http.StatusOK, dto.ToUnitResponse(unit))
}

// deleteUnit godoc
// @Summary Delete a unit of measure
// @Description Fails with 409 while any product still references the unit.
// @Tags catalog
// @Produce json
// @Param code path int true "Unit code"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /units/{code} [delete]
func (h *catalogHandler) deleteUnit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code, ok := parseCodeParam(c)
	if !ok {
		return
	}
	if err := h.unitService.DeleteUnit(c.Request.Context(), code); err != nil {
		respondCatalogError(c, logger, err, "Unit")
		return
	}
	c.Status(http.StatusNoContent)
}

// createProduct godoc
// @Summary Create a product
// @Tags catalog
// @Accept json
// @Produce json
// @Param product body dto.ProductRequest true "Product details"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /products [post]
func (h *catalogHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), req, userID)
	if err != nil {
		respondCatalogError(c, logger, err, "Product")
		return
	}
	logger.Info("Product created successfully", slog.Int64("product_code", product.Code))
	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

// getProduct godoc
// @Summary Get a product by code
// @Tags catalog
// @Produce json
// @Param code path int true "Product code"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{code} [get]
func (h *catalogHandler) getProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code, ok := parseCodeParam(c)
	if !ok {
		return
	}
	product, err := h.productService.GetProductByCode(c.Request.Context(), code)
	if err != nil {
		respondCatalogError(c, logger, err, "Product")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// listProducts godoc
// @Summary List products
// @Tags catalog
// @Produce json
// @Success 200 {array} dto.ProductResponse
// @Security BearerAuth
// @Router /products [get]
func (h *catalogHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	products, err := h.productService.ListProducts(c.Request.Context())
	if err != nil {
		respondCatalogError(c, logger, err, "Product")
		return
	}
	resp := make([]dto.ProductResponse, len(products))
	for i := range products {
		resp[i] = dto.ToProductResponse(&products[i])
	}
	c.JSON(http.StatusOK, resp)
}

// updateProduct godoc
// @Summary Update a product
// @Tags catalog
// @Accept json
// @Produce json
// @Param code path int true "Product code"
// @Param product body dto.ProductRequest true "Product details"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{code} [put]
func (h *catalogHandler) updateProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code, ok := parseCodeParam(c)
	if !ok {
		return
	}
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), code, req, userID)
	if err != nil {
		respondCatalogError(c, logger, err, "Product")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// deleteProduct godoc
// @Summary Delete a product
// @Description Fails with 409 while any document line still references the product.
// @Tags catalog
// @Produce json
// @Param code path int true "Product code"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{code} [delete]
func (h *catalogHandler) deleteProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code, ok := parseCodeParam(c)
	if !ok {
		return
	}
	if err := h.productService.DeleteProduct(c.Request.Context(), code); err != nil {
		respondCatalogError(c, logger, err, "Product")
		return
	}
	c.Status(http.StatusNoContent)
}

// plateParam normalizes the :plate path parameter.
func plateParam(c *gin.Context) string {
	return strings.ToUpper(strings.TrimSpace(c.Param("plate")))
}

// createVehicle godoc
// @Summary Register a vehicle
// @Description Registers a vehicle owned by a carrier person.
// @Tags catalog
// @Accept json
// @Produce json
// @Param vehicle body dto.VehicleRequest true "Vehicle details"
// @Success 201 {object} dto.VehicleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /vehicles [post]
func (h *catalogHandler) createVehicle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	vehicle, err := h.vehicleService.CreateVehicle(c.Request.Context(), req, userID)
	if err != nil {
		respondCatalogError(c, logger, err, "Vehicle")
		return
	}
	logger.Info("Vehicle created successfully", slog.String("plate", vehicle.Plate))
	c.JSON(http.StatusCreated, dto.ToVehicleResponse(vehicle))
}

// getVehicle godoc
// @Summary Get a vehicle by plate
// @Tags catalog
// @Produce json
// @Param plate path string true "Vehicle plate"
// @Success 200 {object} dto.VehicleResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /vehicles/{plate} [get]
func (h *catalogHandler) getVehicle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vehicle, err := h.vehicleService.GetVehicleByPlate(c.Request.Context(), plateParam(c))
	if err != nil {
		respondCatalogError(c, logger, err, "Vehicle")
		return
	}
	c.JSON(http.StatusOK, dto.ToVehicleResponse(vehicle))
}

// listVehicles godoc
// @Summary List vehicles
// @Tags catalog
// @Produce json
// @Param carrierCode query int false "Filter by carrier"
// @Success 200 {array} dto.VehicleResponse
// @Security BearerAuth
// @Router /vehicles [get]
func (h *catalogHandler) listVehicles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	carrierCode, _ := strconv.ParseInt(c.Query("carrierCode"), 10, 64)

	vehicles, err := h.vehicleService.ListVehicles(c.Request.Context(), carrierCode)
	if err != nil {
		respondCatalogError(c, logger, err, "Vehicle")
		return
	}
	resp := make([]dto.VehicleResponse, len(vehicles))
	for i := range vehicles {
		resp[i] = dto.ToVehicleResponse(&vehicles[i])
	}
	c.JSON(http.StatusOK, resp)
}

// updateVehicle godoc
// @Summary Update a vehicle
// @Tags catalog
// @Accept json
// @Produce json
// @Param plate path string true "Vehicle plate"
// @Param vehicle body dto.VehicleRequest true "Vehicle details"
// @Success 200 {object} dto.VehicleResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /vehicles/{plate} [put]
func (h *catalogHandler) updateVehicle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	vehicle, err := h.vehicleService.UpdateVehicle(c.Request.Context(), plateParam(c), req, userID)
	if err != nil {
		respondCatalogError(c, logger, err, "Vehicle")
		return
	}
	c.JSON(http.StatusOK, dto.ToVehicleResponse(vehicle))
}

// deleteVehicle godoc
// @Summary Delete a vehicle
// @Tags catalog
// @Produce json
// @Param plate path string true "Vehicle plate"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /vehicles/{plate} [delete]
func (h *catalogHandler) deleteVehicle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.vehicleService.DeleteVehicle(c.Request.Context(), plateParam(c)); err != nil {
		respondCatalogError(c, logger, err, "Vehicle")
		return
	}
	c.Status(http.StatusNoContent)
}
