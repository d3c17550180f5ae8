package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/apperrors"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/services"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/dto"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/middleware"

	portssvc "github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/ports/services"
)

// paymentHandler handles HTTP requests for payment methods and conditions.
type paymentHandler struct {
	methodService    portssvc.PaymentMethodSvcFacade
	conditionService portssvc.PaymentConditionSvcFacade
}

func newPaymentHandler(ms portssvc.PaymentMethodSvcFacade, cs portssvc.PaymentConditionSvcFacade) *paymentHandler {
	return &paymentHandler{
		methodService:    ms,
		conditionService: cs,
	}
}

// registerPaymentRoutes registers routes for payment methods and conditions.
func registerPaymentRoutes(rg *gin.RouterGroup, ms portssvc.PaymentMethodSvcFacade, cs portssvc.PaymentConditionSvcFacade) {
	h := newPaymentHandler(ms, cs)

	methods := rg.Group("/payment-methods")
	{
		methods.POST("", h.createPaymentMethod)
		methods.GET("", h.listPaymentMethods)
		methods.GET("/:code", h.getPaymentMethod)
		methods.PUT("/:code", h.updatePaymentMethod)
		methods.DELETE("/:code", h.deletePaymentMethod)
	}

	conditions := rg.Group("/payment-conditions")
	{
		conditions.POST("", h.createPaymentCondition)
		conditions.GET("", h.listPaymentConditions)
		conditions.GET("/:code", h.getPaymentCondition)
		conditions.PUT("/:code", h.updatePaymentCondition)
		conditions.DELETE("/:code", h.deletePaymentCondition)
	}
}

// respondPaymentError maps service errors onto HTTP statuses shared by the
// payment endpoints. Condition authoring errors surface as 400s.
func respondPaymentError(c *gin.Context, logger *slog.Logger, err error, entity string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: entity + " not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrPercentagesNotHundred),
		errors.Is(err, services.ErrDuplicateInstallmentNumber),
		errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		logger.Error("Payment request failed in service", slog.String("entity", entity), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Request failed"})
	}
}

// createPaymentMethod godoc
// @Summary Create a payment method
// @Tags payments
// @Accept json
// @Produce json
// @Param method body dto.PaymentMethodRequest true "Payment method details"
// @Success 201 {object} dto.PaymentMethodResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /payment-methods [post]
func (h *paymentHandler) createPaymentMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	method, err := h.methodService.CreatePaymentMethod(c.Request.Context(), req, userID)
	if err != nil {
		respondPaymentError(c, logger, err, "Payment method")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPaymentMethodResponse(method))
}

// getPaymentMethod godoc
// @Summary Get a payment method by code
// @Tags payments
// @Produce json
// @Param code path int true "Payment method code"
// @Success 200 {object} dto.PaymentMethodResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payment-methods/{code} [get]
func (h *paymentHandler) getPaymentMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code, ok := parseCodeParam(c)
	if !ok {
		return
	}
	method, err := h.methodService.GetPaymentMethodByCode(c.Request.Context(), code)
	if err != nil {
		respondPaymentError(c, logger, err, "Payment method")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentMethodResponse(method))
}

// listPaymentMethods godoc
// @Summary List payment methods
// @Tags payments
// @Produce json
// @Success 200 {array} dto.PaymentMethodResponse
// @Security BearerAuth
// @Router /payment-methods [get]
func (h *paymentHandler) listPaymentMethods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	methods, err := h.methodService.ListPaymentMethods(c.Request.Context())
	if err != nil {
		respondPaymentError(c, logger, err, "Payment method")
		return
	}
	resp := make([]dto.PaymentMethodResponse, len(methods))
	for i := range methods {
		resp[i] = dto.ToPaymentMethodResponse(&methods[i])
	}
	c.JSON(http.StatusOK, resp)
}

// updatePaymentMethod godoc
// @Summary Update a payment method
// @Tags payments
// @Accept json
// @Produce json
// @Param code path int true "Payment method code"
// @Param method body dto.PaymentMethodRequest true "Payment method details"
// @Success 200 {object} dto.PaymentMethodResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payment-methods/{code} [put]
func (h *paymentHandler) updatePaymentMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code, ok := parseCodeParam(c)
	if !ok {
		return
	}
	var req dto.PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	method, err := h.methodService.UpdatePaymentMethod(c.Request.Context(), code, req, userID)
	if err != nil {
		respondPaymentError(c, logger, err, "Payment method")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentMethodResponse(method))
}

// deletePaymentMethod godoc
// @Summary Delete a payment method
// @Description Fails with 409 while any condition, document or installment references the method.
// @Tags payments
// @Produce json
// @Param code path int true "Payment method code"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /payment-methods/{code} [delete]
func (h *paymentHandler) deletePaymentMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code, ok := parseCodeParam(c)
	if !ok {
		return
	}
	if err := h.methodService.DeletePaymentMethod(c.Request.Context(), code); err != nil {
		respondPaymentError(c, logger, err, "Payment method")
		return
	}
	c.Status(http.StatusNoContent)
}

// createPaymentCondition godoc
// @Summary Create a payment condition
// @Description Creates a payment condition template. Installment percentages must sum to exactly 100.
// @Tags payments
// @Accept json
// @Produce json
// @Param condition body dto.PaymentConditionRequest true "Payment condition details"
// @Success 201 {object} dto.PaymentConditionResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /payment-conditions [post]
func (h *paymentHandler) createPaymentCondition(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PaymentConditionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	condition, err := h.conditionService.CreatePaymentCondition(c.Request.Context(), req, userID)
	if err != nil {
		respondPaymentError(c, logger, err, "Payment condition")
		return
	}
	logger.Info("Payment condition created successfully", slog.Int64("condition_code", condition.Code))
	c.JSON(http.StatusCreated, dto.ToPaymentConditionResponse(condition))
}

// getPaymentCondition godoc
// @Summary Get a payment condition by code
// @Tags payments
// @Produce json
// @Param code path int true "Payment condition code"
// @Success 200 {object} dto.PaymentConditionResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payment-conditions/{code} [get]
func (h *paymentHandler) getPaymentCondition(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code, ok := parseCodeParam(c)
	if !ok {
		return
	}
	condition, err := h.conditionService.GetPaymentConditionByCode(c.Request.Context(), code)
	if err != nil {
		respondPaymentError(c, logger, err, "Payment condition")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentConditionResponse(condition))
}

// listPaymentConditions godoc
// @Summary List payment conditions
// @Tags payments
// @Produce json
// @Success 200 {array} dto.PaymentConditionResponse
// @Security BearerAuth
// @Router /payment-conditions [get]
func (h *paymentHandler) listPaymentConditions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	conditions, err := h.conditionService.ListPaymentConditions(c.Request.Context())
	if err != nil {
		respondPaymentError(c, logger, err, "Payment condition")
		return
	}
	resp := make([]dto.PaymentConditionResponse, len(conditions))
	for i := range conditions {
		resp[i] = dto.ToPaymentConditionResponse(&conditions[i])
	}
	c.JSON(http.StatusOK, resp)
}

// updatePaymentCondition godoc
// @Summary Update a payment condition
// @Description Replaces the condition's installment definitions wholesale. Percentages must sum to exactly 100.
// @Tags payments
// @Accept json
// @Produce json
// @Param code path int true "Payment condition code"
// @Param condition body dto.PaymentConditionRequest true "Payment condition details"
// @Success 200 {object} dto.PaymentConditionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payment-conditions/{code} [put]
func (h *paymentHandler) updatePaymentCondition(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code, ok := parseCodeParam(c)
	if !ok {
		return
	}
	var req dto.PaymentConditionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	condition, err := h.conditionService.UpdatePaymentCondition(c.Request.Context(), code, req, userID)
	if err != nil {
		respondPaymentError(c, logger, err, "Payment condition")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentConditionResponse(condition))
}

// deletePaymentCondition godoc
// @Summary Delete a payment condition
// @Description Fails with 409 while any document still references the condition.
// @Tags payments
// @Produce json
// @Param code path int true "Payment condition code"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /payment-conditions/{code} [delete]
func (h *paymentHandler) deletePaymentCondition(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code, ok := parseCodeParam(c)
	if !ok {
		return
	}
	if err := h.conditionService.DeletePaymentCondition(c.Request.Context(), code); err != nil {
		respondPaymentError(c, logger, err, "Payment condition")
		return
	}
	c.Status(http.StatusNoContent)
}
