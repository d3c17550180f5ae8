package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/apperrors"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/domain"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/dto"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/middleware"

	portssvc "github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/ports/services"
)

// installmentHandler handles HTTP requests for receivables and payables.
type installmentHandler struct {
	installmentService portssvc.InstallmentSvcFacade
	direction          domain.InstallmentDirection
}

// registerInstallmentRoutes registers the /receivables and /payables route
// groups. Both share installment semantics and differ only in direction.
func registerInstallmentRoutes(rg *gin.RouterGroup, installmentService portssvc.InstallmentSvcFacade) {
	for path, direction := range map[string]domain.InstallmentDirection{
		"/receivables": domain.Receivable,
		"/payables":    domain.Payable,
	} {
		h := &installmentHandler{installmentService: installmentService, direction: direction}
		group := rg.Group(path)
		{
			group.GET("", h.listInstallments)
			group.GET("/:model/:series/:number/:type/:installment", h.getInstallment)
			group.POST("/:model/:series/:number/:type/:installment/settle", h.settleInstallment)
		}
	}
}

// parseInstallmentKey reads the document key and installment number from the path.
func parseInstallmentKey(c *gin.Context) (domain.DocumentKey, int, bool) {
	key, ok := parseDocumentKey(c)
	if !ok {
		return domain.DocumentKey{}, 0, false
	}
	number, err := strconv.Atoi(c.Param("installment"))
	if err != nil || number < 1 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid installment number"})
		return domain.DocumentKey{}, 0, false
	}
	return key, number, true
}

// listInstallments godoc
// @Summary List installments
// @Description Lists receivables or payables, optionally scoped to one document (model/series/number/type query params) and/or to open ones only.
// @Tags installments
// @Produce json
// @Param model query int false "Document model"
// @Param series query int false "Document series"
// @Param number query int false "Document number"
// @Param type query string false "Document type" Enums(S, E)
// @Param openOnly query bool false "Only unsettled installments"
// @Success 200 {array} dto.InstallmentResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /receivables [get]
func (h *installmentHandler) listInstallments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var key *domain.DocumentKey
	if c.Query("model") != "" || c.Query("series") != "" || c.Query("number") != "" || c.Query("type") != "" {
		model, errM := strconv.Atoi(c.Query("model"))
		series, errS := strconv.Atoi(c.Query("series"))
		number, errN := strconv.Atoi(c.Query("number"))
		docType := c.Query("type")
		if errM != nil || errS != nil || errN != nil || (docType != string(domain.Outgoing) && docType != string(domain.Incoming)) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Document filter requires model, series, number and type (S or E)"})
			return
		}
		key = &domain.DocumentKey{
			Model:  model,
			Series: series,
			Number: number,
			Type:   domain.DocumentType(docType),
		}
	}
	openOnly := c.Query("openOnly") == "true"

	installments, err := h.installmentService.ListInstallments(c.Request.Context(), h.direction, key, openOnly)
	if err != nil {
		logger.Error("Failed to list installments from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list installments"})
		return
	}
	c.JSON(http.StatusOK, dto.ToInstallmentResponseSlice(installments))
}

// getInstallment godoc
// @Summary Get one installment
// @Tags installments
// @Produce json
// @Param model path int true "Document model"
// @Param series path int true "Document series"
// @Param number path int true "Document number"
// @Param type path string true "Document type" Enums(S, E)
// @Param installment path int true "Installment number"
// @Success 200 {object} dto.InstallmentResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /receivables/{model}/{series}/{number}/{type}/{installment} [get]
func (h *installmentHandler) getInstallment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	key, number, ok := parseInstallmentKey(c)
	if !ok {
		return
	}

	installment, err := h.installmentService.GetInstallment(c.Request.Context(), h.direction, key, number)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Installment not found"})
		} else {
			logger.Error("Failed to get installment from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve installment"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToInstallmentResponse(installment))
}

// settleInstallment godoc
// @Summary Settle an installment
// @Description Records the payment of one installment. Settling an already settled installment returns 409.
// @Tags installments
// @Accept json
// @Produce json
// @Param model path int true "Document model"
// @Param series path int true "Document series"
// @Param number path int true "Document number"
// @Param type path string true "Document type" Enums(S, E)
// @Param installment path int true "Installment number"
// @Param settlement body dto.SettleInstallmentRequest true "Settlement details"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /receivables/{model}/{series}/{number}/{type}/{installment}/settle [post]
func (h *installmentHandler) settleInstallment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	key, number, ok := parseInstallmentKey(c)
	if !ok {
		return
	}

	var req dto.SettleInstallmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	err := h.installmentService.SettleInstallment(c.Request.Context(), h.direction, key, number, req, updaterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Installment not found"})
		case errors.Is(err, apperrors.ErrAlreadyInState):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Installment is already settled"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to settle installment in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to settle installment"})
		}
		return
	}

	logger.Info("Installment settled successfully",
		slog.String("document_key", key.String()),
		slog.Int("installment", number),
		slog.String("direction", string(h.direction)))
	c.Status(http.StatusNoContent)
}
