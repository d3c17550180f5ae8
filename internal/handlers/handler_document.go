package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/apperrors"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/domain"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/services"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/dto"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/middleware"

	portssvc "github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/ports/services"
)

const defaultDocumentPageSize = 50

// documentHandler handles HTTP requests for fiscal document issuance.
type documentHandler struct {
	documentService portssvc.DocumentSvcFacade
}

func newDocumentHandler(ds portssvc.DocumentSvcFacade) *documentHandler {
	return &documentHandler{documentService: ds}
}

// RegisterDocumentRoutes registers routes for fiscal documents.
func RegisterDocumentRoutes(rg *gin.RouterGroup, documentService portssvc.DocumentSvcFacade) {
	h := newDocumentHandler(documentService)

	documents := rg.Group("/documents")
	{
		documents.POST("", h.issueDocument)
		documents.GET("", h.listDocuments)
		documents.GET("/:model/:series/:number/:type", h.getDocument)
		documents.PUT("/:model/:series/:number/:type", h.updateDocument)
		documents.DELETE("/:model/:series/:number/:type", h.deleteDocument)
	}
}

// parseDocumentKey reads the composite document key from the path.
func parseDocumentKey(c *gin.Context) (domain.DocumentKey, bool) {
	model, errM := strconv.Atoi(c.Param("model"))
	series, errS := strconv.Atoi(c.Param("series"))
	number, errN := strconv.Atoi(c.Param("number"))
	docType := c.Param("type")
	if errM != nil || errS != nil || errN != nil || (docType != string(domain.Outgoing) && docType != string(domain.Incoming)) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid document key: expected model/series/number/type with type S or E"})
		return domain.DocumentKey{}, false
	}
	return domain.DocumentKey{
		Model:  model,
		Series: series,
		Number: number,
		Type:   domain.DocumentType(docType),
	}, true
}

// respondDocumentError maps service errors onto HTTP statuses for the
// document endpoints.
func respondDocumentError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Document not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrPersonRoleMismatch),
		errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		logger.Error("Document request failed in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Request failed"})
	}
}

// issueDocument godoc
// @Summary Issue a fiscal document
// @Description Issues a document with its lines and generates receivable (type S) or payable (type E) installments from the payment condition, all atomically.
// @Tags documents
// @Accept json
// @Produce json
// @Param document body dto.IssueDocumentRequest true "Document details"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents [post]
func (h *documentHandler) issueDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.IssueDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for IssueDocument", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	doc, err := h.documentService.IssueDocument(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Warn("Document issuance failed", slog.String("error", err.Error()))
		respondDocumentError(c, logger, err)
		return
	}

	logger.Info("Document issued successfully", slog.String("document_key", doc.Key.String()))
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(doc))
}

// getDocument godoc
// @Summary Get a fiscal document
// @Description Retrieves a document with its lines by composite key.
// @Tags documents
// @Produce json
// @Param model path int true "Document model"
// @Param series path int true "Document series"
// @Param number path int true "Document number"
// @Param type path string true "Document type" Enums(S, E)
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/{model}/{series}/{number}/{type} [get]
func (h *documentHandler) getDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	key, ok := parseDocumentKey(c)
	if !ok {
		return
	}

	doc, err := h.documentService.GetDocumentByKey(c.Request.Context(), key)
	if err != nil {
		respondDocumentError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// listDocuments godoc
// @Summary List fiscal documents
// @Description Lists documents newest emission first. Pass the returned nextToken to fetch the following page.
// @Tags documents
// @Produce json
// @Param type query string false "Document type filter" Enums(S, E)
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Opaque page cursor"
// @Success 200 {object} dto.ListDocumentsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents [get]
func (h *documentHandler) listDocuments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var docType *domain.DocumentType
	if t := c.Query("type"); t != "" {
		if t != string(domain.Outgoing) && t != string(domain.Incoming) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid type filter: expected S or E"})
			return
		}
		dt := domain.DocumentType(t)
		docType = &dt
	}

	limit := defaultDocumentPageSize
	if l := c.Query("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid limit parameter"})
			return
		}
		limit = parsed
	}

	var nextToken *string
	if t := c.Query("nextToken"); t != "" {
		nextToken = &t
	}

	docs, token, err := h.documentService.ListDocuments(c.Request.Context(), docType, limit, nextToken)
	if err != nil {
		respondDocumentError(c, logger, err)
		return
	}

	resp := dto.ListDocumentsResponse{
		Documents: make([]dto.DocumentResponse, len(docs)),
		NextToken: token,
	}
	for i := range docs {
		resp.Documents[i] = dto.ToDocumentResponse(&docs[i])
	}
	c.JSON(http.StatusOK, resp)
}

// updateDocument godoc
// @Summary Update a fiscal document
// @Description Updates the header and replaces the line set wholesale. Generated installments are not touched.
// @Tags documents
// @Accept json
// @Produce json
// @Param model path int true "Document model"
// @Param series path int true "Document series"
// @Param number path int true "Document number"
// @Param type path string true "Document type" Enums(S, E)
// @Param document body dto.UpdateDocumentRequest true "Document details"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/{model}/{series}/{number}/{type} [put]
func (h *documentHandler) updateDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	key, ok := parseDocumentKey(c)
	if !ok {
		return
	}

	var req dto.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateDocument", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	doc, err := h.documentService.UpdateDocument(c.Request.Context(), key, req, updaterUserID)
	if err != nil {
		respondDocumentError(c, logger, err)
		return
	}

	logger.Info("Document updated successfully", slog.String("document_key", key.String()))
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// deleteDocument godoc
// @Summary Delete a fiscal document
// @Description Removes the document together with its lines and installments.
// @Tags documents
// @Produce json
// @Param model path int true "Document model"
// @Param series path int true "Document series"
// @Param number path int true "Document number"
// @Param type path string true "Document type" Enums(S, E)
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/{model}/{series}/{number}/{type} [delete]
func (h *documentHandler) deleteDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	key, ok := parseDocumentKey(c)
	if !ok {
		return
	}

	if err := h.documentService.DeleteDocument(c.Request.Context(), key); err != nil {
		respondDocumentError(c, logger, err)
		return
	}

	logger.Info("Document deleted successfully", slog.String("document_key", key.String()))
	c.Status(http.StatusNoContent)
}
