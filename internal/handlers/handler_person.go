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

// personHandler handles HTTP requests for person records (clients, suppliers,
// employees, carriers).
type personHandler struct {
	personService portssvc.PersonSvcFacade
}

func newPersonHandler(ps portssvc.PersonSvcFacade) *personHandler {
	return &personHandler{personService: ps}
}

// registerPersonRoutes registers routes related to person records.
func registerPersonRoutes(rg *gin.RouterGroup, personService portssvc.PersonSvcFacade) {
	h := newPersonHandler(personService)

	persons := rg.Group("/persons")
	{
		persons.POST("", h.createPerson)
		persons.GET("", h.listPersons)
		persons.GET("/by-tax-id/:taxID", h.getPersonByTaxID)
		persons.GET("/:code", h.getPersonByCode)
		persons.PUT("/:code", h.updatePerson)
		persons.DELETE("/:code", h.deactivatePerson)
	}
}

// parseCodeParam reads a numeric :code path parameter.
func parseCodeParam(c *gin.Context) (int64, bool) {
	code, err := strconv.ParseInt(c.Param("code"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid code parameter"})
		return 0, false
	}
	return code, true
}

// createPerson godoc
// @Summary Register a person
// @Description Registers a person in any combination of roles (client, supplier, employee, carrier). The tax ID check digits are validated.
// @Tags persons
// @Accept json
// @Produce json
// @Param person body dto.CreatePersonRequest true "Person details"
// @Success 201 {object} dto.PersonResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /persons [post]
func (h *personHandler) createPerson(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePerson", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	person, err := h.personService.CreatePerson(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to create duplicate person", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating person", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create person in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create person"})
		}
		return
	}

	logger.Info("Person created successfully", slog.Int64("person_code", person.Code))
	c.JSON(http.StatusCreated, dto.ToPersonResponse(person))
}

// getPersonByCode godoc
// @Summary Get a person by code
// @Tags persons
// @Produce json
// @Param code path int true "Person code"
// @Success 200 {object} dto.PersonResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /persons/{code} [get]
func (h *personHandler) getPersonByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code, ok := parseCodeParam(c)
	if !ok {
		return
	}

	person, err := h.personService.GetPersonByCode(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Person not found"})
		} else {
			logger.Error("Failed to get person from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve person"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToPersonResponse(person))
}

// getPersonByTaxID godoc
// @Summary Get a person by CPF/CNPJ
// @Description Looks a person up by tax ID, accepting formatted or bare digits.
// @Tags persons
// @Produce json
// @Param taxID path string true "CPF or CNPJ"
// @Success 200 {object} dto.PersonResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /persons/by-tax-id/{taxID} [get]
func (h *personHandler) getPersonByTaxID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	taxID := c.Param("taxID")

	person, err := h.personService.GetPersonByTaxID(c.Request.Context(), taxID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Person not found"})
		} else {
			logger.Error("Failed to get person by tax ID from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve person"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToPersonResponse(person))
}

// listPersons godoc
// @Summary List persons
// @Description Lists persons, optionally filtered by role (client, supplier, employee, carrier).
// @Tags persons
// @Produce json
// @Param role query string false "Role filter" Enums(client, supplier, employee, carrier)
// @Success 200 {array} dto.PersonResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /persons [get]
func (h *personHandler) listPersons(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	role := c.Query("role")

	persons, err := h.personService.ListPersons(c.Request.Context(), role)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to list persons from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list persons"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToPersonResponseSlice(persons))
}

// updatePerson godoc
// @Summary Update a person
// @Tags persons
// @Accept json
// @Produce json
// @Param code path int true "Person code"
// @Param person body dto.UpdatePersonRequest true "Person details"
// @Success 200 {object} dto.PersonResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /persons/{code} [put]
func (h *personHandler) updatePerson(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code, ok := parseCodeParam(c)
	if !ok {
		return
	}

	var req dto.UpdatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePerson", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	person, err := h.personService.UpdatePerson(c.Request.Context(), code, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Person not found"})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to update person in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update person"})
		}
		return
	}

	logger.Info("Person updated successfully", slog.Int64("person_code", code))
	c.JSON(http.StatusOK, dto.ToPersonResponse(person))
}

// deactivatePerson godoc
// @Summary Deactivate a person
// @Description Soft-deletes a person. Deactivating an already inactive person returns 409.
// @Tags persons
// @Produce json
// @Param code path int true "Person code"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /persons/{code} [delete]
func (h *personHandler) deactivatePerson(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code, ok := parseCodeParam(c)
	if !ok {
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.personService.DeactivatePerson(c.Request.Context(), code, updaterUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Person not found"})
		} else if errors.Is(err, apperrors.ErrAlreadyInState) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Person is already inactive"})
		} else {
			logger.Error("Failed to deactivate person in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to deactivate person"})
		}
		return
	}

	logger.Info("Person deactivated successfully", slog.Int64("person_code", code))
	c.Status(http.StatusNoContent)
}
