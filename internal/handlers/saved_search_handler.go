package handlers

import (
	"net/http"

	"mmex-search/internal/dto"
	"mmex-search/internal/errors"
	"mmex-search/internal/services"

	"github.com/labstack/echo/v4"
)

// SavedSearchHandler handles named search requests
type SavedSearchHandler struct {
	savedSearchService services.SavedSearchServiceInterface
}

// NewSavedSearchHandler creates a new saved search handler
func NewSavedSearchHandler(savedSearchService services.SavedSearchServiceInterface) *SavedSearchHandler {
	return &SavedSearchHandler{savedSearchService: savedSearchService}
}

// Create stores a named search
// @Summary Save a search
// @Tags Saved searches
// @Accept json
// @Produce json
// @Param request body dto.SavedSearchRequest true "Name and criteria"
// @Success 201 {object} SuccessResponse "Saved search"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 / SEARCH_001"
// @Failure 409 {object} errors.ErrorResponse "SEARCH_003 - Name already used"
// @Router /searches [post]
func (h *SavedSearchHandler) Create(c echo.Context) error {
	var req dto.SavedSearchRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	saved, err := h.savedSearchService.Create(c.Request().Context(), req)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{Data: saved})
}

// List returns every saved search ordered by name
// @Summary List saved searches
// @Tags Saved searches
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /searches [get]
func (h *SavedSearchHandler) List(c echo.Context) error {
	saved, err := h.savedSearchService.List(c.Request().Context())
	if err != nil {
		return sendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: saved})
}

// Get returns one saved search
// @Summary Get saved search
// @Tags Saved searches
// @Produce json
// @Param id path string true "Saved search ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} errors.ErrorResponse "SEARCH_002 - Not found"
// @Router /searches/{id} [get]
func (h *SavedSearchHandler) Get(c echo.Context) error {
	id, ok := getUUIDParam(c, "id")
	if !ok {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithField("id", "must be a valid UUID"))
	}

	saved, err := h.savedSearchService.Get(c.Request().Context(), id)
	if err != nil {
		return sendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: saved})
}

// Delete removes a saved search
// @Summary Delete saved search
// @Tags Saved searches
// @Param id path string true "Saved search ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse "SEARCH_002 - Not found"
// @Router /searches/{id} [delete]
func (h *SavedSearchHandler) Delete(c echo.Context) error {
	id, ok := getUUIDParam(c, "id")
	if !ok {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithField("id", "must be a valid UUID"))
	}

	if err := h.savedSearchService.Delete(c.Request().Context(), id); err != nil {
		return sendServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Results runs a saved search
// @Summary Run saved search
// @Tags Saved searches
// @Produce json
// @Param id path string true "Saved search ID"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Rows to skip" default(0)
// @Success 200 {object} SuccessResponse "Matching transactions"
// @Failure 404 {object} errors.ErrorResponse "SEARCH_002 - Not found"
// @Router /searches/{id}/results [get]
func (h *SavedSearchHandler) Results(c echo.Context) error {
	id, ok := getUUIDParam(c, "id")
	if !ok {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithField("id", "must be a valid UUID"))
	}

	result, err := h.savedSearchService.Run(c.Request().Context(), id,
		getIntParam(c, "offset", 0), getIntParam(c, "limit", 0))
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: result.Transactions,
		Meta: result.Pagination,
	})
}
