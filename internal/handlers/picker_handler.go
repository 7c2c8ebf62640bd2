package handlers

import (
	"net/http"
	"strconv"

	"mmex-search/internal/errors"
	"mmex-search/internal/services"

	"github.com/labstack/echo/v4"
)

// PickerHandler serves the payee and category pickers of the search form
type PickerHandler struct {
	pickerService services.PickerServiceInterface
}

// NewPickerHandler creates a new picker handler
func NewPickerHandler(pickerService services.PickerServiceInterface) *PickerHandler {
	return &PickerHandler{pickerService: pickerService}
}

// ListPayees returns payees whose name contains q
// @Summary List payees
// @Tags Pickers
// @Produce json
// @Param q query string false "Name filter, matched literally"
// @Success 200 {object} SuccessResponse
// @Router /payees [get]
func (h *PickerHandler) ListPayees(c echo.Context) error {
	payees, err := h.pickerService.ListPayees(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: payees})
}

// GetPayee returns one payee
// @Summary Get payee
// @Tags Pickers
// @Produce json
// @Param id path int true "Payee ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} errors.ErrorResponse "SEARCH_006 - Payee not found"
// @Router /payees/{id} [get]
func (h *PickerHandler) GetPayee(c echo.Context) error {
	id, ok := getIDParam(c, "id")
	if !ok {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithField("id", "must be a positive whole number"))
	}

	payee, err := h.pickerService.ResolvePayee(c.Request().Context(), id)
	if err != nil {
		return sendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: payee})
}

// ListCategories returns categories whose name, or a subcategory name,
// contains q
// @Summary List categories
// @Tags Pickers
// @Produce json
// @Param q query string false "Name filter, matched literally"
// @Success 200 {object} SuccessResponse
// @Router /categories [get]
func (h *PickerHandler) ListCategories(c echo.Context) error {
	categories, err := h.pickerService.ListCategories(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: categories})
}

// SelectCategory resolves a picked category and optional subcategory into
// the category selection used by search criteria
// @Summary Resolve category selection
// @Tags Pickers
// @Produce json
// @Param id path int true "Category ID"
// @Param subcategory_id query int false "Subcategory ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} errors.ErrorResponse "SEARCH_007 - Category or subcategory not found"
// @Router /categories/{id}/selection [get]
func (h *PickerHandler) SelectCategory(c echo.Context) error {
	id, ok := getIDParam(c, "id")
	if !ok {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithField("id", "must be a positive whole number"))
	}

	var subcategoryID int64
	if raw := c.QueryParam("subcategory_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithField("subcategory_id", "must be a whole number"))
		}
		subcategoryID = parsed
	}

	picked, err := h.pickerService.ResolveCategory(c.Request().Context(), id, subcategoryID)
	if err != nil {
		return sendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: picked})
}
