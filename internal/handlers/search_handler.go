package handlers

import (
	"net/http"

	"mmex-search/internal/dto"
	"mmex-search/internal/errors"
	"mmex-search/internal/search"
	"mmex-search/internal/services"

	"github.com/labstack/echo/v4"
)

// SearchHandler handles transaction search requests
type SearchHandler struct {
	searchService services.SearchServiceInterface
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService services.SearchServiceInterface) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Search runs a search form against the register
// @Summary Search transactions
// @Tags Search
// @Accept json
// @Produce json
// @Param request body dto.SearchRequest true "Search criteria and paging"
// @Success 200 {object} SuccessResponse "Matching transactions"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 / SEARCH_001 - Invalid criteria"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/search [post]
func (h *SearchHandler) Search(c echo.Context) error {
	var req dto.SearchRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	result, err := h.searchService.Search(c.Request().Context(), req)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: result.Transactions,
		Meta: result.Pagination,
	})
}

// Where renders the WHERE clause a search form produces without running it
// @Summary Render search predicate
// @Tags Search
// @Accept json
// @Produce json
// @Param request body search.Form true "Search form"
// @Success 200 {object} SuccessResponse "Rendered clause and bound values"
// @Failure 400 {object} errors.ErrorResponse "SEARCH_001 - Invalid criteria"
// @Router /transactions/search/where [post]
func (h *SearchHandler) Where(c echo.Context) error {
	var form search.Form
	if err := c.Bind(&form); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	resp, err := h.searchService.Where(c.Request().Context(), form)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: resp})
}
