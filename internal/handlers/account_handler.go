package handlers

import (
	"net/http"

	"mmex-search/internal/dto"
	"mmex-search/internal/services"

	"github.com/labstack/echo/v4"
)

// AccountHandler serves the account selector of the search form
type AccountHandler struct {
	accountService services.AccountServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService services.AccountServiceInterface) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// ListAccounts returns the accounts a search can be restricted to
// @Summary List search accounts
// @Tags Accounts
// @Produce json
// @Param open_only query bool false "Only open accounts"
// @Param favorites_only query bool false "Only favourite accounts"
// @Success 200 {object} SuccessResponse
// @Router /accounts [get]
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	accounts, err := h.accountService.ListSearchAccounts(c.Request().Context(),
		getBoolParam(c, "open_only"), getBoolParam(c, "favorites_only"))
	if err != nil {
		return SendSystemError(c, err)
	}

	out := make([]dto.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, dto.AccountResponse{
			ID:       a.ID,
			Name:     a.Name,
			Type:     a.Type,
			Status:   a.Status,
			Favorite: a.Favorite,
		})
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: out})
}
