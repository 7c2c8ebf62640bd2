package services

import (
	"context"
	"fmt"

	"mmex-search/internal/models"
	"mmex-search/internal/repositories"
)

// AccountService serves the accounts offered by the search form
type AccountService struct {
	accountRepo repositories.AccountRepositoryInterface
}

// NewAccountService creates a new account service
func NewAccountService(accountRepo repositories.AccountRepositoryInterface) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
	}
}

// ListSearchAccounts returns the accounts for the account selector, honouring
// the open and favourite view settings
func (s *AccountService) ListSearchAccounts(ctx context.Context, openOnly, favoritesOnly bool) ([]models.Account, error) {
	accounts, err := s.accountRepo.ListForSearch(ctx, openOnly, favoritesOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}
