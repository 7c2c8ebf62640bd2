package repositories

import (
	"context"

	"mmex-search/internal/models"
	"mmex-search/internal/search"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	GetByID(ctx context.Context, id int64) (*models.Transaction, error)
	// Search returns one page of the transactions matching the predicate and
	// the total number of matches.
	Search(ctx context.Context, predicate search.Predicate, offset, limit int) ([]models.Transaction, int64, error)
}

// AccountRepositoryInterface defines the contract for account repository operations
type AccountRepositoryInterface interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id int64) (*models.Account, error)
	ListForSearch(ctx context.Context, openOnly, favoritesOnly bool) ([]models.Account, error)
}

// SavedSearchRepositoryInterface defines the contract for saved search persistence
type SavedSearchRepositoryInterface interface {
	Create(ctx context.Context, saved *models.SavedSearch) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.SavedSearch, error)
	List(ctx context.Context) ([]models.SavedSearch, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReferenceRepositoryInterface reads the payees and categories offered by the
// search form's pickers
type ReferenceRepositoryInterface interface {
	ListPayees(ctx context.Context, filter string, limit int) ([]models.Payee, error)
	ListCategories(ctx context.Context, filter string) ([]models.Category, error)
	GetPayee(ctx context.Context, id int64) (*models.Payee, error)
	GetCategory(ctx context.Context, id int64) (*models.Category, error)
	CreatePayee(ctx context.Context, payee *models.Payee) error
	CreateCategory(ctx context.Context, category *models.Category) error
}
