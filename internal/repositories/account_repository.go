package repositories

import (
	"context"
	"errors"
	"fmt"

	"mmex-search/internal/models"

	"gorm.io/gorm"
)

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrAccountNameExists = errors.New("account name already exists")
)

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account
func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAccountNameExists
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByID retrieves an account by ID
func (r *accountRepository) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// ListForSearch returns the accounts offered by the search form's account
// selector, ordered by name.
func (r *accountRepository) ListForSearch(ctx context.Context, openOnly, favoritesOnly bool) ([]models.Account, error) {
	var accounts []models.Account

	query := r.db.WithContext(ctx).Model(&models.Account{})
	if openOnly {
		query = query.Where("status = ?", models.AccountStatusOpen)
	}
	if favoritesOnly {
		query = query.Where("favorite = ?", true)
	}

	if err := query.Order("name ASC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}
