package repositories

import (
	"context"
	"errors"
	"fmt"

	"mmex-search/internal/models"
	"mmex-search/internal/search"

	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

const searchOrder = "transactions.trans_date DESC, transactions.id DESC"

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db      *gorm.DB
	columns search.Columns
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db:      db,
		columns: search.DefaultColumns(),
	}
}

// Create stores a transaction together with its split lines
func (r *transactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transaction).Error; err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a transaction and its split lines
func (r *transactionRepository) GetByID(ctx context.Context, id int64) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.WithContext(ctx).Preload("Splits").First(&transaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// Search executes the predicate, newest first
func (r *transactionRepository) Search(ctx context.Context, predicate search.Predicate, offset, limit int) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	where, args := predicate.Render(r.columns)
	query := r.db.WithContext(ctx).Model(&models.Transaction{}).Where(where, args...)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count matching transactions: %w", err)
	}

	if total == 0 {
		return []models.Transaction{}, 0, nil
	}

	if err := query.Preload("Splits").
		Order(searchOrder).
		Offset(offset).Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to search transactions: %w", err)
	}

	return transactions, total, nil
}
