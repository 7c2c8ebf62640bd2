package repositories

import (
	"context"
	"errors"
	"fmt"

	"mmex-search/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSavedSearchNotFound   = errors.New("saved search not found")
	ErrSavedSearchNameExists = errors.New("saved search name already exists")
)

type savedSearchRepository struct {
	db *gorm.DB
}

// NewSavedSearchRepository creates a new saved search repository
func NewSavedSearchRepository(db *gorm.DB) SavedSearchRepositoryInterface {
	return &savedSearchRepository{db: db}
}

func (r *savedSearchRepository) Create(ctx context.Context, saved *models.SavedSearch) error {
	if err := r.db.WithContext(ctx).Create(saved).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrSavedSearchNameExists
		}
		return fmt.Errorf("failed to create saved search: %w", err)
	}
	return nil
}

func (r *savedSearchRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.SavedSearch, error) {
	var saved models.SavedSearch
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&saved).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSavedSearchNotFound
		}
		return nil, fmt.Errorf("failed to get saved search: %w", err)
	}
	return &saved, nil
}

// List returns every saved search ordered by name
func (r *savedSearchRepository) List(ctx context.Context) ([]models.SavedSearch, error) {
	var searches []models.SavedSearch
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&searches).Error; err != nil {
		return nil, fmt.Errorf("failed to list saved searches: %w", err)
	}
	return searches, nil
}

func (r *savedSearchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.SavedSearch{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete saved search: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSavedSearchNotFound
	}
	return nil
}
