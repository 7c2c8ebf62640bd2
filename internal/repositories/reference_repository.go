package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mmex-search/internal/models"
	"mmex-search/internal/search"

	"gorm.io/gorm"
)

var (
	ErrPayeeNotFound       = errors.New("payee not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrSubcategoryNotFound = errors.New("subcategory not found")
	ErrPayeeNameExists     = errors.New("payee name already exists")
	ErrCategoryNameExists  = errors.New("category name already exists")
)

const nameContains = "LOWER(name) LIKE LOWER(?) ESCAPE '" + search.LikeEscape + "'"

// referenceRepository implements ReferenceRepositoryInterface
type referenceRepository struct {
	db *gorm.DB
}

// NewReferenceRepository creates a repository over payees and categories
func NewReferenceRepository(db *gorm.DB) ReferenceRepositoryInterface {
	return &referenceRepository{db: db}
}

// ListPayees returns payees whose name contains the filter, ordered by name.
// A blank filter lists every payee.
func (r *referenceRepository) ListPayees(ctx context.Context, filter string, limit int) ([]models.Payee, error) {
	var payees []models.Payee

	query := r.db.WithContext(ctx).Model(&models.Payee{})
	if filter = strings.TrimSpace(filter); filter != "" {
		query = query.Where(nameContains, search.ContainsPattern(filter))
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Order("name ASC").Find(&payees).Error; err != nil {
		return nil, fmt.Errorf("failed to list payees: %w", err)
	}
	return payees, nil
}

// ListCategories returns categories with their subcategories. A category
// matches when its own name or one of its subcategory names contains the
// filter.
func (r *referenceRepository) ListCategories(ctx context.Context, filter string) ([]models.Category, error) {
	var categories []models.Category

	query := r.db.WithContext(ctx).Model(&models.Category{}).
		Preload("Subcategories", func(db *gorm.DB) *gorm.DB {
			return db.Order("subcategories.name ASC")
		})
	if filter = strings.TrimSpace(filter); filter != "" {
		pattern := search.ContainsPattern(filter)
		query = query.Where(
			r.db.Where("LOWER(categories.name) LIKE LOWER(?) ESCAPE '"+search.LikeEscape+"'", pattern).
				Or("categories.id IN (?)", r.db.Model(&models.Subcategory{}).Select("category_id").Where(nameContains, pattern)),
		)
	}

	if err := query.Order("categories.name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// CreatePayee stores a payee
func (r *referenceRepository) CreatePayee(ctx context.Context, payee *models.Payee) error {
	if err := r.db.WithContext(ctx).Create(payee).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrPayeeNameExists
		}
		return fmt.Errorf("failed to create payee: %w", err)
	}
	return nil
}

// CreateCategory stores a category together with its subcategories
func (r *referenceRepository) CreateCategory(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrCategoryNameExists
		}
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func (r *referenceRepository) GetPayee(ctx context.Context, id int64) (*models.Payee, error) {
	var payee models.Payee
	if err := r.db.WithContext(ctx).First(&payee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPayeeNotFound
		}
		return nil, fmt.Errorf("failed to get payee: %w", err)
	}
	return &payee, nil
}

func (r *referenceRepository) GetCategory(ctx context.Context, id int64) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).Preload("Subcategories").First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}
