package services

import (
	"context"
	"fmt"

	"mmex-search/internal/dto"
	"mmex-search/internal/repositories"
	"mmex-search/internal/search"
)

// MaxPickerPayees caps the payee picker list
const MaxPickerPayees = 50

// pickerService backs the payee and category pickers. A picked entry is
// resolved to the ids and names a SearchSession or Form carries.
type pickerService struct {
	refs repositories.ReferenceRepositoryInterface
}

// NewPickerService creates a new picker service
func NewPickerService(refs repositories.ReferenceRepositoryInterface) PickerServiceInterface {
	return &pickerService{refs: refs}
}

func (s *pickerService) ListPayees(ctx context.Context, filter string) ([]dto.PayeeResponse, error) {
	payees, err := s.refs.ListPayees(ctx, filter, MaxPickerPayees)
	if err != nil {
		return nil, fmt.Errorf("failed to list payees: %w", err)
	}
	return dto.NewPayeeResponses(payees), nil
}

func (s *pickerService) ListCategories(ctx context.Context, filter string) ([]dto.CategoryResponse, error) {
	categories, err := s.refs.ListCategories(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return dto.NewCategoryResponses(categories), nil
}

// ResolvePayee returns the picked payee
func (s *pickerService) ResolvePayee(ctx context.Context, id int64) (*dto.PayeeResponse, error) {
	payee, err := s.refs.GetPayee(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.PayeeResponse{ID: payee.ID, Name: payee.Name}, nil
}

// ResolveCategory turns a picked category, and optionally one of its
// subcategories, into the category selection of a search. A non-positive
// subcategoryID picks the category alone.
func (s *pickerService) ResolveCategory(ctx context.Context, categoryID, subcategoryID int64) (search.CategorySub, error) {
	category, err := s.refs.GetCategory(ctx, categoryID)
	if err != nil {
		return search.CategorySub{}, err
	}

	picked := search.CategorySub{
		CategoryID:    category.ID,
		CategoryName:  category.Name,
		SubcategoryID: search.NotSet,
	}
	if subcategoryID <= 0 {
		return picked, nil
	}

	for _, sub := range category.Subcategories {
		if sub.ID == subcategoryID {
			picked.SubcategoryID = sub.ID
			picked.SubcategoryName = sub.Name
			return picked, nil
		}
	}
	return search.CategorySub{}, repositories.ErrSubcategoryNotFound
}
