package services

import (
	"context"
	"errors"
	"testing"

	"mmex-search/internal/models"
	"mmex-search/internal/repositories"
	"mmex-search/internal/repositories/repository_mocks"
	"mmex-search/internal/search"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type PickerServiceSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	refs    *repository_mocks.MockReferenceRepositoryInterface
	service PickerServiceInterface
	ctx     context.Context
}

func TestPickerServiceSuite(t *testing.T) {
	suite.Run(t, new(PickerServiceSuite))
}

func (s *PickerServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.refs = repository_mocks.NewMockReferenceRepositoryInterface(s.ctrl)
	s.service = NewPickerService(s.refs)
	s.ctx = context.Background()
}

func (s *PickerServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *PickerServiceSuite) food() *models.Category {
	return &models.Category{
		ID:   3,
		Name: "Food",
		Subcategories: []models.Subcategory{
			{ID: 7, CategoryID: 3, Name: "Groceries"},
			{ID: 8, CategoryID: 3, Name: "Dining Out"},
		},
	}
}

func (s *PickerServiceSuite) TestListPayees_CapsResults() {
	name := gofakeit.Company()
	s.refs.EXPECT().ListPayees(s.ctx, "gro", MaxPickerPayees).Return([]models.Payee{{ID: 4, Name: name}}, nil)

	payees, err := s.service.ListPayees(s.ctx, "gro")
	s.Require().NoError(err)
	s.Require().Len(payees, 1)
	s.Equal(name, payees[0].Name)
}

func (s *PickerServiceSuite) TestListPayees_Error() {
	s.refs.EXPECT().ListPayees(s.ctx, "", MaxPickerPayees).Return(nil, errors.New("boom"))

	_, err := s.service.ListPayees(s.ctx, "")
	s.ErrorContains(err, "failed to list payees")
}

func (s *PickerServiceSuite) TestListCategories_NeverNilSubcategories() {
	s.refs.EXPECT().ListCategories(s.ctx, "").Return([]models.Category{{ID: 1, Name: "Bills"}}, nil)

	categories, err := s.service.ListCategories(s.ctx, "")
	s.Require().NoError(err)
	s.Require().Len(categories, 1)
	s.NotNil(categories[0].Subcategories)
}

func (s *PickerServiceSuite) TestResolvePayee_NotFound() {
	s.refs.EXPECT().GetPayee(s.ctx, int64(9)).Return(nil, repositories.ErrPayeeNotFound)

	_, err := s.service.ResolvePayee(s.ctx, 9)
	s.ErrorIs(err, repositories.ErrPayeeNotFound)
}

func (s *PickerServiceSuite) TestResolveCategory_CategoryOnly() {
	s.refs.EXPECT().GetCategory(s.ctx, int64(3)).Return(s.food(), nil)

	picked, err := s.service.ResolveCategory(s.ctx, 3, search.NotSet)
	s.Require().NoError(err)
	s.Equal(search.CategorySub{CategoryID: 3, CategoryName: "Food", SubcategoryID: search.NotSet}, picked)
	s.False(picked.HasSubcategory())
}

func (s *PickerServiceSuite) TestResolveCategory_WithSubcategory() {
	s.refs.EXPECT().GetCategory(s.ctx, int64(3)).Return(s.food(), nil)

	picked, err := s.service.ResolveCategory(s.ctx, 3, 8)
	s.Require().NoError(err)
	s.Equal("Dining Out", picked.SubcategoryName)
	s.True(picked.HasSubcategory())
}

func (s *PickerServiceSuite) TestResolveCategory_SubcategoryOfAnotherCategory() {
	s.refs.EXPECT().GetCategory(s.ctx, int64(3)).Return(s.food(), nil)

	_, err := s.service.ResolveCategory(s.ctx, 3, 42)
	s.ErrorIs(err, repositories.ErrSubcategoryNotFound)
}
