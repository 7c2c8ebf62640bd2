package services

import (
	"context"
	"errors"
	"testing"

	"mmex-search/internal/config"
	"mmex-search/internal/dto"
	"mmex-search/internal/models"
	"mmex-search/internal/repositories/repository_mocks"
	"mmex-search/internal/search"
	"mmex-search/internal/services/service_mocks"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// SearchServiceTestSuite is the test suite for SearchService
type SearchServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	txRepo  *repository_mocks.MockTransactionRepositoryInterface
	logger  *service_mocks.MockSearchLoggerInterface
	metrics *service_mocks.MockMetricsRecorderInterface
	service SearchServiceInterface
	ctx     context.Context
}

func (s *SearchServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.txRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.logger = service_mocks.NewMockSearchLoggerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.service = NewSearchService(s.txRepo, s.logger, s.metrics, config.SearchConfig{
		DefaultPageLimit: 20,
		MaxPageLimit:     100,
		DateLayout:       "02/01/2006",
		DecimalSeparator: ",",
		GroupSeparator:   ".",
	})
	s.ctx = ContextWithRequestID(context.Background(), "req-1")
}

func (s *SearchServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSearchServiceSuite(t *testing.T) {
	suite.Run(t, new(SearchServiceTestSuite))
}

func (s *SearchServiceTestSuite) expectSuccess(source string, total int64, returned int) {
	s.logger.EXPECT().LogSearchStarted(s.ctx, source, gomock.Any())
	s.logger.EXPECT().LogSearchCompleted(s.ctx, source, total, returned, gomock.Any())
	s.metrics.EXPECT().RecordSearch(source, SearchOutcomeSuccess, gomock.Any())
	s.metrics.EXPECT().RecordSearchResults(source, total)
}

func (s *SearchServiceTestSuite) TestLocaleFromConfig() {
	loc := s.service.Locale()
	s.Equal("02/01/2006", loc.DateLayout)
	s.Equal(",", loc.DecimalSeparator)
	s.Equal(".", loc.GroupSeparator)

	s.Equal(search.DefaultLocale(), LocaleFromConfig(config.SearchConfig{}))
}

func (s *SearchServiceTestSuite) TestSearch_ParsesFormWithLocale() {
	amount := decimal.RequireFromString("12.5")
	tx := models.Transaction{ID: 7, AccountID: 1, TransCode: models.TransCodeDeposit, Amount: amount, TransDate: "2024-03-01"}

	s.txRepo.EXPECT().
		Search(s.ctx, gomock.Any(), 0, 20).
		DoAndReturn(func(_ context.Context, p search.Predicate, _, _ int) ([]models.Transaction, int64, error) {
			s.Equal("amount >= ? AND date <= ?", p.Text())
			args := p.Args()
			s.Require().Len(args, 2)
			s.Equal("1234.5", args[0].(decimal.Decimal).String())
			s.Equal("2024-03-31", args[1])
			return []models.Transaction{tx}, 1, nil
		})
	s.expectSuccess(SearchSourceForm, 1, 1)

	result, err := s.service.Search(s.ctx, dto.SearchRequest{
		Criteria: search.Form{AmountFrom: "1.234,50", DateTo: "31/03/2024"},
	})

	s.Require().NoError(err)
	s.Len(result.Transactions, 1)
	s.Equal("12.50", result.Transactions[0].Amount)
	s.Equal(dto.PaginationMeta{Offset: 0, Limit: 20, Total: 1}, result.Pagination)
}

func (s *SearchServiceTestSuite) TestSearch_PagingIsClamped() {
	s.txRepo.EXPECT().Search(s.ctx, gomock.Any(), 40, 100).Return(nil, int64(0), nil)
	s.expectSuccess(SearchSourceForm, 0, 0)

	result, err := s.service.Search(s.ctx, dto.SearchRequest{Limit: 500, Offset: 40})

	s.Require().NoError(err)
	s.NotNil(result.Transactions)
	s.Empty(result.Transactions)
	s.Equal(100, result.Pagination.Limit)
}

func (s *SearchServiceTestSuite) TestSearch_InvalidFormText() {
	s.logger.EXPECT().LogInvalidCriteria(s.ctx, SearchSourceForm, "amount_from", "not a number")
	s.metrics.EXPECT().RecordSearch(SearchSourceForm, SearchOutcomeInvalid, gomock.Any())

	_, err := s.service.Search(s.ctx, dto.SearchRequest{Criteria: search.Form{AmountFrom: "ten"}})

	s.ErrorIs(err, search.ErrInvalidCriteria)
}

func (s *SearchServiceTestSuite) TestSearch_RequestValidation() {
	_, err := s.service.Search(s.ctx, dto.SearchRequest{Offset: -1})

	var verrs validator.ValidationErrors
	s.Require().True(errors.As(err, &verrs))
	s.Equal("offset", verrs[0].Field())
}

func (s *SearchServiceTestSuite) TestSearch_StatusValidation() {
	_, err := s.service.Search(s.ctx, dto.SearchRequest{Criteria: search.Form{Status: "X"}})

	var verrs validator.ValidationErrors
	s.True(errors.As(err, &verrs))
}

func (s *SearchServiceTestSuite) TestExecute_InvalidCriteriaNeverReachesRepository() {
	s.logger.EXPECT().LogInvalidCriteria(s.ctx, SearchSourceSaved, "account_id", gomock.Any())
	s.metrics.EXPECT().RecordSearch(SearchSourceSaved, SearchOutcomeInvalid, gomock.Any())

	_, err := s.service.Execute(s.ctx, SearchSourceSaved, search.Criteria{AccountID: search.Ptr(int64(-5))}, 0, 0)

	var invalid *search.InvalidCriteriaError
	s.Require().ErrorAs(err, &invalid)
	s.Equal("account_id", invalid.Field)
}

func (s *SearchServiceTestSuite) TestExecute_RepositoryFailure() {
	s.logger.EXPECT().LogSearchStarted(s.ctx, SearchSourceSaved, gomock.Any())
	s.txRepo.EXPECT().Search(s.ctx, gomock.Any(), 0, 20).Return(nil, int64(0), errors.New("connection reset"))
	s.logger.EXPECT().LogSearchFailed(s.ctx, SearchSourceSaved, "connection reset", gomock.Any())
	s.metrics.EXPECT().RecordSearch(SearchSourceSaved, SearchOutcomeError, gomock.Any())

	_, err := s.service.Execute(s.ctx, SearchSourceSaved, search.Criteria{}, -3, 0)

	s.Error(err)
	s.Contains(err.Error(), "failed to search transactions")
}

func (s *SearchServiceTestSuite) TestExecute_EmptyCriteriaIsUnconstrained() {
	s.txRepo.EXPECT().
		Search(s.ctx, gomock.Any(), 0, 20).
		DoAndReturn(func(_ context.Context, p search.Predicate, _, _ int) ([]models.Transaction, int64, error) {
			s.True(p.IsEmpty())
			return nil, 0, nil
		})
	s.expectSuccess(SearchSourceSaved, 0, 0)

	_, err := s.service.Execute(s.ctx, SearchSourceSaved, search.Criteria{}, 0, 0)
	s.NoError(err)
}

func (s *SearchServiceTestSuite) TestWhere_RendersPhysicalColumns() {
	resp, err := s.service.Where(s.ctx, search.Form{AccountID: "4", Notes: "50% off"})

	s.Require().NoError(err)
	s.Equal(
		`(transactions.account_id = ? OR transactions.to_account_id = ?) AND LOWER(transactions.notes) LIKE LOWER(?) ESCAPE '\'`,
		resp.Where,
	)
	s.Equal([]interface{}{int64(4), int64(4), `%50\% off%`}, resp.Args)
}

func (s *SearchServiceTestSuite) TestWhere_EmptyFormHasNoArgs() {
	resp, err := s.service.Where(s.ctx, search.Form{})

	s.Require().NoError(err)
	s.Equal("1 = 1", resp.Where)
	s.NotNil(resp.Args)
	s.Empty(resp.Args)
}

func (s *SearchServiceTestSuite) TestWhere_InvalidForm() {
	s.logger.EXPECT().LogInvalidCriteria(s.ctx, SearchSourceSession, "subcategory_id", gomock.Any())

	_, err := s.service.Where(s.ctx, search.Form{SubcategoryID: "3"})

	s.ErrorIs(err, search.ErrInvalidCriteria)
}
