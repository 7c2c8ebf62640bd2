package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mmex-search/internal/config"
	"mmex-search/internal/dto"
	"mmex-search/internal/repositories"
	"mmex-search/internal/search"
	"mmex-search/internal/validation"
)

const (
	DefaultSearchLimit = 20
	MaxSearchLimit     = 100
)

// SearchService turns search forms into predicates and runs them
type SearchService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	logger          SearchLoggerInterface
	metrics         MetricsRecorderInterface
	validator       *validation.Validator
	locale          search.Locale
	defaultLimit    int
	maxLimit        int
}

// NewSearchService creates a new search service
func NewSearchService(
	transactionRepo repositories.TransactionRepositoryInterface,
	logger SearchLoggerInterface,
	metrics MetricsRecorderInterface,
	cfg config.SearchConfig,
) SearchServiceInterface {
	s := &SearchService{
		transactionRepo: transactionRepo,
		logger:          logger,
		metrics:         metrics,
		validator:       validation.GetValidator(),
		locale:          LocaleFromConfig(cfg),
		defaultLimit:    cfg.DefaultPageLimit,
		maxLimit:        cfg.MaxPageLimit,
	}
	if s.defaultLimit <= 0 {
		s.defaultLimit = DefaultSearchLimit
	}
	if s.maxLimit <= 0 {
		s.maxLimit = MaxSearchLimit
	}
	if s.maxLimit < s.defaultLimit {
		s.maxLimit = s.defaultLimit
	}
	return s
}

// LocaleFromConfig builds the form locale. Blank settings keep the defaults.
func LocaleFromConfig(cfg config.SearchConfig) search.Locale {
	loc := search.DefaultLocale()
	if cfg.DateLayout != "" {
		loc.DateLayout = cfg.DateLayout
	}
	if cfg.DecimalSeparator != "" {
		loc.DecimalSeparator = cfg.DecimalSeparator
	}
	loc.GroupSeparator = cfg.GroupSeparator
	return loc
}

func (s *SearchService) Locale() search.Locale {
	return s.locale
}

// Search validates the request, parses its form and runs the query
func (s *SearchService) Search(ctx context.Context, req dto.SearchRequest) (*dto.SearchResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	criteria, err := search.ParseForm(req.Criteria, s.locale)
	if err != nil {
		s.logInvalid(ctx, SearchSourceForm, err)
		s.metrics.RecordSearch(SearchSourceForm, SearchOutcomeInvalid, 0)
		return nil, err
	}

	return s.Execute(ctx, SearchSourceForm, criteria, req.Offset, req.Limit)
}

// Execute translates criteria and fetches one page of matches
func (s *SearchService) Execute(ctx context.Context, source string, criteria search.Criteria, offset, limit int) (*dto.SearchResult, error) {
	start := time.Now()
	offset, limit = s.page(offset, limit)

	predicate, err := search.Translate(criteria)
	if err != nil {
		s.logInvalid(ctx, source, err)
		s.metrics.RecordSearch(source, SearchOutcomeInvalid, time.Since(start))
		return nil, err
	}

	s.logger.LogSearchStarted(ctx, source, criteria)

	transactions, total, err := s.transactionRepo.Search(ctx, predicate, offset, limit)
	if err != nil {
		elapsed := time.Since(start)
		s.logger.LogSearchFailed(ctx, source, err.Error(), elapsed.Milliseconds())
		s.metrics.RecordSearch(source, SearchOutcomeError, elapsed)
		return nil, fmt.Errorf("failed to search transactions: %w", err)
	}

	elapsed := time.Since(start)
	s.logger.LogSearchCompleted(ctx, source, total, len(transactions), elapsed.Milliseconds())
	s.metrics.RecordSearch(source, SearchOutcomeSuccess, elapsed)
	s.metrics.RecordSearchResults(source, total)

	return &dto.SearchResult{
		Transactions: dto.NewTransactionResponses(transactions),
		Pagination: dto.PaginationMeta{
			Offset: offset,
			Limit:  limit,
			Total:  total,
		},
	}, nil
}

// Where renders the WHERE clause of a form through a search session
func (s *SearchService) Where(ctx context.Context, form search.Form) (*dto.WhereResponse, error) {
	if err := s.validator.Struct(form); err != nil {
		return nil, err
	}

	session := NewSearchSession(s.locale)
	if err := session.ApplyForm(form); err != nil {
		s.logInvalid(ctx, SearchSourceSession, err)
		return nil, err
	}

	where, args, err := session.WhereStatement()
	if err != nil {
		s.logInvalid(ctx, SearchSourceSession, err)
		return nil, err
	}
	if args == nil {
		args = []interface{}{}
	}
	return &dto.WhereResponse{Where: where, Args: args}, nil
}

func (s *SearchService) page(offset, limit int) (int, int) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}

func (s *SearchService) logInvalid(ctx context.Context, source string, err error) {
	var invalid *search.InvalidCriteriaError
	if errors.As(err, &invalid) {
		s.logger.LogInvalidCriteria(ctx, source, invalid.Field, invalid.Reason)
		return
	}
	s.logger.LogInvalidCriteria(ctx, source, "", err.Error())
}
