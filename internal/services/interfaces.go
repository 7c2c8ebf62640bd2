package services

import (
	"context"
	"time"

	"mmex-search/internal/dto"
	"mmex-search/internal/models"
	"mmex-search/internal/search"

	"github.com/google/uuid"
)

// SearchServiceInterface runs transaction searches
type SearchServiceInterface interface {
	// Search validates the request, parses its form and runs the query.
	Search(ctx context.Context, req dto.SearchRequest) (*dto.SearchResult, error)
	// Execute runs already-parsed criteria.
	Execute(ctx context.Context, source string, criteria search.Criteria, offset, limit int) (*dto.SearchResult, error)
	// Where renders the WHERE clause a form would produce without running it.
	Where(ctx context.Context, form search.Form) (*dto.WhereResponse, error)
	Locale() search.Locale
}

// SavedSearchServiceInterface manages named criteria
type SavedSearchServiceInterface interface {
	Create(ctx context.Context, req dto.SavedSearchRequest) (*dto.SavedSearchResponse, error)
	List(ctx context.Context) ([]dto.SavedSearchResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.SavedSearchResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Run(ctx context.Context, id uuid.UUID, offset, limit int) (*dto.SearchResult, error)
}

// AccountServiceInterface serves the search form's account selector
type AccountServiceInterface interface {
	ListSearchAccounts(ctx context.Context, openOnly, favoritesOnly bool) ([]models.Account, error)
}

// PickerServiceInterface serves the payee and category pickers
type PickerServiceInterface interface {
	ListPayees(ctx context.Context, filter string) ([]dto.PayeeResponse, error)
	ListCategories(ctx context.Context, filter string) ([]dto.CategoryResponse, error)
	ResolvePayee(ctx context.Context, id int64) (*dto.PayeeResponse, error)
	ResolveCategory(ctx context.Context, categoryID, subcategoryID int64) (search.CategorySub, error)
}

// SearchLoggerInterface provides structured logging for search operations
type SearchLoggerInterface interface {
	LogSearchStarted(ctx context.Context, source string, criteria search.Criteria)
	LogSearchCompleted(ctx context.Context, source string, total int64, returned int, durationMs int64)
	LogSearchFailed(ctx context.Context, source string, errorMsg string, durationMs int64)
	LogInvalidCriteria(ctx context.Context, source string, field string, reason string)
	LogSavedSearchCreated(ctx context.Context, id uuid.UUID, name string)
	LogSavedSearchDeleted(ctx context.Context, id uuid.UUID)
}

// MetricsRecorderInterface records search metrics
type MetricsRecorderInterface interface {
	RecordSearch(source, outcome string, duration time.Duration)
	RecordSearchResults(source string, total int64)
	RecordSavedSearchOperation(operation, outcome string)
}
