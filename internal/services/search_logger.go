package services

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"mmex-search/internal/search"

	"github.com/google/uuid"
)

const (
	// RedactedValue masks free text typed by the user
	RedactedValue = "***REDACTED***"
)

type requestIDKey struct{}

// ContextWithRequestID attaches the request id that search logs carry
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext returns the request id or an empty string
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(requestIDKey{}).(string); ok {
		return requestID
	}
	return ""
}

// SearchLogger provides structured logging for search operations
type SearchLogger struct {
	logger *slog.Logger
}

// NewSearchLogger creates a new search logger
func NewSearchLogger(logger *slog.Logger) SearchLoggerInterface {
	return &SearchLogger{
		logger: logger,
	}
}

// LogSearchStarted logs which filters a search uses. Free text is masked.
func (sl *SearchLogger) LogSearchStarted(ctx context.Context, source string, criteria search.Criteria) {
	sl.logger.InfoContext(ctx, "transaction search started",
		slog.String("event_type", "transaction_search_started"),
		slog.String("source", source),
		slog.Any("filters", activeFilters(criteria)),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

func (sl *SearchLogger) LogSearchCompleted(ctx context.Context, source string, total int64, returned int, durationMs int64) {
	sl.logger.InfoContext(ctx, "transaction search completed",
		slog.String("event_type", "transaction_search_completed"),
		slog.String("source", source),
		slog.Int64("total", total),
		slog.Int("returned", returned),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

func (sl *SearchLogger) LogSearchFailed(ctx context.Context, source string, errorMsg string, durationMs int64) {
	sl.logger.ErrorContext(ctx, "transaction search failed",
		slog.String("event_type", "transaction_search_failed"),
		slog.String("source", source),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

func (sl *SearchLogger) LogInvalidCriteria(ctx context.Context, source string, field string, reason string) {
	sl.logger.WarnContext(ctx, "invalid search criteria",
		slog.String("event_type", "transaction_search_invalid"),
		slog.String("source", source),
		slog.String("field", field),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

func (sl *SearchLogger) LogSavedSearchCreated(ctx context.Context, id uuid.UUID, name string) {
	sl.logger.InfoContext(ctx, "saved search created",
		slog.String("event_type", "saved_search_created"),
		slog.String("saved_search_id", id.String()),
		slog.String("name", name),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

func (sl *SearchLogger) LogSavedSearchDeleted(ctx context.Context, id uuid.UUID) {
	sl.logger.InfoContext(ctx, "saved search deleted",
		slog.String("event_type", "saved_search_deleted"),
		slog.String("saved_search_id", id.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

// activeFilters lists the constrained criteria fields. Ids and codes are
// kept, notes and transaction numbers are masked.
func activeFilters(c search.Criteria) map[string]string {
	filters := map[string]string{}
	if c.HasAccount() {
		filters["account_id"] = formatID(*c.AccountID)
	}
	if types := c.TransactionTypes(); len(types) > 0 {
		filters["transaction_types"] = joinTypes(types)
	}
	if c.Status != search.StatusUnset {
		filters["status"] = c.Status
	}
	if c.AmountFrom != nil {
		filters["amount_from"] = c.AmountFrom.String()
	}
	if c.AmountTo != nil {
		filters["amount_to"] = c.AmountTo.String()
	}
	if c.DateFrom != nil {
		filters["date_from"] = c.DateFrom.Format(search.ISODateLayout)
	}
	if c.DateTo != nil {
		filters["date_to"] = c.DateTo.Format(search.ISODateLayout)
	}
	if c.HasPayee() {
		filters["payee_id"] = formatID(*c.PayeeID)
	}
	if c.Category != nil {
		filters["category_id"] = formatID(c.Category.CategoryID)
		if c.Category.HasSubcategory() {
			filters["subcategory_id"] = formatID(c.Category.SubcategoryID)
		}
	}
	if c.TransactionNumber != "" {
		filters["transaction_number"] = RedactedValue
	}
	if c.Notes != "" {
		filters["notes"] = RedactedValue
	}
	return filters
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func joinTypes(types []string) string {
	return strings.Join(types, ",")
}
