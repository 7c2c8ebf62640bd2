package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"mmex-search/internal/repositories"
)

// SeedSummary counts what a seeding run stored
type SeedSummary struct {
	Accounts     int `json:"accounts"`
	Payees       int `json:"payees"`
	Categories   int `json:"categories"`
	Transactions int `json:"transactions"`
}

// DemoSeeder fills a register with generated data. Reference rows that
// already exist are reused, so seeding an existing database only adds
// transactions.
type DemoSeeder struct {
	accounts     repositories.AccountRepositoryInterface
	refs         repositories.ReferenceRepositoryInterface
	transactions repositories.TransactionRepositoryInterface
	generator    *RegisterGenerator
	logger       *slog.Logger
}

// NewDemoSeeder creates a seeder; a nil logger uses slog.Default()
func NewDemoSeeder(
	accounts repositories.AccountRepositoryInterface,
	refs repositories.ReferenceRepositoryInterface,
	transactions repositories.TransactionRepositoryInterface,
	generator *RegisterGenerator,
	logger *slog.Logger,
) *DemoSeeder {
	if logger == nil {
		logger = slog.Default()
	}
	return &DemoSeeder{
		accounts:     accounts,
		refs:         refs,
		transactions: transactions,
		generator:    generator,
		logger:       logger,
	}
}

// Seed stores the demo reference data and count transactions dated between
// from and to.
func (s *DemoSeeder) Seed(ctx context.Context, count, payeeCount int, from, to time.Time) (*SeedSummary, error) {
	if !from.Before(to) {
		return nil, fmt.Errorf("seed date range is empty: %s..%s", from.Format(time.DateOnly), to.Format(time.DateOnly))
	}
	summary := &SeedSummary{}

	for _, account := range s.generator.Accounts() {
		err := s.accounts.Create(ctx, &account)
		switch {
		case err == nil:
			summary.Accounts++
		case !errors.Is(err, repositories.ErrAccountNameExists):
			return nil, fmt.Errorf("failed to seed accounts: %w", err)
		}
	}

	for _, payee := range s.generator.Payees(payeeCount) {
		err := s.refs.CreatePayee(ctx, &payee)
		switch {
		case err == nil:
			summary.Payees++
		case !errors.Is(err, repositories.ErrPayeeNameExists):
			return nil, fmt.Errorf("failed to seed payees: %w", err)
		}
	}

	for _, category := range s.generator.Categories() {
		err := s.refs.CreateCategory(ctx, &category)
		switch {
		case err == nil:
			summary.Categories++
		case !errors.Is(err, repositories.ErrCategoryNameExists):
			return nil, fmt.Errorf("failed to seed categories: %w", err)
		}
	}

	accounts, err := s.accounts.ListForSearch(ctx, false, false)
	if err != nil {
		return nil, err
	}
	payees, err := s.refs.ListPayees(ctx, "", 0)
	if err != nil {
		return nil, err
	}
	categories, err := s.refs.ListCategories(ctx, "")
	if err != nil {
		return nil, err
	}

	for _, tx := range s.generator.Transactions(accounts, payees, categories, from, to, count) {
		if err := s.transactions.Create(ctx, &tx); err != nil {
			return nil, fmt.Errorf("failed to seed transactions: %w", err)
		}
		summary.Transactions++
	}

	s.logger.InfoContext(ctx, "Demo register seeded",
		slog.String("event_type", "demo_register_seeded"),
		slog.Int("accounts", summary.Accounts),
		slog.Int("payees", summary.Payees),
		slog.Int("categories", summary.Categories),
		slog.Int("transactions", summary.Transactions),
	)
	return summary, nil
}
