package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"mmex-search/internal/models"
	"mmex-search/internal/repositories"
	"mmex-search/internal/search"
)

var (
	// ErrRegisterUnavailable is returned without touching the database while
	// the breaker is open.
	ErrRegisterUnavailable = errors.New("transaction register temporarily unavailable")
)

type BreakerState int

const (
	StateClosed BreakerState = iota
	StateOpen
	StateHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	default:
		return "closed"
	}
}

type CircuitBreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		MaxFailures:     5,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 3,
	}
}

// CircuitBreaker counts consecutive register failures. After MaxFailures it
// opens for ResetTimeout, then lets probes through until HalfOpenMaxSucc of
// them succeed.
type CircuitBreaker struct {
	mu                sync.Mutex
	config            CircuitBreakerConfig
	state             BreakerState
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
	now               func() time.Time
}

func NewCircuitBreaker(config CircuitBreakerConfig) *CircuitBreaker {
	defaults := DefaultCircuitBreakerConfig()
	if config.MaxFailures <= 0 {
		config.MaxFailures = defaults.MaxFailures
	}
	if config.ResetTimeout <= 0 {
		config.ResetTimeout = defaults.ResetTimeout
	}
	if config.HalfOpenMaxSucc <= 0 {
		config.HalfOpenMaxSucc = defaults.HalfOpenMaxSucc
	}
	return &CircuitBreaker{config: config, state: StateClosed, now: time.Now}
}

// Allow reports whether a call may proceed, moving an expired open breaker
// to half-open.
func (cb *CircuitBreaker) Allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateOpen && cb.now().Sub(cb.lastFailureTime) > cb.config.ResetTimeout {
		cb.state = StateHalfOpen
		cb.halfOpenSuccesses = 0
	}
	return cb.state != StateOpen
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateHalfOpen:
		cb.halfOpenSuccesses++
		if cb.halfOpenSuccesses >= cb.config.HalfOpenMaxSucc {
			cb.state = StateClosed
			cb.failures = 0
			cb.halfOpenSuccesses = 0
		}
	case StateClosed:
		cb.failures = 0
	}
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.lastFailureTime = cb.now()

	switch cb.state {
	case StateHalfOpen:
		cb.state = StateOpen
		cb.halfOpenSuccesses = 0
	case StateClosed:
		cb.failures++
		if cb.failures >= cb.config.MaxFailures {
			cb.state = StateOpen
		}
	}
}

func (cb *CircuitBreaker) State() BreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// guardedTransactionRepository fails fast while the register keeps erroring
type guardedTransactionRepository struct {
	repositories.TransactionRepositoryInterface
	breaker *CircuitBreaker
}

// GuardTransactionRepository wraps the register queries with a breaker.
// Not-found results and cancelled requests do not count as failures.
func GuardTransactionRepository(repo repositories.TransactionRepositoryInterface, breaker *CircuitBreaker) repositories.TransactionRepositoryInterface {
	return &guardedTransactionRepository{TransactionRepositoryInterface: repo, breaker: breaker}
}

func (g *guardedTransactionRepository) Search(ctx context.Context, predicate search.Predicate, offset, limit int) ([]models.Transaction, int64, error) {
	if !g.breaker.Allow() {
		return nil, 0, ErrRegisterUnavailable
	}
	rows, total, err := g.TransactionRepositoryInterface.Search(ctx, predicate, offset, limit)
	g.record(ctx, err)
	return rows, total, err
}

func (g *guardedTransactionRepository) GetByID(ctx context.Context, id int64) (*models.Transaction, error) {
	if !g.breaker.Allow() {
		return nil, ErrRegisterUnavailable
	}
	tx, err := g.TransactionRepositoryInterface.GetByID(ctx, id)
	g.record(ctx, err)
	return tx, err
}

func (g *guardedTransactionRepository) record(ctx context.Context, err error) {
	switch {
	case err == nil, errors.Is(err, repositories.ErrTransactionNotFound):
		g.breaker.RecordSuccess()
	case ctx.Err() != nil:
	default:
		g.breaker.RecordFailure()
	}
}
