package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"mmex-search/internal/search"

	"github.com/shopspring/decimal"
)

var ErrInvalidSnapshot = errors.New("invalid search session snapshot")

// SearchListener receives the predicate of every submitted search
type SearchListener func(ctx context.Context, predicate search.Predicate)

type listenerEntry struct {
	id uint64
	fn SearchListener
}

// SearchSession holds the criteria a user is editing in a search form.
// Picker results land through the typed setters and listeners registered
// with OnSearch receive the translated predicate on Submit. It is safe for
// concurrent use.
type SearchSession struct {
	mu        sync.Mutex
	criteria  search.Criteria
	locale    search.Locale
	listeners []listenerEntry
	nextID    uint64
}

// NewSearchSession creates an empty session reading form text with loc
func NewSearchSession(loc search.Locale) *SearchSession {
	return &SearchSession{locale: loc}
}

// SelectAccount filters on one account. NotSet clears the filter.
func (s *SearchSession) SelectAccount(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == search.NotSet {
		s.criteria.AccountID = nil
		return
	}
	s.criteria.AccountID = search.Ptr(id)
}

func (s *SearchSession) ClearAccount() {
	s.SelectAccount(search.NotSet)
}

func (s *SearchSession) SetTransactionTypes(deposit, transfer, withdrawal bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.IncludeDeposit = deposit
	s.criteria.IncludeTransfer = transfer
	s.criteria.IncludeWithdrawal = withdrawal
}

// SetStatus filters on a status code. search.StatusUnset clears the filter.
func (s *SearchSession) SetStatus(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.Status = strings.TrimSpace(status)
}

// SetAmountRange sets the inclusive amount bounds. A nil bound is open.
func (s *SearchSession) SetAmountRange(from, to *decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.AmountFrom = cloneDecimal(from)
	s.criteria.AmountTo = cloneDecimal(to)
}

// SetDateRange sets the inclusive date bounds. Only the calendar date of
// each bound is kept.
func (s *SearchSession) SetDateRange(from, to *time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.DateFrom = calendarDate(from)
	s.criteria.DateTo = calendarDate(to)
}

// PickPayee applies the payee chosen in the payee picker
func (s *SearchSession) PickPayee(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == search.NotSet {
		s.criteria.PayeeID = nil
		return
	}
	s.criteria.PayeeID = search.Ptr(id)
}

func (s *SearchSession) ClearPayee() {
	s.PickPayee(search.NotSet)
}

// PickCategory applies the category chosen in the category picker. A
// SubcategoryID of NotSet constrains the category alone.
func (s *SearchSession) PickCategory(pick search.CategorySub) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pick.CategoryID == search.NotSet {
		s.criteria.Category = nil
		return
	}
	s.criteria.Category = &pick
}

func (s *SearchSession) ClearCategory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.Category = nil
}

func (s *SearchSession) SetTransactionNumber(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.TransactionNumber = strings.TrimSpace(text)
}

func (s *SearchSession) SetNotes(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.Notes = strings.TrimSpace(text)
}

// Reset clears every filter. Listeners stay registered.
func (s *SearchSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria = search.Criteria{}
}

// ApplyForm replaces the criteria with the parsed form. On error the
// session keeps its previous criteria.
func (s *SearchSession) ApplyForm(form search.Form) error {
	criteria, err := search.ParseForm(form, s.locale)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria = criteria
	return nil
}

// Form writes the current criteria back out as form text
func (s *SearchSession) Form() search.Form {
	return search.FormFromCriteria(s.Criteria(), s.locale)
}

// Criteria returns a copy of the current criteria
func (s *SearchSession) Criteria() search.Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneCriteria(s.criteria)
}

// OnSearch registers a listener for submitted searches. The returned func
// unregisters it and may be called more than once.
func (s *SearchSession) OnSearch(listener SearchListener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: listener})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, entry := range s.listeners {
				if entry.id == id {
					s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

// Submit translates the current criteria and hands the predicate to every
// registered listener in registration order. Listeners are not called when
// the criteria are invalid.
func (s *SearchSession) Submit(ctx context.Context) (search.Predicate, error) {
	s.mu.Lock()
	criteria := cloneCriteria(s.criteria)
	listeners := make([]SearchListener, 0, len(s.listeners))
	for _, entry := range s.listeners {
		listeners = append(listeners, entry.fn)
	}
	s.mu.Unlock()

	predicate, err := search.Translate(criteria)
	if err != nil {
		return search.Predicate{}, err
	}
	for _, listener := range listeners {
		listener(ctx, predicate)
	}
	return predicate, nil
}

// WhereStatement renders the current criteria as a WHERE clause over the
// register tables
func (s *SearchSession) WhereStatement() (string, []interface{}, error) {
	predicate, err := search.Translate(s.Criteria())
	if err != nil {
		return "", nil, err
	}
	where, args := predicate.Where()
	return where, args, nil
}

// Snapshot serialises the criteria so the session can be restored later
func (s *SearchSession) Snapshot() ([]byte, error) {
	data, err := json.Marshal(s.Criteria())
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot search session: %w", err)
	}
	return data, nil
}

// RestoreSession rebuilds a session from Snapshot output. Listeners are not
// part of a snapshot.
func RestoreSession(data []byte, loc search.Locale) (*SearchSession, error) {
	var criteria search.Criteria
	if err := json.Unmarshal(data, &criteria); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	session := NewSearchSession(loc)
	session.criteria = criteria
	return session, nil
}

func cloneCriteria(c search.Criteria) search.Criteria {
	out := c
	if c.AccountID != nil {
		out.AccountID = search.Ptr(*c.AccountID)
	}
	out.AmountFrom = cloneDecimal(c.AmountFrom)
	out.AmountTo = cloneDecimal(c.AmountTo)
	if c.DateFrom != nil {
		out.DateFrom = search.Ptr(*c.DateFrom)
	}
	if c.DateTo != nil {
		out.DateTo = search.Ptr(*c.DateTo)
	}
	if c.PayeeID != nil {
		out.PayeeID = search.Ptr(*c.PayeeID)
	}
	if c.Category != nil {
		out.Category = search.Ptr(*c.Category)
	}
	return out
}

func cloneDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	return search.Ptr(*d)
}

func calendarDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	return search.Ptr(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
}
