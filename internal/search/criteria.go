package search

import (
	"time"

	"mmex-search/internal/models"

	"github.com/shopspring/decimal"
)

// NotSet marks an identifier the user has not picked.
const NotSet int64 = -1

// StatusUnset leaves the transaction status unconstrained.
const StatusUnset = ""

// CategorySub is a picked category with an optional subcategory.
type CategorySub struct {
	CategoryID      int64  `json:"category_id"`
	CategoryName    string `json:"category_name,omitempty"`
	SubcategoryID   int64  `json:"subcategory_id"`
	SubcategoryName string `json:"subcategory_name,omitempty"`
}

// HasSubcategory reports whether a subcategory was picked as well.
// Non-positive ids, NotSet included, count as unset.
func (c CategorySub) HasSubcategory() bool {
	return c.SubcategoryID > 0
}

// Criteria holds the transaction search filters. Every field is optional and
// the zero value matches every transaction.
type Criteria struct {
	AccountID *int64 `json:"account_id,omitempty"`

	IncludeDeposit    bool `json:"include_deposit,omitempty"`
	IncludeTransfer   bool `json:"include_transfer,omitempty"`
	IncludeWithdrawal bool `json:"include_withdrawal,omitempty"`

	Status string `json:"status,omitempty"`

	AmountFrom *decimal.Decimal `json:"amount_from,omitempty"`
	AmountTo   *decimal.Decimal `json:"amount_to,omitempty"`

	DateFrom *time.Time `json:"date_from,omitempty"`
	DateTo   *time.Time `json:"date_to,omitempty"`

	PayeeID  *int64       `json:"payee_id,omitempty"`
	Category *CategorySub `json:"category,omitempty"`

	TransactionNumber string `json:"transaction_number,omitempty"`
	Notes             string `json:"notes,omitempty"`
}

// TransactionTypes returns the type labels selected by the include flags, in
// Deposit, Transfer, Withdrawal order.
func (c Criteria) TransactionTypes() []string {
	var types []string
	if c.IncludeDeposit {
		types = append(types, models.TransCodeDeposit)
	}
	if c.IncludeTransfer {
		types = append(types, models.TransCodeTransfer)
	}
	if c.IncludeWithdrawal {
		types = append(types, models.TransCodeWithdrawal)
	}
	return types
}

// HasAccount reports whether an account filter applies.
func (c Criteria) HasAccount() bool {
	return c.AccountID != nil && *c.AccountID != NotSet
}

// HasPayee reports whether a payee filter applies.
func (c Criteria) HasPayee() bool {
	return c.PayeeID != nil && *c.PayeeID != NotSet
}

// IsEmpty reports whether no field constrains the search.
func (c Criteria) IsEmpty() bool {
	return !c.HasAccount() &&
		len(c.TransactionTypes()) == 0 &&
		c.Status == StatusUnset &&
		c.AmountFrom == nil && c.AmountTo == nil &&
		c.DateFrom == nil && c.DateTo == nil &&
		!c.HasPayee() &&
		c.Category == nil &&
		c.TransactionNumber == "" &&
		c.Notes == ""
}

// Ptr returns a pointer to v. Handy for filling optional criteria fields.
func Ptr[T any](v T) *T {
	return &v
}
