package search

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Locale controls how dates and amounts are written in form text. It is
// always passed in by the caller.
type Locale struct {
	DateLayout       string
	DecimalSeparator string
	GroupSeparator   string
}

// DefaultLocale writes ISO dates and dot-separated amounts.
func DefaultLocale() Locale {
	return Locale{
		DateLayout:       ISODateLayout,
		DecimalSeparator: ".",
	}
}

// Form is the text a search form surface holds: GUI fields, CLI flags or a
// JSON body.
type Form struct {
	AccountID         string `json:"account_id,omitempty"`
	Deposit           bool   `json:"deposit,omitempty"`
	Transfer          bool   `json:"transfer,omitempty"`
	Withdrawal        bool   `json:"withdrawal,omitempty"`
	Status            string `json:"status,omitempty" validate:"omitempty,oneof=N R V F D"`
	AmountFrom        string `json:"amount_from,omitempty" validate:"max=32"`
	AmountTo          string `json:"amount_to,omitempty" validate:"max=32"`
	DateFrom          string `json:"date_from,omitempty" validate:"max=32"`
	DateTo            string `json:"date_to,omitempty" validate:"max=32"`
	PayeeID           string `json:"payee_id,omitempty"`
	PayeeName         string `json:"payee_name,omitempty"`
	CategoryID        string `json:"category_id,omitempty"`
	CategoryName      string `json:"category_name,omitempty"`
	SubcategoryID     string `json:"subcategory_id,omitempty"`
	SubcategoryName   string `json:"subcategory_name,omitempty"`
	TransactionNumber string `json:"transaction_number,omitempty" validate:"max=50"`
	Notes             string `json:"notes,omitempty" validate:"max=255"`
}

// ParseForm reads criteria out of form text. Blank fields stay absent; text
// that cannot be read fails with an *InvalidCriteriaError.
func ParseForm(f Form, loc Locale) (Criteria, error) {
	var c Criteria
	var err error

	if c.AccountID, err = parseID("account_id", f.AccountID); err != nil {
		return Criteria{}, err
	}

	c.IncludeDeposit = f.Deposit
	c.IncludeTransfer = f.Transfer
	c.IncludeWithdrawal = f.Withdrawal
	c.Status = strings.TrimSpace(f.Status)

	if c.AmountFrom, err = parseAmount("amount_from", f.AmountFrom, loc); err != nil {
		return Criteria{}, err
	}
	if c.AmountTo, err = parseAmount("amount_to", f.AmountTo, loc); err != nil {
		return Criteria{}, err
	}

	if c.DateFrom, err = parseDate("date_from", f.DateFrom, loc); err != nil {
		return Criteria{}, err
	}
	if c.DateTo, err = parseDate("date_to", f.DateTo, loc); err != nil {
		return Criteria{}, err
	}

	if c.PayeeID, err = parseID("payee_id", f.PayeeID); err != nil {
		return Criteria{}, err
	}

	categoryID, err := parseID("category_id", f.CategoryID)
	if err != nil {
		return Criteria{}, err
	}
	subcategoryID, err := parseID("subcategory_id", f.SubcategoryID)
	if err != nil {
		return Criteria{}, err
	}
	switch {
	case categoryID != nil:
		c.Category = &CategorySub{
			CategoryID:    *categoryID,
			CategoryName:  f.CategoryName,
			SubcategoryID: NotSet,
		}
		if subcategoryID != nil {
			c.Category.SubcategoryID = *subcategoryID
			c.Category.SubcategoryName = f.SubcategoryName
		}
	case subcategoryID != nil:
		return Criteria{}, invalidCriteria("subcategory_id", f.SubcategoryID, "subcategory requires a category")
	}

	c.TransactionNumber = strings.TrimSpace(f.TransactionNumber)
	c.Notes = strings.TrimSpace(f.Notes)

	return c, nil
}

// FormFromCriteria writes criteria back out as form text. ParseForm on the
// result with the same locale yields equivalent criteria.
func FormFromCriteria(c Criteria, loc Locale) Form {
	f := Form{
		Deposit:           c.IncludeDeposit,
		Transfer:          c.IncludeTransfer,
		Withdrawal:        c.IncludeWithdrawal,
		Status:            c.Status,
		TransactionNumber: c.TransactionNumber,
		Notes:             c.Notes,
	}
	if c.HasAccount() {
		f.AccountID = strconv.FormatInt(*c.AccountID, 10)
	}
	if c.AmountFrom != nil {
		f.AmountFrom = formatAmount(*c.AmountFrom, loc)
	}
	if c.AmountTo != nil {
		f.AmountTo = formatAmount(*c.AmountTo, loc)
	}
	if c.DateFrom != nil {
		f.DateFrom = c.DateFrom.Format(loc.dateLayout())
	}
	if c.DateTo != nil {
		f.DateTo = c.DateTo.Format(loc.dateLayout())
	}
	if c.HasPayee() {
		f.PayeeID = strconv.FormatInt(*c.PayeeID, 10)
	}
	if cat := c.Category; cat != nil {
		f.CategoryID = strconv.FormatInt(cat.CategoryID, 10)
		f.CategoryName = cat.CategoryName
		if cat.HasSubcategory() {
			f.SubcategoryID = strconv.FormatInt(cat.SubcategoryID, 10)
			f.SubcategoryName = cat.SubcategoryName
		}
	}
	return f
}

func (l Locale) dateLayout() string {
	if l.DateLayout == "" {
		return ISODateLayout
	}
	return l.DateLayout
}

func parseID(field, text string) (*int64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, invalidCriteria(field, text, "not an integer")
	}
	if id == NotSet {
		return nil, nil
	}
	if id <= 0 {
		return nil, invalidCriteria(field, text, "must be positive")
	}
	return &id, nil
}

func parseAmount(field, text string, loc Locale) (*decimal.Decimal, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	normalized := text
	if loc.GroupSeparator != "" {
		normalized = strings.ReplaceAll(normalized, loc.GroupSeparator, "")
	}
	if loc.DecimalSeparator != "" && loc.DecimalSeparator != "." {
		normalized = strings.ReplaceAll(normalized, loc.DecimalSeparator, ".")
	}
	amount, err := decimal.NewFromString(normalized)
	if err != nil {
		return nil, invalidCriteria(field, text, "not a number")
	}
	return &amount, nil
}

// parseDate accepts the locale layout and falls back to ISO. The result is
// midnight UTC of the calendar date.
func parseDate(field, text string, loc Locale) (*time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	t, err := time.Parse(loc.dateLayout(), text)
	if err != nil {
		if t, err = time.Parse(ISODateLayout, text); err != nil {
			return nil, invalidCriteria(field, text, "not a date")
		}
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &day, nil
}

func formatAmount(d decimal.Decimal, loc Locale) string {
	text := d.String()
	if d.Exponent() >= -2 {
		text = d.StringFixed(2)
	}
	if loc.DecimalSeparator != "" && loc.DecimalSeparator != "." {
		text = strings.Replace(text, ".", loc.DecimalSeparator, 1)
	}
	return text
}
