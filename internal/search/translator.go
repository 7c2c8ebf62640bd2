package search

import (
	"strconv"
	"time"

	"mmex-search/internal/models"
)

// ISODateLayout is the canonical stored date form. Lexical order of values in
// this layout is chronological order.
const ISODateLayout = "2006-01-02"

// Translate converts criteria into a predicate. Conditions are emitted in a
// fixed field order so identical criteria always render identically.
func Translate(c Criteria) (Predicate, error) {
	if err := validate(c); err != nil {
		return Predicate{}, err
	}

	var conds And

	if c.HasAccount() {
		conds = append(conds, Or{
			Compare{Field: FieldAccountID, Op: OpEqual, Value: *c.AccountID},
			Compare{Field: FieldToAccountID, Op: OpEqual, Value: *c.AccountID},
		})
	}

	if types := c.TransactionTypes(); len(types) > 0 {
		values := make([]interface{}, len(types))
		for i, t := range types {
			values[i] = t
		}
		conds = append(conds, In{Field: FieldTransactionType, Values: values})
	}

	if c.Status != StatusUnset {
		conds = append(conds, Compare{Field: FieldStatus, Op: OpEqual, Value: c.Status})
	}

	if c.AmountFrom != nil {
		conds = append(conds, Compare{Field: FieldAmount, Op: OpGreaterOrEqual, Value: *c.AmountFrom})
	}
	if c.AmountTo != nil {
		conds = append(conds, Compare{Field: FieldAmount, Op: OpLessOrEqual, Value: *c.AmountTo})
	}

	if c.DateFrom != nil {
		conds = append(conds, Compare{Field: FieldDate, Op: OpGreaterOrEqual, Value: isoDate(*c.DateFrom)})
	}
	if c.DateTo != nil {
		conds = append(conds, Compare{Field: FieldDate, Op: OpLessOrEqual, Value: isoDate(*c.DateTo)})
	}

	if c.HasPayee() {
		conds = append(conds, Compare{Field: FieldPayeeID, Op: OpEqual, Value: *c.PayeeID})
	}

	if cat := c.Category; cat != nil {
		// A split line in the category counts as much as the primary category.
		conds = append(conds, Or{
			Compare{Field: FieldCategoryID, Op: OpEqual, Value: cat.CategoryID},
			InSplits{Field: FieldCategoryID, Value: cat.CategoryID},
		})
		if cat.HasSubcategory() {
			conds = append(conds, Or{
				Compare{Field: FieldSubcategoryID, Op: OpEqual, Value: cat.SubcategoryID},
				InSplits{Field: FieldSubcategoryID, Value: cat.SubcategoryID},
			})
		}
	}

	if c.TransactionNumber != "" {
		conds = append(conds, Match{Field: FieldTransactionNumber, Pattern: ContainsPattern(c.TransactionNumber)})
	}

	if c.Notes != "" {
		conds = append(conds, Match{Field: FieldNotes, Pattern: ContainsPattern(c.Notes)})
	}

	return Predicate{Conditions: conds}, nil
}

func validate(c Criteria) error {
	if c.AccountID != nil && *c.AccountID != NotSet && *c.AccountID <= 0 {
		return invalidCriteria("account_id", strconv.FormatInt(*c.AccountID, 10), "must be positive")
	}
	if c.Status != StatusUnset && !models.IsValidTransactionStatus(c.Status) {
		return invalidCriteria("status", c.Status, "unknown status")
	}
	if c.PayeeID != nil && *c.PayeeID != NotSet && *c.PayeeID <= 0 {
		return invalidCriteria("payee_id", strconv.FormatInt(*c.PayeeID, 10), "must be positive")
	}
	if c.Category != nil && c.Category.CategoryID <= 0 {
		return invalidCriteria("category_id", strconv.FormatInt(c.Category.CategoryID, 10), "must be positive")
	}
	return nil
}

func isoDate(t time.Time) string {
	return t.Format(ISODateLayout)
}
