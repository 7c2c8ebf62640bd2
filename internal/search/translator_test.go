package search

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTranslate(t *testing.T, c Criteria) Predicate {
	t.Helper()
	p, err := Translate(c)
	require.NoError(t, err)
	return p
}

func TestTranslate_EmptyCriteriaMatchesAll(t *testing.T) {
	p := mustTranslate(t, Criteria{})

	assert.True(t, p.IsEmpty())
	assert.Equal(t, "1 = 1", p.Text())
	assert.Empty(t, p.Args())
}

func TestTranslate_Account(t *testing.T) {
	p := mustTranslate(t, Criteria{AccountID: Ptr(int64(7))})

	require.Len(t, p.Conditions, 1)
	assert.Equal(t, "(accountId = ? OR toAccountId = ?)", p.Text())
	assert.Equal(t, []interface{}{int64(7), int64(7)}, p.Args())
}

func TestTranslate_AccountNotSetIsIgnored(t *testing.T) {
	p := mustTranslate(t, Criteria{AccountID: Ptr(NotSet)})

	assert.True(t, p.IsEmpty())
}

func TestTranslate_TransactionTypes(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		text     string
		args     []interface{}
	}{
		{
			name:     "deposit only",
			criteria: Criteria{IncludeDeposit: true},
			text:     "transactionType IN (?)",
			args:     []interface{}{"Deposit"},
		},
		{
			name:     "deposit and withdrawal",
			criteria: Criteria{IncludeDeposit: true, IncludeWithdrawal: true},
			text:     "transactionType IN (?, ?)",
			args:     []interface{}{"Deposit", "Withdrawal"},
		},
		{
			name:     "all three",
			criteria: Criteria{IncludeDeposit: true, IncludeTransfer: true, IncludeWithdrawal: true},
			text:     "transactionType IN (?, ?, ?)",
			args:     []interface{}{"Deposit", "Transfer", "Withdrawal"},
		},
		{
			name:     "none",
			criteria: Criteria{},
			text:     "1 = 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustTranslate(t, tt.criteria)
			assert.Equal(t, tt.text, p.Text())
			assert.Equal(t, len(tt.args), len(p.Args()))
			for i, want := range tt.args {
				assert.Equal(t, want, p.Args()[i])
				assert.NotEqual(t, "", p.Args()[i])
			}
		})
	}
}

func TestTranslate_Status(t *testing.T) {
	p := mustTranslate(t, Criteria{Status: "R"})
	assert.Equal(t, "status = ?", p.Text())
	assert.Equal(t, []interface{}{"R"}, p.Args())

	p = mustTranslate(t, Criteria{Status: StatusUnset})
	assert.True(t, p.IsEmpty())
}

func TestTranslate_AmountRange(t *testing.T) {
	from := decimal.RequireFromString("10.00")
	to := decimal.RequireFromString("50.00")

	p := mustTranslate(t, Criteria{AmountFrom: &from, AmountTo: &to})

	assert.Equal(t, "amount >= ? AND amount <= ?", p.Text())
	args := p.Args()
	require.Len(t, args, 2)
	assert.Equal(t, "10", args[0].(decimal.Decimal).String())
	assert.Equal(t, "50", args[1].(decimal.Decimal).String())

	only := mustTranslate(t, Criteria{AmountTo: &to})
	assert.Equal(t, "amount <= ?", only.Text())
}

func TestTranslate_DateRangeIsISO(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	from := time.Date(2024, time.January, 5, 18, 30, 0, 0, loc)
	to := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)

	p := mustTranslate(t, Criteria{DateFrom: &from, DateTo: &to})

	assert.Equal(t, "date >= ? AND date <= ?", p.Text())
	assert.Equal(t, []interface{}{"2024-01-05", "2024-12-31"}, p.Args())
}

func TestTranslate_Payee(t *testing.T) {
	p := mustTranslate(t, Criteria{PayeeID: Ptr(int64(12))})

	assert.Equal(t, "payeeId = ?", p.Text())
	assert.Equal(t, []interface{}{int64(12)}, p.Args())
}

func TestTranslate_CategoryWithoutSubcategory(t *testing.T) {
	p := mustTranslate(t, Criteria{Category: &CategorySub{CategoryID: 3, CategoryName: "Food", SubcategoryID: NotSet}})

	require.Len(t, p.Conditions, 1)
	assert.Equal(t, "(categoryId = ? OR ? IN (SELECT categoryId FROM splits WHERE transactionId = id))", p.Text())
	assert.Equal(t, []interface{}{int64(3), int64(3)}, p.Args())
	assert.NotContains(t, p.Text(), string(FieldSubcategoryID))
}

func TestTranslate_CategoryWithSubcategory(t *testing.T) {
	p := mustTranslate(t, Criteria{Category: &CategorySub{CategoryID: 3, SubcategoryID: 9}})

	require.Len(t, p.Conditions, 2)
	assert.Equal(t,
		"(categoryId = ? OR ? IN (SELECT categoryId FROM splits WHERE transactionId = id)) AND "+
			"(subcategoryId = ? OR ? IN (SELECT subcategoryId FROM splits WHERE transactionId = id))",
		p.Text())
	assert.Equal(t, []interface{}{int64(3), int64(3), int64(9), int64(9)}, p.Args())
}

func TestTranslate_TextMatchesAreEscapedAndBound(t *testing.T) {
	p := mustTranslate(t, Criteria{TransactionNumber: "CHK_1", Notes: "50% off"})

	assert.Equal(t,
		`LOWER(transactionNumber) LIKE LOWER(?) ESCAPE '\' AND LOWER(notes) LIKE LOWER(?) ESCAPE '\'`,
		p.Text())
	assert.Equal(t, []interface{}{`%CHK\_1%`, `%50\% off%`}, p.Args())
}

func TestTranslate_QuoteInNotesStaysInArgs(t *testing.T) {
	p := mustTranslate(t, Criteria{Notes: "o'brien'); DROP TABLE transactions; --"})

	assert.NotContains(t, p.Text(), "brien")
	assert.Equal(t, []interface{}{"%o'brien'); DROP TABLE transactions; --%"}, p.Args())
}

func TestTranslate_FullCriteriaOrderAndIdempotence(t *testing.T) {
	from := decimal.RequireFromString("1.5")
	dateFrom := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	c := Criteria{
		AccountID:         Ptr(int64(1)),
		IncludeWithdrawal: true,
		Status:            "F",
		AmountFrom:        &from,
		DateFrom:          &dateFrom,
		PayeeID:           Ptr(int64(4)),
		Category:          &CategorySub{CategoryID: 2, SubcategoryID: 5},
		TransactionNumber: "42",
		Notes:             "rent",
	}

	first := mustTranslate(t, c)
	second := mustTranslate(t, c)

	assert.Equal(t, first.String(), second.String())
	assert.Equal(t,
		"(accountId = ? OR toAccountId = ?) AND transactionType IN (?) AND status = ? AND amount >= ? AND "+
			"date >= ? AND payeeId = ? AND "+
			"(categoryId = ? OR ? IN (SELECT categoryId FROM splits WHERE transactionId = id)) AND "+
			"(subcategoryId = ? OR ? IN (SELECT subcategoryId FROM splits WHERE transactionId = id)) AND "+
			`LOWER(transactionNumber) LIKE LOWER(?) ESCAPE '\' AND LOWER(notes) LIKE LOWER(?) ESCAPE '\'`,
		first.Text())
	assert.Equal(t, []interface{}{
		int64(1), int64(1), "Withdrawal", "F", from, "2023-06-01", int64(4),
		int64(2), int64(2), int64(5), int64(5), "%42%", "%rent%",
	}, first.Args())
	assert.Equal(t, first.Args(), second.Args())
}

func TestTranslate_RendersPhysicalColumns(t *testing.T) {
	p := mustTranslate(t, Criteria{AccountID: Ptr(int64(3)), Category: &CategorySub{CategoryID: 8}})

	where, args := p.Where()

	assert.Equal(t,
		"(transactions.account_id = ? OR transactions.to_account_id = ?) AND "+
			"(transactions.category_id = ? OR ? IN (SELECT split_transactions.category_id FROM split_transactions "+
			"WHERE split_transactions.transaction_id = transactions.id))",
		where)
	assert.Equal(t, []interface{}{int64(3), int64(3), int64(8), int64(8)}, args)
}

func TestTranslate_InvalidCriteria(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		field    string
	}{
		{"negative account", Criteria{AccountID: Ptr(int64(-5))}, "account_id"},
		{"zero payee", Criteria{PayeeID: Ptr(int64(0))}, "payee_id"},
		{"unknown status", Criteria{Status: "Z"}, "status"},
		{"category without id", Criteria{Category: &CategorySub{CategoryName: "Food"}}, "category_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Translate(tt.criteria)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidCriteria)

			var invalid *InvalidCriteriaError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.field, invalid.Field)
		})
	}
}

func TestCriteria_IsEmpty(t *testing.T) {
	assert.True(t, Criteria{}.IsEmpty())
	assert.True(t, Criteria{AccountID: Ptr(NotSet), PayeeID: Ptr(NotSet)}.IsEmpty())
	assert.False(t, Criteria{IncludeTransfer: true}.IsEmpty())
	assert.False(t, Criteria{Notes: "x"}.IsEmpty())
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off`, EscapeLike("50% off"))
	assert.Equal(t, `a\_b`, EscapeLike("a_b"))
	assert.Equal(t, `c:\\temp`, EscapeLike(`c:\temp`))
	assert.Equal(t, `plain`, EscapeLike("plain"))
	assert.Equal(t, `%it's%`, ContainsPattern("it's"))
}
