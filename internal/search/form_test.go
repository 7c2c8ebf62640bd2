package search

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var europeanLocale = Locale{
	DateLayout:       "02.01.2006",
	DecimalSeparator: ",",
	GroupSeparator:   ".",
}

func TestParseForm_BlankFormIsEmpty(t *testing.T) {
	c, err := ParseForm(Form{AccountID: "  ", Notes: "   "}, DefaultLocale())

	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}

func TestParseForm_AllFields(t *testing.T) {
	f := Form{
		AccountID:         "4",
		Withdrawal:        true,
		Status:            "R",
		AmountFrom:        "10.5",
		AmountTo:          " 99.99 ",
		DateFrom:          "2024-01-01",
		DateTo:            "2024-03-31",
		PayeeID:           "8",
		CategoryID:        "2",
		CategoryName:      "Bills",
		SubcategoryID:     "6",
		SubcategoryName:   "Electricity",
		TransactionNumber: " 1001 ",
		Notes:             "power",
	}

	c, err := ParseForm(f, DefaultLocale())
	require.NoError(t, err)

	assert.Equal(t, int64(4), *c.AccountID)
	assert.True(t, c.IncludeWithdrawal)
	assert.False(t, c.IncludeDeposit)
	assert.Equal(t, "R", c.Status)
	assert.True(t, decimal.RequireFromString("10.5").Equal(*c.AmountFrom))
	assert.True(t, decimal.RequireFromString("99.99").Equal(*c.AmountTo))
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *c.DateFrom)
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), *c.DateTo)
	assert.Equal(t, int64(8), *c.PayeeID)
	require.NotNil(t, c.Category)
	assert.Equal(t, CategorySub{CategoryID: 2, CategoryName: "Bills", SubcategoryID: 6, SubcategoryName: "Electricity"}, *c.Category)
	assert.Equal(t, "1001", c.TransactionNumber)
	assert.Equal(t, "power", c.Notes)
}

func TestParseForm_NotSetIDsAreAbsent(t *testing.T) {
	c, err := ParseForm(Form{AccountID: "-1", PayeeID: "-1"}, DefaultLocale())

	require.NoError(t, err)
	assert.Nil(t, c.AccountID)
	assert.Nil(t, c.PayeeID)
}

func TestParseForm_CategoryWithoutSubcategory(t *testing.T) {
	c, err := ParseForm(Form{CategoryID: "5", CategoryName: "Food", SubcategoryName: "ignored"}, DefaultLocale())

	require.NoError(t, err)
	require.NotNil(t, c.Category)
	assert.Equal(t, NotSet, c.Category.SubcategoryID)
	assert.Empty(t, c.Category.SubcategoryName)
	assert.False(t, c.Category.HasSubcategory())
}

func TestParseForm_LocaleSeparators(t *testing.T) {
	c, err := ParseForm(Form{AmountFrom: "1.234,50", DateFrom: "05.02.2024"}, europeanLocale)

	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1234.50").Equal(*c.AmountFrom))
	assert.Equal(t, time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC), *c.DateFrom)
}

func TestParseForm_ISODateFallback(t *testing.T) {
	c, err := ParseForm(Form{DateTo: "2024-02-05"}, europeanLocale)

	require.NoError(t, err)
	assert.Equal(t, "2024-02-05", c.DateTo.Format(ISODateLayout))
}

func TestParseForm_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		form  Form
		field string
	}{
		{"account not a number", Form{AccountID: "abc"}, "account_id"},
		{"zero account", Form{AccountID: "0"}, "account_id"},
		{"negative payee", Form{PayeeID: "-7"}, "payee_id"},
		{"amount not a number", Form{AmountFrom: "ten"}, "amount_from"},
		{"amount with two dots", Form{AmountTo: "1.2.3"}, "amount_to"},
		{"impossible date", Form{DateFrom: "2024-02-30"}, "date_from"},
		{"date garbage", Form{DateTo: "yesterday"}, "date_to"},
		{"category not a number", Form{CategoryID: "x"}, "category_id"},
		{"subcategory without category", Form{SubcategoryID: "3"}, "subcategory_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseForm(tt.form, DefaultLocale())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidCriteria)

			var invalid *InvalidCriteriaError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.field, invalid.Field)
		})
	}
}

func TestFormFromCriteria_RoundTrip(t *testing.T) {
	from := decimal.RequireFromString("1234.5")
	to := decimal.RequireFromString("0.125")
	dateFrom := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	original := Criteria{
		AccountID:       Ptr(int64(3)),
		IncludeDeposit:  true,
		IncludeTransfer: true,
		Status:          "V",
		AmountFrom:      &from,
		AmountTo:        &to,
		DateFrom:        &dateFrom,
		PayeeID:         Ptr(NotSet),
		Category:        &CategorySub{CategoryID: 9, CategoryName: "Travel", SubcategoryID: NotSet},
		Notes:           "hotel",
	}

	for _, loc := range []Locale{DefaultLocale(), europeanLocale} {
		f := FormFromCriteria(original, loc)
		assert.Empty(t, f.PayeeID)
		assert.Empty(t, f.SubcategoryID)

		back, err := ParseForm(f, loc)
		require.NoError(t, err)

		assert.Equal(t, *original.AccountID, *back.AccountID)
		assert.Nil(t, back.PayeeID)
		assert.True(t, from.Equal(*back.AmountFrom))
		assert.True(t, to.Equal(*back.AmountTo))
		assert.True(t, dateFrom.Equal(*back.DateFrom))
		assert.Equal(t, *original.Category, *back.Category)

		want, err := Translate(original)
		require.NoError(t, err)
		got, err := Translate(back)
		require.NoError(t, err)
		assert.Equal(t, want.Text(), got.Text())
	}
}

func TestFormFromCriteria_AmountText(t *testing.T) {
	amount := decimal.RequireFromString("1234.5")

	assert.Equal(t, "1234.50", FormFromCriteria(Criteria{AmountFrom: &amount}, DefaultLocale()).AmountFrom)
	assert.Equal(t, "1234,50", FormFromCriteria(Criteria{AmountFrom: &amount}, europeanLocale).AmountFrom)
}

func TestForm_ValidateTags(t *testing.T) {
	v := validator.New()

	assert.NoError(t, v.Struct(Form{Status: "D"}))
	assert.NoError(t, v.Struct(Form{}))
	assert.Error(t, v.Struct(Form{Status: "Q"}))
}
