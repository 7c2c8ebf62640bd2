package services

import (
	"sort"
	"time"

	"mmex-search/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

const (
	maxSplitLines   = 3
	splitPercent    = 15
	transferPercent = 10
	depositPercent  = 20
	notesPercent    = 40
	numberPercent   = 25
)

var demoCategories = map[string][]string{
	"Automobile": {"Fuel", "Maintenance", "Parking"},
	"Bills":      {"Electricity", "Internet", "Rent", "Water"},
	"Food":       {"Dining Out", "Groceries"},
	"Income":     {"Bonus", "Salary"},
	"Leisure":    {"Books", "Movies", "Travel"},
	"Transfer":   {},
}

var demoAccounts = []models.Account{
	{Name: "Checking", Type: models.AccountTypeChecking, Favorite: true},
	{Name: "Savings", Type: models.AccountTypeTerm},
	{Name: "Visa", Type: models.AccountTypeCreditCard, Favorite: true},
	{Name: "Brokerage", Type: models.AccountTypeInvestment},
	{Name: "Old Mastercard", Type: models.AccountTypeCreditCard, Status: models.AccountStatusClosed},
}

// RegisterGenerator produces a believable register for demos and load tests.
// The same seed always yields the same register.
type RegisterGenerator struct {
	faker *gofakeit.Faker
}

// NewRegisterGenerator creates a generator seeded with seed
func NewRegisterGenerator(seed uint64) *RegisterGenerator {
	return &RegisterGenerator{faker: gofakeit.New(seed)}
}

// Accounts returns the demo accounts
func (g *RegisterGenerator) Accounts() []models.Account {
	out := make([]models.Account, len(demoAccounts))
	copy(out, demoAccounts)
	return out
}

// Payees returns count distinct payee names
func (g *RegisterGenerator) Payees(count int) []models.Payee {
	seen := make(map[string]bool, count)
	payees := make([]models.Payee, 0, count)
	for attempts := 0; len(payees) < count && attempts < count*10; attempts++ {
		name := g.faker.Company()
		if seen[name] {
			continue
		}
		seen[name] = true
		payees = append(payees, models.Payee{Name: name})
	}
	return payees
}

// Categories returns the demo category tree ordered by name
func (g *RegisterGenerator) Categories() []models.Category {
	names := make([]string, 0, len(demoCategories))
	for name := range demoCategories {
		names = append(names, name)
	}
	sort.Strings(names)

	categories := make([]models.Category, 0, len(names))
	for _, name := range names {
		category := models.Category{Name: name}
		for _, sub := range demoCategories[name] {
			category.Subcategories = append(category.Subcategories, models.Subcategory{Name: sub})
		}
		categories = append(categories, category)
	}
	return categories
}

// Transactions books count transactions dated between from and to against
// stored accounts, payees and categories. Transfers need two open accounts.
func (g *RegisterGenerator) Transactions(accounts []models.Account, payees []models.Payee, categories []models.Category, from, to time.Time, count int) []models.Transaction {
	open := make([]models.Account, 0, len(accounts))
	for _, a := range accounts {
		if a.Status != models.AccountStatusClosed {
			open = append(open, a)
		}
	}
	if len(open) == 0 || len(payees) == 0 || len(categories) == 0 {
		return nil
	}

	txs := make([]models.Transaction, 0, count)
	for i := 0; i < count; i++ {
		tx := models.Transaction{
			AccountID: open[g.faker.IntRange(0, len(open)-1)].ID,
			Status:    g.status(),
			Amount:    g.amount(1, 500),
		}
		tx.SetDate(g.faker.DateRange(from, to))

		switch roll := g.faker.IntRange(1, 100); {
		case roll <= transferPercent && len(open) > 1:
			g.transfer(&tx, open)
		case roll <= transferPercent+depositPercent:
			tx.TransCode = models.TransCodeDeposit
			g.payee(&tx, payees)
			g.categorise(&tx, categories)
		default:
			tx.TransCode = models.TransCodeWithdrawal
			g.payee(&tx, payees)
			g.categorise(&tx, categories)
		}

		if g.faker.IntRange(1, 100) <= notesPercent {
			tx.Notes = g.faker.Sentence(4)
		}
		if g.faker.IntRange(1, 100) <= numberPercent {
			tx.TransactionNumber = g.faker.Numerify("######")
		}
		txs = append(txs, tx)
	}
	return txs
}

func (g *RegisterGenerator) status() string {
	statuses := []string{
		models.TransactionStatusNone, models.TransactionStatusNone, models.TransactionStatusReconciled,
		models.TransactionStatusReconciled, models.TransactionStatusReconciled, models.TransactionStatusVoid,
		models.TransactionStatusFollowUp, models.TransactionStatusDuplicate,
	}
	return statuses[g.faker.IntRange(0, len(statuses)-1)]
}

func (g *RegisterGenerator) amount(min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(g.faker.Float64Range(min, max)).Round(2)
}

func (g *RegisterGenerator) transfer(tx *models.Transaction, open []models.Account) {
	tx.TransCode = models.TransCodeTransfer
	for {
		target := open[g.faker.IntRange(0, len(open)-1)].ID
		if target != tx.AccountID {
			tx.ToAccountID = &target
			break
		}
	}
	tx.ToAmount = tx.Amount
}

func (g *RegisterGenerator) payee(tx *models.Transaction, payees []models.Payee) {
	id := payees[g.faker.IntRange(0, len(payees)-1)].ID
	tx.PayeeID = &id
}

// categorise sets a category, or spreads the amount over split lines.
// Split lines always sum to the transaction amount.
func (g *RegisterGenerator) categorise(tx *models.Transaction, categories []models.Category) {
	if g.faker.IntRange(1, 100) > splitPercent {
		categoryID, subcategoryID := g.category(categories)
		tx.CategoryID = &categoryID
		tx.SubcategoryID = subcategoryID
		return
	}

	lines := g.faker.IntRange(2, maxSplitLines)
	remaining := tx.Amount
	for i := 0; i < lines; i++ {
		categoryID, subcategoryID := g.category(categories)
		share := remaining
		if i < lines-1 {
			share = remaining.Div(decimal.NewFromInt(int64(lines - i))).Round(2)
		}
		remaining = remaining.Sub(share)
		tx.Splits = append(tx.Splits, models.SplitTransaction{
			CategoryID:    categoryID,
			SubcategoryID: subcategoryID,
			Amount:        share,
		})
	}
}

func (g *RegisterGenerator) category(categories []models.Category) (int64, *int64) {
	category := categories[g.faker.IntRange(0, len(categories)-1)]
	if len(category.Subcategories) == 0 || g.faker.Bool() {
		return category.ID, nil
	}
	sub := category.Subcategories[g.faker.IntRange(0, len(category.Subcategories)-1)].ID
	return category.ID, &sub
}
