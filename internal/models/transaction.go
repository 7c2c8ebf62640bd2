package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransCodeDeposit    = "Deposit"
	TransCodeWithdrawal = "Withdrawal"
	TransCodeTransfer   = "Transfer"

	TransactionStatusNone       = "N"
	TransactionStatusReconciled = "R"
	TransactionStatusVoid       = "V"
	TransactionStatusFollowUp   = "F"
	TransactionStatusDuplicate  = "D"

	// TransDateLayout is the stored trans_date form.
	TransDateLayout = "2006-01-02"
)

var (
	ErrInvalidTransCode         = errors.New("invalid transaction code")
	ErrInvalidTransactionStatus = errors.New("invalid transaction status")
	ErrInvalidAmount            = errors.New("transaction amount cannot be negative")
	ErrInvalidTransDate         = errors.New("transaction date must be YYYY-MM-DD")
	ErrTransferTarget           = errors.New("transfers need a destination account other than the source")
	ErrUnexpectedTransferTarget = errors.New("only transfers have a destination account")
)

// Transaction is one row of the checking account register.
type Transaction struct {
	ID                int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	AccountID         int64           `gorm:"not null;index" json:"account_id"`
	ToAccountID       *int64          `gorm:"index" json:"to_account_id,omitempty"`
	TransCode         string          `gorm:"type:varchar(20);not null" json:"trans_code"`
	Status            string          `gorm:"type:varchar(1);not null;default:'N'" json:"status"`
	Amount            decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	ToAmount          decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"to_amount"`
	TransDate         string          `gorm:"type:varchar(10);not null;index" json:"trans_date"`
	PayeeID           *int64          `gorm:"index" json:"payee_id,omitempty"`
	CategoryID        *int64          `gorm:"index" json:"category_id,omitempty"`
	SubcategoryID     *int64          `json:"subcategory_id,omitempty"`
	TransactionNumber string          `gorm:"type:varchar(50)" json:"transaction_number,omitempty"`
	Notes             string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt         time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Splits []SplitTransaction `gorm:"foreignKey:TransactionID" json:"splits,omitempty"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.Status == "" {
		t.Status = TransactionStatusNone
	}

	// Set timestamps if not already set (for tests)
	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.AccountID <= 0 {
		return errors.New("account ID is required")
	}

	if !IsValidTransCode(t.TransCode) {
		return ErrInvalidTransCode
	}

	if !IsValidTransactionStatus(t.Status) {
		return ErrInvalidTransactionStatus
	}

	if t.Amount.IsNegative() || t.ToAmount.IsNegative() {
		return ErrInvalidAmount
	}

	if _, err := time.Parse(TransDateLayout, t.TransDate); err != nil {
		return ErrInvalidTransDate
	}

	if t.IsTransfer() {
		if t.ToAccountID == nil || *t.ToAccountID == t.AccountID {
			return ErrTransferTarget
		}
	} else if t.ToAccountID != nil {
		return ErrUnexpectedTransferTarget
	}

	return nil
}

// IsTransfer returns true for transfers between two accounts
func (t *Transaction) IsTransfer() bool {
	return t.TransCode == TransCodeTransfer
}

// IsSplit returns true when the amount is allocated over split lines
func (t *Transaction) IsSplit() bool {
	return len(t.Splits) > 0
}

// SetDate stores the calendar date of d
func (t *Transaction) SetDate(d time.Time) {
	t.TransDate = d.Format(TransDateLayout)
}

// Date parses the stored transaction date
func (t *Transaction) Date() (time.Time, error) {
	return time.Parse(TransDateLayout, t.TransDate)
}

// SplitTotal sums the split line amounts
func (t *Transaction) SplitTotal() decimal.Decimal {
	total := decimal.Zero
	for _, s := range t.Splits {
		total = total.Add(s.Amount)
	}
	return total
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransCode checks if the transaction code is valid
func IsValidTransCode(code string) bool {
	switch code {
	case TransCodeDeposit, TransCodeWithdrawal, TransCodeTransfer:
		return true
	default:
		return false
	}
}

// IsValidTransactionStatus checks if the transaction status is valid
func IsValidTransactionStatus(status string) bool {
	switch status {
	case TransactionStatusNone, TransactionStatusReconciled, TransactionStatusVoid,
		TransactionStatusFollowUp, TransactionStatusDuplicate:
		return true
	default:
		return false
	}
}
