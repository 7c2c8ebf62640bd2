package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

// SplitTransaction allocates part of a transaction to its own category.
type SplitTransaction struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	TransactionID int64           `gorm:"not null;index" json:"transaction_id"`
	CategoryID    int64           `gorm:"not null;index" json:"category_id"`
	SubcategoryID *int64          `json:"subcategory_id,omitempty"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
}

// Validate validates the split line
func (s *SplitTransaction) Validate() error {
	if s.CategoryID <= 0 {
		return errors.New("split category is required")
	}
	return nil
}

// TableName returns the table name for SplitTransaction
func (s *SplitTransaction) TableName() string {
	return "split_transactions"
}
