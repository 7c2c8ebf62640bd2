package models

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	AccountTypeChecking   = "Checking"
	AccountTypeTerm       = "Term"
	AccountTypeCreditCard = "Credit Card"
	AccountTypeInvestment = "Investment"

	AccountStatusOpen   = "Open"
	AccountStatusClosed = "Closed"
)

var (
	ErrInvalidAccountType   = errors.New("invalid account type")
	ErrInvalidAccountStatus = errors.New("invalid account status")
	ErrAccountNameRequired  = errors.New("account name is required")
)

// Account is a register transactions are booked against
type Account struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Type      string    `gorm:"type:varchar(20);not null;default:'Checking'" json:"type"`
	Status    string    `gorm:"type:varchar(10);not null;default:'Open'" json:"status"`
	Favorite  bool      `gorm:"not null;default:false" json:"favorite"`
	Currency  string    `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.Type == "" {
		a.Type = AccountTypeChecking
	}
	if a.Status == "" {
		a.Status = AccountStatusOpen
	}
	if a.Currency == "" {
		a.Currency = "USD"
	}

	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrAccountNameRequired
	}
	if !IsValidAccountType(a.Type) {
		return ErrInvalidAccountType
	}
	if a.Status != AccountStatusOpen && a.Status != AccountStatusClosed {
		return ErrInvalidAccountStatus
	}
	return nil
}

// IsOpen returns true if the account is open
func (a *Account) IsOpen() bool {
	return a.Status == AccountStatusOpen
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

// IsValidAccountType checks if the account type is valid
func IsValidAccountType(accountType string) bool {
	switch accountType {
	case AccountTypeChecking, AccountTypeTerm, AccountTypeCreditCard, AccountTypeInvestment:
		return true
	default:
		return false
	}
}
