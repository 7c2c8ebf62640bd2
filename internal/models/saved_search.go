package models

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSavedSearchNameRequired = errors.New("saved search name is required")
	ErrSavedSearchNameTooLong  = errors.New("saved search name too long")
	ErrSavedSearchCriteria     = errors.New("saved search criteria must be a JSON object")
)

// SavedSearch is a named set of search criteria stored as JSON
type SavedSearch struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Criteria  string    `gorm:"type:text;not null" json:"-"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for SavedSearch
func (s *SavedSearch) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	now := time.Now()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = now
	}

	return s.Validate()
}

// Validate validates the saved search fields
func (s *SavedSearch) Validate() error {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return ErrSavedSearchNameRequired
	}
	if len(name) > 100 {
		return ErrSavedSearchNameTooLong
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s.Criteria), &obj); err != nil || obj == nil {
		return ErrSavedSearchCriteria
	}
	return nil
}

// TableName returns the table name for SavedSearch
func (s *SavedSearch) TableName() string {
	return "saved_searches"
}
