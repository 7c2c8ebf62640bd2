package dto

import (
	"time"

	"mmex-search/internal/search"

	"github.com/google/uuid"
)

// SavedSearchRequest creates a named search
type SavedSearchRequest struct {
	Name     string      `json:"name" validate:"required,notblank,max=100"`
	Criteria search.Form `json:"criteria"`
}

// SavedSearchResponse is a stored search with its criteria written back as
// form text
type SavedSearchResponse struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Criteria  search.Form `json:"criteria"`
	CreatedAt time.Time   `json:"createdAt"`
}

// AccountResponse is an entry of the search form's account selector
type AccountResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Status   string `json:"status"`
	Favorite bool   `json:"favorite"`
}
