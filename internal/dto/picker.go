package dto

import "mmex-search/internal/models"

// PayeeResponse is an entry of the payee picker
type PayeeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SubcategoryResponse is a child entry of the category picker
type SubcategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CategoryResponse is an entry of the category picker
type CategoryResponse struct {
	ID            int64                 `json:"id"`
	Name          string                `json:"name"`
	Subcategories []SubcategoryResponse `json:"subcategories"`
}

func NewPayeeResponses(payees []models.Payee) []PayeeResponse {
	out := make([]PayeeResponse, 0, len(payees))
	for _, p := range payees {
		out = append(out, PayeeResponse{ID: p.ID, Name: p.Name})
	}
	return out
}

func NewCategoryResponses(categories []models.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		resp := CategoryResponse{ID: c.ID, Name: c.Name, Subcategories: make([]SubcategoryResponse, 0, len(c.Subcategories))}
		for _, sub := range c.Subcategories {
			resp.Subcategories = append(resp.Subcategories, SubcategoryResponse{ID: sub.ID, Name: sub.Name})
		}
		out = append(out, resp)
	}
	return out
}
