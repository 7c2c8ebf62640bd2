package dto

import (
	"mmex-search/internal/models"
	"mmex-search/internal/search"
)

// SearchRequest is the body of a transaction search
type SearchRequest struct {
	Criteria search.Form `json:"criteria"`
	Limit    int         `json:"limit" validate:"min=0"`
	Offset   int         `json:"offset" validate:"min=0"`
}

// SplitResponse is one split line of a transaction
type SplitResponse struct {
	CategoryID    int64  `json:"categoryId"`
	SubcategoryID *int64 `json:"subcategoryId,omitempty"`
	Amount        string `json:"amount"`
}

// TransactionResponse is a register row as returned by searches
type TransactionResponse struct {
	ID                int64           `json:"id"`
	AccountID         int64           `json:"accountId"`
	ToAccountID       *int64          `json:"toAccountId,omitempty"`
	TransCode         string          `json:"transCode"`
	Status            string          `json:"status"`
	Amount            string          `json:"amount"`
	ToAmount          string          `json:"toAmount,omitempty"`
	Date              string          `json:"date"`
	PayeeID           *int64          `json:"payeeId,omitempty"`
	CategoryID        *int64          `json:"categoryId,omitempty"`
	SubcategoryID     *int64          `json:"subcategoryId,omitempty"`
	TransactionNumber string          `json:"transactionNumber,omitempty"`
	Notes             string          `json:"notes,omitempty"`
	Splits            []SplitResponse `json:"splits,omitempty"`
}

// PaginationMeta represents offset pagination metadata
type PaginationMeta struct {
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
	Total  int64 `json:"total"`
}

// SearchResult is one page of matching transactions
type SearchResult struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationMeta        `json:"pagination"`
}

// WhereResponse is the rendered predicate of a form
type WhereResponse struct {
	Where string        `json:"where"`
	Args  []interface{} `json:"args"`
}

// NewTransactionResponse maps a stored transaction for output
func NewTransactionResponse(tx models.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:                tx.ID,
		AccountID:         tx.AccountID,
		ToAccountID:       tx.ToAccountID,
		TransCode:         tx.TransCode,
		Status:            tx.Status,
		Amount:            tx.Amount.StringFixed(2),
		Date:              tx.TransDate,
		PayeeID:           tx.PayeeID,
		CategoryID:        tx.CategoryID,
		SubcategoryID:     tx.SubcategoryID,
		TransactionNumber: tx.TransactionNumber,
		Notes:             tx.Notes,
	}
	if tx.IsTransfer() {
		resp.ToAmount = tx.ToAmount.StringFixed(2)
	}
	for _, split := range tx.Splits {
		resp.Splits = append(resp.Splits, SplitResponse{
			CategoryID:    split.CategoryID,
			SubcategoryID: split.SubcategoryID,
			Amount:        split.Amount.StringFixed(2),
		})
	}
	return resp
}

// NewTransactionResponses maps a page of transactions. The result is never nil.
func NewTransactionResponses(txs []models.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, NewTransactionResponse(tx))
	}
	return out
}
