package dto

import (
	"github.com/SscSPs/mero_khata/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AddTransactionRequest defines a new give/take entry for a customer.
type AddTransactionRequest struct {
	Type   domain.TransactionType `json:"type" validate:"required,oneof=give take"`
	Amount decimal.Decimal        `json:"amount"` // Must be positive
	Desc   string                 `json:"desc"`   // Optional, defaults per type
}

// EditTransactionRequest overwrites an existing entry.
// Date is a calendar date (YYYY-MM-DD); the original time of day is kept. Empty keeps the current day.
type EditTransactionRequest struct {
	Amount *decimal.Decimal `json:"amount" validate:"required"`
	Desc   string           `json:"desc"`
	Date   string           `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// TransactionResponse mirrors domain.Transaction.
type TransactionResponse struct {
	ID     string                 `json:"id"`
	Type   domain.TransactionType `json:"type"`
	Amount decimal.Decimal        `json:"amount"`
	Desc   string                 `json:"desc"`
	Date   string                 `json:"date"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:     t.ID,
		Type:   t.Type,
		Amount: t.Amount,
		Desc:   t.Desc,
		Date:   t.Date,
	}
}
