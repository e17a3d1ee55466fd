package dto

import (
	"github.com/SscSPs/mero_khata/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AddExpenseRequest defines a new shop expense.
type AddExpenseRequest struct {
	Amount   decimal.Decimal `json:"amount"` // Must be positive
	Category string          `json:"category" validate:"required"`
	Note     string          `json:"note"`
}

// ExpenseResponse mirrors domain.Expense.
type ExpenseResponse struct {
	ID       string          `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Note     string          `json:"note"`
	Date     string          `json:"date"`
}

// ListExpensesResponse lists expenses newest first with their total.
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    decimal.Decimal   `json:"total"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:       e.ID,
		Amount:   e.Amount,
		Category: e.Category,
		Note:     e.Note,
		Date:     e.Date,
	}
}
