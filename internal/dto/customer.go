package dto

import (
	"github.com/SscSPs/mero_khata/internal/core/domain"
	"github.com/SscSPs/mero_khata/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// CreateCustomerRequest defines the data needed to open a khata for a customer.
type CreateCustomerRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone"` // Optional
}

// CustomerResponse is a customer with its derived balance.
type CustomerResponse struct {
	ID                  string            `json:"id"`
	Name                string            `json:"name"`
	Phone               string            `json:"phone"`
	Balance             decimal.Decimal   `json:"balance"`
	Status              accounting.Status `json:"status"`
	TransactionCount    int               `json:"transactionCount"`
	LastTransactionDate string            `json:"lastTransactionDate,omitempty"`
}

// CustomerDetailResponse adds the transaction history, newest first.
type CustomerDetailResponse struct {
	CustomerResponse
	Transactions []TransactionResponse `json:"transactions"`
}

// ListCustomersParams defines query parameters for listing customers.
type ListCustomersParams struct {
	Query     string `form:"q"` // Matches name (case-insensitive) or phone
	Limit     int    `form:"limit,default=20"`
	NextToken string `form:"nextToken"`
}

// ListCustomersResponse is one page of customers in insertion order.
type ListCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ReminderResponse carries a balance reminder ready to send over WhatsApp.
type ReminderResponse struct {
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsAppURL"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	bal := accounting.Balance(c.Transactions)
	return CustomerResponse{
		ID:                  c.ID,
		Name:                c.Name,
		Phone:               c.Phone,
		Balance:             bal,
		Status:              accounting.BalanceStatus(bal),
		TransactionCount:    len(c.Transactions),
		LastTransactionDate: c.LastTransactionDate(),
	}
}

// ToCustomerDetailResponse converts a customer and lists its history newest first.
func ToCustomerDetailResponse(c *domain.Customer) CustomerDetailResponse {
	txns := make([]TransactionResponse, 0, len(c.Transactions))
	for i := len(c.Transactions) - 1; i >= 0; i-- {
		txns = append(txns, ToTransactionResponse(&c.Transactions[i]))
	}
	return CustomerDetailResponse{
		CustomerResponse: ToCustomerResponse(c),
		Transactions:     txns,
	}
}

// ToListCustomerResponse converts a slice of domain.Customer to CustomerResponse DTOs
func ToListCustomerResponse(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i := range customers {
		res[i] = ToCustomerResponse(&customers[i])
	}
	return res
}
