package dto

import (
	"encoding/json"
	"time"
)

// UpdateShopNameRequest renames the shop.
type UpdateShopNameRequest struct {
	ShopName string `json:"shopName" validate:"required"`
}

// CommandRequest is a named user action with its JSON payload.
// Destructive commands need Confirm set.
type CommandRequest struct {
	Name    string          `json:"name" binding:"required"`
	Payload json.RawMessage `json:"payload"`
	Confirm bool            `json:"confirm"`
}

// CommandResponse reports the outcome of a dispatched command.
type CommandResponse struct {
	Name   string `json:"name"`
	Result any    `json:"result,omitempty"`
	Saved  bool   `json:"saved"`
}

// NoticeResponse is a short user-facing message.
type NoticeResponse struct {
	Level   string    `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// SyncResponse reports where the working document was loaded from.
type SyncResponse struct {
	Source       string `json:"source"`
	RemoteSynced bool   `json:"remoteSynced"`
}

// StoreStatusResponse is the body answered by the remote document endpoint on POST.
type StoreStatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Command names accepted by the dispatcher.
const (
	CommandCreateCustomer    = "customer.create"
	CommandDeleteCustomer    = "customer.delete"
	CommandAddTransaction    = "transaction.add"
	CommandEditTransaction   = "transaction.edit"
	CommandDeleteTransaction = "transaction.delete"
	CommandAddExpense        = "expense.add"
	CommandDeleteExpense     = "expense.delete"
	CommandUpdateShopName    = "settings.shop_name"
)

// CustomerRef addresses a customer inside a command payload.
type CustomerRef struct {
	CustomerID string `json:"customerId"`
}

// TransactionRef addresses one entry of a customer.
type TransactionRef struct {
	CustomerID    string `json:"customerId"`
	TransactionID string `json:"transactionId"`
}

// ExpenseRef addresses an expense.
type ExpenseRef struct {
	ExpenseID string `json:"expenseId"`
}

// AddTransactionCommand is the payload of transaction.add.
type AddTransactionCommand struct {
	CustomerRef
	AddTransactionRequest
}

// EditTransactionCommand is the payload of transaction.edit.
type EditTransactionCommand struct {
	TransactionRef
	EditTransactionRequest
}
