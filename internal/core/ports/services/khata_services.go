package services

import (
	"context"

	"github.com/SscSPs/mero_khata/internal/core/domain"
	"github.com/SscSPs/mero_khata/internal/dto"
	"github.com/SscSPs/mero_khata/internal/platform/task"
)

// Confirmer asks the user to approve a destructive operation.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) bool

// Confirm calls f.
func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool {
	return f(ctx, prompt)
}

// Confirmed returns a Confirmer that always answers ok.
func Confirmed(ok bool) Confirmer {
	return ConfirmFunc(func(context.Context, string) bool { return ok })
}

// CustomerWriterSvc defines customer mutations.
type CustomerWriterSvc interface {
	// CreateCustomer appends a customer with no transactions.
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, *task.Task, error)

	// DeleteCustomer removes a customer and its history after confirmation. A stale id is a no-op.
	DeleteCustomer(ctx context.Context, customerID string, confirmer Confirmer) (*task.Task, error)
}

// TransactionWriterSvc defines give/take entry mutations.
type TransactionWriterSvc interface {
	// AddTransaction appends an entry stamped with the current time.
	AddTransaction(ctx context.Context, customerID string, req dto.AddTransactionRequest) (*domain.Transaction, *task.Task, error)

	// EditTransaction overwrites amount and description and moves the entry to another calendar day.
	EditTransaction(ctx context.Context, customerID string, transactionID string, req dto.EditTransactionRequest) (*domain.Transaction, *task.Task, error)

	// DeleteTransaction removes an entry after confirmation. A stale id is a no-op.
	DeleteTransaction(ctx context.Context, customerID string, transactionID string, confirmer Confirmer) (*task.Task, error)
}

// ExpenseWriterSvc defines expense mutations.
type ExpenseWriterSvc interface {
	AddExpense(ctx context.Context, req dto.AddExpenseRequest) (*domain.Expense, *task.Task, error)

	// DeleteExpense removes an expense after confirmation. An unknown id saves nothing.
	DeleteExpense(ctx context.Context, expenseID string, confirmer Confirmer) (*task.Task, error)
}

// SettingsWriterSvc defines shop level mutations.
type SettingsWriterSvc interface {
	UpdateShopName(ctx context.Context, req dto.UpdateShopNameRequest) (*task.Task, error)

	// RestoreBackup replaces the whole document with a backup (JSON or JSON5) after confirmation.
	RestoreBackup(ctx context.Context, raw []byte, confirmer Confirmer) (*task.Task, error)
}

// CommandDispatcherSvc maps named user actions onto the mutation operations.
type CommandDispatcherSvc interface {
	Dispatch(ctx context.Context, cmd dto.CommandRequest) (*dto.CommandResponse, *task.Task, error)
}

// KhataSvcFacade combines all mutation interfaces
type KhataSvcFacade interface {
	CustomerWriterSvc
	TransactionWriterSvc
	ExpenseWriterSvc
	SettingsWriterSvc
	CommandDispatcherSvc
}
