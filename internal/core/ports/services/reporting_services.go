package services

import (
	"context"

	"github.com/SscSPs/mero_khata/internal/dto"
)

// ReportingService defines read-only views over the working document
type ReportingService interface {
	// Dashboard summarises balances, expenses and recent activity.
	Dashboard(ctx context.Context) dto.DashboardResponse

	// ListCustomers returns a page of customers with balances, optionally filtered.
	ListCustomers(ctx context.Context, params dto.ListCustomersParams) (*dto.ListCustomersResponse, error)

	// GetCustomer returns one customer with its history.
	GetCustomer(ctx context.Context, customerID string) (*dto.CustomerDetailResponse, error)

	// ListExpenses returns all expenses newest first.
	ListExpenses(ctx context.Context) dto.ListExpensesResponse

	// Reminder builds the balance reminder for a customer with a phone number.
	Reminder(ctx context.Context, customerID string) (*dto.ReminderResponse, error)
}

// ExportService renders downloadable files from the working document
type ExportService interface {
	// Backup serializes the whole document; the file name carries today's date.
	Backup(ctx context.Context) (filename string, data []byte, err error)

	// Statement renders one customer's history and net balance as a spreadsheet.
	Statement(ctx context.Context, customerID string) (filename string, data []byte, err error)
}
