package handlers_test

import (
	"context"

	"github.com/SscSPs/mero_khata/internal/core/domain"
	portssvc "github.com/SscSPs/mero_khata/internal/core/ports/services"
	"github.com/SscSPs/mero_khata/internal/dto"
	"github.com/SscSPs/mero_khata/internal/platform/task"
	"github.com/stretchr/testify/mock"
)

// --- Mock KhataSvcFacade ---
type MockKhataService struct {
	mock.Mock
}

func (m *MockKhataService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, *task.Task, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Customer), taskArg(args, 1), args.Error(2)
}

func (m *MockKhataService) DeleteCustomer(ctx context.Context, customerID string, confirmer portssvc.Confirmer) (*task.Task, error) {
	args := m.Called(ctx, customerID, confirmer)
	return taskArg(args, 0), args.Error(1)
}

func (m *MockKhataService) AddTransaction(ctx context.Context, customerID string, req dto.AddTransactionRequest) (*domain.Transaction, *task.Task, error) {
	args := m.Called(ctx, customerID, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Transaction), taskArg(args, 1), args.Error(2)
}

func (m *MockKhataService) EditTransaction(ctx context.Context, customerID string, transactionID string, req dto.EditTransactionRequest) (*domain.Transaction, *task.Task, error) {
	args := m.Called(ctx, customerID, transactionID, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Transaction), taskArg(args, 1), args.Error(2)
}

func (m *MockKhataService) DeleteTransaction(ctx context.Context, customerID string, transactionID string, confirmer portssvc.Confirmer) (*task.Task, error) {
	args := m.Called(ctx, customerID, transactionID, confirmer)
	return taskArg(args, 0), args.Error(1)
}

func (m *MockKhataService) AddExpense(ctx context.Context, req dto.AddExpenseRequest) (*domain.Expense, *task.Task, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Expense), taskArg(args, 1), args.Error(2)
}

func (m *MockKhataService) DeleteExpense(ctx context.Context, expenseID string, confirmer portssvc.Confirmer) (*task.Task, error) {
	args := m.Called(ctx, expenseID, confirmer)
	return taskArg(args, 0), args.Error(1)
}

func (m *MockKhataService) UpdateShopName(ctx context.Context, req dto.UpdateShopNameRequest) (*task.Task, error) {
	args := m.Called(ctx, req)
	return taskArg(args, 0), args.Error(1)
}

func (m *MockKhataService) RestoreBackup(ctx context.Context, raw []byte, confirmer portssvc.Confirmer) (*task.Task, error) {
	args := m.Called(ctx, raw, confirmer)
	return taskArg(args, 0), args.Error(1)
}

func (m *MockKhataService) Dispatch(ctx context.Context, cmd dto.CommandRequest) (*dto.CommandResponse, *task.Task, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*dto.CommandResponse), taskArg(args, 1), args.Error(2)
}

var _ portssvc.KhataSvcFacade = (*MockKhataService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) Dashboard(ctx context.Context) dto.DashboardResponse {
	args := m.Called(ctx)
	return args.Get(0).(dto.DashboardResponse)
}

func (m *MockReportingService) ListCustomers(ctx context.Context, params dto.ListCustomersParams) (*dto.ListCustomersResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListCustomersResponse), args.Error(1)
}

func (m *MockReportingService) GetCustomer(ctx context.Context, customerID string) (*dto.CustomerDetailResponse, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CustomerDetailResponse), args.Error(1)
}

func (m *MockReportingService) ListExpenses(ctx context.Context) dto.ListExpensesResponse {
	args := m.Called(ctx)
	return args.Get(0).(dto.ListExpensesResponse)
}

func (m *MockReportingService) Reminder(ctx context.Context, customerID string) (*dto.ReminderResponse, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReminderResponse), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

// --- Mock ExportService ---
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) Backup(ctx context.Context) (string, []byte, error) {
	args := m.Called(ctx)
	return args.String(0), bytesArg(args, 1), args.Error(2)
}

func (m *MockExportService) Statement(ctx context.Context, customerID string) (string, []byte, error) {
	args := m.Called(ctx, customerID)
	return args.String(0), bytesArg(args, 1), args.Error(2)
}

var _ portssvc.ExportService = (*MockExportService)(nil)

// --- Mock PersistenceGatewaySvc ---
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Document() domain.Document {
	args := m.Called()
	return args.Get(0).(domain.Document)
}

func (m *MockGateway) Replace(ctx context.Context, doc domain.Document) *task.Task {
	args := m.Called(ctx, doc)
	return taskArg(args, 0)
}

func (m *MockGateway) Mutate(ctx context.Context, fn portssvc.MutateFunc) (*task.Task, error) {
	args := m.Called(ctx, fn)
	return taskArg(args, 0), args.Error(1)
}

func (m *MockGateway) Load(ctx context.Context) (domain.Document, portssvc.LoadSource) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Document), args.Get(1).(portssvc.LoadSource)
}

func (m *MockGateway) Sync(ctx context.Context) (portssvc.LoadSource, *task.Task) {
	args := m.Called(ctx)
	return args.Get(0).(portssvc.LoadSource), taskArg(args, 1)
}

func (m *MockGateway) Subscribe(fn func(doc domain.Document)) func() {
	m.Called(fn)
	return func() {}
}

var _ portssvc.PersistenceGatewaySvc = (*MockGateway)(nil)

func taskArg(args mock.Arguments, i int) *task.Task {
	if t, ok := args.Get(i).(*task.Task); ok {
		return t
	}
	return nil
}

func bytesArg(args mock.Arguments, i int) []byte {
	if b, ok := args.Get(i).([]byte); ok {
		return b
	}
	return nil
}
