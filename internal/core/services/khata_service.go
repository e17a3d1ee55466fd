package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/mero_khata/internal/apperrors"
	"github.com/SscSPs/mero_khata/internal/core/domain"
	portssvc "github.com/SscSPs/mero_khata/internal/core/ports/services"
	"github.com/SscSPs/mero_khata/internal/dto"
	"github.com/SscSPs/mero_khata/internal/platform/task"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/yosuke-furukawa/json5/encoding/json5"
)

// Confirmation prompts shown before destructive operations.
const (
	PromptDeleteCustomer    = "Permanently delete this customer and all history?"
	PromptDeleteTransaction = "Are you sure you want to delete this entry?"
	PromptDeleteExpense     = "Are you sure you want to delete this expense?"
	PromptRestoreBackup     = "Replace all data with this backup?"
)

// khataService applies user actions to the working document through the gateway.
type khataService struct {
	BaseService
	gateway  portssvc.PersistenceGatewaySvc
	notifier portssvc.Notifier
	validate *validator.Validate
	now      func() time.Time
	loc      *time.Location
	newID    func() string
}

// KhataOption is a functional option for configuring the khata service
type KhataOption func(*khataService)

// WithClock replaces the time source used to stamp new entries
func WithClock(now func() time.Time) KhataOption {
	return func(s *khataService) {
		s.now = now
	}
}

// WithLocation sets the zone calendar dates are interpreted in when editing entries
func WithLocation(loc *time.Location) KhataOption {
	return func(s *khataService) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithIDGenerator replaces the id source for new records
func WithIDGenerator(fn func() string) KhataOption {
	return func(s *khataService) {
		s.newID = fn
	}
}

// NewKhataService creates the mutation service on top of the gateway.
func NewKhataService(gateway portssvc.PersistenceGatewaySvc, notifier portssvc.Notifier, options ...KhataOption) portssvc.KhataSvcFacade {
	svc := &khataService{
		gateway:  gateway,
		notifier: notifier,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
		loc:      time.Local,
		newID:    uuid.NewString,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.KhataSvcFacade = (*khataService)(nil)

func (s *khataService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, *task.Task, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	if err := s.validate.Struct(req); err != nil {
		return nil, nil, s.reject(ctx, apperrors.ErrValidation, "Name is required")
	}

	customer := domain.Customer{
		ID:           s.newID(),
		Name:         req.Name,
		Phone:        req.Phone,
		Transactions: []domain.Transaction{},
	}
	saved, err := s.gateway.Mutate(ctx, func(doc *domain.Document) (bool, error) {
		doc.Customers = append(doc.Customers, customer)
		return true, nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create customer")
		return nil, nil, err
	}

	s.LogInfo(ctx, "Customer created", slog.String("customer_id", customer.ID))
	s.notify(ctx, portssvc.NoticeInfo, "Customer Created")
	return &customer, saved, nil
}

func (s *khataService) DeleteCustomer(ctx context.Context, customerID string, confirmer portssvc.Confirmer) (*task.Task, error) {
	if err := s.confirm(ctx, confirmer, PromptDeleteCustomer); err != nil {
		return nil, err
	}

	saved, err := s.gateway.Mutate(ctx, func(doc *domain.Document) (bool, error) {
		idx := doc.FindCustomer(customerID)
		if idx < 0 {
			return false, nil
		}
		doc.Customers = append(doc.Customers[:idx], doc.Customers[idx+1:]...)
		return true, nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete customer", slog.String("customer_id", customerID))
		return nil, err
	}
	if saved == nil {
		s.LogInfo(ctx, "Customer already gone, nothing to delete", slog.String("customer_id", customerID))
		return nil, nil
	}

	s.LogInfo(ctx, "Customer deleted", slog.String("customer_id", customerID))
	s.notify(ctx, portssvc.NoticeInfo, "Customer deleted")
	return saved, nil
}

func (s *khataService) AddTransaction(ctx context.Context, customerID string, req dto.AddTransactionRequest) (*domain.Transaction, *task.Task, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, nil, s.reject(ctx, apperrors.ErrValidation, "Select give or take")
	}
	if !req.Amount.IsPositive() {
		return nil, nil, s.reject(ctx, apperrors.ErrValidation, "Amount is required")
	}

	desc := strings.TrimSpace(req.Desc)
	if desc == "" {
		desc = req.Type.DefaultDescription()
	}
	txn := domain.Transaction{
		ID:     s.newID(),
		Type:   req.Type,
		Amount: req.Amount,
		Desc:   desc,
		Date:   domain.FormatTimestamp(s.now()),
	}

	saved, err := s.gateway.Mutate(ctx, func(doc *domain.Document) (bool, error) {
		idx := doc.FindCustomer(customerID)
		if idx < 0 {
			return false, apperrors.ErrNotFound
		}
		doc.Customers[idx].Transactions = append(doc.Customers[idx].Transactions, txn)
		return true, nil
	})
	if err != nil {
		return nil, nil, s.failed(ctx, err, "Customer not found", slog.String("customer_id", customerID))
	}

	s.LogInfo(ctx, "Transaction added",
		slog.String("customer_id", customerID),
		slog.String("transaction_id", txn.ID),
		slog.String("type", string(txn.Type)))
	s.notify(ctx, portssvc.NoticeInfo, "Transaction Saved")
	return &txn, saved, nil
}

func (s *khataService) EditTransaction(ctx context.Context, customerID string, transactionID string, req dto.EditTransactionRequest) (*domain.Transaction, *task.Task, error) {
	if req.Amount == nil || !req.Amount.IsPositive() {
		return nil, nil, s.reject(ctx, apperrors.ErrValidation, "Amount cannot be empty")
	}
	req.Date = strings.TrimSpace(req.Date)
	if err := s.validate.Struct(req); err != nil {
		return nil, nil, s.reject(ctx, apperrors.ErrValidation, "Invalid date")
	}

	var edited domain.Transaction
	saved, err := s.gateway.Mutate(ctx, func(doc *domain.Document) (bool, error) {
		cIdx := doc.FindCustomer(customerID)
		if cIdx < 0 {
			return false, apperrors.ErrNotFound
		}
		customer := &doc.Customers[cIdx]
		tIdx := customer.FindTransaction(transactionID)
		if tIdx < 0 {
			return false, apperrors.ErrNotFound
		}

		txn := customer.Transactions[tIdx]
		if req.Date != "" {
			date, err := s.moveToDay(txn.Date, req.Date)
			if err != nil {
				return false, err
			}
			txn.Date = date
		}
		txn.Amount = *req.Amount
		txn.Desc = strings.TrimSpace(req.Desc)

		customer.Transactions[tIdx] = txn
		edited = txn
		return true, nil
	})
	if err != nil {
		return nil, nil, s.failed(ctx, err, "Entry not found",
			slog.String("customer_id", customerID),
			slog.String("transaction_id", transactionID))
	}

	s.LogInfo(ctx, "Transaction edited",
		slog.String("customer_id", customerID),
		slog.String("transaction_id", transactionID))
	s.notify(ctx, portssvc.NoticeInfo, "Entry Updated")
	return &edited, saved, nil
}

// moveToDay keeps the time-of-day of original. An unreadable original date lands at midnight.
func (s *khataService) moveToDay(original, calendarDate string) (string, error) {
	date, err := domain.ComposeTimestamp(original, calendarDate, s.loc)
	if err == nil {
		return date, nil
	}
	day, perr := time.ParseInLocation(domain.CalendarDateLayout, calendarDate, s.loc)
	if perr != nil {
		return "", fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, calendarDate)
	}
	return domain.FormatTimestamp(day), nil
}

func (s *khataService) DeleteTransaction(ctx context.Context, customerID string, transactionID string, confirmer portssvc.Confirmer) (*task.Task, error) {
	if err := s.confirm(ctx, confirmer, PromptDeleteTransaction); err != nil {
		return nil, err
	}

	saved, err := s.gateway.Mutate(ctx, func(doc *domain.Document) (bool, error) {
		cIdx := doc.FindCustomer(customerID)
		if cIdx < 0 {
			return false, nil
		}
		customer := &doc.Customers[cIdx]
		tIdx := customer.FindTransaction(transactionID)
		if tIdx < 0 {
			return false, nil
		}
		customer.Transactions = append(customer.Transactions[:tIdx], customer.Transactions[tIdx+1:]...)
		return true, nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete transaction")
		return nil, err
	}
	if saved == nil {
		s.LogInfo(ctx, "Transaction already gone, nothing to delete",
			slog.String("customer_id", customerID),
			slog.String("transaction_id", transactionID))
		return nil, nil
	}

	s.notify(ctx, portssvc.NoticeInfo, "Entry Deleted")
	return saved, nil
}

func (s *khataService) AddExpense(ctx context.Context, req dto.AddExpenseRequest) (*domain.Expense, *task.Task, error) {
	if !req.Amount.IsPositive() {
		return nil, nil, s.reject(ctx, apperrors.ErrValidation, "Amount is required")
	}
	req.Category = strings.TrimSpace(req.Category)
	if err := s.validate.Struct(req); err != nil {
		return nil, nil, s.reject(ctx, apperrors.ErrValidation, "Category is required")
	}
	if !domain.IsKnownCategory(req.Category) {
		s.LogDebug(ctx, "Expense with custom category", slog.String("category", req.Category))
	}

	expense := domain.Expense{
		ID:       s.newID(),
		Amount:   req.Amount,
		Category: req.Category,
		Note:     strings.TrimSpace(req.Note),
		Date:     domain.FormatTimestamp(s.now()),
	}
	saved, err := s.gateway.Mutate(ctx, func(doc *domain.Document) (bool, error) {
		doc.Expenses = append(doc.Expenses, expense)
		return true, nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to add expense")
		return nil, nil, err
	}

	s.LogInfo(ctx, "Expense added", slog.String("expense_id", expense.ID), slog.String("category", expense.Category))
	s.notify(ctx, portssvc.NoticeInfo, "Expense Added")
	return &expense, saved, nil
}

func (s *khataService) DeleteExpense(ctx context.Context, expenseID string, confirmer portssvc.Confirmer) (*task.Task, error) {
	if err := s.confirm(ctx, confirmer, PromptDeleteExpense); err != nil {
		return nil, err
	}

	saved, err := s.gateway.Mutate(ctx, func(doc *domain.Document) (bool, error) {
		idx := doc.FindExpense(expenseID)
		if idx < 0 {
			return false, nil
		}
		doc.Expenses = append(doc.Expenses[:idx], doc.Expenses[idx+1:]...)
		return true, nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete expense")
		return nil, err
	}
	if saved == nil {
		s.LogInfo(ctx, "Expense not found, nothing saved", slog.String("expense_id", expenseID))
		return nil, nil
	}

	s.notify(ctx, portssvc.NoticeInfo, "Expense Deleted")
	return saved, nil
}

func (s *khataService) UpdateShopName(ctx context.Context, req dto.UpdateShopNameRequest) (*task.Task, error) {
	req.ShopName = strings.TrimSpace(req.ShopName)
	if err := s.validate.Struct(req); err != nil {
		return nil, s.reject(ctx, apperrors.ErrValidation, "Shop name is required")
	}

	saved, err := s.gateway.Mutate(ctx, func(doc *domain.Document) (bool, error) {
		doc.ShopName = req.ShopName
		return true, nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update shop name")
		return nil, err
	}

	s.notify(ctx, portssvc.NoticeInfo, "Shop Name Updated")
	return saved, nil
}

// RestoreBackup accepts strict JSON as well as hand-edited JSON5 backups (unquoted keys,
// comments, trailing commas). Single-quoted strings are not supported.
func (s *khataService) RestoreBackup(ctx context.Context, raw []byte, confirmer portssvc.Confirmer) (*task.Task, error) {
	doc, err := decodeBackup(raw)
	if err != nil {
		s.LogWarn(ctx, "Rejected backup file", slog.String("error", err.Error()))
		return nil, s.reject(ctx, apperrors.ErrValidation, "Invalid backup file")
	}
	if err := s.confirm(ctx, confirmer, PromptRestoreBackup); err != nil {
		return nil, err
	}

	saved := s.gateway.Replace(ctx, doc)
	s.LogInfo(ctx, "Backup restored",
		slog.Int("customers", len(doc.Customers)),
		slog.Int("expenses", len(doc.Expenses)))
	s.notify(ctx, portssvc.NoticeInfo, "Backup Restored")
	return saved, nil
}

func decodeBackup(raw []byte) (domain.Document, error) {
	if doc, err := domain.DecodeDocument(raw); err == nil {
		return doc, nil
	}
	var loose any
	if err := json5.Unmarshal(raw, &loose); err != nil {
		return domain.Document{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidDocument, err)
	}
	strict, err := json.Marshal(loose)
	if err != nil {
		return domain.Document{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidDocument, err)
	}
	return domain.DecodeDocument(strict)
}

func (s *khataService) confirm(ctx context.Context, confirmer portssvc.Confirmer, prompt string) error {
	if confirmer != nil && confirmer.Confirm(ctx, prompt) {
		return nil
	}
	s.LogDebug(ctx, "Destructive operation not confirmed", slog.String("prompt", prompt))
	s.notify(ctx, portssvc.NoticeInfo, "Cancelled")
	return apperrors.ErrNotConfirmed
}

// reject posts notice and returns sentinel wrapped with it.
func (s *khataService) reject(ctx context.Context, sentinel error, notice string) error {
	s.notify(ctx, portssvc.NoticeError, notice)
	return fmt.Errorf("%w: %s", sentinel, notice)
}

// failed maps an error returned from inside a mutation to a notice.
func (s *khataService) failed(ctx context.Context, err error, notFoundNotice string, keyvals ...any) error {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		s.LogWarn(ctx, notFoundNotice, keyvals...)
		return s.reject(ctx, apperrors.ErrNotFound, notFoundNotice)
	case errors.Is(err, apperrors.ErrValidation):
		s.notify(ctx, portssvc.NoticeError, "Invalid date")
		return err
	default:
		s.LogError(ctx, err, "Mutation failed", keyvals...)
		s.notify(ctx, portssvc.NoticeError, "Something went wrong")
		return err
	}
}

func (s *khataService) notify(ctx context.Context, level portssvc.NoticeLevel, message string) {
	if s.notifier != nil {
		s.notifier.Notify(ctx, level, message)
	}
}
