package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sort"
	"strings"

	"github.com/SscSPs/mero_khata/internal/apperrors"
	"github.com/SscSPs/mero_khata/internal/core/domain"
	portssvc "github.com/SscSPs/mero_khata/internal/core/ports/services"
	"github.com/SscSPs/mero_khata/internal/dto"
	"github.com/SscSPs/mero_khata/internal/utils"
	"github.com/SscSPs/mero_khata/internal/utils/accounting"
	"github.com/SscSPs/mero_khata/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

const (
	recentCustomerCount = 3
	defaultPageSize     = 20
	maxPageSize         = 100

	// Numbers with at most this many digits are local and get the country code prepended.
	localPhoneDigits   = 10
	defaultCountryCode = "977"
)

// Chart labels for the receivable/payable split.
const (
	ChartLabelReceive = "Receive (Pauna)"
	ChartLabelPay     = "Pay (Tirna)"
)

type reportingService struct {
	BaseService
	docs portssvc.DocumentReaderSvc
}

// NewReportingService creates the read-only views over the working document.
func NewReportingService(docs portssvc.DocumentReaderSvc) portssvc.ReportingService {
	return &reportingService{docs: docs}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) Dashboard(ctx context.Context) dto.DashboardResponse {
	doc := s.docs.Document()

	receivable := accounting.TotalReceivable(doc.Customers)
	payable := accounting.TotalPayable(doc.Customers)
	recent := accounting.RecentCustomers(doc.Customers, recentCustomerCount)

	s.LogDebug(ctx, "Dashboard computed",
		slog.Int("customers", len(doc.Customers)),
		slog.Int("expenses", len(doc.Expenses)))

	return dto.DashboardResponse{
		ShopName:        doc.ShopName,
		TotalReceivable: receivable,
		TotalPayable:    payable,
		TotalExpenses:   accounting.TotalExpenses(doc.Expenses),
		CustomerCount:   len(doc.Customers),
		ExpenseCount:    len(doc.Expenses),
		RecentCustomers: dto.ToListCustomerResponse(recent),
		Chart: dto.ChartSeries{
			Labels: []string{ChartLabelReceive, ChartLabelPay},
			Values: []decimal.Decimal{receivable, payable},
		},
		ExpensesByCategory: accounting.ExpensesByCategory(doc.Expenses),
	}
}

func (s *reportingService) ListCustomers(ctx context.Context, params dto.ListCustomersParams) (*dto.ListCustomersResponse, error) {
	doc := s.docs.Document()
	matched := filterCustomers(doc.Customers, params.Query)

	limit := params.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	start := 0
	if params.NextToken != "" {
		offset, lastID, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			s.LogWarn(ctx, "Invalid pagination token", slog.String("error", err.Error()))
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		ids := make([]string, len(matched))
		for i := range matched {
			ids[i] = matched[i].ID
		}
		start = pagination.Resume(ids, offset, lastID)
	}

	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	page := matched[start:end]

	resp := &dto.ListCustomersResponse{Customers: dto.ToListCustomerResponse(page)}
	if end < len(matched) && len(page) > 0 {
		token := pagination.EncodeToken(end, page[len(page)-1].ID)
		resp.NextToken = &token
	}
	return resp, nil
}

// filterCustomers keeps customers whose name contains query (any case) or whose phone contains it.
func filterCustomers(customers []domain.Customer, query string) []domain.Customer {
	query = strings.TrimSpace(query)
	if query == "" {
		return customers
	}
	needle := strings.ToLower(query)
	out := make([]domain.Customer, 0, len(customers))
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.Name), needle) || strings.Contains(c.Phone, query) {
			out = append(out, c)
		}
	}
	return out
}

func (s *reportingService) GetCustomer(ctx context.Context, customerID string) (*dto.CustomerDetailResponse, error) {
	doc := s.docs.Document()
	idx := doc.FindCustomer(customerID)
	if idx < 0 {
		s.LogDebug(ctx, "Customer not found", slog.String("customer_id", customerID))
		return nil, fmt.Errorf("customer %s: %w", customerID, apperrors.ErrNotFound)
	}
	resp := dto.ToCustomerDetailResponse(&doc.Customers[idx])
	return &resp, nil
}

func (s *reportingService) ListExpenses(ctx context.Context) dto.ListExpensesResponse {
	doc := s.docs.Document()
	expenses := make([]dto.ExpenseResponse, 0, len(doc.Expenses))
	for i := len(doc.Expenses) - 1; i >= 0; i-- {
		expenses = append(expenses, dto.ToExpenseResponse(&doc.Expenses[i]))
	}
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Date > expenses[j].Date
	})
	return dto.ListExpensesResponse{
		Expenses: expenses,
		Total:    accounting.TotalExpenses(doc.Expenses),
	}
}

func (s *reportingService) Reminder(ctx context.Context, customerID string) (*dto.ReminderResponse, error) {
	doc := s.docs.Document()
	idx := doc.FindCustomer(customerID)
	if idx < 0 {
		return nil, fmt.Errorf("customer %s: %w", customerID, apperrors.ErrNotFound)
	}
	customer := doc.Customers[idx]

	phone := WhatsAppNumber(customer.Phone)
	if phone == "" {
		s.LogDebug(ctx, "Customer has no usable phone number", slog.String("customer_id", customerID))
		return nil, fmt.Errorf("%w: Invalid Phone Number", apperrors.ErrValidation)
	}

	msg := ReminderMessage(customer, doc.ShopName)
	return &dto.ReminderResponse{
		Message:     msg,
		WhatsAppURL: "https://wa.me/" + phone + "?text=" + strings.ReplaceAll(url.QueryEscape(msg), "+", "%20"),
	}, nil
}

// WhatsAppNumber strips everything but digits and prepends the country code to local numbers.
// It returns "" when no digits remain.
func WhatsAppNumber(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return ""
	}
	if len(digits) <= localPhoneDigits {
		return defaultCountryCode + digits
	}
	return digits
}

// ReminderMessage is the balance reminder text sent to a customer. A settled balance reads as To Receive.
func ReminderMessage(customer domain.Customer, shopName string) string {
	bal := accounting.Balance(customer.Transactions)
	direction := "To Receive"
	if bal.IsNegative() {
		direction = "To Pay"
	}
	return fmt.Sprintf("Hello %s, your current balance in %s is %s (%s). Please check.",
		customer.Name, shopName, utils.FormatCurrency(bal.Abs()), direction)
}
