package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/mero_khata/internal/apperrors"
	"github.com/SscSPs/mero_khata/internal/core/domain"
	portssvc "github.com/SscSPs/mero_khata/internal/core/ports/services"
	"github.com/SscSPs/mero_khata/internal/utils"
	"github.com/SscSPs/mero_khata/internal/utils/accounting"
	"github.com/xuri/excelize/v2"
)

const statementSheet = "Statement"

type exportService struct {
	BaseService
	docs portssvc.DocumentReaderSvc
	now  func() time.Time
	loc  *time.Location
}

// ExportOption is a functional option for configuring the export service
type ExportOption func(*exportService)

// WithExportClock replaces the time source used for file names and statement dates
func WithExportClock(now func() time.Time) ExportOption {
	return func(s *exportService) {
		s.now = now
	}
}

// WithExportLocation sets the zone statement dates are printed in
func WithExportLocation(loc *time.Location) ExportOption {
	return func(s *exportService) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// NewExportService creates the backup and statement exporter.
func NewExportService(docs portssvc.DocumentReaderSvc, options ...ExportOption) portssvc.ExportService {
	svc := &exportService{docs: docs, now: time.Now, loc: time.Local}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ExportService = (*exportService)(nil)

// BackupFileName names a backup taken at t.
func BackupFileName(t time.Time) string {
	return "MeroKhata_Backup_" + t.UTC().Format(domain.CalendarDateLayout) + ".json"
}

func (s *exportService) Backup(ctx context.Context) (string, []byte, error) {
	doc := s.docs.Document()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		s.LogError(ctx, err, "Failed to serialize backup")
		return "", nil, fmt.Errorf("failed to serialize backup: %w", err)
	}
	name := BackupFileName(s.now())
	s.LogInfo(ctx, "Backup exported", slog.String("file", name), slog.Int("bytes", len(data)))
	return name, data, nil
}

func (s *exportService) Statement(ctx context.Context, customerID string) (string, []byte, error) {
	doc := s.docs.Document()
	idx := doc.FindCustomer(customerID)
	if idx < 0 {
		return "", nil, fmt.Errorf("customer %s: %w", customerID, apperrors.ErrNotFound)
	}
	customer := doc.Customers[idx]

	buf, err := s.renderStatement(doc.ShopName, customer)
	if err != nil {
		s.LogError(ctx, err, "Failed to render statement", slog.String("customer_id", customerID))
		return "", nil, err
	}
	name := statementFileName(customer.Name)
	s.LogInfo(ctx, "Statement exported", slog.String("customer_id", customerID), slog.String("file", name))
	return name, buf.Bytes(), nil
}

func statementFileName(customerName string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, strings.TrimSpace(customerName))
	if name == "" {
		name = "customer"
	}
	return name + "_statement.xlsx"
}

func (s *exportService) renderStatement(shopName string, customer domain.Customer) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	// A new workbook starts with a single "Sheet1".
	f.SetSheetName("Sheet1", statementSheet)

	header := [][]any{
		{shopName},
		{"Statement"},
		{"Customer", customer.Name},
		{"Phone", customer.Phone},
		{"Date", s.now().In(s.loc).Format(domain.CalendarDateLayout)},
		{},
		{"Date", "Desc", "Amount", "Type"},
	}
	row := 1
	for _, values := range header {
		if len(values) > 0 {
			if err := f.SetSheetRow(statementSheet, fmt.Sprintf("A%d", row), &values); err != nil {
				return nil, fmt.Errorf("error writing header: %w", err)
			}
		}
		row++
	}
	tableHeaderRow := row - 1

	if titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}}); err == nil {
		_ = f.SetCellStyle(statementSheet, "A1", "A1", titleStyle)
	}
	if headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#F3F4F6"}, Pattern: 1},
	}); err == nil {
		_ = f.SetRowStyle(statementSheet, tableHeaderRow, tableHeaderRow, headerStyle)
	}

	for _, txn := range customer.Transactions {
		date := txn.Date
		if t, err := domain.ParseTimestamp(txn.Date); err == nil {
			date = t.In(s.loc).Format(domain.CalendarDateLayout)
		}
		amount, _ := txn.Amount.Float64()
		values := []any{date, txn.Desc, amount, strings.ToUpper(string(txn.Type))}
		if err := f.SetSheetRow(statementSheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return nil, fmt.Errorf("error writing transaction row: %w", err)
		}
		row++
	}

	bal := accounting.Balance(customer.Transactions)
	row++
	total := []any{"Net Balance", "", utils.FormatCurrency(bal), string(accounting.BalanceStatus(bal))}
	if err := f.SetSheetRow(statementSheet, fmt.Sprintf("A%d", row), &total); err != nil {
		return nil, fmt.Errorf("error writing balance row: %w", err)
	}

	_ = f.SetColWidth(statementSheet, "A", "A", 14)
	_ = f.SetColWidth(statementSheet, "B", "B", 32)
	_ = f.SetColWidth(statementSheet, "C", "D", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("error writing workbook: %w", err)
	}
	return buf, nil
}
