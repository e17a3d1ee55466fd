package accounting_test

import (
	"testing"

	"github.com/SscSPs/mero_khata/internal/core/domain"
	"github.com/SscSPs/mero_khata/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(typ domain.TransactionType, amount string, date string) domain.Transaction {
	return domain.Transaction{Type: typ, Amount: decimal.RequireFromString(amount), Date: date}
}

func TestBalance(t *testing.T) {
	tests := []struct {
		name string
		txns []domain.Transaction
		want string
	}{
		{name: "nil", txns: nil, want: "0"},
		{name: "empty", txns: []domain.Transaction{}, want: "0"},
		{
			name: "give then take",
			txns: []domain.Transaction{txn(domain.Give, "100", ""), txn(domain.Take, "40", "")},
			want: "60",
		},
		{
			name: "overpaid",
			txns: []domain.Transaction{txn(domain.Give, "10.25", ""), txn(domain.Take, "20", "")},
			want: "-9.75",
		},
		{
			name: "unknown type is ignored",
			txns: []domain.Transaction{txn(domain.Give, "5", ""), txn("refund", "5", "")},
			want: "5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := accounting.Balance(tt.txns)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestBalance_MatchesGiveMinusTake(t *testing.T) {
	txns := []domain.Transaction{
		txn(domain.Give, "12.5", ""),
		txn(domain.Take, "3", ""),
		txn(domain.Give, "0.5", ""),
		txn(domain.Take, "20", ""),
		txn(domain.Give, "7", ""),
	}
	gives, takes := decimal.Zero, decimal.Zero
	for _, tx := range txns {
		if tx.Type == domain.Give {
			gives = gives.Add(tx.Amount)
		} else {
			takes = takes.Add(tx.Amount)
		}
	}

	assert.True(t, accounting.Balance(txns).Equal(gives.Sub(takes)))
}

func TestBalanceStatus(t *testing.T) {
	assert.Equal(t, accounting.ToReceive, accounting.BalanceStatus(decimal.NewFromInt(60)))
	assert.Equal(t, accounting.ToPay, accounting.BalanceStatus(decimal.NewFromInt(-1)))
	assert.Equal(t, accounting.Settled, accounting.BalanceStatus(decimal.Zero))
}

func TestTotals_EachCustomerCountsOnce(t *testing.T) {
	customers := []domain.Customer{
		{ID: "owes", Transactions: []domain.Transaction{txn(domain.Give, "100", ""), txn(domain.Take, "40", "")}},
		{ID: "owed", Transactions: []domain.Transaction{txn(domain.Take, "25", "")}},
		{ID: "settled", Transactions: []domain.Transaction{txn(domain.Give, "10", ""), txn(domain.Take, "10", "")}},
		{ID: "new"},
	}

	receivable := accounting.TotalReceivable(customers)
	payable := accounting.TotalPayable(customers)

	assert.True(t, receivable.Equal(decimal.NewFromInt(60)), receivable.String())
	assert.True(t, payable.Equal(decimal.NewFromInt(25)), payable.String())

	for _, c := range customers {
		bal := accounting.Balance(c.Transactions)
		inReceivable := accounting.TotalReceivable([]domain.Customer{c}).IsPositive()
		inPayable := accounting.TotalPayable([]domain.Customer{c}).IsPositive()
		assert.False(t, inReceivable && inPayable, c.ID)
		assert.Equal(t, bal.IsPositive(), inReceivable, c.ID)
		assert.Equal(t, bal.IsNegative(), inPayable, c.ID)
	}
}

func TestTotalExpenses(t *testing.T) {
	expenses := []domain.Expense{
		{Amount: decimal.RequireFromString("50"), Category: domain.CategoryRent},
		{Amount: decimal.RequireFromString("12.75"), Category: domain.CategoryTeaKhaja},
		{Amount: decimal.RequireFromString("20"), Category: domain.CategoryRent},
	}

	assert.True(t, accounting.TotalExpenses(expenses).Equal(decimal.RequireFromString("82.75")))
	assert.True(t, accounting.TotalExpenses(nil).IsZero())

	byCategory := accounting.ExpensesByCategory(expenses)
	require.Len(t, byCategory, 2)
	assert.True(t, byCategory[domain.CategoryRent].Equal(decimal.NewFromInt(70)))
}

func TestRecentCustomers(t *testing.T) {
	customers := []domain.Customer{
		{ID: "idle"},
		{ID: "old", Transactions: []domain.Transaction{txn(domain.Give, "1", "2026-01-01T00:00:00.000Z")}},
		{ID: "newest", Transactions: []domain.Transaction{
			txn(domain.Give, "1", "2025-01-01T00:00:00.000Z"),
			txn(domain.Take, "1", "2026-06-01T00:00:00.000Z"),
		}},
		{ID: "mid", Transactions: []domain.Transaction{txn(domain.Give, "1", "2026-03-01T00:00:00.000Z")}},
	}

	recent := accounting.RecentCustomers(customers, 3)

	require.Len(t, recent, 3)
	assert.Equal(t, "newest", recent[0].ID)
	assert.Equal(t, "mid", recent[1].ID)
	assert.Equal(t, "old", recent[2].ID)
	assert.Equal(t, "idle", customers[0].ID, "input order must be preserved")

	all := accounting.RecentCustomers(customers, 10)
	require.Len(t, all, 4)
	assert.Equal(t, "idle", all[3].ID)

	assert.Empty(t, accounting.RecentCustomers(customers, 0))
}
