package accounting

import (
	"sort"

	"github.com/SscSPs/mero_khata/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Status describes which side of the khata a balance falls on.
type Status string

const (
	ToReceive Status = "to receive"
	ToPay     Status = "to pay"
	Settled   Status = "settled"
)

// SignedAmount returns the amount with the sign it contributes to a customer balance:
// give adds, take subtracts. Unknown types contribute nothing.
func SignedAmount(txn domain.Transaction) decimal.Decimal {
	switch txn.Type {
	case domain.Give:
		return txn.Amount
	case domain.Take:
		return txn.Amount.Neg()
	default:
		return decimal.Zero
	}
}

// Balance is Σ(give) − Σ(take). Positive means the customer owes the shop.
func Balance(transactions []domain.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, txn := range transactions {
		sum = sum.Add(SignedAmount(txn))
	}
	return sum
}

// BalanceStatus classifies a balance by its sign.
func BalanceStatus(balance decimal.Decimal) Status {
	switch balance.Sign() {
	case 1:
		return ToReceive
	case -1:
		return ToPay
	default:
		return Settled
	}
}

// TotalReceivable sums the positive customer balances.
func TotalReceivable(customers []domain.Customer) decimal.Decimal {
	total := decimal.Zero
	for _, c := range customers {
		if bal := Balance(c.Transactions); bal.IsPositive() {
			total = total.Add(bal)
		}
	}
	return total
}

// TotalPayable sums the absolute values of the negative customer balances.
func TotalPayable(customers []domain.Customer) decimal.Decimal {
	total := decimal.Zero
	for _, c := range customers {
		if bal := Balance(c.Transactions); bal.IsNegative() {
			total = total.Add(bal.Abs())
		}
	}
	return total
}

// TotalExpenses sums all expense amounts.
func TotalExpenses(expenses []domain.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// ExpensesByCategory sums expense amounts per category.
func ExpensesByCategory(expenses []domain.Expense) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		out[e.Category] = out[e.Category].Add(e.Amount)
	}
	return out
}

// RecentCustomers returns up to n customers ordered by their last transaction date, newest first.
// Customers without transactions sort last. Order among equal dates is unspecified.
// The input slice is not modified.
func RecentCustomers(customers []domain.Customer, n int) []domain.Customer {
	if n <= 0 {
		return []domain.Customer{}
	}
	sorted := make([]domain.Customer, len(customers))
	copy(sorted, customers)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].LastTransactionDate() > sorted[j].LastTransactionDate()
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
