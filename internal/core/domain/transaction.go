package domain

import "github.com/shopspring/decimal"

// TransactionType indicates the direction of a khata entry.
type TransactionType string

const (
	// Give means the shop handed goods or cash to the customer; the customer owes more.
	Give TransactionType = "give"
	// Take means the shop received a payment; the customer owes less.
	Take TransactionType = "take"
)

// IsValid reports whether t is one of the known directions.
func (t TransactionType) IsValid() bool {
	return t == Give || t == Take
}

// DefaultDescription is the remark stored when a transaction is entered without one.
func (t TransactionType) DefaultDescription() string {
	if t == Give {
		return "Goods/Cash Given"
	}
	return "Payment Received"
}

// Transaction is a single give/take line in a customer's khata.
type Transaction struct {
	ID     string          `json:"id"`
	Type   TransactionType `json:"type"`   // give or take
	Amount decimal.Decimal `json:"amount"` // Positive value
	Desc   string          `json:"desc"`
	Date   string          `json:"date"` // ISO-8601, see FormatTimestamp
}

// Customer is a party the shop keeps a running balance with.
type Customer struct {
	ID           string        `json:"id"` // Generated at creation, never changes
	Name         string        `json:"name"`
	Phone        string        `json:"phone"`
	Transactions []Transaction `json:"transactions"` // Oldest first
}

// FindTransaction returns the index of the transaction with the given id, or -1.
func (c *Customer) FindTransaction(id string) int {
	for i := range c.Transactions {
		if c.Transactions[i].ID == id {
			return i
		}
	}
	return -1
}

// LastTransactionDate returns the date of the most recently appended transaction,
// or an empty string when the customer has none.
func (c *Customer) LastTransactionDate() string {
	if len(c.Transactions) == 0 {
		return ""
	}
	return c.Transactions[len(c.Transactions)-1].Date
}
