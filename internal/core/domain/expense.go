package domain

import "github.com/shopspring/decimal"

// Expense categories offered by the expense form. Other values are tolerated.
const (
	CategoryTeaKhaja  = "Tea/Khaja"
	CategoryRent      = "Rent"
	CategoryTransport = "Transport"
	CategoryUtilities = "Utilities"
	CategoryStock     = "Stock"
	CategoryOther     = "Other"
)

// ExpenseCategories lists the known categories in display order.
var ExpenseCategories = []string{
	CategoryTeaKhaja,
	CategoryRent,
	CategoryTransport,
	CategoryUtilities,
	CategoryStock,
	CategoryOther,
}

// IsKnownCategory reports whether category is one of ExpenseCategories.
func IsKnownCategory(category string) bool {
	for _, c := range ExpenseCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Expense is money the shop spent on itself.
type Expense struct {
	ID       string          `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Note     string          `json:"note"`
	Date     string          `json:"date"`
}
