package dto

import "github.com/shopspring/decimal"

// ChartSeries feeds the receivable/payable doughnut chart.
type ChartSeries struct {
	Labels []string          `json:"labels"`
	Values []decimal.Decimal `json:"values"`
}

// DashboardResponse represents the dashboard summary of the whole khata.
type DashboardResponse struct {
	ShopName           string                     `json:"shopName"`
	TotalReceivable    decimal.Decimal            `json:"totalReceivable"`
	TotalPayable       decimal.Decimal            `json:"totalPayable"`
	TotalExpenses      decimal.Decimal            `json:"totalExpenses"`
	CustomerCount      int                        `json:"customerCount"`
	ExpenseCount       int                        `json:"expenseCount"`
	RecentCustomers    []CustomerResponse         `json:"recentCustomers"`
	Chart              ChartSeries                `json:"chart"`
	ExpensesByCategory map[string]decimal.Decimal `json:"expensesByCategory"`
}
