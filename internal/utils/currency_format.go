package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencyPrefix is prepended to every formatted amount.
const CurrencyPrefix = "Rs "

// FormatCurrency formats an amount the way the shop reads it: rupee prefix,
// Indian digit grouping and at most two decimals without trailing zeros.
// Example: 123456.50 returns "Rs 1,23,456.5"
func FormatCurrency(amount decimal.Decimal) string {
	return CurrencyPrefix + FormatIndianGrouping(amount)
}

// FormatIndianGrouping groups the integer part as 12,34,567 (last three digits, then pairs).
func FormatIndianGrouping(amount decimal.Decimal) string {
	s := amount.Round(2).String()
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	if len(intPart) <= 3 {
		return sign + intPart + frac
	}
	head, tail := intPart[:len(intPart)-3], intPart[len(intPart)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return sign + strings.Join(groups, ",") + "," + tail + frac
}
