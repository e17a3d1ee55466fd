package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/SscSPs/mero_khata/internal/apperrors"
	"github.com/shopspring/decimal"
)

// DecodeDocument parses an externally sourced document.
//
// The payload must be a JSON object carrying a truthy "shopName"; anything else is
// reported as apperrors.ErrInvalidDocument. Past that check decoding is lenient: a
// malformed field or entry falls back to its zero value instead of failing the whole
// document. The result is normalized.
func DecodeDocument(raw []byte) (Document, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return Document{}, fmt.Errorf("%w: not a JSON object", apperrors.ErrInvalidDocument)
	}
	shopName, ok := fields["shopName"]
	if !ok || !IsTruthyJSON(shopName) {
		return Document{}, fmt.Errorf("%w: missing shopName", apperrors.ErrInvalidDocument)
	}

	doc := Document{
		ShopName: looseString(shopName),
		Version:  looseFloat(fields["version"]),
	}
	for _, obj := range objectList(fields["customers"]) {
		doc.Customers = append(doc.Customers, decodeCustomer(obj))
	}
	for _, obj := range objectList(fields["expenses"]) {
		doc.Expenses = append(doc.Expenses, Expense{
			ID:       looseString(obj["id"]),
			Amount:   looseDecimal(obj["amount"]),
			Category: looseString(obj["category"]),
			Note:     looseString(obj["note"]),
			Date:     looseString(obj["date"]),
		})
	}
	return Normalize(doc), nil
}

func decodeCustomer(obj map[string]json.RawMessage) Customer {
	c := Customer{
		ID:           looseString(obj["id"]),
		Name:         looseString(obj["name"]),
		Phone:        looseString(obj["phone"]),
		Transactions: []Transaction{},
	}
	for _, t := range objectList(obj["transactions"]) {
		c.Transactions = append(c.Transactions, Transaction{
			ID:     looseString(t["id"]),
			Type:   TransactionType(looseString(t["type"])),
			Amount: looseDecimal(t["amount"]),
			Desc:   looseString(t["desc"]),
			Date:   looseString(t["date"]),
		})
	}
	return c
}

// IsTruthyJSON reports whether raw holds a value other than null, false, 0, "",
// an empty array or an empty object. Unparseable input is falsy.
func IsTruthyJSON(raw json.RawMessage) bool {
	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return false
	}
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case json.Number:
		d, err := decimal.NewFromString(val.String())
		return err == nil && !d.IsZero()
	case string:
		return val != ""
	case []any:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	}
	return false
}

// objectList decodes raw as an array and keeps only its object elements.
func objectList(raw json.RawMessage) []map[string]json.RawMessage {
	if len(raw) == 0 {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	out := make([]map[string]json.RawMessage, 0, len(items))
	for _, item := range items {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(item, &obj); err != nil || obj == nil {
			continue
		}
		out = append(out, obj)
	}
	return out
}

// looseString accepts strings and numbers; other values yield "".
func looseString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func looseDecimal(raw json.RawMessage) decimal.Decimal {
	if len(raw) == 0 {
		return decimal.Zero
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(raw); err != nil {
		return decimal.Zero
	}
	return d
}

func looseFloat(raw json.RawMessage) float64 {
	s := strings.TrimSpace(looseString(raw))
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	f, _ := d.Float64()
	return f
}
