package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/mero_khata/internal/apperrors"
	"github.com/SscSPs/mero_khata/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDocument_NotAliased(t *testing.T) {
	a := domain.DefaultDocument()
	b := domain.DefaultDocument()

	a.Customers = append(a.Customers, domain.Customer{ID: "c1"})
	a.Expenses = append(a.Expenses, domain.Expense{ID: "e1"})

	assert.Empty(t, b.Customers)
	assert.Empty(t, b.Expenses)
	assert.Equal(t, domain.DefaultShopName, b.ShopName)
	assert.Equal(t, domain.SchemaVersion, b.Version)
}

func TestNormalize_DefaultIsFixedPoint(t *testing.T) {
	assert.Equal(t, domain.DefaultDocument(), domain.Normalize(domain.DefaultDocument()))
}

func TestNormalize_FillsMissingParts(t *testing.T) {
	doc := domain.Normalize(domain.Document{
		ShopName:  "   ",
		Customers: []domain.Customer{{ID: "c1", Name: "Ram"}},
	})

	assert.Equal(t, domain.DefaultShopName, doc.ShopName)
	require.Len(t, doc.Customers, 1)
	assert.NotNil(t, doc.Customers[0].Transactions)
	assert.NotNil(t, doc.Expenses)
	assert.Equal(t, domain.SchemaVersion, doc.Version)
}

func TestDocument_CloneIsDeep(t *testing.T) {
	orig := domain.Document{
		ShopName: "Pasal",
		Customers: []domain.Customer{{
			ID:           "c1",
			Transactions: []domain.Transaction{{ID: "t1", Amount: decimal.NewFromInt(10)}},
		}},
		Expenses: []domain.Expense{{ID: "e1"}},
	}

	clone := orig.Clone()
	clone.Customers[0].Name = "changed"
	clone.Customers[0].Transactions[0].Desc = "changed"
	clone.Expenses[0].Note = "changed"

	assert.Empty(t, orig.Customers[0].Name)
	assert.Empty(t, orig.Customers[0].Transactions[0].Desc)
	assert.Empty(t, orig.Expenses[0].Note)
}

func TestDocument_Find(t *testing.T) {
	doc := domain.Document{
		Customers: []domain.Customer{{ID: "c1"}, {ID: "c2"}},
		Expenses:  []domain.Expense{{ID: "e1"}},
	}

	assert.Equal(t, 1, doc.FindCustomer("c2"))
	assert.Equal(t, -1, doc.FindCustomer("c3"))
	assert.Equal(t, 0, doc.FindExpense("e1"))
	assert.Equal(t, -1, doc.FindExpense("e2"))
}

func TestDocument_MarshalsAmountsAsNumbers(t *testing.T) {
	doc := domain.DefaultDocument()
	doc.Expenses = append(doc.Expenses, domain.Expense{ID: "e1", Amount: decimal.RequireFromString("50.5"), Category: "Rent"})

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	assert.Contains(t, string(raw), `"amount":50.5`)
	assert.Contains(t, string(raw), `"shopName":"Mero Digital Pasal"`)
}

func TestDecodeDocument(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
		check   func(t *testing.T, doc domain.Document)
	}{
		{
			name:    "null",
			raw:     `null`,
			wantErr: true,
		},
		{
			name:    "array",
			raw:     `[1,2]`,
			wantErr: true,
		},
		{
			name:    "missing shop name",
			raw:     `{"customers":[]}`,
			wantErr: true,
		},
		{
			name:    "empty shop name",
			raw:     `{"shopName":""}`,
			wantErr: true,
		},
		{
			name: "missing collections are normalized",
			raw:  `{"shopName":"Hari Store"}`,
			check: func(t *testing.T, doc domain.Document) {
				assert.Equal(t, "Hari Store", doc.ShopName)
				assert.NotNil(t, doc.Customers)
				assert.NotNil(t, doc.Expenses)
				assert.Equal(t, domain.SchemaVersion, doc.Version)
			},
		},
		{
			name: "numeric shop name is kept as text",
			raw:  `{"shopName":42}`,
			check: func(t *testing.T, doc domain.Document) {
				assert.Equal(t, "42", doc.ShopName)
			},
		},
		{
			name: "malformed collections degrade",
			raw:  `{"shopName":"S","customers":"oops","expenses":[1,{"id":"e1","amount":"12.5","category":"Rent"}]}`,
			check: func(t *testing.T, doc domain.Document) {
				assert.Empty(t, doc.Customers)
				require.Len(t, doc.Expenses, 1)
				assert.Equal(t, "e1", doc.Expenses[0].ID)
				assert.True(t, doc.Expenses[0].Amount.Equal(decimal.RequireFromString("12.5")))
			},
		},
		{
			name: "full document",
			raw: `{"shopName":"S","version":3,"customers":[{"id":"c1","name":"Ram","phone":9800000000,
				"transactions":[{"id":"t1","type":"give","amount":100,"desc":"Rice","date":"2026-01-01T10:00:00.000Z"},
				{"id":"t2","type":"take","amount":"abc","desc":"","date":"2026-01-02T10:00:00.000Z"}]},
				{"id":"c2","name":"Sita"}]}`,
			check: func(t *testing.T, doc domain.Document) {
				require.Len(t, doc.Customers, 2)
				ram := doc.Customers[0]
				assert.Equal(t, "9800000000", ram.Phone)
				require.Len(t, ram.Transactions, 2)
				assert.Equal(t, domain.Give, ram.Transactions[0].Type)
				assert.True(t, ram.Transactions[0].Amount.Equal(decimal.NewFromInt(100)))
				assert.True(t, ram.Transactions[1].Amount.IsZero())
				assert.NotNil(t, doc.Customers[1].Transactions)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := domain.DecodeDocument([]byte(tt.raw))
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidDocument)
				return
			}
			require.NoError(t, err)
			tt.check(t, doc)
		})
	}
}

func TestIsTruthyJSON(t *testing.T) {
	truthy := []string{`true`, `1`, `-0.5`, `"0"`, `"x"`, `[0]`, `{"a":null}`}
	falsy := []string{`null`, `false`, `0`, `0.0`, `""`, `[]`, `{}`, `{bad`}

	for _, raw := range truthy {
		assert.True(t, domain.IsTruthyJSON(json.RawMessage(raw)), raw)
	}
	for _, raw := range falsy {
		assert.False(t, domain.IsTruthyJSON(json.RawMessage(raw)), raw)
	}
}
