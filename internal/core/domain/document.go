package domain

import "strings"

// DefaultShopName is used for new documents and whenever a document lacks a usable shop name.
// It may be overridden once at startup from configuration.
var DefaultShopName = "Mero Digital Pasal"

// SchemaVersion tags documents written by this version. Informational only.
const SchemaVersion = 3.0

// Document is the single persisted ledger aggregate.
type Document struct {
	ShopName  string     `json:"shopName"`
	Customers []Customer `json:"customers"` // Insertion order
	Expenses  []Expense  `json:"expenses"`
	Version   float64    `json:"version"`
}

// DefaultDocument returns a fresh default document. Callers own the result.
func DefaultDocument() Document {
	return Document{
		ShopName:  DefaultShopName,
		Customers: []Customer{},
		Expenses:  []Expense{},
		Version:   SchemaVersion,
	}
}

// Normalize returns doc with collections guaranteed present and a usable shop name.
// It never fails; malformed parts degrade to defaults.
func Normalize(doc Document) Document {
	if strings.TrimSpace(doc.ShopName) == "" {
		doc.ShopName = DefaultShopName
	}
	if doc.Customers == nil {
		doc.Customers = []Customer{}
	}
	for i := range doc.Customers {
		if doc.Customers[i].Transactions == nil {
			doc.Customers[i].Transactions = []Transaction{}
		}
	}
	if doc.Expenses == nil {
		doc.Expenses = []Expense{}
	}
	if doc.Version == 0 {
		doc.Version = SchemaVersion
	}
	return doc
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	out := d
	if d.Customers != nil {
		out.Customers = make([]Customer, len(d.Customers))
		for i, c := range d.Customers {
			out.Customers[i] = c
			if c.Transactions != nil {
				out.Customers[i].Transactions = append([]Transaction(nil), c.Transactions...)
				if len(c.Transactions) == 0 {
					out.Customers[i].Transactions = []Transaction{}
				}
			}
		}
	}
	if d.Expenses != nil {
		out.Expenses = make([]Expense, len(d.Expenses))
		copy(out.Expenses, d.Expenses)
	}
	return out
}

// FindCustomer returns the index of the customer with the given id, or -1.
func (d *Document) FindCustomer(id string) int {
	for i := range d.Customers {
		if d.Customers[i].ID == id {
			return i
		}
	}
	return -1
}

// FindExpense returns the index of the expense with the given id, or -1.
func (d *Document) FindExpense(id string) int {
	for i := range d.Expenses {
		if d.Expenses[i].ID == id {
			return i
		}
	}
	return -1
}
