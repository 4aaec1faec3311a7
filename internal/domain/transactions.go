package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the only accepted textual form of a sale date.
const DateLayout = "2006-01-02"

// MonthLayout formats the month key used by the monthly aggregation.
const MonthLayout = "2006-01"

// Sale is a recorded sales transaction. It is never mutated after the ledger creates it.
type Sale struct {
	ID        int             `json:"id"`
	Product   string          `json:"product"`
	Seller    string          `json:"seller"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"` // Quantity * UnitPrice, rounded to cents
	Date      time.Time       `json:"date"`
}

// Month returns the YYYY-MM key of the sale date.
func (s Sale) Month() string {
	return s.Date.Format(MonthLayout)
}

// SaleInput carries the typed arguments of a sale insertion.
type SaleInput struct {
	Product   string
	Seller    string
	Quantity  int
	UnitPrice decimal.Decimal
	Date      string
}

// RawSale holds the five untyped fields of a sale as typed on the console
// or read from a CSV row.
type RawSale struct {
	Line      int // Source line, 0 when not read from a file
	Product   string
	Seller    string
	Quantity  string
	UnitPrice string
	Date      string
}
