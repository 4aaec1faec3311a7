package domain

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBRL formats an amount as Brazilian currency, e.g. "R$ 1.234,56".
func FormatBRL(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	b.WriteString("R$ ")
	b.WriteString(sign)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}

// ParseSaleInput converts the raw fields of a sale into typed input.
//
// Checks run in insertion order: text fields, then quantity, then unit price.
// The quantity must be a base-10 integer ("2.0" is rejected) and the unit
// price accepts either "." or "," as decimal separator. The date is left as
// text and is validated when the sale is recorded.
func ParseSaleInput(raw RawSale) (SaleInput, error) {
	product := strings.TrimSpace(raw.Product)
	seller := strings.TrimSpace(raw.Seller)
	date := strings.TrimSpace(raw.Date)
	if product == "" || seller == "" || date == "" {
		return SaleInput{}, ErrMissingField
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(raw.Quantity))
	if err != nil || quantity <= 0 {
		return SaleInput{}, ErrInvalidQuantity
	}

	price, err := ParseAmount(raw.UnitPrice)
	if err != nil {
		return SaleInput{}, err
	}

	return SaleInput{
		Product:   product,
		Seller:    seller,
		Quantity:  quantity,
		UnitPrice: price,
		Date:      date,
	}, nil
}

// ParseAmount parses a positive decimal amount such as "3500.00" or "89,90".
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidUnitPrice
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	amount, err := decimal.NewFromString(s)
	if err != nil || !amount.IsPositive() {
		return decimal.Zero, ErrInvalidUnitPrice
	}
	return amount, nil
}
