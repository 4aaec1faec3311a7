package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "R$ 0,00"},
		{"0.5", "R$ 0,50"},
		{"89.9", "R$ 89,90"},
		{"999.99", "R$ 999,99"},
		{"1000", "R$ 1.000,00"},
		{"1234.56", "R$ 1.234,56"},
		{"7000", "R$ 7.000,00"},
		{"1234567.8", "R$ 1.234.567,80"},
		{"-1234.5", "R$ -1.234,50"},
		{"1025.004", "R$ 1.025,00"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBRL(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestParseSaleInput(t *testing.T) {
	tests := []struct {
		name    string
		raw     RawSale
		want    SaleInput
		wantErr error
	}{
		{
			name: "valid input is trimmed",
			raw:  RawSale{Product: " Notebook ", Seller: "Ana ", Quantity: " 2", UnitPrice: "1000.00", Date: "2024-01-15 "},
			want: SaleInput{Product: "Notebook", Seller: "Ana", Quantity: 2, UnitPrice: decimal.RequireFromString("1000.00"), Date: "2024-01-15"},
		},
		{
			name: "decimal comma in unit price",
			raw:  RawSale{Product: "Mouse", Seller: "Ana", Quantity: "5", UnitPrice: "89,90", Date: "2024-01-16"},
			want: SaleInput{Product: "Mouse", Seller: "Ana", Quantity: 5, UnitPrice: decimal.RequireFromString("89.90"), Date: "2024-01-16"},
		},
		{
			name:    "blank seller",
			raw:     RawSale{Product: "Mouse", Seller: "   ", Quantity: "5", UnitPrice: "89.90", Date: "2024-01-16"},
			wantErr: ErrMissingField,
		},
		{
			name:    "missing fields are reported before a bad quantity",
			raw:     RawSale{Product: "", Seller: "Ana", Quantity: "abc", UnitPrice: "x", Date: "2024-01-16"},
			wantErr: ErrMissingField,
		},
		{
			name:    "float quantity is rejected",
			raw:     RawSale{Product: "Mouse", Seller: "Ana", Quantity: "2.0", UnitPrice: "10", Date: "2024-01-16"},
			wantErr: ErrInvalidQuantity,
		},
		{
			name:    "zero quantity is reported before a bad price",
			raw:     RawSale{Product: "Mouse", Seller: "Ana", Quantity: "0", UnitPrice: "abc", Date: "2024-01-16"},
			wantErr: ErrInvalidQuantity,
		},
		{
			name:    "negative price",
			raw:     RawSale{Product: "Mouse", Seller: "Ana", Quantity: "1", UnitPrice: "-3", Date: "2024-01-16"},
			wantErr: ErrInvalidUnitPrice,
		},
		{
			name:    "non numeric price",
			raw:     RawSale{Product: "Mouse", Seller: "Ana", Quantity: "1", UnitPrice: "ten", Date: "2024-01-16"},
			wantErr: ErrInvalidUnitPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSaleInput(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, errors.Is(err, ErrValidation))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want.Product, got.Product)
			assert.Equal(t, tt.want.Seller, got.Seller)
			assert.Equal(t, tt.want.Quantity, got.Quantity)
			assert.True(t, tt.want.UnitPrice.Equal(got.UnitPrice), "unit price %s", got.UnitPrice)
			assert.Equal(t, tt.want.Date, got.Date)
		})
	}
}

func TestErrorClasses(t *testing.T) {
	assert.ErrorIs(t, ErrEmptyLedger, ErrNotFound)
	assert.ErrorIs(t, ErrSellerNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrInvalidDate, ErrValidation)
	assert.NotErrorIs(t, ErrInvalidDate, ErrNotFound)
}
