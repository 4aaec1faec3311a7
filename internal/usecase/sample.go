package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"

	"sales-ledger/internal/domain"
)

var sampleSales = []domain.SaleInput{
	{Product: "Notebook Dell", Seller: "Maria Silva", Quantity: 2, UnitPrice: decimal.RequireFromString("3500.00"), Date: "2024-01-15"},
	{Product: "Mouse Logitech", Seller: "João Santos", Quantity: 5, UnitPrice: decimal.RequireFromString("89.90"), Date: "2024-01-16"},
	{Product: "Teclado Mecânico", Seller: "Maria Silva", Quantity: 3, UnitPrice: decimal.RequireFromString("250.00"), Date: "2024-01-17"},
	{Product: "Monitor LG", Seller: "Carlos Andrade", Quantity: 2, UnitPrice: decimal.RequireFromString("1200.00"), Date: "2024-01-20"},
	{Product: "Notebook Dell", Seller: "João Santos", Quantity: 1, UnitPrice: decimal.RequireFromString("3500.00"), Date: "2024-02-05"},
	{Product: "Cadeira Gamer", Seller: "Maria Silva", Quantity: 1, UnitPrice: decimal.RequireFromString("1100.00"), Date: "2024-02-10"},
	{Product: "Mouse Logitech", Seller: "Ana Pereira", Quantity: 10, UnitPrice: decimal.RequireFromString("85.00"), Date: "2024-02-12"},
	{Product: "Teclado Mecânico", Seller: "Carlos Andrade", Quantity: 2, UnitPrice: decimal.RequireFromString("240.00"), Date: "2024-03-01"},
	{Product: "Monitor LG", Seller: "João Santos", Quantity: 1, UnitPrice: decimal.RequireFromString("1150.00"), Date: "2024-03-05"},
}

// SeedSampleSales records the demonstration sales set and returns how many were added.
func SeedSampleSales(ledger *Ledger) (int, error) {
	for i, in := range sampleSales {
		if _, err := ledger.RecordSale(in); err != nil {
			return i, fmt.Errorf("sample sale %d: %w", i+1, err)
		}
	}
	return len(sampleSales), nil
}
