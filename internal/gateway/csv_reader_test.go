package gateway

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sales-ledger/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCSVSaleReader_ReadSales(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected []domain.RawSale
		wantErr  bool
	}{
		{
			name: "valid sales",
			lines: []string{
				"product,seller,quantity,unit_price,date",
				"Notebook Dell,Maria Silva,2,3500.00,2024-01-15",
				"Mouse Logitech,João Santos,5,89.90,2024-01-16",
				`"Teclado, Mecânico",Maria Silva,3,"250,00",2024-01-17`,
			},
			expected: []domain.RawSale{
				{Line: 2, Product: "Notebook Dell", Seller: "Maria Silva", Quantity: "2", UnitPrice: "3500.00", Date: "2024-01-15"},
				{Line: 3, Product: "Mouse Logitech", Seller: "João Santos", Quantity: "5", UnitPrice: "89.90", Date: "2024-01-16"},
				{Line: 4, Product: "Teclado, Mecânico", Seller: "Maria Silva", Quantity: "3", UnitPrice: "250,00", Date: "2024-01-17"},
			},
		},
		{
			name: "invalid values are passed through",
			lines: []string{
				"product,seller,quantity,unit_price,date",
				"Mouse,,0,abc,2024-13-01",
			},
			expected: []domain.RawSale{
				{Line: 2, Product: "Mouse", Seller: "", Quantity: "0", UnitPrice: "abc", Date: "2024-13-01"},
			},
		},
		{
			name: "leading spaces are trimmed",
			lines: []string{
				"product, seller, quantity, unit_price, date",
				"Mouse, Ana, 1, 50, 2024-01-20",
			},
			expected: []domain.RawSale{
				{Line: 2, Product: "Mouse", Seller: "Ana", Quantity: "1", UnitPrice: "50", Date: "2024-01-20"},
			},
		},
		{
			name: "empty file with header only",
			lines: []string{
				"product,seller,quantity,unit_price,date",
			},
			expected: nil,
		},
		{
			name: "wrong column count",
			lines: []string{
				"product,seller,quantity,unit_price,date",
				"Mouse,Ana,1,50",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile, err := createTempCSVFromLines(t, tt.lines)
			if err != nil {
				t.Fatalf("Failed to create temp CSV file: %v", err)
			}

			repo := NewCSVSaleReader()
			got, err := repo.ReadSales(context.Background(), tmpFile)
			if tt.wantErr {
				assert.Error(t, err, "Expected error but got nil")
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestCSVSaleReader_ReadSales_FileErrors(t *testing.T) {
	repo := NewCSVSaleReader()
	ctx := context.Background()

	t.Run("file not found", func(t *testing.T) {
		_, err := repo.ReadSales(ctx, filepath.Join(t.TempDir(), "nonexistent_file.csv"))
		if err == nil {
			t.Error("Expected error for nonexistent file, got nil")
		}
	})

	t.Run("file with no header", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.csv")
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatalf("Failed to create temp file: %v", err)
		}

		_, err := repo.ReadSales(ctx, path)
		if err == nil {
			t.Error("Expected error for empty file, got nil")
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		path, err := createTempCSVFromLines(t, []string{"product,seller,quantity,unit_price,date", "Mouse,Ana,1,50,2024-01-20"})
		if err != nil {
			t.Fatalf("Failed to create temp file: %v", err)
		}
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err = repo.ReadSales(canceled, path)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func createTempCSVFromLines(t testing.TB, lines []string) (string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sales.csv")
	err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644)
	return path, err
}

// Benchmark tests

func BenchmarkReadSales(b *testing.B) {
	lines := []string{"product,seller,quantity,unit_price,date"}
	for i := 0; i < 1000; i++ {
		lines = append(lines, "Mouse Logitech,João Santos,5,89.90,2024-01-16")
	}

	tmpFile, err := createTempCSVFromLines(b, lines)
	if err != nil {
		b.Fatalf("Failed to create temp file: %v", err)
	}

	repo := NewCSVSaleReader()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := repo.ReadSales(ctx, tmpFile); err != nil {
			b.Fatalf("Error in benchmark: %v", err)
		}
	}
}
