package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"sales-ledger/internal/domain"
)

const saleColumns = 5

// CSVSaleReader implements the SaleSource interface for CSV files.
// Rows are product,seller,quantity,unit_price,date after a header line;
// field values are passed on untouched for the ledger to validate.
type CSVSaleReader struct{}

// NewCSVSaleReader creates a new reader instance.
func NewCSVSaleReader() *CSVSaleReader {
	return &CSVSaleReader{}
}

// ReadSales reads and returns the raw rows of a sales CSV file.
func (r *CSVSaleReader) ReadSales(ctx context.Context, path string) ([]domain.RawSale, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sales file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = saleColumns
	reader.TrimLeadingSpace = true

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	var sales []domain.RawSale
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}

		line, _ := reader.FieldPos(0)
		sales = append(sales, domain.RawSale{
			Line:      line,
			Product:   record[0],
			Seller:    record[1],
			Quantity:  record[2],
			UnitPrice: record[3],
			Date:      record[4],
		})
	}
	return sales, nil
}
