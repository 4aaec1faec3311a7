package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"sales-ledger/internal/domain"
)

// ImportUseCase loads sales in bulk through the ledger's validated insertion.
type ImportUseCase struct {
	ledger *Ledger
	source SaleSource
	logger zerolog.Logger
}

// NewImportUseCase creates a new instance of the usecase.
func NewImportUseCase(ledger *Ledger, source SaleSource, logger zerolog.Logger) *ImportUseCase {
	return &ImportUseCase{
		ledger: ledger,
		source: source,
		logger: logger.With().Str("component", "import").Logger(),
	}
}

// Import records every valid row read from path.
// Invalid rows are collected in the result and do not stop the import.
func (uc *ImportUseCase) Import(ctx context.Context, path string) (domain.ImportResult, error) {
	rows, err := uc.source.ReadSales(ctx, path)
	if err != nil {
		return domain.ImportResult{}, fmt.Errorf("could not read sales: %w", err)
	}

	result := domain.ImportResult{Rejected: make([]domain.RowError, 0)}
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if _, err := RecordRawSale(uc.ledger, row); err != nil {
			uc.logger.Warn().Err(err).Int("line", row.Line).Str("path", path).Msg("row rejected")
			result.Rejected = append(result.Rejected, domain.RowError{Line: row.Line, Err: err})
			continue
		}
		result.Imported++
	}

	uc.logger.Info().
		Str("path", path).
		Int("imported", result.Imported).
		Int("rejected", len(result.Rejected)).
		Msg("import finished")
	return result, nil
}

// RecordRawSale parses raw fields and records the resulting sale.
func RecordRawSale(ledger *Ledger, raw domain.RawSale) (domain.Sale, error) {
	in, err := domain.ParseSaleInput(raw)
	if err != nil {
		return domain.Sale{}, err
	}
	return ledger.RecordSale(in)
}
