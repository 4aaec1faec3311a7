package usecase

import (
	"context"

	"sales-ledger/internal/domain"
)

// SaleSource defines the interface for reading raw sales in bulk.
// The usecase layer depends on these interfaces, not on concrete implementations.
//
//go:generate mockgen -destination=mocks/mock_interface.go -source=interface.go
type SaleSource interface {
	ReadSales(ctx context.Context, path string) ([]domain.RawSale, error)
}

// ReportStore persists a rendered report and returns where it was written.
type ReportStore interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
}

// Renderer turns a report into the bytes of one output format.
type Renderer interface {
	Render(report *domain.Report) ([]byte, error)
	Extension() string
}
