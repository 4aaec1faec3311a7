package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"sales-ledger/internal/domain"
	"sales-ledger/internal/usecase"
	mock_usecase "sales-ledger/internal/usecase/mocks"
)

func TestImportUseCase_Import(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		path         string
		rows         []domain.RawSale
		sourceErr    error
		wantImported int
		wantRejected map[int]error
		wantErr      bool
	}{
		{
			name: "all rows valid",
			path: "vendas.csv",
			rows: []domain.RawSale{
				{Line: 2, Product: "Notebook", Seller: "Ana", Quantity: "2", UnitPrice: "1000.00", Date: "2024-01-15"},
				{Line: 3, Product: "Mouse", Seller: "Ana", Quantity: "1", UnitPrice: "50,00", Date: "2024-01-20"},
			},
			wantImported: 2,
			wantRejected: map[int]error{},
		},
		{
			name: "invalid rows are collected",
			path: "vendas.csv",
			rows: []domain.RawSale{
				{Line: 2, Product: "Notebook", Seller: "Ana", Quantity: "2", UnitPrice: "1000.00", Date: "2024-01-15"},
				{Line: 3, Product: "Mouse", Seller: "Ana", Quantity: "0", UnitPrice: "50", Date: "2024-01-20"},
				{Line: 4, Product: "Mouse", Seller: "", Quantity: "1", UnitPrice: "50", Date: "2024-01-20"},
				{Line: 5, Product: "Mouse", Seller: "Bia", Quantity: "1", UnitPrice: "50", Date: "2024-13-01"},
				{Line: 6, Product: "Cabo", Seller: "Bia", Quantity: "2.0", UnitPrice: "5", Date: "2024-01-02"},
				{Line: 7, Product: "Cabo", Seller: "Bia", Quantity: "1", UnitPrice: "-5", Date: "2024-01-02"},
				{Line: 8, Product: "Hub", Seller: "Bia", Quantity: "1", UnitPrice: "120", Date: "2024-02-02"},
			},
			wantImported: 2,
			wantRejected: map[int]error{
				3: domain.ErrInvalidQuantity,
				4: domain.ErrMissingField,
				5: domain.ErrInvalidDate,
				6: domain.ErrInvalidQuantity,
				7: domain.ErrInvalidUnitPrice,
			},
		},
		{
			name:      "source error",
			path:      "missing.csv",
			sourceErr: errors.New("file not found"),
			wantErr:   true,
		},
		{
			name:         "empty source",
			path:         "empty.csv",
			rows:         nil,
			wantImported: 0,
			wantRejected: map[int]error{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mSource := mock_usecase.NewMockSaleSource(ctrl)
			mSource.EXPECT().ReadSales(gomock.Any(), tt.path).Return(tt.rows, tt.sourceErr)

			ledger := usecase.NewLedger()
			uc := usecase.NewImportUseCase(ledger, mSource, zerolog.Nop())
			got, err := uc.Import(context.Background(), tt.path)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 0, ledger.Count())
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantImported, got.Imported)
			assert.Equal(t, tt.wantImported, ledger.Count())
			assert.Len(t, got.Rejected, len(tt.wantRejected))
			for _, rej := range got.Rejected {
				assert.ErrorIs(t, rej.Err, tt.wantRejected[rej.Line], "line %d", rej.Line)
			}

			// Rejected rows do not consume ids
			for i, s := range ledger.Sales() {
				assert.Equal(t, i+1, s.ID)
			}
		})
	}
}

func TestImportUseCase_CanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mSource := mock_usecase.NewMockSaleSource(ctrl)
	mSource.EXPECT().ReadSales(gomock.Any(), "vendas.csv").Return([]domain.RawSale{
		{Line: 2, Product: "Hub", Seller: "Bia", Quantity: "1", UnitPrice: "120", Date: "2024-02-02"},
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ledger := usecase.NewLedger()
	_, err := usecase.NewImportUseCase(ledger, mSource, zerolog.Nop()).Import(ctx, "vendas.csv")

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, ledger.Count())
}

func TestRecordRawSale(t *testing.T) {
	ledger := usecase.NewLedger()

	got, err := usecase.RecordRawSale(ledger, domain.RawSale{Product: "Mouse", Seller: "Ana", Quantity: "3", UnitPrice: "89,90", Date: "2024-01-16"})
	assert.NoError(t, err)
	assert.Equal(t, 1, got.ID)
	assertMoney(t, "269.70", got.Total)

	_, err = usecase.RecordRawSale(ledger, domain.RawSale{Product: "Mouse", Seller: "Ana", Quantity: "3", UnitPrice: "abc", Date: "2024-01-16"})
	assert.ErrorIs(t, err, domain.ErrInvalidUnitPrice)
	assert.Equal(t, 1, ledger.Count())
}
