package presenter

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"sales-ledger/internal/domain"
)

// Sheet names of the XLSX workbook.
const (
	SheetSummary  = "resumo"
	SheetSellers  = "vendedores"
	SheetProducts = "produtos"
	SheetMonths   = "meses"
	SheetSales    = "vendas"
)

var brlNumFmt = `"R$" #,##0.00`

// SpreadsheetRenderer renders the general report as an XLSX workbook.
type SpreadsheetRenderer struct{}

// Extension implements usecase.Renderer.
func (SpreadsheetRenderer) Extension() string { return "xlsx" }

// Render implements usecase.Renderer.
func (SpreadsheetRenderer) Render(report *domain.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, err
	}
	for _, name := range []string{SheetSellers, SheetProducts, SheetMonths, SheetSales} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
	}

	money, err := f.NewStyle(&excelize.Style{CustomNumFmt: &brlNumFmt})
	if err != nil {
		return nil, err
	}
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	w := &sheetWriter{f: f, headerStyle: header, moneyStyle: money}

	w.header(SheetSummary, "Relatório Geral de Vendas")
	w.row(SheetSummary, 3, "Total Geral de Vendas", report.TotalRevenue.InexactFloat64())
	w.moneyCell(SheetSummary, "B", 3)
	w.row(SheetSummary, 4, "Total de Transações", report.TransactionCount)
	if report.BestMonth.Month != "" {
		w.row(SheetSummary, 5, "Melhor Mês", report.BestMonth.Month)
		w.row(SheetSummary, 6, "Total do Melhor Mês", report.BestMonth.Total.InexactFloat64())
		w.moneyCell(SheetSummary, "B", 6)
	}

	w.header(SheetSellers, "Vendedor", "Total", "Transações", "Valor Médio", "Posição")
	rank := make(map[string]int, len(report.TopSellers))
	for i, r := range report.TopSellers {
		rank[r.Seller] = i + 1
	}
	for i, st := range report.Sellers {
		row := i + 2
		var position any
		if p, ok := rank[st.Seller]; ok {
			position = p
		}
		w.row(SheetSellers, row, st.Seller, st.Total.InexactFloat64(), st.Count, st.Average.Round(2).InexactFloat64(), position)
		w.moneyCell(SheetSellers, "B", row)
		w.moneyCell(SheetSellers, "D", row)
	}

	w.header(SheetProducts, "Produto", "Receita", "Unidades Vendidas")
	for i, st := range report.Products {
		row := i + 2
		w.row(SheetProducts, row, st.Product, st.Revenue.InexactFloat64(), st.UnitsSold)
		w.moneyCell(SheetProducts, "B", row)
	}

	w.header(SheetMonths, "Mês", "Total")
	for i, m := range report.Months {
		row := i + 2
		w.row(SheetMonths, row, m.Month, m.Total.InexactFloat64())
		w.moneyCell(SheetMonths, "B", row)
	}

	w.header(SheetSales, "ID", "Data", "Produto", "Vendedor", "Quantidade", "Valor Unitário", "Total")
	for i, s := range report.Sales {
		row := i + 2
		w.row(SheetSales, row, s.ID, s.Date.Format(domain.DateLayout), s.Product, s.Seller, s.Quantity, s.UnitPrice.InexactFloat64(), s.Total.InexactFloat64())
		w.moneyCell(SheetSales, "F", row)
		w.moneyCell(SheetSales, "G", row)
	}

	if w.err != nil {
		return nil, w.err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// sheetWriter keeps the first error of a series of cell writes.
type sheetWriter struct {
	f           *excelize.File
	headerStyle int
	moneyStyle  int
	err         error
}

func (w *sheetWriter) row(sheet string, row int, values ...any) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &values)
}

func (w *sheetWriter) header(sheet string, titles ...string) {
	values := make([]any, len(titles))
	for i, title := range titles {
		values[i] = title
	}
	w.row(sheet, 1, values...)
	if w.err != nil {
		return
	}
	last, err := excelize.CoordinatesToCellName(len(titles), 1)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetCellStyle(sheet, "A1", last, w.headerStyle)
	if w.err == nil {
		w.err = w.f.SetColWidth(sheet, "A", "A", 24)
	}
}

func (w *sheetWriter) moneyCell(sheet, col string, row int) {
	if w.err != nil {
		return
	}
	cell := fmt.Sprintf("%s%d", col, row)
	w.err = w.f.SetCellStyle(sheet, cell, cell, w.moneyStyle)
}
