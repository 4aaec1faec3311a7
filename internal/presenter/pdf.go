package presenter

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"sales-ledger/internal/domain"
)

// PDFRenderer renders the general report as an A4 PDF document.
type PDFRenderer struct{}

// Extension implements usecase.Renderer.
func (PDFRenderer) Extension() string { return "pdf" }

// Render implements usecase.Renderer.
func (PDFRenderer) Render(report *domain.Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; translate UTF-8 text so accents survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle(tr("Relatório Geral de Vendas"), false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, tr("Relatório Geral de Vendas"))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Total Geral de Vendas: %s", domain.FormatBRL(report.TotalRevenue))))
	pdf.Ln(5)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Total de Transações: %d", report.TransactionCount)))
	pdf.Ln(5)
	if report.BestMonth.Month != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Melhor Mês: %s (%s)", report.BestMonth.Month, domain.FormatBRL(report.BestMonth.Total))))
		pdf.Ln(5)
	}
	pdf.Ln(4)

	limit := rankingLimit(report)

	tableTitle(pdf, tr(fmt.Sprintf("Top %d Vendedores (por Valor)", limit)))
	tableHeader(pdf, tr("#"), tr("Vendedor"), tr("Total"))
	for i, r := range report.TopSellers {
		tableRow(pdf, fmt.Sprintf("%d", i+1), tr(r.Seller), tr(domain.FormatBRL(r.Total)))
	}
	pdf.Ln(6)

	tableTitle(pdf, tr(fmt.Sprintf("Top %d Produtos (por Quantidade)", limit)))
	tableHeader(pdf, tr("#"), tr("Produto"), tr("Unidades"))
	for i, r := range report.TopProducts {
		tableRow(pdf, fmt.Sprintf("%d", i+1), tr(r.Product), fmt.Sprintf("%d", r.UnitsSold))
	}
	pdf.Ln(6)

	tableTitle(pdf, tr("Vendas por Mês"))
	tableHeader(pdf, "", tr("Mês"), tr("Total"))
	for _, m := range report.Months {
		tableRow(pdf, "", m.Month, tr(domain.FormatBRL(m.Total)))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var columnWidths = [3]float64{12, 90, 50}

func tableTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 7, title)
	pdf.Ln(8)
}

func tableHeader(pdf *gofpdf.Fpdf, cols ...string) {
	pdf.SetFont("Arial", "B", 10)
	for i, col := range cols {
		pdf.CellFormat(columnWidths[i], 6, col, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
}

func tableRow(pdf *gofpdf.Fpdf, cols ...string) {
	aligns := [3]string{"C", "L", "R"}
	for i, col := range cols {
		pdf.CellFormat(columnWidths[i], 6, col, "1", 0, aligns[i], false, 0, "")
	}
	pdf.Ln(-1)
}
