// Package presenter renders sales reports for the console and for files.
package presenter

import (
	"fmt"
	"strings"

	"sales-ledger/internal/domain"
)

const lineWidth = 40

var (
	heavyRule = strings.Repeat("=", lineWidth)
	lightRule = strings.Repeat("-", lineWidth)
)

// TextRenderer renders the general report as plain text, for the console and .txt files.
type TextRenderer struct{}

// Extension implements usecase.Renderer.
func (TextRenderer) Extension() string { return "txt" }

// Render implements usecase.Renderer.
func (TextRenderer) Render(report *domain.Report) ([]byte, error) {
	return []byte(FormatText(report)), nil
}

// FormatText lays out the general report in the 40-column text format.
func FormatText(report *domain.Report) string {
	var b strings.Builder

	b.WriteString(heavyRule + "\n")
	b.WriteString("      RELATÓRIO GERAL DE VENDAS\n")
	b.WriteString(heavyRule + "\n")

	b.WriteString("\nResumo Geral:\n")
	fmt.Fprintf(&b, "  - Total Geral de Vendas: %s\n", domain.FormatBRL(report.TotalRevenue))
	fmt.Fprintf(&b, "  - Total de Transações:   %d\n", report.TransactionCount)
	if report.BestMonth.Month != "" {
		fmt.Fprintf(&b, "  - Melhor Mês:            %s (%s)\n", report.BestMonth.Month, domain.FormatBRL(report.BestMonth.Total))
	}

	section(&b, fmt.Sprintf("Top %d Vendedores (por Valor)", rankingLimit(report)))
	for i, r := range report.TopSellers {
		fmt.Fprintf(&b, "  %d. %-20s - %s\n", i+1, r.Seller, domain.FormatBRL(r.Total))
	}

	section(&b, fmt.Sprintf("Top %d Produtos (por Quantidade)", rankingLimit(report)))
	for i, r := range report.TopProducts {
		fmt.Fprintf(&b, "  %d. %-20s - %d unidades\n", i+1, r.Product, r.UnitsSold)
	}

	section(&b, "Vendas por Mês")
	for _, m := range report.Months {
		fmt.Fprintf(&b, "  - %s: %s\n", m.Month, domain.FormatBRL(m.Total))
	}

	b.WriteString("\n" + heavyRule + "\n")
	return b.String()
}

// FormatSellerReport lays out a per-seller report for the console.
func FormatSellerReport(report *domain.SellerReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\nRelatório de: %s\n", report.Name)
	fmt.Fprintf(&b, "  - Total Vendido: %s\n", domain.FormatBRL(report.Total))
	fmt.Fprintf(&b, "  - Nº de Transações: %d\n", report.Count)
	fmt.Fprintf(&b, "  - Valor Médio/Transação: %s\n", domain.FormatBRL(report.Average))
	b.WriteString("\n  Produtos vendidos (Quantidade):\n")
	for _, p := range report.Products {
		fmt.Fprintf(&b, "    - %s: %d un.\n", p.Product, p.Quantity)
	}
	return b.String()
}

func section(b *strings.Builder, title string) {
	b.WriteString("\n" + lightRule + "\n")
	b.WriteString(title + "\n")
	b.WriteString(lightRule + "\n")
}

func rankingLimit(report *domain.Report) int {
	if report.RankingLimit > 0 {
		return report.RankingLimit
	}
	return len(report.TopSellers)
}
