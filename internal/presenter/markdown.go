package presenter

import (
	"fmt"
	"strings"

	"sales-ledger/internal/domain"
)

// MarkdownRenderer renders the general report as a Markdown document.
type MarkdownRenderer struct{}

// Extension implements usecase.Renderer.
func (MarkdownRenderer) Extension() string { return "md" }

// Render implements usecase.Renderer.
func (MarkdownRenderer) Render(report *domain.Report) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# Relatório Geral de Vendas\n\n")

	b.WriteString("## Resumo Geral\n\n")
	fmt.Fprintf(&b, "* **Total Geral de Vendas:** %s\n", domain.FormatBRL(report.TotalRevenue))
	fmt.Fprintf(&b, "* **Total de Transações:** %d\n", report.TransactionCount)
	if report.BestMonth.Month != "" {
		fmt.Fprintf(&b, "* **Melhor Mês:** %s (%s)\n", report.BestMonth.Month, domain.FormatBRL(report.BestMonth.Total))
	}

	fmt.Fprintf(&b, "\n## Top %d Vendedores (por Valor)\n\n", rankingLimit(report))
	for i, r := range report.TopSellers {
		fmt.Fprintf(&b, "%d.  **%s** - %s\n", i+1, r.Seller, domain.FormatBRL(r.Total))
	}

	fmt.Fprintf(&b, "\n## Top %d Produtos (por Quantidade)\n\n", rankingLimit(report))
	for i, r := range report.TopProducts {
		fmt.Fprintf(&b, "%d.  **%s** - %d unidades\n", i+1, r.Product, r.UnitsSold)
	}

	b.WriteString("\n## Vendas por Mês\n\n")
	for _, m := range report.Months {
		fmt.Fprintf(&b, "* **%s:** %s\n", m.Month, domain.FormatBRL(m.Total))
	}

	return []byte(b.String()), nil
}
