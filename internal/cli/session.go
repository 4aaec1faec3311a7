// Package cli drives the sales ledger from a terminal, either through the
// interactive menu or as a one-shot batch run.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"sales-ledger/internal/domain"
	"sales-ledger/internal/metrics"
	"sales-ledger/internal/presenter"
	"sales-ledger/internal/usecase"
)

const (
	menuWidth   = 30
	noSalesNote = "\n*** Nenhuma venda registrada para %s. ***\n"
)

// exportOptions maps menu options to report formats.
var exportOptions = map[string]string{
	"4": "txt",
	"5": "md",
	"6": "xlsx",
	"7": "pdf",
}

// Renderers returns every report renderer keyed by format name.
func Renderers() map[string]usecase.Renderer {
	return map[string]usecase.Renderer{
		"txt":  presenter.TextRenderer{},
		"md":   presenter.MarkdownRenderer{},
		"xlsx": presenter.SpreadsheetRenderer{},
		"pdf":  presenter.PDFRenderer{},
	}
}

// Deps groups the collaborators of a session.
type Deps struct {
	Ledger   *usecase.Ledger
	Exporter *usecase.ExportUseCase
	Importer *usecase.ImportUseCase
	Metrics  *metrics.Metrics
	Logger   zerolog.Logger
}

// Session is one console conversation with the ledger.
type Session struct {
	ledger   *usecase.Ledger
	exporter *usecase.ExportUseCase
	importer *usecase.ImportUseCase
	metrics  *metrics.Metrics
	logger   zerolog.Logger

	in  *bufio.Scanner
	out io.Writer
}

// NewSession creates a session reading answers from in and writing to out.
func NewSession(deps Deps, in io.Reader, out io.Writer) *Session {
	return &Session{
		ledger:   deps.Ledger,
		exporter: deps.Exporter,
		importer: deps.Importer,
		metrics:  deps.Metrics,
		logger:   deps.Logger.With().Str("component", "cli").Logger(),
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run shows the menu until the user quits or the input ends.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printMenu()
		option, err := s.prompt("Escolha uma opção: ")
		if err != nil {
			return s.endOfInput(err)
		}
		option = strings.TrimSpace(option)
		s.logger.Debug().Str("option", option).Msg("menu option selected")

		switch option {
		case "1":
			err = s.registerSale()
		case "2":
			s.showReport()
		case "3":
			err = s.showSellerReport()
		case "4", "5", "6", "7":
			s.export(ctx, exportOptions[option])
		case "8":
			err = s.importFile(ctx)
		case "9":
			s.printf("Saindo do sistema...\n")
			return nil
		default:
			s.printf("Opção inválida. Tente novamente.\n")
		}
		if err != nil {
			return s.endOfInput(err)
		}
	}
}

func (s *Session) printMenu() {
	s.printf("\n%s\n", strings.Repeat("=", menuWidth))
	s.printf("  Sistema de Análise de Vendas\n")
	s.printf("%s\n", strings.Repeat("=", menuWidth))
	s.printf("1. Registrar Venda\n")
	s.printf("2. Exibir Relatório Geral\n")
	s.printf("3. Exibir Relatório por Vendedor\n")
	s.printf("4. Salvar Relatório Geral (Arquivo .txt)\n")
	s.printf("5. Salvar Relatório (Markdown .md)\n")
	s.printf("6. Salvar Relatório (Planilha .xlsx)\n")
	s.printf("7. Salvar Relatório (PDF .pdf)\n")
	s.printf("8. Importar Vendas (Arquivo .csv)\n")
	s.printf("9. Sair\n")
	s.printf("%s\n", strings.Repeat("-", menuWidth))
}

func (s *Session) registerSale() error {
	s.printf("\n--- Registro de Nova Venda ---\n")

	var raw domain.RawSale
	fields := []struct {
		label string
		dst   *string
	}{
		{"Produto: ", &raw.Product},
		{"Vendedor: ", &raw.Seller},
		{"Quantidade: ", &raw.Quantity},
		{"Valor Unitário (ex: 3500.00): ", &raw.UnitPrice},
		{"Data (YYYY-MM-DD): ", &raw.Date},
	}
	for _, field := range fields {
		answer, err := s.prompt(field.label)
		if err != nil {
			return err
		}
		*field.dst = answer
	}

	sale, err := usecase.RecordRawSale(s.ledger, raw)
	s.metrics.ObserveSale(err)
	if err != nil {
		s.logger.Debug().Err(err).Msg("sale rejected")
		s.printf("%s\n", ValidationMessage(err))
		return nil
	}
	s.metrics.ObserveRevenue(s.ledger.TotalRevenue())
	s.printf("Venda ID %d registrada com sucesso!\n", sale.ID)
	return nil
}

func (s *Session) showReport() {
	report, err := s.ledger.BuildReport()
	if err != nil {
		s.printf(noSalesNote, "gerar relatório")
		return
	}
	s.printf("\n%s", presenter.FormatText(report))
}

func (s *Session) showSellerReport() error {
	s.printf("\n--- Relatório por Vendedor ---\n")
	name, err := s.prompt("Digite o nome do vendedor (pode ser parcial): ")
	if err != nil {
		return err
	}
	s.printSellerReport(name)
	return nil
}

func (s *Session) printSellerReport(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		s.printf("Erro: Informe ao menos parte do nome do vendedor.\n")
		return
	}

	report, err := s.ledger.SellerReport(name)
	if err != nil {
		s.printf("Nenhuma venda encontrada para o vendedor contendo '%s'.\n", name)
		return
	}
	s.printf("%s", presenter.FormatSellerReport(report))
}

// export saves the general report and reports the outcome. It returns the
// error so batch runs can fail on it.
func (s *Session) export(ctx context.Context, format string) error {
	location, err := s.exporter.Export(ctx, format)
	switch {
	case errors.Is(err, domain.ErrEmptyLedger):
		s.printf(noSalesNote, "salvar relatório")
	case err != nil:
		s.printf("\nErro ao salvar relatório: %v\n", err)
	default:
		s.metrics.ObserveReport(format)
		s.printf("\nRelatório salvo com sucesso em: %s\n", location)
	}
	return err
}

func (s *Session) importFile(ctx context.Context) error {
	s.printf("\n--- Importação de Vendas ---\n")
	path, err := s.prompt("Arquivo CSV: ")
	if err != nil {
		return err
	}
	path = strings.TrimSpace(path)
	if path == "" {
		s.printf("Erro: Informe o caminho do arquivo.\n")
		return nil
	}
	// Read failures are already printed
	_ = s.runImport(ctx, path)
	return nil
}

func (s *Session) runImport(ctx context.Context, path string) error {
	result, err := s.importer.Import(ctx, path)
	if err != nil {
		s.printf("\nErro ao importar vendas: %v\n", err)
		return err
	}

	s.metrics.ObserveImport(result)
	s.metrics.ObserveRevenue(s.ledger.TotalRevenue())
	s.printf("\n%d vendas importadas, %d rejeitadas.\n", result.Imported, len(result.Rejected))
	for _, rejected := range result.Rejected {
		s.printf("  - linha %d: %s\n", rejected.Line, ValidationMessage(rejected.Err))
	}
	return nil
}

// prompt writes label and reads one line of input.
func (s *Session) prompt(label string) (string, error) {
	s.printf("%s", label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("could not read input: %w", err)
		}
		return "", io.EOF
	}
	return s.in.Text(), nil
}

// endOfInput turns the end of the input stream into a normal exit.
func (s *Session) endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		s.printf("\nSaindo do sistema...\n")
		return nil
	}
	return err
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// ValidationMessage returns the console message for a rejected sale.
func ValidationMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingField):
		return "Erro: Todos os campos de texto (produto, vendedor, data) são obrigatórios."
	case errors.Is(err, domain.ErrInvalidQuantity):
		return "Erro: Quantidade deve ser um número inteiro positivo."
	case errors.Is(err, domain.ErrInvalidUnitPrice):
		return "Erro: Valor unitário deve ser um número positivo."
	case errors.Is(err, domain.ErrInvalidDate):
		return "Erro: Data deve estar no formato YYYY-MM-DD."
	default:
		return fmt.Sprintf("Ocorreu um erro inesperado: %v", err)
	}
}
