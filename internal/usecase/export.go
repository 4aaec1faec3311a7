package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"sales-ledger/internal/domain"
)

// ExportUseCase renders the general report and hands it to a report store.
type ExportUseCase struct {
	ledger    *Ledger
	store     ReportStore
	renderers map[string]Renderer
	baseName  string
	logger    zerolog.Logger
}

// NewExportUseCase creates a new instance of the usecase.
// Renderers are keyed by format name ("txt", "md", ...).
func NewExportUseCase(ledger *Ledger, store ReportStore, renderers map[string]Renderer, baseName string, logger zerolog.Logger) *ExportUseCase {
	return &ExportUseCase{
		ledger:    ledger,
		store:     store,
		renderers: renderers,
		baseName:  baseName,
		logger:    logger.With().Str("component", "export").Logger(),
	}
}

// Formats lists the supported format names in alphabetical order.
func (uc *ExportUseCase) Formats() []string {
	formats := make([]string, 0, len(uc.renderers))
	for name := range uc.renderers {
		formats = append(formats, name)
	}
	sort.Strings(formats)
	return formats
}

// Export writes the general report in the given format and returns its location.
func (uc *ExportUseCase) Export(ctx context.Context, format string) (string, error) {
	renderer, ok := uc.renderers[format]
	if !ok {
		return "", fmt.Errorf("%w %q", domain.ErrUnknownFormat, format)
	}

	report, err := uc.ledger.BuildReport()
	if err != nil {
		return "", fmt.Errorf("could not build report: %w", err)
	}

	data, err := renderer.Render(report)
	if err != nil {
		return "", fmt.Errorf("could not render %s report: %w", format, err)
	}

	name := uc.baseName + "." + renderer.Extension()
	location, err := uc.store.Save(ctx, name, data)
	if err != nil {
		uc.logger.Error().Err(err).Str("format", format).Str("name", name).Msg("saving report failed")
		return "", fmt.Errorf("%w: could not save %s: %w", domain.ErrIO, name, err)
	}

	uc.logger.Info().
		Str("format", format).
		Str("location", location).
		Int("transactions", report.TransactionCount).
		Msg("report saved")
	return location, nil
}
