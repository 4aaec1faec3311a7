package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// BatchOptions selects the steps of a non-interactive run. Steps run in
// field order: import, seller report, exports.
type BatchOptions struct {
	ImportPath string
	Seller     string
	Formats    []string
}

// Empty reports whether no batch step was requested.
func (o BatchOptions) Empty() bool {
	return o.ImportPath == "" && o.Seller == "" && len(o.Formats) == 0
}

// ParseFormats splits a comma-separated format list, dropping blanks.
func ParseFormats(list string) []string {
	var formats []string
	for _, format := range strings.Split(list, ",") {
		if format = strings.ToLower(strings.TrimSpace(format)); format != "" {
			formats = append(formats, format)
		}
	}
	return formats
}

// RunBatch executes the requested steps once. Every export is attempted; the
// returned error joins the import and export failures.
func (s *Session) RunBatch(ctx context.Context, opts BatchOptions) error {
	var errs []error

	if opts.ImportPath != "" {
		if err := s.runImport(ctx, opts.ImportPath); err != nil {
			errs = append(errs, err)
		}
	}

	if opts.Seller != "" {
		s.printSellerReport(opts.Seller)
	}

	for _, format := range opts.Formats {
		if err := s.export(ctx, format); err != nil {
			errs = append(errs, fmt.Errorf("export %s: %w", format, err))
		}
	}

	return errors.Join(errs...)
}
