package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"sales-ledger/internal/cli"
	"sales-ledger/internal/config"
	"sales-ledger/internal/gateway"
	"sales-ledger/internal/metrics"
	"sales-ledger/internal/usecase"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Define command-line flags
	configFile := flag.String("config", "", "Path to a YAML configuration file (overrides SALES_CONFIG)")
	importFile := flag.String("import", "", "CSV file of sales to import before anything else")
	exportList := flag.String("export", "", "Comma-separated report formats to save (txt,md,xlsx,pdf)")
	seller := flag.String("seller", "", "Print the report of the seller whose name contains this text")
	outDir := flag.String("out", "", "Directory the reports are written to")
	sample := flag.Bool("sample", true, "Load the sample sales at startup")
	metricsFile := flag.String("metrics", "", "Write metrics in the Prometheus text format to this file on exit")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	if *configFile != "" {
		if err := os.Setenv("SALES_CONFIG", *configFile); err != nil {
			logger.Error().Err(err).Msg("could not select configuration file")
			return 1
		}
	}
	cfg, err := config.Load()
	if err != nil {
		logger.Error().Err(err).Msg("could not load configuration")
		return 1
	}

	// Flags override the loaded values
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			cfg.ReportDir = *outDir
		case "sample":
			cfg.LoadSampleData = *sample
		case "metrics":
			cfg.MetricsFile = *metricsFile
		}
	})
	if err := cfg.Validate(); err != nil {
		logger.Error().Err(err).Msg("invalid configuration")
		return 1
	}
	level, _ := cfg.Level()
	logger = logger.Level(level)

	// --- Dependency Injection (Wiring the application) ---
	ledger := usecase.NewLedger(usecase.WithRankingLimit(cfg.RankingLimit))
	store := gateway.NewFileReportStore(cfg.ReportDir)
	source := gateway.NewCSVSaleReader()
	m := metrics.New()

	session := cli.NewSession(cli.Deps{
		Ledger:   ledger,
		Exporter: usecase.NewExportUseCase(ledger, store, cli.Renderers(), cfg.ReportName, logger),
		Importer: usecase.NewImportUseCase(ledger, source, logger),
		Metrics:  m,
		Logger:   logger,
	}, os.Stdin, os.Stdout)

	if cfg.LoadSampleData {
		fmt.Println("Carregando dados de exemplo...")
		n, err := usecase.SeedSampleSales(ledger)
		if err != nil {
			logger.Error().Err(err).Msg("could not load sample sales")
			return 1
		}
		m.SalesRecorded.Add(float64(n))
		m.ObserveRevenue(ledger.TotalRevenue())
		fmt.Printf("%d vendas de exemplo carregadas.\n\n", n)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Execute the session ---
	batch := cli.BatchOptions{
		ImportPath: *importFile,
		Seller:     *seller,
		Formats:    cli.ParseFormats(*exportList),
	}
	code := 0
	if batch.Empty() {
		err = session.Run(ctx)
	} else {
		err = session.RunBatch(ctx, batch)
	}
	if err != nil {
		logger.Error().Err(err).Msg("session failed")
		code = 1
	}

	if cfg.MetricsFile != "" {
		if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Error().Err(err).Str("path", cfg.MetricsFile).Msg("could not write metrics")
			code = 1
		}
	}
	return code
}
