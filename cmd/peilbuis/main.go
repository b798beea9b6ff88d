package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"peilbuis/internal/config"
	"peilbuis/internal/files"
	"peilbuis/internal/infrastructure"
	"peilbuis/internal/services"
	"peilbuis/pkg/contracts"
)

// options holds the command line flags
type options struct {
	input      string
	output     string
	format     string
	open       bool
	configFile string
	version    bool
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "peilbuis: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}

	fs := flag.NewFlagSet("peilbuis", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.input, "in", ".", "survey export, or a directory whose newest export is used")
	fs.StringVar(&opts.output, "out", "", "result file (defaults to <input>_resultaten.<format>)")
	fs.StringVar(&opts.format, "format", "", "xlsx | csv (overrides the configured format)")
	fs.BoolVar(&opts.open, "open", false, "open the result in the default application")
	fs.StringVar(&opts.configFile, "config", "", "configuration file (defaults to peilbuis.yaml)")
	fs.BoolVar(&opts.version, "version", false, "print version information and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	opts.format = strings.ToLower(strings.TrimSpace(opts.format))
	switch opts.format {
	case "", config.FormatXLSX, config.FormatCSV:
	default:
		return nil, fmt.Errorf("unsupported output format: %q", opts.format)
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	if opts.version {
		fmt.Fprintln(stdout, contracts.GetFullVersionString())
		return nil
	}

	cfg, err := config.Load(opts.configFile)
	if err != nil {
		if opts.configFile != "" {
			return err
		}
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}
	if opts.format != "" {
		cfg.Output.Format = opts.format
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	if paths, err := config.GetPaths(); err == nil {
		paths.LogPathResolution(logger)
	}

	otelCfg := infrastructure.NewOTelConfig(cfg.Telemetry)
	otelCfg.TraceWriter = stdout
	providers, err := infrastructure.InitializeOTel(otelCfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Telemetry shutdown failed", slog.String("error", err.Error()))
		}
	}()

	logger.Info("Starting survey aggregation",
		slog.String("version", contracts.Version),
		slog.String("input", opts.input),
		slog.String("format", cfg.Output.Format))

	inputPath, err := files.NewDiscovery("", cfg.Output.Suffix).Resolve(opts.input)
	if err != nil {
		return err
	}

	service, err := services.NewSurveyService(cfg, logger,
		services.WithTracer(providers.Tracer),
		services.WithMetrics(providers.Metrics))
	if err != nil {
		return err
	}

	result, processErr := service.Process(ctx, inputPath, opts.output)

	if cfg.Telemetry.MetricsFile != "" {
		if err := providers.WriteMetricsFile(ctx, cfg.Telemetry.MetricsFile); err != nil {
			logger.Warn("Failed to write metrics file", slog.String("error", err.Error()))
		}
	}

	if processErr != nil {
		return processErr
	}

	fmt.Fprintf(stdout, "%d wells written to %s\n", result.Summary.Wells, result.OutputPath)

	if opts.open || cfg.Output.Open {
		if err := services.NewOpener(logger).Open(ctx, result.OutputPath); err != nil {
			logger.Warn("Could not open result", slog.String("error", err.Error()))
		}
	}

	return nil
}
