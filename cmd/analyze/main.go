package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"ssicli/internal/charts"
	"ssicli/internal/config"
	"ssicli/internal/exporter"
	"ssicli/internal/infrastructure"
	"ssicli/internal/pipeline"
	"ssicli/internal/workbook"
	"ssicli/pkg/contracts"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	inPath := flag.String("in", "", "input workbook (.xlsx), overrides config")
	outDir := flag.String("out", "", "output directory, overrides config")
	flag.Parse()

	cfg, err := loadConfig(*configPath, *inPath, *outDir)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithRunID(context.Background())

	logger.InfoContext(ctx, "starting incident analysis",
		slog.String("version", contracts.VersionString()),
		slog.String("workbook", cfg.Input.Workbook),
		slog.String("output_dir", cfg.Output.Dir))

	tables, err := workbook.NewLoader(logger).Load(ctx, cfg.Input.Workbook)
	if err != nil {
		logger.ErrorContext(ctx, "failed to load workbook", slog.String("error", err.Error()))
		os.Exit(1)
	}

	p := pipeline.New(logger, pipeline.Options{})
	wide, stats, err := p.Run(ctx, tables)
	if err != nil {
		logger.ErrorContext(ctx, "pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	csvPath := filepath.Join(cfg.Output.Dir, cfg.Output.WideCSV)
	writer := exporter.NewCSVWriter(logger, cfg.Output.UTF8BOM)
	if err := writer.WriteWide(csvPath, wide); err != nil {
		logger.ErrorContext(ctx, "failed to export wide table", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.Charts.Enabled {
		renderer := charts.NewRenderer(logger, cfg.Charts.Theme)
		if err := renderer.RenderAll(filepath.Join(cfg.Output.Dir, "charts"), wide); err != nil {
			logger.ErrorContext(ctx, "failed to render charts", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.InfoContext(ctx, "analysis complete",
		slog.String("csv", csvPath),
		slog.Int("incidents", stats.IncidentRows),
		slog.Int("rows_with_unparseable_times", stats.UnparseableTimes),
		slog.Int("rows_with_unparseable_ages", stats.UnparseableAges),
		slog.Int("unmapped_variants", len(stats.Warnings())))
}

// loadConfig loads the layered config and applies command-line overrides,
// which win over both file and environment.
func loadConfig(path, inPath, outDir string) (*config.Config, error) {
	if inPath != "" {
		// Satisfy the required-field validation before Load runs it.
		os.Setenv("SSI_INPUT_WORKBOOK", inPath)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if inPath != "" {
		cfg.Input.Workbook = inPath
	}
	if outDir != "" {
		cfg.Output.Dir = outDir
	}
	return cfg, nil
}
