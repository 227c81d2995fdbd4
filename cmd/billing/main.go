package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/subosito/gotenv"
	"go.uber.org/zap"

	"github.com/garyjia/edu-billing/internal/application/processor"
	"github.com/garyjia/edu-billing/internal/config"
	"github.com/garyjia/edu-billing/internal/input"
	"github.com/garyjia/edu-billing/internal/render"
	"github.com/garyjia/edu-billing/pkg/utils"
)

func main() {
	// Local overrides from .env, best effort
	_ = gotenv.Load()

	cfg, err := config.Load(configPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := utils.NewLogger(utils.LoggerConfig{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger = logger.With(zap.String("run_id", uuid.NewString()))

	inputPath := cfg.Input.Path
	if len(os.Args) > 1 {
		inputPath = os.Args[1]
	}

	logger.Info("Starting billing run",
		zap.String("input_path", inputPath),
		zap.String("output_format", cfg.Output.Format))

	lines, err := input.ReadLines(inputPath)
	if err != nil {
		logger.Fatal("Failed to read command file", zap.Error(err))
	}

	var renderer render.Renderer
	switch cfg.Output.Format {
	case "excel":
		renderer = render.NewExcelRenderer(cfg.Output.ExcelPath, logger)
	default:
		renderer = render.NewTextRenderer(os.Stdout)
	}

	proc := processor.New(renderer, logger)
	if err := proc.Run(lines); err != nil {
		logger.Fatal("Billing run failed", zap.Error(err))
	}
}

func configPath() string {
	if path := os.Getenv("BILLING_CONFIG"); path != "" {
		return path
	}
	return "configs/config.yaml"
}
