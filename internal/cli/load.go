package cli

// This file implements the "load" command, which ingests a customer CSV file.

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	ingestError "github.com/next-trace/scg-ingest/error"
	"github.com/next-trace/scg-ingest/ingest"
	"github.com/next-trace/scg-ingest/internal/config"
)

type loadOptions struct {
	configPath  string
	input       string
	comma       string
	metricsFile string
}

// NewLoadCmd returns the load subcommand.
func NewLoadCmd(logger *zap.Logger, level zap.AtomicLevel) *cobra.Command {
	var opts loadOptions

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load customers from a CSV file",
		Long: `Load reads every customer from the input CSV file and stops at the
first invalid record. The input needs a header row naming the id, name and
payment_terms columns (email is optional).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}

			if cfg.Debug {
				level.SetLevel(zap.DebugLevel)
			}

			return runLoad(cmd, logger, cfg)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	cmd.Flags().StringVar(&opts.input, "file", "", "Path to the customer CSV file")
	cmd.Flags().StringVar(&opts.comma, "comma", ",", "Field delimiter")
	cmd.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "Write run counters to this file in Prometheus text format")

	return cmd
}

// resolveConfig loads the config file, if any, and applies explicitly set flags on top.
func resolveConfig(cmd *cobra.Command, opts loadOptions) (config.Config, error) {
	cfg := config.Default()

	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return config.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("file") {
		cfg.Input = opts.input
	}
	if flags.Changed("comma") {
		cfg.Comma = opts.comma
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = opts.metricsFile
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func runLoad(cmd *cobra.Command, logger *zap.Logger, cfg config.Config) error {
	comma, err := cfg.CommaRune()
	if err != nil {
		return err
	}

	runLogger := logger.With(zap.String("run_id", uuid.NewString()))

	reg := prometheus.NewRegistry()
	metrics := ingest.NewMetrics(reg)

	customers, err := ingest.Load(cfg.Input,
		ingest.WithComma(comma),
		ingest.WithLogger(runLogger),
		ingest.WithMetrics(metrics),
	)

	if cfg.MetricsFile != "" {
		if werr := prometheus.WriteToTextfile(cfg.MetricsFile, reg); werr != nil {
			runLogger.Warn("Failed to write metrics file", zap.String("path", cfg.MetricsFile), zap.Error(werr))
		}
	}

	if err != nil {
		logIngestError(runLogger, err, "Ingest failed")
		return err
	}

	runLogger.Info("Customers loaded", zap.String("input", cfg.Input), zap.Int("count", len(customers)))
	fmt.Fprintf(cmd.OutOrStdout(), "loaded %d customers from %s\n", len(customers), cfg.Input)

	return nil
}

// logIngestError logs the rendered error chain. With debug enabled each
// context entry is also logged in append order, seeded entry first.
func logIngestError(logger *zap.Logger, err error, msg string) {
	if logger == nil || err == nil {
		return
	}

	fields := []zap.Field{zap.Error(err)}

	if e, ok := ingestError.As(err); ok && logger.Core().Enabled(zap.DebugLevel) {
		fields = append(fields, zap.Strings("error.context", e.Context()))

		if cause := e.Unwrap(); cause != nil {
			fields = append(fields, zap.String("error.kind", fmt.Sprintf("%T", cause)))
		}
	}

	logger.Error(msg, fields...)
}
