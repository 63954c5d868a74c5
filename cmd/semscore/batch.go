package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/c360studio/semscore/batch"
)

func batchCmd(configPath, logLevel *string) *cobra.Command {
	var (
		inputDir   string
		contextDir string
		outputDir  string
		pattern    string
		skipFair   bool
		skipCare   bool
		shapesPath string
		watch      bool
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Score every catalogue file under a directory",
		Long: `Batch scores every file matching the configured glob under the input
directory, writing <stem>-care.ttl and <stem>-fair.ttl score files. Files
that fail to parse or score are logged and skipped.

With --watch the run keeps going, rescoring files as they change, and
exposes Prometheus metrics when metrics.listen is configured.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(*configPath, *logLevel)
			if err != nil {
				return err
			}

			if contextDir == "" {
				contextDir = cfg.Batch.ContextDir
			}
			if outputDir == "" {
				outputDir = cfg.Batch.OutputDir
			}
			if pattern == "" {
				pattern = cfg.Batch.Pattern
			}

			var metrics *batch.Metrics
			if watch && cfg.Metrics.Listen != "" {
				registry := prometheus.NewRegistry()
				metrics = batch.NewMetrics(registry)
				go serveMetrics(cfg.Metrics.Listen, registry)
				logger.Info("serving metrics", "listen", cfg.Metrics.Listen)
			}

			runner, publisher, err := buildRunner(cfg, logger, shapesPath, metrics)
			if err != nil {
				return err
			}
			defer closePublisher(publisher, logger)

			opts := []batch.ProcessorOption{
				batch.WithPattern(pattern),
				batch.WithProcessorMetrics(metrics),
				batch.WithLogger(logger),
			}
			if contextDir != "" {
				opts = append(opts, batch.WithContextDir(contextDir))
			}
			if outputDir != "" {
				opts = append(opts, batch.WithOutputDir(outputDir))
			}
			if skipFair {
				opts = append(opts, batch.SkipFair())
			}
			if skipCare {
				opts = append(opts, batch.SkipCare())
			}

			processor := batch.NewProcessor(runner, opts...)

			if watch {
				ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
				defer stop()
				return processor.Watch(ctx, inputDir)
			}
			return processor.Run(cmd.Context(), inputDir)
		},
	}

	cmd.Flags().StringVarP(&inputDir, "dir", "d", "", "Input directory of catalogue files")
	cmd.Flags().StringVarP(&contextDir, "context", "c", "", "Directory of context graphs merged into every input")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory for score files (default: scores/ under input)")
	cmd.Flags().StringVar(&pattern, "pattern", "", "Glob matched against the input directory")
	cmd.Flags().BoolVar(&skipFair, "skip-fair", false, "Skip the FAIR output")
	cmd.Flags().BoolVar(&skipCare, "skip-care", false, "Skip the CARE output")
	cmd.Flags().StringVar(&shapesPath, "validate", "", "Shapes graph to validate inputs against")
	cmd.Flags().BoolVar(&watch, "watch", false, "Keep running and rescore files as they change")
	_ = cmd.MarkFlagRequired("dir")

	return cmd
}

func serveMetrics(listen string, registry *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	server := &http.Server{Addr: listen, Handler: mux}
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		fmt.Fprintf(os.Stderr, "metrics server: %v\n", err)
	}
}
