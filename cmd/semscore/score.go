package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/c360studio/semscore/batch"
	"github.com/c360studio/semscore/config"
	"github.com/c360studio/semscore/export"
	"github.com/c360studio/semscore/fetch"
	"github.com/c360studio/semscore/publish"
	"github.com/c360studio/semscore/rdf"
	"github.com/c360studio/semscore/scoring/fair"
	"github.com/c360studio/semscore/validation"
)

func scoreCmd(configPath, logLevel *string) *cobra.Command {
	var (
		rubric     string
		output     string
		format     string
		shapesPath string
	)

	cmd := &cobra.Command{
		Use:   "score <input>",
		Short: "Score one catalogue file or URL",
		Long: `Score reads a catalogue graph from a file or URL, scores every
dcat:Resource in it, and writes the raw and normalised observations.

With -o the output format follows the file extension; without it the graph
is written to stdout in the format named by --format.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(*configPath, *logLevel)
			if err != nil {
				return err
			}
			return runScore(cmd, cfg, logger, args[0], rubric, output, format, shapesPath)
		},
	}

	cmd.Flags().StringVar(&rubric, "score", "a", "Rubric to apply: f (FAIR), c (CARE) or a (both)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (extension selects format)")
	cmd.Flags().StringVar(&format, "format", string(export.FormatTurtle), "Stdout format (turtle, ntriples, json-ld, rdfxml)")
	cmd.Flags().StringVar(&shapesPath, "validate", "", "Shapes graph to validate inputs against")

	return cmd
}

func runScore(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, input, rubric, output, format, shapesPath string) error {
	mode, err := batch.ParseMode(rubric)
	if err != nil {
		return err
	}

	// A bad destination fails before any scoring work happens.
	if output != "" {
		if err := export.ValidatePath(output); err != nil {
			return err
		}
	}

	ctx := cmd.Context()

	g, err := rdf.Load(ctx, http.DefaultClient, input)
	if err != nil {
		return fmt.Errorf("load input: %w", err)
	}

	runner, publisher, err := buildRunner(cfg, logger, shapesPath, nil)
	if err != nil {
		return err
	}
	defer closePublisher(publisher, logger)

	scored, err := runner.ScoreGraph(ctx, g, mode)
	if err != nil {
		return err
	}

	if output != "" {
		return export.WriteFile(scored, output)
	}

	out, err := export.Marshal(scored, export.Format(format))
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// buildRunner assembles the scoring runner every subcommand shares:
// fetcher, validator, publisher and metrics, all driven by config.
func buildRunner(cfg *config.Config, logger *slog.Logger, shapesPath string, metrics *batch.Metrics) (*batch.Runner, *publish.Publisher, error) {
	var fetcher fetch.Fetcher = fetch.None
	if cfg.Fetch.Enabled {
		fetcher = fetch.NewHTTPFetcher(
			fetch.WithTimeout(cfg.Fetch.Timeout),
			fetch.WithUserAgent(cfg.Fetch.UserAgent),
			fetch.WithLogger(logger),
		)
	}
	fetcher = metrics.InstrumentFetcher(fetcher)

	opts := []batch.RunnerOption{
		batch.WithAggregation(fair.Aggregation(cfg.Scoring.AccessAggregation)),
		batch.WithLabelInheritance(cfg.Scoring.InheritLabels),
		batch.WithMetrics(metrics),
		batch.WithRunnerLogger(logger),
	}

	if shapesPath == "" {
		shapesPath = cfg.Validation.Shapes
	}
	if shapesPath != "" {
		shapes, err := rdf.LoadFile(shapesPath)
		if err != nil {
			return nil, nil, fmt.Errorf("load shapes graph: %w", err)
		}
		opts = append(opts, batch.WithValidator(validation.NewShapeValidator(shapes)))
	}

	var publisher *publish.Publisher
	if cfg.NATS.URL != "" {
		p, err := publish.Connect(cfg.NATS.URL, cfg.NATS.Subject)
		if err != nil {
			return nil, nil, err
		}
		publisher = p
		opts = append(opts, batch.WithPublisher(publisher))
	}

	return batch.NewRunner(fetcher, opts...), publisher, nil
}

func closePublisher(p *publish.Publisher, logger *slog.Logger) {
	if p == nil {
		return
	}
	if err := p.Close(); err != nil {
		logger.Warn("closing publisher", "error", err)
	}
}
