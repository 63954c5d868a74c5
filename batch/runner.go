// Package batch drives scoring runs: single graphs, directories of catalogue
// files, and continuous watch mode.
package batch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/c360studio/semscore/fetch"
	"github.com/c360studio/semscore/inference"
	"github.com/c360studio/semscore/observation"
	"github.com/c360studio/semscore/publish"
	"github.com/c360studio/semscore/rdf"
	"github.com/c360studio/semscore/scoring/care"
	"github.com/c360studio/semscore/scoring/fair"
	"github.com/c360studio/semscore/validation"
	"github.com/c360studio/semscore/vocabulary/dcat"
	"github.com/c360studio/semscore/vocabulary/w3c"
)

// Mode selects which rubrics a run applies.
type Mode string

const (
	// ModeFair scores the FAIR rubric only.
	ModeFair Mode = "f"

	// ModeCare scores the CARE rubric only.
	ModeCare Mode = "c"

	// ModeAll scores both rubrics into one output graph.
	ModeAll Mode = "a"
)

// ParseMode maps a rubric flag value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeFair, ModeCare, ModeAll:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown rubric %q (want f, c or a)", s)
	}
}

// Runner scores catalogue graphs. It owns the cross-cutting pieces one run
// shares: the fetcher, the inference rules, optional validation and
// publishing, and metrics.
type Runner struct {
	fetcher       fetch.Fetcher
	aggregation   fair.Aggregation
	inheritLabels bool
	validator     validation.Validator
	publisher     *publish.Publisher
	metrics       *Metrics
	logger        *slog.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithAggregation sets how FAIR access points combine across distributions.
func WithAggregation(a fair.Aggregation) RunnerOption {
	return func(r *Runner) { r.aggregation = a }
}

// WithLabelInheritance toggles title and description inheritance from
// containers during forward chaining.
func WithLabelInheritance(enabled bool) RunnerOption {
	return func(r *Runner) { r.inheritLabels = enabled }
}

// WithValidator sets a pre-scoring shape validator. Non-conformance aborts
// the run for that graph.
func WithValidator(v validation.Validator) RunnerOption {
	return func(r *Runner) { r.validator = v }
}

// WithPublisher sets an optional score publisher. Nil disables publishing.
func WithPublisher(p *publish.Publisher) RunnerOption {
	return func(r *Runner) { r.publisher = p }
}

// WithMetrics sets the run's metrics collectors.
func WithMetrics(m *Metrics) RunnerOption {
	return func(r *Runner) { r.metrics = m }
}

// WithRunnerLogger sets the runner's logger.
func WithRunnerLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) { r.logger = logger }
}

// NewRunner builds a runner around a fetcher.
func NewRunner(fetcher fetch.Fetcher, opts ...RunnerOption) *Runner {
	r := &Runner{
		fetcher:       fetcher,
		aggregation:   fair.AggregationSum,
		inheritLabels: true,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ScoreGraph validates, forward-chains and scores every catalogue resource
// in g, returning the raw and normalised score fragments as one graph.
// The input graph is expanded in place.
func (r *Runner) ScoreGraph(ctx context.Context, g *rdf.Graph, mode Mode) (*rdf.Graph, error) {
	if r.validator != nil {
		report, err := r.validator.Validate(g)
		if err != nil {
			return nil, fmt.Errorf("validating input: %w", err)
		}
		if !report.Conforms() {
			return nil, fmt.Errorf("input does not conform:\n%s", report)
		}
	}

	inference.Expand(g, r.inheritLabels)

	resources := g.Subjects(rdf.NewIRI(w3c.RdfType), rdf.NewIRI(dcat.ClassResource))
	if len(resources) == 0 {
		r.logger.Warn("no catalogue resources found in input graph")
	}

	out := rdf.NewGraph()
	observation.BindScorePrefixes(out)

	fairCalc := fair.NewCalculator(g, r.fetcher,
		fair.WithAggregation(r.aggregation), fair.WithLogger(r.logger))
	careCalc := care.NewCalculator(g, r.fetcher, care.WithLogger(r.logger))

	for _, resource := range resources {
		fragment := rdf.NewGraph()

		if mode == ModeFair || mode == ModeAll {
			fragment.AddGraph(fairCalc.Score(ctx, resource))
		}
		if mode == ModeCare || mode == ModeAll {
			fragment.AddGraph(careCalc.Score(ctx, resource))
		}

		out.AddGraph(fragment)
		r.metrics.ResourceScored()

		if err := r.publisher.Publish(resource, fragment); err != nil {
			return nil, fmt.Errorf("publishing scores for %s: %w", resource.RawValue(), err)
		}
	}

	if mode == ModeFair || mode == ModeAll {
		normalised, err := fair.Normalise(out)
		if err != nil {
			return nil, fmt.Errorf("normalising FAIR scores: %w", err)
		}
		out.AddGraph(normalised)
	}
	if mode == ModeCare || mode == ModeAll {
		normalised, err := care.Normalise(out)
		if err != nil {
			return nil, fmt.Errorf("normalising CARE scores: %w", err)
		}
		out.AddGraph(normalised)
	}

	return out, nil
}
