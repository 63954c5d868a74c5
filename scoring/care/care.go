// Package care scores catalogue resources against the CARE principles for
// indigenous data governance: collective benefit, authority to control,
// responsibility, and ethics. Each principle is the sum of three chained
// sub-scores; later sub-scores gate on the values of earlier ones, so the
// calculator computes one pass per resource in dependency order and threads
// upstream values through as parameters.
package care

import (
	"context"
	"log/slog"

	"github.com/c360studio/semscore/fetch"
	"github.com/c360studio/semscore/observation"
	"github.com/c360studio/semscore/rdf"
	"github.com/c360studio/semscore/scoring"
	"github.com/c360studio/semscore/vocabulary/scores"
)

// Dimension maxima. R3 carries six points, so every dimension totals nine.
const (
	MaxC = 9
	MaxA = 9
	MaxR = 9
	MaxE = 9
)

// Dimensions describes the four CARE principles for normalisation.
var Dimensions = []scoring.Dimension{
	{Name: "careCScore", Measure: scores.CareCScore, MeasureNormalised: scores.CareCScoreNormalised, Max: MaxC},
	{Name: "careAScore", Measure: scores.CareAScore, MeasureNormalised: scores.CareAScoreNormalised, Max: MaxA},
	{Name: "careRScore", Measure: scores.CareRScore, MeasureNormalised: scores.CareRScoreNormalised, Max: MaxR},
	{Name: "careEScore", Measure: scores.CareEScore, MeasureNormalised: scores.CareEScoreNormalised, Max: MaxE},
}

// Subscores holds one resource's twelve sub-scores from a single pass.
type Subscores struct {
	C1, C2, C3 int
	A1, A2, A3 int
	R1, R2, R3 int
	E1, E2, E3 int
}

// C is the collective-benefit principle total.
func (s Subscores) C() int { return s.C1 + s.C2 + s.C3 }

// A is the authority-to-control principle total.
func (s Subscores) A() int { return s.A1 + s.A2 + s.A3 }

// R is the responsibility principle total.
func (s Subscores) R() int { return s.R1 + s.R2 + s.R3 }

// E is the ethics principle total.
func (s Subscores) E() int { return s.E1 + s.E2 + s.E3 }

// Calculator scores resources in one graph against the CARE principles.
type Calculator struct {
	graph   *rdf.Graph
	fetcher fetch.Fetcher
	logger  *slog.Logger
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithLogger sets the calculator's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Calculator) {
		c.logger = logger
	}
}

// NewCalculator builds a CARE calculator over the given graph. The fetcher
// decides discoverability; fetch.None scores every resource as not
// discoverable.
func NewCalculator(g *rdf.Graph, fetcher fetch.Fetcher, opts ...Option) *Calculator {
	c := &Calculator{
		graph:   g,
		fetcher: fetcher,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Subscores computes all twelve sub-scores for one resource in dependency
// order. Gated sub-scores receive the upstream values computed here rather
// than recomputing them.
func (c *Calculator) Subscores(ctx context.Context, resource rdf.Term) Subscores {
	var s Subscores
	s.C1 = c.C1(ctx, resource)
	s.C2 = c.C2(resource, s.C1)
	s.C3 = c.C3(resource, s.C2)
	s.A1 = c.A1(resource)
	s.A2 = c.A2(resource, s.A1)
	s.A3 = c.A3(resource, s.A2)
	s.R1 = c.R1(resource)
	s.R2 = c.R2(resource)
	s.R3 = c.R3(s.C(), s.A())
	s.E1 = c.E1(resource)
	s.E2 = c.E2(resource, s.E1)
	s.E3 = c.E3(resource, s.E2)
	return s
}

// Score computes the four CARE principle totals for one resource and
// returns an observation-group fragment holding them as raw observations.
// Every dimension is always emitted, including zeroes.
func (c *Calculator) Score(ctx context.Context, resource rdf.Term, opts ...observation.GroupOption) *rdf.Graph {
	s := c.Subscores(ctx, resource)

	c.logger.Debug("care scores computed",
		"resource", resource.RawValue(),
		"c", s.C(), "a", s.A(), "r", s.R(), "e", s.E())

	out := rdf.NewGraph()
	observation.BindScorePrefixes(out)

	group, frag := observation.NewGroup(resource, scores.ClassCareScore, opts...)
	out.AddGraph(frag)

	out.AddGraph(observation.New(group, scores.CareCScore, observation.IntValue(s.C())))
	out.AddGraph(observation.New(group, scores.CareAScore, observation.IntValue(s.A())))
	out.AddGraph(observation.New(group, scores.CareRScore, observation.IntValue(s.R())))
	out.AddGraph(observation.New(group, scores.CareEScore, observation.IntValue(s.E())))

	return out
}

// Normalise rescales the raw CARE scores in g to [0,1] per principle and
// returns the CareScoreNormalised fragments.
func Normalise(g *rdf.Graph) (*rdf.Graph, error) {
	return scoring.Normalise(g, scores.ClassCareScore, scores.ClassCareScoreNormalised, Dimensions)
}
