// Package fair scores catalogued resources against the FAIR rubric
// (Findable, Accessible, Interoperable, Reusable) and emits each dimension
// as an RDF observation.
package fair

import (
	"context"
	"log/slog"
	"strings"

	"github.com/c360studio/semscore/fetch"
	"github.com/c360studio/semscore/observation"
	"github.com/c360studio/semscore/rdf"
	"github.com/c360studio/semscore/scoring"
	"github.com/c360studio/semscore/vocabulary/dcat"
	"github.com/c360studio/semscore/vocabulary/dcterms"
	"github.com/c360studio/semscore/vocabulary/prov"
	"github.com/c360studio/semscore/vocabulary/reference"
	"github.com/c360studio/semscore/vocabulary/scores"
)

// Documented dimension maxima. The normaliser divides raw values by these,
// so they must track the rubric, not the attainable sums.
const (
	MaxF = 17
	MaxA = 10
	MaxI = 8
	MaxR = 7
)

// Aggregation selects how multiple declared access-rights themes combine
// into the A dimension.
type Aggregation string

const (
	// AggregationSum accumulates points across declared themes. This is
	// the historical behaviour and the default; two declared themes can
	// exceed MaxA.
	AggregationSum Aggregation = "sum"

	// AggregationMax takes the highest-scoring declared theme.
	AggregationMax Aggregation = "max"
)

// Dimensions describes the FAIR dimensions for normalisation.
var Dimensions = []scoring.Dimension{
	{Name: "fairFScore", Measure: scores.FairFScore, MeasureNormalised: scores.FairFScoreNormalised, Max: MaxF},
	{Name: "fairAScore", Measure: scores.FairAScore, MeasureNormalised: scores.FairAScoreNormalised, Max: MaxA},
	{Name: "fairIScore", Measure: scores.FairIScore, MeasureNormalised: scores.FairIScoreNormalised, Max: MaxI},
	{Name: "fairRScore", Measure: scores.FairRScore, MeasureNormalised: scores.FairRScoreNormalised, Max: MaxR},
}

// Calculator scores resources in one metadata graph. The graph is never
// mutated; every scoring pass returns a fresh fragment.
type Calculator struct {
	graph       *rdf.Graph
	fetcher     fetch.Fetcher
	aggregation Aggregation
	logger      *slog.Logger
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithAggregation selects the access-rights aggregation mode.
func WithAggregation(a Aggregation) Option {
	return func(c *Calculator) { c.aggregation = a }
}

// WithLogger sets the calculator's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Calculator) { c.logger = logger }
}

// NewCalculator creates a FAIR calculator over a metadata graph. The
// fetcher is consulted for catalogue reachability; fetch.None disables
// network checks.
func NewCalculator(g *rdf.Graph, fetcher fetch.Fetcher, opts ...Option) *Calculator {
	c := &Calculator{
		graph:       g,
		fetcher:     fetcher,
		aggregation: AggregationSum,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FScore computes the Findable dimension:
//
//	F1. (meta)data are assigned a globally unique and persistent identifier.
//	F2. data are described with rich metadata.
//	F3. (meta)data are registered or indexed in a searchable resource.
//	F4. metadata specify the data identifier.
//
// Catalogued resources in RDF always have a web identifier (+3); a
// persistent-identifier pattern in the IRI adds 5; the identifier is in the
// metadata (+1); richness counts created/modified/type/qualifiedAttribution
// (1 -> +1, 2 -> +2, more -> +3); a declared catalogue adds 2 and a
// catalogue that answers an RDF request adds 2 more. Max 17.
func (c *Calculator) FScore(ctx context.Context, resource rdf.Term) int {
	value := 3

	iri := resource.RawValue()
	for _, indicator := range reference.PIDIndicators {
		if strings.Contains(iri, indicator) {
			value += 5
			break
		}
	}

	// Identifier present in the metadata record.
	value++

	richness := 0
	for _, p := range c.graph.Predicates(resource) {
		switch p.RawValue() {
		case dcterms.Created, dcterms.Modified, dcterms.Type, prov.QualifiedAttribution:
			richness++
		}
	}
	switch {
	case richness == 1:
		value++
	case richness == 2:
		value += 2
	case richness > 2:
		value += 3
	}

	if catalogue := c.catalogueOf(resource); catalogue != nil {
		value += 2
		if c.fetcher.Fetch(ctx, catalogue.RawValue()) {
			value += 2
		}
	}

	return value
}

// AScore computes the Accessible dimension from the declared access-rights
// themes. Each theme maps to a fixed award; multiple declarations combine
// per the configured aggregation. Max 10 for a single declaration.
func (c *Calculator) AScore(resource rdf.Term) int {
	value := 0
	for _, theme := range c.graph.Objects(resource, rdf.NewIRI(dcat.Theme)) {
		points, ok := reference.AccessRightsPoints[theme.RawValue()]
		if !ok {
			continue
		}
		if c.aggregation == AggregationMax {
			if points > value {
				value = points
			}
		} else {
			value += points
		}
	}
	return value
}

// IScore computes the Interoperable dimension: data machine-readability
// (0-2), a fixed 2 because the metadata itself is machine-readable, shared
// vocabulary use (0-2), and a 2-point bonus when the data-level criteria
// score at least 1. Max 8.
func (c *Calculator) IScore(resource rdf.Term) int {
	dataScore := MachineReadabilityScore(c.graph, resource) + SharedVocabsScore(c.graph, resource)
	value := dataScore + 2
	if dataScore >= 1 {
		value += 2
	}
	return value
}

// RScore computes the Reusable dimension: licensing (0/2), provenance
// (0/2, documented max 3) and data-source quality (0-2). Max 7.
func (c *Calculator) RScore(resource rdf.Term) int {
	return LicensingScore(c.graph, resource) +
		ProvenanceScore(c.graph) +
		DataSourceScore(c.graph, resource)
}

// Score computes all four dimensions for one resource and returns the
// FairScore container fragment. Every dimension observation is emitted,
// even at zero, so normalisation always finds its inputs.
func (c *Calculator) Score(ctx context.Context, resource rdf.Term) *rdf.Graph {
	out := rdf.NewGraph()
	observation.BindScorePrefixes(out)

	group, frag := observation.NewGroup(resource, scores.ClassFairScore)
	out.AddGraph(frag)

	out.AddGraph(observation.New(group, scores.FairFScore, observation.IntValue(c.FScore(ctx, resource))))
	out.AddGraph(observation.New(group, scores.FairAScore, observation.IntValue(c.AScore(resource))))
	out.AddGraph(observation.New(group, scores.FairIScore, observation.IntValue(c.IScore(resource))))
	out.AddGraph(observation.New(group, scores.FairRScore, observation.IntValue(c.RScore(resource))))

	return out
}

// Normalise rescales the raw FAIR scores in g to [0,1] per dimension and
// returns the FairScoreNormalised fragments.
func Normalise(g *rdf.Graph) (*rdf.Graph, error) {
	return scoring.Normalise(g, scores.ClassFairScore, scores.ClassFairScoreNormalised, Dimensions)
}

func (c *Calculator) catalogueOf(resource rdf.Term) rdf.Term {
	var catalogue rdf.Term
	for _, o := range c.graph.Objects(resource, rdf.NewIRI(dcterms.IsPartOf)) {
		catalogue = o
	}
	return catalogue
}
