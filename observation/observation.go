// Package observation mints the RDF containers that carry score values: a
// Score (qb:ObservationGroup) per resource per score class, holding one
// qb:Observation per measured dimension. Construction is pure; nothing here
// reads the metadata graph.
package observation

import (
	"strconv"

	"github.com/c360studio/semscore/rdf"
	"github.com/c360studio/semscore/vocabulary/cube"
	"github.com/c360studio/semscore/vocabulary/dcat"
	"github.com/c360studio/semscore/vocabulary/scores"
	"github.com/c360studio/semscore/vocabulary/w3c"
)

// GroupOption configures a score container.
type GroupOption func(*groupConfig)

type groupConfig struct {
	begin string
	end   string
}

// WithValidity attaches a time:ProperInterval to the container, bounded by
// the given xsd:date values. Either bound may be empty.
func WithValidity(begin, end string) GroupOption {
	return func(c *groupConfig) {
		c.begin = begin
		c.end = end
	}
}

// NewGroup creates a Score container for a resource. It returns the minted
// container node and a fragment graph holding the container triples:
// the container's class and qb:ObservationGroup typing, the hasScore link
// from the resource, the refResource back-link, and the optional validity
// interval.
func NewGroup(resource rdf.Term, scoreClass string, opts ...GroupOption) (rdf.Term, *rdf.Graph) {
	var cfg groupConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	g := rdf.NewGraph()
	rdfType := rdf.NewIRI(w3c.RdfType)

	g.Add(resource, rdfType, rdf.NewIRI(dcat.ClassResource))

	group := rdf.NewBlankNode()
	g.Add(resource, rdf.NewIRI(scores.HasScore), group)
	g.Add(group, rdfType, rdf.NewIRI(scoreClass))
	g.Add(group, rdfType, rdf.NewIRI(cube.ClassObservationGroup))
	g.Add(group, rdf.NewIRI(scores.RefResource), resource)

	if cfg.begin != "" || cfg.end != "" {
		interval := rdf.NewBlankNode()
		g.Add(interval, rdfType, rdf.NewIRI(w3c.TimeProperInterval))
		g.Add(group, rdf.NewIRI(scores.RefTime), interval)

		if cfg.begin != "" {
			b := rdf.NewBlankNode()
			g.Add(b, rdfType, rdf.NewIRI(w3c.TimeInstant))
			g.Add(b, rdf.NewIRI(w3c.TimeInXSDDate), rdf.NewTypedLiteral(cfg.begin, w3c.XsdDate))
			g.Add(interval, rdf.NewIRI(w3c.TimeHasBeginning), b)
		}
		if cfg.end != "" {
			e := rdf.NewBlankNode()
			g.Add(e, rdfType, rdf.NewIRI(w3c.TimeInstant))
			g.Add(e, rdf.NewIRI(w3c.TimeInXSDDate), rdf.NewTypedLiteral(cfg.end, w3c.XsdDate))
			g.Add(interval, rdf.NewIRI(w3c.TimeHasEnd), e)
		}
	}

	return group, g
}

// New creates one observation carrying a measured value and links it into
// its container.
func New(container rdf.Term, measure string, value rdf.Term) *rdf.Graph {
	g := rdf.NewGraph()
	obs := rdf.NewBlankNode()
	g.Add(obs, rdf.NewIRI(w3c.RdfType), rdf.NewIRI(cube.ClassObservation))
	g.Add(container, rdf.NewIRI(cube.Observation), obs)
	g.Add(obs, rdf.NewIRI(measure), value)
	return g
}

// IntValue returns an xsd:integer literal for a raw dimension value.
func IntValue(n int) rdf.Literal {
	return rdf.NewTypedLiteral(strconv.Itoa(n), w3c.XsdInteger)
}

// BindScorePrefixes binds the namespace prefixes score graphs are
// serialized with.
func BindScorePrefixes(g *rdf.Graph) {
	g.Bind("scores", scores.Namespace)
	g.Bind("qb", cube.Namespace)
	g.Bind("dcat", dcat.Namespace)
	g.Bind("dcterms", "http://purl.org/dc/terms/")
	g.Bind("prov", "http://www.w3.org/ns/prov#")
	g.Bind("rdf", w3c.RdfNamespace)
	g.Bind("time", w3c.TimeNamespace)
	g.Bind("xsd", w3c.XsdNamespace)
}
