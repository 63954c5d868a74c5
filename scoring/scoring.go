// Package scoring holds the graph-inspection helpers and the score
// normaliser shared by the FAIR and CARE calculators.
package scoring

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/c360studio/semscore/observation"
	"github.com/c360studio/semscore/rdf"
	"github.com/c360studio/semscore/vocabulary/cube"
	"github.com/c360studio/semscore/vocabulary/scores"
	"github.com/c360studio/semscore/vocabulary/w3c"
)

// HasAnyProperty reports whether the resource carries at least one of the
// given predicates.
func HasAnyProperty(g *rdf.Graph, resource rdf.Term, properties []string) bool {
	for _, p := range properties {
		if g.Has(resource, rdf.NewIRI(p), nil) {
			return true
		}
	}
	return false
}

// ObjectsOfAny returns the objects of every (resource, p, _) triple for the
// given predicate list, in property-list order.
func ObjectsOfAny(g *rdf.Graph, resource rdf.Term, properties []string) []rdf.Term {
	var out []rdf.Term
	for _, p := range properties {
		out = append(out, g.Objects(resource, rdf.NewIRI(p))...)
	}
	return out
}

// AnyPredicateInNamespace reports whether any predicate anywhere in the
// graph falls under the namespace.
func AnyPredicateInNamespace(g *rdf.Graph, namespace string) bool {
	for _, p := range g.Predicates(nil) {
		if strings.HasPrefix(p.RawValue(), namespace) {
			return true
		}
	}
	return false
}

// AnyPredicateIn reports whether any predicate anywhere in the graph is one
// of the given properties.
func AnyPredicateIn(g *rdf.Graph, properties []string) bool {
	for _, p := range g.Predicates(nil) {
		for _, want := range properties {
			if p.RawValue() == want {
				return true
			}
		}
	}
	return false
}

// Dimension describes one scored dimension for normalisation: its raw and
// normalised measure properties and the documented maximum the raw value is
// rescaled against.
type Dimension struct {
	Name              string
	Measure           string
	MeasureNormalised string
	Max               int
}

// Normalise emits, for every score container of scoreClass in g, a parallel
// normalisedClass container whose observations carry raw/max formatted to
// two decimal places. The composer guarantees every dimension observation
// exists, even at zero; a missing one is an error here, per caller policy.
func Normalise(g *rdf.Graph, scoreClass, normalisedClass string, dims []Dimension) (*rdf.Graph, error) {
	out := rdf.NewGraph()
	observation.BindScorePrefixes(out)

	rdfType := rdf.NewIRI(w3c.RdfType)
	refResource := rdf.NewIRI(scores.RefResource)
	obsLink := rdf.NewIRI(cube.Observation)

	for _, group := range g.Subjects(rdfType, rdf.NewIRI(scoreClass)) {
		resource := g.Object(group, refResource)
		if resource == nil {
			return nil, fmt.Errorf("score container %s has no %s", group.String(), scores.RefResource)
		}

		normGroup, frag := observation.NewGroup(resource, normalisedClass)
		out.AddGraph(frag)

		for _, dim := range dims {
			raw, err := dimensionValue(g, group, obsLink, dim)
			if err != nil {
				return nil, err
			}
			normalised := fmt.Sprintf("%.2f", float64(raw)/float64(dim.Max))
			out.AddGraph(observation.New(normGroup, dim.MeasureNormalised, rdf.NewLiteral(normalised)))
		}
	}
	return out, nil
}

func dimensionValue(g *rdf.Graph, group rdf.Term, obsLink rdf.IRI, dim Dimension) (int, error) {
	measure := rdf.NewIRI(dim.Measure)
	for _, obs := range g.Objects(group, obsLink) {
		v := g.Object(obs, measure)
		if v == nil {
			continue
		}
		n, err := strconv.Atoi(v.RawValue())
		if err != nil {
			return 0, fmt.Errorf("%s observation holds non-integer value %q", dim.Name, v.RawValue())
		}
		return n, nil
	}
	return 0, fmt.Errorf("score container %s has no %s observation", group.String(), dim.Name)
}
