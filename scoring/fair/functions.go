package fair

import (
	"github.com/c360studio/semscore/rdf"
	"github.com/c360studio/semscore/scoring"
	"github.com/c360studio/semscore/vocabulary/dcterms"
	"github.com/c360studio/semscore/vocabulary/prov"
	"github.com/c360studio/semscore/vocabulary/reference"
	"github.com/c360studio/semscore/vocabulary/w3c"
)

// MachineReadabilityScore checks the declared format or media type against
// the recognised machine-readable formats. A declared MIME type scores 2, a
// recognised file-extension token scores 1, anything else 0. When both are
// declared the MIME type wins.
func MachineReadabilityScore(g *rdf.Graph, resource rdf.Term) int {
	value := 0
	for _, o := range scoring.ObjectsOfAny(g, resource, reference.FormatProperties) {
		declared := o.RawValue()
		for _, mime := range reference.MachineReadableFormats {
			if declared == mime {
				return 2
			}
		}
		if _, ok := reference.MachineReadableFormats[declared]; ok {
			// Keep scanning: another declaration may carry a full MIME type.
			value = 1
		}
	}
	return value
}

// SharedVocabsScore checks whether the objects of properties expected to
// point into shared vocabularies are IRIs. No IRIs scores 0, all IRIs
// scores 2, a majority of IRIs scores 1.
func SharedVocabsScore(g *rdf.Graph, resource rdf.Term) int {
	iris, literals := 0, 0
	for _, o := range scoring.ObjectsOfAny(g, resource, reference.URIExpectedProperties) {
		switch o.(type) {
		case rdf.IRI:
			iris++
		case rdf.Literal:
			literals++
		}
	}
	switch {
	case iris == 0:
		return 0
	case literals == 0:
		return 2
	case iris > literals:
		return 1
	default:
		return 0
	}
}

// LicensingScore awards 2 when any data-usage licence is declared.
// Licences should be IRIs, but literals count here; an IRI additionally
// feeds SharedVocabsScore under interoperability.
func LicensingScore(g *rdf.Graph, resource rdf.Term) int {
	if scoring.HasAnyProperty(g, resource, reference.LicenseProperties) {
		return 2
	}
	return 0
}

// ProvenanceScore awards 2 when any predicate in the graph belongs to the
// provenance ontology or the additional provenance property list. The
// rubric documents a maximum of 3 for this criterion; only 0 and 2 are
// awarded.
func ProvenanceScore(g *rdf.Graph) int {
	if scoring.AnyPredicateInNamespace(g, prov.Namespace) {
		return 2
	}
	if scoring.AnyPredicateIn(g, reference.AdditionalProvenanceProperties) {
		return 2
	}
	return 0
}

// DataSourceScore checks the declared dcterms:source: an IRI scores 2, a
// literal typed xsd:anyURI scores 1, anything else 0.
func DataSourceScore(g *rdf.Graph, resource rdf.Term) int {
	source := g.Object(resource, rdf.NewIRI(dcterms.Source))
	if source == nil {
		return 0
	}
	switch s := source.(type) {
	case rdf.IRI:
		return 2
	case rdf.Literal:
		if s.Datatype == w3c.XsdAnyURI {
			return 1
		}
	}
	return 0
}
