// Package inference materializes the derived triples scoring depends on.
// It is intentionally partial forward chaining, not RDFS/OWL entailment:
// only the closures the rubric reads are computed. Every rule is additive,
// so expansion is idempotent on an already-expanded graph.
package inference

import (
	"github.com/c360studio/semscore/rdf"
	"github.com/c360studio/semscore/vocabulary/dcat"
	"github.com/c360studio/semscore/vocabulary/dcterms"
	"github.com/c360studio/semscore/vocabulary/w3c"
)

// Rule is one forward-chaining rule applied to a graph in place.
type Rule struct {
	Name  string
	Apply func(g *rdf.Graph)
}

// Expand applies the DCAT closure rules to g. When inheritLabels is set,
// the CARE-specific label/description inheritance rule runs as well.
func Expand(g *rdf.Graph, inheritLabels bool) {
	for _, rule := range Rules(inheritLabels) {
		rule.Apply(g)
	}
}

// Rules returns the forward-chaining rules in application order. Part-of
// symmetry runs before label inheritance so inheritance sees every
// container-member link regardless of which direction was asserted.
func Rules(inheritLabels bool) []Rule {
	rules := []Rule{
		{Name: "dataset-type-closure", Apply: datasetTypeClosure},
		{Name: "part-of-symmetry", Apply: partOfSymmetry},
	}
	if inheritLabels {
		rules = append(rules, Rule{Name: "label-inheritance", Apply: labelInheritance})
	}
	return rules
}

// datasetTypeClosure types every dcat:Dataset as a dcat:Resource.
func datasetTypeClosure(g *rdf.Graph) {
	rdfType := rdf.NewIRI(w3c.RdfType)
	for _, s := range g.Subjects(rdfType, rdf.NewIRI(dcat.ClassDataset)) {
		g.Add(s, rdfType, rdf.NewIRI(dcat.ClassResource))
	}
}

// partOfSymmetry asserts hasPart for every isPartOf and vice versa.
func partOfSymmetry(g *rdf.Graph) {
	isPartOf := rdf.NewIRI(dcterms.IsPartOf)
	hasPart := rdf.NewIRI(dcterms.HasPart)

	for _, t := range g.All(nil, isPartOf, nil) {
		g.Add(t.Object, hasPart, t.Subject)
	}
	for _, t := range g.All(nil, hasPart, nil) {
		g.Add(t.Object, isPartOf, t.Subject)
	}
}

// labelInheritance propagates a container's title and description onto
// members that lack their own.
func labelInheritance(g *rdf.Graph) {
	hasPart := rdf.NewIRI(dcterms.HasPart)
	title := rdf.NewIRI(dcterms.Title)
	description := rdf.NewIRI(dcterms.Description)

	for _, t := range g.All(nil, hasPart, nil) {
		container, member := t.Subject, t.Object
		if !g.Has(member, title, nil) {
			if v := g.Object(container, title); v != nil {
				g.Add(member, title, v)
			}
		}
		if !g.Has(member, description, nil) {
			if v := g.Object(container, description); v != nil {
				g.Add(member, description, v)
			}
		}
	}
}
