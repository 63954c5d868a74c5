package care

import (
	"context"
	"strings"

	"github.com/c360studio/semscore/rdf"
	"github.com/c360studio/semscore/scoring"
	"github.com/c360studio/semscore/vocabulary/dcat"
	"github.com/c360studio/semscore/vocabulary/dcterms"
	"github.com/c360studio/semscore/vocabulary/prov"
	"github.com/c360studio/semscore/vocabulary/reference"
	"github.com/c360studio/semscore/vocabulary/w3c"
)

// C1 scores collective benefit for inclusive development and innovation.
// Metadata is discoverable (+1), searchable (+1), and the data is
// accessible, restrictions permitted (+1). Max 3.
func (c *Calculator) C1(ctx context.Context, resource rdf.Term) int {
	value := 0
	if c.Discoverable(ctx, resource) {
		value++
	}
	if c.Searchable() {
		value++
	}
	if c.AccessRightsDeclared(resource) {
		value++
	}
	return value
}

// C2 scores collective benefit for improved governance and citizen
// engagement. Gated on the already-computed C1: C1 > 2 (+1); documented use
// via a title (+1); a description (+1). Max 3.
func (c *Calculator) C2(resource rdf.Term, c1 int) int {
	value := 0
	if c1 > 2 {
		value++
	}
	if c.graph.Has(resource, rdf.NewIRI(dcterms.Title), nil) {
		value++
	}
	if c.graph.Has(resource, rdf.NewIRI(dcterms.Description), nil) {
		value++
	}
	return value
}

// C3 scores collective benefit for equitable outcomes. C2 > 2 (+1); a
// governance framework is discoverable in the catalogue (+1); equitable
// outcomes from the data (EquitableOutcomesScore, currently unmeasured).
// Max 3.
func (c *Calculator) C3(resource rdf.Term, c2 int) int {
	value := 0
	if c2 > 2 {
		value++
	}
	if c.GovernanceFramework(resource) {
		value++
	}
	value += EquitableOutcomesScore()
	return value
}

// A1 scores authority to control via recognition: an indigeneity notice
// through a qualified attribution (+1) and a declared licence or rights
// statement (+2). Max 3.
func (c *Calculator) A1(resource rdf.Term) int {
	return c.NoticesScore(resource) + c.LicenceRightsScore(resource)
}

// A2 scores authority over data governance, gated on the already-computed
// A1: A1 >= 1 (+1); an organisational indigeneity role (+1); an individual
// indigeneity role (+1). Max 3.
func (c *Calculator) A2(resource rdf.Term, a1 int) int {
	if a1 < 1 {
		return 0
	}
	value := 1
	if c.hasRoleIn(resource, reference.OrgIndigeneityRoles) {
		value++
	}
	if c.hasRoleIn(resource, reference.IndividualIndigeneityRoles) {
		value++
	}
	return value
}

// A3 scores governance of use, gated on the already-computed A2: A2 >= 2
// (+1); a governance framework is discoverable (+1); access rights are
// declared (+1). Max 3.
func (c *Calculator) A3(resource rdf.Term, a2 int) int {
	value := 0
	if a2 >= 2 {
		value++
	}
	if c.GovernanceFramework(resource) {
		value++
	}
	if c.AccessRightsDeclared(resource) {
		value++
	}
	return value
}

// R1 scores responsibility for positive relationships: a licence (+1),
// provenance through the provenance ontology (+1), and a qualified
// attribution (+1). Max 3.
func (c *Calculator) R1(resource rdf.Term) int {
	value := 0
	if scoring.HasAnyProperty(c.graph, resource, reference.LicenseProperties) {
		value++
	}
	if scoring.AnyPredicateInNamespace(c.graph, prov.Namespace) {
		value++
	}
	if c.graph.Has(resource, rdf.NewIRI(prov.QualifiedAttribution), nil) {
		value++
	}
	return value
}

// R2 scores responsibility for expanding capability and capacity. No
// business rule measures community wellbeing yet; the sub-score is a
// documented stub so the dimension maximum stays stable. Always 0.
func (c *Calculator) R2(rdf.Term) int {
	return 0
}

// R3 scores responsibility through Indigenous languages and worldviews. It
// is a pure function of the already-computed C and A chains: a C chain
// total of at least 6 (+3) and an A chain total of at least 6 (+3). The
// upstream values are parameters, never recomputed. Max 6.
func (c *Calculator) R3(cChain, aChain int) int {
	value := 0
	if cChain >= 6 {
		value += 3
	}
	if aChain >= 6 {
		value += 3
	}
	return value
}

// E1 scores ethics for minimising harm: declared access rights (+1), a
// licence or rights statement (+1), and indigenous involvement declared
// through attribution (+1). Max 3.
func (c *Calculator) E1(resource rdf.Term) int {
	value := 0
	if c.AccessRightsDeclared(resource) {
		value++
	}
	if scoring.HasAnyProperty(c.graph, resource, reference.RightsProperties) {
		value++
	}
	if c.IndigenousAttribution(resource) {
		value++
	}
	return value
}

// E2 scores ethics for justice, gated on the already-computed E1: E1 >= 2
// (+1); a governance framework is discoverable (+1); the resource carries
// both a title and a description, possibly inherited from its container
// through forward chaining (+1). Max 3.
func (c *Calculator) E2(resource rdf.Term, e1 int) int {
	value := 0
	if e1 >= 2 {
		value++
	}
	if c.GovernanceFramework(resource) {
		value++
	}
	if c.graph.Has(resource, rdf.NewIRI(dcterms.Title), nil) &&
		c.graph.Has(resource, rdf.NewIRI(dcterms.Description), nil) {
		value++
	}
	return value
}

// E3 scores ethics for future use, gated on the already-computed E2:
// E2 >= 2 (+1); provenance via the provenance ontology (+1); a declared
// data source (+1). Max 3.
func (c *Calculator) E3(resource rdf.Term, e2 int) int {
	value := 0
	if e2 >= 2 {
		value++
	}
	if scoring.AnyPredicateInNamespace(c.graph, prov.Namespace) {
		value++
	}
	if c.graph.Has(resource, rdf.NewIRI(dcterms.Source), nil) {
		value++
	}
	return value
}

// EquitableOutcomesScore is the unmeasured third point of C3. The business
// rule for measuring equitable outcomes from catalogue metadata is
// undecided; the stub keeps the documented dimension maximum intact.
func EquitableOutcomesScore() int {
	return 0
}

// Discoverable reports whether the resource IRI itself dereferences for an
// RDF request. Fetch failures score as not discoverable.
func (c *Calculator) Discoverable(ctx context.Context, resource rdf.Term) bool {
	if _, ok := resource.(rdf.IRI); !ok {
		return false
	}
	return c.fetcher.Fetch(ctx, resource.RawValue())
}

// Searchable reports whether the graph carries any searchable property.
func (c *Calculator) Searchable() bool {
	return scoring.AnyPredicateIn(c.graph, reference.SearchableProperties)
}

// AccessRightsDeclared reports whether the resource declares access rights.
func (c *Calculator) AccessRightsDeclared(resource rdf.Term) bool {
	return c.graph.Has(resource, rdf.NewIRI(dcterms.AccessRights), nil)
}

// NoticesScore awards 1 when the resource carries an indigeneity notice:
// any qualified attribution whose role is in either indigeneity code list.
func (c *Calculator) NoticesScore(resource rdf.Term) int {
	if c.IndigenousAttribution(resource) {
		return 1
	}
	return 0
}

// LicenceRightsScore awards 2 when a licence or rights statement is
// declared.
func (c *Calculator) LicenceRightsScore(resource rdf.Term) int {
	if scoring.HasAnyProperty(c.graph, resource, reference.RightsProperties) {
		return 2
	}
	return 0
}

// GovernanceFramework reports whether any sibling of the resource in its
// catalogue carries a label naming an indigenous governance framework:
// a title or label containing, case-insensitively, both "governance" and
// "indigenous".
func (c *Calculator) GovernanceFramework(resource rdf.Term) bool {
	hasPart := rdf.NewIRI(dcterms.HasPart)
	for _, catalogue := range c.graph.Objects(resource, rdf.NewIRI(dcterms.IsPartOf)) {
		for _, sibling := range c.graph.Objects(catalogue, hasPart) {
			for _, label := range c.labelsOf(sibling) {
				if governanceLabel(label) {
					return true
				}
			}
		}
	}
	return false
}

// IndigenousAttribution reports whether any qualified attribution of the
// resource carries a role code from either indigeneity code list.
func (c *Calculator) IndigenousAttribution(resource rdf.Term) bool {
	return c.hasRoleIn(resource, reference.OrgIndigeneityRoles) ||
		c.hasRoleIn(resource, reference.IndividualIndigeneityRoles)
}

func (c *Calculator) hasRoleIn(resource rdf.Term, codes []string) bool {
	qualified := rdf.NewIRI(prov.QualifiedAttribution)
	for _, attribution := range c.graph.Objects(resource, qualified) {
		for _, role := range c.rolesOf(attribution) {
			for _, code := range codes {
				if role.RawValue() == code {
					return true
				}
			}
		}
	}
	return false
}

func (c *Calculator) rolesOf(attribution rdf.Term) []rdf.Term {
	roles := c.graph.Objects(attribution, rdf.NewIRI(dcat.HadRole))
	return append(roles, c.graph.Objects(attribution, rdf.NewIRI(prov.HadRole))...)
}

func (c *Calculator) labelsOf(resource rdf.Term) []string {
	var out []string
	for _, p := range []string{dcterms.Title, w3c.RdfsLabel} {
		for _, o := range c.graph.Objects(resource, rdf.NewIRI(p)) {
			out = append(out, o.RawValue())
		}
	}
	return out
}

func governanceLabel(label string) bool {
	lower := strings.ToLower(label)
	return strings.Contains(lower, "governance") && strings.Contains(lower, "indigenous")
}
