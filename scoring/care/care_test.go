package care

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semscore/fetch"
	"github.com/c360studio/semscore/rdf"
	"github.com/c360studio/semscore/vocabulary/cube"
	"github.com/c360studio/semscore/vocabulary/dcterms"
	"github.com/c360studio/semscore/vocabulary/scores"
	"github.com/c360studio/semscore/vocabulary/w3c"
)

const healthIRI = "https://example.org/dataset/community-health"

func loadFixture(t *testing.T) *rdf.Graph {
	t.Helper()
	f, err := os.Open("testdata/community-health.ttl")
	require.NoError(t, err)
	defer f.Close()
	g, err := rdf.DecodeTurtle(f)
	require.NoError(t, err)
	return g
}

func fixtureCalculator(t *testing.T) (*Calculator, rdf.Term) {
	t.Helper()
	g := loadFixture(t)
	calc := NewCalculator(g, fetch.Static{healthIRI: true})
	return calc, rdf.NewIRI(healthIRI)
}

func TestSubscoresFullFixture(t *testing.T) {
	calc, resource := fixtureCalculator(t)
	s := calc.Subscores(context.Background(), resource)

	assert.Equal(t, 3, s.C1, "discoverable + searchable + access rights")
	assert.Equal(t, 3, s.C2, "C1 gate + title + description")
	assert.Equal(t, 2, s.C3, "C2 gate + governance framework, equitable outcomes unmeasured")
	assert.Equal(t, 8, s.C())

	assert.Equal(t, 3, s.A1, "indigeneity notice + rights statement")
	assert.Equal(t, 3, s.A2, "A1 gate + org role + individual role")
	assert.Equal(t, 3, s.A3, "A2 gate + governance + access rights")
	assert.Equal(t, 9, s.A())

	assert.Equal(t, 3, s.R1, "licence + provenance + attribution")
	assert.Equal(t, 0, s.R2)
	assert.Equal(t, 6, s.R3, "both chains at or above 6")
	assert.Equal(t, 9, s.R())

	assert.Equal(t, 3, s.E1)
	assert.Equal(t, 3, s.E2)
	assert.Equal(t, 3, s.E3)
	assert.Equal(t, 9, s.E())
}

func TestC1NotDiscoverable(t *testing.T) {
	g := loadFixture(t)
	calc := NewCalculator(g, fetch.None)
	assert.Equal(t, 2, calc.C1(context.Background(), rdf.NewIRI(healthIRI)))
}

func TestC2GatesOnC1(t *testing.T) {
	calc, resource := fixtureCalculator(t)

	// The gate point is only awarded for the upstream value passed in,
	// never recomputed.
	assert.Equal(t, 3, calc.C2(resource, 3))
	assert.Equal(t, 2, calc.C2(resource, 2))
}

func TestC3GatesOnC2(t *testing.T) {
	calc, resource := fixtureCalculator(t)
	assert.Equal(t, 2, calc.C3(resource, 3))
	assert.Equal(t, 1, calc.C3(resource, 2))
}

func TestA2RequiresNotice(t *testing.T) {
	calc, resource := fixtureCalculator(t)
	assert.Equal(t, 0, calc.A2(resource, 0))
	assert.Equal(t, 3, calc.A2(resource, 1))
}

func TestA3GatesOnA2(t *testing.T) {
	calc, resource := fixtureCalculator(t)
	assert.Equal(t, 3, calc.A3(resource, 2))
	assert.Equal(t, 2, calc.A3(resource, 1))
}

func TestR3ChainThresholds(t *testing.T) {
	calc, _ := fixtureCalculator(t)
	assert.Equal(t, 6, calc.R3(6, 6))
	assert.Equal(t, 3, calc.R3(6, 5))
	assert.Equal(t, 3, calc.R3(5, 6))
	assert.Equal(t, 0, calc.R3(5, 5))
}

func TestE2GatesOnE1(t *testing.T) {
	calc, resource := fixtureCalculator(t)
	assert.Equal(t, 3, calc.E2(resource, 2))
	assert.Equal(t, 2, calc.E2(resource, 1))
}

func TestE3GatesOnE2(t *testing.T) {
	calc, resource := fixtureCalculator(t)
	assert.Equal(t, 3, calc.E3(resource, 2))
	assert.Equal(t, 2, calc.E3(resource, 1))
}

func TestGovernanceFramework(t *testing.T) {
	t.Run("governance sibling found", func(t *testing.T) {
		calc, resource := fixtureCalculator(t)
		assert.True(t, calc.GovernanceFramework(resource))
	})

	t.Run("no catalogue", func(t *testing.T) {
		g := rdf.NewGraph()
		d := rdf.NewIRI("http://example.org/d")
		calc := NewCalculator(g, fetch.None)
		assert.False(t, calc.GovernanceFramework(d))
	})

	t.Run("sibling without governance label", func(t *testing.T) {
		g := rdf.NewGraph()
		d := rdf.NewIRI("http://example.org/d")
		cat := rdf.NewIRI("http://example.org/cat")
		other := rdf.NewIRI("http://example.org/other")
		g.Add(d, rdf.NewIRI(dcterms.IsPartOf), cat)
		g.Add(cat, rdf.NewIRI(dcterms.HasPart), other)
		g.Add(other, rdf.NewIRI(dcterms.Title), rdf.NewLiteral("Road network"))
		calc := NewCalculator(g, fetch.None)
		assert.False(t, calc.GovernanceFramework(d))
	})

	t.Run("case insensitive match on rdfs label", func(t *testing.T) {
		g := rdf.NewGraph()
		d := rdf.NewIRI("http://example.org/d")
		cat := rdf.NewIRI("http://example.org/cat")
		policy := rdf.NewIRI("http://example.org/policy")
		g.Add(d, rdf.NewIRI(dcterms.IsPartOf), cat)
		g.Add(cat, rdf.NewIRI(dcterms.HasPart), policy)
		g.Add(policy, rdf.NewIRI(w3c.RdfsLabel), rdf.NewLiteral("INDIGENOUS data GOVERNANCE policy"))
		calc := NewCalculator(g, fetch.None)
		assert.True(t, calc.GovernanceFramework(d))
	})
}

func TestIndigenousAttribution(t *testing.T) {
	calc, resource := fixtureCalculator(t)
	assert.True(t, calc.IndigenousAttribution(resource))

	bare := NewCalculator(rdf.NewGraph(), fetch.None)
	assert.False(t, bare.IndigenousAttribution(resource))
}

func TestScoreEmitsEveryPrinciple(t *testing.T) {
	calc, resource := fixtureCalculator(t)
	out := calc.Score(context.Background(), resource)

	groups := out.Subjects(rdf.NewIRI(w3c.RdfType), rdf.NewIRI(scores.ClassCareScore))
	require.Len(t, groups, 1)

	assert.Equal(t, "8", observedRaw(t, out, groups[0], scores.CareCScore))
	assert.Equal(t, "9", observedRaw(t, out, groups[0], scores.CareAScore))
	assert.Equal(t, "9", observedRaw(t, out, groups[0], scores.CareRScore))
	assert.Equal(t, "9", observedRaw(t, out, groups[0], scores.CareEScore))
}

func TestNormalise(t *testing.T) {
	calc, resource := fixtureCalculator(t)
	out := calc.Score(context.Background(), resource)

	normalised, err := Normalise(out)
	require.NoError(t, err)

	groups := normalised.Subjects(rdf.NewIRI(w3c.RdfType), rdf.NewIRI(scores.ClassCareScoreNormalised))
	require.Len(t, groups, 1)

	assert.Equal(t, "0.89", observedRaw(t, normalised, groups[0], scores.CareCScoreNormalised))
	assert.Equal(t, "1.00", observedRaw(t, normalised, groups[0], scores.CareAScoreNormalised))
	assert.Equal(t, "1.00", observedRaw(t, normalised, groups[0], scores.CareRScoreNormalised))
	assert.Equal(t, "1.00", observedRaw(t, normalised, groups[0], scores.CareEScoreNormalised))
}

func observedRaw(t *testing.T, g *rdf.Graph, group rdf.Term, measure string) string {
	t.Helper()
	for _, obs := range g.Objects(group, rdf.NewIRI(cube.Observation)) {
		if v := g.Object(obs, rdf.NewIRI(measure)); v != nil {
			return v.RawValue()
		}
	}
	t.Fatalf("no observation for %s", measure)
	return ""
}
