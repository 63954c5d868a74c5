package fair

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semscore/fetch"
	"github.com/c360studio/semscore/observation"
	"github.com/c360studio/semscore/rdf"
	"github.com/c360studio/semscore/vocabulary/cube"
	"github.com/c360studio/semscore/vocabulary/scores"
	"github.com/c360studio/semscore/vocabulary/w3c"
)

const (
	agilIRI      = "https://linked.data.gov.au/dataset/agil"
	catalogueIRI = "https://linked.data.gov.au/dataset/idn-catalogue"
)

func loadFixture(t *testing.T, path string) *rdf.Graph {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	g, err := rdf.DecodeTurtle(f)
	require.NoError(t, err)
	return g
}

func TestFScore(t *testing.T) {
	g := loadFixture(t, "testdata/agil.ttl")
	resource := rdf.NewIRI(agilIRI)

	t.Run("catalogue unreachable", func(t *testing.T) {
		calc := NewCalculator(g, fetch.None)
		// 3 base + 5 persistent identifier + 1 identifier in metadata
		// + 3 richness (created, modified, type, attribution) + 2 catalogue.
		assert.Equal(t, 14, calc.FScore(context.Background(), resource))
	})

	t.Run("catalogue reachable", func(t *testing.T) {
		calc := NewCalculator(g, fetch.Static{catalogueIRI: true})
		assert.Equal(t, 16, calc.FScore(context.Background(), resource))
	})

	t.Run("no persistent identifier", func(t *testing.T) {
		plain := rdf.NewGraph()
		plain.Add(rdf.NewIRI("http://example.org/d"), rdf.NewIRI("http://purl.org/dc/terms/title"), rdf.NewLiteral("t"))
		calc := NewCalculator(plain, fetch.None)
		assert.Equal(t, 4, calc.FScore(context.Background(), rdf.NewIRI("http://example.org/d")))
	})
}

func TestAScore(t *testing.T) {
	g := loadFixture(t, "testdata/agil.ttl")
	calc := NewCalculator(g, fetch.None)
	assert.Equal(t, 10, calc.AScore(rdf.NewIRI(agilIRI)))
}

func TestAScoreAggregation(t *testing.T) {
	g := rdf.NewGraph()
	d := rdf.NewIRI("http://example.org/d")
	theme := rdf.NewIRI("http://www.w3.org/ns/dcat#theme")
	g.Add(d, theme, rdf.NewIRI("https://linked.data.gov.au/def/data-access-rights/conditional"))
	g.Add(d, theme, rdf.NewIRI("https://linked.data.gov.au/def/data-access-rights/embargoed"))
	g.Add(d, theme, rdf.NewIRI("https://linked.data.gov.au/def/data-access-rights/unknown-code"))

	t.Run("sum", func(t *testing.T) {
		calc := NewCalculator(g, fetch.None)
		assert.Equal(t, 10, calc.AScore(d))
	})

	t.Run("max", func(t *testing.T) {
		calc := NewCalculator(g, fetch.None, WithAggregation(AggregationMax))
		assert.Equal(t, 6, calc.AScore(d))
	})

	t.Run("restricted scores zero", func(t *testing.T) {
		restricted := rdf.NewGraph()
		restricted.Add(d, theme, rdf.NewIRI("https://linked.data.gov.au/def/data-access-rights/restricted"))
		calc := NewCalculator(restricted, fetch.None)
		assert.Equal(t, 0, calc.AScore(d))
	})
}

func TestIScore(t *testing.T) {
	g := loadFixture(t, "testdata/agil.ttl")
	calc := NewCalculator(g, fetch.None)
	// Machine readability 1 (extension token) + shared vocabs 1 (IRI
	// majority) + fixed 2 + bonus 2.
	assert.Equal(t, 6, calc.IScore(rdf.NewIRI(agilIRI)))
}

func TestIScoreNoDataCriteria(t *testing.T) {
	g := rdf.NewGraph()
	d := rdf.NewIRI("http://example.org/d")
	g.Add(d, rdf.NewIRI("http://purl.org/dc/terms/title"), rdf.NewLiteral("t"))
	calc := NewCalculator(g, fetch.None)
	// Only the fixed metadata machine-readability points, no bonus.
	assert.Equal(t, 2, calc.IScore(d))
}

func TestRScore(t *testing.T) {
	g := loadFixture(t, "testdata/agil.ttl")
	calc := NewCalculator(g, fetch.None)
	// Licensing 2 + provenance 2 + anyURI-typed source 1.
	assert.Equal(t, 5, calc.RScore(rdf.NewIRI(agilIRI)))
}

func TestScoreEmitsEveryDimension(t *testing.T) {
	g := loadFixture(t, "testdata/agil.ttl")
	calc := NewCalculator(g, fetch.None)
	out := calc.Score(context.Background(), rdf.NewIRI(agilIRI))

	groups := out.Subjects(rdf.NewIRI(w3c.RdfType), rdf.NewIRI(scores.ClassFairScore))
	require.Len(t, groups, 1)

	assert.Equal(t, 14, observedValue(t, out, groups[0], scores.FairFScore))
	assert.Equal(t, 10, observedValue(t, out, groups[0], scores.FairAScore))
	assert.Equal(t, 6, observedValue(t, out, groups[0], scores.FairIScore))
	assert.Equal(t, 5, observedValue(t, out, groups[0], scores.FairRScore))

	// Back-link to the scored resource.
	ref := out.Object(groups[0], rdf.NewIRI(scores.RefResource))
	require.NotNil(t, ref)
	assert.Equal(t, agilIRI, ref.RawValue())
}

func TestScoreZeroDimensionsStillEmitted(t *testing.T) {
	g := rdf.NewGraph()
	d := rdf.NewIRI("http://example.org/bare")
	g.Add(d, rdf.NewIRI(w3c.RdfType), rdf.NewIRI("http://www.w3.org/ns/dcat#Resource"))

	calc := NewCalculator(g, fetch.None)
	out := calc.Score(context.Background(), d)

	groups := out.Subjects(rdf.NewIRI(w3c.RdfType), rdf.NewIRI(scores.ClassFairScore))
	require.Len(t, groups, 1)
	assert.Equal(t, 0, observedValue(t, out, groups[0], scores.FairAScore))
	assert.Equal(t, 0, observedValue(t, out, groups[0], scores.FairRScore))
}

func TestNormalise(t *testing.T) {
	g := loadFixture(t, "testdata/agil.ttl")
	calc := NewCalculator(g, fetch.None)
	out := calc.Score(context.Background(), rdf.NewIRI(agilIRI))

	normalised, err := Normalise(out)
	require.NoError(t, err)

	groups := normalised.Subjects(rdf.NewIRI(w3c.RdfType), rdf.NewIRI(scores.ClassFairScoreNormalised))
	require.Len(t, groups, 1)

	assert.Equal(t, "0.82", observedRaw(t, normalised, groups[0], scores.FairFScoreNormalised))
	assert.Equal(t, "1.00", observedRaw(t, normalised, groups[0], scores.FairAScoreNormalised))
	assert.Equal(t, "0.75", observedRaw(t, normalised, groups[0], scores.FairIScoreNormalised))
	assert.Equal(t, "0.71", observedRaw(t, normalised, groups[0], scores.FairRScoreNormalised))
}

func TestNormaliseMissingObservation(t *testing.T) {
	g := rdf.NewGraph()
	group, frag := observation.NewGroup(rdf.NewIRI(agilIRI), scores.ClassFairScore)
	g.AddGraph(frag)
	g.AddGraph(observation.New(group, scores.FairFScore, observation.IntValue(3)))

	_, err := Normalise(g)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fairAScore")
}

// observedValue reads one integer measure from a container's observations.
func observedValue(t *testing.T, g *rdf.Graph, group rdf.Term, measure string) int {
	t.Helper()
	raw := observedRaw(t, g, group, measure)
	n := 0
	for _, r := range raw {
		n = n*10 + int(r-'0')
	}
	return n
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
