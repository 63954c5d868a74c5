package observation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semscore/rdf"
	"github.com/c360studio/semscore/vocabulary/cube"
	"github.com/c360studio/semscore/vocabulary/dcat"
	"github.com/c360studio/semscore/vocabulary/scores"
	"github.com/c360studio/semscore/vocabulary/w3c"
)

func TestNewGroup(t *testing.T) {
	resource := rdf.NewIRI("http://example.org/d")
	group, g := NewGroup(resource, scores.ClassFairScore)

	rdfType := rdf.NewIRI(w3c.RdfType)
	assert.True(t, g.Has(resource, rdfType, rdf.NewIRI(dcat.ClassResource)))
	assert.True(t, g.Has(group, rdfType, rdf.NewIRI(scores.ClassFairScore)))
	assert.True(t, g.Has(group, rdfType, rdf.NewIRI(cube.ClassObservationGroup)))
	assert.True(t, g.Has(resource, rdf.NewIRI(scores.HasScore), group))
	assert.True(t, g.Has(group, rdf.NewIRI(scores.RefResource), resource))
}

func TestNewGroupWithValidity(t *testing.T) {
	resource := rdf.NewIRI("http://example.org/d")
	group, g := NewGroup(resource, scores.ClassCareScore, WithValidity("2024-01-01", "2024-12-31"))

	interval := g.Object(group, rdf.NewIRI(scores.RefTime))
	require.NotNil(t, interval)
	assert.True(t, g.Has(interval, rdf.NewIRI(w3c.RdfType), rdf.NewIRI(w3c.TimeProperInterval)))

	begin := g.Object(interval, rdf.NewIRI(w3c.TimeHasBeginning))
	require.NotNil(t, begin)
	assert.True(t, g.Has(begin, rdf.NewIRI(w3c.TimeInXSDDate),
		rdf.NewTypedLiteral("2024-01-01", w3c.XsdDate)))

	end := g.Object(interval, rdf.NewIRI(w3c.TimeHasEnd))
	require.NotNil(t, end)
	assert.True(t, g.Has(end, rdf.NewIRI(w3c.TimeInXSDDate),
		rdf.NewTypedLiteral("2024-12-31", w3c.XsdDate)))
}

func TestNewGroupWithOpenInterval(t *testing.T) {
	resource := rdf.NewIRI("http://example.org/d")
	group, g := NewGroup(resource, scores.ClassCareScore, WithValidity("2024-01-01", ""))

	interval := g.Object(group, rdf.NewIRI(scores.RefTime))
	require.NotNil(t, interval)
	assert.NotNil(t, g.Object(interval, rdf.NewIRI(w3c.TimeHasBeginning)))
	assert.Nil(t, g.Object(interval, rdf.NewIRI(w3c.TimeHasEnd)))
}

func TestNew(t *testing.T) {
	group := rdf.NewBlankNodeID("g")
	g := New(group, scores.FairFScore, IntValue(14))

	observations := g.Objects(group, rdf.NewIRI(cube.Observation))
	require.Len(t, observations, 1)

	obs := observations[0]
	assert.True(t, g.Has(obs, rdf.NewIRI(w3c.RdfType), rdf.NewIRI(cube.ClassObservation)))

	v := g.Object(obs, rdf.NewIRI(scores.FairFScore))
	require.NotNil(t, v)
	assert.Equal(t, "14", v.RawValue())
}

func TestIntValue(t *testing.T) {
	v := IntValue(7)
	assert.Equal(t, "7", v.Value)
	assert.Equal(t, w3c.XsdInteger, v.Datatype)
}

func TestBindScorePrefixes(t *testing.T) {
	g := rdf.NewGraph()
	BindScorePrefixes(g)

	prefixes := g.Prefixes()
	assert.Equal(t, scores.Namespace, prefixes["scores"])
	assert.Equal(t, cube.Namespace, prefixes["qb"])
	assert.Equal(t, w3c.XsdNamespace, prefixes["xsd"])
}
