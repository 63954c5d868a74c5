package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semscore/observation"
	"github.com/c360studio/semscore/rdf"
	"github.com/c360studio/semscore/vocabulary/cube"
	"github.com/c360studio/semscore/vocabulary/w3c"
)

const (
	title       = "http://purl.org/dc/terms/title"
	description = "http://purl.org/dc/terms/description"
	license     = "http://purl.org/dc/terms/license"
)

func TestHasAnyProperty(t *testing.T) {
	g := rdf.NewGraph()
	s := rdf.NewIRI("http://example.org/d")
	g.Add(s, rdf.NewIRI(title), rdf.NewLiteral("Title"))

	assert.True(t, HasAnyProperty(g, s, []string{description, title}))
	assert.False(t, HasAnyProperty(g, s, []string{description, license}))
	assert.False(t, HasAnyProperty(g, s, nil))
}

func TestObjectsOfAny(t *testing.T) {
	g := rdf.NewGraph()
	s := rdf.NewIRI("http://example.org/d")
	g.Add(s, rdf.NewIRI(title), rdf.NewLiteral("Title"))
	g.Add(s, rdf.NewIRI(description), rdf.NewLiteral("First"))
	g.Add(s, rdf.NewIRI(description), rdf.NewLiteral("Second"))

	objects := ObjectsOfAny(g, s, []string{description, title})
	require.Len(t, objects, 3)
	// Property-list order, then insertion order within a property.
	assert.Equal(t, "First", objects[0].RawValue())
	assert.Equal(t, "Second", objects[1].RawValue())
	assert.Equal(t, "Title", objects[2].RawValue())
}

func TestAnyPredicateInNamespace(t *testing.T) {
	g := rdf.NewGraph()
	g.Add(rdf.NewIRI("http://example.org/d"),
		rdf.NewIRI("http://www.w3.org/ns/prov#wasDerivedFrom"),
		rdf.NewIRI("http://example.org/src"))

	assert.True(t, AnyPredicateInNamespace(g, "http://www.w3.org/ns/prov#"))
	assert.False(t, AnyPredicateInNamespace(g, "http://www.w3.org/ns/odrl/2/"))
}

func TestAnyPredicateIn(t *testing.T) {
	g := rdf.NewGraph()
	g.Add(rdf.NewIRI("http://example.org/d"), rdf.NewIRI(title), rdf.NewLiteral("Title"))

	assert.True(t, AnyPredicateIn(g, []string{license, title}))
	assert.False(t, AnyPredicateIn(g, []string{license, description}))
}

const (
	testScoreClass      = "http://example.org/def/TestScore"
	testNormalisedClass = "http://example.org/def/TestScoreNormalised"
	measureA            = "http://example.org/def/aScore"
	measureANormalised  = "http://example.org/def/aScoreNormalised"
	measureB            = "http://example.org/def/bScore"
	measureBNormalised  = "http://example.org/def/bScoreNormalised"
)

var testDims = []Dimension{
	{Name: "aScore", Measure: measureA, MeasureNormalised: measureANormalised, Max: 4},
	{Name: "bScore", Measure: measureB, MeasureNormalised: measureBNormalised, Max: 10},
}

func TestNormalise(t *testing.T) {
	g := rdf.NewGraph()
	resource := rdf.NewIRI("http://example.org/d")
	group, frag := observation.NewGroup(resource, testScoreClass)
	g.AddGraph(frag)
	g.AddGraph(observation.New(group, measureA, observation.IntValue(3)))
	g.AddGraph(observation.New(group, measureB, observation.IntValue(10)))

	out, err := Normalise(g, testScoreClass, testNormalisedClass, testDims)
	require.NoError(t, err)

	groups := out.Subjects(rdf.NewIRI(w3c.RdfType), rdf.NewIRI(testNormalisedClass))
	require.Len(t, groups, 1)

	values := map[string]string{}
	for _, obs := range out.Objects(groups[0], rdf.NewIRI(cube.Observation)) {
		for _, m := range []string{measureANormalised, measureBNormalised} {
			if v := out.Object(obs, rdf.NewIRI(m)); v != nil {
				values[m] = v.RawValue()
			}
		}
	}
	assert.Equal(t, "0.75", values[measureANormalised])
	assert.Equal(t, "1.00", values[measureBNormalised])
}

func TestNormaliseMissingObservation(t *testing.T) {
	g := rdf.NewGraph()
	resource := rdf.NewIRI("http://example.org/d")
	group, frag := observation.NewGroup(resource, testScoreClass)
	g.AddGraph(frag)
	g.AddGraph(observation.New(group, measureA, observation.IntValue(2)))

	_, err := Normalise(g, testScoreClass, testNormalisedClass, testDims)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bScore")
}

func TestNormaliseGroupWithoutResource(t *testing.T) {
	g := rdf.NewGraph()
	group := rdf.NewBlankNode()
	g.Add(group, rdf.NewIRI(w3c.RdfType), rdf.NewIRI(testScoreClass))

	_, err := Normalise(g, testScoreClass, testNormalisedClass, testDims)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refResource")
}
