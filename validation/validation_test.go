package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semscore/rdf"
)

const datasetShape = `
@prefix sh: <http://www.w3.org/ns/shacl#> .
@prefix dcat: <http://www.w3.org/ns/dcat#> .
@prefix dcterms: <http://purl.org/dc/terms/> .
@prefix ex: <http://example.org/shapes/> .

ex:DatasetShape a sh:NodeShape ;
    sh:targetClass dcat:Dataset ;
    sh:property [
        sh:path dcterms:title ;
        sh:minCount 1 ;
        sh:maxCount 1 ;
        sh:message "dataset needs exactly one title"
    ] ;
    sh:property [
        sh:path dcterms:license ;
        sh:nodeKind sh:IRI
    ] .
`

func shapesGraph(t *testing.T) *rdf.Graph {
	t.Helper()
	g, err := rdf.DecodeTurtle(strings.NewReader(datasetShape))
	require.NoError(t, err)
	return g
}

func dataGraph(t *testing.T, turtle string) *rdf.Graph {
	t.Helper()
	g, err := rdf.DecodeTurtle(strings.NewReader(turtle))
	require.NoError(t, err)
	return g
}

func TestValidateConforming(t *testing.T) {
	v := NewShapeValidator(shapesGraph(t))
	data := dataGraph(t, `
@prefix dcat: <http://www.w3.org/ns/dcat#> .
@prefix dcterms: <http://purl.org/dc/terms/> .

<http://example.org/d> a dcat:Dataset ;
    dcterms:title "Water quality" ;
    dcterms:license <http://example.org/licence> .
`)

	report, err := v.Validate(data)
	require.NoError(t, err)
	assert.True(t, report.Conforms())
	assert.Equal(t, "conforms", report.String())
}

func TestValidateMissingRequiredProperty(t *testing.T) {
	v := NewShapeValidator(shapesGraph(t))
	data := dataGraph(t, `
@prefix dcat: <http://www.w3.org/ns/dcat#> .

<http://example.org/d> a dcat:Dataset .
`)

	report, err := v.Validate(data)
	require.NoError(t, err)
	require.Len(t, report.Violations, 1)

	violation := report.Violations[0]
	assert.Equal(t, rdf.NewIRI("http://example.org/d"), violation.Focus)
	assert.Contains(t, violation.Message, "dataset needs exactly one title")
	assert.Contains(t, violation.Message, "at least 1 value(s), found 0")
	assert.Contains(t, report.String(), "dataset needs exactly one title")
}

func TestValidateMaxCount(t *testing.T) {
	v := NewShapeValidator(shapesGraph(t))
	data := dataGraph(t, `
@prefix dcat: <http://www.w3.org/ns/dcat#> .
@prefix dcterms: <http://purl.org/dc/terms/> .

<http://example.org/d> a dcat:Dataset ;
    dcterms:title "One", "Two" .
`)

	report, err := v.Validate(data)
	require.NoError(t, err)
	require.Len(t, report.Violations, 1)
	assert.Contains(t, report.Violations[0].Message, "at most 1 value(s), found 2")
}

func TestValidateNodeKind(t *testing.T) {
	v := NewShapeValidator(shapesGraph(t))
	data := dataGraph(t, `
@prefix dcat: <http://www.w3.org/ns/dcat#> .
@prefix dcterms: <http://purl.org/dc/terms/> .

<http://example.org/d> a dcat:Dataset ;
    dcterms:title "Water quality" ;
    dcterms:license "CC-BY-4.0" .
`)

	report, err := v.Validate(data)
	require.NoError(t, err)
	require.Len(t, report.Violations, 1)
	assert.Contains(t, report.Violations[0].Message, "does not match node kind")
}

func TestValidateIgnoresUntargetedNodes(t *testing.T) {
	v := NewShapeValidator(shapesGraph(t))
	data := dataGraph(t, `
@prefix dcat: <http://www.w3.org/ns/dcat#> .

<http://example.org/cat> a dcat:Catalog .
`)

	report, err := v.Validate(data)
	require.NoError(t, err)
	assert.True(t, report.Conforms())
}

func TestValidateShapeWithoutPath(t *testing.T) {
	shapes := dataGraph(t, `
@prefix sh: <http://www.w3.org/ns/shacl#> .
@prefix dcat: <http://www.w3.org/ns/dcat#> .
@prefix ex: <http://example.org/shapes/> .

ex:Broken a sh:NodeShape ;
    sh:targetClass dcat:Dataset ;
    sh:property [ sh:minCount 1 ] .
`)
	v := NewShapeValidator(shapes)

	_, err := v.Validate(rdf.NewGraph())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no path")
}

func TestMatchesNodeKind(t *testing.T) {
	iri := rdf.NewIRI("http://example.org/x")
	lit := rdf.NewLiteral("x")
	blank := rdf.NewBlankNode()

	assert.True(t, matchesNodeKind(iri, shIRI))
	assert.False(t, matchesNodeKind(lit, shIRI))
	assert.True(t, matchesNodeKind(lit, shLiteral))
	assert.True(t, matchesNodeKind(blank, shBlankNode))
	assert.True(t, matchesNodeKind(iri, shBlankOrIRI))
	assert.True(t, matchesNodeKind(blank, shBlankOrIRI))
	assert.False(t, matchesNodeKind(lit, shBlankOrIRI))
	assert.True(t, matchesNodeKind(iri, shIRIOrLiteral))
	assert.False(t, matchesNodeKind(blank, shIRIOrLiteral))
	assert.True(t, matchesNodeKind(lit, "unknown"))
}
