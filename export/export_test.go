package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semscore/rdf"
	"github.com/c360studio/semscore/vocabulary/w3c"
)

// sampleGraph builds a small catalogue entry exercising prefixed names,
// plain and typed literals, and an object list.
func sampleGraph() *rdf.Graph {
	g := rdf.NewGraph()
	g.Bind("dcat", "http://www.w3.org/ns/dcat#")
	g.Bind("dcterms", "http://purl.org/dc/terms/")
	g.Bind("xsd", w3c.XsdNamespace)

	s := rdf.NewIRI("http://example.org/dataset/1")
	g.Add(s, rdf.NewIRI(w3c.RdfType), rdf.NewIRI("http://www.w3.org/ns/dcat#Dataset"))
	g.Add(s, rdf.NewIRI("http://purl.org/dc/terms/title"), rdf.NewLiteral("Water quality"))
	g.Add(s, rdf.NewIRI("http://purl.org/dc/terms/issued"),
		rdf.NewTypedLiteral("2024-01-01", w3c.XsdDate))
	g.Add(s, rdf.NewIRI("http://www.w3.org/ns/dcat#keyword"), rdf.NewLiteral("water"))
	g.Add(s, rdf.NewIRI("http://www.w3.org/ns/dcat#keyword"), rdf.NewLiteral("river"))
	return g
}

func TestFormatForExtension(t *testing.T) {
	tests := []struct {
		ext     string
		want    Format
		wantErr bool
	}{
		{".ttl", FormatTurtle, false},
		{"ttl", FormatTurtle, false},
		{".TTL", FormatTurtle, false},
		{".nt", FormatNTriples, false},
		{".json-ld", FormatJSONLD, false},
		{".jsonld", FormatJSONLD, false},
		{".rdf", FormatRDFXML, false},
		{".xml", FormatRDFXML, false},
		{".csv", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := FormatForExtension(tt.ext)
		if tt.wantErr {
			assert.Error(t, err, "ext %q", tt.ext)
			continue
		}
		require.NoError(t, err, "ext %q", tt.ext)
		assert.Equal(t, tt.want, got, "ext %q", tt.ext)
	}
}

func TestFormatForMediaType(t *testing.T) {
	got, err := FormatForMediaType("text/turtle; charset=utf-8")
	require.NoError(t, err)
	assert.Equal(t, FormatTurtle, got)

	got, err = FormatForMediaType("application/ld+json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSONLD, got)

	_, err = FormatForMediaType("text/html")
	assert.Error(t, err)
}

func TestFormatForPath(t *testing.T) {
	got, err := FormatForPath("out/scores-fair.ttl")
	require.NoError(t, err)
	assert.Equal(t, FormatTurtle, got)

	// Compound extension hidden from filepath.Ext.
	got, err = FormatForPath("scores.json-ld")
	require.NoError(t, err)
	assert.Equal(t, FormatJSONLD, got)

	_, err = FormatForPath("scores")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no extension")
}

func TestValidatePath(t *testing.T) {
	dir := t.TempDir()

	assert.NoError(t, ValidatePath(filepath.Join(dir, "out.ttl")))

	err := ValidatePath(filepath.Join(dir, "out.csv"))
	assert.Error(t, err)

	err = ValidatePath(filepath.Join(dir, "missing", "out.ttl"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output directory")
}

func TestMarshalTurtle(t *testing.T) {
	out := MarshalTurtle(sampleGraph())

	want := `@prefix dcat: <http://www.w3.org/ns/dcat#> .
@prefix dcterms: <http://purl.org/dc/terms/> .
@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .

<http://example.org/dataset/1>
    a dcat:Dataset ;
    dcterms:title "Water quality" ;
    dcterms:issued "2024-01-01"^^xsd:date ;
    dcat:keyword "water", "river" .
`
	assert.Equal(t, want, out)
}

func TestMarshalTurtleRoundTrip(t *testing.T) {
	g := sampleGraph()
	parsed, err := rdf.DecodeTurtle(strings.NewReader(MarshalTurtle(g)))
	require.NoError(t, err)
	assert.Equal(t, g.Len(), parsed.Len())
	for _, triple := range g.Triples() {
		assert.True(t, parsed.Has(triple.Subject, triple.Predicate, triple.Object),
			"missing %s", triple)
	}
}

func TestMarshalNTriples(t *testing.T) {
	g := rdf.NewGraph()
	g.Add(rdf.NewIRI("http://example.org/s"), rdf.NewIRI("http://example.org/p"),
		rdf.NewLiteral("v"))

	out := MarshalNTriples(g)
	assert.Equal(t, "<http://example.org/s> <http://example.org/p> \"v\" .\n", out)
}

func TestMarshalJSONLDRoundTrip(t *testing.T) {
	g := sampleGraph()
	out, err := MarshalJSONLD(g)
	require.NoError(t, err)
	assert.Contains(t, out, `"@context"`)
	assert.Contains(t, out, `"@graph"`)

	parsed, err := rdf.DecodeJSONLD(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, g.Len(), parsed.Len())
	for _, triple := range g.Triples() {
		assert.True(t, parsed.Has(triple.Subject, triple.Predicate, triple.Object),
			"missing %s", triple)
	}
}

func TestMarshalRDFXMLRoundTrip(t *testing.T) {
	g := sampleGraph()
	out := MarshalRDFXML(g)
	assert.Contains(t, out, `<?xml version="1.0" encoding="utf-8"?>`)
	assert.Contains(t, out, `xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"`)

	parsed, err := rdf.DecodeRDFXML(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, g.Len(), parsed.Len())
	for _, triple := range g.Triples() {
		assert.True(t, parsed.Has(triple.Subject, triple.Predicate, triple.Object),
			"missing %s", triple)
	}
}

func TestMarshalRDFXMLUnboundPredicate(t *testing.T) {
	g := rdf.NewGraph()
	g.Add(rdf.NewIRI("http://example.org/s"),
		rdf.NewIRI("http://unbound.example/ns#prop"), rdf.NewLiteral("v"))

	out := MarshalRDFXML(g)
	assert.Contains(t, out, `xmlns:ns1="http://unbound.example/ns#"`)
	assert.Contains(t, out, "<ns1:prop>v</ns1:prop>")
}

func TestMarshalRDFXMLEscapesText(t *testing.T) {
	g := rdf.NewGraph()
	g.Bind("dcterms", "http://purl.org/dc/terms/")
	g.Add(rdf.NewIRI("http://example.org/s"),
		rdf.NewIRI("http://purl.org/dc/terms/title"), rdf.NewLiteral(`a < b & c`))

	out := MarshalRDFXML(g)
	assert.Contains(t, out, "a &lt; b &amp; c")
}

func TestMarshalUnsupportedFormat(t *testing.T) {
	_, err := Marshal(rdf.NewGraph(), Format("trig"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestWriteFile(t *testing.T) {
	g := sampleGraph()
	path := filepath.Join(t.TempDir(), "scores.ttl")
	require.NoError(t, WriteFile(g, path))

	parsed, err := rdf.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, g.Len(), parsed.Len())

	err = WriteFile(g, filepath.Join(t.TempDir(), "scores.csv"))
	assert.Error(t, err)
}

func TestGetFormatInfo(t *testing.T) {
	info, ok := GetFormatInfo(FormatJSONLD)
	require.True(t, ok)
	assert.Equal(t, "application/ld+json", info.MediaType)
	assert.Equal(t, ".json-ld", info.Extensions[0])

	_, ok = GetFormatInfo(Format("trig"))
	assert.False(t, ok)
}

func TestWriteFilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.nt")
	require.NoError(t, WriteFile(sampleGraph(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}
