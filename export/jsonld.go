package export

import (
	"encoding/json"
	"fmt"

	"github.com/c360studio/semscore/rdf"
	"github.com/c360studio/semscore/vocabulary/w3c"
)

// jsonldDocument is the serialized form: a prefix @context plus a flat
// @graph of node objects.
type jsonldDocument struct {
	Context map[string]string `json:"@context"`
	Graph   []map[string]any  `json:"@graph"`
}

// MarshalJSONLD serializes a graph as flat JSON-LD. The graph's prefix
// bindings become the @context; subjects become node objects with
// prefix-compacted property keys.
func MarshalJSONLD(g *rdf.Graph) (string, error) {
	prefixes := g.Prefixes()
	doc := jsonldDocument{
		Context: prefixes,
		Graph:   make([]map[string]any, 0),
	}

	for _, block := range subjectBlocks(g) {
		node := map[string]any{"@id": jsonldID(block.subject)}

		for _, p := range block.predicates {
			objects := block.objects[p.String()]

			if p.RawValue() == w3c.RdfType {
				types := make([]string, len(objects))
				for i, o := range objects {
					types[i] = jsonldName(o.RawValue(), prefixes)
				}
				node["@type"] = types
				continue
			}

			values := make([]any, len(objects))
			for i, o := range objects {
				values[i] = jsonldValue(o, prefixes)
			}
			key := jsonldName(p.RawValue(), prefixes)
			if len(values) == 1 {
				node[key] = values[0]
			} else {
				node[key] = values
			}
		}

		doc.Graph = append(doc.Graph, node)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON-LD: %w", err)
	}
	return string(data) + "\n", nil
}

func jsonldID(t rdf.Term) string {
	if _, ok := t.(rdf.BlankNode); ok {
		return "_:" + t.RawValue()
	}
	return t.RawValue()
}

func jsonldName(iri string, prefixes map[string]string) string {
	compact := compactIRI(iri, prefixes)
	if len(compact) > 1 && compact[0] == '<' {
		return iri
	}
	return compact
}

func jsonldValue(t rdf.Term, prefixes map[string]string) any {
	switch v := t.(type) {
	case rdf.IRI:
		return map[string]any{"@id": v.Value}
	case rdf.BlankNode:
		return map[string]any{"@id": "_:" + v.ID}
	case rdf.Literal:
		switch {
		case v.Language != "":
			return map[string]any{"@value": v.Value, "@language": v.Language}
		case v.Datatype != "" && v.Datatype != w3c.XsdString:
			return map[string]any{"@value": v.Value, "@type": jsonldName(v.Datatype, prefixes)}
		default:
			return v.Value
		}
	default:
		return t.RawValue()
	}
}
