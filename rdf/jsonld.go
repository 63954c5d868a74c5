package rdf

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DecodeJSONLD parses the flat JSON-LD subset this tool itself emits: a node
// object or an array of node objects (optionally under @graph), with an
// optional @context of prefix-to-IRI string mappings. Object values may be
// strings, numbers, booleans, node references ({"@id": ...}) or expanded
// values ({"@value": ..., "@type"/"@language": ...}). Nested node objects
// are decoded recursively. Full JSON-LD expansion is out of scope.
func DecodeJSONLD(r io.Reader) (*Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read json-ld input: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse json-ld: %w", err)
	}

	g := NewGraph()
	d := &jsonldDecodeState{graph: g, context: make(map[string]string), labels: make(map[string]BlankNode)}

	switch v := doc.(type) {
	case map[string]any:
		if ctx, ok := v["@context"].(map[string]any); ok {
			d.loadContext(ctx)
		}
		if nodes, ok := v["@graph"].([]any); ok {
			for _, n := range nodes {
				if obj, ok := n.(map[string]any); ok {
					if _, err := d.decodeNode(obj); err != nil {
						return nil, err
					}
				}
			}
			return g, nil
		}
		if _, err := d.decodeNode(v); err != nil {
			return nil, err
		}
	case []any:
		for _, n := range v {
			if obj, ok := n.(map[string]any); ok {
				if _, err := d.decodeNode(obj); err != nil {
					return nil, err
				}
			}
		}
	default:
		return nil, fmt.Errorf("parse json-ld: document must be an object or array")
	}
	return g, nil
}

type jsonldDecodeState struct {
	graph   *Graph
	context map[string]string
	labels  map[string]BlankNode
}

func (d *jsonldDecodeState) loadContext(ctx map[string]any) {
	for k, v := range ctx {
		if s, ok := v.(string); ok {
			if k == "@vocab" {
				d.context["@vocab"] = s
				continue
			}
			d.context[k] = s
			d.graph.Bind(k, s)
		}
	}
}

func (d *jsonldDecodeState) decodeNode(obj map[string]any) (Term, error) {
	subject := d.termForID(stringValue(obj["@id"]))

	for key, value := range obj {
		if strings.HasPrefix(key, "@") {
			if key == "@type" {
				for _, tv := range asSlice(value) {
					if s, ok := tv.(string); ok {
						d.graph.Add(subject, NewIRI(rdfType), NewIRI(d.expand(s)))
					}
				}
			}
			continue
		}
		predicate := NewIRI(d.expand(key))
		for _, v := range asSlice(value) {
			object, err := d.decodeValue(v)
			if err != nil {
				return nil, err
			}
			d.graph.Add(subject, predicate, object)
		}
	}
	return subject, nil
}

func (d *jsonldDecodeState) decodeValue(v any) (Term, error) {
	switch value := v.(type) {
	case string:
		return NewLiteral(value), nil
	case bool:
		return NewTypedLiteral(strconv.FormatBool(value), xsdBoolean), nil
	case float64:
		if value == float64(int64(value)) {
			return NewTypedLiteral(strconv.FormatInt(int64(value), 10), xsdInteger), nil
		}
		return NewTypedLiteral(strconv.FormatFloat(value, 'f', -1, 64), xsdDecimal), nil
	case map[string]any:
		if raw, ok := value["@value"]; ok {
			lex := stringValue(raw)
			if f, ok := raw.(float64); ok {
				lex = strconv.FormatFloat(f, 'f', -1, 64)
			}
			if lang, ok := value["@language"].(string); ok {
				return NewLangLiteral(lex, lang), nil
			}
			if dt, ok := value["@type"].(string); ok {
				return NewTypedLiteral(lex, d.expand(dt)), nil
			}
			return NewLiteral(lex), nil
		}
		if len(value) == 1 {
			if id, ok := value["@id"].(string); ok {
				return d.termForID(id), nil
			}
		}
		// A nested node object: decode it and reference its subject.
		return d.decodeNode(value)
	default:
		return nil, fmt.Errorf("parse json-ld: unsupported value %T", v)
	}
}

func (d *jsonldDecodeState) termForID(id string) Term {
	if id == "" {
		return NewBlankNode()
	}
	if strings.HasPrefix(id, "_:") {
		label := strings.TrimPrefix(id, "_:")
		if b, ok := d.labels[label]; ok {
			return b
		}
		b := NewBlankNodeID(label)
		d.labels[label] = b
		return b
	}
	return NewIRI(d.expand(id))
}

// expand resolves prefixed names and vocabulary-relative terms to IRIs.
func (d *jsonldDecodeState) expand(name string) string {
	if i := strings.Index(name, ":"); i > 0 {
		prefix := name[:i]
		if ns, ok := d.context[prefix]; ok {
			return ns + name[i+1:]
		}
		return name // already an absolute IRI
	}
	if vocab, ok := d.context["@vocab"]; ok {
		return vocab + name
	}
	return name
}

func stringValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func asSlice(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	return []any{v}
}
