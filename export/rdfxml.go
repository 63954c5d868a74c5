package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/c360studio/semscore/rdf"
	"github.com/c360studio/semscore/vocabulary/w3c"
)

// MarshalRDFXML serializes a graph as RDF/XML. Every predicate must fall
// inside a bound prefix namespace so it can be written as a qualified
// element name; unbound predicates are written against an auto-numbered
// namespace declaration.
func MarshalRDFXML(g *rdf.Graph) string {
	prefixes := map[string]string{"rdf": w3c.RdfNamespace}
	for prefix, ns := range g.Prefixes() {
		if prefix == "rdf" {
			continue
		}
		prefixes[prefix] = ns
	}

	// Predicates outside every bound namespace get generated bindings so
	// the element names stay well formed.
	auto := 0
	for _, t := range g.Triples() {
		iri := t.Predicate.RawValue()
		if _, _, ok := splitQName(iri, prefixes); !ok {
			ns, local := splitIRI(iri)
			if local == "" {
				continue
			}
			auto++
			prefixes[fmt.Sprintf("ns%d", auto)] = ns
		}
	}

	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="utf-8"?>`)
	sb.WriteString("\n<rdf:RDF")

	keys := make([]string, 0, len(prefixes))
	for k := range prefixes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, prefix := range keys {
		sb.WriteString(fmt.Sprintf("\n    xmlns:%s=%q", prefix, prefixes[prefix]))
	}
	sb.WriteString(">\n")

	for _, block := range subjectBlocks(g) {
		writeSubjectXML(&sb, block, prefixes)
	}

	sb.WriteString("</rdf:RDF>\n")
	return sb.String()
}

func writeSubjectXML(sb *strings.Builder, b subjectBlock, prefixes map[string]string) {
	switch s := b.subject.(type) {
	case rdf.IRI:
		sb.WriteString(fmt.Sprintf("  <rdf:Description rdf:about=%q>\n", s.Value))
	case rdf.BlankNode:
		sb.WriteString(fmt.Sprintf("  <rdf:Description rdf:nodeID=%q>\n", s.ID))
	default:
		return
	}

	for _, p := range b.predicates {
		name, _, ok := splitQName(p.RawValue(), prefixes)
		if !ok {
			continue
		}
		for _, o := range b.objects[p.String()] {
			writePropertyXML(sb, name, o)
		}
	}

	sb.WriteString("  </rdf:Description>\n")
}

func writePropertyXML(sb *strings.Builder, name string, o rdf.Term) {
	switch v := o.(type) {
	case rdf.IRI:
		sb.WriteString(fmt.Sprintf("    <%s rdf:resource=%q/>\n", name, v.Value))
	case rdf.BlankNode:
		sb.WriteString(fmt.Sprintf("    <%s rdf:nodeID=%q/>\n", name, v.ID))
	case rdf.Literal:
		attrs := ""
		if v.Language != "" {
			attrs = fmt.Sprintf(" xml:lang=%q", v.Language)
		} else if v.Datatype != "" && v.Datatype != w3c.XsdString {
			attrs = fmt.Sprintf(" rdf:datatype=%q", v.Datatype)
		}
		sb.WriteString(fmt.Sprintf("    <%s%s>%s</%s>\n", name, attrs, escapeXML(v.Value), name))
	}
}

// splitQName finds a bound prefix whose namespace covers the IRI and whose
// remainder is a valid element local name.
func splitQName(iri string, prefixes map[string]string) (qname, prefix string, ok bool) {
	best := ""
	bestPrefix := ""
	for p, ns := range prefixes {
		if strings.HasPrefix(iri, ns) && len(ns) > len(best) {
			best = ns
			bestPrefix = p
		}
	}
	if best == "" {
		return "", "", false
	}
	local := iri[len(best):]
	if local == "" || !safeLocalName(local) {
		return "", "", false
	}
	return bestPrefix + ":" + local, bestPrefix, true
}

// splitIRI splits an IRI at the last '#' or '/' into namespace and local
// name.
func splitIRI(iri string) (ns, local string) {
	if idx := strings.LastIndexAny(iri, "#/"); idx >= 0 && idx < len(iri)-1 {
		return iri[:idx+1], iri[idx+1:]
	}
	return "", ""
}

func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
