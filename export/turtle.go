package export

import (
	"sort"
	"strings"

	"github.com/c360studio/semscore/rdf"
	"github.com/c360studio/semscore/vocabulary/w3c"
)

// MarshalTurtle serializes a graph as Turtle: sorted prefix declarations,
// triples grouped by subject in first-appearance order, rdf:type written as
// "a" first within each subject, repeated objects joined into object lists.
func MarshalTurtle(g *rdf.Graph) string {
	var sb strings.Builder
	prefixes := g.Prefixes()

	keys := make([]string, 0, len(prefixes))
	for k := range prefixes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, prefix := range keys {
		sb.WriteString("@prefix ")
		sb.WriteString(prefix)
		sb.WriteString(": <")
		sb.WriteString(prefixes[prefix])
		sb.WriteString("> .\n")
	}
	if len(keys) > 0 {
		sb.WriteString("\n")
	}

	for i, block := range subjectBlocks(g) {
		if i > 0 {
			sb.WriteString("\n")
		}
		writeSubjectTurtle(&sb, block, prefixes)
	}

	return sb.String()
}

// subjectBlock is one subject with its predicates and object lists, in
// first-appearance order, except rdf:type which sorts first.
type subjectBlock struct {
	subject    rdf.Term
	predicates []rdf.Term
	objects    map[string][]rdf.Term
}

func subjectBlocks(g *rdf.Graph) []subjectBlock {
	var blocks []subjectBlock
	index := make(map[string]int)

	for _, t := range g.Triples() {
		key := t.Subject.String()
		pos, ok := index[key]
		if !ok {
			pos = len(blocks)
			index[key] = pos
			blocks = append(blocks, subjectBlock{
				subject: t.Subject,
				objects: make(map[string][]rdf.Term),
			})
		}
		b := &blocks[pos]
		pkey := t.Predicate.String()
		if _, seen := b.objects[pkey]; !seen {
			if t.Predicate.RawValue() == w3c.RdfType {
				b.predicates = append([]rdf.Term{t.Predicate}, b.predicates...)
			} else {
				b.predicates = append(b.predicates, t.Predicate)
			}
		}
		b.objects[pkey] = append(b.objects[pkey], t.Object)
	}

	return blocks
}

func writeSubjectTurtle(sb *strings.Builder, b subjectBlock, prefixes map[string]string) {
	sb.WriteString(turtleTerm(b.subject, prefixes))
	sb.WriteString("\n")

	for i, p := range b.predicates {
		terminator := " ;"
		if i == len(b.predicates)-1 {
			terminator = " ."
		}

		name := turtleTerm(p, prefixes)
		if p.RawValue() == w3c.RdfType {
			name = "a"
		}

		objects := b.objects[p.String()]
		parts := make([]string, len(objects))
		for j, o := range objects {
			parts[j] = turtleTerm(o, prefixes)
		}

		sb.WriteString("    ")
		sb.WriteString(name)
		sb.WriteString(" ")
		sb.WriteString(strings.Join(parts, ", "))
		sb.WriteString(terminator)
		sb.WriteString("\n")
	}
}

func turtleTerm(t rdf.Term, prefixes map[string]string) string {
	switch v := t.(type) {
	case rdf.IRI:
		return compactIRI(v.Value, prefixes)
	case rdf.Literal:
		if v.Language == "" && (v.Datatype == "" || v.Datatype == w3c.XsdString) {
			return rdf.NewLiteral(v.Value).String()
		}
		if v.Language != "" {
			return t.String()
		}
		quoted := rdf.NewLiteral(v.Value).String()
		return quoted + "^^" + compactIRI(v.Datatype, prefixes)
	default:
		return t.String()
	}
}

// compactIRI rewrites an IRI as a prefixed name when a bound namespace
// matches and the remaining local part is safe to emit unescaped.
func compactIRI(iri string, prefixes map[string]string) string {
	best := ""
	bestPrefix := ""
	for prefix, ns := range prefixes {
		if strings.HasPrefix(iri, ns) && len(ns) > len(best) {
			best = ns
			bestPrefix = prefix
		}
	}
	if best == "" {
		return "<" + iri + ">"
	}
	local := iri[len(best):]
	if local == "" || !safeLocalName(local) {
		return "<" + iri + ">"
	}
	return bestPrefix + ":" + local
}

func safeLocalName(local string) bool {
	for _, r := range local {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return false
		}
	}
	return true
}
