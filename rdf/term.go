// Package rdf provides an in-memory RDF triple store with pattern queries,
// graph union, prefix binding and format decoding. It implements only what
// metadata scoring requires, not a complete RDF toolkit.
package rdf

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Term is a node in an RDF graph: an IRI, a literal or a blank node.
type Term interface {
	// String returns the N-Triples form of the term.
	String() string

	// RawValue returns the lexical value without surrounding syntax.
	RawValue() string

	// Equal reports whether two terms are the same RDF term.
	Equal(other Term) bool
}

// IRI is an absolute IRI reference.
type IRI struct {
	Value string
}

// NewIRI creates an IRI term.
func NewIRI(value string) IRI {
	return IRI{Value: value}
}

func (i IRI) String() string   { return "<" + i.Value + ">" }
func (i IRI) RawValue() string { return i.Value }

func (i IRI) Equal(other Term) bool {
	o, ok := other.(IRI)
	return ok && o.Value == i.Value
}

// Literal is an RDF literal with an optional language tag or datatype IRI.
// A zero Datatype and Language means a plain string literal.
type Literal struct {
	Value    string
	Language string
	Datatype string
}

// NewLiteral creates a plain string literal.
func NewLiteral(value string) Literal {
	return Literal{Value: value}
}

// NewLangLiteral creates a language-tagged literal.
func NewLangLiteral(value, language string) Literal {
	return Literal{Value: value, Language: language}
}

// NewTypedLiteral creates a literal with an explicit datatype IRI.
func NewTypedLiteral(value, datatype string) Literal {
	return Literal{Value: value, Datatype: datatype}
}

func (l Literal) String() string {
	s := `"` + escapeLiteral(l.Value) + `"`
	if l.Language != "" {
		return s + "@" + l.Language
	}
	if l.Datatype != "" {
		return s + "^^<" + l.Datatype + ">"
	}
	return s
}

func (l Literal) RawValue() string { return l.Value }

func (l Literal) Equal(other Term) bool {
	o, ok := other.(Literal)
	return ok && o.Value == l.Value && o.Language == l.Language && o.Datatype == l.Datatype
}

// BlankNode is a graph-scoped anonymous node.
type BlankNode struct {
	ID string
}

// NewBlankNode mints a blank node with a fresh unique label.
func NewBlankNode() BlankNode {
	return BlankNode{ID: "n" + strings.ReplaceAll(uuid.New().String(), "-", "")}
}

// NewBlankNodeID creates a blank node with an explicit label, as needed when
// decoding serialized graphs.
func NewBlankNodeID(id string) BlankNode {
	return BlankNode{ID: id}
}

func (b BlankNode) String() string   { return "_:" + b.ID }
func (b BlankNode) RawValue() string { return b.ID }

func (b BlankNode) Equal(other Term) bool {
	o, ok := other.(BlankNode)
	return ok && o.ID == b.ID
}

// Triple is a single RDF statement.
type Triple struct {
	Subject   Term
	Predicate Term
	Object    Term
}

// NewTriple creates a triple from its three terms.
func NewTriple(s, p, o Term) *Triple {
	return &Triple{Subject: s, Predicate: p, Object: o}
}

func (t *Triple) String() string {
	return fmt.Sprintf("%s %s %s .", t.Subject.String(), t.Predicate.String(), t.Object.String())
}

func escapeLiteral(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
