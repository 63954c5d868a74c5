package rdf

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

const (
	rdfNS = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	xmlNS = "http://www.w3.org/XML/1998/namespace"
)

// DecodeRDFXML parses the common striped RDF/XML form: rdf:Description (or
// typed node) elements carrying rdf:about or rdf:nodeID, with child property
// elements holding rdf:resource, rdf:nodeID, nested node elements, or
// literal text with optional rdf:datatype / xml:lang. Reification,
// containers and rdf:parseType are not supported.
func DecodeRDFXML(r io.Reader) (*Graph, error) {
	var doc xmlElement
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse rdf/xml: %w", err)
	}
	if doc.XMLName.Space != rdfNS || doc.XMLName.Local != "RDF" {
		return nil, fmt.Errorf("parse rdf/xml: document element is not rdf:RDF")
	}

	g := NewGraph()
	labels := make(map[string]BlankNode)
	for i := range doc.Children {
		if _, err := decodeXMLNode(g, &doc.Children[i], labels); err != nil {
			return nil, err
		}
	}
	return g, nil
}

type xmlElement struct {
	XMLName  xml.Name
	Attrs    []xml.Attr   `xml:",any,attr"`
	Children []xmlElement `xml:",any"`
	Text     string       `xml:",chardata"`
}

func (e *xmlElement) attr(space, local string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name.Space == space && a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// decodeXMLNode decodes a node element and returns its subject term.
func decodeXMLNode(g *Graph, e *xmlElement, labels map[string]BlankNode) (Term, error) {
	var subject Term
	if about, ok := e.attr(rdfNS, "about"); ok {
		subject = NewIRI(about)
	} else if id, ok := e.attr(rdfNS, "nodeID"); ok {
		subject = blankForLabel(labels, id)
	} else {
		subject = NewBlankNode()
	}

	// A typed node element asserts rdf:type from its name.
	if !(e.XMLName.Space == rdfNS && e.XMLName.Local == "Description") {
		g.Add(subject, NewIRI(rdfType), NewIRI(e.XMLName.Space+e.XMLName.Local))
	}

	for i := range e.Children {
		if err := decodeXMLProperty(g, subject, &e.Children[i], labels); err != nil {
			return nil, err
		}
	}
	return subject, nil
}

func decodeXMLProperty(g *Graph, subject Term, e *xmlElement, labels map[string]BlankNode) error {
	predicate := NewIRI(e.XMLName.Space + e.XMLName.Local)

	if res, ok := e.attr(rdfNS, "resource"); ok {
		g.Add(subject, predicate, NewIRI(res))
		return nil
	}
	if id, ok := e.attr(rdfNS, "nodeID"); ok {
		g.Add(subject, predicate, blankForLabel(labels, id))
		return nil
	}
	if len(e.Children) > 0 {
		object, err := decodeXMLNode(g, &e.Children[0], labels)
		if err != nil {
			return err
		}
		g.Add(subject, predicate, object)
		return nil
	}

	value := strings.TrimSpace(e.Text)
	if dt, ok := e.attr(rdfNS, "datatype"); ok {
		g.Add(subject, predicate, NewTypedLiteral(value, dt))
		return nil
	}
	if lang, ok := e.attr(xmlNS, "lang"); ok {
		g.Add(subject, predicate, NewLangLiteral(value, lang))
		return nil
	}
	g.Add(subject, predicate, NewLiteral(value))
	return nil
}

func blankForLabel(labels map[string]BlankNode, label string) BlankNode {
	if b, ok := labels[label]; ok {
		return b
	}
	b := NewBlankNodeID(label)
	labels[label] = b
	return b
}
