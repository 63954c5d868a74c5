package rdf

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

const (
	xsdString  = "http://www.w3.org/2001/XMLSchema#string"
	xsdInteger = "http://www.w3.org/2001/XMLSchema#integer"
	xsdDecimal = "http://www.w3.org/2001/XMLSchema#decimal"
	xsdBoolean = "http://www.w3.org/2001/XMLSchema#boolean"
	rdfType    = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
)

// DecodeTurtle parses Turtle (and, as a strict subset, N-Triples) into a
// graph. It covers the Turtle surface catalogue metadata uses: prefix and
// base directives, predicate-object and object lists, the 'a' keyword,
// language-tagged and datatyped literals, numeric and boolean shorthands,
// and nested blank node property lists. RDF collections are not supported.
func DecodeTurtle(r io.Reader) (*Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read turtle input: %w", err)
	}
	p := &turtleParser{
		src:      []rune(string(data)),
		graph:    NewGraph(),
		prefixes: make(map[string]string),
		labels:   make(map[string]BlankNode),
	}
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.graph, nil
}

type turtleParser struct {
	src      []rune
	pos      int
	line     int
	base     string
	graph    *Graph
	prefixes map[string]string
	labels   map[string]BlankNode
}

func (p *turtleParser) parse() error {
	for {
		p.skipWhitespace()
		if p.eof() {
			return nil
		}
		if err := p.parseStatement(); err != nil {
			return fmt.Errorf("turtle: line %d: %w", p.line+1, err)
		}
	}
}

func (p *turtleParser) parseStatement() error {
	if p.hasKeyword("@prefix") || p.hasKeyword("PREFIX") {
		return p.parsePrefix()
	}
	if p.hasKeyword("@base") || p.hasKeyword("BASE") {
		return p.parseBase()
	}

	subject, err := p.parseSubject()
	if err != nil {
		return err
	}
	if err := p.parsePredicateObjectList(subject); err != nil {
		return err
	}
	p.skipWhitespace()
	if !p.consumeRune('.') {
		return fmt.Errorf("expected '.' after statement")
	}
	return nil
}

func (p *turtleParser) parsePrefix() error {
	sparql := p.hasKeyword("PREFIX")
	if sparql {
		p.pos += len("PREFIX")
	} else {
		p.pos += len("@prefix")
	}
	p.skipWhitespace()

	var name strings.Builder
	for !p.eof() && p.peek() != ':' {
		name.WriteRune(p.next())
	}
	if !p.consumeRune(':') {
		return fmt.Errorf("malformed prefix directive")
	}
	p.skipWhitespace()
	iri, err := p.parseIRIRef()
	if err != nil {
		return err
	}
	p.prefixes[name.String()] = iri
	p.graph.Bind(name.String(), iri)
	p.skipWhitespace()
	if !sparql && !p.consumeRune('.') {
		return fmt.Errorf("expected '.' after @prefix")
	}
	return nil
}

func (p *turtleParser) parseBase() error {
	sparql := p.hasKeyword("BASE")
	if sparql {
		p.pos += len("BASE")
	} else {
		p.pos += len("@base")
	}
	p.skipWhitespace()
	iri, err := p.parseIRIRef()
	if err != nil {
		return err
	}
	p.base = iri
	p.skipWhitespace()
	if !sparql && !p.consumeRune('.') {
		return fmt.Errorf("expected '.' after @base")
	}
	return nil
}

func (p *turtleParser) parseSubject() (Term, error) {
	p.skipWhitespace()
	switch {
	case p.peek() == '<':
		iri, err := p.parseIRIRef()
		if err != nil {
			return nil, err
		}
		return NewIRI(iri), nil
	case p.hasKeyword("_:"):
		return p.parseBlankNodeLabel()
	case p.peek() == '[':
		return p.parseBlankNodePropertyList()
	default:
		return p.parsePrefixedName()
	}
}

// parsePredicateObjectList parses "p o, o ; p o ..." for a subject.
func (p *turtleParser) parsePredicateObjectList(subject Term) error {
	for {
		p.skipWhitespace()
		predicate, err := p.parsePredicate()
		if err != nil {
			return err
		}
		for {
			object, err := p.parseObject()
			if err != nil {
				return err
			}
			p.graph.Add(subject, predicate, object)
			p.skipWhitespace()
			if !p.consumeRune(',') {
				break
			}
		}
		p.skipWhitespace()
		if !p.consumeRune(';') {
			return nil
		}
		p.skipWhitespace()
		// A trailing ';' before '.' or ']' is legal Turtle.
		if p.eof() || p.peek() == '.' || p.peek() == ']' {
			return nil
		}
	}
}

func (p *turtleParser) parsePredicate() (Term, error) {
	p.skipWhitespace()
	if p.peek() == '<' {
		iri, err := p.parseIRIRef()
		if err != nil {
			return nil, err
		}
		return NewIRI(iri), nil
	}
	if p.peek() == 'a' && p.pos+1 < len(p.src) && isTerminator(p.src[p.pos+1]) {
		p.pos++
		return NewIRI(rdfType), nil
	}
	return p.parsePrefixedName()
}

func (p *turtleParser) parseObject() (Term, error) {
	p.skipWhitespace()
	switch {
	case p.eof():
		return nil, fmt.Errorf("unexpected end of input in object position")
	case p.peek() == '<':
		iri, err := p.parseIRIRef()
		if err != nil {
			return nil, err
		}
		return NewIRI(iri), nil
	case p.peek() == '"' || p.peek() == '\'':
		return p.parseLiteral()
	case p.hasKeyword("_:"):
		return p.parseBlankNodeLabel()
	case p.peek() == '[':
		return p.parseBlankNodePropertyList()
	case p.peek() == '(':
		return nil, fmt.Errorf("RDF collections are not supported")
	case p.hasBoolean():
		return p.parseBoolean()
	case p.peek() == '+' || p.peek() == '-' || unicode.IsDigit(p.peek()):
		return p.parseNumber()
	default:
		return p.parsePrefixedName()
	}
}

func (p *turtleParser) parseIRIRef() (string, error) {
	if !p.consumeRune('<') {
		return "", fmt.Errorf("expected '<'")
	}
	var sb strings.Builder
	for {
		if p.eof() {
			return "", fmt.Errorf("unterminated IRI")
		}
		r := p.next()
		if r == '>' {
			break
		}
		sb.WriteRune(r)
	}
	iri := sb.String()
	if p.base != "" && !strings.Contains(iri, ":") {
		iri = p.base + iri
	}
	return iri, nil
}

func (p *turtleParser) parsePrefixedName() (Term, error) {
	var prefix strings.Builder
	for !p.eof() && p.peek() != ':' && isLocalNameRune(p.peek()) {
		prefix.WriteRune(p.next())
	}
	if !p.consumeRune(':') {
		return nil, fmt.Errorf("expected prefixed name, found %q", string(p.peek()))
	}
	ns, ok := p.prefixes[prefix.String()]
	if !ok {
		return nil, fmt.Errorf("undeclared prefix %q", prefix.String())
	}
	var local strings.Builder
	for !p.eof() && isLocalNameRune(p.peek()) {
		local.WriteRune(p.next())
	}
	name := local.String()
	// A final '.' belongs to the statement, not the name.
	for strings.HasSuffix(name, ".") {
		name = name[:len(name)-1]
		p.pos--
	}
	return NewIRI(ns + name), nil
}

func (p *turtleParser) parseBlankNodeLabel() (Term, error) {
	p.pos += 2 // "_:"
	var sb strings.Builder
	for !p.eof() && isLocalNameRune(p.peek()) {
		sb.WriteRune(p.next())
	}
	label := sb.String()
	for strings.HasSuffix(label, ".") {
		label = label[:len(label)-1]
		p.pos--
	}
	if label == "" {
		return nil, fmt.Errorf("empty blank node label")
	}
	if b, ok := p.labels[label]; ok {
		return b, nil
	}
	b := NewBlankNodeID(label)
	p.labels[label] = b
	return b, nil
}

func (p *turtleParser) parseBlankNodePropertyList() (Term, error) {
	p.pos++ // '['
	node := NewBlankNode()
	p.skipWhitespace()
	if p.consumeRune(']') {
		return node, nil
	}
	if err := p.parsePredicateObjectList(node); err != nil {
		return nil, err
	}
	p.skipWhitespace()
	if !p.consumeRune(']') {
		return nil, fmt.Errorf("unterminated blank node property list")
	}
	return node, nil
}

func (p *turtleParser) parseLiteral() (Term, error) {
	value, err := p.parseQuotedString()
	if err != nil {
		return nil, err
	}
	if p.consumeRune('@') {
		var lang strings.Builder
		for !p.eof() && (unicode.IsLetter(p.peek()) || unicode.IsDigit(p.peek()) || p.peek() == '-') {
			lang.WriteRune(p.next())
		}
		return NewLangLiteral(value, lang.String()), nil
	}
	if p.hasKeyword("^^") {
		p.pos += 2
		var datatype string
		if p.peek() == '<' {
			dt, err := p.parseIRIRef()
			if err != nil {
				return nil, err
			}
			datatype = dt
		} else {
			term, err := p.parsePrefixedName()
			if err != nil {
				return nil, err
			}
			datatype = term.RawValue()
		}
		if datatype == xsdString {
			return NewLiteral(value), nil
		}
		return NewTypedLiteral(value, datatype), nil
	}
	return NewLiteral(value), nil
}

func (p *turtleParser) parseQuotedString() (string, error) {
	quote := p.next()
	long := false
	if p.peek() == quote && p.pos+1 < len(p.src) && p.src[p.pos+1] == quote {
		long = true
		p.pos += 2
	}
	var sb strings.Builder
	for {
		if p.eof() {
			return "", fmt.Errorf("unterminated string literal")
		}
		r := p.next()
		if r == '\\' {
			esc, err := p.parseEscape()
			if err != nil {
				return "", err
			}
			sb.WriteRune(esc)
			continue
		}
		if r == quote {
			if !long {
				return sb.String(), nil
			}
			if p.peek() == quote && p.pos+1 < len(p.src) && p.src[p.pos+1] == quote {
				p.pos += 2
				return sb.String(), nil
			}
		}
		sb.WriteRune(r)
	}
}

func (p *turtleParser) parseEscape() (rune, error) {
	if p.eof() {
		return 0, fmt.Errorf("unterminated escape sequence")
	}
	r := p.next()
	switch r {
	case 't':
		return '\t', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case '"', '\'', '\\':
		return r, nil
	case 'u', 'U':
		width := 4
		if r == 'U' {
			width = 8
		}
		var code rune
		for i := 0; i < width; i++ {
			if p.eof() {
				return 0, fmt.Errorf("unterminated unicode escape")
			}
			d := p.next()
			v := hexValue(d)
			if v < 0 {
				return 0, fmt.Errorf("invalid unicode escape digit %q", string(d))
			}
			code = code*16 + rune(v)
		}
		return code, nil
	default:
		return 0, fmt.Errorf("unknown escape sequence \\%s", string(r))
	}
}

func hexValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	default:
		return -1
	}
}

func (p *turtleParser) hasBoolean() bool {
	n := 0
	switch {
	case p.hasKeyword("true"):
		n = 4
	case p.hasKeyword("false"):
		n = 5
	default:
		return false
	}
	return p.pos+n >= len(p.src) || isTerminator(p.src[p.pos+n])
}

func (p *turtleParser) parseBoolean() (Term, error) {
	if p.hasKeyword("true") {
		p.pos += 4
		return NewTypedLiteral("true", xsdBoolean), nil
	}
	p.pos += 5
	return NewTypedLiteral("false", xsdBoolean), nil
}

func (p *turtleParser) parseNumber() (Term, error) {
	var sb strings.Builder
	if p.peek() == '+' || p.peek() == '-' {
		sb.WriteRune(p.next())
	}
	decimal := false
	for !p.eof() {
		r := p.peek()
		if unicode.IsDigit(r) {
			sb.WriteRune(p.next())
			continue
		}
		// Only a dot followed by a digit continues the number; otherwise it
		// terminates the statement.
		if r == '.' && !decimal && p.pos+1 < len(p.src) && unicode.IsDigit(p.src[p.pos+1]) {
			decimal = true
			sb.WriteRune(p.next())
			continue
		}
		break
	}
	if decimal {
		return NewTypedLiteral(sb.String(), xsdDecimal), nil
	}
	return NewTypedLiteral(sb.String(), xsdInteger), nil
}

func (p *turtleParser) skipWhitespace() {
	for !p.eof() {
		r := p.peek()
		if r == '#' {
			for !p.eof() && p.peek() != '\n' {
				p.pos++
			}
			continue
		}
		if !unicode.IsSpace(r) {
			return
		}
		if r == '\n' {
			p.line++
		}
		p.pos++
	}
}

func (p *turtleParser) hasKeyword(kw string) bool {
	if p.pos+len(kw) > len(p.src) {
		return false
	}
	return string(p.src[p.pos:p.pos+len(kw)]) == kw
}

func (p *turtleParser) consumeRune(r rune) bool {
	if !p.eof() && p.peek() == r {
		p.pos++
		return true
	}
	return false
}

func (p *turtleParser) peek() rune {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *turtleParser) next() rune {
	r := p.src[p.pos]
	p.pos++
	if r == '\n' {
		p.line++
	}
	return r
}

func (p *turtleParser) eof() bool { return p.pos >= len(p.src) }

func isTerminator(r rune) bool {
	return unicode.IsSpace(r) || r == ';' || r == ',' || r == '.' || r == ']' || r == ')' || r == '#'
}

func isLocalNameRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || r == '.' || r == '%'
}
