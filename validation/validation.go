// Package validation checks input graphs against shape constraints before
// scoring. A graph that fails validation is rejected outright rather than
// scored against metadata that is not there.
package validation

import (
	"fmt"
	"strings"

	"github.com/c360studio/semscore/rdf"
	"github.com/c360studio/semscore/vocabulary/w3c"
)

// SHACL vocabulary subset understood by the shape validator.
const (
	shNamespace = "http://www.w3.org/ns/shacl#"

	shNodeShape   = shNamespace + "NodeShape"
	shTargetClass = shNamespace + "targetClass"
	shProperty    = shNamespace + "property"
	shPath        = shNamespace + "path"
	shMinCount    = shNamespace + "minCount"
	shMaxCount    = shNamespace + "maxCount"
	shNodeKind    = shNamespace + "nodeKind"
	shMessage     = shNamespace + "message"

	shIRI          = shNamespace + "IRI"
	shLiteral      = shNamespace + "Literal"
	shBlankNode    = shNamespace + "BlankNode"
	shBlankOrIRI   = shNamespace + "BlankNodeOrIRI"
	shIRIOrLiteral = shNamespace + "IRIOrLiteral"
)

// Violation is one failed constraint against one focus node.
type Violation struct {
	Focus   rdf.Term
	Path    string
	Message string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s %s: %s", v.Focus.String(), v.Path, v.Message)
}

// Report is the outcome of validating one graph.
type Report struct {
	Violations []Violation
}

// Conforms reports whether the graph passed every constraint.
func (r *Report) Conforms() bool { return len(r.Violations) == 0 }

// String renders the report one violation per line, or "conforms".
func (r *Report) String() string {
	if r.Conforms() {
		return "conforms"
	}
	var sb strings.Builder
	for _, v := range r.Violations {
		sb.WriteString(v.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// Validator checks a data graph and reports constraint violations.
type Validator interface {
	Validate(data *rdf.Graph) (*Report, error)
}

// ShapeValidator validates data graphs against node shapes held in a
// shapes graph. It understands targetClass node shapes with property
// constraints on minCount, maxCount and nodeKind.
type ShapeValidator struct {
	shapes *rdf.Graph
}

// NewShapeValidator builds a validator over a shapes graph.
func NewShapeValidator(shapes *rdf.Graph) *ShapeValidator {
	return &ShapeValidator{shapes: shapes}
}

// Validate checks every focus node targeted by the shapes graph.
func (v *ShapeValidator) Validate(data *rdf.Graph) (*Report, error) {
	report := &Report{}
	rdfType := rdf.NewIRI(w3c.RdfType)

	for _, shape := range v.shapes.Subjects(rdfType, rdf.NewIRI(shNodeShape)) {
		target := v.shapes.Object(shape, rdf.NewIRI(shTargetClass))
		if target == nil {
			continue
		}

		constraints, err := v.propertyConstraints(shape)
		if err != nil {
			return nil, fmt.Errorf("shape %s: %w", shape.String(), err)
		}

		for _, focus := range data.Subjects(rdfType, target) {
			for _, c := range constraints {
				report.Violations = append(report.Violations, c.check(data, focus)...)
			}
		}
	}

	return report, nil
}

type propertyConstraint struct {
	path     rdf.Term
	minCount int
	maxCount int
	nodeKind string
	message  string
}

func (v *ShapeValidator) propertyConstraints(shape rdf.Term) ([]propertyConstraint, error) {
	var out []propertyConstraint
	for _, node := range v.shapes.Objects(shape, rdf.NewIRI(shProperty)) {
		path := v.shapes.Object(node, rdf.NewIRI(shPath))
		if path == nil {
			return nil, fmt.Errorf("property constraint %s has no path", node.String())
		}

		c := propertyConstraint{path: path, minCount: 0, maxCount: -1}

		if min := v.shapes.Object(node, rdf.NewIRI(shMinCount)); min != nil {
			if _, err := fmt.Sscanf(min.RawValue(), "%d", &c.minCount); err != nil {
				return nil, fmt.Errorf("minCount %q: %w", min.RawValue(), err)
			}
		}
		if max := v.shapes.Object(node, rdf.NewIRI(shMaxCount)); max != nil {
			if _, err := fmt.Sscanf(max.RawValue(), "%d", &c.maxCount); err != nil {
				return nil, fmt.Errorf("maxCount %q: %w", max.RawValue(), err)
			}
		}
		if kind := v.shapes.Object(node, rdf.NewIRI(shNodeKind)); kind != nil {
			c.nodeKind = kind.RawValue()
		}
		if msg := v.shapes.Object(node, rdf.NewIRI(shMessage)); msg != nil {
			c.message = msg.RawValue()
		}

		out = append(out, c)
	}
	return out, nil
}

func (c propertyConstraint) check(data *rdf.Graph, focus rdf.Term) []Violation {
	var out []Violation
	objects := data.Objects(focus, c.path)

	if len(objects) < c.minCount {
		out = append(out, c.violation(focus,
			fmt.Sprintf("requires at least %d value(s), found %d", c.minCount, len(objects))))
	}
	if c.maxCount >= 0 && len(objects) > c.maxCount {
		out = append(out, c.violation(focus,
			fmt.Sprintf("allows at most %d value(s), found %d", c.maxCount, len(objects))))
	}
	if c.nodeKind != "" {
		for _, o := range objects {
			if !matchesNodeKind(o, c.nodeKind) {
				out = append(out, c.violation(focus,
					fmt.Sprintf("value %s does not match node kind %s", o.String(), c.nodeKind)))
			}
		}
	}

	return out
}

func (c propertyConstraint) violation(focus rdf.Term, detail string) Violation {
	msg := detail
	if c.message != "" {
		msg = c.message + ": " + detail
	}
	return Violation{Focus: focus, Path: c.path.String(), Message: msg}
}

func matchesNodeKind(t rdf.Term, kind string) bool {
	switch kind {
	case shIRI:
		_, ok := t.(rdf.IRI)
		return ok
	case shLiteral:
		_, ok := t.(rdf.Literal)
		return ok
	case shBlankNode:
		_, ok := t.(rdf.BlankNode)
		return ok
	case shBlankOrIRI:
		_, iri := t.(rdf.IRI)
		_, blank := t.(rdf.BlankNode)
		return iri || blank
	case shIRIOrLiteral:
		_, iri := t.(rdf.IRI)
		_, lit := t.(rdf.Literal)
		return iri || lit
	default:
		return true
	}
}
