package export

import (
	"strings"

	"github.com/c360studio/semscore/rdf"
)

// MarshalNTriples serializes a graph as N-Triples, one statement per line
// in insertion order. Prefix bindings are not representable in N-Triples
// and are dropped.
func MarshalNTriples(g *rdf.Graph) string {
	var sb strings.Builder
	for _, t := range g.Triples() {
		sb.WriteString(t.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
