package rdf

// Graph is an in-memory set of triples with namespace-prefix bindings.
// Adds are idempotent: inserting a triple that is already present is a
// no-op, which makes forward-chaining expansion naturally convergent.
type Graph struct {
	triples  []*Triple
	seen     map[string]struct{}
	prefixes map[string]string
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		seen:     make(map[string]struct{}),
		prefixes: make(map[string]string),
	}
}

// Add inserts the statement (s, p, o) if not already present.
func (g *Graph) Add(s, p, o Term) {
	g.AddTriple(NewTriple(s, p, o))
}

// AddTriple inserts a triple if not already present.
func (g *Graph) AddTriple(t *Triple) {
	key := t.String()
	if _, ok := g.seen[key]; ok {
		return
	}
	g.seen[key] = struct{}{}
	g.triples = append(g.triples, t)
}

// AddGraph unions another graph's triples and prefix bindings into g.
// The other graph is not modified.
func (g *Graph) AddGraph(other *Graph) {
	if other == nil {
		return
	}
	for _, t := range other.triples {
		g.AddTriple(t)
	}
	for prefix, ns := range other.prefixes {
		g.Bind(prefix, ns)
	}
}

// Len returns the number of distinct triples.
func (g *Graph) Len() int { return len(g.triples) }

// Triples returns all triples in insertion order.
func (g *Graph) Triples() []*Triple { return g.triples }

// All returns every triple matching the pattern. A nil term is a wildcard.
func (g *Graph) All(s, p, o Term) []*Triple {
	var out []*Triple
	for _, t := range g.triples {
		if matches(t, s, p, o) {
			out = append(out, t)
		}
	}
	return out
}

// One returns the first triple matching the pattern, or nil.
func (g *Graph) One(s, p, o Term) *Triple {
	for _, t := range g.triples {
		if matches(t, s, p, o) {
			return t
		}
	}
	return nil
}

// Has reports whether any triple matches the pattern.
func (g *Graph) Has(s, p, o Term) bool { return g.One(s, p, o) != nil }

// Subjects returns the distinct subjects of triples matching (_, p, o).
func (g *Graph) Subjects(p, o Term) []Term {
	var out []Term
	dedup := make(map[string]struct{})
	for _, t := range g.triples {
		if matches(t, nil, p, o) {
			if _, ok := dedup[t.Subject.String()]; !ok {
				dedup[t.Subject.String()] = struct{}{}
				out = append(out, t.Subject)
			}
		}
	}
	return out
}

// Objects returns the objects of triples matching (s, p, _), in order.
func (g *Graph) Objects(s, p Term) []Term {
	var out []Term
	for _, t := range g.triples {
		if matches(t, s, p, nil) {
			out = append(out, t.Object)
		}
	}
	return out
}

// Object returns the first object of (s, p, _), or nil.
func (g *Graph) Object(s, p Term) Term {
	if t := g.One(s, p, nil); t != nil {
		return t.Object
	}
	return nil
}

// Predicates returns the distinct predicates of triples matching (s, _, _).
// A nil subject yields every predicate used in the graph.
func (g *Graph) Predicates(s Term) []Term {
	var out []Term
	dedup := make(map[string]struct{})
	for _, t := range g.triples {
		if matches(t, s, nil, nil) {
			if _, ok := dedup[t.Predicate.String()]; !ok {
				dedup[t.Predicate.String()] = struct{}{}
				out = append(out, t.Predicate)
			}
		}
	}
	return out
}

// Bind associates a prefix with a namespace IRI for serialization.
func (g *Graph) Bind(prefix, namespace string) {
	g.prefixes[prefix] = namespace
}

// Prefixes returns the prefix bindings. The returned map is shared; callers
// must not modify it.
func (g *Graph) Prefixes() map[string]string { return g.prefixes }

func matches(t *Triple, s, p, o Term) bool {
	if s != nil && !t.Subject.Equal(s) {
		return false
	}
	if p != nil && !t.Predicate.Equal(p) {
		return false
	}
	if o != nil && !t.Object.Equal(o) {
		return false
	}
	return true
}
