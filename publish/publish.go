// Package publish sends computed score fragments to NATS for downstream
// ingestion into a knowledge graph.
package publish

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/c360studio/semscore/rdf"
)

// DefaultSubject is the publish subject for score messages.
const DefaultSubject = "semscore.scores"

// Triple is the wire form of one RDF statement. Terms are carried in
// N-Triples syntax so the consumer can reparse them without guessing at
// term kinds.
type Triple struct {
	Subject   string `json:"subject"`
	Predicate string `json:"predicate"`
	Object    string `json:"object"`
}

// ScoreMessage is the message format for score ingestion.
type ScoreMessage struct {
	Resource  string    `json:"resource"`
	Triples   []Triple  `json:"triples"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Publisher sends score fragments over a NATS connection.
type Publisher struct {
	conn    *nats.Conn
	subject string
}

// New builds a publisher on an established connection. An empty subject
// falls back to DefaultSubject.
func New(conn *nats.Conn, subject string) *Publisher {
	if subject == "" {
		subject = DefaultSubject
	}
	return &Publisher{conn: conn, subject: subject}
}

// Connect dials a NATS server and returns a publisher bound to it.
func Connect(url, subject string) (*Publisher, error) {
	conn, err := nats.Connect(url, nats.Name("semscore"))
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS at %s: %w", url, err)
	}
	return New(conn, subject), nil
}

// Close drains the underlying connection.
func (p *Publisher) Close() error {
	if p.conn == nil {
		return nil
	}
	return p.conn.Drain()
}

// Publish sends one resource's score fragment. A nil publisher or
// connection is a no-op so callers degrade gracefully when publishing is
// not configured.
func (p *Publisher) Publish(resource rdf.Term, fragment *rdf.Graph) error {
	if p == nil || p.conn == nil {
		return nil
	}

	msg := ScoreMessage{
		Resource:  resource.RawValue(),
		Triples:   make([]Triple, 0, fragment.Len()),
		UpdatedAt: time.Now().UTC(),
	}
	for _, t := range fragment.Triples() {
		msg.Triples = append(msg.Triples, Triple{
			Subject:   t.Subject.String(),
			Predicate: t.Predicate.String(),
			Object:    t.Object.String(),
		})
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal score message: %w", err)
	}

	if err := p.conn.Publish(p.subject, data); err != nil {
		return fmt.Errorf("publish score message: %w", err)
	}

	return nil
}
