package rdf

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
)

// Decoder parses one RDF serialization into a graph.
type Decoder interface {
	// Decode parses serialized RDF from r.
	Decode(r io.Reader) (*Graph, error)

	// CanDecode returns true if this decoder handles the given media type.
	CanDecode(mediaType string) bool

	// MediaType returns the primary media type for this decoder.
	MediaType() string
}

// Registry routes media types and file extensions to decoders.
type Registry struct {
	mu       sync.RWMutex
	decoders map[string]Decoder // keyed by primary media type
}

// DefaultRegistry is the global decoder registry with default decoders.
var DefaultRegistry = NewRegistry()

// NewRegistry creates a decoder registry with the default format decoders.
func NewRegistry() *Registry {
	r := &Registry{decoders: make(map[string]Decoder)}

	r.Register(turtleDecoder{})
	r.Register(ntriplesDecoder{})
	r.Register(rdfxmlDecoder{})
	r.Register(jsonldDecoder{})

	return r
}

// Register adds a decoder to the registry.
func (r *Registry) Register(d Decoder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decoders[d.MediaType()] = d
}

// ByMediaType returns a decoder for the media type, or nil.
func (r *Registry) ByMediaType(mediaType string) Decoder {
	mediaType = normalizeMediaType(mediaType)

	r.mu.RLock()
	defer r.mu.RUnlock()

	if d, ok := r.decoders[mediaType]; ok {
		return d
	}
	for _, d := range r.decoders {
		if d.CanDecode(mediaType) {
			return d
		}
	}
	return nil
}

// ByExtension returns a decoder based on a file name's extension, or nil.
func (r *Registry) ByExtension(filename string) Decoder {
	return r.ByMediaType(MediaTypeForExtension(filepath.Ext(filename)))
}

// Decode parses serialized RDF in the given media type.
func (r *Registry) Decode(reader io.Reader, mediaType string) (*Graph, error) {
	d := r.ByMediaType(mediaType)
	if d == nil {
		return nil, fmt.Errorf("no decoder for media type %q", mediaType)
	}
	return d.Decode(reader)
}

// MediaTypeForExtension maps a file extension to its RDF media type.
// Unknown extensions return "".
func MediaTypeForExtension(ext string) string {
	switch strings.ToLower(ext) {
	case ".ttl":
		return "text/turtle"
	case ".nt":
		return "application/n-triples"
	case ".rdf", ".xml":
		return "application/rdf+xml"
	case ".json-ld", ".jsonld":
		return "application/ld+json"
	default:
		return ""
	}
}

func normalizeMediaType(mediaType string) string {
	// Strip parameters such as "; charset=utf-8".
	if i := strings.Index(mediaType, ";"); i >= 0 {
		mediaType = mediaType[:i]
	}
	return strings.ToLower(strings.TrimSpace(mediaType))
}

type turtleDecoder struct{}

func (turtleDecoder) Decode(r io.Reader) (*Graph, error) { return DecodeTurtle(r) }
func (turtleDecoder) MediaType() string                  { return "text/turtle" }
func (turtleDecoder) CanDecode(mediaType string) bool {
	return mediaType == "text/turtle" || mediaType == "text/n3" || mediaType == "application/x-turtle"
}

// N-Triples is a syntactic subset of Turtle, so the same parser serves.
type ntriplesDecoder struct{}

func (ntriplesDecoder) Decode(r io.Reader) (*Graph, error) { return DecodeTurtle(r) }
func (ntriplesDecoder) MediaType() string                  { return "application/n-triples" }
func (ntriplesDecoder) CanDecode(mediaType string) bool {
	return mediaType == "application/n-triples" || mediaType == "text/nt" || mediaType == "text/plain"
}

type rdfxmlDecoder struct{}

func (rdfxmlDecoder) Decode(r io.Reader) (*Graph, error) { return DecodeRDFXML(r) }
func (rdfxmlDecoder) MediaType() string                  { return "application/rdf+xml" }
func (rdfxmlDecoder) CanDecode(mediaType string) bool {
	return mediaType == "application/rdf+xml" || mediaType == "application/xml" || mediaType == "text/xml"
}

type jsonldDecoder struct{}

func (jsonldDecoder) Decode(r io.Reader) (*Graph, error) { return DecodeJSONLD(r) }
func (jsonldDecoder) MediaType() string                  { return "application/ld+json" }
func (jsonldDecoder) CanDecode(mediaType string) bool {
	return mediaType == "application/ld+json" || mediaType == "application/json"
}
