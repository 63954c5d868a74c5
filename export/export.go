// Package export serializes RDF graphs to the supported output formats and
// routes file extensions and media types to serializers.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/c360studio/semscore/rdf"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "ntriples"

	// FormatJSONLD produces JSON-LD (.json-ld) output.
	FormatJSONLD Format = "json-ld"

	// FormatRDFXML produces RDF/XML (.rdf) output.
	FormatRDFXML Format = "rdfxml"
)

// FormatInfo provides metadata about an export format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// MediaType is the standard media type.
	MediaType string

	// Extensions are the recognised file extensions (with dot). The first
	// entry is canonical.
	Extensions []string

	// Description describes the format.
	Description string
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatTurtle: {
		Name:        FormatTurtle,
		MediaType:   "text/turtle",
		Extensions:  []string{".ttl"},
		Description: "Turtle - Terse RDF Triple Language",
	},
	FormatNTriples: {
		Name:        FormatNTriples,
		MediaType:   "application/n-triples",
		Extensions:  []string{".nt"},
		Description: "N-Triples - Line-based RDF format",
	},
	FormatJSONLD: {
		Name:        FormatJSONLD,
		MediaType:   "application/ld+json",
		Extensions:  []string{".json-ld", ".jsonld"},
		Description: "JSON-LD - JSON for Linked Data",
	},
	FormatRDFXML: {
		Name:        FormatRDFXML,
		MediaType:   "application/rdf+xml",
		Extensions:  []string{".rdf", ".xml"},
		Description: "RDF/XML - XML syntax for RDF",
	},
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}

// FormatForExtension resolves a file extension (with or without dot) to a
// format.
func FormatForExtension(ext string) (Format, error) {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	ext = strings.ToLower(ext)
	for _, info := range FormatRegistry {
		for _, e := range info.Extensions {
			if e == ext {
				return info.Name, nil
			}
		}
	}
	return "", fmt.Errorf("unsupported output extension %q", ext)
}

// FormatForMediaType resolves a media type to a format, ignoring parameters.
func FormatForMediaType(mediaType string) (Format, error) {
	mt := strings.ToLower(strings.TrimSpace(strings.SplitN(mediaType, ";", 2)[0]))
	for _, info := range FormatRegistry {
		if info.MediaType == mt {
			return info.Name, nil
		}
	}
	return "", fmt.Errorf("unsupported media type %q", mediaType)
}

// FormatForPath resolves an output path's extension to a format.
func FormatForPath(path string) (Format, error) {
	base := filepath.Base(path)
	// Compound extensions like .json-ld are not visible to filepath.Ext.
	if idx := strings.Index(base, "."); idx >= 0 {
		return FormatForExtension(base[idx:])
	}
	return "", fmt.Errorf("output path %q has no extension", path)
}

// ValidatePath checks that an output path names a supported format and that
// its parent directory exists. Called before scoring starts so a bad
// destination fails fast instead of after the work is done.
func ValidatePath(path string) error {
	if _, err := FormatForPath(path); err != nil {
		return err
	}
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("output directory %q: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output directory %q is not a directory", dir)
	}
	return nil
}

// Marshal serializes a graph to the given format.
func Marshal(g *rdf.Graph, format Format) (string, error) {
	switch format {
	case FormatTurtle:
		return MarshalTurtle(g), nil
	case FormatNTriples:
		return MarshalNTriples(g), nil
	case FormatJSONLD:
		return MarshalJSONLD(g)
	case FormatRDFXML:
		return MarshalRDFXML(g), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// WriteFile serializes a graph in the format named by the path's extension
// and writes it to the path.
func WriteFile(g *rdf.Graph, path string) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}
	out, err := Marshal(g, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
