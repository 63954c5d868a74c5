package rdf

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// LoadFile parses a local RDF file. The file extension selects the format.
func LoadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	d := DefaultRegistry.ByExtension(path)
	if d == nil {
		return nil, fmt.Errorf("unrecognized RDF file extension on %q", path)
	}
	g, err := d.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return g, nil
}

// LoadURL fetches RDF over HTTP and parses it according to the response's
// declared content type. A nil client uses http.DefaultClient.
func LoadURL(ctx context.Context, client *http.Client, url string) (*Graph, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", url, err)
	}
	req.Header.Set("Accept", strings.Join(AcceptMediaTypes, ", "))

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}

	g, err := DefaultRegistry.Decode(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}
	return g, nil
}

// Load parses RDF from a local path or an http(s) URL.
func Load(ctx context.Context, client *http.Client, pathOrURL string) (*Graph, error) {
	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		return LoadURL(ctx, client, pathOrURL)
	}
	return LoadFile(pathOrURL)
}

// AcceptMediaTypes are the RDF media types requested when dereferencing
// resources and catalogues.
var AcceptMediaTypes = []string{
	"text/turtle",
	"text/n3",
	"application/ld+json",
	"application/n-triples",
	"application/n-quads",
	"application/rdf+xml",
}
