// Package fetch provides the reachability capability the discoverability
// checks depend on. Scoring code receives it as an interface so tests can
// substitute deterministic results for live HTTP.
package fetch

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Fetcher reports whether a URI dereferences successfully. Implementations
// must never return an error: any transport failure is "not reachable".
type Fetcher interface {
	Fetch(ctx context.Context, uri string) bool
}

// HTTPFetcher dereferences URIs over HTTP requesting RDF media types.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
	accept    string
	logger    *slog.Logger
}

// Option configures an HTTPFetcher.
type Option func(*HTTPFetcher)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *HTTPFetcher) { f.client.Timeout = d }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *HTTPFetcher) { f.userAgent = ua }
}

// WithAccept overrides the Accept header media types.
func WithAccept(mediaTypes []string) Option {
	return func(f *HTTPFetcher) { f.accept = strings.Join(mediaTypes, ", ") }
}

// WithLogger sets the logger for soft-failure diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(f *HTTPFetcher) { f.logger = logger }
}

// RDFMediaTypes is the default Accept list for reachability checks.
var RDFMediaTypes = []string{
	"text/turtle",
	"text/n3",
	"application/ld+json",
	"application/n-triples",
	"application/n-quads",
	"application/rdf+xml",
}

// NewHTTPFetcher creates a fetcher with a 30s default timeout.
func NewHTTPFetcher(opts ...Option) *HTTPFetcher {
	f := &HTTPFetcher{
		client: &http.Client{Timeout: 30 * time.Second},
		accept: strings.Join(RDFMediaTypes, ", "),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch performs a GET and reports whether the response status is 2xx.
// Every failure mode scores as unreachable; nothing propagates.
func (f *HTTPFetcher) Fetch(ctx context.Context, uri string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		f.logger.Debug("reachability check skipped", slog.String("uri", uri), slog.String("error", err.Error()))
		return false
	}
	req.Header.Set("Accept", f.accept)
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Debug("reachability check failed", slog.String("uri", uri), slog.String("error", err.Error()))
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// Static is a deterministic Fetcher backed by a fixed reachability map.
// URIs absent from the map are unreachable.
type Static map[string]bool

// Fetch reports the mapped reachability for uri.
func (s Static) Fetch(_ context.Context, uri string) bool { return s[uri] }

// None is a Fetcher for which nothing is reachable.
var None Fetcher = Static{}
