// Package datamuse is a client for the Datamuse word-lookup API
// (https://www.datamuse.com/api/). It covers the relations the app needs:
// rhymes, near rhymes, and synonyms.
package datamuse

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"wordmuse/internal/jsonutil"
)

// DefaultBaseURL is the public Datamuse endpoint.
const DefaultBaseURL = "https://api.datamuse.com"

// Relation selects which word relationship a lookup queries.
type Relation int

const (
	RelRhyme Relation = iota
	RelNearRhyme
	RelSynonym
)

// Param returns the Datamuse query parameter for the relation.
func (r Relation) Param() string {
	switch r {
	case RelRhyme:
		return "rel_rhy"
	case RelNearRhyme:
		return "rel_nry"
	case RelSynonym:
		return "ml"
	default:
		return "rel_rhy"
	}
}

func (r Relation) String() string {
	switch r {
	case RelRhyme:
		return "rhymes"
	case RelNearRhyme:
		return "near rhymes"
	case RelSynonym:
		return "synonyms"
	default:
		return "unknown"
	}
}

// Next returns the relation after r, cycling back to RelRhyme.
func (r Relation) Next() Relation {
	switch r {
	case RelRhyme:
		return RelNearRhyme
	case RelNearRhyme:
		return RelSynonym
	default:
		return RelRhyme
	}
}

// Word is one result from a lookup. Score is the API's relevance ranking;
// NumSyllables is populated for rhyme relations.
type Word struct {
	Word         string `json:"word"`
	Score        int    `json:"score"`
	NumSyllables int    `json:"numSyllables"`
}

// Client issues word lookups. The zero value is not usable; construct with New.
type Client struct {
	baseURL string
	httpc   *http.Client
	tracer  oteltrace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint (used by tests and for self-hosted
// mirrors).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpc = hc }
}

// WithTracer records a span per lookup on the given tracer.
func WithTracer(t oteltrace.Tracer) Option {
	return func(c *Client) {
		if t != nil {
			c.tracer = t
		}
	}
}

// New creates a client for the public Datamuse API. The default HTTP client
// uses a short timeout so a stalled lookup cannot wedge the UI.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpc:   &http.Client{Timeout: 10 * time.Second},
		tracer:  noop.NewTracerProvider().Tracer("wordmuse/datamuse"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup fetches words related to word by the given relation, in the API's
// relevance order.
func (c *Client) Lookup(ctx context.Context, rel Relation, word string) ([]Word, error) {
	ctx, span := c.tracer.Start(ctx, "datamuse.lookup",
		oteltrace.WithAttributes(
			attribute.String("datamuse.relation", rel.Param()),
			attribute.String("datamuse.word", word),
		))
	defer span.End()

	q := url.Values{}
	q.Set(rel.Param(), word)
	u := c.baseURL + "/words?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("datamuse: build request: %w", err)
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("datamuse: %s lookup for %q: %w", rel, word, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("datamuse: %s lookup for %q: unexpected status %d", rel, word, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("datamuse: read response: %w", err)
	}
	words, err := jsonutil.UnmarshalArray[Word](body, "datamuse: decode response")
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("datamuse.results", len(words)))
	return words, nil
}

// Rhymes fetches perfect rhymes for word.
func (c *Client) Rhymes(ctx context.Context, word string) ([]Word, error) {
	return c.Lookup(ctx, RelRhyme, word)
}

// NearRhymes fetches approximate rhymes for word.
func (c *Client) NearRhymes(ctx context.Context, word string) ([]Word, error) {
	return c.Lookup(ctx, RelNearRhyme, word)
}

// Synonyms fetches words with similar meaning to word.
func (c *Client) Synonyms(ctx context.Context, word string) ([]Word, error) {
	return c.Lookup(ctx, RelSynonym, word)
}
