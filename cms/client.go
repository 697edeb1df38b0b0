// Package cms is a client for the Notion CMS content API, which serves
// Notion-database-backed collections as JSON.
//
// A Client is bound to one namespace and one collection (API path) and
// offers list, fetch-by-slug, index and schema reads plus a parallel batch
// fetch. Every request is a single GET: there is no retry, no caching and
// no throttling. All failures are returned as *ClientError.
package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/olgasafonova/notion-cms-mcp-server/internal/base"
	apierrors "github.com/olgasafonova/notion-cms-mcp-server/internal/errors"
	"github.com/olgasafonova/notion-cms-mcp-server/metrics"
	"github.com/olgasafonova/notion-cms-mcp-server/tracing"
)

const (
	// DefaultBaseURL is the production API origin
	DefaultBaseURL = "https://api.notion-cms.dev"

	// APIPrefix is prepended to every resource path
	APIPrefix = "/api/v1"
)

// Config identifies the collection a Client reads from.
type Config struct {
	// Namespace is the per-account path segment
	Namespace string

	// APIPath is the collection name within the namespace (e.g. "blog")
	APIPath string

	// BaseURL overrides DefaultBaseURL
	BaseURL string

	// APIKey is sent as the api_key query parameter when set
	APIKey string
}

// Client is a Notion CMS API client. It is immutable after construction
// and safe for concurrent use.
type Client struct {
	*base.Client
	cfg  Config
	root string
}

// ClientOption configures the Client (re-export base.ClientOption)
type ClientOption = base.ClientOption

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(c *http.Client) ClientOption {
	return base.WithHTTPClient(c)
}

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) ClientOption {
	return base.WithLogger(l)
}

// WithUserAgent sets the User-Agent header
func WithUserAgent(ua string) ClientOption {
	return base.WithUserAgent(ua)
}

// WithTimeout sets the request timeout of the default HTTP client
func WithTimeout(d time.Duration) ClientOption {
	return base.WithTimeout(d)
}

// NewClient creates a client for the collection described by cfg.
// Surrounding slashes in Namespace, APIPath and BaseURL are ignored.
func NewClient(cfg Config, opts ...ClientOption) (*Client, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	cfg.Namespace = strings.Trim(strings.TrimSpace(cfg.Namespace), "/")
	cfg.APIPath = strings.Trim(strings.TrimSpace(cfg.APIPath), "/")
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, apierrors.NewValidationError("base_url", cfg.BaseURL, "must be an absolute URL")
	}

	return &Client{
		Client: base.NewClient(opts...),
		cfg:    cfg,
		root:   cfg.BaseURL + APIPrefix + "/" + cfg.Namespace + "/" + cfg.APIPath,
	}, nil
}

// Config returns the normalized configuration.
func (c *Client) Config() Config {
	return c.cfg
}

// BuildURL returns the request URL for subPath under the collection root.
// The api_key is added first, then params; a later value for a key replaces
// an earlier one.
func (c *Client) BuildURL(subPath string, params url.Values) string {
	u := c.root
	if p := strings.Trim(subPath, "/"); p != "" {
		u += "/" + p
	}

	q := url.Values{}
	if c.cfg.APIKey != "" {
		q.Set("api_key", c.cfg.APIKey)
	}
	for key, values := range params {
		if len(values) > 0 {
			q.Set(key, values[len(values)-1])
		}
	}
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

// List returns every item in the collection, in server order.
func (c *Client) List(ctx context.Context) ([]Item, error) {
	return c.ListWithParams(ctx, nil)
}

// ListWithParams is List with extra query parameters passed to the server.
func (c *Client) ListWithParams(ctx context.Context, params url.Values) ([]Item, error) {
	return fetch[[]Item](ctx, c, "list", "", params)
}

// GetBySlug returns the item with the given slug.
func (c *Client) GetBySlug(ctx context.Context, slug string) (Item, error) {
	if err := ValidateSlug(slug); err != nil {
		return nil, err
	}

	return fetch[Item](ctx, c, "get_by_slug", "/"+url.PathEscape(slug), nil)
}

// Index returns the collection index in the requested format (array when
// empty). The result mirrors what the server sent; see Index.Format.
func (c *Client) Index(ctx context.Context, format IndexFormat) (*Index, error) {
	f, err := ParseIndexFormat(string(format))
	if err != nil {
		return nil, err
	}

	raw, err := fetch[rawIndex](ctx, c, "index", "/index", url.Values{"format": {string(f)}})
	if err != nil {
		return nil, err
	}
	idx := Index(raw)
	return &idx, nil
}

// GetSchema returns the collection's field schema.
func (c *Client) GetSchema(ctx context.Context) (Schema, error) {
	return fetch[Schema](ctx, c, "schema", "/schema", nil)
}

// fetch performs one GET and decodes a 2xx body into T.
func fetch[T any](ctx context.Context, c *Client, op, subPath string, params url.Values) (T, error) {
	var zero T

	ctx, span := tracing.StartContentSpan(ctx, c.cfg.Namespace, c.cfg.APIPath, op)
	defer span.End()

	start := time.Now()
	resp, err := c.Get(ctx, c.BuildURL(subPath, params))
	if err != nil {
		return zero, c.fail(span, op, start, apierrors.Wrap(err))
	}

	tracing.AddResponseAttributes(span, resp.StatusCode, len(resp.Body))
	metrics.RecordContentSize(op, len(resp.Body))

	if !resp.OK() {
		return zero, c.fail(span, op, start, apierrors.FromResponse(resp.StatusCode, resp.Body))
	}

	var out T
	if err := decodeJSON(resp.Body, &out); err != nil {
		return zero, c.fail(span, op, start, apierrors.Wrapf(err, "decode %s response", op))
	}

	tracing.Finish(span, nil)
	metrics.RecordAPICall(op, time.Since(start).Seconds(), true, 0)
	return out, nil
}

func (c *Client) fail(span trace.Span, op string, start time.Time, err *ClientError) error {
	tracing.Finish(span, err)
	metrics.RecordAPICall(op, time.Since(start).Seconds(), false, err.Status)
	return err
}

var errNullPayload = errors.New("payload is null")

// decodeJSON decodes with UseNumber so numeric fields pass through exactly.
// A JSON null never matches a content shape and is rejected.
func decodeJSON(data []byte, v any) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return errNullPayload
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

// rawIndex decodes whichever index shape the server returned.
type rawIndex Index

func (r *rawIndex) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return errors.New("empty index payload")
	}

	switch trimmed[0] {
	case '[':
		var entries []IndexEntry
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return err
		}
		if entries == nil {
			entries = []IndexEntry{}
		}
		*r = rawIndex{Format: IndexFormatArray, Entries: entries}
	case '{':
		var bySlug map[string]IndexValue
		if err := json.Unmarshal(trimmed, &bySlug); err != nil {
			return err
		}
		*r = rawIndex{Format: IndexFormatObject, BySlug: bySlug}
	default:
		return errors.New("index payload is neither an array nor an object")
	}
	return nil
}
