package search

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// MinQueryLength is the shortest query (in runes, after trimming)
	// that triggers a request. Anything shorter is silently skipped so
	// a user still typing doesn't generate noisy round-trips.
	MinQueryLength = 2

	// MaxQueryLength caps the dispatched query; longer input is
	// truncated, not rejected.
	MaxQueryLength = 100

	// DefaultLimit is the number of candidates requested per search.
	DefaultLimit = 15

	defaultTimeout = 30 * time.Second
)

// ClientOptions configures a Client. Zero values fall back to the
// documented defaults.
type ClientOptions struct {
	Endpoint   string
	Limit      int
	Headers    map[string]string
	Parser     Parser
	HTTPClient *http.Client
	Logger     logrus.FieldLogger
}

// Client runs the search pipeline against a proxy endpoint: validate
// the query, issue the GET, hand the body to the parser. It holds no
// per-search state and is safe to share between searches.
type Client struct {
	endpoint   string
	limit      int
	headers    map[string]string
	parser     Parser
	httpClient *http.Client
	log        logrus.FieldLogger
}

// NewClient creates a search client from the given options.
func NewClient(opts ClientOptions) *Client {
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	if opts.Parser == nil {
		opts.Parser = DefaultParser()
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: defaultTimeout}
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	return &Client{
		endpoint:   opts.Endpoint,
		limit:      opts.Limit,
		headers:    opts.Headers,
		parser:     opts.Parser,
		httpClient: opts.HTTPClient,
		log:        opts.Logger,
	}
}

// NormalizeQuery trims the query and enforces the length rules. The
// second return is false when the query is too short to dispatch;
// over-long queries are truncated to MaxQueryLength runes.
func NormalizeQuery(query string) (string, bool) {
	query = strings.TrimSpace(query)
	runes := []rune(query)
	if len(runes) < MinQueryLength {
		return "", false
	}
	if len(runes) > MaxQueryLength {
		return string(runes[:MaxQueryLength]), true
	}
	return query, true
}

// Search runs one pipeline pass for the given query. A too-short query
// returns (nil, nil) without touching the network. A non-2xx status
// surfaces as *StatusError, a parser failure as *ParseError.
func (c *Client) Search(ctx context.Context, query string) ([]Candidate, error) {
	if c.endpoint == "" {
		return nil, ErrNoEndpoint
	}

	normalized, ok := NormalizeQuery(query)
	if !ok {
		return nil, nil
	}

	params := url.Values{}
	params.Set("q", normalized)
	params.Set("limit", strconv.Itoa(c.limit))

	reqURL := c.endpoint
	if strings.Contains(reqURL, "?") {
		reqURL += "&" + params.Encode()
	} else {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	for name, value := range c.headers {
		req.Header.Set(name, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WithError(err).WithField("query", normalized).Error("gif search request failed")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{Code: resp.StatusCode}
		c.log.WithField("status", resp.StatusCode).WithField("query", normalized).Error("gif search returned non-2xx status")
		return nil, statusErr
	}

	candidates, err := c.parser.Parse(body)
	if err != nil {
		c.log.WithError(err).Error("gif search response parse failed")
		return nil, &ParseError{Err: err}
	}
	return candidates, nil
}

// Limit reports the configured per-search candidate limit.
func (c *Client) Limit() int {
	return c.limit
}

// Endpoint reports the configured endpoint URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}
