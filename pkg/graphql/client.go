package graphql

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/dmitrymomot/memo/core/logger"
)

// maxErrorBody caps how much of a failed response ends up in HTTPError.
const maxErrorBody = 1 << 10

// Request is a single GraphQL operation.
type Request struct {
	Name      string         // operation name, sent as the URL query for log readability
	Query     string
	Variables map[string]any
}

// Doer executes GraphQL requests. *Client implements it.
type Doer interface {
	Do(ctx context.Context, req Request, out any) error
}

// ResponseStore caches raw "data" payloads of successful responses.
type ResponseStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
}

// Client sends GraphQL requests over HTTP.
type Client struct {
	endpoint string
	token    string
	http     *http.Client
	limiter  *rate.Limiter
	store    ResponseStore
	ttl      time.Duration
	logger   *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client. cfg.Timeout is ignored then.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithResponseStore enables response caching for cfg.CacheTTL.
func WithResponseStore(store ResponseStore) Option {
	return func(c *Client) { c.store = store }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a Client for cfg.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, ErrEmptyEndpoint
	}
	u, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, errors.Join(ErrInvalidEndpoint, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEndpoint, cfg.Endpoint)
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	c := &Client{
		endpoint: cfg.Endpoint,
		token:    cfg.Token,
		http:     &http.Client{Timeout: cfg.Timeout},
		limiter:  rate.NewLimiter(limit, burst),
		ttl:      cfg.CacheTTL,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Do sends req and decodes the response "data" object into out.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	body, err := json.Marshal(struct {
		Query     string         `json:"query"`
		Variables map[string]any `json:"variables,omitempty"`
	}{req.Query, req.Variables})
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}

	var cacheKey string
	if c.store != nil {
		sum := sha256.Sum256(body)
		cacheKey = hex.EncodeToString(sum[:])
		data, ok, err := c.store.Get(ctx, cacheKey)
		if err != nil {
			c.logger.WarnContext(ctx, "graphql: response store read failed", logger.Operation(req.Name), logger.Error(err))
		} else if ok {
			c.logger.DebugContext(ctx, "graphql: served from store", logger.Operation(req.Name))
			return decode(data, out)
		}
	}

	data, err := c.send(ctx, req, body)
	if err != nil {
		return err
	}

	if c.store != nil {
		if err := c.store.Set(ctx, cacheKey, data, c.ttl); err != nil {
			c.logger.WarnContext(ctx, "graphql: response store write failed", logger.Operation(req.Name), logger.Error(err))
		}
	}
	return decode(data, out)
}

func (c *Client) send(ctx context.Context, req Request, body []byte) (json.RawMessage, error) {
	startWait := time.Now()
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	if d := time.Since(startWait); d > 200*time.Millisecond {
		c.logger.WarnContext(ctx, "graphql: request delayed by client rate limit", logger.Operation(req.Name), logger.Duration(d))
	}

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	if req.Name != "" {
		u.RawQuery = url.QueryEscape(req.Name)
	}

	hreq, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	requestID := uuid.NewString()
	hreq.Header.Set("Content-Type", "application/json")
	hreq.Header.Set("Accept", "application/json")
	hreq.Header.Set("X-Request-ID", requestID)
	if c.token != "" {
		hreq.Header.Set("Authorization", "token "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(hreq)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}

	c.logger.DebugContext(ctx, "graphql: response",
		logger.Operation(req.Name),
		logger.RequestID(requestID),
		logger.StatusCode(resp.StatusCode),
		logger.Elapsed(start),
	)

	if resp.StatusCode != http.StatusOK {
		msg := raw
		if len(msg) > maxErrorBody {
			msg = msg[:maxErrorBody]
		}
		return nil, &HTTPError{Operation: operation(req), Code: resp.StatusCode, Message: string(msg)}
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []ResponseError `json:"errors"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, errors.Join(ErrDecodeResponse, err)
	}
	if len(envelope.Errors) > 0 {
		return nil, &QueryError{Operation: operation(req), Errors: envelope.Errors}
	}
	if len(envelope.Data) == 0 || bytes.Equal(envelope.Data, []byte("null")) {
		return nil, fmt.Errorf("%w: %s", ErrEmptyData, operation(req))
	}
	return envelope.Data, nil
}

func decode(data []byte, out any) error {
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Join(ErrDecodeResponse, err)
	}
	return nil
}

func operation(req Request) string {
	if req.Name != "" {
		return req.Name
	}
	return "anonymous"
}
