// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

// Package upstream is the HTTP client for the recommendation backend
// (POST /recommend, GET /trending).
//
// Calls pass through an outbound rate limiter and a circuit breaker.
// Business errors ({"error": "..."} payloads) are returned as a
// RecommendResponse with Error set and do not count against the breaker;
// transport failures, 5xx answers and undecodable bodies return an error
// wrapping ErrUpstream or ErrDecode.
package upstream

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/hashicorp/golang-lru/v2/expirable"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/whichkatha/internal/config"
	"github.com/tomtom215/whichkatha/internal/logging"
	"github.com/tomtom215/whichkatha/internal/metrics"
	"github.com/tomtom215/whichkatha/internal/models"
)

var (
	// ErrUpstream covers transport failures, non-2xx answers without an
	// error payload, and calls rejected by the breaker or limiter.
	ErrUpstream = errors.New("recommendation backend unavailable")

	// ErrDecode is returned for a 2xx body that is not a recommendation.
	ErrDecode = errors.New("recommendation backend sent an unreadable response")
)

// errServerStatus marks a 5xx answer. The breaker counts it as a failure
// while the body is still handed to the decoder.
var errServerStatus = errors.New("server error status")

// NoResultsMessage is shown when the backend answers with an empty results list.
const NoResultsMessage = "No recommendations found."

const (
	endpointRecommend = "recommend"
	endpointTrending  = "trending"
	maxBodyBytes      = 1 << 20
	breakerName       = "recommend-backend"
)

// Client talks to one recommendation backend.
type Client struct {
	baseURL  string
	timeout  time.Duration
	http     *http.Client
	limiter  *rate.Limiter
	breaker  *gobreaker.CircuitBreaker[*rawResponse]
	trending *expirable.LRU[string, []models.MovieRecord]
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New builds a client from configuration.
func New(cfg config.UpstreamConfig, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		timeout:  cfg.Timeout,
		http:     &http.Client{},
		trending: expirable.NewLRU[string, []models.MovieRecord](max(cfg.TrendingCacheSize, 1), nil, cfg.TrendingCacheTTL),
	}
	if cfg.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), max(cfg.RateBurst, 1))
	}

	failures := cfg.BreakerFailures
	if failures == 0 {
		failures = 5
	}
	metrics.SetCircuitBreakerState(breakerName, 0)
	c.breaker = gobreaker.NewCircuitBreaker[*rawResponse](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).
				Msg("circuit breaker state change")
			metrics.SetCircuitBreakerState(name, stateValue(to))
			metrics.RecordCircuitBreakerTransition(name, from.String(), to.String())
		},
	})

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// BreakerState returns "closed", "half-open" or "open".
func (c *Client) BreakerState() string { return c.breaker.State().String() }

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

type rawResponse struct {
	status int
	body   []byte
}

// do performs one call through the limiter and breaker. 5xx answers and
// transport errors count as breaker failures. Every answer that carried a
// body, 5xx included, is returned for the caller to classify.
func (c *Client) do(ctx context.Context, endpoint, method, path string, body []byte) (*rawResponse, error) {
	start := time.Now()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			metrics.RecordUpstreamRequest(endpoint, "rejected", 0)
			return nil, fmt.Errorf("%w: rate limit: %w", ErrUpstream, err)
		}
	}

	resp, err := c.breaker.Execute(func() (*rawResponse, error) {
		return c.roundTrip(ctx, method, path, body)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		metrics.RecordUpstreamRequest(endpoint, "rejected", 0)
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	if errors.Is(err, errServerStatus) && resp != nil {
		return resp, nil
	}
	if err != nil {
		metrics.RecordUpstreamRequest(endpoint, "failure", time.Since(start))
		return nil, err
	}
	return resp, nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, body []byte) (*rawResponse, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var rdr io.Reader = http.NoBody
	if body != nil {
		rdr = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrUpstream, err)
	}
	raw := &rawResponse{status: resp.StatusCode, body: data}
	if resp.StatusCode >= http.StatusInternalServerError {
		return raw, fmt.Errorf("%w: %s %s returned %d", errServerStatus, method, path, resp.StatusCode)
	}
	return raw, nil
}

// Recommend posts the search form and normalizes the answer.
func (c *Client) Recommend(ctx context.Context, req models.RecommendRequest) (*models.RecommendResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode recommend request: %w", err)
	}

	start := time.Now()
	raw, err := c.do(ctx, endpointRecommend, http.MethodPost, "/recommend", payload)
	if err != nil {
		return nil, err
	}

	out, err := decodeRecommend(raw.status, raw.body)
	switch {
	case err != nil:
		metrics.RecordUpstreamRequest(endpointRecommend, "failure", time.Since(start))
		return nil, err
	case out.Error != "":
		metrics.RecordUpstreamRequest(endpointRecommend, "business_error", time.Since(start))
	default:
		metrics.RecordUpstreamRequest(endpointRecommend, "success", time.Since(start))
	}
	return out, nil
}

// Trending returns the trending row, served from cache while fresh.
// Empty answers are not cached.
func (c *Client) Trending(ctx context.Context) ([]models.MovieRecord, error) {
	if cached, ok := c.trending.Get(c.baseURL); ok {
		metrics.RecordTrendingCache(true)
		return cached, nil
	}
	metrics.RecordTrendingCache(false)

	start := time.Now()
	raw, err := c.do(ctx, endpointTrending, http.MethodGet, "/trending", nil)
	if err != nil {
		return nil, err
	}

	records, err := decodeTrending(raw.status, raw.body)
	if err != nil {
		metrics.RecordUpstreamRequest(endpointTrending, "failure", time.Since(start))
		return nil, err
	}
	metrics.RecordUpstreamRequest(endpointTrending, "success", time.Since(start))
	if len(records) > 0 {
		c.trending.Add(c.baseURL, records)
	}
	return records, nil
}
