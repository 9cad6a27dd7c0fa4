// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/whichkatha/internal/config"
	"github.com/tomtom215/whichkatha/internal/demo"
	"github.com/tomtom215/whichkatha/internal/models"
	"github.com/tomtom215/whichkatha/internal/store"
	"github.com/tomtom215/whichkatha/internal/upstream"
)

// stubBackend answers every call with fixed values.
type stubBackend struct {
	resp    *models.RecommendResponse
	err     error
	breaker string
}

func (s *stubBackend) Recommend(context.Context, models.RecommendRequest) (*models.RecommendResponse, error) {
	return s.resp, s.err
}

func (s *stubBackend) Trending(context.Context) ([]models.MovieRecord, error) {
	return nil, errors.New("no trending")
}

func (s *stubBackend) BaseURL() string { return "http://stub.test" }

func (s *stubBackend) BreakerState() string {
	if s.breaker == "" {
		return "closed"
	}
	return s.breaker
}

func testConfig() *config.Config {
	cfg := config.Defaults()
	cfg.Demo.Enabled = false
	cfg.Security.RateLimitDisabled = true
	cfg.Security.CORSOrigins = []string{"https://app.test"}
	cfg.UI.MaxProfiles = 100
	return cfg
}

// demoBackend starts the demo backend and returns a client for it.
func demoBackend(t *testing.T) *upstream.Client {
	t.Helper()
	srv := httptest.NewServer(demo.Handler())
	t.Cleanup(srv.Close)

	ucfg := config.Defaults().Upstream
	ucfg.BaseURL = srv.URL
	ucfg.Timeout = 5 * time.Second
	ucfg.RateLimit = 1000
	ucfg.RateBurst = 1000
	return upstream.New(ucfg)
}

type testEnv struct {
	srv    *httptest.Server
	client *http.Client
	store  *store.Store
}

func newEnv(t *testing.T, cfg *config.Config, backend Backend) *testEnv {
	t.Helper()
	lists := store.New(store.NewMemoryBackend(), cfg.UI.HistoryCap)
	h, err := NewHandler(cfg, lists, backend)
	require.NoError(t, err)

	srv := httptest.NewServer(NewRouter(h, nil).SetupChi())
	t.Cleanup(srv.Close)

	return &testEnv{srv: srv, client: newClient(t), store: lists}
}

// newClient returns a browser-like client: it keeps cookies and follows
// redirects.
func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar, Timeout: 10 * time.Second}
}

func (e *testEnv) do(t *testing.T, c *http.Client, method, path, contentType, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, e.srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := c.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (e *testEnv) get(t *testing.T, path string) *http.Response {
	t.Helper()
	return e.do(t, e.client, http.MethodGet, path, "", "")
}

func (e *testEnv) postForm(t *testing.T, path string, form url.Values) *http.Response {
	t.Helper()
	return e.do(t, e.client, http.MethodPost, path, "application/x-www-form-urlencoded", form.Encode())
}

func (e *testEnv) postJSON(t *testing.T, path, body string) *http.Response {
	t.Helper()
	return e.do(t, e.client, http.MethodPost, path, "application/json", body)
}

func page(t *testing.T, resp *http.Response) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)
	return doc
}

func texts(sel *goquery.Selection) []string {
	return sel.Map(func(_ int, s *goquery.Selection) string { return strings.TrimSpace(s.Text()) })
}

type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  *struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Details map[string]interface{} `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(body, &env), string(body))
	return env
}

// blockingBackend holds Recommend until gate is closed.
type blockingBackend struct {
	stubBackend
	gate    chan struct{}
	entered chan struct{}
}

func (b *blockingBackend) Recommend(ctx context.Context, _ models.RecommendRequest) (*models.RecommendResponse, error) {
	close(b.entered)
	select {
	case <-b.gate:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return &models.RecommendResponse{Results: []models.MovieRecord{{Title: "Dune"}}}, nil
}
