package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/suar-net/bestsellers-gw/internal/config"
	"github.com/suar-net/bestsellers-gw/internal/metrics"
	"github.com/suar-net/bestsellers-gw/internal/model"
)

const maxResponseBodySize = 10 * 1024 * 1024 // 10 MB

// Upstream resource paths, relative to the configured base URL.
const (
	ResourceListNames = "/lists/names.json"
	ResourceList      = "/lists.json"
	ResourceOverview  = "/lists/overview.json"
	ResourceHistory   = "/lists/best-sellers/history.json"
	ResourceReviews   = "/reviews.json"
)

const apiKeyParam = "api-key"

// UpstreamRequest is a fully built outbound call.
type UpstreamRequest struct {
	Resource string
	Params   url.Values
}

// paramSet is implemented by every parameter struct in the model package.
type paramSet interface {
	Validate() error
	Query() url.Values
}

// Gateway translates validated parameter sets into calls to the best-sellers
// API. It holds only immutable state and is safe for concurrent use.
type Gateway struct {
	baseURL    *url.URL
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// GatewayOption customizes a Gateway built by NewGateway.
type GatewayOption func(*Gateway)

// WithHTTPClient replaces the default client, including its timeout.
func WithHTTPClient(c *http.Client) GatewayOption {
	return func(g *Gateway) { g.httpClient = c }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) GatewayOption {
	return func(g *Gateway) { g.logger = l }
}

// WithMetrics records every operation in m.
func WithMetrics(m *metrics.Metrics) GatewayOption {
	return func(g *Gateway) { g.metrics = m }
}

// NewGateway validates the upstream settings and builds a Gateway whose
// client times out after cfg.Timeout.
func NewGateway(cfg config.UpstreamConfig, opts ...GatewayOption) (*Gateway, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("upstream api key is required")
	}
	baseURL, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid upstream base url: %w", err)
	}
	if baseURL.Scheme != "http" && baseURL.Scheme != "https" {
		return nil, fmt.Errorf("invalid upstream base url scheme: %q", baseURL.Scheme)
	}

	g := &Gateway{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Transport: &http.Transport{
				Proxy:                 http.ProxyFromEnvironment,
				MaxIdleConns:          100,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
			Timeout: cfg.Timeout,
		},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// ListNames returns the names of all best-seller lists.
func (g *Gateway) ListNames(ctx context.Context) (json.RawMessage, error) {
	return g.Execute(ctx, g.NewUpstreamRequest(ResourceListNames, nil))
}

// GetList returns one best-seller list.
func (g *Gateway) GetList(ctx context.Context, p model.ListParams) (json.RawMessage, error) {
	return g.call(ctx, ResourceList, p)
}

// GetOverview returns the top books of every list for a publication date.
func (g *Gateway) GetOverview(ctx context.Context, p model.OverviewParams) (json.RawMessage, error) {
	return g.call(ctx, ResourceOverview, p)
}

// GetHistory searches the best-seller history.
func (g *Gateway) GetHistory(ctx context.Context, p model.HistoryParams) (json.RawMessage, error) {
	return g.call(ctx, ResourceHistory, p)
}

// GetReviews searches book reviews by ISBN, title or author.
func (g *Gateway) GetReviews(ctx context.Context, p model.ReviewParams) (json.RawMessage, error) {
	return g.call(ctx, ResourceReviews, p)
}

// call validates p and, only if it is valid, performs the outbound call.
func (g *Gateway) call(ctx context.Context, resource string, p paramSet) (json.RawMessage, error) {
	if err := p.Validate(); err != nil {
		g.logger.Debug("rejected upstream request",
			zap.String("resource", resource),
			zap.Error(err))
		if g.metrics != nil {
			g.metrics.ObserveUpstream(resource, metrics.OutcomeRejected, 0)
		}
		return nil, err
	}
	return g.Execute(ctx, g.NewUpstreamRequest(resource, p.Query()))
}

// NewUpstreamRequest copies params and attaches the access key.
func (g *Gateway) NewUpstreamRequest(resource string, params url.Values) *UpstreamRequest {
	q := make(url.Values, len(params)+1)
	for key, values := range params {
		q[key] = append([]string(nil), values...)
	}
	q.Set(apiKeyParam, g.apiKey)
	return &UpstreamRequest{Resource: resource, Params: q}
}

// URL resolves the request against the gateway's base URL.
func (g *Gateway) URL(req *UpstreamRequest) *url.URL {
	u := *g.baseURL
	u.Path = g.baseURL.Path + req.Resource
	u.RawPath = ""
	u.RawQuery = req.Params.Encode()
	return &u
}

// Execute performs exactly one GET and returns the body if it is valid JSON.
// The upstream status code is not inspected: JSON error bodies are returned
// as they are.
func (g *Gateway) Execute(ctx context.Context, req *UpstreamRequest) (json.RawMessage, error) {
	startTime := time.Now()

	body, err := g.do(ctx, req)
	duration := time.Since(startTime)

	outcome := metrics.OutcomeOK
	if err != nil {
		outcome = metrics.OutcomeFailed
		g.logger.Warn("upstream call failed",
			zap.String("resource", req.Resource),
			zap.Duration("duration", duration),
			zap.Error(err))
	} else {
		g.logger.Debug("upstream call completed",
			zap.String("resource", req.Resource),
			zap.Duration("duration", duration),
			zap.Int("size", len(body)))
	}
	if g.metrics != nil {
		g.metrics.ObserveUpstream(req.Resource, outcome, duration)
	}
	return body, err
}

func (g *Gateway) do(ctx context.Context, req *UpstreamRequest) (json.RawMessage, error) {
	fail := func(err error) error {
		return &UpstreamError{Resource: req.Resource, Err: err}
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodGet, g.URL(req).String(), nil)
	if err != nil {
		return nil, fail(fmt.Errorf("failed to create http request: %w", err))
	}
	httpRequest.Header.Set("Accept", "application/json")

	httpResponse, err := g.httpClient.Do(httpRequest)
	if err != nil {
		// The transport error embeds the full URL, api key included.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, fail(fmt.Errorf("failed to execute request to upstream: %w", err))
	}
	defer httpResponse.Body.Close()

	limitedReader := &io.LimitedReader{R: httpResponse.Body, N: maxResponseBodySize + 1}
	bodyBytes, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, fail(fmt.Errorf("failed to read response body: %w", err))
	}
	if len(bodyBytes) > maxResponseBodySize {
		return nil, fail(errors.New("response body exceeds size limit"))
	}
	if !json.Valid(bodyBytes) {
		return nil, fail(fmt.Errorf("response body is not valid JSON (status %d)", httpResponse.StatusCode))
	}

	return json.RawMessage(bodyBytes), nil
}
