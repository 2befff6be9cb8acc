// api/http_client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bucket-list-client/apperrors"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const DEFAULT_TIMEOUT = 10 * time.Second

// maximum number of body bytes echoed into a NetworkError message
const errorBodyLimit = 512

// HTTPClient struct to hold base URL and HTTP client configuration
type HTTPClient struct {
	BaseURL    string
	HTTPClient *http.Client

	limiter *rate.Limiter
	metrics *Metrics
	logger  *zap.Logger
}

type Option func(*HTTPClient)

// WithTimeout overrides the transport timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		if d > 0 {
			c.HTTPClient.Timeout = d
		}
	}
}

// WithRateLimit makes every request wait on a token bucket first.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *HTTPClient) {
		if perSecond > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
		}
	}
}

func WithMetrics(m *Metrics) Option {
	return func(c *HTTPClient) { c.metrics = m }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *HTTPClient) { c.logger = l }
}

// NewHTTPClient creates a new instance of HTTPClient with default settings
func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: DEFAULT_TIMEOUT, // Set a timeout for requests
		},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.Named("HTTPClient")
	return c
}

// Request makes one HTTP request to the API and decodes the response.
// Every failure is returned as *apperrors.NetworkError; StatusCode is 0 when no response arrived.
func (c *HTTPClient) Request(ctx context.Context, method, endpoint string, query url.Values, headers map[string]string, body any, response any) error {
	start := time.Now()
	status := 0
	defer func() {
		if c.metrics == nil {
			return
		}
		c.metrics.RequestsTotal.WithLabelValues(endpointLabel(endpoint), method, statusLabel(status)).Inc()
		c.metrics.RequestDuration.WithLabelValues(endpointLabel(endpoint), method).Observe(time.Since(start).Seconds())
	}()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return &apperrors.NetworkError{Message: "rate limiter: " + err.Error(), Err: err}
		}
	}

	var requestBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return &apperrors.NetworkError{Message: "encode request body: " + err.Error(), Err: err}
		}
		requestBody = bytes.NewReader(jsonBody)
	}

	u := c.BaseURL + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, requestBody)
	if err != nil {
		return &apperrors.NetworkError{Message: err.Error(), Err: err}
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	c.logger.Debug("request", zap.String("method", method), zap.String("endpoint", endpoint))

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		c.logger.Warn("request failed", zap.String("endpoint", endpoint), zap.Error(err))
		return &apperrors.NetworkError{Message: err.Error(), Err: err}
	}
	defer res.Body.Close()
	status = res.StatusCode

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return &apperrors.NetworkError{StatusCode: status, Message: "read response: " + err.Error(), Err: err}
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		c.logger.Warn("unexpected status", zap.String("endpoint", endpoint), zap.Int("status", status))
		return &apperrors.NetworkError{StatusCode: status, Message: errorMessage(res.Status, resBody)}
	}

	if response != nil {
		if err := json.Unmarshal(resBody, response); err != nil {
			return &apperrors.NetworkError{StatusCode: status, Message: fmt.Sprintf("decode response: %v", err), Err: err}
		}
	}

	return nil
}

func errorMessage(status string, body []byte) string {
	if len(body) == 0 {
		return status
	}
	if len(body) > errorBodyLimit {
		body = body[:errorBodyLimit]
	}
	return string(bytes.TrimSpace(body))
}

func statusLabel(status int) string {
	if status == 0 {
		return "error"
	}
	return strconv.Itoa(status)
}

// endpointLabel collapses path ids so the label set stays bounded.
func endpointLabel(endpoint string) string {
	if endpoint == "/places/search" {
		return endpoint
	}
	if strings.HasPrefix(endpoint, "/places/") {
		return "/places/{id}"
	}
	return endpoint
}
