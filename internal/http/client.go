// Package http implements the retrying JSON transport used by the album client.
package http

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fivetwenty-io/photo-album/internal/constants"
	"github.com/fivetwenty-io/photo-album/pkg/album"
	"github.com/hashicorp/go-retryablehttp"
)

// maxErrorBodyLength bounds the response body kept in a StatusError.
const maxErrorBodyLength = 512

// Logger is the logging surface used by the transport.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request describes a single API call relative to the client's base URL.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client sends requests to the album API, retrying per the configured policy.
type Client struct {
	baseURL     string
	httpClient  *retryablehttp.Client
	logger      Logger
	debug       bool
	userAgent   string
	retryBase   time.Duration
	retryJitter time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout bounds a single attempt.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithRetryConfig sets the maximum retry count and the backoff shape. The
// wait before retry n is base * 2^n plus a random duration below jitter.
func WithRetryConfig(maxRetries int, base, jitter time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = maxRetries
		c.retryBase = base
		c.retryJitter = jitter
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient = httpClient
	}
}

// NewClient creates a new HTTP client for baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.Logger = nil
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.CheckRetry = RetryPolicy
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:     baseURL,
		httpClient:  retryClient,
		userAgent:   "photo-album",
		retryBase:   constants.DefaultRetryBase,
		retryJitter: constants.DefaultRetryJitter,
	}

	for _, opt := range opts {
		opt(client)
	}

	retryClient.Backoff = Backoff(client.retryBase, client.retryJitter)
	retryClient.RequestLogHook = client.logRequest
	retryClient.ResponseLogHook = client.logResponse

	return client
}

// RetryPolicy retries recoverable transport errors and every non-success
// status. Context cancellation stops the retries.
func RetryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	if err != nil {
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}

	return !isSuccess(resp.StatusCode), nil
}

// Backoff returns a retryablehttp backoff giving base * 2^n plus jitter for
// retry n, where the first retry is n = 1.
func Backoff(base, jitter time.Duration) retryablehttp.Backoff {
	return func(_, _ time.Duration, attemptNum int, _ *http.Response) time.Duration {
		wait := base
		for range attemptNum + 1 {
			wait *= constants.ExponentialBackoffBase
		}

		if jitter > 0 {
			wait += time.Duration(rand.Int64N(int64(jitter)))
		}

		return wait
	}
}

// Do sends the request. A non-success final status returns both the response
// and a *album.StatusError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	target, err := c.buildURL(req)
	if err != nil {
		return nil, err
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if !isSuccess(resp.StatusCode) {
		return resp, &album.StatusError{
			StatusCode: resp.StatusCode,
			Body:       truncate(string(body), maxErrorBodyLength),
		}
	}

	return resp, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// BaseURL returns the URL requests are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) buildURL(req *Request) (string, error) {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parsing base URL: %w", err)
	}

	if req.Path != "" {
		base = base.JoinPath(req.Path)
	}

	if len(req.Query) > 0 {
		query := base.Query()
		for key, values := range req.Query {
			query[key] = values
		}

		base.RawQuery = query.Encode()
	}

	return base.String(), nil
}

func (c *Client) logRequest(_ retryablehttp.Logger, req *http.Request, attempt int) {
	if c.logger == nil {
		return
	}

	if attempt > 0 {
		c.logger.Warn("Retrying HTTP request", map[string]interface{}{
			"method":  req.Method,
			"url":     req.URL.String(),
			"attempt": attempt,
		})
	}

	if c.debug {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method":  req.Method,
			"url":     req.URL.String(),
			"attempt": attempt,
		})
	}
}

func (c *Client) logResponse(_ retryablehttp.Logger, resp *http.Response) {
	if c.logger == nil || !c.debug {
		return
	}

	c.logger.Debug("HTTP Response", map[string]interface{}{
		"status_code":    resp.StatusCode,
		"content_length": resp.ContentLength,
	})
}

func isSuccess(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices
}

func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if len(value) <= limit {
		return value
	}

	return value[:limit] + "..."
}
