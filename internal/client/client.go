package client

import (
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/photo-album/internal/constants"
	"github.com/fivetwenty-io/photo-album/internal/http"
	"github.com/fivetwenty-io/photo-album/pkg/album"
)

// Client implements the album.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     album.Logger
}

var _ album.Client = (*Client)(nil)

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *album.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.Timeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.Timeout))
	}

	retryBase := constants.DefaultRetryBase
	retryJitter := constants.DefaultRetryJitter

	if config.RetryBase > 0 {
		retryBase = config.RetryBase
	}

	if config.RetryJitter > 0 {
		retryJitter = config.RetryJitter
	}

	retryMax := max(config.RetryMax, 0)

	httpOpts = append(httpOpts, http.WithRetryConfig(retryMax, retryBase, retryJitter))

	return httpOpts
}

// New creates a new album API client.
func New(config *album.Config) (*Client, error) {
	if config == nil {
		return nil, album.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, album.ErrBaseURLRequired
	}

	parsed, err := url.Parse(config.BaseURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, fmt.Errorf("%w: %q", album.ErrInvalidBaseURL, config.BaseURL)
	}

	httpClient := http.NewClient(config.BaseURL, createHTTPClientOptions(config)...)

	return NewWithHTTPClient(httpClient, config.Logger), nil
}

// NewWithHTTPClient creates a client around an existing transport.
func NewWithHTTPClient(httpClient *http.Client, logger album.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    httpClient.BaseURL(),
		logger:     logger,
	}
}

// BaseURL returns the photo collection endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) debug(msg string, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.Debug(msg, fields)
	}
}
