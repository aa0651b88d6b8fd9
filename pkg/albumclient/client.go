// Package albumclient provides the main entry point for creating photo album API clients
package albumclient

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/photo-album/internal/client"
	"github.com/fivetwenty-io/photo-album/internal/constants"
	"github.com/fivetwenty-io/photo-album/pkg/album"
)

// New creates a new album client. The base URL is trimmed and defaults to
// https when no scheme is given. config is not modified.
func New(config *album.Config) (album.Client, error) {
	if config == nil {
		return nil, album.ErrConfigRequired
	}

	normalized := *config
	normalized.BaseURL = normalizeBaseURL(config.BaseURL)

	if normalized.BaseURL == "" {
		return nil, album.ErrBaseURLRequired
	}

	albumClient, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create album client: %w", err)
	}

	return albumClient, nil
}

// NewWithEndpoint creates a client for endpoint with the default retry policy.
func NewWithEndpoint(endpoint string) (album.Client, error) {
	return New(&album.Config{
		BaseURL:  endpoint,
		RetryMax: constants.DefaultRetryMax,
	})
}

// NewWithLogger creates a client for endpoint that logs through logger.
func NewWithLogger(endpoint string, logger album.Logger, debug bool) (album.Client, error) {
	return New(&album.Config{
		BaseURL:  endpoint,
		RetryMax: constants.DefaultRetryMax,
		Logger:   logger,
		Debug:    debug,
	})
}

// NewDefault creates a client for the public placeholder photo API.
func NewDefault() (album.Client, error) {
	return NewWithEndpoint(constants.DefaultBaseURL)
}

func normalizeBaseURL(endpoint string) string {
	endpoint = strings.TrimSuffix(strings.TrimSpace(endpoint), "/")
	if endpoint == "" {
		return ""
	}

	if !strings.Contains(endpoint, "://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}
