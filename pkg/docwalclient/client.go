// Package docwalclient provides the main entry point for creating DocWal API clients.
package docwalclient

import (
	"strings"

	"github.com/docwal/docwal-go/internal/client"
	"github.com/docwal/docwal-go/internal/constants"
	"github.com/docwal/docwal-go/pkg/docwal"
)

// New creates a new DocWal API client from the given configuration.
//
// The config is copied and normalized before use: the base URL loses any
// trailing slash and gains "https://" when no scheme is present, and zero
// values fall back to the defaults (production endpoint, 30 second timeout).
// The original config is not retained, so later mutations by the caller have
// no effect on the client.
func New(config *docwal.Config) (docwal.Client, error) {
	if config == nil {
		return nil, docwal.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, docwal.ErrAPIKeyRequired
	}

	normalized := *config

	baseURL := normalized.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	normalized.BaseURL = baseURL

	if normalized.Timeout == 0 {
		normalized.Timeout = constants.DefaultHTTPTimeout
	}

	return client.New(&normalized), nil
}

// NewWithAPIKey creates a client for the production endpoint with default
// settings. It wraps New with a minimal configuration.
func NewWithAPIKey(apiKey string) (docwal.Client, error) {
	return New(&docwal.Config{APIKey: apiKey})
}

// NewWithEndpoint creates a client for a non-production endpoint, such as a
// staging environment or a local mock server.
func NewWithEndpoint(apiKey, baseURL string) (docwal.Client, error) {
	return New(&docwal.Config{APIKey: apiKey, BaseURL: baseURL})
}
