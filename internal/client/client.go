// Package client implements the docwal.Client interface and the resource
// facades over the shared HTTP transport.
package client

import (
	"github.com/docwal/docwal-go/internal/http"
	"github.com/docwal/docwal-go/pkg/docwal"
)

// Client implements the docwal.Client interface.
type Client struct {
	httpClient *http.Client

	credentials docwal.CredentialsClient
	templates   docwal.TemplatesClient
	apiKeys     docwal.APIKeysClient
	team        docwal.TeamClient
}

// New creates the aggregate client from an already-normalized config.
func New(config *docwal.Config) *Client {
	opts := []http.Option{
		http.WithTimeout(config.Timeout),
		http.WithDebug(config.Debug),
	}

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPClient != nil {
		opts = append(opts, http.WithHTTPClient(config.HTTPClient))
	}

	httpClient := http.NewClient(config.BaseURL, config.APIKey, opts...)

	return &Client{
		httpClient:  httpClient,
		credentials: NewCredentialsClient(httpClient),
		templates:   NewTemplatesClient(httpClient),
		apiKeys:     NewAPIKeysClient(httpClient),
		team:        NewTeamClient(httpClient),
	}
}

// Credentials implements docwal.Client.Credentials.
func (c *Client) Credentials() docwal.CredentialsClient {
	return c.credentials
}

// Templates implements docwal.Client.Templates.
func (c *Client) Templates() docwal.TemplatesClient {
	return c.templates
}

// APIKeys implements docwal.Client.APIKeys.
func (c *Client) APIKeys() docwal.APIKeysClient {
	return c.apiKeys
}

// Team implements docwal.Client.Team.
func (c *Client) Team() docwal.TeamClient {
	return c.team
}
