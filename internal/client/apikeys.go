package client

import (
	"context"
	"encoding/json"
	"fmt"

	internalhttp "github.com/docwal/docwal-go/internal/http"
	"github.com/docwal/docwal-go/pkg/docwal"
)

// APIKeysClient implements docwal.APIKeysClient. All operations act on the
// institution's single API key and require the Owner or Admin role.
type APIKeysClient struct {
	httpClient *internalhttp.Client
}

// NewAPIKeysClient creates a new API keys client.
func NewAPIKeysClient(httpClient *internalhttp.Client) *APIKeysClient {
	return &APIKeysClient{
		httpClient: httpClient,
	}
}

// Generate implements docwal.APIKeysClient.Generate. The full key is
// returned exactly once.
func (c *APIKeysClient) Generate(ctx context.Context) (*docwal.GeneratedAPIKey, error) {
	resp, err := c.httpClient.Post(ctx, "/institutions/api-keys/generate/", nil)
	if err != nil {
		return nil, fmt.Errorf("generating API key: %w", err)
	}

	var key docwal.GeneratedAPIKey

	err = json.Unmarshal(resp.Body, &key)
	if err != nil {
		return nil, fmt.Errorf("parsing generated API key: %w", err)
	}

	return &key, nil
}

// Info implements docwal.APIKeysClient.Info. The key value is masked.
func (c *APIKeysClient) Info(ctx context.Context) (*docwal.APIKeyInfo, error) {
	resp, err := c.httpClient.Get(ctx, "/institutions/api-keys/info/", nil)
	if err != nil {
		return nil, fmt.Errorf("getting API key info: %w", err)
	}

	var info docwal.APIKeyInfo

	err = json.Unmarshal(resp.Body, &info)
	if err != nil {
		return nil, fmt.Errorf("parsing API key info: %w", err)
	}

	return &info, nil
}

// Regenerate implements docwal.APIKeysClient.Regenerate. The old key is
// revoked in the same operation.
func (c *APIKeysClient) Regenerate(ctx context.Context) (*docwal.GeneratedAPIKey, error) {
	resp, err := c.httpClient.Post(ctx, "/institutions/api-keys/regenerate/", nil)
	if err != nil {
		return nil, fmt.Errorf("regenerating API key: %w", err)
	}

	var key docwal.GeneratedAPIKey

	err = json.Unmarshal(resp.Body, &key)
	if err != nil {
		return nil, fmt.Errorf("parsing regenerated API key: %w", err)
	}

	return &key, nil
}

// Revoke implements docwal.APIKeysClient.Revoke.
func (c *APIKeysClient) Revoke(ctx context.Context) (*docwal.RevokeAPIKeyResult, error) {
	resp, err := c.httpClient.Post(ctx, "/institutions/api-keys/revoke/", nil)
	if err != nil {
		return nil, fmt.Errorf("revoking API key: %w", err)
	}

	var result docwal.RevokeAPIKeyResult

	if len(resp.Body) > 0 {
		err = json.Unmarshal(resp.Body, &result)
		if err != nil {
			return nil, fmt.Errorf("parsing revoke result: %w", err)
		}
	}

	return &result, nil
}
