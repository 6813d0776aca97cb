package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	internalhttp "github.com/docwal/docwal-go/internal/http"
	"github.com/docwal/docwal-go/pkg/docwal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIKeysClient_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/institutions/api-keys/generate/", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		body, _ := io.ReadAll(r.Body)
		assert.Empty(t, body)

		key := docwal.GeneratedAPIKey{
			APIKey:  "docwal_live_new",
			Warning: "store this key now, it will not be shown again",
		}
		_ = json.NewEncoder(w).Encode(key)
	}))
	defer server.Close()

	apiKeys := NewAPIKeysClient(internalhttp.NewClient(server.URL, "test-key"))

	key, err := apiKeys.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "docwal_live_new", key.APIKey)
	assert.NotEmpty(t, key.Warning)
}

func TestAPIKeysClient_Info(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/institutions/api-keys/info/", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		info := docwal.APIKeyInfo{
			APIKey:   "docwal_live_****abcd",
			IsActive: true,
		}
		_ = json.NewEncoder(w).Encode(info)
	}))
	defer server.Close()

	apiKeys := NewAPIKeysClient(internalhttp.NewClient(server.URL, "test-key"))

	info, err := apiKeys.Info(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "docwal_live_****abcd", info.APIKey)
	assert.True(t, info.IsActive)
}

func TestAPIKeysClient_Regenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/institutions/api-keys/regenerate/", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		_ = json.NewEncoder(w).Encode(docwal.GeneratedAPIKey{APIKey: "docwal_live_rotated"})
	}))
	defer server.Close()

	apiKeys := NewAPIKeysClient(internalhttp.NewClient(server.URL, "test-key"))

	key, err := apiKeys.Regenerate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "docwal_live_rotated", key.APIKey)
}

func TestAPIKeysClient_Revoke(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/institutions/api-keys/revoke/", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		_ = json.NewEncoder(w).Encode(docwal.RevokeAPIKeyResult{Message: "API key revoked"})
	}))
	defer server.Close()

	apiKeys := NewAPIKeysClient(internalhttp.NewClient(server.URL, "test-key"))

	result, err := apiKeys.Revoke(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "API key revoked", result.Message)
}

func TestAPIKeysClient_Generate_PermissionDenied(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"only owners and admins can manage API keys"}`))
	}))
	defer server.Close()

	apiKeys := NewAPIKeysClient(internalhttp.NewClient(server.URL, "test-key"))

	key, err := apiKeys.Generate(context.Background())
	require.Error(t, err)
	assert.Nil(t, key)
	assert.True(t, docwal.IsPermission(err))

	apiErr := &docwal.Error{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "only owners and admins can manage API keys", apiErr.Message)
}
