//go:build integration

package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/docwal/docwal-go/pkg/docwal"
	"github.com/docwal/docwal-go/pkg/docwalclient"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient builds a client from the environment, loading ../../.env if
// present. Tests are skipped entirely when DOCWAL_API_KEY is not set.
func newTestClient(t *testing.T) docwal.Client {
	t.Helper()

	_ = godotenv.Load("../../.env")

	apiKey := os.Getenv("DOCWAL_API_KEY")
	if apiKey == "" {
		t.Skip("DOCWAL_API_KEY not set, skipping integration tests")
	}

	config := &docwal.Config{
		APIKey:  apiKey,
		BaseURL: os.Getenv("DOCWAL_BASE_URL"),
		Timeout: 60 * time.Second,
	}

	client, err := docwalclient.New(config)
	require.NoError(t, err)

	return client
}

func TestAPIKeyInfo(t *testing.T) {
	client := newTestClient(t)

	info, err := client.APIKeys().Info(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, info.APIKey)
	assert.True(t, info.IsActive)
}

func TestListTemplates(t *testing.T) {
	client := newTestClient(t)

	templates, err := client.Templates().List(context.Background())
	require.NoError(t, err)

	for _, tpl := range templates {
		assert.NotEmpty(t, tpl.ID)
		assert.NotEmpty(t, tpl.Name)
	}
}

func TestListCredentials(t *testing.T) {
	client := newTestClient(t)

	credentials, err := client.Credentials().List(context.Background(), &docwal.ListCredentialsOptions{
		Limit: 5,
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, len(credentials), 5)

	for _, cred := range credentials {
		assert.NotEmpty(t, cred.DocID)
	}
}

func TestGetCredential_NotFound(t *testing.T) {
	client := newTestClient(t)

	_, err := client.Credentials().Get(context.Background(), "does-not-exist")
	require.Error(t, err)
	assert.True(t, docwal.IsNotFound(err))
}

func TestTeamRoster(t *testing.T) {
	client := newTestClient(t)

	roster, err := client.Team().List(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, roster.Members, "an institution always has at least an owner")

	ownerSeen := false

	for _, member := range roster.Members {
		assert.NotEmpty(t, member.Email)

		if member.Role == "owner" {
			ownerSeen = true
		}
	}

	assert.True(t, ownerSeen)
}

func TestIssueAndRevokeWorkflow(t *testing.T) {
	if os.Getenv("DOCWAL_TEST_TEMPLATE_ID") == "" {
		t.Skip("DOCWAL_TEST_TEMPLATE_ID not set, skipping issuance workflow")
	}

	client := newTestClient(t)
	ctx := context.Background()

	result, err := client.Credentials().Issue(ctx, &docwal.IssueCredentialRequest{
		TemplateID:      os.Getenv("DOCWAL_TEST_TEMPLATE_ID"),
		IndividualEmail: os.Getenv("DOCWAL_TEST_EMAIL"),
		CredentialData:  map[string]interface{}{"note": "integration test"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.DocID)

	cred, err := client.Credentials().Get(ctx, result.DocID)
	require.NoError(t, err)
	assert.Equal(t, result.DocID, cred.DocID)

	revoked, err := client.Credentials().Revoke(ctx, result.DocID, "integration test cleanup")
	require.NoError(t, err)
	assert.NotNil(t, revoked)
}
