package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	internalhttp "github.com/docwal/docwal-go/internal/http"
	"github.com/docwal/docwal-go/pkg/docwal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialsClient_Issue(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/credentials/issue/", r.URL.Path)
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}

		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "t1", body["template_id"])
		assert.Equal(t, "a@b.com", body["individual_email"])
		assert.Equal(t, map[string]interface{}{"name": "A"}, body["credential_data"])
		assert.EqualValues(t, 720, body["claim_token_expires_hours"])
		assert.NotContains(t, body, "expires_at")

		result := docwal.IssueResult{
			DocID:        "d1",
			DocumentHash: "h1",
			Status:       "issued",
			ClaimToken:   "tok1",
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(result)
	}))
	defer server.Close()

	credentials := NewCredentialsClient(internalhttp.NewClient(server.URL, "test-key"))

	result, err := credentials.Issue(context.Background(), &docwal.IssueCredentialRequest{
		TemplateID:      "t1",
		IndividualEmail: "a@b.com",
		CredentialData:  map[string]interface{}{"name": "A"},
	})
	require.NoError(t, err)
	assert.Equal(t, "d1", result.DocID)
	assert.Equal(t, "h1", result.DocumentHash)
	assert.Equal(t, "issued", result.Status)
	assert.Equal(t, "tok1", result.ClaimToken)
}

func TestCredentialsClient_Issue_WithOptions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}

		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "2025-06-30T00:00:00Z", body["expires_at"])
		assert.EqualValues(t, 48, body["claim_token_expires_hours"])

		_ = json.NewEncoder(w).Encode(docwal.IssueResult{DocID: "d2", Status: "issued"})
	}))
	defer server.Close()

	credentials := NewCredentialsClient(internalhttp.NewClient(server.URL, "test-key"))

	result, err := credentials.Issue(context.Background(), &docwal.IssueCredentialRequest{
		TemplateID:             "t1",
		IndividualEmail:        "a@b.com",
		CredentialData:         map[string]interface{}{"name": "A"},
		ExpiresAt:              "2025-06-30T00:00:00Z",
		ClaimTokenExpiresHours: 48,
	})
	require.NoError(t, err)
	assert.Equal(t, "d2", result.DocID)
}

func TestCredentialsClient_Issue_WithDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))

		err := r.ParseMultipartForm(1 << 20)
		require.NoError(t, err)

		assert.Equal(t, "t1", r.FormValue("template_id"))
		assert.Equal(t, "a@b.com", r.FormValue("individual_email"))

		file, header, err := r.FormFile("document_file")
		require.NoError(t, err)

		defer func() {
			_ = file.Close()
		}()

		assert.Equal(t, "diploma.pdf", header.Filename)

		_ = json.NewEncoder(w).Encode(docwal.IssueResult{DocID: "d3", Status: "issued"})
	}))
	defer server.Close()

	credentials := NewCredentialsClient(internalhttp.NewClient(server.URL, "test-key"))

	result, err := credentials.Issue(context.Background(), &docwal.IssueCredentialRequest{
		TemplateID:       "t1",
		IndividualEmail:  "a@b.com",
		CredentialData:   map[string]interface{}{"name": "A"},
		DocumentFile:     strings.NewReader("%PDF-1.4"),
		DocumentFileName: "diploma.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, "d3", result.DocID)
}

func TestCredentialsClient_BatchIssue(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/credentials/batch/", r.URL.Path)

		var body map[string]interface{}

		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "t1", body["template_id"])
		assert.Equal(t, true, body["send_notifications"])

		credentials, ok := body["credentials"].([]interface{})
		require.True(t, ok)
		assert.Len(t, credentials, 2)

		result := docwal.BatchResult{
			TotalRows:    2,
			SuccessCount: 2,
			Results: []docwal.BatchRowResult{
				{Row: 1, DocID: "d1", Status: "issued"},
				{Row: 2, DocID: "d2", Status: "issued"},
			},
		}
		_ = json.NewEncoder(w).Encode(result)
	}))
	defer server.Close()

	credentials := NewCredentialsClient(internalhttp.NewClient(server.URL, "test-key"))

	result, err := credentials.BatchIssue(context.Background(), &docwal.BatchIssueRequest{
		TemplateID: "t1",
		Credentials: []docwal.BatchCredential{
			{IndividualEmail: "a@b.com", CredentialData: map[string]interface{}{"name": "A"}},
			{IndividualEmail: "c@b.com", CredentialData: map[string]interface{}{"name": "C"}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalRows)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 0, result.FailureCount)
	assert.Len(t, result.Results, 2)
}

func TestCredentialsClient_BatchIssue_NoNotifications(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}

		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, false, body["send_notifications"])

		_ = json.NewEncoder(w).Encode(docwal.BatchResult{})
	}))
	defer server.Close()

	credentials := NewCredentialsClient(internalhttp.NewClient(server.URL, "test-key"))

	sendNotifications := false
	_, err := credentials.BatchIssue(context.Background(), &docwal.BatchIssueRequest{
		TemplateID:        "t1",
		SendNotifications: &sendNotifications,
	})
	require.NoError(t, err)
}

func TestCredentialsClient_BatchUpload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/credentials/batch-upload/", r.URL.Path)
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))

		err := r.ParseMultipartForm(1 << 20)
		require.NoError(t, err)

		assert.Equal(t, "t1", r.FormValue("template_id"))
		assert.Equal(t, "true", r.FormValue("send_notifications"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)

		defer func() {
			_ = file.Close()
		}()

		assert.Equal(t, "batch.zip", header.Filename)

		_ = json.NewEncoder(w).Encode(docwal.BatchResult{TotalRows: 10, SuccessCount: 9, FailureCount: 1})
	}))
	defer server.Close()

	credentials := NewCredentialsClient(internalhttp.NewClient(server.URL, "test-key"))

	result, err := credentials.BatchUpload(context.Background(), &docwal.BatchUploadRequest{
		TemplateID: "t1",
		File:       strings.NewReader("PK\x03\x04"),
		FileName:   "batch.zip",
	})
	require.NoError(t, err)
	assert.Equal(t, 10, result.TotalRows)
	assert.Equal(t, 1, result.FailureCount)
}

func TestCredentialsClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/credentials/", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "20", r.URL.Query().Get("offset"))

		credentials := []docwal.Credential{
			{DocID: "d1", Status: "issued"},
			{DocID: "d2", Status: "claimed"},
		}
		_ = json.NewEncoder(w).Encode(credentials)
	}))
	defer server.Close()

	credentials := NewCredentialsClient(internalhttp.NewClient(server.URL, "test-key"))

	list, err := credentials.List(context.Background(), &docwal.ListCredentialsOptions{Limit: 10, Offset: 20})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "d1", list[0].DocID)
	assert.Equal(t, "claimed", list[1].Status)
}

func TestCredentialsClient_List_Defaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		assert.Equal(t, "0", r.URL.Query().Get("offset"))

		_ = json.NewEncoder(w).Encode([]docwal.Credential{})
	}))
	defer server.Close()

	credentials := NewCredentialsClient(internalhttp.NewClient(server.URL, "test-key"))

	list, err := credentials.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCredentialsClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/credentials/d1/", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		credential := docwal.Credential{
			DocID:           "d1",
			IndividualEmail: "a@b.com",
			Status:          "issued",
			CredentialData:  map[string]interface{}{"degree": "BSc"},
		}
		_ = json.NewEncoder(w).Encode(credential)
	}))
	defer server.Close()

	credentials := NewCredentialsClient(internalhttp.NewClient(server.URL, "test-key"))

	credential, err := credentials.Get(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, "d1", credential.DocID)
	assert.Equal(t, "a@b.com", credential.IndividualEmail)
	assert.Equal(t, "BSc", credential.CredentialData["degree"])
}

func TestCredentialsClient_Revoke(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/credentials/d1/revoke/", r.URL.Path)

		var body map[string]string

		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "issued in error", body["reason"])

		_ = json.NewEncoder(w).Encode(docwal.RevokeResult{Message: "credential revoked", DocID: "d1"})
	}))
	defer server.Close()

	credentials := NewCredentialsClient(internalhttp.NewClient(server.URL, "test-key"))

	result, err := credentials.Revoke(context.Background(), "d1", "issued in error")
	require.NoError(t, err)
	assert.Equal(t, "credential revoked", result.Message)
	assert.Equal(t, "d1", result.DocID)
}

func TestCredentialsClient_Revoke_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/credentials/missing/revoke/", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	credentials := NewCredentialsClient(internalhttp.NewClient(server.URL, "test-key"))

	result, err := credentials.Revoke(context.Background(), "missing", "cleanup")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, docwal.IsNotFound(err))

	apiErr := &docwal.Error{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Resource not found", apiErr.Message)
	assert.Equal(t, 404, apiErr.StatusCode)
}

func TestCredentialsClient_ResendClaimLink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/credentials/d1/resend-claim/", r.URL.Path)

		var body map[string]interface{}

		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.EqualValues(t, 720, body["claim_token_expires_hours"])

		result := docwal.ResendClaimResult{
			Message:        "claim link sent",
			ClaimToken:     "tok2",
			RecipientEmail: "a@b.com",
		}
		_ = json.NewEncoder(w).Encode(result)
	}))
	defer server.Close()

	credentials := NewCredentialsClient(internalhttp.NewClient(server.URL, "test-key"))

	result, err := credentials.ResendClaimLink(context.Background(), "d1", nil)
	require.NoError(t, err)
	assert.Equal(t, "claim link sent", result.Message)
	assert.Equal(t, "tok2", result.ClaimToken)
	assert.Equal(t, "a@b.com", result.RecipientEmail)
}

func TestCredentialsClient_Download(t *testing.T) {
	pdf := []byte("%PDF-1.4 fake content")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/credentials/d1/download/", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(pdf)
	}))
	defer server.Close()

	credentials := NewCredentialsClient(internalhttp.NewClient(server.URL, "test-key"))

	content, err := credentials.Download(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, pdf, content)
}
