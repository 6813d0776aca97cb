package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/docwal/docwal-go/internal/constants"
	internalhttp "github.com/docwal/docwal-go/internal/http"
	"github.com/docwal/docwal-go/pkg/docwal"
)

// CredentialsClient implements docwal.CredentialsClient.
type CredentialsClient struct {
	httpClient *internalhttp.Client
}

// NewCredentialsClient creates a new credentials client.
func NewCredentialsClient(httpClient *internalhttp.Client) *CredentialsClient {
	return &CredentialsClient{
		httpClient: httpClient,
	}
}

// Issue implements docwal.CredentialsClient.Issue. When a document file is
// attached the request is sent as multipart form data; otherwise as JSON.
func (c *CredentialsClient) Issue(ctx context.Context, request *docwal.IssueCredentialRequest) (*docwal.IssueResult, error) {
	claimExpiry := request.ClaimTokenExpiresHours
	if claimExpiry == 0 {
		claimExpiry = constants.DefaultClaimTokenExpiresHours
	}

	body := map[string]interface{}{
		"template_id":               request.TemplateID,
		"individual_email":          request.IndividualEmail,
		"credential_data":           request.CredentialData,
		"claim_token_expires_hours": claimExpiry,
	}

	if request.ExpiresAt != "" {
		body["expires_at"] = request.ExpiresAt
	}

	req := &internalhttp.Request{
		Method: http.MethodPost,
		Path:   "/credentials/issue/",
		Body:   body,
	}

	if request.DocumentFile != nil {
		req.Files = map[string]internalhttp.File{
			"document_file": {Name: request.DocumentFileName, Reader: request.DocumentFile},
		}
	}

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("issuing credential: %w", err)
	}

	var result docwal.IssueResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing issue result: %w", err)
	}

	return &result, nil
}

// BatchIssue implements docwal.CredentialsClient.BatchIssue.
func (c *CredentialsClient) BatchIssue(ctx context.Context, request *docwal.BatchIssueRequest) (*docwal.BatchResult, error) {
	sendNotifications := true
	if request.SendNotifications != nil {
		sendNotifications = *request.SendNotifications
	}

	body := map[string]interface{}{
		"template_id":        request.TemplateID,
		"credentials":        request.Credentials,
		"send_notifications": sendNotifications,
	}

	resp, err := c.httpClient.Post(ctx, "/credentials/batch/", body)
	if err != nil {
		return nil, fmt.Errorf("batch issuing credentials: %w", err)
	}

	var result docwal.BatchResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing batch result: %w", err)
	}

	return &result, nil
}

// BatchUpload implements docwal.CredentialsClient.BatchUpload. The ZIP
// archive goes under the "file" field; the remaining fields ride along as
// multipart form values.
func (c *CredentialsClient) BatchUpload(ctx context.Context, request *docwal.BatchUploadRequest) (*docwal.BatchResult, error) {
	sendNotifications := true
	if request.SendNotifications != nil {
		sendNotifications = *request.SendNotifications
	}

	req := &internalhttp.Request{
		Method: http.MethodPost,
		Path:   "/credentials/batch-upload/",
		Body: map[string]interface{}{
			"template_id":        request.TemplateID,
			"send_notifications": strconv.FormatBool(sendNotifications),
		},
		Files: map[string]internalhttp.File{
			"file": {Name: request.FileName, Reader: request.File},
		},
	}

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("batch uploading credentials: %w", err)
	}

	var result docwal.BatchResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing batch result: %w", err)
	}

	return &result, nil
}

// List implements docwal.CredentialsClient.List.
func (c *CredentialsClient) List(ctx context.Context, opts *docwal.ListCredentialsOptions) ([]docwal.Credential, error) {
	limit := constants.DefaultListLimit
	offset := 0

	if opts != nil {
		if opts.Limit > 0 {
			limit = opts.Limit
		}

		offset = opts.Offset
	}

	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	resp, err := c.httpClient.Get(ctx, "/credentials/", query)
	if err != nil {
		return nil, fmt.Errorf("listing credentials: %w", err)
	}

	var credentials []docwal.Credential

	err = json.Unmarshal(resp.Body, &credentials)
	if err != nil {
		return nil, fmt.Errorf("parsing credentials list: %w", err)
	}

	return credentials, nil
}

// Get implements docwal.CredentialsClient.Get.
func (c *CredentialsClient) Get(ctx context.Context, docID string) (*docwal.Credential, error) {
	resp, err := c.httpClient.Get(ctx, "/credentials/"+docID+"/", nil)
	if err != nil {
		return nil, fmt.Errorf("getting credential: %w", err)
	}

	var credential docwal.Credential

	err = json.Unmarshal(resp.Body, &credential)
	if err != nil {
		return nil, fmt.Errorf("parsing credential: %w", err)
	}

	return &credential, nil
}

// Revoke implements docwal.CredentialsClient.Revoke.
func (c *CredentialsClient) Revoke(ctx context.Context, docID, reason string) (*docwal.RevokeResult, error) {
	body := map[string]interface{}{"reason": reason}

	resp, err := c.httpClient.Post(ctx, "/credentials/"+docID+"/revoke/", body)
	if err != nil {
		return nil, fmt.Errorf("revoking credential: %w", err)
	}

	var result docwal.RevokeResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing revoke result: %w", err)
	}

	return &result, nil
}

// ResendClaimLink implements docwal.CredentialsClient.ResendClaimLink.
func (c *CredentialsClient) ResendClaimLink(ctx context.Context, docID string, opts *docwal.ResendClaimOptions) (*docwal.ResendClaimResult, error) {
	claimExpiry := constants.DefaultClaimTokenExpiresHours
	if opts != nil && opts.ClaimTokenExpiresHours > 0 {
		claimExpiry = opts.ClaimTokenExpiresHours
	}

	body := map[string]interface{}{"claim_token_expires_hours": claimExpiry}

	resp, err := c.httpClient.Post(ctx, "/credentials/"+docID+"/resend-claim/", body)
	if err != nil {
		return nil, fmt.Errorf("resending claim link: %w", err)
	}

	var result docwal.ResendClaimResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing resend claim result: %w", err)
	}

	return &result, nil
}

// Download implements docwal.CredentialsClient.Download. The endpoint
// returns the credential document (PDF) as raw bytes, not JSON.
func (c *CredentialsClient) Download(ctx context.Context, docID string) ([]byte, error) {
	resp, err := c.httpClient.Get(ctx, "/credentials/"+docID+"/download/", nil)
	if err != nil {
		return nil, fmt.Errorf("downloading credential: %w", err)
	}

	return resp.Body, nil
}
