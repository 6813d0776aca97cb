package docwal

import (
	"context"
	"net/http"
	"time"
)

// Client provides access to the DocWal API resource clients.
//
// A Client is safe for concurrent use: its configuration is immutable after
// construction and each call builds its own request.
type Client interface {
	Credentials() CredentialsClient
	Templates() TemplatesClient
	APIKeys() APIKeysClient
	Team() TeamClient
}

// CredentialsClient issues and manages credentials.
type CredentialsClient interface {
	Issue(ctx context.Context, request *IssueCredentialRequest) (*IssueResult, error)
	BatchIssue(ctx context.Context, request *BatchIssueRequest) (*BatchResult, error)
	BatchUpload(ctx context.Context, request *BatchUploadRequest) (*BatchResult, error)
	List(ctx context.Context, opts *ListCredentialsOptions) ([]Credential, error)
	Get(ctx context.Context, docID string) (*Credential, error)
	Revoke(ctx context.Context, docID, reason string) (*RevokeResult, error)
	ResendClaimLink(ctx context.Context, docID string, opts *ResendClaimOptions) (*ResendClaimResult, error)
	Download(ctx context.Context, docID string) ([]byte, error)
}

// TemplatesClient manages credential templates.
type TemplatesClient interface {
	List(ctx context.Context) ([]Template, error)
	Get(ctx context.Context, templateID string) (*Template, error)
	Create(ctx context.Context, request *CreateTemplateRequest) (*Template, error)
	Update(ctx context.Context, templateID string, fields map[string]interface{}) (*Template, error)
	Delete(ctx context.Context, templateID string) (*Template, error)
}

// APIKeysClient manages the institution's API key.
type APIKeysClient interface {
	Generate(ctx context.Context) (*GeneratedAPIKey, error)
	Info(ctx context.Context) (*APIKeyInfo, error)
	Regenerate(ctx context.Context) (*GeneratedAPIKey, error)
	Revoke(ctx context.Context) (*RevokeAPIKeyResult, error)
}

// TeamClient manages the institution's team members and invitations.
type TeamClient interface {
	List(ctx context.Context) (*TeamRoster, error)
	CheckEmail(ctx context.Context, email string) (*CheckEmailResult, error)
	Invite(ctx context.Context, request *InviteRequest) (*InviteResult, error)
	UpdateRole(ctx context.Context, memberID, role string) (*TeamMember, error)
	Deactivate(ctx context.Context, memberID, reason string) (*MemberStatusResult, error)
	Reactivate(ctx context.Context, memberID string) (*MemberStatusResult, error)
	Remove(ctx context.Context, memberID string) (*MemberStatusResult, error)
}

// Logger is the structured logging interface used by the HTTP layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config holds client configuration. It is copied at construction time and
// never mutated afterwards; all resource clients share the same copy.
type Config struct {
	// APIKey is the institution API key, sent verbatim in the X-API-Key
	// header of every request. Required.
	APIKey string

	// BaseURL is the API base URL. Defaults to the production endpoint.
	// A trailing slash is trimmed and "https://" is prepended when no
	// scheme is present.
	BaseURL string

	// Timeout bounds each API call end to end, including connection setup
	// and reading the response body. Defaults to 30 seconds.
	Timeout time.Duration

	// Debug enables request/response logging through Logger.
	Debug bool

	// Logger receives debug output from the HTTP layer. Ignored when nil.
	Logger Logger

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// HTTPClient overrides the underlying HTTP client. When set, Timeout
	// is applied to it unless the client already has one.
	HTTPClient *http.Client
}
