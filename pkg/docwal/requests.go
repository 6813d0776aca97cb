package docwal

import "io"

// IssueCredentialRequest describes a single credential issuance.
type IssueCredentialRequest struct {
	// TemplateID selects the template the credential is issued against.
	TemplateID string
	// IndividualEmail is the recipient's email address.
	IndividualEmail string
	// CredentialData holds the template-defined field values.
	CredentialData map[string]interface{}
	// DocumentFile optionally attaches a document (PDF) to the credential.
	// When set, the request is sent as multipart form data.
	DocumentFile io.Reader
	// DocumentFileName is the filename reported for DocumentFile.
	DocumentFileName string
	// ExpiresAt optionally sets the credential expiry as an ISO 8601
	// timestamp. Omitted from the request when empty.
	ExpiresAt string
	// ClaimTokenExpiresHours sets the claim link lifetime. Zero means the
	// default of 720 hours (30 days).
	ClaimTokenExpiresHours int
}

// BatchCredential is one row of a batch issuance.
type BatchCredential struct {
	IndividualEmail string                 `json:"individual_email"`
	CredentialData  map[string]interface{} `json:"credential_data"`
}

// BatchIssueRequest describes a batch credential issuance.
type BatchIssueRequest struct {
	TemplateID  string
	Credentials []BatchCredential
	// SendNotifications controls whether claim emails are sent to the
	// recipients. Nil means true.
	SendNotifications *bool
}

// BatchUploadRequest describes a batch issuance from an uploaded ZIP archive
// containing a credentials CSV and a documents/ folder.
type BatchUploadRequest struct {
	TemplateID string
	// File is the ZIP archive. Required.
	File io.Reader
	// FileName is the filename reported for File.
	FileName string
	// SendNotifications controls whether claim emails are sent. Nil means true.
	SendNotifications *bool
}

// ListCredentialsOptions holds pagination options for listing credentials.
type ListCredentialsOptions struct {
	// Limit is the page size. Zero means the default of 100.
	Limit int
	// Offset is the pagination offset.
	Offset int
}

// ResendClaimOptions holds options for resending a claim link.
type ResendClaimOptions struct {
	// ClaimTokenExpiresHours sets the new claim link lifetime. Zero means
	// the default of 720 hours.
	ClaimTokenExpiresHours int
}

// CreateTemplateRequest describes a new credential template.
type CreateTemplateRequest struct {
	Name           string
	Description    string
	CredentialType string
	Schema         map[string]interface{}
	// Version is the template version. Empty means "1.0".
	Version string
}

// InviteRequest describes a team member invitation.
type InviteRequest struct {
	// Email must use the institution's domain.
	Email string
	// Role is one of "owner", "admin", or "issuer". Empty means "issuer".
	Role string
	// SendEmail controls whether an invitation email is sent. Nil means true.
	SendEmail *bool
	// AddDirectly adds the user without an invitation when the account
	// already exists.
	AddDirectly bool
}
