package docwal

// Credential represents an issued credential as returned by the API.
// CredentialData carries the template-defined fields and is left untyped
// because its shape is owned by the template, not by this SDK.
type Credential struct {
	DocID            string                 `json:"doc_id"                      yaml:"doc_id"`
	TemplateID       string                 `json:"template_id,omitempty"       yaml:"template_id,omitempty"`
	TemplateName     string                 `json:"template_name,omitempty"     yaml:"template_name,omitempty"`
	IndividualEmail  string                 `json:"individual_email,omitempty"  yaml:"individual_email,omitempty"`
	CredentialData   map[string]interface{} `json:"credential_data,omitempty"   yaml:"credential_data,omitempty"`
	DocumentHash     string                 `json:"document_hash,omitempty"     yaml:"document_hash,omitempty"`
	Status           string                 `json:"status,omitempty"            yaml:"status,omitempty"`
	IssuedAt         string                 `json:"issued_at,omitempty"         yaml:"issued_at,omitempty"`
	ExpiresAt        string                 `json:"expires_at,omitempty"        yaml:"expires_at,omitempty"`
	ClaimedAt        string                 `json:"claimed_at,omitempty"        yaml:"claimed_at,omitempty"`
	RevokedAt        string                 `json:"revoked_at,omitempty"        yaml:"revoked_at,omitempty"`
	RevocationReason string                 `json:"revocation_reason,omitempty" yaml:"revocation_reason,omitempty"`
}

// IssueResult is the response to a single credential issuance.
type IssueResult struct {
	DocID        string `json:"doc_id"                yaml:"doc_id"`
	DocumentHash string `json:"document_hash"         yaml:"document_hash"`
	Status       string `json:"status"                yaml:"status"`
	ClaimToken   string `json:"claim_token,omitempty" yaml:"claim_token,omitempty"`
}

// BatchRowResult reports the outcome of one row in a batch issuance.
type BatchRowResult struct {
	Row             int    `json:"row"                        yaml:"row"`
	IndividualEmail string `json:"individual_email,omitempty" yaml:"individual_email,omitempty"`
	DocID           string `json:"doc_id,omitempty"           yaml:"doc_id,omitempty"`
	Status          string `json:"status"                     yaml:"status"`
	Error           string `json:"error,omitempty"            yaml:"error,omitempty"`
}

// BatchResult is the response to a batch issuance or batch upload.
type BatchResult struct {
	TotalRows    int              `json:"total_rows"        yaml:"total_rows"`
	SuccessCount int              `json:"success_count"     yaml:"success_count"`
	FailureCount int              `json:"failure_count"     yaml:"failure_count"`
	Results      []BatchRowResult `json:"results,omitempty" yaml:"results,omitempty"`
}

// RevokeResult is the response to a credential revocation.
type RevokeResult struct {
	Message   string `json:"message,omitempty"    yaml:"message,omitempty"`
	DocID     string `json:"doc_id,omitempty"     yaml:"doc_id,omitempty"`
	RevokedAt string `json:"revoked_at,omitempty" yaml:"revoked_at,omitempty"`
}

// ResendClaimResult is the response to resending a claim link.
type ResendClaimResult struct {
	Message           string `json:"message,omitempty"             yaml:"message,omitempty"`
	ClaimToken        string `json:"claim_token,omitempty"         yaml:"claim_token,omitempty"`
	ClaimTokenExpires string `json:"claim_token_expires,omitempty" yaml:"claim_token_expires,omitempty"`
	RecipientEmail    string `json:"recipient_email,omitempty"     yaml:"recipient_email,omitempty"`
}

// Template represents a credential template. Schema is the server-side field
// definition mapping and stays untyped.
type Template struct {
	ID             string                 `json:"id"                        yaml:"id"`
	Name           string                 `json:"name"                      yaml:"name"`
	Description    string                 `json:"description,omitempty"     yaml:"description,omitempty"`
	CredentialType string                 `json:"credential_type,omitempty" yaml:"credential_type,omitempty"`
	Schema         map[string]interface{} `json:"schema,omitempty"          yaml:"schema,omitempty"`
	Version        string                 `json:"version,omitempty"         yaml:"version,omitempty"`
	IsActive       bool                   `json:"is_active,omitempty"       yaml:"is_active,omitempty"`
	CreatedAt      string                 `json:"created_at,omitempty"      yaml:"created_at,omitempty"`
	UpdatedAt      string                 `json:"updated_at,omitempty"      yaml:"updated_at,omitempty"`
}

// APIKeyInfo is the masked view of the institution's current API key.
type APIKeyInfo struct {
	APIKey     string `json:"api_key"                yaml:"api_key"`
	CreatedAt  string `json:"created_at,omitempty"   yaml:"created_at,omitempty"`
	LastUsedAt string `json:"last_used_at,omitempty" yaml:"last_used_at,omitempty"`
	IsActive   bool   `json:"is_active,omitempty"    yaml:"is_active,omitempty"`
}

// GeneratedAPIKey is the response to generating or regenerating an API key.
// The key is returned in full exactly once.
type GeneratedAPIKey struct {
	APIKey    string `json:"api_key"              yaml:"api_key"`
	CreatedAt string `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	Warning   string `json:"warning,omitempty"    yaml:"warning,omitempty"`
}

// RevokeAPIKeyResult is the response to revoking the institution API key.
type RevokeAPIKeyResult struct {
	Message   string `json:"message,omitempty"    yaml:"message,omitempty"`
	RevokedAt string `json:"revoked_at,omitempty" yaml:"revoked_at,omitempty"`
}

// TeamMember represents an active or deactivated member of the institution.
type TeamMember struct {
	ID       string `json:"id"                  yaml:"id"`
	Email    string `json:"email"               yaml:"email"`
	Role     string `json:"role"                yaml:"role"`
	IsActive bool   `json:"is_active"           yaml:"is_active"`
	JoinedAt string `json:"joined_at,omitempty" yaml:"joined_at,omitempty"`
}

// TeamInvitation represents a pending team invitation.
type TeamInvitation struct {
	ID        string `json:"id"                   yaml:"id"`
	Email     string `json:"email"                yaml:"email"`
	Role      string `json:"role"                 yaml:"role"`
	InvitedAt string `json:"invited_at,omitempty" yaml:"invited_at,omitempty"`
	ExpiresAt string `json:"expires_at,omitempty" yaml:"expires_at,omitempty"`
}

// TeamStats summarizes the institution's team.
type TeamStats struct {
	TotalMembers       int `json:"total_members"       yaml:"total_members"`
	ActiveMembers      int `json:"active_members"      yaml:"active_members"`
	PendingInvitations int `json:"pending_invitations" yaml:"pending_invitations"`
}

// TeamRoster is the response to listing the institution's team.
type TeamRoster struct {
	Members            []TeamMember     `json:"members"                       yaml:"members"`
	PendingInvitations []TeamInvitation `json:"pending_invitations,omitempty" yaml:"pending_invitations,omitempty"`
	Stats              *TeamStats       `json:"stats,omitempty"               yaml:"stats,omitempty"`
}

// CheckEmailResult is the response to validating an email for invitation.
type CheckEmailResult struct {
	Email          string `json:"email,omitempty"          yaml:"email,omitempty"`
	Valid          bool   `json:"valid"                    yaml:"valid"`
	UserExists     bool   `json:"user_exists,omitempty"    yaml:"user_exists,omitempty"`
	Recommendation string `json:"recommendation,omitempty" yaml:"recommendation,omitempty"`
	Reason         string `json:"reason,omitempty"         yaml:"reason,omitempty"`
}

// InviteResult is the response to inviting a team member. Exactly one of
// Invitation or Member is set, depending on whether the server created a
// pending invitation or added an existing user directly.
type InviteResult struct {
	Message    string          `json:"message,omitempty"    yaml:"message,omitempty"`
	Invitation *TeamInvitation `json:"invitation,omitempty" yaml:"invitation,omitempty"`
	Member     *TeamMember     `json:"member,omitempty"     yaml:"member,omitempty"`
}

// MemberStatusResult is the response to deactivating, reactivating, or
// removing a team member.
type MemberStatusResult struct {
	Message  string `json:"message,omitempty"   yaml:"message,omitempty"`
	MemberID string `json:"member_id,omitempty" yaml:"member_id,omitempty"`
	IsActive bool   `json:"is_active,omitempty" yaml:"is_active,omitempty"`
}
