package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIKeyConfigured = errors.New("no API key configured, use 'docwal config set-key' or set DOCWAL_API_KEY")
	ErrAPIKeyRequired     = errors.New("API key is required")
)

// Required field errors.
var (
	ErrTemplateIDRequired  = errors.New("template ID is required")
	ErrDocIDRequired       = errors.New("doc ID is required")
	ErrEmailRequired       = errors.New("email is required")
	ErrReasonRequired      = errors.New("revocation reason is required")
	ErrMemberIDRequired    = errors.New("member ID is required")
	ErrRoleRequired        = errors.New("role is required")
	ErrFileRequired        = errors.New("file is required")
	ErrCredentialsRequired = errors.New("at least one credential is required")
)

// Validation errors.
var (
	ErrInvalidDataFormat   = errors.New("invalid data format, expected key=value")
	ErrInvalidOutputFormat = errors.New("invalid output format, expected table, json, or yaml")
	ErrUnknownConfigKey    = errors.New("unknown config key")
)
