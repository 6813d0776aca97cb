package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600

	// DownloadFilePerm is the permission for downloaded credential files.
	DownloadFilePerm = 0644
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for API calls.
	DefaultHTTPTimeout = 30 * time.Second
)

// API defaults.
const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://docwal.com/api"

	// APIKeyHeader carries the institution API key on every request.
	APIKeyHeader = "X-API-Key"

	// DefaultClaimTokenExpiresHours is the claim link lifetime (30 days).
	DefaultClaimTokenExpiresHours = 720

	// DefaultTeamRole is the role assigned to invited members when none is given.
	DefaultTeamRole = "issuer"

	// DefaultTemplateVersion is the version assigned to new templates.
	DefaultTemplateVersion = "1.0"

	// DefaultListLimit is the default page size when listing credentials.
	DefaultListLimit = 100
)

// HTTP status codes commonly used.
const (
	// HTTPStatusBadRequest represents a request validation failure.
	HTTPStatusBadRequest = 400

	// HTTPStatusUnauthorized represents an authentication failure.
	HTTPStatusUnauthorized = 401

	// HTTPStatusForbidden represents an authorization failure.
	HTTPStatusForbidden = 403

	// HTTPStatusNotFound represents a missing resource.
	HTTPStatusNotFound = 404

	// HTTPStatusTooManyRequests represents rate limiting.
	HTTPStatusTooManyRequests = 429
)
