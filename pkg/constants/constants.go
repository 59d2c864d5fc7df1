// Package constants provides shared constants used throughout the codebase.
// This includes timeouts, page sizes, header names, and other configuration
// values that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to the Admin API
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultTimeout is the standard timeout for general operations
	DefaultTimeout = 10 * time.Second

	// CommandTimeout is the default timeout for CLI commands; bulk mutations
	// across a large catalog issue one remote call per product
	CommandTimeout = 10 * time.Minute
)

// Pagination constants
const (
	// ProductsPageSize is the number of products requested per page. The Admin
	// API caps connection page sizes at 250.
	ProductsPageSize = 250
)

// Shopify Admin API constants
const (
	// AccessTokenHeader carries the Admin API access token on every request
	AccessTokenHeader = "X-Shopify-Access-Token"

	// DefaultAPIVersion is the Admin API version used when none is configured
	DefaultAPIVersion = "2024-07"

	// GraphQLEndpointFormat builds the Admin GraphQL endpoint from a shop
	// domain and an API version
	GraphQLEndpointFormat = "https://%s/admin/api/%s/graphql.json"
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644

	// SecureFilePermissions is for sensitive files like access tokens (rw-------)
	SecureFilePermissions = 0600
)

// Format constants
const (
	// TimeFormatISO8601 is the ISO 8601 time format
	TimeFormatISO8601 = time.RFC3339

	// TimeFormatFilename is the format used in generated filenames
	TimeFormatFilename = "20060102-150405"
)

// Error messages
const (
	// ErrMsgAccessTokenMissing is the standard error message for a missing token
	ErrMsgAccessTokenMissing = "invalid or missing access token"

	// ErrMsgShopMissing is the standard error message for a missing shop domain
	ErrMsgShopMissing = "shop domain not configured"

	// ErrMsgRateLimited is the standard error message for rate limiting
	ErrMsgRateLimited = "rate limit exceeded, please try again later"
)
