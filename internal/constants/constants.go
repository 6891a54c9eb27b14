package constants

import "time"

// Context keys
const (
	ContextKeyIdentity = "identity"
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 5
	MaxPageSize     = 100
)

// Auth
const (
	TokenLifetime     = 24 * time.Hour
	MinPasswordLength = 8
)

// Activity log
const (
	ActivityLogLimit = 50
)
