// Package constants defines application-wide constants.
package constants

// Environments.
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Pagination defaults.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Context keys set by middleware.
const (
	ContextKeyRequestID = "request_id"
	ContextKeySubject   = "auth_subject"
)
