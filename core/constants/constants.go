package constants

import "time"

const (
	DefaultTimeout   = 10 * time.Second
	GoogleAPITimeout = 30 * time.Second

	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
	DatabaseSSLMode         = "disable"

	// Token store drivers
	TokenStoreDriverFile     = "file"
	TokenStoreDriverPostgres = "postgres"

	// Google OAuth scope: write access to calendar events only.
	GoogleCalendarScope = "https://www.googleapis.com/auth/calendar.events"

	// Fallback bucket when the OAuth callback arrives without a state
	// parameter. Tokens saved here are not attributed to any user.
	AnonymousUID = "anonymous"

	// Minimum accepted uid length on the status endpoint.
	MinUIDLength = 5
)
