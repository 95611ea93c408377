package constants

import "time"

const (
	// ContextTokenData is the echo context key holding parsed JWT claims
	ContextTokenData = "tokenData"

	DefaultRequestTimeout = 10 * time.Second

	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes

	// DefaultDisplayUTCOffset anchors formatted schedule times to a fixed
	// zone so every device shows the same clock times
	DefaultDisplayUTCOffset = 8

	// DefaultPulseDurationMs is how long the badge-scan pulse flag stays up
	DefaultPulseDurationMs = 1000
)

// Account roles
const (
	RoleAdmin     = "admin"
	RoleStaff     = "staff"
	RoleFrontdesk = "frontdesk"
)
