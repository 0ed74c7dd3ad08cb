package constants

// SessionCookieName is the name of the session cookie issued on login.
const SessionCookieName = "bid_session"

// Context / session keys
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
)

// MinPasswordLength is the minimum accepted password length at signup.
const MinPasswordLength = 8

// Session lifetimes in seconds.
const (
	SessionMaxAge         = 86400      // 1 day
	SessionMaxAgeRemember = 86400 * 30 // 30 days with "remember me"
)

// Pagination limits
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// DefaultProfileImage is the placeholder image assigned at registration.
const DefaultProfileImage = "default.jpg"
