package domain

import "time"

// Session describes an issued session token's metadata. Tokens are
// stateless; this is reporting data, not a stored record.
type Session struct {
	UserID    string
	Username  string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}
