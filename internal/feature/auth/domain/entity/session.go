package entity

import "time"

// Session represents a logged-in browser session. The ID is the opaque value
// stored in the session cookie (64-character hex string).
//
// Principal is the full user row captured at login time. It is deliberately
// NOT re-fetched on later requests, so it can go stale if the user row
// changes while the session is alive. This mirrors the cached-at-login
// identity model the site has always had.
type Session struct {
	ID        string    // Opaque session ID (64-character hex string)
	UserID    uint      // Owning user ID
	Principal User      // User row snapshot captured at login
	UserAgent string    // Client's User-Agent header
	IPAddress string    // Client's IP address
	CreatedAt time.Time // Session creation time
	ExpiresAt time.Time // Session expiration time
}

// IsExpired returns true if the session has passed its expiration time.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
