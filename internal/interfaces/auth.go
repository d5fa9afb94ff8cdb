package interfaces

import "context"

// SessionInfo describes the current authentication context. It is consumed
// for diagnostic logging only and never gates access.
type SessionInfo struct {
	SessionID string
	UserID    string
}

type AuthContext interface {
	// CurrentSession returns the session bound to the request context, or
	// nil when the caller is anonymous.
	CurrentSession(ctx context.Context) (*SessionInfo, error)
}
