package auth

import (
	"context"

	"github.com/omarkhal/dinehub/internal/interfaces"
)

type sessionKey struct{}

// WithSession binds a session to the context. The HTTP session middleware
// calls this once per request.
func WithSession(ctx context.Context, sess *interfaces.SessionInfo) context.Context {
	return context.WithValue(ctx, sessionKey{}, sess)
}

// FromContext returns the session bound to the context, or nil.
func FromContext(ctx context.Context) *interfaces.SessionInfo {
	sess, _ := ctx.Value(sessionKey{}).(*interfaces.SessionInfo)
	return sess
}

type contextAuth struct{}

// NewContextAuth returns an AuthContext backed by request-scoped context
// values.
func NewContextAuth() interfaces.AuthContext {
	return contextAuth{}
}

func (contextAuth) CurrentSession(ctx context.Context) (*interfaces.SessionInfo, error) {
	return FromContext(ctx), nil
}
