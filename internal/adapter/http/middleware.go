package http

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/omarkhal/dinehub/internal/adapter/auth"
	"github.com/omarkhal/dinehub/internal/adapter/logger"
	"github.com/omarkhal/dinehub/internal/app/tenant"
	"github.com/omarkhal/dinehub/internal/domain"
	"github.com/omarkhal/dinehub/internal/interfaces"
)

const sessionCookieName = "dinehub_session"

type restaurantKey struct{}

// RestaurantFromContext returns the tenant bound by TenantMiddleware, or nil.
func RestaurantFromContext(ctx context.Context) *domain.Restaurant {
	r, _ := ctx.Value(restaurantKey{}).(*domain.Restaurant)
	return r
}

func sessionIDFromContext(ctx context.Context) string {
	if sess := auth.FromContext(ctx); sess != nil {
		return sess.SessionID
	}
	return ""
}

func LoggingMiddleware(logger logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := fmt.Sprintf("req-%d", time.Now().UnixNano())

			logger.Debug("http_request", fmt.Sprintf("%s %s", r.Method, r.URL.Path), requestID, map[string]interface{}{
				"method": r.Method,
				"path":   r.URL.Path,
				"host":   r.Host,
			})

			next.ServeHTTP(w, r)

			duration := time.Since(start)
			logger.Debug("http_response", "Request completed", requestID, map[string]interface{}{
				"duration_ms": duration.Milliseconds(),
			})
		})
	}
}

// SessionMiddleware guarantees every request carries a session id cookie and
// binds the session to the request context.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := ""
		if c, err := r.Cookie(sessionCookieName); err == nil {
			if _, err := uuid.Parse(c.Value); err == nil {
				sessionID = c.Value
			}
		}

		if sessionID == "" {
			sessionID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookieName,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := auth.WithSession(r.Context(), &interfaces.SessionInfo{SessionID: sessionID})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// TenantMiddleware resolves the restaurant from the request host and binds it
// to the context. A clean miss is a 404; a backend failure is a 503 so the
// client can retry.
func TenantMiddleware(resolver *tenant.Resolver, baseDomain string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			subdomain := tenant.SubdomainFromHost(r.Host, baseDomain)
			if subdomain == "" {
				respondError(w, "Restaurant not found", http.StatusNotFound, nil)
				return
			}

			res := resolver.Detect(r.Context(), subdomain)
			resolver.LogDetectionSummary(r.Host, subdomain, res.Restaurant != nil)

			if res.Err != nil {
				var notFound *domain.NotFoundError
				if errors.As(res.Err, &notFound) {
					respondError(w, "Restaurant not found", http.StatusNotFound, nil)
					return
				}
				respondError(w, "Service temporarily unavailable", http.StatusServiceUnavailable, nil)
				return
			}

			ctx := context.WithValue(r.Context(), restaurantKey{}, res.Restaurant)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminAuthMiddleware gates the admin API behind a bearer token.
func AdminAuthMiddleware(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				respondError(w, "Admin API disabled", http.StatusForbidden, nil)
				return
			}

			header := r.Header.Get("Authorization")
			presented := strings.TrimPrefix(header, "Bearer ")
			if presented == header || subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				respondError(w, "Unauthorized", http.StatusUnauthorized, nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
