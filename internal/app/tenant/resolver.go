package tenant

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/omarkhal/dinehub/internal/adapter/logger"
	"github.com/omarkhal/dinehub/internal/domain"
	"github.com/omarkhal/dinehub/internal/interfaces"
)

// Resolution is the outcome of a subdomain lookup. Exactly one of Restaurant
// and Err is set. Err is either *domain.NotFoundError (clean miss) or the
// backend failure itself.
type Resolution struct {
	Restaurant *domain.Restaurant
	Err        error
}

type Resolver struct {
	repo   interfaces.RestaurantRepository
	auth   interfaces.AuthContext
	logger logger.Logger
}

func NewResolver(repo interfaces.RestaurantRepository, auth interfaces.AuthContext, lgr logger.Logger) *Resolver {
	return &Resolver{
		repo:   repo,
		auth:   auth,
		logger: lgr,
	}
}

// Detect maps a subdomain to its restaurant. The function never panics past
// its boundary; unexpected faults come back inside the Resolution.
func (r *Resolver) Detect(ctx context.Context, subdomain string) (res Resolution) {
	defer func() {
		if p := recover(); p != nil {
			res = Resolution{Err: fmt.Errorf("restaurant detection failed: %v", p)}
		}
	}()

	r.logAuthContext(ctx, subdomain)

	restaurant, err := r.repo.FindBySubdomain(ctx, subdomain)
	switch {
	case err == nil:
		r.logger.Debug("tenant_resolved", fmt.Sprintf("Resolved subdomain %s", subdomain), "", map[string]interface{}{
			"subdomain":     subdomain,
			"restaurant_id": restaurant.ID.String(),
		})
		return Resolution{Restaurant: restaurant}

	case errors.Is(err, domain.ErrRestaurantNotFound):
		// Clean miss: the query itself succeeded, so synthesize the typed
		// error instead of propagating a backend failure.
		return Resolution{Err: &domain.NotFoundError{Subdomain: subdomain}}

	default:
		r.logger.Error("tenant_lookup_failed", "Restaurant lookup failed", "", map[string]interface{}{
			"subdomain": subdomain,
		}, err)
		return Resolution{Err: err}
	}
}

// logAuthContext records session presence for diagnostics. It never affects
// control flow.
func (r *Resolver) logAuthContext(ctx context.Context, subdomain string) {
	sess, err := r.auth.CurrentSession(ctx)
	if err != nil {
		r.logger.Debug("auth_context_unavailable", "Could not resolve auth context", "", map[string]interface{}{
			"subdomain": subdomain,
		})
		return
	}

	details := map[string]interface{}{
		"subdomain":   subdomain,
		"has_session": sess != nil,
	}
	if sess != nil && sess.UserID != "" {
		details["user_id"] = sess.UserID
	}
	r.logger.Debug("auth_context", "Resolved auth context", "", details)
}

// LogDetectionSummary emits a diagnostic summary of one detection pass.
func (r *Resolver) LogDetectionSummary(host, subdomain string, found bool) {
	r.logger.Info("tenant_detection", "Subdomain detection completed", "", map[string]interface{}{
		"hostname":  host,
		"subdomain": subdomain,
		"found":     found,
	})
}

// SubdomainFromHost extracts the tenant subdomain from an HTTP Host header.
// When baseDomain is set, only hosts of the form "<sub>.<baseDomain>" yield
// a subdomain. Without it, the left-most label of a host with at least three
// labels is used. "www", apex hosts, and IP addresses resolve to no tenant.
func SubdomainFromHost(host, baseDomain string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.ToLower(strings.TrimSuffix(host, "."))

	if net.ParseIP(host) != nil {
		return ""
	}

	if baseDomain != "" {
		suffix := "." + strings.ToLower(baseDomain)
		if !strings.HasSuffix(host, suffix) {
			return ""
		}
		sub := strings.TrimSuffix(host, suffix)
		if sub == "" || sub == "www" || strings.Contains(sub, ".") {
			return ""
		}
		return sub
	}

	labels := strings.Split(host, ".")
	if len(labels) < 3 || labels[0] == "www" || labels[0] == "" {
		return ""
	}
	return labels[0]
}
