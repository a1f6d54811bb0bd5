package http

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/clearpath-coaching/site-api/internal/auth"
	"github.com/clearpath-coaching/site-api/internal/clock"
)

// RequestLogger logs basic request details and latency.
func RequestLogger(next http.Handler, logger *log.Logger) http.Handler {
	if logger == nil {
		logger = log.Default()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		logger.Printf(
			"request method=%s path=%s status=%d duration=%s",
			r.Method,
			r.URL.Path,
			rec.status,
			time.Since(start),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// AdminAuthorizer resolves a verified identity's capability. Satisfied by
// auth.Gate.
type AdminAuthorizer interface {
	Check(ctx context.Context, userID string) auth.Capability
}

type userIDKey struct{}

// UserIDFromContext returns the authenticated identity set by RequireAdmin.
func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey{}).(string)
	return id
}

// RequireAdmin guards mutating event routes. It verifies the bearer token,
// resolves the identity's capability through the gate and rejects anything
// short of a definite admin. The store still enforces its own authorization;
// this check only keeps non-admin traffic off the admin surface.
func RequireAdmin(secret []byte, gate AdminAuthorizer, clk clock.Clock, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "missing bearer token")
			return
		}
		claims, err := auth.VerifyToken(token, secret, clk.Now())
		if err != nil {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "invalid or expired token")
			return
		}
		if gate.Check(r.Context(), claims.Sub) != auth.CapabilityAdmin {
			writeError(w, http.StatusForbidden, codeForbidden, "admin role required")
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey{}, claims.Sub)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
