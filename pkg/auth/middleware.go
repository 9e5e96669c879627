package auth

import (
	"context"
	"log/slog"
	"net/http"
)

type contextKey string

const operatorKey contextKey = "operator"

// OperatorFromContext returns the operator username set by RequireOperator.
func OperatorFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(operatorKey).(string)
	return v, ok
}

// WithOperator stores the authenticated operator username in the context.
func WithOperator(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, operatorKey, username)
}

// RequireOperator guards next with HTTP Basic authentication against op.
//
// When op has no password configured every request gets 500: that is a
// deployment error, not a failed login, and is logged as such. Missing or
// wrong credentials get 401 with a Basic challenge so the browser prompts again.
func RequireOperator(op Operator, realm string) func(http.Handler) http.Handler {
	challenge := `Basic realm="` + realm + `", charset="UTF-8"`
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !op.Configured() {
				slog.Error("ADMIN_PASSWORD environment variable not set, refusing admin request",
					"path", r.URL.Path,
				)
				http.Error(w, "Server configuration error.", http.StatusInternalServerError)
				return
			}

			username, password, ok := r.BasicAuth()
			if !ok || !op.Verify(username, password) {
				slog.Info("admin authentication failed",
					"path", r.URL.Path,
					"remote_addr", r.RemoteAddr,
					"header_present", r.Header.Get("Authorization") != "",
				)
				w.Header().Set("WWW-Authenticate", challenge)
				http.Error(w, "Authentication required.", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithOperator(r.Context(), username)))
		})
	}
}
