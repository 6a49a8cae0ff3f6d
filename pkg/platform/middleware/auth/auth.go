// Package auth authenticates attester API calls with bearer tokens and
// places the caller's principal address in the request context.
package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	id "attestry/pkg/domain"
	dErrors "attestry/pkg/domain-errors"
	"attestry/pkg/platform/httputil"
	"attestry/pkg/requestcontext"
)

// TokenValidator resolves a bearer token to a principal address.
type TokenValidator interface {
	PrincipalFromToken(token string) (id.Address, error)
}

type contextKeyPrincipal struct{}

// Principal returns the authenticated caller, or the zero address for
// unauthenticated requests.
func Principal(ctx context.Context) id.Address {
	if p, ok := ctx.Value(contextKeyPrincipal{}).(id.Address); ok {
		return p
	}
	return id.ZeroAddress
}

// WithPrincipal injects a principal for tests and internal callers.
func WithPrincipal(ctx context.Context, principal id.Address) context.Context {
	return context.WithValue(ctx, contextKeyPrincipal{}, principal)
}

// RequireToken rejects requests without a valid bearer token.
func RequireToken(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, err := bearerToken(r)
			if err == nil {
				var principal id.Address
				principal, err = validator.PrincipalFromToken(token)
				if err == nil {
					next.ServeHTTP(w, r.WithContext(WithPrincipal(ctx, principal)))
					return
				}
			}

			if logger != nil {
				logger.WarnContext(ctx, "rejected unauthenticated request",
					"error", err,
					"path", r.URL.Path,
					"request_id", requestcontext.RequestID(ctx),
				)
			}
			httputil.WriteError(w, err)
		})
	}
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) || len(header) == len(prefix) {
		return "", dErrors.New(dErrors.CodeUnauthorized, "missing bearer token")
	}
	return header[len(prefix):], nil
}
