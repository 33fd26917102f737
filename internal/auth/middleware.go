package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/token"
)

// SchemeName is the OpenAPI security scheme marking protected operations.
const SchemeName = "bearerAuth"

type contextKey struct{}

var claimsKey contextKey

// Authenticator verifies a raw bearer token and confirms the identity it
// references still exists.
type Authenticator interface {
	Authenticate(ctx context.Context, rawToken string) (*token.Claims, error)
}

// BearerSecurity is the operation security metadata that opts an operation
// into the middleware.
func BearerSecurity() []map[string][]string {
	return []map[string][]string{{SchemeName: {}}}
}

// NewMiddleware gates operations carrying security metadata. Missing header,
// malformed header, invalid token and vanished configuration all produce the
// same 401 so a caller cannot probe which check failed.
func NewMiddleware(api huma.API, authenticator Authenticator) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if len(ctx.Operation().Security) == 0 {
			next(ctx)
			return
		}

		rawToken, ok := bearerToken(ctx.Header("Authorization"))
		if !ok {
			writeUnauthorized(api, ctx)
			return
		}

		claims, err := authenticator.Authenticate(ctx.Context(), rawToken)
		if err != nil {
			writeUnauthorized(api, ctx)
			return
		}

		next(huma.WithValue(ctx, claimsKey, claims))
	}
}

// ClaimsFromContext returns the claims attached by the middleware, or nil on
// an ungated operation.
func ClaimsFromContext(ctx context.Context) *token.Claims {
	claims, _ := ctx.Value(claimsKey).(*token.Claims)
	return claims
}

func bearerToken(header string) (string, bool) {
	scheme, rawToken, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	rawToken = strings.TrimSpace(rawToken)
	if rawToken == "" {
		return "", false
	}
	return rawToken, true
}

func writeUnauthorized(api huma.API, ctx huma.Context) {
	// Uniform message regardless of which check failed.
	_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "Invalid token")
}
