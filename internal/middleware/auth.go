package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	coreauth "github.com/carson-networks/finance-tracker/internal/auth"
)

type claimsKey struct{}
type userIDKey struct{}

// Authenticator enforces a valid bearer token and injects the principal
// into the request context. It runs per-operation, before the handler.
type Authenticator struct {
	Tokens *coreauth.TokenManager
}

func NewAuthenticator(tokens *coreauth.TokenManager) *Authenticator {
	return &Authenticator{Tokens: tokens}
}

// Require returns an operation middleware that rejects the request with 401
// unless the Authorization header carries a valid bearer token.
func (a *Authenticator) Require(api huma.API) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		header := ctx.Header("Authorization")
		if header == "" {
			huma.WriteErr(api, ctx, http.StatusUnauthorized, "missing authorization")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid authorization header")
			return
		}

		claims, err := a.Tokens.Validate(parts[1])
		if err != nil {
			huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		ctx = huma.WithValue(ctx, claimsKey{}, claims)
		ctx = huma.WithValue(ctx, userIDKey{}, userID)
		next(ctx)
	}
}

// UserID returns the authenticated user id put there by Require.
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey{}).(int64)
	return id, ok
}

// Claims returns the validated token claims put there by Require.
func Claims(ctx context.Context) (*coreauth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*coreauth.Claims)
	return claims, ok
}
