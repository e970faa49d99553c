package middlewares

import (
	"clinix-service/internal/app/contracts"
	"clinix-service/internal/pkg/constvars"
	"clinix-service/internal/pkg/exceptions"
	"clinix-service/internal/pkg/utils"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Authenticate resolves the bearer token into a caller. Verification is
// stateless; nothing is looked up per request.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}
		if !strings.HasPrefix(authHeader, constvars.AuthorizationBearerPrefix) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMalformed(errors.New("authorization scheme is not bearer")))
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, constvars.AuthorizationBearerPrefix))
		verified, err := m.TokenManager.VerifyToken(r.Context(), &contracts.VerifyTokenInput{Token: token})
		if err != nil {
			utils.LogSecurityEvent(m.Log, "token_rejected", utils.GetRequestID(r.Context()), "low",
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := utils.WithCaller(r.Context(), verified.Caller)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles must run after Authenticate.
func (m *Middlewares) RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, ok := utils.GetCaller(r.Context())
			if !ok {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrCallerMissing(nil))
				return
			}

			for _, role := range roles {
				if caller.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			utils.LogSecurityEvent(m.Log, "role_rejected", utils.GetRequestID(r.Context()), "low",
				zap.String(constvars.LoggingCallerIDKey, caller.ID),
				zap.String(constvars.LoggingCallerRoleKey, caller.Role),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotMatchRoleType(fmt.Errorf("role %q not in %v", caller.Role, roles)))
		})
	}
}
