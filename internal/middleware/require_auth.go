// Package middleware contain utilities middleware code
package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"jobboard-backend/internal/auth"
	"jobboard-backend/internal/utilities"
)

// RequireAuth validates the Bearer token of the Authorization header against the identity
// provider secret and stores the asserted identity in the context before allowing access.
func RequireAuth(verifier *auth.Verifier, log *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, err := utilities.ExtractBearerToken(ctx)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
				Error: err.Error(),
			})
			return
		}

		claims, err := verifier.Verify(tokenString)
		if err != nil {
			auth.LogAuthAttempt(log, "Fail", "", err.Error())

			if errors.Is(err, jwt.ErrTokenExpired) {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
					Error: "Access token expired",
				})
				return
			}

			if errors.Is(err, jwt.ErrTokenInvalidIssuer) {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
					Error: "Invalid token issuer",
				})
				return
			}

			ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
				Error: fmt.Sprintf("Failed to validate token: %s", err.Error()),
			})
			return
		}

		identity := claims.Identity()
		auth.LogAuthAttempt(log, "Success", identity.Email, "")

		ctx.Set(auth.ClaimsKey, claims)
		ctx.Set(utilities.IdentityKey, &identity)
		ctx.Next()
	}
}
