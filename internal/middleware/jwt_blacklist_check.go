package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jobboard-backend/internal/auth"
	"jobboard-backend/internal/utilities"
)

// JwtBlacklistCheck reject tokens revoked by logout. A request without a bearer
// token passes through and is answered by RequireAuth.
func JwtBlacklistCheck(bl auth.JwtBlacklistStore, log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *gin.Context) {
		tokenString, err := utilities.ExtractBearerToken(c)
		if err != nil {
			c.Next()
			return
		}

		revoked, err := bl.IsBlacklisted(c.Request.Context(), tokenString)
		if err != nil {
			log.Error("failed to read token blacklist", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, utilities.ErrorResponse{
				Error: "Unable to validate token, please try again",
			})
			return
		}
		if revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
				Error: "Token has been revoked",
			})
			return
		}

		c.Next()
	}
}
