package middleware

import (
	"net/http"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"jobboard-backend/internal/utilities"
)

// DefaultRequestsPerSecond is used when the configured rate is not positive
const DefaultRequestsPerSecond = 5

func keyFunc(c *gin.Context) string {
	identity, err := utilities.ExtractIdentity(c)
	if err != nil {
		return "ip: " + c.ClientIP()
	}
	return "user: " + identity.Email
}

func errorHandler(c *gin.Context, info ratelimit.Info) {
	c.Header("Retry-After", info.ResetTime.UTC().Format(http.TimeFormat))
	c.AbortWithStatusJSON(http.StatusTooManyRequests, utilities.ErrorResponse{
		Error: "Too many requests. Please try again later.",
	})
}

// RateLimiterMiddleware limit each user, or each client IP before authentication, to
// reqPerSec requests per second. Counters live in redis when client is not nil so every
// replica share them.
func RateLimiterMiddleware(reqPerSec uint, client redis.UniversalClient) gin.HandlerFunc {
	if reqPerSec == 0 {
		reqPerSec = DefaultRequestsPerSecond
	}

	var store ratelimit.Store
	if client != nil {
		store = ratelimit.RedisStore(&ratelimit.RedisOptions{
			RedisClient: client.(*redis.Client),
			Rate:        time.Second,
			Limit:       reqPerSec,
		})
	} else {
		store = ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
			Rate:  time.Second,
			Limit: reqPerSec,
		})
	}

	return ratelimit.RateLimiter(store, &ratelimit.Options{
		KeyFunc:      keyFunc,
		ErrorHandler: errorHandler,
	})
}
