package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jhony29a/bliss/internal/cache"
	"github.com/jhony29a/bliss/pkg/auth"
)

const UserIDKey = "userID"

// AuthMiddleware verifies the bearer JWT, rejects revoked tokens, and
// stores the caller's user id in the request context.
func AuthMiddleware(jwtManager *auth.JWTManager, redisCache *cache.RedisCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractTokenFromHeader(c.Request)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "missing or invalid token"})
			c.Abort()
			return
		}

		blacklisted, err := redisCache.IsTokenBlacklisted(c.Request.Context(), token)
		if err != nil || blacklisted {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "token is revoked"})
			c.Abort()
			return
		}

		userID, err := jwtManager.UserID(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated caller's id set by AuthMiddleware.
func UserID(c *gin.Context) uint64 {
	return c.MustGet(UserIDKey).(uint64)
}
