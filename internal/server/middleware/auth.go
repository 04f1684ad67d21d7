package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/botwatch-dev/botwatch/internal/auth"
	"github.com/botwatch-dev/botwatch/internal/config"
)

// AuthMiddleware enforces bearer-JWT authentication on the management API
// when the config asks for it. Enforcement is checked per request so a
// config reload takes effect without a restart.
type AuthMiddleware struct {
	config     *config.Config
	jwtManager *auth.JWTManager
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(cfg *config.Config, jwtManager *auth.JWTManager) *AuthMiddleware {
	return &AuthMiddleware{
		config:     cfg,
		jwtManager: jwtManager,
	}
}

// Middleware returns the gin handler.
func (am *AuthMiddleware) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !am.config.AuthRequired() {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authorization header required"})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid authorization header format. Expected: 'Bearer <token>'"})
			c.Abort()
			return
		}

		claims, err := am.jwtManager.ValidateToken(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Next()
	}
}
