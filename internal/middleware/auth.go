package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/festy23/hackteams/internal/config"
)

// ContextUserID is the gin context key holding the authenticated user id.
const ContextUserID = "user_id"

// identityClaims are the token claims the service consumes. The user id in
// the subject is trusted as-is; identity is owned by the external auth
// provider.
type identityClaims struct {
	jwt.RegisteredClaims
}

// AuthRequired returns a middleware that verifies the bearer token and puts
// the authenticated user id into the request context.
func AuthRequired(cfg config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "authorization header required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthorized(c, "invalid authorization header format")
			return
		}

		claims := &identityClaims{}
		parserOpts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256"})}
		if cfg.Issuer != "" {
			parserOpts = append(parserOpts, jwt.WithIssuer(cfg.Issuer))
		}

		token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWTSecret), nil
		}, parserOpts...)
		if err != nil || !token.Valid || claims.Subject == "" {
			unauthorized(c, "invalid or expired token")
			return
		}

		c.Set(ContextUserID, claims.Subject)
		c.Next()
	}
}

func unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
	c.Abort()
}

// GetUserID returns the authenticated user id from the request context.
func GetUserID(c *gin.Context) string {
	if id, exists := c.Get(ContextUserID); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}
