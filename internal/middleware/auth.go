package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"pgms-be-svc/internal/auth"
	"pgms-be-svc/pkg/utils"
)

const sessionKey = "session"

// Authenticate validates the Bearer token and attaches the session to the
// request context
func Authenticate(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.UnauthorizedResponse(c, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.UnauthorizedResponse(c, "Invalid authorization format")
			c.Abort()
			return
		}

		session, err := jwtManager.ValidateToken(parts[1])
		if err != nil {
			utils.UnauthorizedResponse(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

// RequireRole gates a route group to sessions carrying the given role
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := SessionFromContext(c)
		if !ok || session.Role != role {
			utils.ForbiddenResponse(c, "Insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}

// SessionFromContext extracts the authenticated session from the request
func SessionFromContext(c *gin.Context) (*auth.Session, bool) {
	value, exists := c.Get(sessionKey)
	if !exists {
		return nil, false
	}
	session, ok := value.(*auth.Session)
	return session, ok
}
