package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/alumnilink/leads-backend-go/internal/models"
	"github.com/alumnilink/leads-backend-go/pkg/response"
)

// Context key under which the caller's role is stored
const RoleKey = "role"

// Claims carried in the alumni platform's access tokens
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Auth validates the bearer token and stores the caller's role in the
// request context. Requests without a token proceed as regular members;
// role-gated routes enforce their own requirements on top.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Set(RoleKey, models.RoleMember)
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header {
			response.Unauthorized(c, "Malformed authorization header")
			c.Abort()
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		role := claims.Role
		if role == "" {
			role = models.RoleMember
		}
		c.Set(RoleKey, role)
		c.Next()
	}
}

// Role returns the caller's role from the request context
func Role(c *gin.Context) string {
	if role, ok := c.Get(RoleKey); ok {
		if s, ok := role.(string); ok {
			return s
		}
	}
	return models.RoleMember
}

// RequireAdmin rejects callers whose role is not administrator
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if Role(c) != models.RoleAdministrator {
			response.Forbidden(c, "Administrator role required")
			c.Abort()
			return
		}
		c.Next()
	}
}
