package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthGuard validates the bearer token and, when roles are given, requires
// the token's role claim to match one of them. On success the parsed claims
// and the role are stored on the request context.
func AuthGuard(secret string, allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.Request.Method + " " + c.FullPath()

		raw := strings.TrimSpace(c.GetHeader("Authorization"))
		if raw == "" {
			rejectRequest(c, route, http.StatusUnauthorized, "missing token")
			return
		}

		parts := strings.Split(raw, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			rejectRequest(c, route, http.StatusUnauthorized, "invalid token")
			return
		}

		token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			rejectRequest(c, route, http.StatusUnauthorized, "unauthorized")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			rejectRequest(c, route, http.StatusUnauthorized, "unauthorized")
			return
		}

		role, _ := claims["role"].(string)
		if len(allowedRoles) > 0 && !roleAllowed(role, allowedRoles) {
			rejectRequest(c, route, http.StatusForbidden, "forbidden")
			return
		}

		c.Set("claims", claims)
		c.Set("role", role)
		c.Next()
	}
}

// AdminAuth guards the elevated catalog operations: add, edit and remove
// product, and category creation.
func AdminAuth(secret string) gin.HandlerFunc {
	return AuthGuard(secret, "admin")
}

func roleAllowed(role string, allowed []string) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}

func rejectRequest(c *gin.Context, route string, status int, message string) {
	log.Printf("[%s] auth guard rejecting with %d: %s", route, status, message)
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
