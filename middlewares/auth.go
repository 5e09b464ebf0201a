package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/malika-s1/restoranchec/utils"
)

// AuthMiddleware проверяет bearer-токен и (если передан список) роль.
// Секрет инжектится при регистрации маршрутов — конфиг на каждый запрос
// не перечитывается.
func AuthMiddleware(secret string, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.VerifyToken(tokenStr, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if claims.Role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				c.JSON(http.StatusForbidden, gin.H{"error": forbiddenMessage(requiredRoles)})
				c.Abort()
				return
			}
		}

		c.Next()
	}
}

// forbiddenMessage строит текст 403 из списка ролей: ["admin"] -> "Admin access required".
func forbiddenMessage(roles []string) string {
	msg := strings.Join(roles, " or ") + " access required"
	return strings.ToUpper(msg[:1]) + msg[1:]
}
