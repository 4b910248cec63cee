package middleware

import (
	"net/http"
	"strings"

	"hotel-backoffice/services"

	"github.com/gin-gonic/gin"
)

// RequireAuth validates the Bearer token and puts the actor identity into
// the gin context for the controllers.
func RequireAuth(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "missing authorization header"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		claims, err := auth.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid token"})
			c.Abort()
			return
		}

		c.Set("actorId", claims.AdminID)
		c.Set("actorName", claims.FullName)
		c.Set("hotelId", claims.HotelID)
		c.Next()
	}
}
