package middleware

import (
	"net/http"
	"strings"

	"prodiny/internal/db"
	"prodiny/internal/models"
	"prodiny/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const CheckUserKey = "user"

// LoadUser resolves the caller from a bearer token, falling back to the
// cookie session, and sets the user on the context. Requests without
// credentials pass through anonymous.
func LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		var email string

		auth := c.GetHeader("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			token := strings.TrimPrefix(auth, "Bearer ")
			if sub, err := services.ParseAccessToken(token); err == nil {
				email = sub
			}
		}

		if email == "" {
			session := sessions.Default(c)
			if v, ok := session.Get("user_email").(string); ok {
				email = v
			}
		}

		if email != "" {
			var user models.User
			if err := db.DB.Where("email = ?", email).First(&user).Error; err == nil {
				c.Set(CheckUserKey, &user)
			}
		}
		c.Next()
	}
}

// AuthRequired rejects requests that LoadUser left anonymous.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(CheckUserKey); !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Invalid token"})
			return
		}
		c.Next()
	}
}
