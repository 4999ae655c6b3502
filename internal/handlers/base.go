package handlers

import (
	"prodiny/internal/middleware"
	"prodiny/internal/models"

	"github.com/gin-gonic/gin"
)

// Fail sends the flat error envelope every endpoint uses.
func Fail(c *gin.Context, code int, detail string) {
	c.JSON(code, gin.H{"detail": detail})
}

// CurrentUser returns the authenticated user set by middleware.LoadUser,
// or nil for anonymous requests.
func CurrentUser(c *gin.Context) *models.User {
	u, exists := c.Get(middleware.CheckUserKey)
	if !exists {
		return nil
	}
	return u.(*models.User)
}

// MustCurrentUser is CurrentUser for routes behind AuthRequired.
func MustCurrentUser(c *gin.Context) *models.User {
	return c.MustGet(middleware.CheckUserKey).(*models.User)
}
