package handlers

import (
	"net/http"
	"time"

	"prodiny/internal/services"
	"prodiny/internal/utils"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct{}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

const statsCacheKey = "admin:stats"

// Stats returns platform-wide totals and per-college breakdowns.
// Cached briefly, the dashboard polls it.
func (h *AdminHandler) Stats(c *gin.Context) {
	if cached := utils.GetCache().Get(statsCacheKey); cached != nil {
		if stats, ok := cached.(*services.AdminStats); ok {
			c.JSON(http.StatusOK, stats)
			return
		}
	}

	stats, err := services.ComputeStats()
	if err != nil {
		Fail(c, http.StatusInternalServerError, "Failed to compute stats")
		return
	}
	utils.GetCache().Set(statsCacheKey, stats, 30*time.Second)

	c.JSON(http.StatusOK, stats)
}
