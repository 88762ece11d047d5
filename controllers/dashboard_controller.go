package controllers

import (
	"errors"
	"net/http"

	"github.com/Darkphantom323/LifePulse/services"

	"github.com/gin-gonic/gin"
)

// GetDashboard returns the consolidated today view: per-domain progress stats
// plus the five most recent goals and five soonest upcoming events.
func GetDashboard(c *gin.Context) {
	userID := c.GetUint("userID")

	dashboard, err := services.GetDashboard(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
