package controllers

import (
	"errors"
	"net/http"

	"github.com/Darkphantom323/LifePulse/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func AddMeditationSession(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.MeditationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := services.AddMeditationSession(userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, session)
}

func GetMeditationSessions(c *gin.Context) {
	userID := c.GetUint("userID")

	sessions, err := services.GetMeditationSessions(userID, c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sessions)
}

func GetTodayMeditation(c *gin.Context) {
	userID := c.GetUint("userID")

	sessions, err := services.GetTodayMeditationSessions(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sessions)
}

func DeleteMeditationSession(c *gin.Context) {
	userID := c.GetUint("userID")
	sessionID, ok := pathID(c)
	if !ok {
		return
	}

	if err := services.DeleteMeditationSession(sessionID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session deleted"})
}
