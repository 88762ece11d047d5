package controllers

import (
	"errors"
	"net/http"

	"github.com/Darkphantom323/LifePulse/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CreateScheduleEvent(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.ScheduleEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !input.EndTime.After(input.StartTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endTime must be after startTime"})
		return
	}

	event, err := services.CreateScheduleEvent(userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, event)
}

func GetScheduleEvents(c *gin.Context) {
	userID := c.GetUint("userID")

	events, err := services.GetUserScheduleEvents(userID, c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, events)
}

func GetUpcomingScheduleEvents(c *gin.Context) {
	userID := c.GetUint("userID")

	events, err := services.GetUpcomingScheduleEvents(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, events)
}

func GetScheduleEvent(c *gin.Context) {
	userID := c.GetUint("userID")
	eventID, ok := pathID(c)
	if !ok {
		return
	}

	event, err := services.GetScheduleEvent(eventID, userID)
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func UpdateScheduleEvent(c *gin.Context) {
	userID := c.GetUint("userID")
	eventID, ok := pathID(c)
	if !ok {
		return
	}

	var input services.ScheduleEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !input.EndTime.After(input.StartTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endTime must be after startTime"})
		return
	}

	event, err := services.UpdateScheduleEvent(eventID, userID, input)
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func DeleteScheduleEvent(c *gin.Context) {
	userID := c.GetUint("userID")
	eventID, ok := pathID(c)
	if !ok {
		return
	}

	if err := services.DeleteScheduleEvent(eventID, userID); err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}

func respondScheduleError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
