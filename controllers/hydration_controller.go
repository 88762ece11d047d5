package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Darkphantom323/LifePulse/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func AddHydrationEntry(c *gin.Context) {
	userID := c.GetUint("userID")

	var input struct {
		Amount int `json:"amount" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := services.AddHydrationEntry(userID, input.Amount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func GetHydrationEntries(c *gin.Context) {
	userID := c.GetUint("userID")

	today := false
	if v := c.Query("today"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "today must be true or false"})
			return
		}
		today = parsed
	}

	summary, err := services.GetHydrationEntries(userID, today, c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func GetTodayHydration(c *gin.Context) {
	userID := c.GetUint("userID")

	entries, err := services.GetTodayHydrationEntries(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

func GetHydrationDayStats(c *gin.Context) {
	userID := c.GetUint("userID")

	summary, err := services.GetHydrationDayStats(userID, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func DeleteHydrationEntry(c *gin.Context) {
	userID := c.GetUint("userID")
	entryID, ok := pathID(c)
	if !ok {
		return
	}

	if err := services.DeleteHydrationEntry(entryID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Entry deleted"})
}

func DeleteLastHydrationEntry(c *gin.Context) {
	userID := c.GetUint("userID")

	if err := services.DeleteLastHydrationEntry(userID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Last entry deleted"})
}
