package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Darkphantom323/LifePulse/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CreateGoal(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.GoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := services.CreateGoal(userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, goal)
}

func GetGoals(c *gin.Context) {
	userID := c.GetUint("userID")

	if completed := c.Query("completed"); completed != "" {
		want, err := strconv.ParseBool(completed)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "completed must be true or false"})
			return
		}
		goals, err := services.GetGoalsByCompleted(userID, want)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, goals)
		return
	}

	goals, err := services.GetUserGoals(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goals)
}

func GetGoal(c *gin.Context) {
	userID := c.GetUint("userID")
	goalID, ok := pathID(c)
	if !ok {
		return
	}

	goal, err := services.GetGoal(goalID, userID)
	if err != nil {
		respondGoalError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

func UpdateGoal(c *gin.Context) {
	userID := c.GetUint("userID")
	goalID, ok := pathID(c)
	if !ok {
		return
	}

	var input services.GoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := services.UpdateGoal(goalID, userID, input)
	if err != nil {
		respondGoalError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

func UpdateGoalProgress(c *gin.Context) {
	userID := c.GetUint("userID")
	goalID, ok := pathID(c)
	if !ok {
		return
	}

	var input struct {
		CurrentValue *int `json:"currentValue" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := services.UpdateGoalProgress(goalID, userID, *input.CurrentValue)
	if err != nil {
		respondGoalError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

func DeleteGoal(c *gin.Context) {
	userID := c.GetUint("userID")
	goalID, ok := pathID(c)
	if !ok {
		return
	}

	if err := services.DeleteGoal(goalID, userID); err != nil {
		respondGoalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Goal deleted"})
}

func respondGoalError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "goal not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// pathID parses the :id path parameter, writing the 400 itself on garbage.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
