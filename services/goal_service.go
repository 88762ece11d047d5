package services

import (
	"time"

	"github.com/Darkphantom323/LifePulse/config"
	"github.com/Darkphantom323/LifePulse/models"
)

type GoalInput struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Category    string     `json:"category" binding:"required"`
	TargetValue *int       `json:"targetValue"`
	Unit        string     `json:"unit"`
	Deadline    *time.Time `json:"deadline"`
	Priority    string     `json:"priority"`
}

func CreateGoal(userID uint, input GoalInput) (*models.Goal, error) {
	goal := models.Goal{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		TargetValue: input.TargetValue,
		Unit:        input.Unit,
		Deadline:    input.Deadline,
		Priority:    defaultPriority(input.Priority),
		UserID:      userID,
	}
	if err := config.DB.Create(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func GetUserGoals(userID uint) ([]models.Goal, error) {
	var goals []models.Goal
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goals).Error
	return goals, err
}

func GetGoalsByCompleted(userID uint, completed bool) ([]models.Goal, error) {
	var goals []models.Goal
	err := config.DB.
		Where("user_id = ? AND completed = ?", userID, completed).
		Order("created_at DESC").
		Find(&goals).Error
	return goals, err
}

// GetGoal looks a goal up by id and owner. A goal belonging to someone else
// behaves exactly like a missing one.
func GetGoal(goalID, userID uint) (*models.Goal, error) {
	var goal models.Goal
	err := config.DB.
		Where("id = ? AND user_id = ?", goalID, userID).
		First(&goal).Error
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func UpdateGoal(goalID, userID uint, input GoalInput) (*models.Goal, error) {
	goal, err := GetGoal(goalID, userID)
	if err != nil {
		return nil, err
	}

	goal.Title = input.Title
	goal.Description = input.Description
	goal.Category = input.Category
	goal.TargetValue = input.TargetValue
	goal.Unit = input.Unit
	goal.Deadline = input.Deadline
	goal.Priority = defaultPriority(input.Priority)

	if err := config.DB.Save(goal).Error; err != nil {
		return nil, err
	}
	return goal, nil
}

// UpdateGoalProgress records a new current value and marks the goal completed
// once it reaches its target.
func UpdateGoalProgress(goalID, userID uint, currentValue int) (*models.Goal, error) {
	goal, err := GetGoal(goalID, userID)
	if err != nil {
		return nil, err
	}

	goal.CurrentValue = currentValue
	if goal.TargetValue != nil && currentValue >= *goal.TargetValue {
		goal.Completed = true
	}

	if err := config.DB.Save(goal).Error; err != nil {
		return nil, err
	}

	EmitActivity(userID, "goal.progress", goal)
	return goal, nil
}

func DeleteGoal(goalID, userID uint) error {
	goal, err := GetGoal(goalID, userID)
	if err != nil {
		return err
	}
	return config.DB.Delete(goal).Error
}

func defaultPriority(p string) string {
	if p == "" {
		return "medium"
	}
	return p
}
