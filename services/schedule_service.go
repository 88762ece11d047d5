package services

import (
	"time"

	"github.com/Darkphantom323/LifePulse/config"
	"github.com/Darkphantom323/LifePulse/models"
)

type ScheduleEventInput struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"startTime" binding:"required"`
	EndTime     time.Time `json:"endTime" binding:"required"`
	Category    string    `json:"category" binding:"required"`
	Priority    string    `json:"priority"`
}

func CreateScheduleEvent(userID uint, input ScheduleEventInput) (*models.ScheduleEvent, error) {
	event := models.ScheduleEvent{
		Title:       input.Title,
		Description: input.Description,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Category:    input.Category,
		Priority:    defaultPriority(input.Priority),
		UserID:      userID,
	}
	if err := config.DB.Create(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// GetUserScheduleEvents lists events by start time, optionally restricted to
// an inclusive YYYY-MM-DD range.
func GetUserScheduleEvents(userID uint, startDate, endDate string) ([]models.ScheduleEvent, error) {
	var events []models.ScheduleEvent

	if startDate != "" && endDate != "" {
		start, end, err := parseDateRange(startDate, endDate)
		if err != nil {
			return nil, err
		}
		err = config.DB.
			Where("user_id = ? AND start_time >= ? AND start_time < ?", userID, start, end).
			Order("start_time ASC").
			Find(&events).Error
		return events, err
	}

	err := config.DB.
		Where("user_id = ?", userID).
		Order("start_time ASC").
		Find(&events).Error
	return events, err
}

func GetUpcomingScheduleEvents(userID uint) ([]models.ScheduleEvent, error) {
	now := nowFunc().In(config.Location())

	var events []models.ScheduleEvent
	err := config.DB.
		Where("user_id = ? AND start_time >= ?", userID, now).
		Order("start_time ASC").
		Find(&events).Error
	return events, err
}

func GetScheduleEvent(eventID, userID uint) (*models.ScheduleEvent, error) {
	var event models.ScheduleEvent
	err := config.DB.
		Where("id = ? AND user_id = ?", eventID, userID).
		First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func UpdateScheduleEvent(eventID, userID uint, input ScheduleEventInput) (*models.ScheduleEvent, error) {
	event, err := GetScheduleEvent(eventID, userID)
	if err != nil {
		return nil, err
	}

	event.Title = input.Title
	event.Description = input.Description
	event.StartTime = input.StartTime
	event.EndTime = input.EndTime
	event.Category = input.Category
	event.Priority = defaultPriority(input.Priority)

	if err := config.DB.Save(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

func DeleteScheduleEvent(eventID, userID uint) error {
	event, err := GetScheduleEvent(eventID, userID)
	if err != nil {
		return err
	}
	return config.DB.Delete(event).Error
}
