package services

import (
	"github.com/Darkphantom323/LifePulse/config"
	"github.com/Darkphantom323/LifePulse/models"
	"github.com/Darkphantom323/LifePulse/utils"
)

type MeditationInput struct {
	Duration int    `json:"duration" binding:"required,min=1"`
	Type     string `json:"type" binding:"required"`
	Notes    string `json:"notes"`
}

func AddMeditationSession(userID uint, input MeditationInput) (*models.MeditationSession, error) {
	session := models.MeditationSession{
		Duration:  input.Duration,
		Type:      input.Type,
		Notes:     input.Notes,
		Timestamp: nowFunc().In(config.Location()),
		UserID:    userID,
	}
	if err := config.DB.Create(&session).Error; err != nil {
		return nil, err
	}

	EmitActivity(userID, "meditation.logged", &session)
	return &session, nil
}

func GetTodayMeditationSessions(userID uint) ([]models.MeditationSession, error) {
	start, end := utils.DayWindow(nowFunc().In(config.Location()))

	var sessions []models.MeditationSession
	err := config.DB.
		Where("user_id = ? AND timestamp >= ? AND timestamp < ?", userID, start, end).
		Order("timestamp DESC").
		Find(&sessions).Error
	return sessions, err
}

// GetMeditationSessions lists sessions newest-first, optionally restricted to
// an inclusive YYYY-MM-DD range.
func GetMeditationSessions(userID uint, startDate, endDate string) ([]models.MeditationSession, error) {
	var sessions []models.MeditationSession

	if startDate != "" && endDate != "" {
		start, end, err := parseDateRange(startDate, endDate)
		if err != nil {
			return nil, err
		}
		err = config.DB.
			Where("user_id = ? AND timestamp >= ? AND timestamp < ?", userID, start, end).
			Order("timestamp DESC").
			Find(&sessions).Error
		return sessions, err
	}

	err := config.DB.
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&sessions).Error
	return sessions, err
}

func DeleteMeditationSession(sessionID, userID uint) error {
	var session models.MeditationSession
	if err := config.DB.
		Where("id = ? AND user_id = ?", sessionID, userID).
		First(&session).Error; err != nil {
		return err
	}
	return config.DB.Delete(&session).Error
}
