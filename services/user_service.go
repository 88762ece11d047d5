package services

import (
	"errors"
	"strings"

	"github.com/Darkphantom323/LifePulse/config"
	"github.com/Darkphantom323/LifePulse/models"
	"github.com/Darkphantom323/LifePulse/utils"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

func GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := config.DB.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

type ProfileInput struct {
	Name           string  `json:"name"`
	Bio            *string `json:"bio"`
	ProfilePicture *string `json:"profilePicture"`
}

func UpdateUserProfile(email string, input ProfileInput) (*models.User, error) {
	user, err := GetUserByEmail(email)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		user.Name = name
	}
	if input.Bio != nil {
		user.Bio = strings.TrimSpace(*input.Bio)
	}
	if input.ProfilePicture != nil {
		user.ProfilePicture = strings.TrimSpace(*input.ProfilePicture)
	}

	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateStreak advances the user's consecutive-login-day counter for today:
// never logged in or a gap of two-plus days resets to 1, a login yesterday
// increments, and repeat calls on the same day change nothing.
//
// The write is conditional on the lastLoginDate the caller observed, so two
// requests racing across the same day boundary cannot double-increment: the
// loser matches zero rows and returns the fresh state instead.
func UpdateStreak(email string) (*models.User, error) {
	user, err := GetUserByEmail(email)
	if err != nil {
		return nil, err
	}

	loc := config.Location()
	today := utils.StartOfDay(nowFunc().In(loc))

	newStreak := 1
	if user.LastLoginDate != nil {
		lastLogin := utils.StartOfDay(user.LastLoginDate.In(loc))
		switch {
		case lastLogin.Equal(today):
			// already counted today
			return user, nil
		case lastLogin.Equal(today.AddDate(0, 0, -1)):
			newStreak = user.Streak + 1
		default:
			// missed a day, or the stored date is in the future
			newStreak = 1
		}
	}

	tx := config.DB.Model(&models.User{}).Where("id = ?", user.ID)
	if user.LastLoginDate == nil {
		tx = tx.Where("last_login_date IS NULL")
	} else {
		tx = tx.Where("last_login_date = ?", *user.LastLoginDate)
	}
	res := tx.Updates(map[string]interface{}{
		"streak":          newStreak,
		"last_login_date": today,
	})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// a concurrent request advanced the streak first
		return GetUserByEmail(email)
	}

	user.Streak = newStreak
	user.LastLoginDate = &today
	return user, nil
}
