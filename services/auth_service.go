package services

import (
	"errors"
	"fmt"

	"github.com/Darkphantom323/LifePulse/config"
	"github.com/Darkphantom323/LifePulse/models"
	"github.com/Darkphantom323/LifePulse/utils"

	"gorm.io/gorm"
)

var ErrEmailTaken = errors.New("user already exists with this email")

func RegisterUser(name, email, password string) (*models.User, error) {
	var existing models.User
	err := config.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func AuthenticateUser(email, password string) (*models.User, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrUserNotFound
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, errors.New("incorrect password")
	}

	return &user, nil
}
