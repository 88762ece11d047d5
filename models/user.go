package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name           string `gorm:"not null" json:"name"`
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	Password       string `gorm:"not null" json:"-"`
	Bio            string `json:"bio"`
	ProfilePicture string `json:"profilePicture"` // S3 key, or an absolute URL for legacy rows

	// Streak is the count of consecutive login days. It is at least 1
	// whenever LastLoginDate is set; nil LastLoginDate means never logged in.
	Streak        int        `json:"streak"`
	LastLoginDate *time.Time `json:"lastLoginDate"`

	ResetToken    string    `json:"-"`
	ResetTokenExp time.Time `json:"-"`
}
