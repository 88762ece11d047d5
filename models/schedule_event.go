package models

import (
	"time"

	"gorm.io/gorm"
)

type ScheduleEvent struct {
	gorm.Model
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	StartTime   time.Time `gorm:"index;not null" json:"startTime"`
	EndTime     time.Time `gorm:"not null" json:"endTime"`
	Category    string    `json:"category"` // work, personal, health, social, other
	Priority    string    `json:"priority"` // low, medium, high
	UserID      uint      `gorm:"index;not null" json:"userId"`
}
